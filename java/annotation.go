package java

import "slices"

// AnnotationSpec is an annotation use such as @Named("x") or
// @Column(name = "id", nullable = false).
type AnnotationSpec struct {
	typ         TypeName
	memberNames []string
	members     map[string][]*CodeBlock
}

// Type is the annotation type.
func (a *AnnotationSpec) Type() TypeName { return a.typ }

// MemberNames lists member names in insertion order.
func (a *AnnotationSpec) MemberNames() []string {
	return append([]string(nil), a.memberNames...)
}

// Member returns the values of a member.
func (a *AnnotationSpec) Member(name string) []*CodeBlock {
	return append([]*CodeBlock(nil), a.members[name]...)
}

// String renders the annotation inline with fully-qualified names.
func (a *AnnotationSpec) String() string {
	return renderString(func(w *codeWriter) {
		a.emit(w, nil, true)
	})
}

func (a *AnnotationSpec) Equal(o *AnnotationSpec) bool {
	if a == nil || o == nil {
		return a == o
	}
	if !TypesEqual(a.typ, o.typ) || !slices.Equal(a.memberNames, o.memberNames) {
		return false
	}
	for _, name := range a.memberNames {
		if !slices.EqualFunc(a.members[name], o.members[name], (*CodeBlock).Equal) {
			return false
		}
	}
	return true
}

func (a *AnnotationSpec) ToBuilder() *AnnotationSpecBuilder {
	b := &AnnotationSpecBuilder{typ: a.typ, members: map[string][]*CodeBlock{}}
	for _, name := range a.memberNames {
		b.memberNames = append(b.memberNames, name)
		b.members[name] = append([]*CodeBlock(nil), a.members[name]...)
	}
	return b
}

// AnnotationOf is shorthand for an annotation without members.
func AnnotationOf(t TypeName) *AnnotationSpec {
	return NewAnnotation(t).Build()
}

// AnnotationSpecBuilder collects members for an AnnotationSpec.
type AnnotationSpecBuilder struct {
	typ         TypeName
	memberNames []string
	members     map[string][]*CodeBlock
}

func NewAnnotation(t TypeName) *AnnotationSpecBuilder {
	checkNotNull(t != nil, "type")
	return &AnnotationSpecBuilder{typ: t, members: map[string][]*CodeBlock{}}
}

// AddMember appends a value to member name. Adding several values to the
// same member renders them as an array.
func (b *AnnotationSpecBuilder) AddMember(name, format string, args ...any) *AnnotationSpecBuilder {
	return b.AddMemberBlock(name, CodeBlockOf(format, args...))
}

func (b *AnnotationSpecBuilder) AddMemberBlock(name string, value *CodeBlock) *AnnotationSpecBuilder {
	checkArgument(IsName(name), "not a valid name: %s", name)
	checkNotNull(value != nil, "codeBlock")
	if _, ok := b.members[name]; !ok {
		b.memberNames = append(b.memberNames, name)
	}
	b.members[name] = append(b.members[name], value)
	return b
}

func (b *AnnotationSpecBuilder) Build() *AnnotationSpec {
	a := &AnnotationSpec{typ: b.typ, members: make(map[string][]*CodeBlock, len(b.members))}
	for _, name := range b.memberNames {
		a.memberNames = append(a.memberNames, name)
		a.members[name] = append([]*CodeBlock(nil), b.members[name]...)
	}
	return a
}

func (a *AnnotationSpec) emit(w *codeWriter, sc *scope, inline bool) {
	whitespace, separator := "\n", ",\n"
	if inline {
		whitespace, separator = "", ", "
	}
	switch {
	case len(a.memberNames) == 0:
		w.emitf(sc, "@$T", a.typ)
	case len(a.memberNames) == 1 && a.memberNames[0] == "value":
		w.emitf(sc, "@$T(", a.typ)
		a.emitValues(w, sc, whitespace, separator, a.members["value"])
		w.emit(")")
	default:
		w.emitf(sc, "@$T("+whitespace, a.typ)
		w.indentBy(2)
		for i, name := range a.memberNames {
			if i > 0 {
				w.emit(separator)
			}
			w.emitf(sc, "$L = ", name)
			a.emitValues(w, sc, whitespace, separator, a.members[name])
		}
		w.unindentBy(2)
		w.emit(whitespace + ")")
	}
}

func (a *AnnotationSpec) emitValues(w *codeWriter, sc *scope, whitespace, separator string, values []*CodeBlock) {
	if len(values) == 1 {
		w.indentBy(2)
		w.emitCode(sc, values[0])
		w.unindentBy(2)
		return
	}
	w.emit("{" + whitespace)
	w.indentBy(2)
	for i, v := range values {
		if i > 0 {
			w.emit(separator)
		}
		w.emitCode(sc, v)
	}
	w.unindentBy(2)
	w.emit(whitespace + "}")
}
