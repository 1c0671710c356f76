package java

// FieldSpec is a generated field declaration.
type FieldSpec struct {
	typ         TypeName
	name        string
	javadoc     *CodeBlock
	annotations []*AnnotationSpec
	modifiers   modifierSet
	initializer *CodeBlock
}

func (f *FieldSpec) Type() TypeName { return f.typ }
func (f *FieldSpec) Name() string { return f.name }
func (f *FieldSpec) Javadoc() *CodeBlock { return f.javadoc }
func (f *FieldSpec) Initializer() *CodeBlock { return f.initializer }
func (f *FieldSpec) Modifiers() []Modifier { return f.modifiers.list() }
func (f *FieldSpec) HasModifier(m Modifier) bool { return f.modifiers.has(m) }
func (f *FieldSpec) Annotations() []*AnnotationSpec { return append([]*AnnotationSpec(nil), f.annotations...) }

func (f *FieldSpec) String() string {
	return renderString(func(w *codeWriter) {
		f.emit(w, nil, 0)
	})
}

func (f *FieldSpec) emit(w *codeWriter, sc *scope, implicit modifierSet) {
	w.emitJavadoc(sc, f.javadoc)
	w.emitAnnotations(sc, f.annotations, false)
	w.emitModifiers(f.modifiers, implicit)
	w.emitf(sc, "$T $L", f.typ, f.name)
	if !f.initializer.IsEmpty() {
		w.emit(" = ")
		w.emitCode(sc, f.initializer)
	}
	w.emit(";\n")
}

// withModifiers returns a copy of f carrying extra modifiers.
func (f *FieldSpec) withModifiers(extra modifierSet) *FieldSpec {
	c := *f
	c.modifiers = c.modifiers.union(extra)
	return &c
}

func (f *FieldSpec) ToBuilder() *FieldSpecBuilder {
	b := &FieldSpecBuilder{
		typ:         f.typ,
		name:        f.name,
		javadoc:     f.javadoc.ToBuilder(),
		annotations: append([]*AnnotationSpec(nil), f.annotations...),
		modifiers:   f.modifiers,
	}
	if !f.initializer.IsEmpty() {
		b.initializer = f.initializer
	}
	return b
}

// FieldSpecBuilder configures a FieldSpec.
type FieldSpecBuilder struct {
	typ         TypeName
	name        string
	javadoc     *CodeBlockBuilder
	annotations []*AnnotationSpec
	modifiers   modifierSet
	initializer *CodeBlock
}

func NewField(t TypeName, name string, modifiers ...Modifier) *FieldSpecBuilder {
	checkNotNull(t != nil, "type")
	checkArgument(IsName(name), "not a valid name: %s", name)
	b := &FieldSpecBuilder{typ: t, name: name, javadoc: NewCodeBlock()}
	return b.AddModifiers(modifiers...)
}

func (b *FieldSpecBuilder) AddJavadoc(format string, args ...any) *FieldSpecBuilder {
	b.javadoc.Add(format, args...)
	return b
}

func (b *FieldSpecBuilder) AddJavadocBlock(cb *CodeBlock) *FieldSpecBuilder {
	b.javadoc.AddBlock(cb)
	return b
}

func (b *FieldSpecBuilder) AddAnnotation(a *AnnotationSpec) *FieldSpecBuilder {
	checkNotNull(a != nil, "annotationSpec")
	b.annotations = append(b.annotations, a)
	return b
}

func (b *FieldSpecBuilder) RemoveAnnotation(a *AnnotationSpec) *FieldSpecBuilder {
	b.annotations = removeAnnotation(b.annotations, a)
	return b
}

func (b *FieldSpecBuilder) AddModifiers(modifiers ...Modifier) *FieldSpecBuilder {
	for _, m := range modifiers {
		checkModifier(m)
		b.modifiers = b.modifiers.with(m)
	}
	checkVisibility(b.modifiers, "field "+b.name)
	return b
}

func (b *FieldSpecBuilder) RemoveModifiers(modifiers ...Modifier) *FieldSpecBuilder {
	for _, m := range modifiers {
		b.modifiers = b.modifiers.without(m)
	}
	return b
}

// Initializer sets the value assigned in the declaration.
func (b *FieldSpecBuilder) Initializer(format string, args ...any) *FieldSpecBuilder {
	return b.InitializerBlock(CodeBlockOf(format, args...))
}

func (b *FieldSpecBuilder) InitializerBlock(cb *CodeBlock) *FieldSpecBuilder {
	checkState(b.initializer == nil, "initializer was already set")
	checkNotNull(cb != nil, "codeBlock")
	b.initializer = cb
	return b
}

func (b *FieldSpecBuilder) Build() *FieldSpec {
	f := &FieldSpec{
		typ:         b.typ,
		name:        b.name,
		javadoc:     b.javadoc.Build(),
		annotations: append([]*AnnotationSpec(nil), b.annotations...),
		modifiers:   b.modifiers,
		initializer: b.initializer,
	}
	if f.initializer == nil {
		f.initializer = emptyCodeBlock
	}
	return f
}

func removeAnnotation(list []*AnnotationSpec, a *AnnotationSpec) []*AnnotationSpec {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] == a || list[i].Equal(a) {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
