package java

// ParameterSpec is a method or constructor parameter.
type ParameterSpec struct {
	typ         TypeName
	name        string
	javadoc     *CodeBlock
	annotations []*AnnotationSpec
	modifiers   modifierSet
}

func (p *ParameterSpec) Type() TypeName { return p.typ }
func (p *ParameterSpec) Name() string { return p.name }
func (p *ParameterSpec) Javadoc() *CodeBlock { return p.javadoc }
func (p *ParameterSpec) Modifiers() []Modifier { return p.modifiers.list() }
func (p *ParameterSpec) HasModifier(m Modifier) bool { return p.modifiers.has(m) }
func (p *ParameterSpec) Annotations() []*AnnotationSpec { return append([]*AnnotationSpec(nil), p.annotations...) }

func (p *ParameterSpec) String() string {
	return renderString(func(w *codeWriter) {
		p.emit(w, nil, false)
	})
}

func (p *ParameterSpec) emit(w *codeWriter, sc *scope, varargs bool) {
	w.emitAnnotations(sc, p.annotations, true)
	w.emitModifiers(p.modifiers, 0)
	w.emitTypeVarargs(sc, p.typ, varargs)
	w.emitf(sc, " $L", p.name)
}

func (p *ParameterSpec) ToBuilder() *ParameterSpecBuilder {
	return &ParameterSpecBuilder{
		typ:         p.typ,
		name:        p.name,
		javadoc:     p.javadoc.ToBuilder(),
		annotations: append([]*AnnotationSpec(nil), p.annotations...),
		modifiers:   p.modifiers,
	}
}

// ParameterOf is shorthand for a parameter without annotations or javadoc.
func ParameterOf(t TypeName, name string, modifiers ...Modifier) *ParameterSpec {
	return NewParameter(t, name, modifiers...).Build()
}

// ParameterSpecBuilder configures a ParameterSpec.
type ParameterSpecBuilder struct {
	typ         TypeName
	name        string
	javadoc     *CodeBlockBuilder
	annotations []*AnnotationSpec
	modifiers   modifierSet
}

func NewParameter(t TypeName, name string, modifiers ...Modifier) *ParameterSpecBuilder {
	checkNotNull(t != nil, "type")
	checkArgument(IsName(name), "not a valid name: %s", name)
	b := &ParameterSpecBuilder{typ: t, name: name, javadoc: NewCodeBlock()}
	return b.AddModifiers(modifiers...)
}

// AddJavadoc documents the parameter. The text shows up as an @param tag
// of the method.
func (b *ParameterSpecBuilder) AddJavadoc(format string, args ...any) *ParameterSpecBuilder {
	b.javadoc.Add(format, args...)
	return b
}

func (b *ParameterSpecBuilder) AddAnnotation(a *AnnotationSpec) *ParameterSpecBuilder {
	checkNotNull(a != nil, "annotationSpec")
	b.annotations = append(b.annotations, a)
	return b
}

func (b *ParameterSpecBuilder) RemoveAnnotation(a *AnnotationSpec) *ParameterSpecBuilder {
	b.annotations = removeAnnotation(b.annotations, a)
	return b
}

// AddModifiers accepts only final.
func (b *ParameterSpecBuilder) AddModifiers(modifiers ...Modifier) *ParameterSpecBuilder {
	for _, m := range modifiers {
		checkArgument(m == Final, "unexpected parameter modifier: %s", m)
		b.modifiers = b.modifiers.with(m)
	}
	return b
}

func (b *ParameterSpecBuilder) RemoveModifiers(modifiers ...Modifier) *ParameterSpecBuilder {
	for _, m := range modifiers {
		b.modifiers = b.modifiers.without(m)
	}
	return b
}

func (b *ParameterSpecBuilder) Build() *ParameterSpec {
	return &ParameterSpec{
		typ:         b.typ,
		name:        b.name,
		javadoc:     b.javadoc.Build(),
		annotations: append([]*AnnotationSpec(nil), b.annotations...),
		modifiers:   b.modifiers,
	}
}
