package java

const constructorName = "<init>"

// MethodSpec is a generated method or constructor.
type MethodSpec struct {
	name          string
	javadoc       *CodeBlock
	annotations   []*AnnotationSpec
	modifiers     modifierSet
	typeVariables []TypeName
	returnType    TypeName
	parameters    []*ParameterSpec
	varargs       bool
	exceptions    []TypeName
	code          *CodeBlock
	defaultValue  *CodeBlock
}

func (m *MethodSpec) Name() string { return m.name }
func (m *MethodSpec) IsConstructor() bool { return m.name == constructorName }
func (m *MethodSpec) Javadoc() *CodeBlock { return m.javadoc }
func (m *MethodSpec) Modifiers() []Modifier { return m.modifiers.list() }
func (m *MethodSpec) HasModifier(mod Modifier) bool { return m.modifiers.has(mod) }
func (m *MethodSpec) ReturnType() TypeName { return m.returnType }
func (m *MethodSpec) Varargs() bool { return m.varargs }
func (m *MethodSpec) Code() *CodeBlock { return m.code }
func (m *MethodSpec) DefaultValue() *CodeBlock { return m.defaultValue }
func (m *MethodSpec) Annotations() []*AnnotationSpec { return append([]*AnnotationSpec(nil), m.annotations...) }
func (m *MethodSpec) TypeVariables() []TypeName { return append([]TypeName(nil), m.typeVariables...) }
func (m *MethodSpec) Parameters() []*ParameterSpec { return append([]*ParameterSpec(nil), m.parameters...) }
func (m *MethodSpec) Exceptions() []TypeName { return append([]TypeName(nil), m.exceptions...) }

// String renders the method on its own; constructors are named Constructor.
func (m *MethodSpec) String() string {
	return renderString(func(w *codeWriter) {
		m.emit(w, nil, "Constructor", 0)
	})
}

func (m *MethodSpec) emit(w *codeWriter, sc *scope, enclosingName string, implicit modifierSet) {
	sc = sc.withTypeVariables(m.typeVariables)

	w.emitJavadoc(sc, m.javadocWithParameters())
	w.emitAnnotations(sc, m.annotations, false)
	w.emitModifiers(m.modifiers, implicit)

	if len(m.typeVariables) > 0 {
		w.emitTypeVariables(sc, m.typeVariables)
		w.emit(" ")
	}

	if m.IsConstructor() {
		w.emitf(sc, "$L($Z", enclosingName)
	} else {
		w.emitf(sc, "$T $L($Z", m.returnType, m.name)
	}

	for i, p := range m.parameters {
		if i > 0 {
			w.emit(",")
			w.wrappingSpace()
		}
		p.emit(w, sc, m.varargs && i == len(m.parameters)-1)
	}
	w.emit(")")

	if !m.defaultValue.IsEmpty() {
		w.emit(" default ")
		w.emitCode(sc, m.defaultValue)
	}

	if len(m.exceptions) > 0 {
		w.wrappingSpace()
		w.emit("throws")
		for i, e := range m.exceptions {
			if i > 0 {
				w.emit(",")
			}
			w.wrappingSpace()
			w.emitType(sc, e)
		}
	}

	if m.modifiers.hasAny(modifiersOf(Abstract, Native)) {
		w.emit(";\n")
		return
	}
	w.emit(" {\n")
	w.indentBy(1)
	w.emitCodeBlock(sc, m.code, true)
	w.unindentBy(1)
	w.emit("}\n")
}

// javadocWithParameters appends an @param tag for every documented
// parameter.
func (m *MethodSpec) javadocWithParameters() *CodeBlock {
	b := m.javadoc.ToBuilder()
	first := true
	for _, p := range m.parameters {
		if p.javadoc.IsEmpty() {
			continue
		}
		if first && !m.javadoc.IsEmpty() {
			b.Add("\n")
		}
		first = false
		b.Add("@param $L $L", p.name, p.javadoc)
	}
	return b.Build()
}

// withModifiers returns a copy of m carrying extra modifiers.
func (m *MethodSpec) withModifiers(extra modifierSet) *MethodSpec {
	c := *m
	c.modifiers = c.modifiers.union(extra)
	return &c
}

func (m *MethodSpec) ToBuilder() *MethodSpecBuilder {
	b := &MethodSpecBuilder{
		name:          m.name,
		javadoc:       m.javadoc.ToBuilder(),
		annotations:   append([]*AnnotationSpec(nil), m.annotations...),
		modifiers:     m.modifiers,
		typeVariables: append([]TypeName(nil), m.typeVariables...),
		returnType:    m.returnType,
		parameters:    append([]*ParameterSpec(nil), m.parameters...),
		varargs:       m.varargs,
		exceptions:    append([]TypeName(nil), m.exceptions...),
		code:          m.code.ToBuilder(),
	}
	if !m.defaultValue.IsEmpty() {
		b.defaultValue = m.defaultValue
	}
	return b
}

// MethodSpecBuilder configures a MethodSpec.
type MethodSpecBuilder struct {
	name          string
	javadoc       *CodeBlockBuilder
	annotations   []*AnnotationSpec
	modifiers     modifierSet
	typeVariables []TypeName
	returnType    TypeName
	parameters    []*ParameterSpec
	varargs       bool
	exceptions    []TypeName
	code          *CodeBlockBuilder
	defaultValue  *CodeBlock
}

// NewMethod starts a method returning void.
func NewMethod(name string) *MethodSpecBuilder {
	checkArgument(IsName(name), "not a valid name: %s", name)
	return &MethodSpecBuilder{
		name:       name,
		javadoc:    NewCodeBlock(),
		returnType: Void,
		code:       NewCodeBlock(),
	}
}

func NewConstructor() *MethodSpecBuilder {
	return &MethodSpecBuilder{
		name:    constructorName,
		javadoc: NewCodeBlock(),
		code:    NewCodeBlock(),
	}
}

func (b *MethodSpecBuilder) AddJavadoc(format string, args ...any) *MethodSpecBuilder {
	b.javadoc.Add(format, args...)
	return b
}

func (b *MethodSpecBuilder) AddJavadocBlock(cb *CodeBlock) *MethodSpecBuilder {
	b.javadoc.AddBlock(cb)
	return b
}

func (b *MethodSpecBuilder) AddAnnotation(a *AnnotationSpec) *MethodSpecBuilder {
	checkNotNull(a != nil, "annotationSpec")
	b.annotations = append(b.annotations, a)
	return b
}

func (b *MethodSpecBuilder) RemoveAnnotation(a *AnnotationSpec) *MethodSpecBuilder {
	b.annotations = removeAnnotation(b.annotations, a)
	return b
}

func (b *MethodSpecBuilder) AddModifiers(modifiers ...Modifier) *MethodSpecBuilder {
	for _, m := range modifiers {
		checkModifier(m)
		b.modifiers = b.modifiers.with(m)
	}
	checkVisibility(b.modifiers, "method "+b.name)
	b.checkBody()
	return b
}

func (b *MethodSpecBuilder) RemoveModifiers(modifiers ...Modifier) *MethodSpecBuilder {
	for _, m := range modifiers {
		b.modifiers = b.modifiers.without(m)
	}
	return b
}

func (b *MethodSpecBuilder) checkBody() {
	if b.code.IsEmpty() {
		return
	}
	checkState(!b.modifiers.has(Abstract), "abstract method %s cannot have code", b.name)
	checkState(!b.modifiers.has(Native), "native method %s cannot have code", b.name)
}

// AddTypeVariable declares a method type parameter. Annotated type
// variables are accepted.
func (b *MethodSpecBuilder) AddTypeVariable(tv TypeName) *MethodSpecBuilder {
	_, ok := WithoutAnnotations(tv).(*TypeVariableName)
	checkArgument(ok, "not a type variable: %v", tv)
	b.typeVariables = append(b.typeVariables, tv)
	return b
}

func (b *MethodSpecBuilder) Returns(t TypeName) *MethodSpecBuilder {
	checkState(b.name != constructorName, "constructor cannot have return type.")
	checkNotNull(t != nil, "returnType")
	b.returnType = t
	return b
}

func (b *MethodSpecBuilder) AddParameter(p *ParameterSpec) *MethodSpecBuilder {
	checkNotNull(p != nil, "parameterSpec")
	b.parameters = append(b.parameters, p)
	return b
}

// AddParameterOf adds a parameter built from its parts.
func (b *MethodSpecBuilder) AddParameterOf(t TypeName, name string, modifiers ...Modifier) *MethodSpecBuilder {
	return b.AddParameter(ParameterOf(t, name, modifiers...))
}

// Varargs marks the last parameter as variable arity. It must be an array.
func (b *MethodSpecBuilder) Varargs(varargs bool) *MethodSpecBuilder {
	b.varargs = varargs
	return b
}

func (b *MethodSpecBuilder) AddException(t TypeName) *MethodSpecBuilder {
	checkNotNull(t != nil, "exception")
	b.exceptions = append(b.exceptions, t)
	return b
}

func (b *MethodSpecBuilder) AddCode(format string, args ...any) *MethodSpecBuilder {
	b.code.Add(format, args...)
	b.checkBody()
	return b
}

func (b *MethodSpecBuilder) AddNamedCode(format string, args map[string]any) *MethodSpecBuilder {
	b.code.AddNamed(format, args)
	b.checkBody()
	return b
}

func (b *MethodSpecBuilder) AddCodeBlock(cb *CodeBlock) *MethodSpecBuilder {
	b.code.AddBlock(cb)
	b.checkBody()
	return b
}

func (b *MethodSpecBuilder) AddStatement(format string, args ...any) *MethodSpecBuilder {
	b.code.AddStatement(format, args...)
	b.checkBody()
	return b
}

func (b *MethodSpecBuilder) AddComment(format string, args ...any) *MethodSpecBuilder {
	b.code.AddComment(format, args...)
	b.checkBody()
	return b
}

func (b *MethodSpecBuilder) BeginControlFlow(controlFlow string, args ...any) *MethodSpecBuilder {
	b.code.BeginControlFlow(controlFlow, args...)
	b.checkBody()
	return b
}

func (b *MethodSpecBuilder) NextControlFlow(controlFlow string, args ...any) *MethodSpecBuilder {
	b.code.NextControlFlow(controlFlow, args...)
	return b
}

func (b *MethodSpecBuilder) EndControlFlow() *MethodSpecBuilder {
	b.code.EndControlFlow()
	return b
}

func (b *MethodSpecBuilder) EndControlFlowWith(controlFlow string, args ...any) *MethodSpecBuilder {
	b.code.EndControlFlowWith(controlFlow, args...)
	return b
}

// DefaultValue sets the default of an annotation type element.
func (b *MethodSpecBuilder) DefaultValue(format string, args ...any) *MethodSpecBuilder {
	return b.DefaultValueBlock(CodeBlockOf(format, args...))
}

func (b *MethodSpecBuilder) DefaultValueBlock(cb *CodeBlock) *MethodSpecBuilder {
	checkState(b.defaultValue == nil, "defaultValue was already set")
	checkNotNull(cb != nil, "codeBlock")
	b.defaultValue = cb
	return b
}

func (b *MethodSpecBuilder) Build() *MethodSpec {
	b.checkBody()
	if b.varargs {
		ok := len(b.parameters) > 0
		if ok {
			_, _, ok = asArray(b.parameters[len(b.parameters)-1].typ)
		}
		checkArgument(ok, "last parameter of varargs method %s must be an array", b.name)
	}
	m := &MethodSpec{
		name:          b.name,
		javadoc:       b.javadoc.Build(),
		annotations:   append([]*AnnotationSpec(nil), b.annotations...),
		modifiers:     b.modifiers,
		typeVariables: append([]TypeName(nil), b.typeVariables...),
		returnType:    b.returnType,
		parameters:    append([]*ParameterSpec(nil), b.parameters...),
		varargs:       b.varargs,
		exceptions:    append([]TypeName(nil), b.exceptions...),
		code:          b.code.Build(),
		defaultValue:  b.defaultValue,
	}
	if m.defaultValue == nil {
		m.defaultValue = emptyCodeBlock
	}
	return m
}
