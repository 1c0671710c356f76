package java

// Kind is the declaration keyword of a TypeSpec.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindEnum
	KindAnnotation
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "annotation"
	}
	return "unknown"
}

func (k Kind) keyword() string {
	if k == KindAnnotation {
		return "@interface"
	}
	return k.String()
}

// implicitFieldModifiers and friends are the modifiers members get without
// writing them, per declaration kind.
func (k Kind) implicitFieldModifiers() modifierSet {
	if k == KindInterface || k == KindAnnotation {
		return modifiersOf(Public, Static, Final)
	}
	return 0
}

func (k Kind) implicitMethodModifiers() modifierSet {
	if k == KindInterface || k == KindAnnotation {
		return modifiersOf(Public, Abstract)
	}
	return 0
}

func (k Kind) implicitTypeModifiers() modifierSet {
	if k == KindInterface || k == KindAnnotation {
		return modifiersOf(Public, Static)
	}
	return 0
}

func (k Kind) asMemberModifiers() modifierSet {
	if k == KindClass {
		return 0
	}
	return modifiersOf(Static)
}

// TypeSpec is a generated class, interface, enum, annotation type or
// anonymous class.
type TypeSpec struct {
	kind Kind
	name string
	// anonymousTypeArguments is non-nil exactly for anonymous classes,
	// including enum constant bodies.
	anonymousTypeArguments *CodeBlock
	javadoc                *CodeBlock
	annotations            []*AnnotationSpec
	modifiers              modifierSet
	typeVariables          []TypeName
	superclass             TypeName
	superinterfaces        []TypeName
	enumConstantNames      []string
	enumConstants          map[string]*TypeSpec
	fields                 []*FieldSpec
	staticBlock            *CodeBlock
	initializerBlock       *CodeBlock
	methods                []*MethodSpec
	types                  []*TypeSpec
	alwaysQualify          []string
	originatingElements    []any

	nestedTypeNames map[string]bool
}

func (t *TypeSpec) Kind() Kind { return t.kind }
func (t *TypeSpec) Name() string { return t.name }
func (t *TypeSpec) IsAnonymous() bool { return t.anonymousTypeArguments != nil }
func (t *TypeSpec) AnonymousTypeArguments() *CodeBlock { return t.anonymousTypeArguments }
func (t *TypeSpec) Javadoc() *CodeBlock { return t.javadoc }
func (t *TypeSpec) Modifiers() []Modifier { return t.modifiers.list() }
func (t *TypeSpec) HasModifier(m Modifier) bool { return t.modifiers.has(m) }
func (t *TypeSpec) StaticBlock() *CodeBlock { return t.staticBlock }
func (t *TypeSpec) InitializerBlock() *CodeBlock { return t.initializerBlock }
func (t *TypeSpec) Annotations() []*AnnotationSpec { return append([]*AnnotationSpec(nil), t.annotations...) }
func (t *TypeSpec) TypeVariables() []TypeName { return append([]TypeName(nil), t.typeVariables...) }
func (t *TypeSpec) Superinterfaces() []TypeName { return append([]TypeName(nil), t.superinterfaces...) }
func (t *TypeSpec) Fields() []*FieldSpec { return append([]*FieldSpec(nil), t.fields...) }
func (t *TypeSpec) Methods() []*MethodSpec { return append([]*MethodSpec(nil), t.methods...) }
func (t *TypeSpec) Types() []*TypeSpec { return append([]*TypeSpec(nil), t.types...) }
func (t *TypeSpec) AlwaysQualifiedNames() []string { return append([]string(nil), t.alwaysQualify...) }
func (t *TypeSpec) OriginatingElements() []any { return append([]any(nil), t.originatingElements...) }
func (t *TypeSpec) EnumConstantNames() []string { return append([]string(nil), t.enumConstantNames...) }

// Superclass is Object unless one was set.
func (t *TypeSpec) Superclass() TypeName { return t.superclass }

// EnumConstant returns the body of an enum constant.
func (t *TypeSpec) EnumConstant(name string) (*TypeSpec, bool) {
	c, ok := t.enumConstants[name]
	return c, ok
}

func (t *TypeSpec) hasNestedType(simpleName string) bool {
	return t.nestedTypeNames[simpleName]
}

func (t *TypeSpec) hasMembers() bool {
	return len(t.fields) > 0 || len(t.methods) > 0 || len(t.types) > 0 ||
		!t.staticBlock.IsEmpty() || !t.initializerBlock.IsEmpty()
}

// String renders the type without a package context.
func (t *TypeSpec) String() string {
	return renderString(func(w *codeWriter) {
		t.emit(w, nil, "", 0)
	})
}

// emit writes the type. enumName is set when t is the body of that enum
// constant.
func (t *TypeSpec) emit(w *codeWriter, sc *scope, enumName string, implicit modifierSet) {
	// Nested types interrupt a wrapped statement; restore it afterwards.
	previousStatementLine := w.statementLine
	w.statementLine = -1
	defer func() { w.statementLine = previousStatementLine }()

	sc = sc.withTypeVariables(t.typeVariables)
	switch {
	case enumName != "":
		w.emitJavadoc(sc, t.javadoc)
		w.emitAnnotations(sc, t.annotations, false)
		w.emit(enumName)
		hasArgs := !t.anonymousTypeArguments.IsEmpty()
		if hasArgs || t.hasMembers() {
			w.emit("(")
			w.emitCode(sc, t.anonymousTypeArguments)
			w.emit(")")
		}
		if !t.hasMembers() {
			return
		}
		w.emit(" {\n")
	case t.IsAnonymous():
		supertype := t.superclass
		if len(t.superinterfaces) > 0 {
			supertype = t.superinterfaces[0]
		}
		w.emitf(sc, "new $T(", supertype)
		w.emitCode(sc, t.anonymousTypeArguments)
		w.emit(") {\n")
	default:
		header := sc.withHeader(t)
		w.emitJavadoc(header, t.javadoc)
		w.emitAnnotations(header, t.annotations, false)
		w.emitModifiers(t.modifiers, implicit.union(t.kind.asMemberModifiers()))
		w.emitf(header, "$L $L", t.kind.keyword(), t.name)
		w.emitTypeVariables(header, t.typeVariables)

		var extends, implements []TypeName
		if t.kind == KindInterface {
			extends = t.superinterfaces
		} else {
			if !TypesEqual(t.superclass, Object) {
				extends = []TypeName{t.superclass}
			}
			implements = t.superinterfaces
		}
		w.emitSupertypes(header, " extends", extends)
		w.emitSupertypes(header, " implements", implements)
		w.emit(" {\n")
	}

	body := sc.withType(t)
	w.indentBy(1)
	first := true
	separate := func() {
		if !first {
			w.emit("\n")
		}
		first = false
	}

	needsSeparator := t.kind == KindEnum && (t.hasMembers() || len(t.enumConstantNames) == 0)
	for i, name := range t.enumConstantNames {
		separate()
		t.enumConstants[name].emit(w, body, name, 0)
		if i < len(t.enumConstantNames)-1 {
			w.emit(",\n")
		} else if !needsSeparator {
			w.emit("\n")
		}
	}
	if needsSeparator {
		w.emit(";\n")
	}

	for _, f := range t.fields {
		if f.HasModifier(Static) {
			separate()
			f.emit(w, body, t.kind.implicitFieldModifiers())
		}
	}
	if !t.staticBlock.IsEmpty() {
		separate()
		w.emit("static {\n")
		w.indentBy(1)
		w.emitCodeBlock(body, t.staticBlock, true)
		w.unindentBy(1)
		w.emit("}\n")
	}
	for _, f := range t.fields {
		if !f.HasModifier(Static) {
			separate()
			f.emit(w, body, t.kind.implicitFieldModifiers())
		}
	}
	if !t.initializerBlock.IsEmpty() {
		separate()
		w.emit("{\n")
		w.indentBy(1)
		w.emitCodeBlock(body, t.initializerBlock, true)
		w.unindentBy(1)
		w.emit("}\n")
	}
	for _, m := range t.methods {
		if m.IsConstructor() {
			separate()
			m.emit(w, body, t.name, t.kind.implicitMethodModifiers())
		}
	}
	for _, static := range []bool{true, false} {
		for _, m := range t.methods {
			if !m.IsConstructor() && m.HasModifier(Static) == static {
				separate()
				m.emit(w, body, t.name, t.kind.implicitMethodModifiers())
			}
		}
	}
	for _, nested := range t.types {
		separate()
		nested.emit(w, body, "", t.kind.implicitTypeModifiers())
	}

	w.unindentBy(1)
	w.emit("}")
	if enumName == "" && !t.IsAnonymous() {
		w.emit("\n")
	}
}

func (w *codeWriter) emitSupertypes(sc *scope, keyword string, types []TypeName) {
	if len(types) == 0 {
		return
	}
	w.emit(keyword)
	for i, t := range types {
		if i > 0 {
			w.emit(",")
		}
		w.emitf(sc, " $T", t)
	}
}

// collectAlwaysQualify gathers the always-qualified names of t and every
// type nested in it.
func (t *TypeSpec) collectAlwaysQualify(names map[string]bool) {
	for _, n := range t.alwaysQualify {
		names[n] = true
	}
	for _, nested := range t.types {
		nested.collectAlwaysQualify(names)
	}
	for _, name := range t.enumConstantNames {
		t.enumConstants[name].collectAlwaysQualify(names)
	}
}

func (t *TypeSpec) ToBuilder() *TypeSpecBuilder {
	b := &TypeSpecBuilder{
		kind:                t.kind,
		name:                t.name,
		javadoc:             t.javadoc.ToBuilder(),
		annotations:         append([]*AnnotationSpec(nil), t.annotations...),
		modifiers:           t.modifiers,
		typeVariables:       append([]TypeName(nil), t.typeVariables...),
		superclass:          t.superclass,
		superinterfaces:     append([]TypeName(nil), t.superinterfaces...),
		enumConstantNames:   append([]string(nil), t.enumConstantNames...),
		enumConstants:       make(map[string]*TypeSpec, len(t.enumConstants)),
		fields:              append([]*FieldSpec(nil), t.fields...),
		staticBlock:         t.staticBlock.ToBuilder(),
		initializerBlock:    t.initializerBlock.ToBuilder(),
		methods:             append([]*MethodSpec(nil), t.methods...),
		types:               append([]*TypeSpec(nil), t.types...),
		alwaysQualify:       append([]string(nil), t.alwaysQualify...),
		originatingElements: append([]any(nil), t.originatingElements...),
	}
	if t.anonymousTypeArguments != nil {
		b.anonymousTypeArguments = t.anonymousTypeArguments
	}
	for name, c := range t.enumConstants {
		b.enumConstants[name] = c
	}
	return b
}
