package java

// TypeSpecBuilder configures a TypeSpec. Each call checks the invariant it
// could break and panics with a package error at the offending call.
type TypeSpecBuilder struct {
	kind                   Kind
	name                   string
	anonymousTypeArguments *CodeBlock
	javadoc                *CodeBlockBuilder
	annotations            []*AnnotationSpec
	modifiers              modifierSet
	typeVariables          []TypeName
	superclass             TypeName
	superinterfaces        []TypeName
	enumConstantNames      []string
	enumConstants          map[string]*TypeSpec
	fields                 []*FieldSpec
	staticBlock            *CodeBlockBuilder
	initializerBlock       *CodeBlockBuilder
	methods                []*MethodSpec
	types                  []*TypeSpec
	alwaysQualify          []string
	originatingElements    []any
}

func newTypeSpecBuilder(kind Kind, name string, anonymousArgs *CodeBlock) *TypeSpecBuilder {
	if anonymousArgs == nil {
		checkArgument(IsName(name), "not a valid name: %s", name)
	}
	return &TypeSpecBuilder{
		kind:                   kind,
		name:                   name,
		anonymousTypeArguments: anonymousArgs,
		javadoc:                NewCodeBlock(),
		superclass:             Object,
		enumConstants:          map[string]*TypeSpec{},
		staticBlock:            NewCodeBlock(),
		initializerBlock:       NewCodeBlock(),
	}
}

func NewClass(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindClass, name, nil)
}

func NewInterface(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindInterface, name, nil)
}

func NewEnum(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindEnum, name, nil)
}

func NewAnnotationType(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindAnnotation, name, nil)
}

// NewAnonymousClass starts an anonymous class whose constructor arguments
// are given by format. An empty format means no arguments.
func NewAnonymousClass(format string, args ...any) *TypeSpecBuilder {
	return NewAnonymousClassBlock(CodeBlockOf(format, args...))
}

func NewAnonymousClassBlock(typeArguments *CodeBlock) *TypeSpecBuilder {
	checkNotNull(typeArguments != nil, "typeArguments")
	return newTypeSpecBuilder(KindClass, "", typeArguments)
}

func (b *TypeSpecBuilder) describe() string {
	if b.anonymousTypeArguments != nil {
		return "anonymous " + b.kind.String()
	}
	return b.kind.String() + " " + b.name
}

func (b *TypeSpecBuilder) AddJavadoc(format string, args ...any) *TypeSpecBuilder {
	b.javadoc.Add(format, args...)
	return b
}

func (b *TypeSpecBuilder) AddJavadocBlock(cb *CodeBlock) *TypeSpecBuilder {
	b.javadoc.AddBlock(cb)
	return b
}

func (b *TypeSpecBuilder) AddAnnotation(a *AnnotationSpec) *TypeSpecBuilder {
	checkNotNull(a != nil, "annotationSpec")
	b.annotations = append(b.annotations, a)
	return b
}

func (b *TypeSpecBuilder) RemoveAnnotation(a *AnnotationSpec) *TypeSpecBuilder {
	b.annotations = removeAnnotation(b.annotations, a)
	return b
}

func (b *TypeSpecBuilder) AddModifiers(modifiers ...Modifier) *TypeSpecBuilder {
	checkState(b.anonymousTypeArguments == nil, "forbidden on anonymous types.")
	for _, m := range modifiers {
		checkModifier(m)
		b.modifiers = b.modifiers.with(m)
	}
	checkVisibility(b.modifiers, b.describe())
	return b
}

func (b *TypeSpecBuilder) RemoveModifiers(modifiers ...Modifier) *TypeSpecBuilder {
	for _, m := range modifiers {
		b.modifiers = b.modifiers.without(m)
	}
	return b
}

func (b *TypeSpecBuilder) AddTypeVariable(tv TypeName) *TypeSpecBuilder {
	checkState(b.anonymousTypeArguments == nil, "typevariables are forbidden on anonymous types.")
	_, ok := WithoutAnnotations(tv).(*TypeVariableName)
	checkArgument(ok, "not a type variable: %v", tv)
	b.typeVariables = append(b.typeVariables, tv)
	return b
}

func (b *TypeSpecBuilder) Superclass(t TypeName) *TypeSpecBuilder {
	checkNotNull(t != nil, "superclass")
	checkSupported(b.kind == KindClass, "only classes have super classes, not %s", b.kind)
	checkSupported(TypesEqual(b.superclass, Object), "superclass already set to %s", b.superclass)
	checkArgument(!IsPrimitive(t) && !isVoid(t), "superclass may not be a primitive")
	b.superclass = t
	return b
}

func (b *TypeSpecBuilder) AddSuperinterface(t TypeName) *TypeSpecBuilder {
	checkNotNull(t != nil, "superinterface")
	checkArgument(!IsPrimitive(t) && !isVoid(t), "superinterface may not be a primitive")
	b.superinterfaces = append(b.superinterfaces, t)
	return b
}

func (b *TypeSpecBuilder) AddEnumConstant(name string) *TypeSpecBuilder {
	return b.AddEnumConstantWithBody(name, NewAnonymousClass("").Build())
}

// AddEnumConstantWithBody adds a constant whose constructor arguments and
// class body come from an anonymous class.
func (b *TypeSpecBuilder) AddEnumConstantWithBody(name string, body *TypeSpec) *TypeSpecBuilder {
	checkState(b.kind == KindEnum, "%s is not enum", b.describe())
	checkNotNull(body != nil, "typeSpec")
	checkArgument(body.anonymousTypeArguments != nil, "enum constants must have anonymous type arguments")
	checkArgument(IsName(name), "not a valid enum constant: %s", name)
	if _, ok := b.enumConstants[name]; !ok {
		b.enumConstantNames = append(b.enumConstantNames, name)
	}
	b.enumConstants[name] = body
	return b
}

// AddField adds a field. In interfaces and annotation types fields are
// public static final whether or not those modifiers are given.
func (b *TypeSpecBuilder) AddField(f *FieldSpec) *TypeSpecBuilder {
	checkNotNull(f != nil, "fieldSpec")
	if implicit := b.kind.implicitFieldModifiers(); implicit != 0 {
		checkState(!f.modifiers.hasAny(modifiersOf(Private, Protected)),
			"%s.%s requires modifiers %s", b.describe(), f.name, implicit)
		f = f.withModifiers(implicit)
	}
	b.fields = append(b.fields, f)
	return b
}

// AddFieldOf adds a field built from its parts.
func (b *TypeSpecBuilder) AddFieldOf(t TypeName, name string, modifiers ...Modifier) *TypeSpecBuilder {
	return b.AddField(NewField(t, name, modifiers...).Build())
}

func (b *TypeSpecBuilder) RemoveField(name string) *TypeSpecBuilder {
	for i, f := range b.fields {
		if f.name == name {
			b.fields = append(b.fields[:i:i], b.fields[i+1:]...)
			break
		}
	}
	return b
}

// AddMethod adds a method or constructor, applying the modifier rules of
// the declaring kind.
func (b *TypeSpecBuilder) AddMethod(m *MethodSpec) *TypeSpecBuilder {
	checkNotNull(m != nil, "methodSpec")
	owner := b.describe() + "." + m.name
	switch b.kind {
	case KindInterface:
		checkState(!m.IsConstructor(), "%s: interfaces cannot have constructors", owner)
		checkState(!(m.modifiers.has(Default) && m.modifiers.has(Static)),
			"%s cannot be both default and static", owner)
		checkState(!(m.modifiers.has(Private) && m.modifiers.has(Abstract)),
			"%s cannot be both private and abstract", owner)
		checkState(!(m.modifiers.has(Private) && m.modifiers.has(Default)),
			"%s cannot be both private and default", owner)
		checkState(!m.modifiers.has(Protected), "%s cannot be protected", owner)
		var extra modifierSet
		if !m.modifiers.has(Private) {
			extra = extra.with(Public)
		}
		if !m.modifiers.hasAny(modifiersOf(Abstract, Static, Default, Private)) {
			checkState(m.code.IsEmpty(),
				"%s has a body and requires one of modifiers [abstract, static, default, private]", owner)
			extra = extra.with(Abstract)
		}
		checkState(!m.modifiers.has(Abstract) || m.code.IsEmpty(), "abstract method %s cannot have code", m.name)
		m = m.withModifiers(extra)
	case KindAnnotation:
		implicit := b.kind.implicitMethodModifiers()
		checkState(m.modifiers&^implicit == 0 && !m.IsConstructor(),
			"%s requires modifiers %s", owner, implicit)
		checkState(len(m.parameters) == 0, "%s cannot have parameters", owner)
		m = m.withModifiers(implicit)
	}
	if b.kind != KindAnnotation {
		checkState(m.defaultValue.IsEmpty(), "%s cannot have a default value", owner)
	}
	if b.kind != KindInterface {
		checkState(!m.modifiers.has(Default), "%s cannot be default", owner)
	}
	b.methods = append(b.methods, m)
	return b
}

func (b *TypeSpecBuilder) RemoveMethod(name string) *TypeSpecBuilder {
	for i, m := range b.methods {
		if m.name == name {
			b.methods = append(b.methods[:i:i], b.methods[i+1:]...)
			break
		}
	}
	return b
}

func (b *TypeSpecBuilder) AddStaticBlock(cb *CodeBlock) *TypeSpecBuilder {
	checkNotNull(cb != nil, "block")
	b.staticBlock.AddBlock(cb)
	return b
}

func (b *TypeSpecBuilder) AddInitializerBlock(cb *CodeBlock) *TypeSpecBuilder {
	checkNotNull(cb != nil, "block")
	checkSupported(b.kind == KindClass || b.kind == KindEnum,
		"%s can't have initializer blocks", b.kind)
	b.initializerBlock.AddBlock(cb)
	return b
}

// AddType nests t inside this type. Member types of interfaces and
// annotation types are implicitly public and static.
func (b *TypeSpecBuilder) AddType(t *TypeSpec) *TypeSpecBuilder {
	checkNotNull(t != nil, "typeSpec")
	checkArgument(!t.IsAnonymous(), "anonymous types cannot be members")
	if implicit := b.kind.implicitTypeModifiers(); implicit != 0 {
		checkState(!t.modifiers.hasAny(modifiersOf(Private, Protected)),
			"%s.%s requires modifiers %s", b.describe(), t.name, implicit)
		c := *t
		c.modifiers = c.modifiers.union(implicit)
		t = &c
	}
	b.types = append(b.types, t)
	return b
}

func (b *TypeSpecBuilder) RemoveType(name string) *TypeSpecBuilder {
	for i, t := range b.types {
		if t.name == name {
			b.types = append(b.types[:i:i], b.types[i+1:]...)
			break
		}
	}
	return b
}

// AlwaysQualify keeps the given simple names from ever being imported or
// written unqualified anywhere in the file.
func (b *TypeSpecBuilder) AlwaysQualify(simpleNames ...string) *TypeSpecBuilder {
	for _, name := range simpleNames {
		checkNotNull(name != "", "simpleName")
		b.alwaysQualify = append(b.alwaysQualify, name)
	}
	return b
}

// AvoidClashesWithNestedClasses treats the member types of outer, such as
// a superclass declared elsewhere, as if they were in scope, so references
// to unrelated classes with the same simple names stay qualified.
func (b *TypeSpecBuilder) AvoidClashesWithNestedClasses(outer *ClassName, nestedSimpleNames ...string) *TypeSpecBuilder {
	checkNotNull(outer != nil, "outer")
	for _, name := range nestedSimpleNames {
		outer.NestedClass(name)
	}
	return b.AlwaysQualify(nestedSimpleNames...)
}

// AddOriginatingElement records caller data that is carried but never
// rendered.
func (b *TypeSpecBuilder) AddOriginatingElement(e any) *TypeSpecBuilder {
	b.originatingElements = append(b.originatingElements, e)
	return b
}

func (b *TypeSpecBuilder) Build() *TypeSpec {
	isAbstract := b.modifiers.has(Abstract) || b.kind != KindClass
	for _, m := range b.methods {
		checkState(isAbstract || !m.modifiers.has(Abstract),
			"%s.%s requires modifiers [abstract]", b.describe(), m.name)
	}
	if b.anonymousTypeArguments != nil {
		supertypes := len(b.superinterfaces)
		if !TypesEqual(b.superclass, Object) {
			supertypes++
		}
		checkArgument(supertypes <= 1, "anonymous type has too many supertypes")
	}

	t := &TypeSpec{
		kind:                   b.kind,
		name:                   b.name,
		anonymousTypeArguments: b.anonymousTypeArguments,
		javadoc:                b.javadoc.Build(),
		annotations:            append([]*AnnotationSpec(nil), b.annotations...),
		modifiers:              b.modifiers,
		typeVariables:          append([]TypeName(nil), b.typeVariables...),
		superclass:             b.superclass,
		superinterfaces:        append([]TypeName(nil), b.superinterfaces...),
		enumConstantNames:      append([]string(nil), b.enumConstantNames...),
		enumConstants:          make(map[string]*TypeSpec, len(b.enumConstants)),
		fields:                 append([]*FieldSpec(nil), b.fields...),
		staticBlock:            b.staticBlock.Build(),
		initializerBlock:       b.initializerBlock.Build(),
		methods:                append([]*MethodSpec(nil), b.methods...),
		types:                  append([]*TypeSpec(nil), b.types...),
		alwaysQualify:          append([]string(nil), b.alwaysQualify...),
		originatingElements:    append([]any(nil), b.originatingElements...),
		nestedTypeNames:        make(map[string]bool, len(b.types)),
	}
	for name, c := range b.enumConstants {
		t.enumConstants[name] = c
	}
	for _, nested := range b.types {
		t.nestedTypeNames[nested.name] = true
	}
	return t
}
