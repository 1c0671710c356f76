package java

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeName is a reference to a Java type. The set of implementations is
// closed: *PrimitiveName, *ClassName, *ParameterizedTypeName,
// *ArrayTypeName, *TypeVariableName, *WildcardTypeName and
// *AnnotatedTypeName. Values are immutable.
type TypeName interface {
	// String renders the type with every class name fully qualified.
	String() string
	isTypeName()
}

// PrimitiveName is one of the eight primitive types or void.
type PrimitiveName struct {
	keyword string
}

func (*PrimitiveName) isTypeName() {}
func (p *PrimitiveName) String() string { return p.keyword }

// Keyword returns the source keyword, e.g. "int".
func (p *PrimitiveName) Keyword() string { return p.keyword }

var (
	Void    = &PrimitiveName{"void"}
	Boolean = &PrimitiveName{"boolean"}
	Byte    = &PrimitiveName{"byte"}
	Short   = &PrimitiveName{"short"}
	Int     = &PrimitiveName{"int"}
	Long    = &PrimitiveName{"long"}
	Char    = &PrimitiveName{"char"}
	Float   = &PrimitiveName{"float"}
	Double  = &PrimitiveName{"double"}
)

var (
	Object        = ClassNameOf("java.lang", "Object")
	String        = ClassNameOf("java.lang", "String")
	BoxedVoid     = ClassNameOf("java.lang", "Void")
	BoxedBoolean  = ClassNameOf("java.lang", "Boolean")
	BoxedByte     = ClassNameOf("java.lang", "Byte")
	BoxedShort    = ClassNameOf("java.lang", "Short")
	BoxedInt      = ClassNameOf("java.lang", "Integer")
	BoxedLong     = ClassNameOf("java.lang", "Long")
	BoxedChar     = ClassNameOf("java.lang", "Character")
	BoxedFloat    = ClassNameOf("java.lang", "Float")
	BoxedDouble   = ClassNameOf("java.lang", "Double")
	javaLangClass = ClassNameOf("java.lang", "Class")
)

var primitives = []struct {
	prim  *PrimitiveName
	boxed *ClassName
}{
	{Void, BoxedVoid},
	{Boolean, BoxedBoolean},
	{Byte, BoxedByte},
	{Short, BoxedShort},
	{Int, BoxedInt},
	{Long, BoxedLong},
	{Char, BoxedChar},
	{Float, BoxedFloat},
	{Double, BoxedDouble},
}

// PrimitiveByKeyword looks up a primitive (or void) by its keyword.
func PrimitiveByKeyword(keyword string) (*PrimitiveName, bool) {
	for _, p := range primitives {
		if p.prim.keyword == keyword {
			return p.prim, true
		}
	}
	return nil, false
}

// ParameterizedTypeName is a class applied to type arguments, e.g.
// List<String>. The enclosing type is set for inner classes of a generic
// outer class, e.g. Outer<T>.Inner<U>.
type ParameterizedTypeName struct {
	enclosing     *ParameterizedTypeName
	rawType       *ClassName
	typeArguments []TypeName
}

func (*ParameterizedTypeName) isTypeName() {}
func (p *ParameterizedTypeName) String() string { return typeString(p) }

func (p *ParameterizedTypeName) RawType() *ClassName { return p.rawType }

func (p *ParameterizedTypeName) TypeArguments() []TypeName {
	return append([]TypeName(nil), p.typeArguments...)
}

// ParameterizedTypeNameOf applies typeArguments to rawType. With no
// arguments the raw class name itself is returned.
func ParameterizedTypeNameOf(rawType *ClassName, typeArguments ...TypeName) TypeName {
	checkNotNull(rawType != nil, "rawType")
	if len(typeArguments) == 0 {
		return rawType
	}
	return newParameterized(nil, rawType, typeArguments)
}

func newParameterized(enclosing *ParameterizedTypeName, rawType *ClassName, args []TypeName) *ParameterizedTypeName {
	for _, arg := range args {
		checkNotNull(arg != nil, "typeArgument")
		checkArgument(!IsPrimitive(arg) && !isVoid(arg), "invalid type parameter: %s", arg)
	}
	return &ParameterizedTypeName{
		enclosing:     enclosing,
		rawType:       rawType,
		typeArguments: append([]TypeName(nil), args...),
	}
}

// NestedClass returns the inner class name of this generic outer type.
func (p *ParameterizedTypeName) NestedClass(name string, typeArguments ...TypeName) *ParameterizedTypeName {
	return newParameterized(p, p.rawType.NestedClass(name), typeArguments)
}

// ArrayTypeName is an array of a component type.
type ArrayTypeName struct {
	component TypeName
}

func (*ArrayTypeName) isTypeName() {}
func (a *ArrayTypeName) String() string { return typeString(a) }

func (a *ArrayTypeName) Component() TypeName { return a.component }

func ArrayOf(component TypeName) *ArrayTypeName {
	checkNotNull(component != nil, "componentType")
	return &ArrayTypeName{component: component}
}

// asArray unwraps annotations and reports whether t is an array type.
func asArray(t TypeName) (*ArrayTypeName, []*AnnotationSpec, bool) {
	base, anns := splitAnnotations(t)
	a, ok := base.(*ArrayTypeName)
	return a, anns, ok
}

// TypeVariableName is a type variable such as T, with optional bounds.
type TypeVariableName struct {
	name   string
	bounds []TypeName
}

func (*TypeVariableName) isTypeName() {}
func (v *TypeVariableName) String() string { return typeString(v) }

func (v *TypeVariableName) Name() string { return v.name }

func (v *TypeVariableName) Bounds() []TypeName {
	return append([]TypeName(nil), v.bounds...)
}

// TypeVariableOf returns a type variable. Bounds equal to Object are
// dropped since they are implied.
func TypeVariableOf(name string, bounds ...TypeName) *TypeVariableName {
	checkNotNull(name != "", "name")
	var kept []TypeName
	for _, b := range bounds {
		checkNotNull(b != nil, "bound")
		checkArgument(!IsPrimitive(b) && !isVoid(b), "invalid bound: %s", b)
		if TypesEqual(b, Object) {
			continue
		}
		kept = append(kept, b)
	}
	return &TypeVariableName{name: name, bounds: kept}
}

// WithBounds returns a copy of v with extra bounds appended.
func (v *TypeVariableName) WithBounds(bounds ...TypeName) *TypeVariableName {
	return TypeVariableOf(v.name, append(v.Bounds(), bounds...)...)
}

// WildcardTypeName is ?, ? extends T or ? super T.
type WildcardTypeName struct {
	upper TypeName
	lower TypeName
}

func (*WildcardTypeName) isTypeName() {}
func (w *WildcardTypeName) String() string { return typeString(w) }

// UpperBound is Object for unbounded and lower-bounded wildcards.
func (w *WildcardTypeName) UpperBound() TypeName { return w.upper }

// LowerBound is nil unless this is a ? super wildcard.
func (w *WildcardTypeName) LowerBound() TypeName { return w.lower }

// Unbounded is the wildcard ?.
var Unbounded = &WildcardTypeName{upper: Object}

func SubtypeOf(upper TypeName) *WildcardTypeName {
	checkNotNull(upper != nil, "upperBound")
	checkArgument(!IsPrimitive(upper) && !isVoid(upper), "invalid wildcard bound: %s", upper)
	return &WildcardTypeName{upper: upper}
}

func SupertypeOf(lower TypeName) *WildcardTypeName {
	checkNotNull(lower != nil, "lowerBound")
	checkArgument(!IsPrimitive(lower) && !isVoid(lower), "invalid wildcard bound: %s", lower)
	return &WildcardTypeName{upper: Object, lower: lower}
}

// AnnotatedTypeName layers type annotations over a bare type.
type AnnotatedTypeName struct {
	typ         TypeName
	annotations []*AnnotationSpec
}

func (*AnnotatedTypeName) isTypeName() {}
func (a *AnnotatedTypeName) String() string { return typeString(a) }

// Type returns the unannotated type.
func (a *AnnotatedTypeName) Type() TypeName { return a.typ }

func (a *AnnotatedTypeName) Annotations() []*AnnotationSpec {
	return append([]*AnnotationSpec(nil), a.annotations...)
}

// Annotated returns t with annotations appended to any it already carries.
func Annotated(t TypeName, annotations ...*AnnotationSpec) TypeName {
	checkNotNull(t != nil, "type")
	for _, a := range annotations {
		checkNotNull(a != nil, "annotations")
	}
	if len(annotations) == 0 {
		return t
	}
	base, existing := splitAnnotations(t)
	all := make([]*AnnotationSpec, 0, len(existing)+len(annotations))
	all = append(all, existing...)
	all = append(all, annotations...)
	return &AnnotatedTypeName{typ: base, annotations: all}
}

// WithoutAnnotations strips top-level type annotations from t.
func WithoutAnnotations(t TypeName) TypeName {
	base, _ := splitAnnotations(t)
	return base
}

// IsAnnotated reports whether t carries type annotations.
func IsAnnotated(t TypeName) bool {
	_, ok := t.(*AnnotatedTypeName)
	return ok
}

func splitAnnotations(t TypeName) (TypeName, []*AnnotationSpec) {
	if a, ok := t.(*AnnotatedTypeName); ok {
		return a.typ, a.annotations
	}
	return t, nil
}

func reannotate(t TypeName, annotations []*AnnotationSpec) TypeName {
	if len(annotations) == 0 {
		return t
	}
	return &AnnotatedTypeName{typ: t, annotations: annotations}
}

// IsPrimitive reports whether t is one of the eight primitive types.
// void is not primitive.
func IsPrimitive(t TypeName) bool {
	p, ok := WithoutAnnotations(t).(*PrimitiveName)
	return ok && p != Void
}

func isVoid(t TypeName) bool {
	return WithoutAnnotations(t) == Void
}

// IsBoxedPrimitive reports whether t is a wrapper class such as Integer.
func IsBoxedPrimitive(t TypeName) bool {
	c, ok := WithoutAnnotations(t).(*ClassName)
	if !ok {
		return false
	}
	for _, p := range primitives[1:] {
		if c.Equal(p.boxed) {
			return true
		}
	}
	return false
}

// Box maps a primitive (or void) to its wrapper class. Other types are
// returned unchanged. Annotations are preserved.
func Box(t TypeName) TypeName {
	base, anns := splitAnnotations(t)
	for _, p := range primitives {
		if base == TypeName(p.prim) {
			return reannotate(p.boxed, anns)
		}
	}
	return t
}

// Unbox maps a wrapper class to its primitive. Primitives are returned
// unchanged; every other type is an ErrUnsupported error.
func Unbox(t TypeName) (TypeName, error) {
	base, anns := splitAnnotations(t)
	if _, ok := base.(*PrimitiveName); ok {
		return t, nil
	}
	if c, ok := base.(*ClassName); ok {
		for _, p := range primitives {
			if c.Equal(p.boxed) {
				return reannotate(p.prim, anns), nil
			}
		}
	}
	return nil, newError(ErrUnsupported, "cannot unbox %s", t)
}

// TypesEqual compares two type names structurally, annotations included.
func TypesEqual(a, b TypeName) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return TypeKey(a) == TypeKey(b)
}

// TypeKey returns a string that identifies t structurally. Equal types
// have equal keys, so it can be used as a map key.
func TypeKey(t TypeName) string {
	var sb strings.Builder
	writeTypeKey(&sb, t)
	return sb.String()
}

func writeTypeKey(sb *strings.Builder, t TypeName) {
	switch n := t.(type) {
	case *PrimitiveName:
		sb.WriteString(n.keyword)
	case *ClassName:
		sb.WriteString(n.packageName)
		sb.WriteByte('/')
		sb.WriteString(strings.Join(n.SimpleNames(), "."))
	case *ParameterizedTypeName:
		if n.enclosing != nil {
			writeTypeKey(sb, n.enclosing)
			sb.WriteByte('.')
			sb.WriteString(n.rawType.simpleName)
		} else {
			writeTypeKey(sb, n.rawType)
		}
		sb.WriteByte('<')
		for i, arg := range n.typeArguments {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeTypeKey(sb, arg)
		}
		sb.WriteByte('>')
	case *ArrayTypeName:
		writeTypeKey(sb, n.component)
		sb.WriteString("[]")
	case *TypeVariableName:
		sb.WriteString(n.name)
		for i, b := range n.bounds {
			if i == 0 {
				sb.WriteString(" extends ")
			} else {
				sb.WriteString(" & ")
			}
			writeTypeKey(sb, b)
		}
	case *WildcardTypeName:
		sb.WriteByte('?')
		if n.lower != nil {
			sb.WriteString(" super ")
			writeTypeKey(sb, n.lower)
		} else if !TypesEqual(n.upper, Object) {
			sb.WriteString(" extends ")
			writeTypeKey(sb, n.upper)
		}
	case *AnnotatedTypeName:
		sb.WriteByte('(')
		for i, a := range n.annotations {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeAnnotationKey(sb, a)
		}
		sb.WriteByte(')')
		writeTypeKey(sb, n.typ)
	}
}

func writeAnnotationKey(sb *strings.Builder, a *AnnotationSpec) {
	sb.WriteByte('@')
	writeTypeKey(sb, a.typ)
	sb.WriteByte('(')
	for i, name := range a.memberNames {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		for _, v := range a.members[name] {
			sb.WriteByte('{')
			writeCodeBlockKey(sb, v)
			sb.WriteByte('}')
		}
	}
	sb.WriteByte(')')
}

func writeCodeBlockKey(sb *strings.Builder, cb *CodeBlock) {
	if cb.IsEmpty() {
		return
	}
	a := 0
	for _, part := range mergeText(cb.formatParts) {
		if !isDirectivePart(part) || !directive(part[1]).takesArgument() {
			sb.WriteString(strconv.Quote(part))
			continue
		}
		sb.WriteString(part)
		sb.WriteByte('{')
		switch v := cb.args[a].(type) {
		case TypeName:
			writeTypeKey(sb, v)
		case *CodeBlock:
			writeCodeBlockKey(sb, v)
		case *AnnotationSpec:
			writeAnnotationKey(sb, v)
		default:
			fmt.Fprintf(sb, "%#v", v)
		}
		sb.WriteByte('}')
		a++
	}
}

// VarargsString renders t as the type of a variable arity parameter, with
// the last array dimension written as "...". Non-array types render as
// String does.
func VarargsString(t TypeName) string {
	return renderString(func(w *codeWriter) {
		w.emitTypeVarargs(nil, t, true)
	})
}

// typeString renders t without imports.
func typeString(t TypeName) string {
	return renderString(func(w *codeWriter) {
		w.emitType(nil, t)
	})
}
