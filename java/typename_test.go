package java

import (
	"testing"
)

func TestVarargsString(t *testing.T) {
	a := AnnotationOf(ClassNameOf("", "A"))
	b := AnnotationOf(ClassNameOf("", "B"))
	tests := []struct {
		name     string
		typ      TypeName
		expected string
	}{
		{"array", ArrayOf(String), "java.lang.String..."},
		{"two dimensional array", ArrayOf(ArrayOf(Int)), "int[]..."},
		{"annotated array", Annotated(ArrayOf(String), a), "java.lang.String @A ..."},
		{"annotated dimensions", Annotated(ArrayOf(Annotated(ArrayOf(Int), b)), a), "int @A [] @B ..."},
		{"annotated component", ArrayOf(Annotated(String, a)), "java.lang. @A String..."},
		{"not an array", String, "java.lang.String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VarargsString(tt.typ); got != tt.expected {
				t.Errorf("VarargsString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTypeNameString(t *testing.T) {
	a := AnnotationOf(ClassNameOf("", "A"))
	b := AnnotationOf(ClassNameOf("", "B"))
	tests := []struct {
		name     string
		typ      TypeName
		expected string
	}{
		{"primitive", Int, "int"},
		{"void", Void, "void"},
		{"class", String, "java.lang.String"},
		{"nested class", ClassNameOf("java.util", "Map", "Entry"), "java.util.Map.Entry"},
		{"default package", ClassNameOf("", "Taco"), "Taco"},
		{"parameterized", ParameterizedTypeNameOf(list, String), "java.util.List<java.lang.String>"},
		{"array", ArrayOf(Int), "int[]"},
		{"two dimensional array", ArrayOf(ArrayOf(String)), "java.lang.String[][]"},
		{"type variable", TypeVariableOf("T", ClassNameOf("java.lang", "Number")), "T"},
		{"unbounded wildcard", Unbounded, "?"},
		{"upper bounded wildcard", SubtypeOf(ClassNameOf("java.lang", "Number")), "? extends java.lang.Number"},
		{"lower bounded wildcard", SupertypeOf(BoxedInt), "? super java.lang.Integer"},
		{"annotated class", Annotated(String, a), "java.lang. @A String"},
		{"annotated default package class", Annotated(ClassNameOf("", "Taco"), a), "@A Taco"},
		{"annotated primitive", Annotated(Int, a), "@A int"},
		{"annotated type variable", Annotated(TypeVariableOf("T"), a), "@A T"},
		{"annotated array", Annotated(ArrayOf(String), a), "java.lang.String @A []"},
		{"annotated component", ArrayOf(Annotated(String, a)), "java.lang. @A String[]"},
		{
			"annotated dimensions",
			Annotated(ArrayOf(Annotated(ArrayOf(Int), b)), a),
			"int @A [] @B []",
		},
		{
			"annotated parameterized",
			Annotated(ParameterizedTypeNameOf(list, String), a),
			"java.util. @A List<java.lang.String>",
		},
		{
			"inner class of generic outer",
			ParameterizedTypeNameOf(ClassNameOf("com.example", "Outer"), TypeVariableOf("T")).(*ParameterizedTypeName).
				NestedClass("Inner", TypeVariableOf("U")),
			"com.example.Outer<T>.Inner<U>",
		},
		{
			"wildcard argument",
			ParameterizedTypeNameOf(list, SubtypeOf(ClassNameOf("java.lang", "Number"))),
			"java.util.List<? extends java.lang.Number>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTypesEqual(t *testing.T) {
	a := AnnotationOf(annotation)
	names := []TypeName{
		Int,
		Void,
		String,
		ClassNameOf("java.util", "Map", "Entry"),
		ParameterizedTypeNameOf(list, String),
		ArrayOf(Long),
		TypeVariableOf("T", ClassNameOf("java.lang", "Number")),
		SubtypeOf(ClassNameOf("java.lang", "Number")),
		SupertypeOf(String),
		Unbounded,
	}
	for _, n := range names {
		if !TypesEqual(n, n) {
			t.Errorf("%s is not equal to itself", n)
		}
		annotated := Annotated(n, a)
		if TypesEqual(annotated, n) {
			t.Errorf("%s equals its bare form", annotated)
		}
		if !TypesEqual(annotated, Annotated(n, a)) {
			t.Errorf("%s differs from an identical annotated name", annotated)
		}
		if !TypesEqual(WithoutAnnotations(annotated), n) {
			t.Errorf("WithoutAnnotations(%s) differs from %s", annotated, n)
		}
	}

	if TypesEqual(TypeVariableOf("T"), TypeVariableOf("T", ClassNameOf("java.lang", "Number"))) {
		t.Error("type variables with different bounds are equal")
	}
	if !TypesEqual(ClassNameOf("java.util", "List"), list) {
		t.Error("class names built separately are not equal")
	}
	if TypeKey(ClassNameOf("a", "B", "C")) == TypeKey(ClassNameOf("a.B", "C")) {
		t.Error("nested class and package class share a key")
	}
}

func TestAnnotated(t *testing.T) {
	a := AnnotationOf(ClassNameOf("", "A"))
	b := AnnotationOf(ClassNameOf("", "B"))

	twice := Annotated(Annotated(String, a), b)
	at, ok := twice.(*AnnotatedTypeName)
	if !ok {
		t.Fatalf("Annotated returned %T", twice)
	}
	if len(at.Annotations()) != 2 {
		t.Errorf("got %d annotations, want 2", len(at.Annotations()))
	}
	if got, want := twice.String(), "java.lang. @A @B String"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if Annotated(String) != TypeName(String) {
		t.Error("annotating with nothing should return the same name")
	}

	expectError(t, ErrNullArgument, "annotations == null", func() {
		Annotated(String, a, nil)
	})
}

func TestBoxUnbox(t *testing.T) {
	for _, p := range primitives {
		boxed := Box(p.prim)
		if !TypesEqual(boxed, p.boxed) {
			t.Errorf("Box(%s) = %s, want %s", p.prim, boxed, p.boxed)
		}
		unboxed, err := Unbox(boxed)
		if err != nil {
			t.Fatalf("Unbox(%s): %v", boxed, err)
		}
		if unboxed != TypeName(p.prim) {
			t.Errorf("Unbox(Box(%s)) = %s", p.prim, unboxed)
		}
		again, err := Unbox(p.boxed)
		if err != nil {
			t.Fatalf("Unbox(%s): %v", p.boxed, err)
		}
		if !TypesEqual(Box(again), p.boxed) {
			t.Errorf("Box(Unbox(%s)) = %s", p.boxed, Box(again))
		}
	}

	got, err := Unbox(BoxedInt)
	if err != nil || got != TypeName(Int) {
		t.Errorf("Unbox(Integer) = %v, %v; want int", got, err)
	}

	_, err = Unbox(Object)
	if err == nil {
		t.Fatal("Unbox(Object) succeeded")
	}
	if err.Error() != "cannot unbox java.lang.Object" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !IsBuildError(err) {
		t.Errorf("error %v is not a build error", err)
	}

	a := AnnotationOf(ClassNameOf("", "A"))
	if got := Box(Annotated(Int, a)).String(); got != "java.lang. @A Integer" {
		t.Errorf("boxing kept annotations wrong: %q", got)
	}
	if Box(String) != TypeName(String) {
		t.Error("Box of a class should return it unchanged")
	}
}

func TestPrimitivePredicates(t *testing.T) {
	if !IsPrimitive(Int) || IsPrimitive(Void) || IsPrimitive(String) {
		t.Error("IsPrimitive misclassifies")
	}
	if !IsBoxedPrimitive(BoxedChar) || IsBoxedPrimitive(BoxedVoid) || IsBoxedPrimitive(String) {
		t.Error("IsBoxedPrimitive misclassifies")
	}
	if p, ok := PrimitiveByKeyword("double"); !ok || p != Double {
		t.Error("PrimitiveByKeyword(double) failed")
	}
}

func TestParameterizedTypeNameOf(t *testing.T) {
	if _, ok := ParameterizedTypeNameOf(list).(*ClassName); !ok {
		t.Error("zero type arguments should produce the raw class name")
	}
	expectError(t, ErrInvalidArgument, "invalid type parameter: int", func() {
		ParameterizedTypeNameOf(list, Int)
	})
}

func TestTypeVariableOf(t *testing.T) {
	tv := TypeVariableOf("T", Object)
	if len(tv.Bounds()) != 0 {
		t.Errorf("Object bound was kept: %v", tv.Bounds())
	}
	tv = tv.WithBounds(ClassNameOf("java.lang", "Number"))
	if len(tv.Bounds()) != 1 {
		t.Errorf("got %d bounds, want 1", len(tv.Bounds()))
	}
	expectError(t, ErrInvalidArgument, "invalid bound: int", func() {
		TypeVariableOf("T", Int)
	})
}
