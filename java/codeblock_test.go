package java

import (
	"testing"
)

func TestCodeBlockPlaceholders(t *testing.T) {
	param := ParameterOf(String, "food")
	tests := []struct {
		name     string
		format   string
		args     []any
		expected string
	}{
		{"type and string", "$T s = $S.substring(0, 3);\n", []any{String, "taco"}, "java.lang.String s = \"taco\".substring(0, 3);\n"},
		{"literal", "return $L", []any{42}, "return 42"},
		{"nil literal", "$L", []any{nil}, "null"},
		{"nil string", "$S", []any{nil}, "null"},
		{"escaped string", "$S", []any{`a"b\c`}, `"a\"b\\c"`},
		{"single quote is not escaped", "$S", []any{"it's"}, `"it's"`},
		{"tab", "$S", []any{"\t"}, `"\t"`},
		{"control character", "$S", []any{"\u0001"}, `"\u0001"`},
		{"stringer as string", "$S", []any{ClassNameOf("java.util", "List")}, `"java.util.List"`},
		{"dollar", "$$5", nil, "$5"},
		{"name from parameter", "$N.length()", []any{param}, "food.length()"},
		{"name from string", "$N", []any{"taco"}, "taco"},
		{"array type", "$T", []any{ArrayOf(Int)}, "int[]"},
		{"indexed", "$1L $2L $1L", []any{"a", "b"}, "a b a"},
		{"indexed does not advance", "$2L $L", []any{"a", "b"}, "b a"},
		{"code block literal", "($L)", []any{CodeBlockOf("$T.class", String)}, "(java.lang.String.class)"},
		{"indent", "a\n$>b\n$<c\n", nil, "a\n  b\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CodeBlockOf(tt.format, tt.args...).String()
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCodeBlockErrors(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []any
		expected string
	}{
		{"index out of range", "$3L", []any{"a", "b"}, "index 3 for '$3L' not in range (received 2 arguments)"},
		{"too few arguments", "$L $L", []any{"a"}, "index 2 for '$L' not in range (received 1 arguments)"},
		{"unused argument", "$L", []any{"a", "b"}, "unused argument: $2"},
		{"unused arguments", "$1L", []any{"a", "b", "c"}, "unused arguments: $2, $3"},
		{"argument without placeholder", "hello", []any{1}, "unused argument: $1"},
		{"bad name", "$N", []any{42}, "expected name but was 42"},
		{"bad type", "$T", []any{"String"}, "expected type but was String"},
		{"dangling dollar", "$", nil, "dangling format characters in '$'"},
		{"dangling index", "a $1", []any{"x"}, "dangling format characters in 'a $1'"},
		{"indexed dollar", "$1$", nil, "$$, $>, $<, $[, $], $W, and $Z may not have an index"},
		{"unknown directive", "$X", nil, "invalid format string: '$X'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, ErrInvalidArgument, tt.expected, func() {
				CodeBlockOf(tt.format, tt.args...)
			})
		})
	}
}

func TestCodeBlockNamedArguments(t *testing.T) {
	cb := NewCodeBlock().
		AddNamed("$food:S has $count:L $$", map[string]any{"food": "taco", "count": 3}).
		Build()
	if got, want := cb.String(), `"taco" has 3 $`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	expectError(t, ErrInvalidArgument, "Missing named argument for $food", func() {
		NewCodeBlock().AddNamed("$food:S", map[string]any{"count": 1})
	})
	expectError(t, ErrInvalidArgument, "argument 'Food' must start with a lowercase character", func() {
		NewCodeBlock().AddNamed("$Food:S", map[string]any{"Food": "taco"})
	})
	expectError(t, ErrInvalidArgument, "dangling $ at end", func() {
		NewCodeBlock().AddNamed("taco $", nil)
	})
}

func TestCodeBlockMultilineString(t *testing.T) {
	got := CodeBlockOf("$S", "a\nb\n").String()
	want := "\"a\\n\"\n    + \"b\\n\""
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCodeBlockControlFlow(t *testing.T) {
	cb := NewCodeBlock().
		AddComment("pick one").
		BeginControlFlow("if ($N)", "hungry").
		AddStatement("eat()").
		NextControlFlow("else").
		AddStatement("sleep()").
		EndControlFlow().
		BeginControlFlow("do").
		AddStatement("chew()").
		EndControlFlowWith("while (hungry)").
		Build()

	want := "// pick one\n" +
		"if (hungry) {\n" +
		"  eat();\n" +
		"} else {\n" +
		"  sleep();\n" +
		"}\n" +
		"do {\n" +
		"  chew();\n" +
		"} while (hungry);\n"
	if got := cb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCodeBlockStatementWrapping(t *testing.T) {
	cb := NewCodeBlock().
		AddStatement("$L$W+$W$L", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb").
		AddStatement("done()").
		Build()
	want := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa +\n" +
		"    bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb;\n" +
		"done();\n"
	if got := cb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCodeBlockNestedStatement(t *testing.T) {
	cb := NewCodeBlock().Add("$[$[").Build()
	expectError(t, ErrIllegalState, "statement enter $[ followed by statement enter $[", func() {
		_ = cb.String()
	})
	cb = NewCodeBlock().Add("$]").Build()
	expectError(t, ErrIllegalState, "statement exit $] has no matching statement enter $[", func() {
		_ = cb.String()
	})
}

func TestJoinCodeBlocks(t *testing.T) {
	joined := JoinCodeBlocks(", ", CodeBlockOf("$S", "a"), CodeBlockOf("$L", 1), CodeBlockOf("$T", Int))
	if got, want := joined.String(), `"a", 1, int`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !JoinCodeBlocks(", ").IsEmpty() {
		t.Error("joining nothing should be empty")
	}
}

func TestCodeBlockEquality(t *testing.T) {
	a := CodeBlockOf("$T $N = $S;\n", String, "s", "taco")
	if !a.Equal(a.ToBuilder().Build()) {
		t.Error("ToBuilder().Build() changed the block")
	}
	if a.Equal(CodeBlockOf("java.lang.String s = \"taco\";\n")) {
		t.Error("a $T placeholder equals the text it renders to")
	}
	if !CodeBlockOf("ab").Equal(NewCodeBlock().Add("a").Add("b").Build()) {
		t.Error("splitting text across Add calls changed equality")
	}
	if a.Equal(CodeBlockOf("")) {
		t.Error("non-empty block equals empty block")
	}

	b := a.ToBuilder().Add("more();\n").Build()
	if a.Equal(b) {
		t.Error("modifying a builder from ToBuilder changed the original")
	}
	if !NewCodeBlock().Add("x").Clear().IsEmpty() {
		t.Error("Clear left content behind")
	}
	var nilBlock *CodeBlock
	if !nilBlock.IsEmpty() || nilBlock.String() != "" {
		t.Error("nil block should be empty")
	}
}

func TestCodeBlockEqualityIsStructural(t *testing.T) {
	unbalanced := func() *CodeBlock {
		return NewCodeBlock().Unindent().Add("$T x", list).Build()
	}
	a, b := unbalanced(), unbalanced()
	var equal bool
	if err := Capture(func() { equal = a.Equal(b) }); err != nil {
		t.Fatalf("Equal failed: %v", err)
	}
	if !equal {
		t.Error("identically built blocks are not equal")
	}

	tests := []struct {
		name  string
		a, b  *CodeBlock
		equal bool
	}{
		{"same type", CodeBlockOf("$T", list), CodeBlockOf("$T", ClassNameOf("java.util", "List")), true},
		{"different type", CodeBlockOf("$T", list), CodeBlockOf("$T", String), false},
		{"annotated type", CodeBlockOf("$T", Annotated(String, AnnotationOf(override))), CodeBlockOf("$T", String), false},
		{"nested block", CodeBlockOf("($L)", CodeBlockOf("$S", "a")), CodeBlockOf("($L)", CodeBlockOf("$S", "a")), true},
		{"nested block differs", CodeBlockOf("($L)", CodeBlockOf("$S", "a")), CodeBlockOf("($L)", CodeBlockOf("$S", "b")), false},
		{"literal", CodeBlockOf("$L", 1), CodeBlockOf("$L", 1), true},
		{"literal kind", CodeBlockOf("$L", 1), CodeBlockOf("$L", "1"), false},
		{"indent markers", CodeBlockOf("$>x$<"), CodeBlockOf("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal = %v, want %v", got, tt.equal)
			}
			if got := tt.b.Equal(tt.a); got != tt.equal {
				t.Errorf("reversed Equal = %v, want %v", got, tt.equal)
			}
		})
	}
}

func TestAnnotatedTypeKeyDoesNotRender(t *testing.T) {
	odd := NewAnnotation(annotation).AddMember("value", "$<$L", 1).Build()
	a := Annotated(String, odd)
	b := Annotated(String, NewAnnotation(annotation).AddMember("value", "$<$L", 1).Build())
	var equal bool
	if err := Capture(func() { equal = TypesEqual(a, b) && odd.Equal(odd) }); err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !equal {
		t.Error("identical annotated types are not equal")
	}
}
