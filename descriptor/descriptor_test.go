package descriptor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javapoet/java"
)

func buildOne(t *testing.T, text string, opts Options) string {
	t.Helper()
	doc, err := Load(strings.NewReader(text))
	require.NoError(t, err)
	files, err := Build(doc, opts)
	require.NoError(t, err)
	require.Len(t, files, 1)
	out, err := files[0].Render()
	require.NoError(t, err)
	return out
}

func TestBuildHelloWorld(t *testing.T) {
	out := buildOne(t, `
files:
  - package: com.example.helloworld
    type:
      name: HelloWorld
      visibility: public
      final: true
      methods:
        - name: main
          visibility: public
          static: true
          parameters:
            - name: args
              type: String[]
          code:
            - statement: $T.out.println($S)
              args:
                - type: System
                - string: Hello, JavaPoet!
`, Options{})

	assert.Equal(t, "package com.example.helloworld;\n"+
		"\n"+
		"import java.lang.String;\n"+
		"import java.lang.System;\n"+
		"\n"+
		"public final class HelloWorld {\n"+
		"  public static void main(String[] args) {\n"+
		"    System.out.println(\"Hello, JavaPoet!\");\n"+
		"  }\n"+
		"}\n", out)
}

func TestBuildEnum(t *testing.T) {
	out := buildOne(t, `
files:
  - package: com.example
    skipJavaLangImports: true
    type:
      kind: enum
      name: Roshambo
      visibility: public
      enumConstants:
        - name: ROCK
          arguments: ['"fist"']
        - name: PAPER
          arguments:
            - code: $S
              args: [{string: flat}]
      fields:
        - name: handPosition
          type: String
          visibility: private
          final: true
      methods:
        - constructor: true
          parameters:
            - {name: handPosition, type: String}
          code:
            - statement: this.handPosition = handPosition
`, Options{})

	assert.Equal(t, "package com.example;\n"+
		"\n"+
		"public enum Roshambo {\n"+
		"  ROCK(\"fist\"),\n"+
		"\n"+
		"  PAPER(\"flat\");\n"+
		"\n"+
		"  private final String handPosition;\n"+
		"\n"+
		"  Roshambo(String handPosition) {\n"+
		"    this.handPosition = handPosition;\n"+
		"  }\n"+
		"}\n", out)
}

func TestBuildGenericsAndControlFlow(t *testing.T) {
	out := buildOne(t, `
files:
  - package: com.example
    skipJavaLangImports: true
    type:
      name: Counter
      annotations:
        - type: SuppressWarnings
          members:
            value: '"unchecked"'
      typeParameters:
        - name: T
          bounds: [Number]
      methods:
        - name: count
          visibility: public
          returnType: int
          parameters:
            - {name: items, type: java.util.List<T>}
          code:
            - statement: int total = 0
            - begin: 'for ($T item : items)'
              args: [{type: T}]
            - statement: total++
            - end: ""
            - statement: return total
`, Options{})

	assert.Equal(t, "package com.example;\n"+
		"\n"+
		"import java.util.List;\n"+
		"\n"+
		"@SuppressWarnings(\"unchecked\")\n"+
		"class Counter<T extends Number> {\n"+
		"  public int count(List<T> items) {\n"+
		"    int total = 0;\n"+
		"    for (T item : items) {\n"+
		"      total++;\n"+
		"    }\n"+
		"    return total;\n"+
		"  }\n"+
		"}\n", out)
}

func TestBuildOptions(t *testing.T) {
	text := `
files:
  - package: com.example
    type:
      name: Taco
      fields:
        - {name: name, type: String}
`
	out := buildOne(t, text, Options{Indent: "\t", FileComment: "Generated.\n", SkipJavaLangImports: true})
	assert.Equal(t, "// Generated.\n"+
		"package com.example;\n"+
		"\n"+
		"class Taco {\n"+
		"\tString name;\n"+
		"}\n", out)

	override := strings.Replace(text, "type:\n      name: Taco", "skipJavaLangImports: false\n    type:\n      name: Taco", 1)
	out = buildOne(t, override, Options{SkipJavaLangImports: true})
	assert.Contains(t, out, "import java.lang.String;\n")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("files:\n  - package: a\n    type:\n      nmae: Foo\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDescriptor))
	assert.Contains(t, err.Error(), "nmae")
}

func TestLoadEmpty(t *testing.T) {
	doc, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Files)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taco.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files:\n  - type: {name: Taco}\n"), 0644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, "Taco", doc.Files[0].Type.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		message string
	}{
		{
			name:    "superclass on interface",
			text:    "files:\n  - package: com.example\n    type: {name: Taco, kind: interface, superClass: Object}\n",
			message: "only classes have super classes",
		},
		{
			name:    "unknown kind",
			text:    "files:\n  - type: {name: Taco, kind: record}\n",
			message: `unknown kind "record"`,
		},
		{
			name:    "missing name",
			text:    "files:\n  - type: {kind: class}\n",
			message: "type has no name",
		},
		{
			name:    "unknown visibility",
			text:    "files:\n  - type: {name: Taco, visibility: friendly}\n",
			message: `unknown visibility "friendly"`,
		},
		{
			name:    "bad type",
			text:    "files:\n  - type: {name: Taco, fields: [{name: x, type: 'java.util.List<>'}]}\n",
			message: "field Taco.x",
		},
		{
			name:    "primitive type argument",
			text:    "files:\n  - type: {name: Taco, fields: [{name: x, type: 'java.util.List<int>'}]}\n",
			message: "invalid type parameter: int",
		},
		{
			name:    "empty code fragment",
			text:    "files:\n  - type: {name: Taco, methods: [{name: run, code: [{args: [1]}]}]}\n",
			message: "code fragment 1 is empty",
		},
		{
			name:    "unused template argument",
			text:    "files:\n  - type: {name: Taco, methods: [{name: run, code: [{statement: go(), args: [1]}]}]}\n",
			message: "unused argument: $1",
		},
		{
			name:    "file is named in the error",
			text:    "files:\n  - package: com.example\n    type: {name: Taco, modifiers: [fancy]}\n",
			message: "file 1 (com.example.Taco)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(strings.NewReader(tt.text))
			require.NoError(t, err)
			_, err = Build(doc, Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDescriptor), "error %v is not marked", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseType(t *testing.T) {
	r := newResolver("com.example", ClassModel{Name: "Taco", Types: []ClassModel{{Name: "Shell"}}})
	r.push([]TypeParameterModel{{Name: "T"}})

	tests := []struct {
		input    string
		expected string
	}{
		{"int", "int"},
		{"void", "void"},
		{"String", "java.lang.String"},
		{"String[][]", "java.lang.String[][]"},
		{"java.util.List<String>", "java.util.List<java.lang.String>"},
		{"java.util.Map<String, ? extends java.util.List<T>>", "java.util.Map<java.lang.String, ? extends java.util.List<T>>"},
		{"java.util.List<?>", "java.util.List<?>"},
		{"java.util.List<? super Integer>", "java.util.List<? super java.lang.Integer>"},
		{"T", "T"},
		{"T[]", "T[]"},
		{"Taco", "com.example.Taco"},
		{"Shell", "com.example.Taco.Shell"},
		{"Helper", "com.example.Helper"},
		{"Taco.Shell", "com.example.Taco.Shell"},
		{"java.util.Map.Entry", "java.util.Map.Entry"},
		{"com.example.Outer<T>.Inner<String>", "com.example.Outer<T>.Inner<java.lang.String>"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := r.parseType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestParseTypeRejects(t *testing.T) {
	r := newResolver("com.example", ClassModel{Name: "Taco"})
	for _, input := range []string{"", "java.util.", "java.util.List<>", "java.util.List<String", "String]", "x#y", "java.util.List<int>", "list"} {
		t.Run(input, func(t *testing.T) {
			_, err := r.parseType(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDescriptor), "error %v is not marked", err)
		})
	}
}

func TestTypeVariableScope(t *testing.T) {
	r := newResolver("com.example", ClassModel{Name: "Taco"})
	r.push([]TypeParameterModel{{Name: "T"}})
	got, err := r.parseType("T")
	require.NoError(t, err)
	_, ok := got.(*java.TypeVariableName)
	assert.True(t, ok)

	r.pop()
	got, err = r.parseType("T")
	require.NoError(t, err)
	assert.Equal(t, "com.example.T", got.String())
}
