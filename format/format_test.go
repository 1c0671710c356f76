package format

import (
	"bytes"
	"testing"

	"github.com/dhamidi/javapoet/java"
)

func tacoFile() *java.JavaFile {
	taco := java.NewClass("Taco").
		AddModifiers(java.Public, java.Final).
		AddField(java.NewField(java.String, "name", java.Private, java.Final).Build()).
		AddMethod(java.NewConstructor().
			AddModifiers(java.Public).
			AddParameterOf(java.String, "name").
			AddStatement("this.name = name").
			Build()).
		AddMethod(java.NewMethod("getName").
			AddModifiers(java.Public).
			Returns(java.String).
			AddStatement("return name").
			Build()).
		AddMethod(java.NewMethod("of").
			AddModifiers(java.Public, java.Static).
			Returns(java.ClassNameOf("com.example", "Taco")).
			AddParameterOf(java.ArrayOf(java.String), "names").
			Varargs(true).
			AddStatement("return new Taco(names[0])").
			Build()).
		AddType(java.NewClass("Shell").AddModifiers(java.Static).Build()).
		Build()
	return java.NewJavaFile("com.example", taco).Build()
}

func TestLineEncoder(t *testing.T) {
	tests := []struct {
		name     string
		file     *java.JavaFile
		expected string
	}{
		{
			name: "class with members and nested type",
			file: tacoFile(),
			expected: "class\tcom.example.Taco\tpublic,final\n" +
				"field\tname\tjava.lang.String\tprivate,final\n" +
				"method\t<init>\t-\tjava.lang.String\tpublic\n" +
				"method\tgetName\tjava.lang.String\t-\tpublic\n" +
				"method\tof\tcom.example.Taco\tjava.lang.String...\tpublic,static\n" +
				"class\tcom.example.Taco.Shell\tstatic\n",
		},
		{
			name: "enum in the default package",
			file: java.NewJavaFile("", java.NewEnum("Roshambo").
				AddEnumConstant("ROCK").
				AddEnumConstant("PAPER").
				Build()).Build(),
			expected: "enum\tRoshambo\t-\n" +
				"constant\tROCK\n" +
				"constant\tPAPER\n",
		},
		{
			name: "annotated varargs",
			file: java.NewJavaFile("com.example", java.NewClass("Log").
				AddMethod(java.NewMethod("all").
					AddParameterOf(java.Annotated(
						java.ArrayOf(java.Annotated(java.ArrayOf(java.String), java.AnnotationOf(java.ClassNameOf("x", "B")))),
						java.AnnotationOf(java.ClassNameOf("x", "A"))), "lines").
					Varargs(true).
					Build()).
				Build()).Build(),
			expected: "class\tcom.example.Log\t-\n" +
				"method\tall\tvoid\tjava.lang.String @x.A [] @x.B ...\t-\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewLineEncoder(&buf).Encode(tt.file); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestJSONEncoder(t *testing.T) {
	taco := java.NewClass("Taco").
		AddModifiers(java.Public).
		AddSuperinterface(java.ClassNameOf("java.lang", "Runnable")).
		AddField(java.NewField(java.Int, "count", java.Private).Initializer("$L", 0).Build()).
		AddMethod(java.NewMethod("run").AddModifiers(java.Public).Build()).
		Build()
	file := java.NewJavaFile("com.example", taco).Build()

	expected := `{
  "package": "com.example",
  "path": "com/example/Taco.java",
  "type": {
    "kind": "class",
    "name": "Taco",
    "modifiers": [
      "public"
    ],
    "interfaces": [
      "java.lang.Runnable"
    ],
    "fields": [
      {
        "name": "count",
        "type": "int",
        "modifiers": [
          "private"
        ],
        "initializer": "0"
      }
    ],
    "methods": [
      {
        "name": "run",
        "returnType": "void",
        "modifiers": [
          "public"
        ]
      }
    ]
  }
}
`
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(file); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := buf.String(); got != expected {
		t.Errorf("got:\n%s\nwant:\n%s", got, expected)
	}
}

func TestJSONEncoderEnumBodies(t *testing.T) {
	toString := java.NewMethod("toString").
		AddModifiers(java.Public).
		Returns(java.String).
		AddStatement("return $S", "rock").
		Build()
	roshambo := java.NewEnum("Roshambo").
		AddEnumConstantWithBody("ROCK", java.NewAnonymousClass("$S", "fist").AddMethod(toString).Build()).
		AddEnumConstant("PAPER").
		Build()

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(java.NewJavaFile("", roshambo).Build()); err != nil {
		t.Fatal(err)
	}
	text := buf.Bytes()
	for _, want := range []string{`"kind": "enum"`, `"name": "ROCK"`, `"arguments": "\"fist\""`, `"body": {`, `"name": "toString"`, `"name": "PAPER"`} {
		if !bytes.Contains(text, []byte(want)) {
			t.Errorf("output does not contain %s:\n%s", want, text)
		}
	}
	if bytes.Count(text, []byte(`"body"`)) != 1 {
		t.Error("constants without a class body should have no body")
	}
	if bytes.Contains(text, []byte(`"package"`)) {
		t.Error("empty package should be omitted")
	}
}

func TestJavaEncoder(t *testing.T) {
	file := tacoFile()
	want, err := file.Render()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := NewJavaEncoder(&buf).Encode(file); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		if _, ok := New(name, &bytes.Buffer{}); !ok {
			t.Errorf("New(%q) found no encoder", name)
		}
	}
	if _, ok := New("xml", &bytes.Buffer{}); ok {
		t.Error("New(\"xml\") returned an encoder")
	}
}
