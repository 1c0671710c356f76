package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/javapoet/java"
)

// LineEncoder writes one tab-separated line per declaration. Nested types
// are written after their enclosing type with a dotted name; "-" marks an
// empty column.
type LineEncoder struct {
	w    io.Writer
	file *java.JavaFile
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(file *java.JavaFile) error {
	e.file = file
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	name := e.file.TypeSpec().Name()
	if pkg := e.file.PackageName(); pkg != "" {
		name = pkg + "." + name
	}
	writeTypeLines(&sb, name, e.file.TypeSpec())
	return []byte(sb.String()), nil
}

func writeTypeLines(sb *strings.Builder, name string, t *java.TypeSpec) {
	fmt.Fprintf(sb, "%s\t%s\t%s\n", t.Kind(), name, modifiersStr(t.Modifiers()))

	for _, c := range t.EnumConstantNames() {
		fmt.Fprintf(sb, "constant\t%s\n", c)
	}

	for _, f := range t.Fields() {
		fmt.Fprintf(sb, "field\t%s\t%s\t%s\n",
			f.Name(),
			f.Type().String(),
			modifiersStr(f.Modifiers()),
		)
	}

	for _, m := range t.Methods() {
		returnType := "-"
		if !m.IsConstructor() && m.ReturnType() != nil {
			returnType = m.ReturnType().String()
		}
		fmt.Fprintf(sb, "method\t%s\t%s\t%s\t%s\n",
			m.Name(),
			returnType,
			parametersStr(m),
			modifiersStr(m.Modifiers()),
		)
	}

	for _, nested := range t.Types() {
		writeTypeLines(sb, name+"."+nested.Name(), nested)
	}
}

func modifiersStr(mods []java.Modifier) string {
	return joinOrDash(modifierStrings(mods), ",")
}

func parametersStr(m *java.MethodSpec) string {
	params := m.Parameters()
	parts := make([]string, 0, len(params))
	for i, p := range params {
		s := p.Type().String()
		if m.Varargs() && i == len(params)-1 {
			s = java.VarargsString(p.Type())
		}
		parts = append(parts, s)
	}
	return joinOrDash(parts, ",")
}
