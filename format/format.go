// Package format encodes generated Java files for output: as source text,
// as a JSON summary of their declarations, or as tab-separated lines.
package format

import (
	"encoding"
	"io"
	"strings"

	"github.com/dhamidi/javapoet/java"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(file *java.JavaFile) error
}

// New returns the encoder registered under name, one of Names().
func New(name string, w io.Writer) (Encoder, bool) {
	switch name {
	case "java":
		return NewJavaEncoder(w), true
	case "json":
		return NewJSONEncoder(w), true
	case "line":
		return NewLineEncoder(w), true
	}
	return nil, false
}

func Names() []string {
	return []string{"java", "json", "line"}
}

func modifierStrings(mods []java.Modifier) []string {
	if len(mods) == 0 {
		return nil
	}
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = m.String()
	}
	return out
}

func typeStrings(types []java.TypeName) []string {
	if len(types) == 0 {
		return nil
	}
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}

// superclassString is empty when the type extends Object implicitly.
func superclassString(t *java.TypeSpec) string {
	super := t.Superclass()
	if super == nil || java.TypesEqual(super, java.Object) {
		return ""
	}
	return super.String()
}

func joinOrDash(parts []string, sep string) string {
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, sep)
}
