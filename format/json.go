package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/javapoet/java"
)

type JSONEncoder struct {
	w    io.Writer
	file *java.JavaFile
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(file *java.JavaFile) error {
	e.file = file
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsonFile{
		Package: e.file.PackageName(),
		Path:    e.file.RelativePath(),
		Type:    buildTypeData(e.file.TypeSpec()),
	}
	if imports := e.file.StaticImports(); len(imports) > 0 {
		data.StaticImports = imports
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonFile struct {
	Package       string   `json:"package,omitempty"`
	Path          string   `json:"path"`
	StaticImports []string `json:"staticImports,omitempty"`
	Type          jsonType `json:"type"`
}

type jsonType struct {
	Kind          string             `json:"kind"`
	Name          string             `json:"name"`
	Modifiers     []string           `json:"modifiers,omitempty"`
	Annotations   []string           `json:"annotations,omitempty"`
	TypeVariables []string           `json:"typeVariables,omitempty"`
	SuperClass    string             `json:"superClass,omitempty"`
	Interfaces    []string           `json:"interfaces,omitempty"`
	EnumConstants []jsonEnumConstant `json:"enumConstants,omitempty"`
	Fields        []jsonField        `json:"fields,omitempty"`
	Methods       []jsonMethod       `json:"methods,omitempty"`
	Types         []jsonType         `json:"types,omitempty"`
}

type jsonEnumConstant struct {
	Name      string    `json:"name"`
	Arguments string    `json:"arguments,omitempty"`
	Body      *jsonType `json:"body,omitempty"`
}

type jsonField struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Initializer string   `json:"initializer,omitempty"`
}

type jsonMethod struct {
	Name          string          `json:"name"`
	Constructor   bool            `json:"constructor,omitempty"`
	ReturnType    string          `json:"returnType,omitempty"`
	TypeVariables []string        `json:"typeVariables,omitempty"`
	Parameters    []jsonParameter `json:"parameters,omitempty"`
	Varargs       bool            `json:"varargs,omitempty"`
	Exceptions    []string        `json:"exceptions,omitempty"`
	Modifiers     []string        `json:"modifiers,omitempty"`
}

type jsonParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func buildTypeData(t *java.TypeSpec) jsonType {
	data := jsonType{
		Kind:          t.Kind().String(),
		Name:          t.Name(),
		Modifiers:     modifierStrings(t.Modifiers()),
		TypeVariables: typeStrings(t.TypeVariables()),
		SuperClass:    superclassString(t),
		Interfaces:    typeStrings(t.Superinterfaces()),
	}
	if t.IsAnonymous() {
		data.Name = ""
	}
	for _, a := range t.Annotations() {
		data.Annotations = append(data.Annotations, a.String())
	}
	for _, name := range t.EnumConstantNames() {
		c := jsonEnumConstant{Name: name}
		if body, ok := t.EnumConstant(name); ok {
			c.Arguments = body.AnonymousTypeArguments().String()
			if hasBody(body) {
				b := buildTypeData(body)
				c.Body = &b
			}
		}
		data.EnumConstants = append(data.EnumConstants, c)
	}
	for _, f := range t.Fields() {
		data.Fields = append(data.Fields, jsonField{
			Name:        f.Name(),
			Type:        f.Type().String(),
			Modifiers:   modifierStrings(f.Modifiers()),
			Initializer: f.Initializer().String(),
		})
	}
	for _, m := range t.Methods() {
		data.Methods = append(data.Methods, buildMethodData(m))
	}
	for _, nested := range t.Types() {
		data.Types = append(data.Types, buildTypeData(nested))
	}
	return data
}

func buildMethodData(m *java.MethodSpec) jsonMethod {
	data := jsonMethod{
		Name:          m.Name(),
		Constructor:   m.IsConstructor(),
		TypeVariables: typeStrings(m.TypeVariables()),
		Varargs:       m.Varargs(),
		Exceptions:    typeStrings(m.Exceptions()),
		Modifiers:     modifierStrings(m.Modifiers()),
	}
	if !m.IsConstructor() && m.ReturnType() != nil {
		data.ReturnType = m.ReturnType().String()
	}
	for _, p := range m.Parameters() {
		data.Parameters = append(data.Parameters, jsonParameter{
			Name: p.Name(),
			Type: p.Type().String(),
		})
	}
	return data
}

func hasBody(t *java.TypeSpec) bool {
	return len(t.Fields()) > 0 || len(t.Methods()) > 0 || len(t.Types()) > 0 ||
		!t.StaticBlock().IsEmpty() || !t.InitializerBlock().IsEmpty()
}
