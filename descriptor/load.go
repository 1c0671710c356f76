package descriptor

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDescriptor marks documents that cannot be decoded or built.
var ErrInvalidDescriptor = errors.New("invalid descriptor")

func invalidf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidDescriptor)
}

// Load decodes a descriptor document. Unknown keys are rejected; an empty
// input is an empty document.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, errors.Mark(errors.Wrap(err, "decode descriptor"), ErrInvalidDescriptor)
	}
	log.Debugf("loaded %d file descriptors", len(doc.Files))
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open descriptor %s", path)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return doc, nil
}

// UnmarshalYAML accepts a plain scalar as a $L literal.
func (a *ArgModel) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*a = ArgModel{}
		return value.Decode(&a.Literal)
	}
	type plain ArgModel
	return value.Decode((*plain)(a))
}

// UnmarshalYAML accepts a plain scalar as raw template text.
func (c *CodeModel) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*c = CodeModel{Code: value.Value}
		return nil
	}
	type plain CodeModel
	return value.Decode((*plain)(c))
}

// UnmarshalYAML accepts a plain scalar as the annotation type.
func (a *AnnotationModel) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*a = AnnotationModel{Type: value.Value}
		return nil
	}
	type plain AnnotationModel
	return value.Decode((*plain)(a))
}

// UnmarshalYAML keeps members in document order. A member value is either
// a single fragment or a sequence of them.
func (m *Members) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return invalidf("line %d: annotation members must be a mapping", value.Line)
	}
	*m = nil
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]
		var values []CodeModel
		if node.Kind == yaml.SequenceNode {
			if err := node.Decode(&values); err != nil {
				return err
			}
		} else {
			var one CodeModel
			if err := node.Decode(&one); err != nil {
				return err
			}
			values = []CodeModel{one}
		}
		*m = append(*m, MemberModel{Name: key.Value, Values: values})
	}
	return nil
}
