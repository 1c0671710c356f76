package format

import (
	"io"

	"github.com/dhamidi/javapoet/java"
)

// JavaEncoder writes the rendered source of a file.
type JavaEncoder struct {
	w    io.Writer
	file *java.JavaFile
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(file *java.JavaFile) error {
	e.file = file
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	return e.file.Bytes()
}
