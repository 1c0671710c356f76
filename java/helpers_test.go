package java

import (
	"testing"

	"github.com/cockroachdb/errors"
)

// expectError runs fn and checks that it fails with the given kind and
// message.
func expectError(t *testing.T, kind error, message string, fn func()) {
	t.Helper()
	err := Capture(fn)
	if err == nil {
		t.Fatalf("expected error %q, got none", message)
	}
	if !errors.Is(err, kind) {
		t.Errorf("error %q is not marked as %v", err, kind)
	}
	if err.Error() != message {
		t.Errorf("error message = %q, want %q", err.Error(), message)
	}
}

func render(t *testing.T, f *JavaFile) string {
	t.Helper()
	text, err := f.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return text
}

func checkText(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("rendered text mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

var (
	override   = ClassNameOf("java.lang", "Override")
	list       = ClassNameOf("java.util", "List")
	annotation = ClassNameOf("com.example", "A")
)
