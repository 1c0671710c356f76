package java

import (
	"reflect"
	"testing"
)

func TestBestGuess(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		packageName string
		simpleNames []string
	}{
		{"top level", "java.util.Map", "java.util", []string{"Map"}},
		{"nested", "java.util.Map.Entry", "java.util", []string{"Map", "Entry"}},
		{"default package", "Foo", "", []string{"Foo"}},
		{"dollar name", "com.example.$Proxy", "com.example", []string{"$Proxy"}},
		{"non-ascii name", "com.example.Über", "com.example", []string{"Über"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := BestGuess(tt.input)
			if err != nil {
				t.Fatalf("BestGuess(%q): %v", tt.input, err)
			}
			if c.PackageName() != tt.packageName {
				t.Errorf("package = %q, want %q", c.PackageName(), tt.packageName)
			}
			if !reflect.DeepEqual(c.SimpleNames(), tt.simpleNames) {
				t.Errorf("simple names = %v, want %v", c.SimpleNames(), tt.simpleNames)
			}
			if c.CanonicalName() != tt.input {
				t.Errorf("canonical = %q, want %q", c.CanonicalName(), tt.input)
			}
		})
	}
}

func TestBestGuessRejects(t *testing.T) {
	inputs := []string{
		"",
		".",
		"java.util.",
		"java..Map",
		"java.util.list",
		"foo",
		"com.example.Foo.",
		"com.exa mple.Foo",
		"com.example.Fo o",
		"java.util.Map.entry",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := BestGuess(input)
			if err == nil {
				t.Fatalf("BestGuess(%q) succeeded", input)
			}
			if want := "couldn't make a guess for " + input; err.Error() != want {
				t.Errorf("message = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestClassNameNavigation(t *testing.T) {
	entry := ClassNameOf("java.util", "Map", "Entry")

	if got := entry.ReflectionName(); got != "java.util.Map$Entry" {
		t.Errorf("ReflectionName() = %q", got)
	}
	if got := entry.TopLevelClassName().CanonicalName(); got != "java.util.Map" {
		t.Errorf("TopLevelClassName() = %q", got)
	}
	if got := entry.EnclosingClassName().CanonicalName(); got != "java.util.Map" {
		t.Errorf("EnclosingClassName() = %q", got)
	}
	if entry.TopLevelClassName().EnclosingClassName() != nil {
		t.Error("top-level class has an enclosing class")
	}
	if got := entry.PeerClass("Node").CanonicalName(); got != "java.util.Map.Node" {
		t.Errorf("PeerClass() = %q", got)
	}
	if got := ClassNameOf("java.util", "List").PeerClass("Set").CanonicalName(); got != "java.util.Set" {
		t.Errorf("PeerClass() of top-level = %q", got)
	}
	if !entry.Equal(ClassNameOf("java.util", "Map").NestedClass("Entry")) {
		t.Error("equivalent nested names are not equal")
	}
	if entry.Compare(ClassNameOf("java.util", "List")) >= 0 {
		t.Error("java.util.Map.Entry should sort before java.util.List")
	}
}

func TestClassNameRejectsInvalidNames(t *testing.T) {
	expectError(t, ErrInvalidArgument, "not a valid name: C.D", func() {
		ClassNameOf("a", "B").NestedClass("C.D")
	})
	expectError(t, ErrInvalidArgument, "not a valid name: ", func() {
		ClassNameOf("a", "")
	})
}

func TestIsName(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"taco", true},
		{"_taco", true},
		{"$", true},
		{"a1", true},
		{"1a", false},
		{"class", false},
		{"true", false},
		{"null", false},
		{"_", false},
		{"", false},
		{"a-b", false},
	}
	for _, tt := range tests {
		if got := IsName(tt.input); got != tt.expected {
			t.Errorf("IsName(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
