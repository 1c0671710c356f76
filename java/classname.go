package java

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ClassName is a fully-qualified class, interface, enum or annotation name.
// Nested classes keep a link to their enclosing class.
type ClassName struct {
	packageName string
	enclosing   *ClassName
	simpleName  string
	canonical   string
}

func (*ClassName) isTypeName() {}

// String returns the canonical name, e.g. java.util.Map.Entry.
func (c *ClassName) String() string { return c.canonical }

func newClassName(packageName string, enclosing *ClassName, simpleName string) *ClassName {
	checkArgument(isValidSimpleName(simpleName), "not a valid name: %s", simpleName)
	canonical := simpleName
	switch {
	case enclosing != nil:
		canonical = enclosing.canonical + "." + simpleName
	case packageName != "":
		canonical = packageName + "." + simpleName
	}
	return &ClassName{
		packageName: packageName,
		enclosing:   enclosing,
		simpleName:  simpleName,
		canonical:   canonical,
	}
}

// ClassNameOf returns the class simpleName in packageName, or a class nested
// inside it when simpleNames are given. Use "" for the default package.
func ClassNameOf(packageName, simpleName string, simpleNames ...string) *ClassName {
	c := newClassName(packageName, nil, simpleName)
	for _, name := range simpleNames {
		c = c.NestedClass(name)
	}
	return c
}

// BestGuess parses a dotted name like "java.util.Map.Entry". Leading
// segments that start with a lowercase letter form the package; the rest
// must each look like a class name.
func BestGuess(name string) (*ClassName, error) {
	segments := strings.Split(name, ".")
	i := 0
	for i < len(segments) && startsLower(segments[i]) {
		if !isIdentifier(segments[i]) {
			return nil, guessError(name)
		}
		i++
	}
	if i == len(segments) {
		return nil, guessError(name)
	}
	packageName := strings.Join(segments[:i], ".")
	var c *ClassName
	for _, s := range segments[i:] {
		if s == "" || startsLower(s) || !isIdentifier(s) {
			return nil, guessError(name)
		}
		if c == nil {
			c = newClassName(packageName, nil, s)
		} else {
			c = newClassName(packageName, c, s)
		}
	}
	return c, nil
}

func guessError(name string) error {
	return newError(ErrInvalidArgument, "couldn't make a guess for %s", name)
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && unicode.IsLower(r)
}

// NestedClass returns a class named name nested inside c.
func (c *ClassName) NestedClass(name string) *ClassName {
	return newClassName(c.packageName, c, name)
}

// PeerClass returns a class named name that shares c's enclosing scope.
func (c *ClassName) PeerClass(name string) *ClassName {
	return newClassName(c.packageName, c.enclosing, name)
}

func (c *ClassName) PackageName() string { return c.packageName }

func (c *ClassName) SimpleName() string { return c.simpleName }

// EnclosingClassName is nil for top-level classes.
func (c *ClassName) EnclosingClassName() *ClassName { return c.enclosing }

func (c *ClassName) CanonicalName() string { return c.canonical }

// SimpleNames lists the class chain outermost first.
func (c *ClassName) SimpleNames() []string {
	var names []string
	for n := c; n != nil; n = n.enclosing {
		names = append(names, n.simpleName)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

func (c *ClassName) TopLevelClassName() *ClassName {
	n := c
	for n.enclosing != nil {
		n = n.enclosing
	}
	return n
}

// ReflectionName uses $ between nested classes, e.g. java.util.Map$Entry.
func (c *ClassName) ReflectionName() string {
	if c.enclosing != nil {
		return c.enclosing.ReflectionName() + "$" + c.simpleName
	}
	if c.packageName == "" {
		return c.simpleName
	}
	return c.packageName + "." + c.simpleName
}

func (c *ClassName) Equal(o *ClassName) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.packageName != o.packageName || c.simpleName != o.simpleName {
		return false
	}
	return c.enclosing.Equal(o.enclosing)
}

// Compare orders class names by canonical name.
func (c *ClassName) Compare(o *ClassName) int {
	return strings.Compare(c.canonical, o.canonical)
}

const forbiddenNameChars = ".<>[](){},;:@&?*!=+-/\\%^|~#\"' \t\r\n"

func isValidSimpleName(s string) bool {
	return s != "" && !strings.ContainsAny(s, forbiddenNameChars)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)):
		default:
			return false
		}
	}
	return true
}

var keywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}

// IsName reports whether s is an identifier that is not a keyword or literal.
func IsName(s string) bool {
	return isIdentifier(s) && !keywords[s]
}
