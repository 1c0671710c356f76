package descriptor

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/dhamidi/javapoet/java"
)

// javaLang lists the java.lang types a descriptor may name without a
// package.
var javaLang = map[string]bool{
	"AutoCloseable": true, "Boolean": true, "Byte": true, "CharSequence": true,
	"Character": true, "Class": true, "Cloneable": true, "Comparable": true,
	"Deprecated": true, "Double": true, "Enum": true, "Error": true,
	"Exception": true, "Float": true, "FunctionalInterface": true,
	"IllegalArgumentException": true, "IllegalStateException": true,
	"Integer": true, "Iterable": true, "Long": true, "Math": true,
	"Number": true, "Object": true, "Override": true, "Record": true,
	"Runnable": true, "RuntimeException": true, "SafeVarargs": true,
	"Short": true, "String": true, "StringBuilder": true,
	"SuppressWarnings": true, "System": true, "Thread": true,
	"Throwable": true, "UnsupportedOperationException": true, "Void": true,
}

// resolver turns the type strings of one file into type names. A bare
// simple name is, in order: a type variable in scope, a type declared in
// the file, a well-known java.lang type, or a type in the file's package.
// Dotted names whose first segment is lowercase are read with
// java.BestGuess.
type resolver struct {
	packageName string
	declared    map[string]*java.ClassName
	typeVars    []map[string]bool
}

func newResolver(packageName string, top ClassModel) *resolver {
	r := &resolver{
		packageName: packageName,
		declared:    map[string]*java.ClassName{},
	}
	if java.IsName(top.Name) {
		r.declare(java.ClassNameOf(packageName, top.Name), top)
	}
	return r
}

func (r *resolver) declare(c *java.ClassName, m ClassModel) {
	if _, ok := r.declared[c.SimpleName()]; !ok {
		r.declared[c.SimpleName()] = c
	}
	for _, nested := range m.Types {
		if java.IsName(nested.Name) {
			r.declare(c.NestedClass(nested.Name), nested)
		}
	}
}

func (r *resolver) push(params []TypeParameterModel) {
	frame := make(map[string]bool, len(params))
	for _, p := range params {
		frame[p.Name] = true
	}
	r.typeVars = append(r.typeVars, frame)
}

func (r *resolver) pop() {
	r.typeVars = r.typeVars[:len(r.typeVars)-1]
}

func (r *resolver) isTypeVariable(name string) bool {
	for i := len(r.typeVars) - 1; i >= 0; i-- {
		if r.typeVars[i][name] {
			return true
		}
	}
	return false
}

func (r *resolver) simpleClass(name string) *java.ClassName {
	if c, ok := r.declared[name]; ok {
		return c
	}
	if javaLang[name] {
		return java.ClassNameOf("java.lang", name)
	}
	return java.ClassNameOf(r.packageName, name)
}

func (r *resolver) className(segments []string) (*java.ClassName, error) {
	if first, _ := utf8.DecodeRuneInString(segments[0]); unicode.IsUpper(first) {
		c := r.simpleClass(segments[0])
		for _, s := range segments[1:] {
			if !java.IsName(s) {
				return nil, invalidf("not a valid name: %s", s)
			}
			c = c.NestedClass(s)
		}
		return c, nil
	}
	c, err := java.BestGuess(strings.Join(segments, "."))
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidDescriptor)
	}
	return c, nil
}

// classType resolves s and requires a class name, such as an annotation
// type or a static import.
func (r *resolver) classType(s string) (*java.ClassName, error) {
	t, err := r.parseType(s)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*java.ClassName)
	if !ok {
		return nil, invalidf("%s is not a class name", s)
	}
	return c, nil
}

// parseType reads a Java type as written in source: primitives, dotted
// class names, type arguments, wildcards and array brackets, for example
// java.util.Map<String, ? extends java.util.List<T>>[].
func (r *resolver) parseType(s string) (java.TypeName, error) {
	toks, err := tokenizeType(s)
	if err != nil {
		return nil, invalidf("invalid type %q: %v", s, err)
	}
	p := &typeParser{input: s, toks: toks, res: r}
	var t java.TypeName
	var parseErr error
	if err := java.Capture(func() { t, parseErr = p.parseType() }); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "invalid type %q", s), ErrInvalidDescriptor)
	}
	if parseErr != nil {
		return nil, parseErr
	}
	if p.pos < len(p.toks) {
		return nil, p.errorf("unexpected %q", p.toks[p.pos])
	}
	return t, nil
}

type typeParser struct {
	input string
	toks  []string
	pos   int
	res   *resolver
}

func (p *typeParser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return ""
}

func (p *typeParser) next() string {
	tok := p.peek()
	if tok != "" {
		p.pos++
	}
	return tok
}

func (p *typeParser) errorf(format string, args ...any) error {
	return invalidf("invalid type %q: %s", p.input, fmt.Sprintf(format, args...))
}

func (p *typeParser) parseType() (java.TypeName, error) {
	if p.peek() == "?" {
		return p.parseWildcard()
	}
	t, err := p.parseNamed()
	if err != nil {
		return nil, err
	}
	for p.peek() == "[" {
		p.next()
		if tok := p.next(); tok != "]" {
			return nil, p.errorf("expected ] but got %q", tok)
		}
		t = java.ArrayOf(t)
	}
	return t, nil
}

func (p *typeParser) parseWildcard() (java.TypeName, error) {
	p.next()
	switch p.peek() {
	case "extends":
		p.next()
		bound, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return java.SubtypeOf(bound), nil
	case "super":
		p.next()
		bound, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return java.SupertypeOf(bound), nil
	}
	return java.Unbounded, nil
}

func (p *typeParser) identifier() (string, error) {
	tok := p.next()
	if tok == "" {
		return "", p.errorf("unexpected end")
	}
	if r, _ := utf8.DecodeRuneInString(tok); !isTypeIdentPart(r) || unicode.IsDigit(r) {
		return "", p.errorf("expected a name but got %q", tok)
	}
	return tok, nil
}

func (p *typeParser) parseNamed() (java.TypeName, error) {
	var segments []string
	for {
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		segments = append(segments, name)
		if p.peek() != "." {
			break
		}
		p.next()
	}

	if len(segments) == 1 && p.peek() != "<" {
		if prim, ok := java.PrimitiveByKeyword(segments[0]); ok {
			return prim, nil
		}
		if p.res.isTypeVariable(segments[0]) {
			return java.TypeVariableOf(segments[0]), nil
		}
	}

	raw, err := p.res.className(segments)
	if err != nil {
		return nil, err
	}
	if p.peek() != "<" {
		return raw, nil
	}
	args, err := p.typeArguments()
	if err != nil {
		return nil, err
	}
	t := java.ParameterizedTypeNameOf(raw, args...).(*java.ParameterizedTypeName)
	for p.peek() == "." {
		p.next()
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		var nestedArgs []java.TypeName
		if p.peek() == "<" {
			if nestedArgs, err = p.typeArguments(); err != nil {
				return nil, err
			}
		}
		t = t.NestedClass(name, nestedArgs...)
	}
	return t, nil
}

func (p *typeParser) typeArguments() ([]java.TypeName, error) {
	p.next()
	var args []java.TypeName
	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch tok := p.next(); tok {
		case ",":
			continue
		case ">":
			return args, nil
		default:
			return nil, p.errorf("expected , or > but got %q", tok)
		}
	}
}

func isTypeIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

func tokenizeType(s string) ([]string, error) {
	var toks []string
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case strings.ContainsRune("<>,.[]?", r):
			toks = append(toks, string(r))
			i += size
		case isTypeIdentPart(r):
			j := i
			for j < len(s) {
				r2, size2 := utf8.DecodeRuneInString(s[j:])
				if !isTypeIdentPart(r2) {
					break
				}
				j += size2
			}
			toks = append(toks, s[i:j])
			i = j
		default:
			return nil, errors.Newf("unexpected character %q", r)
		}
	}
	if len(toks) == 0 {
		return nil, errors.Newf("empty")
	}
	return toks, nil
}
