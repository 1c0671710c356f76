package java

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// CodeBlock is a fragment of Java code built from format strings.
//
// Placeholders:
//
//	$L  literal, emitted as is; specs and code blocks are rendered
//	$N  name of a parameter, field, method or type (or a string)
//	$S  string literal, quoted and escaped; nil becomes null
//	$T  type, imported when possible
//	$$  a dollar sign
//	$W  space or newline, depending on the column limit
//	$Z  zero-width space, a newline when the line is too long
//	$>  increase the indentation level
//	$<  decrease the indentation level
//	$[  start of a statement
//	$]  end of a statement
//
// Argument placeholders take an optional 1-based index, as in $2L. Indexed
// placeholders do not advance the position of unindexed ones.
type CodeBlock struct {
	// formatParts holds either literal text or a two character directive
	// such as "$L". Text parts never start with '$'.
	formatParts []string
	// args has one entry per argument directive, in order.
	args []any
}

var emptyCodeBlock = &CodeBlock{}

// CodeBlockOf builds a single fragment.
func CodeBlockOf(format string, args ...any) *CodeBlock {
	return NewCodeBlock().Add(format, args...).Build()
}

// JoinCodeBlocks concatenates blocks with separator between each pair.
func JoinCodeBlocks(separator string, blocks ...*CodeBlock) *CodeBlock {
	b := NewCodeBlock()
	for i, cb := range blocks {
		if i > 0 {
			b.Add("$L", separator)
		}
		b.AddBlock(cb)
	}
	return b.Build()
}

func (c *CodeBlock) IsEmpty() bool {
	return c == nil || len(c.formatParts) == 0
}

// String renders the block with fully-qualified type names.
func (c *CodeBlock) String() string {
	if c.IsEmpty() {
		return ""
	}
	return renderString(func(w *codeWriter) {
		w.emitCode(nil, c)
	})
}

// Equal compares two blocks fragment by fragment. Adjacent text is merged
// first, so how the text was split across Add calls does not matter.
// Nothing is rendered.
func (c *CodeBlock) Equal(o *CodeBlock) bool {
	if c.IsEmpty() || o.IsEmpty() {
		return c.IsEmpty() == o.IsEmpty()
	}
	a, b := mergeText(c.formatParts), mergeText(o.formatParts)
	if !slices.Equal(a, b) || len(c.args) != len(o.args) {
		return false
	}
	for i := range c.args {
		if !argumentsEqual(c.args[i], o.args[i]) {
			return false
		}
	}
	return true
}

func mergeText(parts []string) []string {
	merged := make([]string, 0, len(parts))
	for _, part := range parts {
		last := len(merged) - 1
		if last >= 0 && !isDirectivePart(part) && !isDirectivePart(merged[last]) {
			merged[last] += part
			continue
		}
		merged = append(merged, part)
	}
	return merged
}

func isDirectivePart(part string) bool {
	return strings.HasPrefix(part, "$")
}

func argumentsEqual(a, b any) bool {
	switch x := a.(type) {
	case TypeName:
		y, ok := b.(TypeName)
		return ok && TypesEqual(x, y)
	case *CodeBlock:
		y, ok := b.(*CodeBlock)
		return ok && x.Equal(y)
	case *AnnotationSpec:
		y, ok := b.(*AnnotationSpec)
		return ok && x.Equal(y)
	}
	return reflect.DeepEqual(a, b)
}

func (c *CodeBlock) ToBuilder() *CodeBlockBuilder {
	b := NewCodeBlock()
	if c != nil {
		b.formatParts = append(b.formatParts, c.formatParts...)
		b.args = append(b.args, c.args...)
	}
	return b
}

// CodeBlockBuilder accumulates fragments for a CodeBlock.
type CodeBlockBuilder struct {
	formatParts []string
	args        []any
}

func NewCodeBlock() *CodeBlockBuilder {
	return &CodeBlockBuilder{}
}

func (b *CodeBlockBuilder) IsEmpty() bool {
	return len(b.formatParts) == 0
}

// directive is the character following '$' in a placeholder.
type directive byte

const (
	dirLiteral        directive = 'L'
	dirName           directive = 'N'
	dirString         directive = 'S'
	dirType           directive = 'T'
	dirDollar         directive = '$'
	dirIndent         directive = '>'
	dirUnindent       directive = '<'
	dirStatementStart directive = '['
	dirStatementEnd   directive = ']'
	dirWrappingSpace  directive = 'W'
	dirZeroWidthSpace directive = 'Z'
)

func (d directive) takesArgument() bool {
	switch d {
	case dirLiteral, dirName, dirString, dirType:
		return true
	}
	return false
}

func (d directive) known() bool {
	switch d {
	case dirDollar, dirIndent, dirUnindent, dirStatementStart, dirStatementEnd,
		dirWrappingSpace, dirZeroWidthSpace:
		return true
	}
	return d.takesArgument()
}

func (d directive) part() string { return "$" + string(rune(d)) }

// token is one unit of a format string: either text or a placeholder.
type token struct {
	text     string
	dir      directive
	index    int // 1-based, only meaningful when indexed
	indexed  bool
	raw      string
	argument string // named placeholders
}

func tokenize(format string) []token {
	var tokens []token
	for p := 0; p < len(format); {
		if format[p] != '$' {
			end := strings.IndexByte(format[p+1:], '$')
			if end < 0 {
				end = len(format)
			} else {
				end += p + 1
			}
			tokens = append(tokens, token{text: format[p:end]})
			p = end
			continue
		}

		start := p
		p++
		digits := p
		for p < len(format) && format[p] >= '0' && format[p] <= '9' {
			p++
		}
		checkArgument(p < len(format), "dangling format characters in '%s'", format)
		d := directive(format[p])
		p++
		checkArgument(d.known(), "invalid format string: '%s'", format)

		t := token{dir: d, raw: format[start:p]}
		if p-1 > digits {
			checkArgument(d.takesArgument(), "$$, $>, $<, $[, $], $W, and $Z may not have an index")
			n, err := strconv.Atoi(format[digits : p-1])
			if err != nil {
				n = -1
			}
			t.index, t.indexed = n, true
		}
		tokens = append(tokens, t)
	}
	return tokens
}

var (
	namedArgument = regexp.MustCompile(`^\$([\w]+):(\w)`)
	lowercaseName = regexp.MustCompile(`^[a-z]+[\w]*$`)
)

func tokenizeNamed(format string) []token {
	var tokens []token
	for p := 0; p < len(format); {
		next := strings.IndexByte(format[p:], '$')
		if next < 0 {
			tokens = append(tokens, token{text: format[p:]})
			break
		}
		if next > 0 {
			tokens = append(tokens, token{text: format[p : p+next]})
			p += next
		}
		if m := namedArgument.FindStringSubmatch(format[p:]); m != nil {
			d := directive(m[2][0])
			checkArgument(d.takesArgument(), "invalid format string: '%s'", format)
			tokens = append(tokens, token{dir: d, raw: m[0], argument: m[1]})
			p += len(m[0])
			continue
		}
		checkArgument(p < len(format)-1, "dangling $ at end")
		d := directive(format[p+1])
		checkArgument(d.known() && !d.takesArgument(),
			"unknown format $%c at %d in '%s'", format[p+1], p+1, format)
		tokens = append(tokens, token{dir: d, raw: format[p : p+2]})
		p += 2
	}
	return tokens
}

// Add appends a fragment. Every argument must be consumed by a placeholder.
func (b *CodeBlockBuilder) Add(format string, args ...any) *CodeBlockBuilder {
	tokens := tokenize(format)
	used := make([]bool, len(args))
	var parts []string
	var values []any
	next := 0
	for _, t := range tokens {
		switch {
		case t.text != "":
			parts = append(parts, t.text)
		case !t.dir.takesArgument():
			parts = append(parts, t.dir.part())
		default:
			i := next
			if t.indexed {
				i = t.index - 1
			} else {
				next++
			}
			checkArgument(i >= 0 && i < len(args),
				"index %d for '%s' not in range (received %d arguments)", i+1, t.raw, len(args))
			used[i] = true
			values = append(values, convertArgument(t.dir, args[i]))
			parts = append(parts, t.dir.part())
		}
	}

	var unused []string
	for i, u := range used {
		if !u {
			unused = append(unused, "$"+strconv.Itoa(i+1))
		}
	}
	switch len(unused) {
	case 0:
	case 1:
		checkArgument(false, "unused argument: %s", unused[0])
	default:
		checkArgument(false, "unused arguments: %s", strings.Join(unused, ", "))
	}

	b.formatParts = append(b.formatParts, parts...)
	b.args = append(b.args, values...)
	return b
}

// AddNamed appends a fragment whose placeholders name their arguments, as in
// "$count:L $food:S". Argument names must start with a lowercase letter.
func (b *CodeBlockBuilder) AddNamed(format string, args map[string]any) *CodeBlockBuilder {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		checkArgument(lowercaseName.MatchString(name),
			"argument '%s' must start with a lowercase character", name)
	}

	var parts []string
	var values []any
	for _, t := range tokenizeNamed(format) {
		switch {
		case t.text != "":
			parts = append(parts, t.text)
		case t.argument == "":
			parts = append(parts, t.dir.part())
		default:
			arg, ok := args[t.argument]
			checkArgument(ok, "Missing named argument for $%s", t.argument)
			values = append(values, convertArgument(t.dir, arg))
			parts = append(parts, t.dir.part())
		}
	}
	b.formatParts = append(b.formatParts, parts...)
	b.args = append(b.args, values...)
	return b
}

func convertArgument(d directive, arg any) any {
	switch d {
	case dirName:
		return argToName(arg)
	case dirString:
		return argToString(arg)
	case dirType:
		return argToType(arg)
	}
	return arg
}

func argToName(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case *ParameterSpec:
		return v.name
	case *FieldSpec:
		return v.name
	case *MethodSpec:
		return v.name
	case *TypeSpec:
		if v != nil && v.name != "" {
			return v.name
		}
	}
	panic(newError(ErrInvalidArgument, "expected name but was %v", arg))
}

func argToString(arg any) any {
	switch v := arg.(type) {
	case nil:
		return nil
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(arg)
}

func argToType(arg any) TypeName {
	if t, ok := arg.(TypeName); ok && t != nil {
		return t
	}
	panic(newError(ErrInvalidArgument, "expected type but was %v", arg))
}

// AddStatement adds format as one statement: it is terminated with a
// semicolon and newline, and continuation lines are indented.
func (b *CodeBlockBuilder) AddStatement(format string, args ...any) *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, dirStatementStart.part())
	b.Add(format, args...)
	b.formatParts = append(b.formatParts, ";\n", dirStatementEnd.part())
	return b
}

// AddComment adds a // comment line.
func (b *CodeBlockBuilder) AddComment(format string, args ...any) *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, "// ")
	b.Add(format, args...)
	b.formatParts = append(b.formatParts, "\n")
	return b
}

// BeginControlFlow opens a block, e.g. "if (foo == 5)".
func (b *CodeBlockBuilder) BeginControlFlow(controlFlow string, args ...any) *CodeBlockBuilder {
	b.Add(controlFlow+" {\n", args...)
	return b.Indent()
}

// NextControlFlow closes the current block and opens another, e.g. "else".
func (b *CodeBlockBuilder) NextControlFlow(controlFlow string, args ...any) *CodeBlockBuilder {
	b.Unindent()
	b.Add("} "+controlFlow+" {\n", args...)
	return b.Indent()
}

func (b *CodeBlockBuilder) EndControlFlow() *CodeBlockBuilder {
	b.Unindent()
	b.formatParts = append(b.formatParts, "}\n")
	return b
}

// EndControlFlowWith closes a block with a trailing clause, as in
// "} while (more);".
func (b *CodeBlockBuilder) EndControlFlowWith(controlFlow string, args ...any) *CodeBlockBuilder {
	b.Unindent()
	return b.Add("} "+controlFlow+";\n", args...)
}

func (b *CodeBlockBuilder) Indent() *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, dirIndent.part())
	return b
}

func (b *CodeBlockBuilder) Unindent() *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, dirUnindent.part())
	return b
}

func (b *CodeBlockBuilder) AddBlock(cb *CodeBlock) *CodeBlockBuilder {
	if cb == nil {
		return b
	}
	b.formatParts = append(b.formatParts, cb.formatParts...)
	b.args = append(b.args, cb.args...)
	return b
}

func (b *CodeBlockBuilder) Clear() *CodeBlockBuilder {
	b.formatParts = nil
	b.args = nil
	return b
}

func (b *CodeBlockBuilder) Build() *CodeBlock {
	return &CodeBlock{
		formatParts: append([]string(nil), b.formatParts...),
		args:        append([]any(nil), b.args...),
	}
}

// stringLiteral quotes value as a Java string literal. Embedded newlines
// split the literal into a concatenation, one line per part.
func stringLiteral(value, indent string) string {
	var sb strings.Builder
	sb.Grow(len(value) + 2)
	sb.WriteByte('"')
	runes := []rune(value)
	for i, r := range runes {
		switch r {
		case '\'':
			sb.WriteByte('\'')
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteString(characterEscape(r))
		}
		if r == '\n' && i+1 < len(runes) {
			sb.WriteString("\"\n")
			sb.WriteString(indent)
			sb.WriteString(indent)
			sb.WriteString("+ \"")
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func characterEscape(r rune) string {
	switch r {
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	case '"':
		return `"`
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	}
	if unicode.IsControl(r) {
		return fmt.Sprintf(`\u%04x`, r)
	}
	return string(r)
}
