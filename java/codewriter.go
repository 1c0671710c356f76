package java

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// codeWriter renders specs through a LineWrapper, tracking indentation,
// comment state and how each class name should be spelled. One codeWriter
// serves one render pass; it is never shared.
type codeWriter struct {
	out             *LineWrapper
	indent          string
	indentLevel     int
	javadoc         bool
	comment         bool
	trailingNewline bool
	// statementLine is -1 outside a $[ ... $] statement, otherwise the
	// number of lines the statement has spanned so far.
	statementLine int

	packageName string
	hasPackage  bool

	staticImports          map[string]bool
	staticImportClassNames map[string]bool
	alwaysQualify          map[string]bool
	importedTypes          map[string]*ClassName

	// First-pass bookkeeping: the first class claiming each simple name,
	// and the same-package top-level names referenced where they cannot
	// claim (javadoc, the unnamed package).
	importableTypes map[string]*ClassName
	referencedNames map[string]bool
}

func newCodeWriter(out io.Writer, indent string, columnLimit int) *codeWriter {
	return &codeWriter{
		out:                    NewLineWrapper(out, indent, columnLimit),
		indent:                 indent,
		trailingNewline:        true,
		statementLine:          -1,
		staticImports:          map[string]bool{},
		staticImportClassNames: map[string]bool{},
		alwaysQualify:          map[string]bool{},
		importedTypes:          map[string]*ClassName{},
		importableTypes:        map[string]*ClassName{},
		referencedNames:        map[string]bool{},
	}
}

func (w *codeWriter) withPackage(name string) *codeWriter {
	w.packageName = name
	w.hasPackage = true
	return w
}

func (w *codeWriter) withStaticImports(imports []string) *codeWriter {
	for _, signature := range imports {
		w.staticImports[signature] = true
		w.staticImportClassNames[signature[:strings.LastIndexByte(signature, '.')]] = true
	}
	return w
}

func (w *codeWriter) withAlwaysQualify(names map[string]bool) *codeWriter {
	for name := range names {
		w.alwaysQualify[name] = true
	}
	return w
}

func (w *codeWriter) withImports(imports map[string]*ClassName) *codeWriter {
	for name, c := range imports {
		w.importedTypes[name] = c
	}
	return w
}

// render runs fn and flushes the output. Failures inside fn abort the pass
// and are returned.
func (w *codeWriter) render(fn func(w *codeWriter)) (err error) {
	defer recoverRender(&err)
	fn(w)
	w.check(w.out.Close())
	return nil
}

// renderString renders fn without a package context, so every class name
// is fully qualified.
func renderString(fn func(w *codeWriter)) string {
	var sb strings.Builder
	w := newCodeWriter(&sb, "  ", DefaultColumnLimit)
	if err := w.render(fn); err != nil {
		panic(err)
	}
	return sb.String()
}

func (w *codeWriter) check(err error) {
	if err != nil {
		panic(renderError{err})
	}
}

func (w *codeWriter) fail(kind error, format string, args ...any) {
	panic(renderError{newError(kind, format, args...)})
}

// suggestedImports returns the first-pass import claims, minus names that
// must stay free for same-package classes. A same-package class that won
// its claim blocks the name without needing an import.
func (w *codeWriter) suggestedImports() map[string]*ClassName {
	result := make(map[string]*ClassName, len(w.importableTypes))
	for name, c := range w.importableTypes {
		if w.referencedNames[name] || c.packageName == w.packageName {
			continue
		}
		result[name] = c
	}
	return result
}

func (w *codeWriter) indentBy(levels int) {
	w.indentLevel += levels
}

func (w *codeWriter) unindentBy(levels int) {
	if w.indentLevel-levels < 0 {
		w.fail(ErrIllegalState, "cannot unindent %d from %d", levels, w.indentLevel)
	}
	w.indentLevel -= levels
}

func (w *codeWriter) wrappingSpace() {
	w.check(w.out.WrappingSpace(w.indentLevel + 2))
}

func (w *codeWriter) zeroWidthSpace() {
	w.check(w.out.ZeroWidthSpace(w.indentLevel + 2))
}

func (w *codeWriter) append(s string) {
	w.check(w.out.Append(s))
}

func (w *codeWriter) emitIndentation() {
	for i := 0; i < w.indentLevel; i++ {
		w.append(w.indent)
	}
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// emit writes plain text, indenting each new line and adding the comment
// prefix inside Javadoc and line comments.
func (w *codeWriter) emit(s string) {
	lines := strings.Split(lineBreaks.Replace(s), "\n")
	for i, line := range lines {
		if i > 0 {
			// Blank lines in comments get the bare prefix, without a
			// trailing space.
			if (w.javadoc || w.comment) && w.trailingNewline {
				w.emitIndentation()
				if w.javadoc {
					w.append(" *")
				} else {
					w.append("//")
				}
			}
			w.append("\n")
			w.trailingNewline = true
			if w.statementLine != -1 {
				if w.statementLine == 0 {
					w.indentBy(2)
				}
				w.statementLine++
			}
		}

		if line == "" {
			continue
		}
		if w.trailingNewline && (w.javadoc || w.comment) && i < len(lines)-1 && strings.TrimSpace(line) == "" {
			continue
		}

		if w.trailingNewline {
			w.emitIndentation()
			if w.javadoc {
				w.append(" * ")
			} else if w.comment {
				w.append("// ")
			}
		}
		w.append(line)
		w.trailingNewline = false
	}
}

func (w *codeWriter) emitf(sc *scope, format string, args ...any) {
	w.emitCode(sc, CodeBlockOf(format, args...))
}

func (w *codeWriter) emitCode(sc *scope, cb *CodeBlock) {
	w.emitCodeBlock(sc, cb, false)
}

func (w *codeWriter) emitCodeBlock(sc *scope, cb *CodeBlock, ensureTrailingNewline bool) {
	var parts []string
	var args []any
	if cb != nil {
		parts, args = cb.formatParts, cb.args
	}

	a := 0
	// deferred holds a $T whose rendering waits on the next part, which may
	// name a statically imported member.
	var deferred *ClassName
	for i, part := range parts {
		switch part {
		case "$L":
			w.emitLiteral(sc, args[a])
			a++
		case "$N":
			w.emit(args[a].(string))
			a++
		case "$S":
			if s, ok := args[a].(string); ok {
				w.emit(stringLiteral(s, w.indent))
			} else {
				w.emit("null")
			}
			a++
		case "$T":
			t := args[a].(TypeName)
			a++
			if c, ok := t.(*ClassName); ok && i+1 < len(parts) &&
				!strings.HasPrefix(parts[i+1], "$") && w.staticImportClassNames[c.canonical] {
				deferred = c
				continue
			}
			w.emitType(sc, t)
		case "$$":
			w.emit("$")
		case "$>":
			w.indentBy(1)
		case "$<":
			w.unindentBy(1)
		case "$[":
			if w.statementLine != -1 {
				w.fail(ErrIllegalState, "statement enter $[ followed by statement enter $[")
			}
			w.statementLine = 0
		case "$]":
			if w.statementLine == -1 {
				w.fail(ErrIllegalState, "statement exit $] has no matching statement enter $[")
			}
			if w.statementLine > 0 {
				w.unindentBy(2)
			}
			w.statementLine = -1
		case "$W":
			w.wrappingSpace()
		case "$Z":
			w.zeroWidthSpace()
		default:
			if deferred != nil {
				if strings.HasPrefix(part, ".") && w.emitStaticImportMember(deferred.canonical, part) {
					deferred = nil
					continue
				}
				w.emitType(sc, deferred)
				deferred = nil
			}
			w.emit(part)
		}
	}
	if ensureTrailingNewline && !w.trailingNewline {
		w.emit("\n")
	}
}

func (w *codeWriter) emitStaticImportMember(canonical, part string) bool {
	member := part[1:]
	r, _ := utf8.DecodeRuneInString(member)
	if member == "" || !isIdentifierStart(r) {
		return false
	}
	name := extractMemberName(member)
	if w.staticImports[canonical+"."+name] || w.staticImports[canonical+".*"] {
		w.emit(member)
		return true
	}
	return false
}

func isIdentifierStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

// extractMemberName returns the identifier at the start of part, as in
// "max" for "max(a, b)".
func extractMemberName(part string) string {
	for i, r := range part {
		if i == 0 && isIdentifierStart(r) {
			continue
		}
		if i > 0 && (isIdentifierStart(r) || unicode.IsDigit(r)) {
			continue
		}
		return part[:i]
	}
	return part
}

func (w *codeWriter) emitLiteral(sc *scope, o any) {
	switch v := o.(type) {
	case *TypeSpec:
		v.emit(w, sc, "", 0)
	case *AnnotationSpec:
		v.emit(w, sc, true)
	case *CodeBlock:
		w.emitCode(sc, v)
	case nil:
		w.emit("null")
	default:
		w.emit(fmt.Sprint(o))
	}
}

func (w *codeWriter) emitJavadoc(sc *scope, javadoc *CodeBlock) {
	if javadoc.IsEmpty() {
		return
	}
	w.emit("/**\n")
	w.javadoc = true
	w.emitCodeBlock(sc, javadoc, true)
	w.javadoc = false
	w.emit(" */\n")
}

func (w *codeWriter) emitComment(sc *scope, comment *CodeBlock) {
	// Force the prefix on the first line.
	w.trailingNewline = true
	w.comment = true
	w.emitCode(sc, comment)
	w.emit("\n")
	w.comment = false
}

func (w *codeWriter) emitAnnotations(sc *scope, annotations []*AnnotationSpec, inline bool) {
	for _, a := range annotations {
		a.emit(w, sc, inline)
		if inline {
			w.emit(" ")
		} else {
			w.emit("\n")
		}
	}
}

// emitModifiers writes mods in canonical order, skipping those implied by
// the declaration context.
func (w *codeWriter) emitModifiers(mods, implicit modifierSet) {
	for _, m := range mods.list() {
		if implicit.has(m) {
			continue
		}
		w.emit(m.String())
		w.emit(" ")
	}
}

// emitTypeVariables writes <T extends A & B, U>. The variables must already
// be part of sc.
func (w *codeWriter) emitTypeVariables(sc *scope, vars []TypeName) {
	if len(vars) == 0 {
		return
	}
	w.emit("<")
	for i, v := range vars {
		if i > 0 {
			w.emit(", ")
		}
		base, anns := splitAnnotations(v)
		tv := base.(*TypeVariableName)
		w.emitAnnotations(sc, anns, true)
		w.emit(tv.name)
		for j, bound := range tv.bounds {
			if j == 0 {
				w.emitf(sc, " extends $T", bound)
			} else {
				w.emitf(sc, " & $T", bound)
			}
		}
	}
	w.emit(">")
}

func (w *codeWriter) emitType(sc *scope, t TypeName) {
	w.emitTypeVarargs(sc, t, false)
}

func (w *codeWriter) emitTypeVarargs(sc *scope, t TypeName, varargs bool) {
	base, anns := splitAnnotations(t)
	switch n := base.(type) {
	case *PrimitiveName:
		w.emitAnnotations(sc, anns, true)
		w.emit(n.keyword)
	case *ClassName:
		w.emitClassName(sc, n, anns)
	case *ParameterizedTypeName:
		w.emitParameterized(sc, n, anns)
	case *ArrayTypeName:
		w.emitArray(sc, n, anns, varargs)
	case *TypeVariableName:
		w.emitAnnotations(sc, anns, true)
		w.emit(n.name)
	case *WildcardTypeName:
		w.emitAnnotations(sc, anns, true)
		switch {
		case n.lower != nil:
			w.emitf(sc, "? super $T", n.lower)
		case TypesEqual(n.upper, Object):
			w.emit("?")
		default:
			w.emitf(sc, "? extends $T", n.upper)
		}
	default:
		w.fail(ErrInvalidArgument, "unexpected type %T", t)
	}
}

// emitClassName writes the shortest unambiguous spelling of c. Type
// annotations go right before the simple name: java.lang. @A String.
func (w *codeWriter) emitClassName(sc *scope, c *ClassName, anns []*AnnotationSpec) {
	name := w.lookupName(sc, c)
	if len(anns) == 0 {
		w.emit(name)
		return
	}
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		w.emit(name[:dot+1])
		w.emit(" ")
		name = name[dot+1:]
	}
	w.emitAnnotations(sc, anns, true)
	w.emit(name)
}

func (w *codeWriter) emitParameterized(sc *scope, p *ParameterizedTypeName, anns []*AnnotationSpec) {
	if p.enclosing != nil {
		w.emitParameterized(sc, p.enclosing, nil)
		w.emit(".")
		if len(anns) > 0 {
			w.emit(" ")
			w.emitAnnotations(sc, anns, true)
		}
		w.emit(p.rawType.simpleName)
	} else {
		w.emitClassName(sc, p.rawType, anns)
	}
	if len(p.typeArguments) == 0 {
		return
	}
	w.emit("<")
	for i, arg := range p.typeArguments {
		if i > 0 {
			w.emit(", ")
		}
		w.emitType(sc, arg)
	}
	w.emit(">")
}

// emitArray writes the innermost component followed by one bracket pair per
// dimension, outermost first. Each dimension's annotations precede its
// brackets; the last pair becomes ... for varargs.
func (w *codeWriter) emitArray(sc *scope, a *ArrayTypeName, anns []*AnnotationSpec, varargs bool) {
	leaf := a.component
	for {
		inner, _, ok := asArray(leaf)
		if !ok {
			break
		}
		leaf = inner.component
	}
	w.emitType(sc, leaf)
	w.emitBrackets(sc, a, anns, varargs)
}

func (w *codeWriter) emitBrackets(sc *scope, a *ArrayTypeName, anns []*AnnotationSpec, varargs bool) {
	if len(anns) > 0 {
		w.emit(" ")
		w.emitAnnotations(sc, anns, true)
	}
	inner, innerAnns, ok := asArray(a.component)
	if !ok {
		if varargs {
			w.emit("...")
		} else {
			w.emit("[]")
		}
		return
	}
	w.emit("[]")
	w.emitBrackets(sc, inner, innerAnns, varargs)
}

// lookupName decides how to spell c at this point: by the shortest suffix
// that resolves to it, by its same-package simple names, or fully
// qualified. Names that could be imported are claimed first-come.
func (w *codeWriter) lookupName(sc *scope, c *ClassName) string {
	top := c.TopLevelClassName().simpleName
	if sc.hasTypeVariable(top) {
		return c.canonical
	}

	resolved := false
	for n := c; n != nil; n = n.enclosing {
		r, ok := w.resolve(sc, n.simpleName)
		resolved = ok
		if ok && r != nil && r.canonical == n.canonical {
			suffix := len(n.SimpleNames()) - 1
			return strings.Join(c.SimpleNames()[suffix:], ".")
		}
	}
	// The outermost name means something else here.
	if resolved {
		return c.canonical
	}

	if w.hasPackage && c.packageName == w.packageName {
		if w.alwaysQualify[top] {
			return c.canonical
		}
		if w.javadoc || c.packageName == "" {
			w.referencedNames[top] = true
		} else {
			w.claim(c)
		}
		return strings.Join(c.SimpleNames(), ".")
	}

	if !w.javadoc {
		w.claim(c)
	}
	return c.canonical
}

func (w *codeWriter) claim(c *ClassName) {
	top := c.TopLevelClassName()
	if c.packageName == "" || w.alwaysQualify[c.simpleName] || w.alwaysQualify[top.simpleName] {
		return
	}
	if _, taken := w.importableTypes[top.simpleName]; !taken {
		w.importableTypes[top.simpleName] = top
	}
}

// resolve finds what simpleName refers to in sc: a nested type of an
// enclosing type, the top-level type, or an import. The class is nil when
// the name resolves to something that cannot be named, such as a type
// nested in an anonymous class.
func (w *codeWriter) resolve(sc *scope, simpleName string) (*ClassName, bool) {
	frames := sc.types()
	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]
		if !f.header && f.typeSpec.hasNestedType(simpleName) {
			return w.stackClassName(frames[:i+1], simpleName), true
		}
	}
	if len(frames) > 0 && frames[0].typeSpec.name == simpleName {
		return newClassName(w.packageName, nil, simpleName), true
	}
	if c, ok := w.importedTypes[simpleName]; ok {
		return c, true
	}
	return nil, false
}

func (w *codeWriter) stackClassName(frames []*scope, simpleName string) *ClassName {
	var c *ClassName
	for _, f := range frames {
		if f.typeSpec.name == "" {
			return nil
		}
		if c == nil {
			c = newClassName(w.packageName, nil, f.typeSpec.name)
		} else {
			c = c.NestedClass(f.typeSpec.name)
		}
	}
	return c.NestedClass(simpleName)
}
