package java

import (
	"bytes"
	"io"
	"path"
	"sort"
	"strings"
)

// JavaFile is a compilation unit: a package declaration, imports and one
// top-level type.
type JavaFile struct {
	fileComment         *CodeBlock
	packageName         string
	typeSpec            *TypeSpec
	skipJavaLangImports bool
	staticImports       []string
	alwaysQualify       map[string]bool
	indent              string
	columnLimit         int
}

func (f *JavaFile) PackageName() string { return f.packageName }
func (f *JavaFile) TypeSpec() *TypeSpec { return f.typeSpec }
func (f *JavaFile) FileComment() *CodeBlock { return f.fileComment }
func (f *JavaFile) StaticImports() []string {
	return append([]string(nil), f.staticImports...)
}

// RelativePath is where the file belongs under a source root, such as
// com/example/Taco.java. Files in the default package sit at the root.
func (f *JavaFile) RelativePath() string {
	name := f.typeSpec.name + ".java"
	if f.packageName == "" {
		return name
	}
	return path.Join(strings.ReplaceAll(f.packageName, ".", "/"), name)
}

// Render produces the source text. Rendering is all or nothing: on error no
// text is returned.
func (f *JavaFile) Render() (string, error) {
	// The first pass discards its output; it only records which simple
	// name each referenced class claims.
	collector := f.newWriter(io.Discard)
	if err := collector.render(f.emit); err != nil {
		return "", err
	}

	var sb strings.Builder
	w := f.newWriter(&sb).withImports(collector.suggestedImports())
	if err := w.render(f.emit); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (f *JavaFile) newWriter(out io.Writer) *codeWriter {
	return newCodeWriter(out, f.indent, f.columnLimit).
		withPackage(f.packageName).
		withStaticImports(f.staticImports).
		withAlwaysQualify(f.alwaysQualify)
}

// WriteTo writes the rendered file. Nothing is written if rendering fails.
func (f *JavaFile) WriteTo(w io.Writer) (int64, error) {
	text, err := f.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, text)
	return int64(n), err
}

// Bytes returns the UTF-8 encoded source.
func (f *JavaFile) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the source text and panics if it cannot be rendered.
func (f *JavaFile) String() string {
	text, err := f.Render()
	if err != nil {
		panic(err)
	}
	return text
}

func (f *JavaFile) emit(w *codeWriter) {
	if !f.fileComment.IsEmpty() {
		w.emitComment(nil, f.fileComment)
	}

	if f.packageName != "" {
		w.emitf(nil, "package $L;\n", f.packageName)
		w.emit("\n")
	}

	if len(f.staticImports) > 0 {
		for _, signature := range f.staticImports {
			w.emitf(nil, "import static $L;\n", signature)
		}
		w.emit("\n")
	}

	imports := make([]*ClassName, 0, len(w.importedTypes))
	for _, c := range w.importedTypes {
		imports = append(imports, c)
	}
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Compare(imports[j]) < 0
	})
	count := 0
	for _, c := range imports {
		if f.skipJavaLangImports && c.packageName == "java.lang" && !f.alwaysQualify[c.simpleName] {
			continue
		}
		w.emitf(nil, "import $L;\n", c.canonical)
		count++
	}
	if count > 0 {
		w.emit("\n")
	}

	f.typeSpec.emit(w, nil, "", 0)
}

func (f *JavaFile) ToBuilder() *JavaFileBuilder {
	b := &JavaFileBuilder{
		packageName:         f.packageName,
		typeSpec:            f.typeSpec,
		fileComment:         f.fileComment.ToBuilder(),
		skipJavaLangImports: f.skipJavaLangImports,
		staticImports:       map[string]bool{},
		indent:              f.indent,
		columnLimit:         f.columnLimit,
	}
	for _, s := range f.staticImports {
		b.staticImports[s] = true
	}
	return b
}

// JavaFileBuilder configures a JavaFile.
type JavaFileBuilder struct {
	packageName         string
	typeSpec            *TypeSpec
	fileComment         *CodeBlockBuilder
	skipJavaLangImports bool
	staticImports       map[string]bool
	indent              string
	columnLimit         int
}

// NewJavaFile starts a file declaring typeSpec in packageName. Use "" for
// the default package.
func NewJavaFile(packageName string, typeSpec *TypeSpec) *JavaFileBuilder {
	checkNotNull(typeSpec != nil, "typeSpec")
	checkArgument(!typeSpec.IsAnonymous(), "anonymous types cannot be top-level")
	for _, segment := range strings.Split(packageName, ".") {
		checkArgument(packageName == "" || IsName(segment), "not a valid package name: %s", packageName)
	}
	return &JavaFileBuilder{
		packageName:   packageName,
		typeSpec:      typeSpec,
		fileComment:   NewCodeBlock(),
		staticImports: map[string]bool{},
		indent:        "  ",
		columnLimit:   DefaultColumnLimit,
	}
}

// AddFileComment adds text to the comment at the top of the file. Each
// line is written as a // comment.
func (b *JavaFileBuilder) AddFileComment(format string, args ...any) *JavaFileBuilder {
	b.fileComment.Add(format, args...)
	return b
}

// AddStaticImport imports members of c statically. The name "*" imports all
// of them.
func (b *JavaFileBuilder) AddStaticImport(c *ClassName, names ...string) *JavaFileBuilder {
	checkNotNull(c != nil, "className")
	checkArgument(len(names) > 0, "names array is empty")
	for _, name := range names {
		checkArgument(name == "*" || IsName(name), "not a valid name: %s", name)
		b.staticImports[c.canonical+"."+name] = true
	}
	return b
}

// SkipJavaLangImports omits import lines for java.lang classes. They are
// still referenced by simple name.
func (b *JavaFileBuilder) SkipJavaLangImports(skip bool) *JavaFileBuilder {
	b.skipJavaLangImports = skip
	return b
}

// Indent sets the indentation unit, two spaces by default.
func (b *JavaFileBuilder) Indent(indent string) *JavaFileBuilder {
	b.indent = indent
	return b
}

func (b *JavaFileBuilder) ColumnLimit(limit int) *JavaFileBuilder {
	checkArgument(limit > 0, "column limit must be positive")
	b.columnLimit = limit
	return b
}

func (b *JavaFileBuilder) Build() *JavaFile {
	f := &JavaFile{
		fileComment:         b.fileComment.Build(),
		packageName:         b.packageName,
		typeSpec:            b.typeSpec,
		skipJavaLangImports: b.skipJavaLangImports,
		alwaysQualify:       map[string]bool{},
		indent:              b.indent,
		columnLimit:         b.columnLimit,
	}
	for s := range b.staticImports {
		f.staticImports = append(f.staticImports, s)
	}
	sort.Strings(f.staticImports)
	b.typeSpec.collectAlwaysQualify(f.alwaysQualify)
	return f
}
