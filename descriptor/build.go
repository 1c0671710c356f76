package descriptor

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dhamidi/javapoet/java"
)

// Options are file settings applied where a file descriptor leaves them
// unset.
type Options struct {
	Indent              string
	ColumnLimit         int
	SkipJavaLangImports bool
	FileComment         string
}

// Build turns every file of doc into a java.JavaFile. It stops at the first
// file that cannot be built; the error names that file.
func Build(doc *Document, opts Options) ([]*java.JavaFile, error) {
	files := make([]*java.JavaFile, 0, len(doc.Files))
	for i, fm := range doc.Files {
		f, err := BuildFile(fm, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "file %d (%s)", i+1, qualifiedName(fm))
		}
		log.Debugf("built %s", f.RelativePath())
		files = append(files, f)
	}
	return files, nil
}

func qualifiedName(fm FileModel) string {
	if fm.Package == "" {
		return fm.Type.Name
	}
	return fm.Package + "." + fm.Type.Name
}

// BuildFile builds a single file descriptor. Failures reported by the java
// builders are returned as errors marked ErrInvalidDescriptor.
func BuildFile(fm FileModel, opts Options) (file *java.JavaFile, err error) {
	var buildErr error
	captured := java.Capture(func() {
		file, buildErr = buildFile(fm, opts)
	})
	if captured != nil {
		return nil, errors.Mark(captured, ErrInvalidDescriptor)
	}
	if buildErr != nil {
		return nil, buildErr
	}
	return file, nil
}

func buildFile(fm FileModel, opts Options) (*java.JavaFile, error) {
	if fm.Type.Name == "" {
		return nil, invalidf("type has no name")
	}
	r := newResolver(fm.Package, fm.Type)
	typ, err := r.buildType(fm.Type)
	if err != nil {
		return nil, err
	}

	b := java.NewJavaFile(fm.Package, typ)
	comment := fm.FileComment
	if comment == "" {
		comment = opts.FileComment
	}
	if comment = strings.TrimRight(comment, "\n"); comment != "" {
		b.AddFileComment("$L", comment)
	}
	for _, si := range fm.StaticImports {
		c, err := r.classType(si.Class)
		if err != nil {
			return nil, errors.Wrap(err, "static import")
		}
		if len(si.Members) == 0 {
			return nil, invalidf("static import of %s names no members", si.Class)
		}
		b.AddStaticImport(c, si.Members...)
	}
	skip := opts.SkipJavaLangImports
	if fm.SkipJavaLangImports != nil {
		skip = *fm.SkipJavaLangImports
	}
	b.SkipJavaLangImports(skip)
	if indent := firstNonEmpty(fm.Indent, opts.Indent); indent != "" {
		b.Indent(indent)
	}
	if limit := fm.ColumnLimit; limit > 0 {
		b.ColumnLimit(limit)
	} else if opts.ColumnLimit > 0 {
		b.ColumnLimit(opts.ColumnLimit)
	}
	return b.Build(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newTypeBuilder(m ClassModel) (*java.TypeSpecBuilder, error) {
	switch m.Kind {
	case ClassKindClass, "":
		return java.NewClass(m.Name), nil
	case ClassKindInterface:
		return java.NewInterface(m.Name), nil
	case ClassKindEnum:
		return java.NewEnum(m.Name), nil
	case ClassKindAnnotation:
		return java.NewAnnotationType(m.Name), nil
	}
	return nil, invalidf("%s: unknown kind %q", m.Name, m.Kind)
}

func (r *resolver) buildType(m ClassModel) (*java.TypeSpec, error) {
	b, err := newTypeBuilder(m)
	if err != nil {
		return nil, err
	}
	r.push(m.TypeParameters)
	defer r.pop()

	mods, err := modifiers(m.Visibility, m.Modifiers, map[java.Modifier]bool{
		java.Abstract: m.IsAbstract,
		java.Static:   m.IsStatic,
		java.Final:    m.IsFinal,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "type %s", m.Name)
	}
	b.AddModifiers(mods...)
	if m.Javadoc != "" {
		b.AddJavadoc("$L", javadocText(m.Javadoc))
	}
	for _, a := range m.Annotations {
		spec, err := r.buildAnnotation(a)
		if err != nil {
			return nil, errors.Wrapf(err, "type %s", m.Name)
		}
		b.AddAnnotation(spec)
	}
	for _, tp := range m.TypeParameters {
		tv, err := r.buildTypeVariable(tp)
		if err != nil {
			return nil, errors.Wrapf(err, "type %s", m.Name)
		}
		b.AddTypeVariable(tv)
	}
	if m.SuperClass != "" {
		super, err := r.parseType(m.SuperClass)
		if err != nil {
			return nil, errors.Wrapf(err, "type %s", m.Name)
		}
		b.Superclass(super)
	}
	for _, iface := range m.Interfaces {
		t, err := r.parseType(iface)
		if err != nil {
			return nil, errors.Wrapf(err, "type %s", m.Name)
		}
		b.AddSuperinterface(t)
	}
	if len(m.AlwaysQualify) > 0 {
		b.AlwaysQualify(m.AlwaysQualify...)
	}
	for _, c := range m.EnumConstants {
		body, err := r.buildEnumConstant(c)
		if err != nil {
			return nil, errors.Wrapf(err, "enum constant %s.%s", m.Name, c.Name)
		}
		b.AddEnumConstantWithBody(c.Name, body)
	}
	for _, f := range m.Fields {
		spec, err := r.buildField(f)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s.%s", m.Name, f.Name)
		}
		b.AddField(spec)
	}
	for _, init := range m.Initializers {
		cb, err := r.codeBlock(init.Code)
		if err != nil {
			return nil, errors.Wrapf(err, "initializer of %s", m.Name)
		}
		if init.IsStatic {
			b.AddStaticBlock(cb)
		} else {
			b.AddInitializerBlock(cb)
		}
	}
	for _, mm := range m.Methods {
		spec, err := r.buildMethod(mm)
		if err != nil {
			return nil, errors.Wrapf(err, "method %s.%s", m.Name, methodLabel(mm))
		}
		b.AddMethod(spec)
	}
	for _, nested := range m.Types {
		spec, err := r.buildType(nested)
		if err != nil {
			return nil, err
		}
		b.AddType(spec)
	}
	return b.Build(), nil
}

func methodLabel(m MethodModel) string {
	if m.IsConstructor {
		return "<init>"
	}
	return m.Name
}

func (r *resolver) buildEnumConstant(c EnumConstantModel) (*java.TypeSpec, error) {
	args := make([]*java.CodeBlock, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		cb, err := r.codeBlock([]CodeModel{a})
		if err != nil {
			return nil, err
		}
		args = append(args, cb)
	}
	b := java.NewAnonymousClassBlock(java.JoinCodeBlocks(", ", args...))
	if c.Javadoc != "" {
		b.AddJavadoc("$L", javadocText(c.Javadoc))
	}
	for _, f := range c.Fields {
		spec, err := r.buildField(f)
		if err != nil {
			return nil, err
		}
		b.AddField(spec)
	}
	for _, m := range c.Methods {
		spec, err := r.buildMethod(m)
		if err != nil {
			return nil, err
		}
		b.AddMethod(spec)
	}
	return b.Build(), nil
}

func (r *resolver) buildField(f FieldModel) (*java.FieldSpec, error) {
	t, err := r.parseType(f.Type)
	if err != nil {
		return nil, err
	}
	mods, err := modifiers(f.Visibility, nil, map[java.Modifier]bool{
		java.Static:    f.IsStatic,
		java.Final:     f.IsFinal,
		java.Transient: f.IsTransient,
		java.Volatile:  f.IsVolatile,
	})
	if err != nil {
		return nil, err
	}
	b := java.NewField(t, f.Name, mods...)
	if f.Javadoc != "" {
		b.AddJavadoc("$L", javadocText(f.Javadoc))
	}
	for _, a := range f.Annotations {
		spec, err := r.buildAnnotation(a)
		if err != nil {
			return nil, err
		}
		b.AddAnnotation(spec)
	}
	if f.Initializer != nil {
		cb, err := r.codeBlock([]CodeModel{*f.Initializer})
		if err != nil {
			return nil, err
		}
		b.InitializerBlock(cb)
	}
	return b.Build(), nil
}

func (r *resolver) buildMethod(m MethodModel) (*java.MethodSpec, error) {
	var b *java.MethodSpecBuilder
	if m.IsConstructor {
		if m.ReturnType != "" {
			return nil, invalidf("constructors have no return type")
		}
		b = java.NewConstructor()
	} else {
		if m.Name == "" {
			return nil, invalidf("method has no name")
		}
		b = java.NewMethod(m.Name)
	}
	r.push(m.TypeParameters)
	defer r.pop()

	mods, err := modifiers(m.Visibility, nil, map[java.Modifier]bool{
		java.Abstract:     m.IsAbstract,
		java.Default:      m.IsDefault,
		java.Static:       m.IsStatic,
		java.Final:        m.IsFinal,
		java.Synchronized: m.IsSynchronized,
		java.Native:       m.IsNative,
	})
	if err != nil {
		return nil, err
	}
	b.AddModifiers(mods...)
	if m.Javadoc != "" {
		b.AddJavadoc("$L", javadocText(m.Javadoc))
	}
	for _, a := range m.Annotations {
		spec, err := r.buildAnnotation(a)
		if err != nil {
			return nil, err
		}
		b.AddAnnotation(spec)
	}
	for _, tp := range m.TypeParameters {
		tv, err := r.buildTypeVariable(tp)
		if err != nil {
			return nil, err
		}
		b.AddTypeVariable(tv)
	}
	if m.ReturnType != "" {
		t, err := r.parseType(m.ReturnType)
		if err != nil {
			return nil, err
		}
		b.Returns(t)
	}
	for _, p := range m.Parameters {
		spec, err := r.buildParameter(p)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", p.Name)
		}
		b.AddParameter(spec)
	}
	b.Varargs(m.IsVarargs)
	for _, e := range m.Exceptions {
		t, err := r.parseType(e)
		if err != nil {
			return nil, err
		}
		b.AddException(t)
	}
	if m.DefaultValue != nil {
		cb, err := r.codeBlock([]CodeModel{*m.DefaultValue})
		if err != nil {
			return nil, err
		}
		b.DefaultValueBlock(cb)
	}
	if len(m.Code) > 0 {
		cb, err := r.codeBlock(m.Code)
		if err != nil {
			return nil, err
		}
		b.AddCodeBlock(cb)
	}
	return b.Build(), nil
}

func (r *resolver) buildParameter(p ParameterModel) (*java.ParameterSpec, error) {
	t, err := r.parseType(p.Type)
	if err != nil {
		return nil, err
	}
	var mods []java.Modifier
	if p.IsFinal {
		mods = append(mods, java.Final)
	}
	b := java.NewParameter(t, p.Name, mods...)
	if p.Javadoc != "" {
		b.AddJavadoc("$L", strings.TrimRight(p.Javadoc, "\n"))
	}
	for _, a := range p.Annotations {
		spec, err := r.buildAnnotation(a)
		if err != nil {
			return nil, err
		}
		b.AddAnnotation(spec)
	}
	return b.Build(), nil
}

func (r *resolver) buildTypeVariable(tp TypeParameterModel) (*java.TypeVariableName, error) {
	bounds := make([]java.TypeName, 0, len(tp.Bounds))
	for _, s := range tp.Bounds {
		t, err := r.parseType(s)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, t)
	}
	return java.TypeVariableOf(tp.Name, bounds...), nil
}

func (r *resolver) buildAnnotation(a AnnotationModel) (*java.AnnotationSpec, error) {
	t, err := r.classType(a.Type)
	if err != nil {
		return nil, errors.Wrap(err, "annotation")
	}
	b := java.NewAnnotation(t)
	for _, member := range a.Members {
		for _, v := range member.Values {
			cb, err := r.codeBlock([]CodeModel{v})
			if err != nil {
				return nil, errors.Wrapf(err, "annotation %s member %s", a.Type, member.Name)
			}
			b.AddMemberBlock(member.Name, cb)
		}
	}
	return b.Build(), nil
}

// codeBlock applies fragments in order to a new code block.
func (r *resolver) codeBlock(fragments []CodeModel) (*java.CodeBlock, error) {
	b := java.NewCodeBlock()
	for i, c := range fragments {
		args, err := r.arguments(c.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "code fragment %d", i+1)
		}
		switch {
		case c.Statement != "":
			b.AddStatement(c.Statement, args...)
		case c.Code != "":
			b.Add(c.Code, args...)
		case c.Comment != "":
			b.AddComment(c.Comment, args...)
		case c.Begin != "":
			b.BeginControlFlow(c.Begin, args...)
		case c.Next != "":
			b.NextControlFlow(c.Next, args...)
		case c.End != nil && *c.End == "":
			b.EndControlFlow()
		case c.End != nil:
			b.EndControlFlowWith(*c.End, args...)
		default:
			return nil, invalidf("code fragment %d is empty", i+1)
		}
	}
	return b.Build(), nil
}

func (r *resolver) arguments(models []ArgModel) ([]any, error) {
	if len(models) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(models))
	for _, a := range models {
		switch {
		case a.String != nil:
			args = append(args, *a.String)
		case a.Type != "":
			t, err := r.parseType(a.Type)
			if err != nil {
				return nil, err
			}
			args = append(args, t)
		case a.Name != "":
			args = append(args, a.Name)
		default:
			args = append(args, a.Literal)
		}
	}
	return args, nil
}

// modifiers collects the visibility, the flagged modifiers and any extra
// modifier keywords.
func modifiers(v Visibility, extra []string, flags map[java.Modifier]bool) ([]java.Modifier, error) {
	var mods []java.Modifier
	switch v {
	case VisibilityPublic:
		mods = append(mods, java.Public)
	case VisibilityProtected:
		mods = append(mods, java.Protected)
	case VisibilityPrivate:
		mods = append(mods, java.Private)
	case VisibilityPackage, "":
	default:
		return nil, invalidf("unknown visibility %q", v)
	}
	for _, m := range []java.Modifier{java.Abstract, java.Default, java.Static, java.Final, java.Transient, java.Volatile, java.Synchronized, java.Native} {
		if flags[m] {
			mods = append(mods, m)
		}
	}
	for _, name := range extra {
		m, err := java.ParseModifier(name)
		if err != nil {
			return nil, errors.Mark(err, ErrInvalidDescriptor)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// javadocText ends text with a newline, as javadoc blocks expect.
func javadocText(text string) string {
	if strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
