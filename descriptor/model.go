// Package descriptor reads YAML documents describing Java files and builds
// them into java.JavaFile values.
package descriptor

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
)

// Document is the root of a descriptor file.
type Document struct {
	Files []FileModel `yaml:"files"`
}

type FileModel struct {
	Package             string              `yaml:"package"`
	FileComment         string              `yaml:"fileComment"`
	StaticImports       []StaticImportModel `yaml:"staticImports"`
	SkipJavaLangImports *bool               `yaml:"skipJavaLangImports"`
	Indent              string              `yaml:"indent"`
	ColumnLimit         int                 `yaml:"columnLimit"`
	Type                ClassModel          `yaml:"type"`
}

type StaticImportModel struct {
	Class   string   `yaml:"class"`
	Members []string `yaml:"members"`
}

type ClassModel struct {
	Name           string               `yaml:"name"`
	Kind           ClassKind            `yaml:"kind"`
	Visibility     Visibility           `yaml:"visibility"`
	IsStatic       bool                 `yaml:"static"`
	IsFinal        bool                 `yaml:"final"`
	IsAbstract     bool                 `yaml:"abstract"`
	Modifiers      []string             `yaml:"modifiers"`
	Javadoc        string               `yaml:"javadoc"`
	Annotations    []AnnotationModel    `yaml:"annotations"`
	TypeParameters []TypeParameterModel `yaml:"typeParameters"`
	SuperClass     string               `yaml:"superClass"`
	Interfaces     []string             `yaml:"interfaces"`
	AlwaysQualify  []string             `yaml:"alwaysQualify"`
	EnumConstants  []EnumConstantModel  `yaml:"enumConstants"`
	Fields         []FieldModel         `yaml:"fields"`
	Methods        []MethodModel        `yaml:"methods"`
	Initializers   []InitializerModel   `yaml:"initializers"`
	Types          []ClassModel         `yaml:"types"`
}

// InitializerModel is a static or instance initializer block.
type InitializerModel struct {
	IsStatic bool        `yaml:"static"`
	Code     []CodeModel `yaml:"code"`
}

// EnumConstantModel is an enum constant. Arguments are joined with ", " to
// form the constructor call; fields and methods make up its class body.
type EnumConstantModel struct {
	Name      string        `yaml:"name"`
	Javadoc   string        `yaml:"javadoc"`
	Arguments []CodeModel   `yaml:"arguments"`
	Fields    []FieldModel  `yaml:"fields"`
	Methods   []MethodModel `yaml:"methods"`
}

type FieldModel struct {
	Name        string            `yaml:"name"`
	Type        string            `yaml:"type"`
	Visibility  Visibility        `yaml:"visibility"`
	IsStatic    bool              `yaml:"static"`
	IsFinal     bool              `yaml:"final"`
	IsVolatile  bool              `yaml:"volatile"`
	IsTransient bool              `yaml:"transient"`
	Javadoc     string            `yaml:"javadoc"`
	Annotations []AnnotationModel `yaml:"annotations"`
	Initializer *CodeModel        `yaml:"initializer"`
}

// MethodModel is a method, or a constructor when IsConstructor is set.
type MethodModel struct {
	Name           string               `yaml:"name"`
	IsConstructor  bool                 `yaml:"constructor"`
	ReturnType     string               `yaml:"returnType"`
	Parameters     []ParameterModel     `yaml:"parameters"`
	Visibility     Visibility           `yaml:"visibility"`
	IsStatic       bool                 `yaml:"static"`
	IsFinal        bool                 `yaml:"final"`
	IsAbstract     bool                 `yaml:"abstract"`
	IsSynchronized bool                 `yaml:"synchronized"`
	IsNative       bool                 `yaml:"native"`
	IsVarargs      bool                 `yaml:"varargs"`
	IsDefault      bool                 `yaml:"default"`
	Javadoc        string               `yaml:"javadoc"`
	Annotations    []AnnotationModel    `yaml:"annotations"`
	Exceptions     []string             `yaml:"exceptions"`
	TypeParameters []TypeParameterModel `yaml:"typeParameters"`
	DefaultValue   *CodeModel           `yaml:"defaultValue"`
	Code           []CodeModel          `yaml:"code"`
}

type ParameterModel struct {
	Name        string            `yaml:"name"`
	Type        string            `yaml:"type"`
	IsFinal     bool              `yaml:"final"`
	Javadoc     string            `yaml:"javadoc"`
	Annotations []AnnotationModel `yaml:"annotations"`
}

type TypeParameterModel struct {
	Name   string   `yaml:"name"`
	Bounds []string `yaml:"bounds"`
}

// AnnotationModel is an annotation; each member holds one or more values.
type AnnotationModel struct {
	Type    string  `yaml:"type"`
	Members Members `yaml:"members"`
}

type Members []MemberModel

type MemberModel struct {
	Name   string
	Values []CodeModel
}

// CodeModel is one fragment of a code block. Exactly one of its text fields
// is set: Statement adds a statement, Code adds raw template text, Comment a
// line comment, and Begin, Next and End shape control flow. An End of ""
// closes the innermost flow with "}".
type CodeModel struct {
	Statement string     `yaml:"statement"`
	Code      string     `yaml:"code"`
	Comment   string     `yaml:"comment"`
	Begin     string     `yaml:"begin"`
	Next      string     `yaml:"next"`
	End       *string    `yaml:"end"`
	Args      []ArgModel `yaml:"args"`
}

// ArgModel is a template argument. A plain scalar is a $L literal; a mapping
// names its kind with one of the string, type or name keys.
type ArgModel struct {
	Literal any     `yaml:"literal"`
	String  *string `yaml:"string"`
	Type    string  `yaml:"type"`
	Name    string  `yaml:"name"`
}
