// Package config holds the generator settings read from javapoet.toml and
// JAVAPOET_* environment variables.
package config

// FileName is the configuration file looked up in the working directory.
const FileName = "javapoet.toml"

type Config struct {
	// Indent is one indentation level of generated source.
	Indent string `mapstructure:"indent" toml:"indent" validate:"indent"`

	// ColumnLimit is where generated lines are wrapped.
	ColumnLimit int `mapstructure:"column_limit" toml:"column_limit" validate:"gte=20,lte=1000"`

	SkipJavaLangImports bool `mapstructure:"skip_java_lang_imports" toml:"skip_java_lang_imports"`

	// OutputDir is the source root generated files are written under.
	OutputDir string `mapstructure:"output_dir" toml:"output_dir" validate:"required"`

	// Overwrite allows replacing files that already exist.
	Overwrite bool `mapstructure:"overwrite" toml:"overwrite"`

	// FileComment is written as a line comment at the top of every file.
	FileComment string `mapstructure:"file_comment" toml:"file_comment"`
}
