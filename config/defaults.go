package config

import (
	"github.com/spf13/viper"
)

const (
	DefaultIndent      = "  "
	DefaultColumnLimit = 100
	DefaultOutputDir   = "src/main/java"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("indent", DefaultIndent)
	v.SetDefault("column_limit", DefaultColumnLimit)
	v.SetDefault("skip_java_lang_imports", false)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("overwrite", true)
	v.SetDefault("file_comment", "")
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Indent:      DefaultIndent,
		ColumnLimit: DefaultColumnLimit,
		OutputDir:   DefaultOutputDir,
		Overwrite:   true,
	}
}
