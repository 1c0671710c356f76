package main

import (
	"fmt"

	"github.com/dhamidi/javapoet/config"
	"github.com/dhamidi/javapoet/descriptor"
	"github.com/dhamidi/javapoet/java"
)

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func optionsFor(cfg *config.Config) descriptor.Options {
	return descriptor.Options{
		Indent:              cfg.Indent,
		ColumnLimit:         cfg.ColumnLimit,
		SkipJavaLangImports: cfg.SkipJavaLangImports,
		FileComment:         cfg.FileComment,
	}
}

// buildDescriptors loads and builds every descriptor file in order.
func buildDescriptors(paths []string, opts descriptor.Options) ([]*java.JavaFile, error) {
	var files []*java.JavaFile
	for _, path := range paths {
		doc, err := descriptor.LoadFile(path)
		if err != nil {
			return nil, err
		}
		built, err := descriptor.Build(doc, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Debugf("%s: %d files", path, len(built))
		files = append(files, built...)
	}
	return files, nil
}

// renderAll renders every file, catching errors that only surface while
// emitting, such as unbalanced statement markers.
func renderAll(files []*java.JavaFile) error {
	for _, file := range files {
		if _, err := file.Render(); err != nil {
			return fmt.Errorf("render %s: %w", file.RelativePath(), err)
		}
	}
	return nil
}
