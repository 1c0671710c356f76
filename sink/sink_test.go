package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javapoet/java"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		errMsg string
	}{
		{name: "java source path", path: "com/example/Taco.java"},
		{name: "default package", path: "Taco.java"},
		{name: "dots inside a name", path: "a/..b/c.java"},
		{name: "empty path", path: "", errMsg: "empty"},
		{name: "current directory", path: ".", errMsg: "empty"},
		{name: "absolute path", path: "/com/Taco.java", errMsg: "absolute paths not allowed"},
		{name: "windows drive", path: "C:/Taco.java", errMsg: "absolute paths not allowed"},
		{name: "lowercase windows drive", path: "c:Taco.java", errMsg: "absolute paths not allowed"},
		{name: "colon in a name", path: "1:Taco.java"},
		{name: "traversal", path: "com/../Taco.java", errMsg: "path traversal not allowed"},
		{name: "leading traversal", path: "../Taco.java", errMsg: "path traversal not allowed"},
		{name: "current dir prefix", path: "./Taco.java", errMsg: "not clean"},
		{name: "double slash", path: "com//Taco.java", errMsg: "not clean"},
		{name: "trailing slash", path: "com/", errMsg: "not clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFilesystemSink_WriteFile(t *testing.T) {
	root := t.TempDir()
	s := NewFilesystemSink(root)
	ctx := context.Background()

	require.NoError(t, s.WriteFile(ctx, "com/example/Taco.java", []byte("class Taco {}\n")))
	data, err := os.ReadFile(filepath.Join(root, "com", "example", "Taco.java"))
	require.NoError(t, err)
	assert.Equal(t, "class Taco {}\n", string(data))

	info, err := os.Stat(filepath.Join(root, "com", "example", "Taco.java"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	require.NoError(t, s.WriteFile(ctx, "com/example/Taco.java", []byte("class Taco { int x; }\n")))
	data, err = os.ReadFile(filepath.Join(root, "com", "example", "Taco.java"))
	require.NoError(t, err)
	assert.Equal(t, "class Taco { int x; }\n", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "com", "example"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestFilesystemSink_ZeroMode(t *testing.T) {
	root := t.TempDir()
	s := &FilesystemSink{Root: root}

	require.NoError(t, s.WriteFile(context.Background(), "com/example/Salsa.java", []byte("class Salsa {}\n")))
	info, err := os.Stat(filepath.Join(root, "com", "example", "Salsa.java"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	err = s.WriteFile(context.Background(), "com/example/Salsa.java", []byte("again"))
	assert.True(t, errors.Is(err, ErrExists), "the zero value does not overwrite")
	entries, err := os.ReadDir(filepath.Join(root, "com", "example"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the staged file is removed after a refused write")
}

func TestFilesystemSink_NoOverwrite(t *testing.T) {
	root := t.TempDir()
	s := NewFilesystemSink(root)
	s.Overwrite = false
	ctx := context.Background()

	require.NoError(t, s.WriteFile(ctx, "Taco.java", []byte("first")))
	err := s.WriteFile(ctx, "Taco.java", []byte("second"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	data, err := os.ReadFile(filepath.Join(root, "Taco.java"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFilesystemSink_Rejects(t *testing.T) {
	s := NewFilesystemSink(t.TempDir())

	assert.Error(t, s.WriteFile(context.Background(), "../escape.java", []byte("x")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.WriteFile(ctx, "Taco.java", []byte("x"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	content := []byte("class Taco {}")
	require.NoError(t, s.WriteFile(ctx, "Taco.java", content))
	content[0] = 'X'
	assert.Equal(t, "class Taco {}", string(s.Get("Taco.java")), "the sink keeps its own copy")
	assert.Nil(t, s.Get("Missing.java"))

	files := s.Files()
	files["Taco.java"][0] = 'Y'
	assert.Equal(t, "class Taco {}", string(s.Get("Taco.java")))

	assert.Error(t, s.WriteFile(ctx, "/abs.java", nil))

	s.Reset()
	assert.Empty(t, s.Files())
}

func TestMemorySink_Concurrent(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.WriteFile(ctx, fmt.Sprintf("T%d.java", i), []byte("x")))
			_ = s.Files()
		}()
	}
	wg.Wait()
	assert.Len(t, s.Files(), 50)
}

func TestWriteFiles(t *testing.T) {
	taco := java.NewJavaFile("com.example", java.NewClass("Taco").Build()).Build()
	salsa := java.NewJavaFile("", java.NewClass("Salsa").Build()).Build()

	s := NewMemorySink()
	require.NoError(t, WriteFiles(context.Background(), s, []*java.JavaFile{taco, salsa}))

	files := s.Files()
	assert.Len(t, files, 2)
	assert.Equal(t, "package com.example;\n\nclass Taco {\n}\n", string(files["com/example/Taco.java"]))
	assert.Equal(t, "class Salsa {\n}\n", string(files["Salsa.java"]))
}

func TestWriteFiles_RenderFailure(t *testing.T) {
	broken := java.NewJavaFile("com.example", java.NewClass("Broken").
		AddMethod(java.NewMethod("run").AddCode("$[$[").Build()).
		Build()).Build()

	s := NewMemorySink()
	err := WriteFiles(context.Background(), s, []*java.JavaFile{broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render com/example/Broken.java")
	assert.True(t, errors.Is(err, java.ErrIllegalState))
	assert.Nil(t, s.Get("com/example/Broken.java"))
}
