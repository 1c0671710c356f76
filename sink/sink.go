// Package sink writes generated Java files somewhere: a source tree on disk
// or an in-memory map for tests and dry runs.
package sink

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("javapoet.sink")

// ErrExists is returned when a file exists and the sink may not replace it.
var ErrExists = errors.New("file already exists")

// OutputSink receives generated files by their slash-separated path relative
// to the source root, as returned by JavaFile.RelativePath. WriteFiles calls
// it from several goroutines at once.
type OutputSink interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes files below Root.
type FilesystemSink struct {
	Root string

	// Mode applies to created files; zero means 0644.
	Mode os.FileMode

	// Overwrite replaces existing files. Without it an existing file is
	// left alone and WriteFile fails with ErrExists.
	Overwrite bool
}

func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644, Overwrite: true}
}

// WriteFile stores content at path below Root, creating package
// directories on the way. A reader never sees a partially written file.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	target, err := s.target(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create directories")
	}
	staged, err := stage(dir, content, s.fileMode())
	if err != nil {
		return err
	}
	defer discard(staged)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.commit(staged, target, path); err != nil {
		return err
	}
	log.Debugf("wrote %s (%d bytes)", target, len(content))
	return nil
}

// target maps a relative path to its location on disk, refusing anything
// that would land outside Root.
func (s *FilesystemSink) target(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", errors.Wrapf(err, "invalid path %q", path)
	}
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve root directory")
	}
	target := filepath.Join(root, filepath.FromSlash(path))
	if !strings.HasPrefix(target, root+string(filepath.Separator)) {
		return "", errors.Newf("path escapes root directory: %q", path)
	}
	return target, nil
}

func (s *FilesystemSink) fileMode() os.FileMode {
	if s.Mode == 0 {
		return 0644
	}
	return s.Mode
}

// commit moves the staged file into place. os.Link refuses an existing
// target, which gives create-if-absent without a stat first.
func (s *FilesystemSink) commit(staged, target, path string) error {
	if s.Overwrite {
		return errors.Wrap(os.Rename(staged, target), "failed to rename temp file")
	}
	err := os.Link(staged, target)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrExist):
		return errors.Mark(errors.Newf("file already exists: %q", path), ErrExists)
	default:
		return errors.Wrap(err, "failed to create file")
	}
}

// stage writes content to a fresh temp file in dir and returns its name.
func stage(dir string, content []byte, mode os.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, ".javapoet-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}
	name := f.Name()
	_, err = f.Write(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(name, mode)
	}
	if err != nil {
		discard(name)
		return "", errors.Wrap(err, "failed to write temp file")
	}
	return name, nil
}

// discard removes a staged file. After a rename it is already gone.
func discard(name string) {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		log.Warningf("could not remove %s: %v", name, err)
	}
}

// MemorySink keeps written files in a map. It copies content on the way in
// and out.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: map[string][]byte{}}
}

func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return errors.Wrapf(err, "invalid path %q", path)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = bytes.Clone(content)
	return nil
}

// Files returns every written file by path.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]byte, len(s.files))
	for path, content := range s.files {
		out[path] = bytes.Clone(content)
	}
	return out
}

// Get returns one file, or nil if nothing was written there.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.files[path])
}

func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.files)
}

// ValidatePath accepts clean, relative, slash-separated paths without ".."
// segments, such as com/example/Taco.java.
func ValidatePath(path string) error {
	if path == "" || path == "." {
		return errors.New("path is empty")
	}
	if strings.HasPrefix(path, "/") || filepath.IsAbs(path) || hasDriveLetter(path) {
		return errors.New("absolute paths not allowed")
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := filepath.ToSlash(filepath.Clean(path)); cleaned != path {
		return errors.Newf("path is not clean (expected %q, got %q)", cleaned, path)
	}
	return nil
}

// hasDriveLetter reports a Windows drive prefix like C:, on every platform.
func hasDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0] | 0x20
	return c >= 'a' && c <= 'z'
}
