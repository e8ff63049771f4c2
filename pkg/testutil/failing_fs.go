package testutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/t6modm/t6modm/pkg/types"
)

// FailingFS wraps a filesystem and fails writes below registered paths
type FailingFS struct {
	types.FS

	errorPaths map[string]error
}

// NewFailingFS wraps inner without any injected errors
func NewFailingFS(inner types.FS) *FailingFS {
	return &FailingFS{FS: inner, errorPaths: make(map[string]error)}
}

// FailWrites makes every write at or below path return err
func (f *FailingFS) FailWrites(path string, err error) {
	f.errorPaths[filepath.Clean(path)] = err
}

func (f *FailingFS) check(name string) error {
	name = filepath.Clean(name)
	for p, err := range f.errorPaths {
		if name == p || strings.HasPrefix(name, p+string(filepath.Separator)) {
			return &fs.PathError{Op: "write", Path: name, Err: err}
		}
	}
	return nil
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) Create(name string) (io.WriteCloser, error) {
	if err := f.check(name); err != nil {
		return nil, err
	}
	return f.FS.Create(name)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}
