package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for t6modm operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	RemoveAll(path string) error

	// Glob expands a slash-separated pattern relative to the literal
	// directory root, supporting the recursive ** wildcard, and returns the
	// regular files it matches in lexical order.
	Glob(root, pattern string) ([]string, error)
}
