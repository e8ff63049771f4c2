// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Provide isolated filesystems rooted in a scratch directory

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/t6modm/t6modm/pkg/filesystem"
	"github.com/t6modm/t6modm/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds the filesystem and root every fixture is created in
type TestEnvironment struct {
	Root string
	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Root = filepath.FromSlash("/virtual/work")
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("Failed to create test root %s: %v", env.Root, err)
	}

	return env
}

// Path joins elements onto the environment root
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.Root}, elem...)...)
}

// WriteFile creates a file below the root, creating parent directories
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	return WriteFile(env.t, env.FS, env.Path(filepath.FromSlash(rel)), content)
}

// ReadFile reads a file below the root
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	return ReadFile(env.t, env.FS, env.Path(filepath.FromSlash(rel)))
}

// Exists reports whether a path below the root exists
func (env *TestEnvironment) Exists(rel string) bool {
	_, err := env.FS.Stat(env.Path(filepath.FromSlash(rel)))
	return err == nil
}

// Project creates a project directory named name below the root
func (env *TestEnvironment) Project(name string) *TestProject {
	env.t.Helper()
	return NewTestProject(env.t, env.FS, env.Path(name))
}
