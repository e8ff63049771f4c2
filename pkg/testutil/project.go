package testutil

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t6modm/t6modm/pkg/paths"
	"github.com/t6modm/t6modm/pkg/types"
)

// TestProject represents a project tree under construction
type TestProject struct {
	Home string
	Name string
	FS   types.FS

	t *testing.T
}

// ManifestFields is the subset of manifest keys tests usually set
type ManifestFields struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	Author       string   `json:"author"`
	Fastfiles    []string `json:"fastfiles"`
	Dependencies []string `json:"dependencies"`
}

// NewTestProject creates an empty project directory at home
func NewTestProject(t *testing.T, fs types.FS, home string) *TestProject {
	t.Helper()

	require.NoError(t, fs.MkdirAll(home, 0755))
	return &TestProject{
		Home: home,
		Name: filepath.Base(home),
		FS:   fs,
		t:    t,
	}
}

// WithManifest writes a manifest named after the directory that depends
// on the given projects.
func (tp *TestProject) WithManifest(dependencies ...string) *TestProject {
	tp.t.Helper()
	return tp.WithManifestFields(ManifestFields{
		Name:         tp.Name,
		Version:      "1.0.0",
		Dependencies: dependencies,
	})
}

// WithManifestFields writes a manifest with the given fields
func (tp *TestProject) WithManifestFields(fields ManifestFields) *TestProject {
	tp.t.Helper()

	data, err := json.MarshalIndent(fields, "", "    ")
	require.NoError(tp.t, err)
	return tp.WithRawManifest(string(data))
}

// WithRawManifest writes content verbatim as the manifest
func (tp *TestProject) WithRawManifest(content string) *TestProject {
	tp.t.Helper()
	WriteFile(tp.t, tp.FS, filepath.Join(tp.Home, paths.ManifestFile), content)
	return tp
}

// WithRootZone writes src/zone_source/mod.zone
func (tp *TestProject) WithRootZone(lines ...string) *TestProject {
	tp.t.Helper()
	tp.AddZone(paths.RootZoneName, lines...)
	return tp
}

// AddZone writes src/zone_source/<name>.zone and returns its path
func (tp *TestProject) AddZone(name string, lines ...string) string {
	tp.t.Helper()
	return WriteFile(tp.t, tp.FS, tp.ZonePath(name), strings.Join(lines, "\n"))
}

// AddSrcFile writes a file below src and returns its path
func (tp *TestProject) AddSrcFile(rel, content string) string {
	tp.t.Helper()
	return WriteFile(tp.t, tp.FS, tp.SrcPath(rel), content)
}

// AddFile writes a file relative to the project root and returns its path
func (tp *TestProject) AddFile(rel, content string) string {
	tp.t.Helper()
	return WriteFile(tp.t, tp.FS, filepath.Join(tp.Home, filepath.FromSlash(rel)), content)
}

// SrcPath returns the absolute path of rel below src
func (tp *TestProject) SrcPath(rel string) string {
	return filepath.Join(paths.SrcOf(tp.Home), filepath.FromSlash(rel))
}

// ZonePath returns the path of a zone file in this project
func (tp *TestProject) ZonePath(name string) string {
	return filepath.Join(paths.SrcOf(tp.Home), paths.ZoneSourceDir, name+paths.ZoneExt)
}

// Paths returns the layout rooted at this project
func (tp *TestProject) Paths() *paths.Paths {
	tp.t.Helper()

	p, err := paths.New(tp.Home)
	require.NoError(tp.t, err)
	return p
}
