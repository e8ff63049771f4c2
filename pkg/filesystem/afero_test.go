package filesystem

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, files ...string) (root string, fsys *aferoFS) {
	t.Helper()
	root = t.TempDir()
	fsys = NewOS().(*aferoFS)
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(f), 0644))
	}
	return root, fsys
}

func TestGlob(t *testing.T) {
	root, fsys := seed(t,
		"images/a.png",
		"images/b.png",
		"images/c.tga",
		"images/sub/d.png",
		"images/sub/deep/e.png",
	)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "single_level_wildcard",
			pattern: "images/*.png",
			want:    []string{"images/a.png", "images/b.png"},
		},
		{
			name:    "recursive_wildcard",
			pattern: "images/**/*.png",
			want:    []string{"images/a.png", "images/b.png", "images/sub/d.png", "images/sub/deep/e.png"},
		},
		{
			name:    "everything_below",
			pattern: "images/sub/**",
			want:    []string{"images/sub/d.png", "images/sub/deep/e.png"},
		},
		{
			name:    "literal_file",
			pattern: "images/c.tga",
			want:    []string{"images/c.tga"},
		},
		{
			name:    "missing_prefix",
			pattern: "sounds/*.wav",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fsys.Glob(root, tt.pattern)
			require.NoError(t, err)

			var rel []string
			for _, g := range got {
				r, err := filepath.Rel(root, g)
				require.NoError(t, err)
				rel = append(rel, filepath.ToSlash(r))
			}
			assert.Equal(t, tt.want, rel)
		})
	}
}

func TestGlobSkipsDirectories(t *testing.T) {
	root, fsys := seed(t, "scripts/mp/_load.gsc")

	got, err := fsys.Glob(root, "scripts/*")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGlobMemory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/proj/src/ui", 0755))
	require.NoError(t, fsys.WriteFile("/proj/src/ui/menu.menu", []byte("x"), 0644))

	got, err := fsys.Glob(filepath.FromSlash("/proj/src"), "ui/*.menu")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.FromSlash("/proj/src/ui/menu.menu")}, got)
}

func TestGlobRootIsLiteral(t *testing.T) {
	for _, home := range []string{"/mods/mod[v2]", "/mods/{mine}", "/mods/mod (WIP) [test]", "/mods/what?*"} {
		t.Run(home, func(t *testing.T) {
			fsys := NewMemory()
			root := filepath.FromSlash(home + "/src")
			require.NoError(t, fsys.MkdirAll(filepath.Join(root, "images"), 0755))
			require.NoError(t, fsys.WriteFile(filepath.Join(root, "images", "a.png"), []byte("x"), 0644))

			got, err := fsys.Glob(root, "images/*.png")
			require.NoError(t, err)
			assert.Equal(t, []string{filepath.Join(root, "images", "a.png")}, got)
		})
	}
}

func TestGlobEscapedPrefix(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("backslash is a path separator on windows")
	}
	root, fsys := seed(t, "ui[old]/a.menu", "uio/b.menu")

	got, err := fsys.Glob(root, `ui\[old\]/*.menu`)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "ui[old]", "a.menu")}, got)
}

func TestGlobInvalidPattern(t *testing.T) {
	root, fsys := seed(t)

	_, err := fsys.Glob(root, "images/[a.png")
	assert.Error(t, err)
}

func TestReadFileRejectsDirectory(t *testing.T) {
	root, fsys := seed(t, "a/b.txt")

	_, err := fsys.ReadFile(filepath.Join(root, "a"))
	assert.Error(t, err)

	data, err := fsys.ReadFile(filepath.Join(root, "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a/b.txt", string(data))
}
