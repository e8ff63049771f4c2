package zone

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/project"
	"github.com/t6modm/t6modm/pkg/testutil"
	"github.com/t6modm/t6modm/pkg/types"
)

func destinations(entries []types.FileEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Destination)
	}
	return out
}

func TestParseFileDirective(t *testing.T) {
	tests := []struct {
		line string
		want FileDirective
		ok   bool
	}{
		{"file: images/*.png ui/", FileDirective{Source: "images/*.png", Destination: "ui/"}, true},
		{"file_debug:a.cfg b.cfg", FileDirective{Target: "debug", Source: "a.cfg", Destination: "b.cfg"}, true},
		{"file_release: a.cfg b.cfg // note", FileDirective{Target: "release", Source: "a.cfg", Destination: "b.cfg"}, true},
		{"serverfile: cfg/** cfg/", FileDirective{Server: true, Source: "cfg/**", Destination: "cfg/"}, true},
		{"serverfile_release: a b", FileDirective{Server: true, Target: "release", Source: "a", Destination: "b"}, true},
		{"file: onlysource", FileDirective{}, false},
		{"file_beta: a b", FileDirective{}, false},
		{"rawfile,file: a b", FileDirective{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseFileDirective(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilePassDirectoryDestination(t *testing.T) {
	f := newFixture(t, types.TargetDebug)
	f.mod.AddSrcFile("images/a.png", "a")
	f.mod.AddSrcFile("images/b.png", "b")
	f.mod.AddSrcFile("images/c.tga", "c")
	f.mod.AddSrcFile("images/sub/d.png", "d")

	out, err := f.parse(t,
		"file: images/*.png ui/",
		"file: images/** all/",
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"// file: images/*.png ui/", "// file: images/** all/"}, lines(out))
	assert.Equal(t, []string{
		"all/a.png", "all/b.png", "all/c.tga", "all/sub/d.png",
		"ui/a.png", "ui/b.png",
	}, destinations(f.proj.Files()))

	entry, ok := f.proj.File("all/sub/d.png")
	require.True(t, ok)
	assert.Equal(t, f.mod.SrcPath("images/sub/d.png"), entry.Source)
}

func TestFilePassLiteralDestinationLastWins(t *testing.T) {
	f := newFixture(t, types.TargetDebug)
	f.mod.AddSrcFile("skins/a.png", "a")
	f.mod.AddSrcFile("skins/b.png", "b")

	_, err := f.parse(t, "file: skins/*.png skin.png")
	require.NoError(t, err)

	require.Len(t, f.proj.Files(), 1)
	entry, _ := f.proj.File("skin.png")
	assert.Equal(t, f.mod.SrcPath("skins/b.png"), entry.Source)
}

func TestFilePassOwnFileWins(t *testing.T) {
	tests := []struct {
		name  string
		zones func(t *testing.T, f *fixture)
		root  []string
	}{
		{
			name: "single_directive",
			root: []string{"file: images/*.png images/"},
		},
		{
			name: "dependency_directive_first",
			zones: func(t *testing.T, f *fixture) {
				testutil.WriteFile(t, f.env.FS, f.deps["core"].ZonePath("core"), "file: images/*.png images/")
			},
			root: []string{"include,core", "file: images/a.png images/"},
		},
		{
			name: "own_directive_first",
			zones: func(t *testing.T, f *fixture) {
				testutil.WriteFile(t, f.env.FS, f.deps["core"].ZonePath("core"), "file: images/*.png images/")
			},
			root: []string{"file: images/a.png images/", "include,core"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, types.TargetDebug, "core")
			own := f.mod.AddSrcFile("images/a.png", "own")
			testutil.WriteFile(t, f.env.FS, f.deps["core"].SrcPath("images/a.png"), "core")
			coreOnly := testutil.WriteFile(t, f.env.FS, f.deps["core"].SrcPath("images/b.png"), "core")
			if tt.zones != nil {
				tt.zones(t, f)
			}

			_, err := f.parse(t, tt.root...)
			require.NoError(t, err)

			entry, ok := f.proj.File("images/a.png")
			require.True(t, ok)
			assert.Equal(t, own, entry.Source)

			entry, ok = f.proj.File("images/b.png")
			require.True(t, ok)
			assert.Equal(t, coreOnly, entry.Source)
		})
	}
}

func TestFilePassLaterDependencyReplacesEarlier(t *testing.T) {
	f := newFixture(t, types.TargetDebug, "core", "ui")
	testutil.WriteFile(t, f.env.FS, f.deps["core"].SrcPath("a.cfg"), "core")
	ui := testutil.WriteFile(t, f.env.FS, f.deps["ui"].SrcPath("a.cfg"), "ui")

	_, err := f.parse(t, "serverfile: a.cfg cfg/")
	require.NoError(t, err)

	entry, ok := f.proj.ServerFile("cfg/a.cfg")
	require.True(t, ok)
	assert.Equal(t, ui, entry.Source)
	assert.Empty(t, f.proj.Files())
}

func TestFilePassTargetVariants(t *testing.T) {
	directives := map[string]string{
		"file":               "file: a.cfg file/",
		"file_debug":         "file_debug: a.cfg file_debug/",
		"file_release":       "file_release: a.cfg file_release/",
		"serverfile":         "serverfile: a.cfg serverfile/",
		"serverfile_debug":   "serverfile_debug: a.cfg serverfile_debug/",
		"serverfile_release": "serverfile_release: a.cfg serverfile_release/",
	}

	tests := []struct {
		target     types.Target
		wantFiles  []string
		wantServer []string
	}{
		{
			target:     types.TargetDebug,
			wantFiles:  []string{"file/a.cfg", "file_debug/a.cfg"},
			wantServer: []string{"serverfile/a.cfg", "serverfile_debug/a.cfg"},
		},
		{
			target:     types.TargetRelease,
			wantFiles:  []string{"file/a.cfg", "file_release/a.cfg"},
			wantServer: []string{"serverfile/a.cfg", "serverfile_release/a.cfg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			f := newFixture(t, tt.target)
			f.mod.AddSrcFile("a.cfg", "cfg")

			var zone []string
			for _, d := range directives {
				zone = append(zone, d)
			}
			out, err := f.parse(t, zone...)
			require.NoError(t, err)

			for _, line := range lines(out) {
				assert.Regexp(t, `^// `, line)
			}
			assert.Equal(t, tt.wantFiles, destinations(f.proj.Files()))
			assert.Equal(t, tt.wantServer, destinations(f.proj.ServerFiles()))
		})
	}
}

func TestFilePassInactiveVariantIsNotGlobbed(t *testing.T) {
	f := newFixture(t, types.TargetDebug)

	out, err := f.parse(t, "file_release: missing/*.png images/")
	require.NoError(t, err)
	assert.Equal(t, "// file_release: missing/*.png images/", out)
	assert.Empty(t, f.proj.Files())
}

func TestFilePassZeroMatches(t *testing.T) {
	for _, line := range []string{"file: images/*.png images/", "serverfile: cfg/server.cfg cfg/"} {
		t.Run(line, func(t *testing.T) {
			f := newFixture(t, types.TargetDebug)
			f.mod.AddSrcFile("images/a.tga", "tga")

			_, err := f.parse(t, line)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrAssetNotFound))
		})
	}
}

func TestFilePassIgnoresDirectories(t *testing.T) {
	f := newFixture(t, types.TargetDebug)
	require.NoError(t, f.env.FS.MkdirAll(f.mod.SrcPath("images/empty.png"), 0755))

	_, err := f.parse(t, "file: images/*.png images/")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAssetNotFound))
}

func TestFilePassMetacharactersInProjectPaths(t *testing.T) {
	for _, name := range []string{"mod[v2]", "{mine}", "mod (WIP) [test]", "what?*"} {
		t.Run(name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			core := env.Project("dep-" + name).WithManifest()
			mod := env.Project(name).WithManifest("$HOME/../" + filepath.Base(core.Home))
			own := mod.AddSrcFile("images/a.png", "own")
			dep := testutil.WriteFile(t, env.FS, core.SrcPath("images/b.png"), "core")
			zonePath := mod.AddZone("mod", "file: images/*.png ui/")

			proj, err := project.Load(env.FS, mod.Paths(), env.Path("game"))
			require.NoError(t, err)
			proj.SetTarget(types.TargetDebug)

			_, err = NewParser(env.FS, proj, zonePath, Options{IsRoot: true}).Parse()
			require.NoError(t, err)

			assert.Equal(t, []string{"ui/a.png", "ui/b.png"}, destinations(proj.Files()))
			entry, _ := proj.File("ui/a.png")
			assert.Equal(t, own, entry.Source)
			entry, _ = proj.File("ui/b.png")
			assert.Equal(t, dep, entry.Source)
		})
	}
}

func TestFilePassBackslashSource(t *testing.T) {
	f := newFixture(t, types.TargetDebug)
	f.mod.AddSrcFile("images/sub/a.png", "a")

	_, err := f.parse(t, `file: images\sub\*.png ui\`)
	require.NoError(t, err)
	assert.Equal(t, []string{"ui/a.png"}, destinations(f.proj.Files()))
}

func TestFilePassRejectsEscapingDestination(t *testing.T) {
	for _, line := range []string{"file: a.cfg ../../y/", "serverfile: a.cfg ../a.cfg", "file: a.cfg ui/../../a.cfg"} {
		t.Run(line, func(t *testing.T) {
			f := newFixture(t, types.TargetDebug)
			f.mod.AddSrcFile("a.cfg", "cfg")

			_, err := f.parse(t, line)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Empty(t, f.proj.Files())
			assert.Empty(t, f.proj.ServerFiles())
		})
	}
}

func TestFilePassLogFields(t *testing.T) {
	logs := testutil.CaptureLogs(t)
	f := newFixture(t, types.TargetDebug)
	f.mod.AddSrcFile("images/a.png", "a")

	_, err := f.parse(t, "file: images/*.png ui/", "file_release: x.cfg x/")
	require.NoError(t, err)

	var events []string
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.Contains(line, "File directive") {
			events = append(events, line)
		}
	}
	require.Len(t, events, 2)
	for _, line := range events {
		assert.Equal(t, 1, strings.Count(line, `"source":`), line)
		assert.Contains(t, line, `"pattern":`)
	}
	assert.Contains(t, events[0], `"pattern":"images/*.png"`)
}
