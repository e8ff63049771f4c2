package style

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t6modm/t6modm/pkg/build"
	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/paths"
	"github.com/t6modm/t6modm/pkg/types"
)

func TestFilteredScripts(t *testing.T) {
	assert.Equal(t, "No scripts filtered.", FilteredScripts(0))
	assert.Equal(t, "1 script filtered.", FilteredScripts(1))
	assert.Equal(t, "3 scripts filtered.", FilteredScripts(3))
}

func TestPlainRenderBuild(t *testing.T) {
	result := &build.Result{
		Project:             "zombies",
		Target:              types.TargetRelease,
		OutputDir:           "/mods/zombies/compiled",
		SkippedDependencies: []string{"ui"},
		FilteredScripts:     2,
		Archives:            []string{"/mods/zombies/compiled/mod.iwd", "/mods/zombies/compiled/server-only.zip"},
	}

	assert.Equal(t, `[INFO] Built zombies for target release
[WARN] Dependency ui has no root zone and was skipped
[INFO] 2 scripts filtered.
[DONE] Build completed successfully!
[DONE] Created mod.iwd
[DONE] Created server-only.zip
  output: /mods/zombies/compiled`, NewPlainRenderer().RenderBuild(result))
}

func TestPlainRenderError(t *testing.T) {
	r := NewPlainRenderer()

	assert.Equal(t, "", r.RenderError(nil))
	assert.Equal(t, "[ERR!] Error: boom", r.RenderError(fmt.Errorf("boom")))
	assert.Equal(t, "[ERR!] Error [ZONE_NOT_FOUND] the zone x does not exist",
		r.RenderError(errors.New(errors.ErrZoneNotFound, "the zone x does not exist")))
}

func TestRenderInit(t *testing.T) {
	p, err := paths.New(t.TempDir())
	require.NoError(t, err)

	plain := NewPlainRenderer().RenderInit("zombies", p)
	assert.Contains(t, plain, "[DONE] Created project zombies")
	assert.Contains(t, plain, "Directory: "+p.Home())
	assert.Contains(t, plain, ".t6modm.env")

	assert.Contains(t, NewTerminalRenderer().RenderInit("zombies", p), "zombies")
}

func TestTerminalRendererKeepsText(t *testing.T) {
	r := NewRenderer(true)
	_, ok := r.(*TerminalRenderer)
	require.True(t, ok)

	out := r.RenderBuild(&build.Result{Project: "zombies", Target: types.TargetDebug, OutputDir: "/out"})
	assert.Contains(t, out, "No scripts filtered.")
	assert.Contains(t, out, "/out")
	assert.Contains(t, r.RenderError(fmt.Errorf("boom")), "boom")

	_, ok = NewRenderer(false).(*PlainRenderer)
	assert.True(t, ok)
}
