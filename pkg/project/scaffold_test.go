package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/testutil"
)

func TestCreate(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	p, err := Create(env.FS, CreateOptions{
		Directory:   env.Path("zombies"),
		Name:        "zombies",
		Description: "Extra maps",
		LinkerHome:  "/opt/oat",
	})
	require.NoError(t, err)
	assert.Equal(t, env.Path("zombies"), p.Home())

	for _, dir := range []string{"src/images", "src/scripts", "src/zone_source", "src/english/localizedstrings"} {
		assert.True(t, testutil.DirExists(env.FS, env.Path("zombies", dir)), dir)
	}

	assert.Equal(t, ">game,T6\n\nlocalize,mod", env.ReadFile("zombies/src/zone_source/mod.zone"))
	assert.Contains(t, env.ReadFile("zombies/src/english/localizedstrings/mod.str"), "REFERENCE           MESSAGE_T6MODM")
	assert.Contains(t, env.ReadFile("zombies/.t6modm.env"), `OAT_HOME="/opt/oat"`)
	assert.Contains(t, env.ReadFile("zombies/.t6modm.toml"), "[build]")
	assert.Contains(t, env.ReadFile("zombies/.gitignore"), "tempzones")

	m, err := LoadManifest(env.FS, p.Manifest())
	require.NoError(t, err)
	assert.Equal(t, "zombies", m.Name)
	assert.Equal(t, "Extra maps", m.Description)
	assert.Equal(t, DefaultVersion, m.Version)
}

func TestCreateAcceptsEmptyDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	require.NoError(t, env.FS.MkdirAll(env.Path("zombies"), 0755))

	_, err := Create(env.FS, CreateOptions{Directory: env.Path("zombies"), Name: "zombies"})
	require.NoError(t, err)
}

func TestCreateRefusesNonEmptyDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile("zombies/notes.txt", "keep me")

	_, err := Create(env.FS, CreateOptions{Directory: env.Path("zombies"), Name: "zombies"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, "keep me", env.ReadFile("zombies/notes.txt"))
	assert.False(t, env.Exists("zombies/project.t6modm.json"))
}

func TestCreateRequiresName(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := Create(env.FS, CreateOptions{Directory: env.Path("zombies")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid))
}
