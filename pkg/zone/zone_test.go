// pkg/zone/zone_test.go
// TEST TYPE: Unit
// DEPENDENCIES: in-memory filesystem, pkg/project
// PURPOSE: Shared fixture for parser and pass tests

package zone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t6modm/t6modm/pkg/project"
	"github.com/t6modm/t6modm/pkg/testutil"
	"github.com/t6modm/t6modm/pkg/types"
)

type fixture struct {
	env  *testutil.TestEnvironment
	mod  *testutil.TestProject
	deps map[string]*testutil.TestProject
	proj *project.Project
}

// newFixture creates project "mod" depending on the named sibling projects
func newFixture(t *testing.T, target types.Target, deps ...string) *fixture {
	t.Helper()

	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	f := &fixture{env: env, deps: make(map[string]*testutil.TestProject)}

	var declared []string
	for _, name := range deps {
		f.deps[name] = env.Project(name).WithManifest()
		declared = append(declared, "$HOME/../"+name)
	}
	f.mod = env.Project("mod").WithManifest(declared...)

	proj, err := project.Load(env.FS, f.mod.Paths(), env.Path("game"))
	require.NoError(t, err)
	proj.SetTarget(target)
	f.proj = proj
	return f
}

func (f *fixture) parser(lines ...string) *Parser {
	path := f.mod.AddZone("mod", lines...)
	return NewParser(f.env.FS, f.proj, path, Options{IsRoot: true})
}

func (f *fixture) parse(t *testing.T, lines ...string) (string, error) {
	t.Helper()
	return f.parser(lines...).Parse()
}

// scratchZone reads a stored zone by the reference an include line carries
func (f *fixture) scratchZone(t *testing.T, includeLine string) string {
	t.Helper()

	ref := strings.TrimPrefix(strings.Fields(includeLine)[0], "include,")
	stem := strings.TrimPrefix(ref, "tempzones/")
	return testutil.ReadFile(t, f.env.FS, NewScratch(f.env.FS, f.proj.Paths().TempZones()).Path(stem))
}

func lines(text string) []string {
	return strings.Split(text, "\n")
}
