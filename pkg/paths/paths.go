package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/t6modm/t6modm/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectDir overrides project discovery
	EnvProjectDir = "T6MODM_PROJECT_DIR"
)

// Project layout. These names are shared with the external linker and with
// dependency projects, so they are not configurable.
const (
	ManifestFile  = "project.t6modm.json"
	EnvFile       = ".t6modm.env"
	ConfigFile    = ".t6modm.toml"
	SrcDir        = "src"
	ZoneSourceDir = "zone_source"
	TempZonesDir  = "tempzones"
	CompiledDir   = "compiled"
	ZoneExt       = ".zone"
	RootZoneName  = "mod"
)

// Placeholders accepted in manifest paths
const (
	PlaceholderHome     = "$HOME"
	PlaceholderGameHome = "$GAME_HOME"
)

// Paths resolves every location inside one project
type Paths struct {
	home         string
	usedFallback bool
}

// New creates a Paths instance rooted at home. If home is empty the project
// root is discovered from the environment and the working directory.
func New(home string) (*Paths, error) {
	p := &Paths{}

	if home == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		home = root
		p.usedFallback = usedFallback
	}

	abs, err := filepath.Abs(home)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.home = abs
	return p, nil
}

// Home returns the absolute project root
func (p *Paths) Home() string { return p.home }

// UsedFallback reports whether the working directory was used because no
// project could be discovered.
func (p *Paths) UsedFallback() bool { return p.usedFallback }

// Manifest returns the path of the project manifest
func (p *Paths) Manifest() string { return filepath.Join(p.home, ManifestFile) }

// EnvFile returns the path of the project-local env file
func (p *Paths) EnvFile() string { return filepath.Join(p.home, EnvFile) }

// ConfigFile returns the path of the project-local tool configuration
func (p *Paths) ConfigFile() string { return filepath.Join(p.home, ConfigFile) }

// Src returns the project's own asset tree
func (p *Paths) Src() string { return SrcOf(p.home) }

// ZoneSource returns the directory holding zone files
func (p *Paths) ZoneSource() string { return filepath.Join(p.Src(), ZoneSourceDir) }

// TempZones returns the scratch directory for resolved zone files
func (p *Paths) TempZones() string { return filepath.Join(p.ZoneSource(), TempZonesDir) }

// RootZone returns the path of the root zone file
func (p *Paths) RootZone() string { return RootZoneOf(p.home) }

// DefaultOutput returns the default build output directory
func (p *Paths) DefaultOutput() string { return filepath.Join(p.home, CompiledDir) }

// Owns reports whether path lies inside the project's own src tree
func (p *Paths) Owns(path string) bool {
	return IsWithin(p.Src(), path)
}

// SrcOf returns the src directory of any project root
func SrcOf(projectDir string) string {
	return filepath.Join(projectDir, SrcDir)
}

// RootZoneOf returns the root zone file of any project root
func RootZoneOf(projectDir string) string {
	return filepath.Join(SrcOf(projectDir), ZoneSourceDir, RootZoneName+ZoneExt)
}

// CompiledZoneOf returns the archive a project's last build produced
func CompiledZoneOf(projectDir, zoneName string) string {
	return filepath.Join(projectDir, CompiledDir, zoneName+".ff")
}

// IsWithin reports whether path equals dir or is located below it
func IsWithin(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// findProjectRoot determines the project root using the following priority:
// 1. T6MODM_PROJECT_DIR environment variable (if set)
// 2. Nearest ancestor of the working directory holding a manifest
// 3. Current working directory (fallback)
func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectDir); root != "" {
		return root, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	for dir := cwd; ; {
		if _, err := os.Stat(filepath.Join(dir, ManifestFile)); err == nil {
			return dir, false, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd, true, nil
}

// Expander substitutes manifest placeholders
type Expander struct {
	Home     string
	GameHome string
}

// Expand replaces $GAME_HOME and $HOME in s
func (e Expander) Expand(s string) string {
	s = strings.ReplaceAll(s, PlaceholderGameHome, e.GameHome)
	return strings.ReplaceAll(s, PlaceholderHome, e.Home)
}

// Resolve expands placeholders and makes the result absolute, interpreting
// relative paths against the project root.
func (e Expander) Resolve(s string) string {
	s = filepath.FromSlash(e.Expand(s))
	if !filepath.IsAbs(s) {
		s = filepath.Join(e.Home, s)
	}
	return filepath.Clean(s)
}
