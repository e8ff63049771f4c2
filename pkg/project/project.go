package project

import (
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/t6modm/t6modm/pkg/logging"
	"github.com/t6modm/t6modm/pkg/paths"
	"github.com/t6modm/t6modm/pkg/types"
)

// Dependency is another project whose sources this project builds on
type Dependency struct {
	// Declared is the path as written in the manifest
	Declared string

	// Home is the resolved, absolute project root
	Home string
}

// Name identifies the dependency in logs and zone annotations
func (d Dependency) Name() string {
	return filepath.Base(d.Home)
}

// Src returns the dependency's asset tree
func (d Dependency) Src() string {
	return paths.SrcOf(d.Home)
}

// RootZone returns the dependency's own root zone file
func (d Dependency) RootZone() string {
	return paths.RootZoneOf(d.Home)
}

// Project is one build target being assembled
type Project struct {
	manifest Manifest
	paths    *paths.Paths
	expander paths.Expander
	target   types.Target

	dependencies    []Dependency
	assetSearchPath []string

	files           map[string]types.FileEntry
	serverFiles     map[string]types.FileEntry
	filteredScripts []types.FileEntry

	logger zerolog.Logger
}

// New creates a project rooted at p. gameHome is substituted for
// $GAME_HOME in manifest paths.
func New(p *paths.Paths, m Manifest, gameHome string) *Project {
	proj := &Project{
		manifest:    m,
		paths:       p,
		expander:    paths.Expander{Home: p.Home(), GameHome: gameHome},
		target:      types.TargetDebug,
		files:       make(map[string]types.FileEntry),
		serverFiles: make(map[string]types.FileEntry),
		logger:      logging.GetLogger("project"),
	}

	proj.assetSearchPath = append(proj.assetSearchPath, p.Src())
	for _, declared := range m.Dependencies {
		dep := Dependency{Declared: declared, Home: proj.expander.Resolve(declared)}
		proj.dependencies = append(proj.dependencies, dep)
		proj.assetSearchPath = append(proj.assetSearchPath, dep.Src())
	}

	proj.logger.Debug().
		Str("name", m.Name).
		Strs("searchPath", proj.assetSearchPath).
		Msg("Project created")

	return proj
}

// Load reads the manifest of the project at p
func Load(fs types.FS, p *paths.Paths, gameHome string) (*Project, error) {
	m, err := LoadManifest(fs, p.Manifest())
	if err != nil {
		return nil, err
	}
	return New(p, m, gameHome), nil
}

// Manifest returns the loaded manifest
func (p *Project) Manifest() Manifest { return p.manifest }

// Metadata returns the identity written to the output manifest
func (p *Project) Metadata() Metadata { return p.manifest.Metadata() }

// Paths returns the project layout
func (p *Project) Paths() *paths.Paths { return p.paths }

// Home returns the project root
func (p *Project) Home() string { return p.paths.Home() }

// Target returns the build target
func (p *Project) Target() types.Target { return p.target }

// SetTarget selects the build target. It must be called before parsing.
func (p *Project) SetTarget(t types.Target) { p.target = t }

// Dependencies returns the dependencies in declared order
func (p *Project) Dependencies() []Dependency {
	return append([]Dependency(nil), p.dependencies...)
}

// AssetSearchPath returns the directories searched for assets, highest
// priority first.
func (p *Project) AssetSearchPath() []string {
	return append([]string(nil), p.assetSearchPath...)
}

// Fastfiles returns the precompiled archives to load, placeholders resolved
func (p *Project) Fastfiles() []string {
	resolved := make([]string, 0, len(p.manifest.Fastfiles))
	for _, f := range p.manifest.Fastfiles {
		resolved = append(resolved, p.expander.Resolve(f))
	}
	return resolved
}

// Owns reports whether path belongs to the project's own src tree
func (p *Project) Owns(path string) bool {
	return p.paths.Owns(path)
}

// AddFile registers a client archive entry. It reports false when an entry
// owned by the project already holds the destination.
func (p *Project) AddFile(e types.FileEntry) bool {
	return p.insert(p.files, e, "file")
}

// AddServerFile registers a server-only archive entry with the same
// override rule as AddFile.
func (p *Project) AddServerFile(e types.FileEntry) bool {
	return p.insert(p.serverFiles, e, "serverfile")
}

func (p *Project) insert(set map[string]types.FileEntry, e types.FileEntry, kind string) bool {
	if existing, ok := set[e.Destination]; ok {
		if p.Owns(existing.Source) {
			p.logger.Debug().
				Str("kind", kind).
				Str("destination", e.Destination).
				Str("kept", existing.Source).
				Str("ignored", e.Source).
				Msg("Destination owned by project, keeping existing entry")
			return false
		}
		p.logger.Debug().
			Str("kind", kind).
			Str("destination", e.Destination).
			Str("replaced", existing.Source).
			Str("source", e.Source).
			Msg("Overriding dependency entry")
	}
	set[e.Destination] = e
	return true
}

// AddFilteredScript records a script pulled out of the linked archive
func (p *Project) AddFilteredScript(e types.FileEntry) {
	p.filteredScripts = append(p.filteredScripts, e)
}

// File returns the client entry at dest
func (p *Project) File(dest string) (types.FileEntry, bool) {
	e, ok := p.files[types.NormalizeDestination(dest)]
	return e, ok
}

// ServerFile returns the server-only entry at dest
func (p *Project) ServerFile(dest string) (types.FileEntry, bool) {
	e, ok := p.serverFiles[types.NormalizeDestination(dest)]
	return e, ok
}

// Files returns the client entries ordered by destination
func (p *Project) Files() []types.FileEntry {
	return sortedEntries(p.files)
}

// ServerFiles returns the server-only entries ordered by destination
func (p *Project) ServerFiles() []types.FileEntry {
	return sortedEntries(p.serverFiles)
}

// FilteredScripts returns the filtered scripts in registration order
func (p *Project) FilteredScripts() []types.FileEntry {
	return append([]types.FileEntry(nil), p.filteredScripts...)
}

func sortedEntries(set map[string]types.FileEntry) []types.FileEntry {
	entries := make([]types.FileEntry, 0, len(set))
	for _, e := range set {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Destination < entries[j].Destination
	})
	return entries
}
