package linker

import (
	"path/filepath"

	"github.com/t6modm/t6modm/pkg/config"
	"github.com/t6modm/t6modm/pkg/paths"
	"github.com/t6modm/t6modm/pkg/project"
	"github.com/t6modm/t6modm/pkg/types"
)

// Command is one linker invocation
type Command struct {
	// Binary is the linker executable
	Binary string

	// BaseFolder is the linker installation
	BaseFolder string

	OutputFolder      string
	SourceSearchPaths []string
	AssetSearchPaths  []string
	Loads             []string
	Verbose           bool
	ExtraArgs         []string

	// Zone is the root zone, relative to the source search path
	Zone string
}

// Args renders the command line, binary excluded
func (c Command) Args() []string {
	var args []string
	if c.Verbose {
		args = append(args, "-v")
	}
	args = append(args, "--output-folder", c.OutputFolder)
	args = append(args, "--base-folder", c.BaseFolder)
	for _, p := range c.SourceSearchPaths {
		args = append(args, "--source-search-path", p)
	}
	for _, p := range c.AssetSearchPaths {
		args = append(args, "--add-asset-search-path", p)
	}
	for _, p := range c.Loads {
		args = append(args, "--load", p)
	}
	args = append(args, c.ExtraArgs...)
	return append(args, c.Zone)
}

// NewCommand plans the invocation that links proj's resolved root zone.
// A dependency's compiled fastfile is loaded only when a previous build of
// the dependency left one behind.
func NewCommand(fs types.FS, cfg *config.Config, proj *project.Project, outputDir, zone string) Command {
	cmd := Command{
		Binary:            filepath.Join(cfg.Linker.Home, cfg.Linker.Binary),
		BaseFolder:        cfg.Linker.Home,
		OutputFolder:      outputDir,
		SourceSearchPaths: []string{proj.Paths().ZoneSource()},
		Verbose:           cfg.Linker.Verbose,
		ExtraArgs:         cfg.Linker.ExtraArgs,
		Zone:              zone,
	}

	cmd.AssetSearchPaths = append(cmd.AssetSearchPaths, proj.Paths().Src())
	cmd.AssetSearchPaths = append(cmd.AssetSearchPaths, filepath.Join(cfg.Game.Home, "zone", "all"))
	for _, lang := range cfg.Game.Languages {
		cmd.AssetSearchPaths = append(cmd.AssetSearchPaths, filepath.Join(cfg.Game.Home, "zone", lang))
	}

	cmd.Loads = append(cmd.Loads, proj.Fastfiles()...)
	for _, dep := range proj.Dependencies() {
		cmd.AssetSearchPaths = append(cmd.AssetSearchPaths, dep.Src())

		compiled := paths.CompiledZoneOf(dep.Home, cfg.Build.ZoneName)
		if info, err := fs.Stat(compiled); err == nil && !info.IsDir() {
			cmd.Loads = append(cmd.Loads, compiled)
		}
	}

	return cmd
}
