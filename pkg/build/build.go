package build

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/t6modm/t6modm/pkg/archive"
	"github.com/t6modm/t6modm/pkg/config"
	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/linker"
	"github.com/t6modm/t6modm/pkg/logging"
	"github.com/t6modm/t6modm/pkg/paths"
	"github.com/t6modm/t6modm/pkg/project"
	"github.com/t6modm/t6modm/pkg/types"
	"github.com/t6modm/t6modm/pkg/zone"
)

// Options selects what one build produces
type Options struct {
	Target types.Target

	// Wait opens the merged zone in an editor before linking
	Wait bool

	// OutputDir overrides the configured output folder
	OutputDir string
}

// Result summarizes a finished build
type Result struct {
	Project   string
	Target    types.Target
	OutputDir string

	// Zone is the merged zone handed to the linker
	Zone string

	Dependencies        []string
	SkippedDependencies []string

	Files           int
	ServerFiles     int
	FilteredScripts int

	// Archives lists the archives written, in creation order
	Archives []string
	Metadata string
}

// Builder runs builds with one configuration
type Builder struct {
	fs     types.FS
	cfg    *config.Config
	linker *linker.Linker
	editor linker.Editor
	logger zerolog.Logger
}

// New creates a builder. runner starts the linker and the editor.
func New(fs types.FS, cfg *config.Config, runner linker.Runner) *Builder {
	return &Builder{
		fs:     fs,
		cfg:    cfg,
		linker: linker.New(runner),
		editor: linker.Editor{Command: cfg.Editor, Runner: runner},
		logger: logging.GetLogger("build"),
	}
}

// Build runs every step for proj. On failure the scratch zones are
// removed and no archive is written.
func (b *Builder) Build(ctx context.Context, proj *project.Project, opts Options) (result *Result, err error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	rootZone := proj.Paths().RootZone()
	if !b.isFile(rootZone) {
		return nil, errors.Newf(errors.ErrFileNotFound, "the file %s does not exist", rootZone).
			WithDetail("path", rootZone)
	}

	outputDir, err := b.outputDir(proj, opts.OutputDir)
	if err != nil {
		return nil, err
	}

	target := opts.Target
	if target == "" {
		target = types.TargetDebug
	}
	proj.SetTarget(target)

	scratch := zone.NewScratch(b.fs, proj.Paths().TempZones())
	if err := scratch.Clear(); err != nil {
		return nil, err
	}
	defer func() {
		if err == nil {
			return
		}
		if cerr := scratch.Clear(); cerr != nil {
			b.logger.Warn().Err(cerr).Msg("Failed to remove scratch zones")
		}
	}()

	result = &Result{
		Project:   proj.Manifest().Name,
		Target:    target,
		OutputDir: outputDir,
	}

	b.logger.Info().
		Str("project", result.Project).
		Str("target", target.String()).
		Msg("Resolving zones")

	ref, err := b.resolve(proj, scratch, rootZone, result)
	if err != nil {
		return nil, err
	}
	result.Zone = scratch.Path(b.cfg.Build.ZoneName)

	if opts.Wait {
		if err := b.editor.Wait(ctx, result.Zone); err != nil {
			return nil, err
		}
	}

	result.Files = len(proj.Files())
	result.ServerFiles = len(proj.ServerFiles())
	result.FilteredScripts = len(proj.FilteredScripts())
	b.logger.Info().Int("filteredScripts", result.FilteredScripts).Msg("Scripts filtered")

	if err := b.fs.RemoveAll(outputDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to clear %s", outputDir)
	}
	if err := b.fs.MkdirAll(outputDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", outputDir)
	}

	b.logger.Info().Str("target", target.String()).Msg("Building the project")
	cmd := linker.NewCommand(b.fs, b.cfg, proj, outputDir, ref)
	if err := b.linker.Link(ctx, cmd); err != nil {
		return nil, err
	}

	if err := b.pack(proj, result); err != nil {
		return nil, err
	}
	return result, nil
}

// resolve writes the merged root zone to the scratch area and returns its
// reference.
func (b *Builder) resolve(proj *project.Project, scratch *zone.Scratch, rootZone string, result *Result) (string, error) {
	done := logging.LogOperationStart(b.logger, "resolve")
	defer done()

	root := zone.NewParser(b.fs, proj, rootZone, zone.Options{IsRoot: true, Scratch: scratch})
	body, err := root.Parse()
	if err != nil {
		return "", err
	}
	if game, ok := root.Headers()[strings.TrimSuffix(zone.HeaderGame, ",")]; ok && game != b.cfg.Game.ID {
		b.logger.Warn().
			Str("declared", game).
			Str("building", b.cfg.Game.ID).
			Msg("Root zone declares a different game")
	}

	var merged strings.Builder
	merged.WriteString(zone.HeaderGame + b.cfg.Game.ID + "\n")
	merged.WriteString(zone.HeaderName + b.cfg.Build.ZoneName + "\n")
	merged.WriteString(body)

	for _, dep := range proj.Dependencies() {
		depZone := dep.RootZone()
		if !b.isFile(depZone) {
			b.logger.Warn().
				Str("dependency", dep.Name()).
				Str("zone", depZone).
				Msg("Dependency has no root zone, skipping")
			result.SkippedDependencies = append(result.SkippedDependencies, dep.Name())
			continue
		}

		parser := zone.NewParser(b.fs, proj, depZone, zone.Options{Passes: root.Passes(), Scratch: scratch})
		depBody, err := parser.Parse()
		if err != nil {
			return "", err
		}
		depRef, err := scratch.Store(depBody)
		if err != nil {
			return "", err
		}

		merged.WriteString("\n// Dependency: " + dep.Name() + "\n")
		merged.WriteString("include," + depRef + "\n")
		result.Dependencies = append(result.Dependencies, dep.Name())
	}

	return scratch.StoreAs(b.cfg.Build.ZoneName, merged.String())
}

// pack writes the archives and the metadata record
func (b *Builder) pack(proj *project.Project, result *Result) error {
	writer := archive.NewWriter(b.fs)

	if files := proj.Files(); len(files) > 0 {
		path := filepath.Join(result.OutputDir, b.cfg.Build.ClientArchive)
		if err := writer.Create(path, files); err != nil {
			return err
		}
		result.Archives = append(result.Archives, path)
	}

	server := append(proj.ServerFiles(), proj.FilteredScripts()...)
	if len(server) > 0 {
		path := filepath.Join(result.OutputDir, b.cfg.Build.ServerArchive)
		if err := writer.Create(path, server); err != nil {
			return err
		}
		result.Archives = append(result.Archives, path)
	}

	result.Metadata = filepath.Join(result.OutputDir, b.cfg.Build.MetadataFile)
	return archive.WriteMetadata(b.fs, result.Metadata, proj.Metadata())
}

// outputDir picks the output folder and refuses folders whose removal
// would delete project sources.
func (b *Builder) outputDir(proj *project.Project, override string) (string, error) {
	dir := override
	if dir == "" {
		dir = b.cfg.Build.OutputDir
	}
	if dir == "" {
		return proj.Paths().DefaultOutput(), nil
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(proj.Home(), dir)
	}
	dir = filepath.Clean(dir)

	if paths.IsWithin(dir, proj.Home()) || paths.IsWithin(proj.Paths().Src(), dir) {
		return "", errors.Newf(errors.ErrInvalidInput, "the output folder %s would overwrite the project", dir).
			WithDetail("output", dir)
	}
	return dir, nil
}

func (b *Builder) isFile(path string) bool {
	info, err := b.fs.Stat(path)
	return err == nil && !info.IsDir()
}
