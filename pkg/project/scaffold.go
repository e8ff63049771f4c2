package project

import (
	"path/filepath"

	"github.com/t6modm/t6modm/pkg/config"
	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/logging"
	"github.com/t6modm/t6modm/pkg/paths"
	"github.com/t6modm/t6modm/pkg/types"
)

// DefaultVersion is written into new manifests
const DefaultVersion = "1.0.0"

const localizedStrings = `VERSION             "1"
CONFIG              ""
FILENOTES           ""

REFERENCE           MESSAGE_T6MODM
LANG_ENGLISH        "Feito com T6MODM"

ENDMARKER`

const rootZone = ">game,T6\n\nlocalize,mod"

const gitignore = `/compiled/
/src/zone_source/tempzones/
.t6modm.env
`

// CreateOptions describes a new project
type CreateOptions struct {
	Directory   string
	Name        string
	Description string
	Author      string

	// LinkerHome and GameHome prefill the generated env file
	LinkerHome string
	GameHome   string
}

// Create lays out a new project in opts.Directory, or in a directory named
// after the project when none is given. The directory may exist but must be
// empty.
func Create(fs types.FS, opts CreateOptions) (*paths.Paths, error) {
	logger := logging.GetLogger("project.create")

	m := Manifest{
		Name:        opts.Name,
		Description: opts.Description,
		Version:     DefaultVersion,
		Author:      opts.Author,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	dir := opts.Directory
	if dir == "" {
		dir = opts.Name
	}
	p, err := paths.New(dir)
	if err != nil {
		return nil, err
	}
	home := p.Home()

	entries, err := fs.ReadDir(home)
	if err == nil && len(entries) > 0 {
		return nil, errors.Newf(errors.ErrAlreadyExists, "the directory %s already exists and is not empty", home).
			WithDetail("directory", home)
	}

	dirs := []string{
		filepath.Join(p.Src(), "images"),
		filepath.Join(p.Src(), "scripts"),
		p.ZoneSource(),
		filepath.Join(p.Src(), "english", "localizedstrings"),
	}
	for _, dir := range dirs {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
		}
	}

	manifest, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestWrite, "failed to encode manifest")
	}
	configContent, err := config.GenerateConfigContent()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render default configuration")
	}

	files := []struct {
		path    string
		content []byte
	}{
		{p.Manifest(), manifest},
		{p.EnvFile(), []byte(config.GenerateEnvContent(opts.LinkerHome, opts.GameHome))},
		{p.ConfigFile(), []byte(configContent)},
		{filepath.Join(home, ".gitignore"), []byte(gitignore)},
		{filepath.Join(p.Src(), "english", "localizedstrings", "mod.str"), []byte(localizedStrings)},
		{p.RootZone(), []byte(rootZone)},
	}
	for _, f := range files {
		if err := fs.WriteFile(f.path, f.content, 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", f.path)
		}
		logger.Debug().Str("path", f.path).Msg("Created")
	}

	logger.Info().Str("name", opts.Name).Str("directory", home).Msg("Project created")
	return p, nil
}
