package zone

import (
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/logging"
	"github.com/t6modm/t6modm/pkg/paths"
	"github.com/t6modm/t6modm/pkg/types"
)

// Scratch is the directory holding resolved zone files for one build.
// Zones are referenced from other zones relative to the zone source
// directory, as tempzones/<stem>.
type Scratch struct {
	fs     types.FS
	dir    string
	logger zerolog.Logger
}

// NewScratch creates a scratch area at dir. Nothing is written until the
// first zone is stored.
func NewScratch(fs types.FS, dir string) *Scratch {
	return &Scratch{
		fs:     fs,
		dir:    dir,
		logger: logging.GetLogger("zone.scratch"),
	}
}

// Dir returns the scratch directory
func (s *Scratch) Dir() string { return s.dir }

// Clear removes the scratch directory and everything in it
func (s *Scratch) Clear() error {
	if err := s.fs.RemoveAll(s.dir); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to clear %s", s.dir)
	}
	s.logger.Debug().Str("dir", s.dir).Msg("Scratch cleared")
	return nil
}

// Store writes content under a fresh unique name and returns its reference
func (s *Scratch) Store(content string) (string, error) {
	return s.StoreAs(uuid.NewString(), content)
}

// StoreAs writes content as <stem>.zone and returns its reference
func (s *Scratch) StoreAs(stem, content string) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", s.dir)
	}

	target := s.Path(stem)
	if err := s.fs.WriteFile(target, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
	}

	s.logger.Trace().Str("path", target).Int("bytes", len(content)).Msg("Zone stored")
	return s.Reference(stem), nil
}

// Path returns the file a stem is stored in
func (s *Scratch) Path(stem string) string {
	return filepath.Join(s.dir, stem+paths.ZoneExt)
}

// Reference returns how other zones refer to a stored stem
func (s *Scratch) Reference(stem string) string {
	return path.Join(filepath.Base(s.dir), stem)
}
