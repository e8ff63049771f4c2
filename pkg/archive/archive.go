package archive

import (
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/logging"
	"github.com/t6modm/t6modm/pkg/project"
	"github.com/t6modm/t6modm/pkg/types"
)

// Writer creates archives from file entries
type Writer struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewWriter creates a writer reading sources from fs
func NewWriter(fs types.FS) *Writer {
	return &Writer{
		fs:     fs,
		logger: logging.GetLogger("archive"),
	}
}

// Create writes a zip at path holding every entry's source at its
// destination. When two entries share a destination the first one is kept.
func (w *Writer) Create(path string, entries []types.FileEntry) (err error) {
	out, err := w.fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate, "failed to create %s", path)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, errors.ErrArchiveCreate, "failed to close %s", path)
		}
	}()

	zw := zip.NewWriter(out)
	written := make(map[string]bool, len(entries))
	for _, e := range entries {
		if written[e.Destination] {
			w.logger.Warn().
				Str("archive", path).
				Str("destination", e.Destination).
				Str("source", e.Source).
				Msg("Duplicate archive entry skipped")
			continue
		}
		if err := w.add(zw, e); err != nil {
			_ = zw.Close()
			return errors.Wrapf(err, errors.ErrArchiveCreate, "failed to add %s to %s", e.Source, path).
				WithDetail("destination", e.Destination)
		}
		written[e.Destination] = true
	}

	if err := zw.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate, "failed to finish %s", path)
	}

	w.logger.Info().Str("archive", path).Int("entries", len(written)).Msg("Archive created")
	return nil
}

func (w *Writer) add(zw *zip.Writer, e types.FileEntry) error {
	info, err := w.fs.Stat(e.Source)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = e.Destination
	header.Method = zip.Deflate

	dst, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	src, err := w.fs.Open(e.Source)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	_, err = io.Copy(dst, src)
	return err
}

// WriteMetadata stores the project identity record at path
func WriteMetadata(fs types.FS, path string, md project.Metadata) error {
	data, err := md.Marshal()
	if err != nil {
		return errors.Wrap(err, errors.ErrManifestWrite, "failed to encode metadata")
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
