package zone

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/types"
)

var fileDirective = regexp.MustCompile(`^(file|serverfile)(?:_(debug|release))?:\s*(\S+)\s+(\S+)`)

// FileDirective is one parsed file*/serverfile* line
type FileDirective struct {
	// Server is set for serverfile variants
	Server bool

	// Target is empty for the unsuffixed variants
	Target string

	Source      string
	Destination string
}

// ParseFileDirective recognizes file directives in a trimmed line
func ParseFileDirective(line string) (FileDirective, bool) {
	m := fileDirective.FindStringSubmatch(line)
	if m == nil {
		return FileDirective{}, false
	}
	return FileDirective{
		Server:      m[1] == "serverfile",
		Target:      m[2],
		Source:      m[3],
		Destination: m[4],
	}, true
}

// AppliesTo reports whether the directive is active for target
func (d FileDirective) AppliesTo(target types.Target) bool {
	return d.Target == "" || d.Target == target.String()
}

// IsDirDestination reports whether matches keep their relative layout
// below Destination.
func (d FileDirective) IsDirDestination() bool {
	return strings.HasSuffix(d.Destination, "/") || strings.HasSuffix(d.Destination, "\\")
}

// FilePass registers archive entries
type FilePass struct{}

func (FilePass) Name() string { return "file" }

func (FilePass) TryHandle(ctx *Context, line string) (Result, error) {
	d, ok := ParseFileDirective(strings.TrimSpace(line))
	if !ok {
		return PassThrough, nil
	}
	logger := ctx.Logger()

	if !d.AppliesTo(ctx.Project.Target()) {
		logger.Debug().Str("pattern", d.Source).Str("target", d.Target).Msg("File directive skipped for target")
		ctx.EmitComment(line)
		return Consumed, nil
	}

	add := ctx.Project.AddFile
	if d.Server {
		add = ctx.Project.AddServerFile
	}

	matched := 0
	for _, dir := range ctx.Project.AssetSearchPath() {
		entries, err := expand(ctx, dir, d)
		if err != nil {
			return PassThrough, err
		}
		matched += len(entries)
		for _, e := range entries {
			add(e)
		}
	}

	if matched == 0 {
		return PassThrough, errors.Newf(errors.ErrAssetNotFound, "no file matches %s", d.Source).
			WithDetail("pattern", d.Source).
			WithDetail("searched", ctx.Project.AssetSearchPath())
	}

	logger.Debug().Str("pattern", d.Source).Int("matches", matched).Bool("server", d.Server).Msg("File directive resolved")
	ctx.EmitComment(line)
	return Consumed, nil
}

// expand globs the directive below one search path entry. Several matches
// for one literal destination collapse to the last one.
func expand(ctx *Context, dir string, d FileDirective) ([]types.FileEntry, error) {
	pattern := path.Clean(strings.ReplaceAll(d.Source, "\\", "/"))
	matches, err := ctx.FS.Glob(dir, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid file pattern %s", d.Source).
			WithDetail("pattern", d.Source)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	prefix, _ := doublestar.SplitPattern(pattern)
	base := filepath.Join(dir, filepath.FromSlash(prefix))
	destDir := d.IsDirDestination()

	var entries []types.FileEntry
	index := make(map[string]int)
	for _, match := range matches {
		dest := d.Destination
		if destDir {
			rel, err := filepath.Rel(base, match)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInternal, "failed to relate %s to %s", match, base)
			}
			dest = path.Join(strings.ReplaceAll(d.Destination, "\\", "/"), filepath.ToSlash(rel))
		}

		entry := types.NewFileEntry(match, dest)
		if types.EscapesRoot(entry.Destination) {
			return nil, errors.Newf(errors.ErrInvalidInput, "the destination %s leaves the archive root", d.Destination).
				WithDetail("destination", d.Destination)
		}
		if i, seen := index[entry.Destination]; seen {
			entries[i] = entry
			continue
		}
		index[entry.Destination] = len(entries)
		entries = append(entries, entry)
	}
	return entries, nil
}
