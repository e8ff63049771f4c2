package zone

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/logging"
	"github.com/t6modm/t6modm/pkg/project"
	"github.com/t6modm/t6modm/pkg/types"
)

// MaxIncludeDepth bounds nested includes below a top-level zone
const MaxIncludeDepth = 32

const lineSeparator = "\n"

// Options configures a Parser
type Options struct {
	// IsRoot marks the parser of the project's own root zone
	IsRoot bool

	// Depth is the include level of the zone; top-level parsers use 0
	Depth int

	// Passes is the chain to run; nil selects DefaultPasses
	Passes []Pass

	// Scratch receives resolved included zones; nil selects the project's
	// tempzones directory
	Scratch *Scratch

	// ancestors are the zones that included this one, outermost first
	ancestors []string
}

// Parser resolves one zone file
type Parser struct {
	fs         types.FS
	project    *project.Project
	sourcePath string
	opts       Options

	output  []string
	headers map[string]string
	logger  zerolog.Logger
}

// NewParser creates a parser for the zone at sourcePath
func NewParser(fs types.FS, proj *project.Project, sourcePath string, opts Options) *Parser {
	if opts.Passes == nil {
		opts.Passes = DefaultPasses()
	} else {
		opts.Passes = append([]Pass(nil), opts.Passes...)
	}
	if opts.Scratch == nil {
		opts.Scratch = NewScratch(fs, proj.Paths().TempZones())
	}

	return &Parser{
		fs:         fs,
		project:    proj,
		sourcePath: filepath.Clean(sourcePath),
		opts:       opts,
		headers:    make(map[string]string),
		logger:     logging.GetLogger("zone.parser"),
	}
}

// SourcePath returns the zone file this parser reads
func (p *Parser) SourcePath() string { return p.sourcePath }

// Passes returns the pass chain in evaluation order
func (p *Parser) Passes() []Pass { return append([]Pass(nil), p.opts.Passes...) }

// Headers returns the >game, and >name, values of a root zone
func (p *Parser) Headers() map[string]string {
	h := make(map[string]string, len(p.headers))
	for k, v := range p.headers {
		h[k] = v
	}
	return h
}

// Parse reads the zone file and returns its resolved text. Every call
// starts from an empty output.
func (p *Parser) Parse() (string, error) {
	p.output = p.output[:0]
	p.headers = make(map[string]string)

	data, err := p.fs.ReadFile(p.sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrFileNotFound, "the file %s does not exist", p.sourcePath).
				WithDetail("path", p.sourcePath)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", p.sourcePath)
	}

	ctx := &Context{
		Project:    p.project,
		FS:         p.fs,
		SourcePath: p.sourcePath,
		IsRoot:     p.opts.IsRoot,
		Depth:      p.opts.Depth,
		parser:     p,
	}

	p.logger.Debug().
		Str("source", p.sourcePath).
		Int("depth", p.opts.Depth).
		Bool("root", p.opts.IsRoot).
		Msg("Parsing zone")

	for i, line := range strings.Split(string(data), lineSeparator) {
		ctx.LineNumber = i + 1

		consumed := false
		for _, pass := range p.opts.Passes {
			result, err := pass.TryHandle(ctx, line)
			if err != nil {
				return "", locate(err, p.sourcePath, ctx.LineNumber)
			}
			if result == Consumed {
				p.logger.Trace().
					Str("pass", pass.Name()).
					Int("line", ctx.LineNumber).
					Msg("Line consumed")
				consumed = true
				break
			}
		}

		if !consumed {
			p.output = append(p.output, line)
		}
	}

	return strings.Join(p.output, lineSeparator), nil
}

func (p *Parser) child(sourcePath string) (*Parser, error) {
	sourcePath = filepath.Clean(sourcePath)
	chain := append(append([]string(nil), p.opts.ancestors...), p.sourcePath)

	for _, ancestor := range chain {
		if ancestor == sourcePath {
			return nil, errors.Newf(errors.ErrIncludeCycle, "the zone %s includes itself", sourcePath).
				WithDetail("chain", append(chain, sourcePath))
		}
	}

	depth := p.opts.Depth + 1
	if depth > MaxIncludeDepth {
		return nil, errors.Newf(errors.ErrIncludeDepth, "includes are nested deeper than %d levels", MaxIncludeDepth).
			WithDetail("zone", sourcePath)
	}

	return NewParser(p.fs, p.project, sourcePath, Options{
		Depth:     depth,
		Passes:    p.opts.Passes,
		Scratch:   p.opts.Scratch,
		ancestors: chain,
	}), nil
}

// locate attaches the innermost zone position to coded errors
func locate(err error, source string, line int) error {
	e, ok := err.(*errors.Error)
	if !ok {
		return errors.Wrapf(err, errors.ErrInternal, "%s:%d", source, line)
	}
	if _, set := e.Details["source"]; !set {
		e.WithDetail("source", source).WithDetail("line", line)
	}
	return e
}
