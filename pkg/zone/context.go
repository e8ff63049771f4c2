package zone

import (
	"github.com/rs/zerolog"

	"github.com/t6modm/t6modm/pkg/project"
	"github.com/t6modm/t6modm/pkg/types"
)

// Context is what a pass sees while handling one line
type Context struct {
	Project *project.Project
	FS      types.FS

	// SourcePath is the zone file being parsed
	SourcePath string

	// LineNumber is 1-based
	LineNumber int

	// IsRoot is set only for the parser of the project's own root zone
	IsRoot bool

	// Depth counts include levels; top-level parsers are at 0
	Depth int

	parser *Parser
}

// Emit appends a line to the parser output
func (c *Context) Emit(line string) {
	c.parser.output = append(c.parser.output, line)
}

// EmitComment appends line commented out
func (c *Context) EmitComment(line string) {
	c.Emit("// " + line)
}

// Scratch returns the area resolved zones are stored in
func (c *Context) Scratch() *Scratch {
	return c.parser.opts.Scratch
}

// SetHeader records a header value seen in the root zone
func (c *Context) SetHeader(key, value string) {
	if c.IsRoot {
		c.parser.headers[key] = value
	}
}

// Child creates a parser for a zone included from the current line. The
// child shares the project and a copy of the pass chain.
func (c *Context) Child(sourcePath string) (*Parser, error) {
	return c.parser.child(sourcePath)
}

// Logger returns a logger carrying the current location
func (c *Context) Logger() zerolog.Logger {
	return c.parser.logger.With().
		Str("source", c.SourcePath).
		Int("line", c.LineNumber).
		Logger()
}
