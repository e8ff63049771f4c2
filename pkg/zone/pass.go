package zone

// Result tells the parser whether a pass took ownership of a line
type Result int

const (
	// PassThrough lets the next pass look at the line
	PassThrough Result = iota

	// Consumed stops the chain; the pass has emitted whatever it wanted
	Consumed
)

func (r Result) String() string {
	if r == Consumed {
		return "consumed"
	}
	return "pass-through"
}

// Pass classifies and transforms single zone lines
type Pass interface {
	Name() string
	TryHandle(ctx *Context, line string) (Result, error)
}

// DefaultPasses returns the standard chain in evaluation order
func DefaultPasses() []Pass {
	return []Pass{
		CommentPass{},
		HeaderPass{},
		ScriptPass{},
		IncludePass{},
		FilePass{},
	}
}
