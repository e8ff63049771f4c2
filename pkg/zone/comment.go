package zone

import "strings"

const commentMarker = "//"

// CommentPass keeps comment lines as they are
type CommentPass struct{}

func (CommentPass) Name() string { return "comment" }

func (CommentPass) TryHandle(ctx *Context, line string) (Result, error) {
	if !strings.HasPrefix(strings.TrimSpace(line), commentMarker) {
		return PassThrough, nil
	}
	ctx.Emit(line)
	return Consumed, nil
}
