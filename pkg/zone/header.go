package zone

import "strings"

// Header directives. Only the header written by the build survives.
const (
	HeaderGame = ">game,"
	HeaderName = ">name,"
)

// HeaderPass comments out zone headers
type HeaderPass struct{}

func (HeaderPass) Name() string { return "header" }

func (HeaderPass) TryHandle(ctx *Context, line string) (Result, error) {
	trimmed := strings.TrimSpace(line)
	for _, header := range []string{HeaderGame, HeaderName} {
		if strings.HasPrefix(trimmed, header) {
			ctx.SetHeader(strings.TrimSuffix(header, ","), strings.TrimSpace(trimmed[len(header):]))
			ctx.EmitComment(line)
			return Consumed, nil
		}
	}
	return PassThrough, nil
}
