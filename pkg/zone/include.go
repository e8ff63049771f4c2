package zone

import (
	"regexp"
	"strings"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/paths"
)

var includeDirective = regexp.MustCompile(`^include,\s*([^ ]+?)(?:\s*//.*)?$`)

// IncludePass resolves nested zones. The included zone is parsed with the
// same chain and stored in the scratch area; the directive is rewritten to
// point at the stored copy.
type IncludePass struct{}

func (IncludePass) Name() string { return "include" }

func (IncludePass) TryHandle(ctx *Context, line string) (Result, error) {
	m := includeDirective.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return PassThrough, nil
	}
	name := m[1]

	zonePath, ok := findAsset(ctx, paths.ZoneSourceDir+"/"+name+paths.ZoneExt)
	if !ok {
		return PassThrough, errors.Newf(errors.ErrZoneNotFound, "the zone %s included from %s does not exist", name, ctx.SourcePath).
			WithDetail("zone", name).
			WithDetail("searched", ctx.Project.AssetSearchPath())
	}

	child, err := ctx.Child(zonePath)
	if err != nil {
		return PassThrough, err
	}
	body, err := child.Parse()
	if err != nil {
		return PassThrough, err
	}

	ref, err := ctx.Scratch().Store(body)
	if err != nil {
		return PassThrough, err
	}

	logger := ctx.Logger()
	logger.Debug().Str("zone", zonePath).Str("ref", ref).Msg("Include resolved")
	ctx.Emit("include," + ref + " // " + line)
	return Consumed, nil
}
