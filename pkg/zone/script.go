package zone

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/types"
)

// ScriptExt is the extension of script sources that can be filtered
const ScriptExt = ".gsc"

var (
	scriptDirective = regexp.MustCompile(`^script,\s*([^ ]+?)(?:\s*//.*)?$`)
	noIgnoreMarker  = regexp.MustCompile(`//\s*noignore`)
)

// ScriptPass moves scripts out of release zones. The linker then leaves
// them out of the fastfile and the build ships them in the server-only
// archive instead.
type ScriptPass struct{}

func (ScriptPass) Name() string { return "script" }

func (ScriptPass) TryHandle(ctx *Context, line string) (Result, error) {
	if ctx.Project.Target() != types.TargetRelease {
		return PassThrough, nil
	}

	m := scriptDirective.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil || !strings.HasSuffix(m[1], ScriptExt) {
		return PassThrough, nil
	}
	script := m[1]
	if types.EscapesRoot(types.NormalizeDestination(script)) {
		return PassThrough, errors.Newf(errors.ErrInvalidInput, "the script %s leaves the source folder", script).
			WithDetail("script", script)
	}
	logger := ctx.Logger()

	source, ok := findAsset(ctx, script)
	if !ok {
		logger.Warn().
			Str("script", script).
			Msg("Script cannot be filtered, it is imported from another fastfile")
		return PassThrough, nil
	}

	if noIgnoreMarker.MatchString(line) {
		logger.Warn().
			Str("script", script).
			Msg("Script is marked noignore and stays in the release zone")
		return PassThrough, nil
	}

	ctx.Project.AddFilteredScript(types.NewFileEntry(source, script))
	ctx.EmitComment(line)
	logger.Debug().Str("script", script).Str("path", source).Msg("Script filtered")
	return Consumed, nil
}

// findAsset returns the first regular file named rel on the asset search
// path.
func findAsset(ctx *Context, rel string) (string, bool) {
	for _, dir := range ctx.Project.AssetSearchPath() {
		candidate := filepath.Join(dir, filepath.FromSlash(rel))
		info, err := ctx.FS.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
