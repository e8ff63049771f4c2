package style

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/t6modm/t6modm/pkg/build"
	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/paths"
)

// Renderer defines the interface for rendering command results
type Renderer interface {
	RenderBuild(result *build.Result) string
	RenderInit(name string, p *paths.Paths) string
	RenderError(err error) string
}

// NewRenderer returns a TerminalRenderer when color is wanted and a
// PlainRenderer otherwise
func NewRenderer(color bool) Renderer {
	if color {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

type line struct {
	level Level
	text  string
}

func buildLines(result *build.Result) []line {
	lines := []line{{LevelInfo, fmt.Sprintf("Built %s for target %s", result.Project, result.Target)}}
	for _, dep := range result.SkippedDependencies {
		lines = append(lines, line{LevelWarn, fmt.Sprintf("Dependency %s has no root zone and was skipped", dep)})
	}
	lines = append(lines, line{LevelInfo, FilteredScripts(result.FilteredScripts)})
	lines = append(lines, line{LevelSuccess, "Build completed successfully!"})
	for _, a := range result.Archives {
		lines = append(lines, line{LevelSuccess, "Created " + filepath.Base(a)})
	}
	return lines
}

func initLines(name string, p *paths.Paths) []line {
	return []line{
		{LevelSuccess, fmt.Sprintf("Created project %s", name)},
		{LevelInfo, "Directory: " + p.Home()},
		{LevelInfo, fmt.Sprintf("Set OAT_HOME and GAME_HOME in %s before building", paths.EnvFile)},
	}
}

// errorText shows coded errors as "Error [CODE] message"
func errorText(err error) string {
	if errors.GetErrorCode(err) != errors.ErrUnknown {
		return "Error " + err.Error()
	}
	return "Error: " + err.Error()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderBuild renders the build summary
func (r *TerminalRenderer) RenderBuild(result *build.Result) string {
	var out strings.Builder
	for _, l := range buildLines(result) {
		out.WriteString(Badge(l.level, true) + " " + TextStyle(l.level).Render(l.text) + "\n")
	}
	out.WriteString(Indent(MutedStyle.Render("output: ")+PathStyle.Render(result.OutputDir), 1))
	return out.String()
}

// RenderInit renders the result of creating a project
func (r *TerminalRenderer) RenderInit(name string, p *paths.Paths) string {
	var out strings.Builder
	for i, l := range initLines(name, p) {
		text := l.text
		if i == 0 {
			text = TitleStyle.Render(text)
		}
		out.WriteString(Badge(l.level, true) + " " + text + "\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return Badge(LevelError, true) + " " + ErrorStyle.Render(errorText(err))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderBuild renders the build summary
func (r *PlainRenderer) RenderBuild(result *build.Result) string {
	var out strings.Builder
	for _, l := range buildLines(result) {
		out.WriteString(Badge(l.level, false) + " " + l.text + "\n")
	}
	out.WriteString("  output: " + result.OutputDir)
	return out.String()
}

// RenderInit renders the result of creating a project
func (r *PlainRenderer) RenderInit(name string, p *paths.Paths) string {
	var out []string
	for _, l := range initLines(name, p) {
		out = append(out, Badge(l.level, false)+" "+l.text)
	}
	return strings.Join(out, "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return Badge(LevelError, false) + " " + errorText(err)
}
