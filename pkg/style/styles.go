package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(TitleColor).Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(ErrColor).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle  = lipgloss.NewStyle().Foreground(PathColor).Italic(true)
)

// textStyles colours the message following a badge
var textStyles = map[Level]lipgloss.Style{
	LevelSuccess: lipgloss.NewStyle().Foreground(DoneColor),
	LevelWarn:    lipgloss.NewStyle().Foreground(WarnColor),
	LevelError:   ErrorStyle,
}

// TextStyle returns the style for a message reported at level. Info
// messages are left unstyled.
func TextStyle(level Level) lipgloss.Style {
	if s, ok := textStyles[level]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Indent pads every line of s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
