package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Level classifies a reported line
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelSuccess Level = "DONE"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERR!"
)

// LevelStyle returns the pterm style used for a level badge
func LevelStyle(level Level) *pterm.Style {
	switch level {
	case LevelSuccess:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case LevelWarn:
		return pterm.NewStyle(pterm.FgYellow)
	case LevelError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgCyan)
	}
}

// Badge renders "[LEVEL]"
func Badge(level Level, color bool) string {
	if !color {
		return "[" + string(level) + "]"
	}
	return "[" + LevelStyle(level).Sprint(string(level)) + "]"
}

// FilteredScripts describes how many scripts a release build moved out of
// the linked zone.
func FilteredScripts(n int) string {
	switch n {
	case 0:
		return "No scripts filtered."
	case 1:
		return "1 script filtered."
	default:
		return fmt.Sprintf("%d scripts filtered.", n)
	}
}
