package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette for build output. Each colour adapts to light and dark terminals.
var (
	TitleColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	DoneColor  = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarnColor  = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD54F"}
	MutedColor = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}

	// PathColor marks file system locations: output folders, archives
	PathColor = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
)
