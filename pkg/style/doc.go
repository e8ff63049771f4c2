// Package style renders command results for the terminal.
//
// TerminalRenderer uses lipgloss styles and pterm colours; PlainRenderer
// produces the same lines without escape sequences for pipes and logs.
package style
