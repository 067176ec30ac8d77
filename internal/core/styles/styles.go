// Package styles provides shared lipgloss styles for the shell and commands.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	HeaderStyle  lipgloss.Style
	DividerStyle lipgloss.Style
	LabelStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	PromptStyle  lipgloss.Style

	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	LabelStyle = lipgloss.NewStyle().
		Foreground(p.Primary)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	PromptStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	WarningStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
}

// Success renders a success message.
func Success(msg string) string {
	return SuccessStyle.Render(msg)
}

// Warning renders a warning message.
func Warning(msg string) string {
	return WarningStyle.Render(msg)
}

// Error renders an error message.
func Error(msg string) string {
	return ErrorStyle.Render(msg)
}
