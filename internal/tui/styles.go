package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	stepStyles = map[string]lipgloss.Style{
		"done":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"failed":  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"pending": lipgloss.NewStyle().Faint(true),
	}
)

// stepStyle returns the style for a step-list state.
func stepStyle(state string) lipgloss.Style {
	if s, ok := stepStyles[state]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
