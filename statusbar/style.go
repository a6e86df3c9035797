package statusbar

import "github.com/charmbracelet/lipgloss"

// Style controls the status row rendering.
type Style struct {
	Text     lipgloss.Style
	Progress lipgloss.Style
	Flash    lipgloss.Style
	Paused   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Progress: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Flash:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Paused:   lipgloss.NewStyle().Faint(true),
	}
}
