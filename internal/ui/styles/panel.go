package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded-border card style for the given focus
// state, colored from the active theme.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	borderColor := t.Border
	if focused {
		borderColor = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor)
}
