package components

import "github.com/charmbracelet/lipgloss"

// RenderButtons stacks full-width buttons, highlighting the focused one.
func RenderButtons(labels []string, focused, width int, activeStyle, inactiveStyle lipgloss.Style) string {
	var rows []string
	for i, label := range labels {
		style := inactiveStyle
		if i == focused {
			style = activeStyle
		}
		rows = append(rows, style.Width(width).Align(lipgloss.Center).Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
