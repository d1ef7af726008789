package components

import (
	"github.com/charmbracelet/lipgloss"
)

// CounterState selects the border of the counter box.
type CounterState int

const (
	CounterIdle CounterState = iota
	CounterRunning
	CounterInvalid
)

// RenderHero renders the boxed counter line of a counter screen: the prompt
// while no date is picked, the ticking counter, or the invalid-date message.
func RenderHero(text, date string, state CounterState, width int, borderIdle, borderRunning, borderInvalid, heroTextStyle, heroDateStyle, styleInvalid lipgloss.Style) string {
	// Account for border padding (2 chars on each side = 4 total)
	availableWidth := width - 4
	if availableWidth < 1 {
		availableWidth = 1
	}

	var borderStyle lipgloss.Style
	var styled string
	switch state {
	case CounterRunning:
		borderStyle = borderRunning
		styled = heroTextStyle.Render(text)
	case CounterInvalid:
		borderStyle = borderInvalid
		styled = styleInvalid.Render(text)
	default:
		borderStyle = borderIdle
		styled = heroTextStyle.Render(text)
	}

	// Wrap long labels instead of truncating them
	lines := []string{lipgloss.NewStyle().Width(availableWidth).Align(lipgloss.Center).Render(styled)}
	if date != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(availableWidth, lipgloss.Center, heroDateStyle.Render(date)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return borderStyle.Width(width).Render(content)
}
