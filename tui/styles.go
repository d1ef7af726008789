package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// DefaultAccent is the accent colour name used when none is configured.
const DefaultAccent = "teal"

// ResolveAccent turns a colour name from tcell's table ("teal", "salmon", ...)
// or a #rrggbb value into a lipgloss colour.
func ResolveAccent(name string) (lipgloss.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultAccent
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault || !c.Valid() {
		return "", errors.Errorf("unknown colour %q", name)
	}
	return lipgloss.Color(fmt.Sprintf("#%06X", c.Hex())), nil
}

// Styles is the dark theme, derived from one accent colour.
type Styles struct {
	Accent lipgloss.Color

	TitleStyle     lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style

	BorderIdle    lipgloss.Style
	BorderRunning lipgloss.Style
	BorderInvalid lipgloss.Style
	HeroTextStyle lipgloss.Style
	HeroDateStyle lipgloss.Style
	StyleInvalid  lipgloss.Style

	BoxStyle    lipgloss.Style
	HeaderStyle lipgloss.Style
	CursorStyle lipgloss.Style
	TodayStyle  lipgloss.Style
	HintStyle   lipgloss.Style
	FooterStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
}

// NewStyles builds the theme around accent.
func NewStyles(accent lipgloss.Color) Styles {
	muted := lipgloss.Color("#888888")
	fg := lipgloss.Color("#E0E0E0")
	bg := lipgloss.Color("#303030")
	red := lipgloss.Color("#E06C75")

	return Styles{
		Accent: accent,

		TitleStyle: lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		ButtonActive: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#101010")).
			Background(accent).
			Padding(0, 1).
			MarginBottom(1),
		ButtonInactive: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1).
			MarginBottom(1),

		BorderIdle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2),
		BorderRunning: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		BorderInvalid: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(red).
			Padding(1, 2),
		HeroTextStyle: lipgloss.NewStyle().Bold(true).Foreground(fg),
		HeroDateStyle: lipgloss.NewStyle().Foreground(muted),
		StyleInvalid:  lipgloss.NewStyle().Bold(true).Foreground(red),

		BoxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		CursorStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101010")).Background(accent),
		TodayStyle:  lipgloss.NewStyle().Underline(true).Foreground(accent),
		HintStyle:   lipgloss.NewStyle().Foreground(muted),
		FooterStyle: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ErrorStyle:  lipgloss.NewStyle().Foreground(red),
	}
}
