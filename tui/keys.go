package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"lovedays/i18n"
	"lovedays/tui/components"
)

// keyMap holds the bindings of every screen. Help texts are localized, so
// the map is rebuilt on each language change. Modal help is derived from
// the modal's own bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Language  key.Binding
	Open1     key.Binding
	Open2     key.Binding
	Pick      key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Picker   components.DatePickerKeys
	Dropdown components.DropdownKeys
}

func newKeyMap(loc *i18n.Localizer) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↑/↓", loc.T("help_move")),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", loc.T("help_select")),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", loc.T("language")),
		),
		Open1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", loc.T("days_until")),
		),
		Open2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", loc.T("days_in_love")),
		),
		Pick: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", loc.T("open_calendar")),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc", loc.T("back")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", loc.T("quit")),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),

		Picker:   components.DefaultDatePickerKeys(),
		Dropdown: components.DefaultDropdownKeys(),
	}
}

func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Down, k.Select, k.Open1, k.Open2, k.Language, k.Quit}
}

func (k keyMap) counterHelp() []key.Binding {
	return []key.Binding{k.Down, k.Select, k.Pick, k.Back, k.Quit}
}

func (k keyMap) pickerHelp(loc *i18n.Localizer) []key.Binding {
	p := k.Picker
	return []key.Binding{
		helpFor(loc.T("help_move"), p.Left, p.Right, p.Up, p.Down),
		helpFor(loc.T("help_month"), p.PrevMonth, p.NextMonth),
		helpFor(loc.T("help_today"), p.Today),
		helpFor(loc.T("confirm"), p.Confirm),
		helpFor(loc.T("cancel"), p.Cancel),
	}
}

func (k keyMap) dropdownHelp(loc *i18n.Localizer) []key.Binding {
	d := k.Dropdown
	return []key.Binding{
		helpFor(loc.T("help_move"), d.Up, d.Down),
		helpFor(loc.T("help_select"), d.Select),
		helpFor(loc.T("cancel"), d.Cancel),
	}
}

var keyGlyphs = map[string]string{
	"left":   "←",
	"right":  "→",
	"up":     "↑",
	"down":   "↓",
	"pgdown": "pgdn",
	" ":      "space",
}

// helpFor merges bindings into one help entry listing every key they match.
func helpFor(desc string, bindings ...key.Binding) key.Binding {
	var keys, shown []string
	for _, b := range bindings {
		for _, k := range b.Keys() {
			keys = append(keys, k)
			if glyph, ok := keyGlyphs[k]; ok {
				k = glyph
			}
			shown = append(shown, k)
		}
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(shown, "/"), desc))
}
