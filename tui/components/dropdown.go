package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DropdownItem is one choice in a Dropdown.
type DropdownItem struct {
	Value string
	Label string
}

// DropdownResult tells the caller what a key did to the dropdown.
type DropdownResult int

const (
	DropdownOpen DropdownResult = iota
	DropdownSelected
	DropdownCanceled
)

// Dropdown is a modal single-choice list.
type Dropdown struct {
	Items    []DropdownItem
	Selected int
}

// NewDropdown opens with the item whose value is current highlighted.
func NewDropdown(items []DropdownItem, current string) Dropdown {
	d := Dropdown{Items: items}
	for i, item := range items {
		if item.Value == current {
			d.Selected = i
		}
	}
	return d
}

// Value returns the highlighted item's value.
func (d Dropdown) Value() string {
	if d.Selected < 0 || d.Selected >= len(d.Items) {
		return ""
	}
	return d.Items[d.Selected].Value
}

// DropdownKeys are the bindings Dropdown.Update reacts to.
type DropdownKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultDropdownKeys returns arrow and vi-style bindings.
func DefaultDropdownKeys() DropdownKeys {
	return DropdownKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "tab")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "l")),
	}
}

// Update moves the highlight or closes the dropdown.
func (d Dropdown) Update(msg tea.KeyMsg, keys DropdownKeys) (Dropdown, DropdownResult) {
	switch {
	case key.Matches(msg, keys.Up):
		if d.Selected > 0 {
			d.Selected--
		}
	case key.Matches(msg, keys.Down):
		if d.Selected < len(d.Items)-1 {
			d.Selected++
		}
	case key.Matches(msg, keys.Select):
		if len(d.Items) == 0 {
			return d, DropdownCanceled
		}
		return d, DropdownSelected
	case key.Matches(msg, keys.Cancel):
		return d, DropdownCanceled
	}
	return d, DropdownOpen
}

// RenderDropdown renders the list with the highlighted item marked.
func RenderDropdown(d Dropdown, title string, width int, boxStyle, headerStyle, activeStyle, inactiveStyle lipgloss.Style) string {
	lines := []string{headerStyle.Render(title), ""}
	for i, item := range d.Items {
		if i == d.Selected {
			lines = append(lines, activeStyle.Width(width).Render("> "+item.Label))
		} else {
			lines = append(lines, inactiveStyle.Width(width).Render("  "+item.Label))
		}
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
