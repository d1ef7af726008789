package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lovedays/counter"
)

// PickerResult tells the caller what a key did to the picker.
type PickerResult int

const (
	// PickerOpen means the picker stays on screen.
	PickerOpen PickerResult = iota
	// PickerConfirmed means Cursor holds the chosen date.
	PickerConfirmed
	// PickerCanceled means the user dismissed the picker.
	PickerCanceled
)

// DatePicker is a modal month calendar with a day cursor.
type DatePicker struct {
	Cursor counter.Date
	Today  counter.Date
}

// NewDatePicker opens on initial, or on today when initial is zero.
func NewDatePicker(initial, today counter.Date) DatePicker {
	if initial.IsZero() {
		initial = today
	}
	return DatePicker{Cursor: initial, Today: today}
}

// DatePickerKeys are the bindings DatePicker.Update reacts to.
type DatePickerKeys struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultDatePickerKeys returns arrow and vi-style bindings.
func DefaultDatePickerKeys() DatePickerKeys {
	return DatePickerKeys{
		Left:      key.NewBinding(key.WithKeys("left", "h")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Up:        key.NewBinding(key.WithKeys("up", "k")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "[")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]")),
		Today:     key.NewBinding(key.WithKeys("home", "t")),
		Confirm:   key.NewBinding(key.WithKeys("enter", " ")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "q")),
	}
}

// Update moves the cursor or closes the picker.
func (p DatePicker) Update(msg tea.KeyMsg, keys DatePickerKeys) (DatePicker, PickerResult) {
	switch {
	case key.Matches(msg, keys.Left):
		p.Cursor = p.Cursor.AddDays(-1)
	case key.Matches(msg, keys.Right):
		p.Cursor = p.Cursor.AddDays(1)
	case key.Matches(msg, keys.Up):
		p.Cursor = p.Cursor.AddDays(-7)
	case key.Matches(msg, keys.Down):
		p.Cursor = p.Cursor.AddDays(7)
	case key.Matches(msg, keys.PrevMonth):
		p.Cursor = p.Cursor.AddMonths(-1)
	case key.Matches(msg, keys.NextMonth):
		p.Cursor = p.Cursor.AddMonths(1)
	case key.Matches(msg, keys.Today):
		p.Cursor = p.Today
	case key.Matches(msg, keys.Confirm):
		return p, PickerConfirmed
	case key.Matches(msg, keys.Cancel):
		return p, PickerCanceled
	}
	return p, PickerOpen
}

// mondayIndex returns 0 for Monday through 6 for Sunday.
func mondayIndex(d counter.Date) int {
	weekday := int(d.Midnight(time.UTC).Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return weekday - 1
}

// RenderDatePicker renders the calendar for the cursor's month. months and
// weekdays are the localized names (12 and 7 entries, Monday first).
func RenderDatePicker(p DatePicker, title string, months, weekdays []string, hint string, boxStyle, headerStyle, cursorStyle, todayStyle, hintStyle lipgloss.Style) string {
	monthName := p.Cursor.Month.String()
	if len(months) == 12 {
		monthName = months[p.Cursor.Month-1]
	}

	var lines []string
	lines = append(lines, headerStyle.Render(title))
	lines = append(lines, lipgloss.PlaceHorizontal(7*cellWidth, lipgloss.Center, fmt.Sprintf("‹ %s %d ›", monthName, p.Cursor.Year)))
	lines = append(lines, "")

	var head strings.Builder
	for i := 0; i < 7; i++ {
		name := ""
		if len(weekdays) == 7 {
			name = weekdays[i]
		}
		head.WriteString(lipgloss.PlaceHorizontal(cellWidth, lipgloss.Right, name))
	}
	lines = append(lines, head.String())

	first := counter.Date{Year: p.Cursor.Year, Month: p.Cursor.Month, Day: 1}
	offset := mondayIndex(first)
	days := counter.DaysIn(p.Cursor.Year, p.Cursor.Month)

	var row strings.Builder
	row.WriteString(strings.Repeat(" ", offset*cellWidth))
	col := offset
	for day := 1; day <= days; day++ {
		d := counter.Date{Year: p.Cursor.Year, Month: p.Cursor.Month, Day: day}
		cell := fmt.Sprintf("%d", day)
		switch {
		case d == p.Cursor:
			cell = cursorStyle.Render(cell)
		case d == p.Today:
			cell = todayStyle.Render(cell)
		}
		row.WriteString(lipgloss.PlaceHorizontal(cellWidth, lipgloss.Right, cell))

		col++
		if col == 7 {
			lines = append(lines, row.String())
			row.Reset()
			col = 0
		}
	}
	if col > 0 {
		lines = append(lines, row.String())
	}

	lines = append(lines, "", hintStyle.Render(hint))

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

const cellWidth = 4
