package tui

import (
	"github.com/charmbracelet/lipgloss"

	"lovedays/tui/components"
)

const (
	minWidth   = 40
	minHeight  = 16
	maxContent = 72
)

func (m *Model) size() (width, height int) {
	width, height = m.width, m.height
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	return width, height
}

// renderMainView renders the active screen with the footer.
func renderMainView(m *Model) string {
	width, height := m.size()
	contentWidth := width - 4
	if contentWidth > maxContent {
		contentWidth = maxContent
	}

	var title, body string
	if m.active == ScreenMenu {
		title = m.menu.title
		body = components.RenderButtons(m.menu.buttons[:], m.menu.focus, contentWidth, m.styles.ButtonActive, m.styles.ButtonInactive)
	} else {
		s := m.counterScreen(m.active)
		title = s.title
		body = renderCounterBody(m, s, contentWidth)
	}

	header := m.styles.TitleStyle.Render(title)

	var messageLine string
	if m.message != "" {
		msgStyle := m.styles.HintStyle
		if m.messageError {
			msgStyle = m.styles.ErrorStyle
		}
		messageLine = msgStyle.Render(m.message)
	}

	footer := renderFooter(m, width)
	footerHeight := lipgloss.Height(footer)

	content := lipgloss.JoinVertical(lipgloss.Center, header, "", body, messageLine)
	content = lipgloss.Place(width, height-footerHeight, lipgloss.Center, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, content, footer)
}

func renderCounterBody(m *Model, s *counterScreen, width int) string {
	var state components.CounterState
	switch s.state {
	case stateRunning:
		state = components.CounterRunning
	case stateInvalid:
		state = components.CounterInvalid
	default:
		state = components.CounterIdle
	}

	hero := components.RenderHero(s.status, s.dateLabel(), state, width,
		m.styles.BorderIdle, m.styles.BorderRunning, m.styles.BorderInvalid,
		m.styles.HeroTextStyle, m.styles.HeroDateStyle, m.styles.StyleInvalid)
	buttons := components.RenderButtons(s.buttons[:], s.focus, width, m.styles.ButtonActive, m.styles.ButtonInactive)

	return lipgloss.JoinVertical(lipgloss.Center, hero, "", buttons)
}

// renderModalView renders the open picker or dropdown centred on screen.
func renderModalView(m *Model) string {
	width, height := m.size()

	var modal string
	if m.dropdown != nil {
		modal = components.RenderDropdown(*m.dropdown, m.loc.T("language"), 24,
			m.styles.BoxStyle, m.styles.HeaderStyle, m.styles.ButtonActive.MarginBottom(0), m.styles.ButtonInactive.MarginBottom(0))
	} else {
		modal = components.RenderDatePicker(*m.picker, m.loc.T("picker_title"),
			m.loc.Table().Fields("months"), m.loc.Table().Fields("weekdays"), m.picker.Cursor.String(),
			m.styles.BoxStyle, m.styles.HeaderStyle, m.styles.CursorStyle, m.styles.TodayStyle, m.styles.HintStyle)
	}

	footer := renderFooter(m, width)
	content := lipgloss.Place(width, height-lipgloss.Height(footer), lipgloss.Center, lipgloss.Center, modal)
	return lipgloss.JoinVertical(lipgloss.Left, content, footer)
}

// renderFooter renders the key help for whatever has focus.
func renderFooter(m *Model, width int) string {
	bindings := m.keys.menuHelp()
	switch {
	case m.dropdown != nil:
		bindings = m.keys.dropdownHelp(m.loc)
	case m.picker != nil:
		bindings = m.keys.pickerHelp(m.loc)
	case m.active != ScreenMenu:
		bindings = m.keys.counterHelp()
	}
	return m.styles.FooterStyle.Width(width).Render(m.help.ShortHelpView(bindings))
}
