package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lovedays/counter"
	"lovedays/debug"
	"lovedays/i18n"
	"lovedays/tui/components"
)

// Options configures a Model.
type Options struct {
	Localizer *i18n.Localizer
	Styles    Styles
	// Clock defaults to the wall clock.
	Clock counter.Clock
	// Interval defaults to DefaultInterval.
	Interval time.Duration
}

// Model is the Bubble Tea model of the whole application.
type Model struct {
	loc    *i18n.Localizer
	clock  counter.Clock
	styles Styles
	keys   keyMap
	help   help.Model

	active    ScreenID
	menu      *menuScreen
	countdown *counterScreen
	elapsed   *counterScreen

	// At most one modal is open at a time.
	picker   *components.DatePicker
	dropdown *components.Dropdown

	message      string
	messageError bool

	width  int
	height int

	unsubscribe func()
}

// NewModel builds the screens and subscribes them to language changes.
func NewModel(opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = counter.RealClock{}
	}

	m := &Model{
		loc:    opts.Localizer,
		clock:  clock,
		styles: opts.Styles,
		help:   help.New(),
		active: ScreenMenu,
	}
	m.menu = newMenuScreen(m.loc)
	m.countdown = newCounterScreen(ScreenCountdown, counter.Countdown, m.loc, clock, opts.Interval)
	m.elapsed = newCounterScreen(ScreenElapsed, counter.Elapsed, m.loc, clock, opts.Interval)

	m.keys = newKeyMap(m.loc)
	m.unsubscribe = m.loc.Subscribe(func() { m.keys = newKeyMap(m.loc) })
	return m
}

// Close stops the timers and drops the language subscriptions.
func (m *Model) Close() {
	m.countdown.leave()
	m.elapsed.leave()
	m.unsubscribe()
	m.menu.unsubscribe()
	m.countdown.unsubscribe()
	m.elapsed.unsubscribe()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if s := m.counterScreen(msg.screen); s != nil {
			return m, s.tick(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case m.dropdown != nil:
			return m, m.updateDropdown(msg)
		case m.picker != nil:
			return m, m.updatePicker(msg)
		case m.active == ScreenMenu:
			return m, m.updateMenu(msg)
		default:
			return m, m.updateCounter(m.counterScreen(m.active), msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.dropdown != nil || m.picker != nil {
		return renderModalView(m)
	}
	return renderMainView(m)
}

// Active returns the screen currently shown.
func (m *Model) Active() ScreenID { return m.active }

func (m *Model) counterScreen(id ScreenID) *counterScreen {
	switch id {
	case ScreenCountdown:
		return m.countdown
	case ScreenElapsed:
		return m.elapsed
	default:
		return nil
	}
}

// navigate applies action to the active screen. The counter screen being
// left always stops its timer.
func (m *Model) navigate(action Action) tea.Cmd {
	to := transition(m.active, action)
	if to == m.active {
		return nil
	}
	debug.Log("navigate %v -> %v", m.active, to)

	if s := m.counterScreen(m.active); s != nil {
		s.leave()
	}
	m.active = to
	m.message = ""

	if s := m.counterScreen(to); s != nil {
		return s.enter()
	}
	return nil
}

func (m *Model) openLanguageMenu() {
	var items []components.DropdownItem
	catalog := m.loc.Catalog()
	for _, code := range catalog.Codes() {
		t, _ := catalog.Table(code)
		items = append(items, components.DropdownItem{Value: code, Label: t.Name})
	}
	dd := components.NewDropdown(items, m.loc.Language())
	m.dropdown = &dd
}

func (m *Model) openPicker(s *counterScreen) {
	p := components.NewDatePicker(s.selected, counter.DateOf(m.clock.Now()))
	m.picker = &p
}

// setLanguage switches the language of every screen at once.
func (m *Model) setLanguage(code string) {
	if err := m.loc.SetLanguage(code); err != nil {
		m.message = err.Error()
		m.messageError = true
		return
	}
	debug.Log("language -> %s", code)
	m.message = ""
	m.messageError = false
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.menu.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.menu.moveFocus(1)
	case key.Matches(msg, m.keys.Language):
		m.openLanguageMenu()
	case key.Matches(msg, m.keys.Open1):
		return m.navigate(ActionOpenCountdown)
	case key.Matches(msg, m.keys.Open2):
		return m.navigate(ActionOpenElapsed)
	case key.Matches(msg, m.keys.Select):
		action, openLanguage := m.menu.activate()
		if openLanguage {
			m.openLanguageMenu()
			return nil
		}
		return m.navigate(action)
	}
	return nil
}

func (m *Model) updateCounter(s *counterScreen, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.navigate(ActionBack)
	case key.Matches(msg, m.keys.Up):
		s.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		s.moveFocus(1)
	case key.Matches(msg, m.keys.Pick):
		m.openPicker(s)
	case key.Matches(msg, m.keys.Select):
		if s.focus == counterBack {
			return m.navigate(ActionBack)
		}
		m.openPicker(s)
	}
	return nil
}

func (m *Model) updatePicker(msg tea.KeyMsg) tea.Cmd {
	p, result := m.picker.Update(msg, m.keys.Picker)
	switch result {
	case components.PickerConfirmed:
		m.picker = nil
		if s := m.counterScreen(m.active); s != nil {
			return s.pick(p.Cursor)
		}
	case components.PickerCanceled:
		m.picker = nil
	default:
		m.picker = &p
	}
	return nil
}

func (m *Model) updateDropdown(msg tea.KeyMsg) tea.Cmd {
	dd, result := m.dropdown.Update(msg, m.keys.Dropdown)
	switch result {
	case components.DropdownSelected:
		m.dropdown = nil
		m.setLanguage(dd.Value())
	case components.DropdownCanceled:
		m.dropdown = nil
	default:
		m.dropdown = &dd
	}
	return nil
}
