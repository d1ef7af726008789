package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lovedays/counter"
	"lovedays/debug"
	"lovedays/i18n"
)

// counterState is the per-screen state machine:
// NoDate -> Running -> Invalid, and any state -> Running/Invalid on a new pick.
type counterState int

const (
	stateNoDate counterState = iota
	stateRunning
	stateInvalid
)

func (s counterState) String() string {
	switch s {
	case stateNoDate:
		return "no-date"
	case stateRunning:
		return "running"
	case stateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// counterKeys are the translation keys that differ between the two modes.
type counterKeys struct {
	title    string
	prompt   string
	template string
	invalid  string
}

var modeKeys = map[counter.Mode]counterKeys{
	counter.Countdown: {title: "days_until", prompt: "select_date", template: "days_left", invalid: "date_passed"},
	counter.Elapsed:   {title: "days_in_love", prompt: "select_love_date", template: "days_together", invalid: "start_in_future"},
}

const (
	counterPick = iota
	counterBack
	counterButtons
)

// counterScreen shows the countdown or the elapsed-time counter for one
// picked date and owns that screen's refresh timer.
type counterScreen struct {
	id    ScreenID
	mode  counter.Mode
	keys  counterKeys
	loc   *i18n.Localizer
	clock counter.Clock

	ticker   Ticker
	selected counter.Date
	state    counterState
	last     counter.Breakdown
	focus    int

	// updates counts tick-driven recomputations.
	updates int

	title   string
	status  string
	buttons [counterButtons]string

	unsubscribe func()
}

func newCounterScreen(id ScreenID, mode counter.Mode, loc *i18n.Localizer, clock counter.Clock, interval time.Duration) *counterScreen {
	s := &counterScreen{
		id:     id,
		mode:   mode,
		keys:   modeKeys[mode],
		loc:    loc,
		clock:  clock,
		ticker: newTicker(id, interval),
	}
	s.relabel()
	s.unsubscribe = loc.Subscribe(s.relabel)
	return s
}

// relabel re-renders every visible string from the current language and
// the last computed breakdown. It never recomputes the breakdown.
func (s *counterScreen) relabel() {
	s.title = s.loc.T(s.keys.title)
	s.buttons[counterPick] = s.loc.T("open_calendar")
	s.buttons[counterBack] = s.loc.T("back")

	if s.state == stateNoDate {
		s.status = s.loc.T(s.keys.prompt)
		return
	}
	s.status = StatusLine(s.loc, s.mode, s.last, s.state == stateRunning)
}

// StatusLine formats a counter result in the current language: the mode's
// template filled with b when ok, the mode's invalid-date message otherwise.
func StatusLine(loc *i18n.Localizer, mode counter.Mode, b counter.Breakdown, ok bool) string {
	keys := modeKeys[mode]
	if !ok {
		return loc.T(keys.invalid)
	}
	return loc.Format(keys.template, b.Days, b.Hours, b.Minutes, b.Seconds)
}

// pick sets a new reference date and restarts the refresh timer. A date
// that is already out of range goes straight to the invalid state.
func (s *counterScreen) pick(date counter.Date) tea.Cmd {
	s.selected = date
	cmd := s.ticker.Start()
	debug.Log("%v: picked %v", s.id, date)
	s.refresh()
	if s.state != stateRunning {
		return nil
	}
	return cmd
}

// refresh recomputes the breakdown. Entering the invalid state stops the
// timer; the state stays invalid until the next pick.
func (s *counterScreen) refresh() {
	b, ok := counter.Compute(s.mode, s.selected, s.clock.Now())
	if !ok {
		if s.state != stateInvalid {
			debug.Log("%v: %v is out of range, stopping", s.id, s.selected)
		}
		s.state = stateInvalid
		s.ticker.Stop()
	} else {
		s.state = stateRunning
		s.last = b
	}
	s.relabel()
}

// tick handles a timer message and schedules the next one while running.
func (s *counterScreen) tick(msg tickMsg) tea.Cmd {
	if !s.ticker.accept(msg) {
		return nil
	}
	s.updates++
	s.refresh()
	if s.state != stateRunning {
		return nil
	}
	return s.ticker.next()
}

// enter resumes a running counter when the screen becomes active again.
func (s *counterScreen) enter() tea.Cmd {
	s.focus = counterPick
	if s.state != stateRunning {
		return nil
	}
	cmd := s.ticker.Start()
	s.refresh()
	if s.state != stateRunning {
		return nil
	}
	return cmd
}

// leave stops the refresh timer.
func (s *counterScreen) leave() {
	s.ticker.Stop()
}

func (s *counterScreen) moveFocus(delta int) {
	s.focus = (s.focus + delta + counterButtons) % counterButtons
}

// dateLabel is the picked date, or empty before the first pick.
func (s *counterScreen) dateLabel() string {
	if s.state == stateNoDate {
		return ""
	}
	return s.selected.String()
}
