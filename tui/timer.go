package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lovedays/debug"
)

// DefaultInterval is the refresh period of a running counter.
const DefaultInterval = time.Second

// tickMsg is delivered by a Ticker's pending tea.Tick.
type tickMsg struct {
	screen ScreenID
	id     int
	at     time.Time
}

// Ticker is a screen's single refresh timer. Every Start or Stop bumps the
// generation id, so ticks scheduled before that point are dropped when they
// arrive and never reschedule themselves.
type Ticker struct {
	screen   ScreenID
	interval time.Duration
	id       int
	active   bool
}

func newTicker(screen ScreenID, interval time.Duration) Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Ticker{screen: screen, interval: interval}
}

// Start cancels any running chain and schedules the first tick of a new one.
func (t *Ticker) Start() tea.Cmd {
	t.id++
	t.active = true
	debug.Log("ticker %v: start generation %d", t.screen, t.id)
	return t.next()
}

// Stop cancels the running chain, if any.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	debug.Log("ticker %v: stop generation %d", t.screen, t.id)
	t.active = false
	t.id++
}

// Active reports whether a chain is running.
func (t *Ticker) Active() bool { return t.active }

// accept reports whether msg belongs to the running chain.
func (t *Ticker) accept(msg tickMsg) bool {
	return t.active && msg.screen == t.screen && msg.id == t.id
}

func (t *Ticker) next() tea.Cmd {
	screen, id := t.screen, t.id
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return tickMsg{screen: screen, id: id, at: at}
	})
}
