package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lovedays/counter"
	"lovedays/i18n"
)

func newTestModel(t *testing.T, lang string, now time.Time) (*Model, *counter.ManualClock) {
	t.Helper()
	catalog, err := i18n.LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	loc, err := i18n.NewLocalizer(catalog, lang)
	if err != nil {
		t.Fatalf("Failed to create localizer: %v", err)
	}
	clock := counter.NewManualClock(now)
	accent, err := ResolveAccent(DefaultAccent)
	if err != nil {
		t.Fatalf("Failed to resolve accent: %v", err)
	}
	m := NewModel(Options{Localizer: loc, Styles: NewStyles(accent), Clock: clock})
	t.Cleanup(m.Close)
	return m, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

// pickOffset opens the picker on the active counter screen, moves the cursor
// by days relative to today and confirms.
func pickOffset(m *Model, days int) tea.Cmd {
	press(m, runes("c"))
	for ; days > 0; days-- {
		press(m, keyRight)
	}
	for ; days < 0; days++ {
		press(m, keyLeft)
	}
	return press(m, keyEnter)
}

// tickNow delivers the tick the screen's ticker is currently waiting for.
func tickNow(m *Model, s *counterScreen) tea.Cmd {
	_, cmd := m.Update(tickMsg{screen: s.id, id: s.ticker.id})
	return cmd
}

var exampleNow = time.Date(2025, 1, 8, 1, 2, 3, 0, time.UTC)

func TestNavigation(t *testing.T) {
	m, _ := newTestModel(t, "EN", exampleNow)

	if m.Active() != ScreenMenu {
		t.Fatalf("Expected to start on the menu, got %v", m.Active())
	}
	press(m, runes("1"))
	if m.Active() != ScreenCountdown {
		t.Errorf("Expected countdown screen, got %v", m.Active())
	}
	press(m, runes("2"))
	if m.Active() != ScreenCountdown {
		t.Errorf("Counter screens must not navigate sideways, got %v", m.Active())
	}
	press(m, keyEsc)
	if m.Active() != ScreenMenu {
		t.Errorf("Expected menu after back, got %v", m.Active())
	}

	// Focus starts on the countdown button; one step down is the elapsed one.
	press(m, keyDown, keyEnter)
	if m.Active() != ScreenElapsed {
		t.Errorf("Expected elapsed screen, got %v", m.Active())
	}
	// Back button via focus.
	press(m, keyDown, keyEnter)
	if m.Active() != ScreenMenu {
		t.Errorf("Expected menu after pressing the back button, got %v", m.Active())
	}
}

func TestTransition(t *testing.T) {
	cases := []struct {
		from   ScreenID
		action Action
		want   ScreenID
	}{
		{ScreenMenu, ActionOpenCountdown, ScreenCountdown},
		{ScreenMenu, ActionOpenElapsed, ScreenElapsed},
		{ScreenMenu, ActionBack, ScreenMenu},
		{ScreenCountdown, ActionOpenElapsed, ScreenCountdown},
		{ScreenElapsed, ActionBack, ScreenMenu},
		{ScreenElapsed, ActionNone, ScreenElapsed},
	}
	for _, tc := range cases {
		if got := transition(tc.from, tc.action); got != tc.want {
			t.Errorf("transition(%v, %v): expected %v, got %v", tc.from, tc.action, tc.want, got)
		}
	}
}

func TestCountdownPickAndTick(t *testing.T) {
	m, clock := newTestModel(t, "EN", exampleNow)
	press(m, runes("1"))

	s := m.countdown
	if s.status != "Select date" {
		t.Errorf("Expected prompt before picking, got %q", s.status)
	}

	cmd := pickOffset(m, 2)
	if cmd == nil {
		t.Fatal("Expected a tick command after picking a future date")
	}
	if s.selected != (counter.Date{Year: 2025, Month: time.January, Day: 10}) {
		t.Fatalf("Unexpected picked date %v", s.selected)
	}
	if want := "Left: 1 days, 22 hours, 57 minutes, 57 seconds"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}

	clock.Advance(time.Second)
	if cmd := tickNow(m, s); cmd == nil {
		t.Error("Expected the running counter to schedule the next tick")
	}
	if want := "Left: 1 days, 22 hours, 57 minutes, 56 seconds"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}
	if s.updates != 1 {
		t.Errorf("Expected 1 update, got %d", s.updates)
	}
}

func TestCountdownPastDateStopsTimer(t *testing.T) {
	m, clock := newTestModel(t, "EN", exampleNow)
	press(m, runes("1"))
	s := m.countdown

	if cmd := pickOffset(m, -1); cmd != nil {
		t.Error("Expected no tick command for a past date")
	}
	if s.state != stateInvalid || s.ticker.Active() {
		t.Fatalf("Expected invalid state with stopped timer, got %v active=%v", s.state, s.ticker.Active())
	}
	if want := "The selected date has already passed!"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		if cmd := tickNow(m, s); cmd != nil {
			t.Error("Expected no further ticks in the invalid state")
		}
	}
	if s.updates != 0 {
		t.Errorf("Expected no label updates, got %d", s.updates)
	}

	// A new valid pick leaves the terminal state. The picker reopens on the
	// previous pick (Jan 7), so three days on is Jan 10.
	if cmd := pickOffset(m, 3); cmd == nil {
		t.Error("Expected a tick command after picking a valid date")
	}
	if s.state != stateRunning {
		t.Errorf("Expected running state, got %v", s.state)
	}
}

func TestCountdownReachesTargetThenStops(t *testing.T) {
	m, clock := newTestModel(t, "EN", time.Date(2025, 1, 9, 23, 59, 59, 0, time.UTC))
	press(m, runes("1"))
	s := m.countdown
	pickOffset(m, 1)

	clock.Advance(time.Second)
	if cmd := tickNow(m, s); cmd == nil {
		t.Fatal("Expected the zero countdown to still be valid")
	}
	if want := "Left: 0 days, 0 hours, 0 minutes, 0 seconds"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}

	clock.Advance(time.Second)
	staleID := s.ticker.id
	if cmd := tickNow(m, s); cmd != nil {
		t.Error("Expected ticking to stop once the date has passed")
	}
	if s.state != stateInvalid {
		t.Errorf("Expected invalid state, got %v", s.state)
	}

	updates := s.updates
	clock.Advance(time.Second)
	m.Update(tickMsg{screen: s.id, id: staleID})
	if s.updates != updates {
		t.Error("A tick from the stopped chain must not update the label")
	}
}

func TestElapsedCounter(t *testing.T) {
	m, clock := newTestModel(t, "EN", time.Date(2024, 6, 1, 0, 0, 1, 0, time.UTC))
	press(m, runes("2"))
	s := m.elapsed

	if cmd := pickOffset(m, 0); cmd == nil {
		t.Fatal("Expected a tick command for today's date")
	}
	if want := "Together: 0 days, 0 hours, 0 minutes, 1 seconds"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}

	clock.Advance(time.Hour)
	tickNow(m, s)
	if want := "Together: 0 days, 1 hours, 0 minutes, 1 seconds"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}

	if cmd := pickOffset(m, 1); cmd != nil {
		t.Error("Expected no tick command for a future start date")
	}
	if want := "The start date is in the future!"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}
}

func TestElapsedFutureDateStopsTimer(t *testing.T) {
	m, clock := newTestModel(t, "EN", exampleNow)
	press(m, runes("2"))
	s := m.elapsed

	if cmd := pickOffset(m, 1); cmd != nil {
		t.Error("Expected no tick command for a future start date")
	}
	if s.state != stateInvalid || s.ticker.Active() {
		t.Fatalf("Expected invalid state with stopped timer, got %v active=%v", s.state, s.ticker.Active())
	}

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		if cmd := tickNow(m, s); cmd != nil {
			t.Error("Expected no further ticks in the invalid state")
		}
	}
	if s.updates != 0 {
		t.Errorf("Expected no label updates, got %d", s.updates)
	}
	if want := "The start date is in the future!"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}

	// The clock passing the start date does not revive the counter.
	clock.Advance(48 * time.Hour)
	if cmd := tickNow(m, s); cmd != nil || s.state != stateInvalid {
		t.Errorf("Expected the invalid state to hold until the next pick, got %v", s.state)
	}
}

func TestRepickKeepsSingleTimer(t *testing.T) {
	m, clock := newTestModel(t, "EN", exampleNow)
	press(m, runes("1"))
	s := m.countdown

	pickOffset(m, 2)
	firstID := s.ticker.id
	pickOffset(m, 3)
	secondID := s.ticker.id
	if firstID == secondID {
		t.Fatal("Expected a new timer generation on re-pick")
	}

	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		_, next := m.Update(tickMsg{screen: s.id, id: firstID})
		if next != nil {
			t.Error("A superseded timer must not reschedule itself")
		}
		tickNow(m, s)
	}
	if s.updates != 5 {
		t.Errorf("Expected exactly one update per simulated second (5), got %d", s.updates)
	}
}

func TestLeavingScreenStopsTimer(t *testing.T) {
	m, clock := newTestModel(t, "EN", exampleNow)
	press(m, runes("1"))
	s := m.countdown
	pickOffset(m, 2)
	runningID := s.ticker.id

	press(m, keyEsc)
	if s.ticker.Active() {
		t.Fatal("Expected the timer to stop when leaving the screen")
	}
	clock.Advance(time.Second)
	if _, cmd := m.Update(tickMsg{screen: s.id, id: runningID}); cmd != nil {
		t.Error("Expected the old chain to die after leaving")
	}
	if s.updates != 0 {
		t.Errorf("Expected no background updates, got %d", s.updates)
	}

	// Coming back resumes the counter from the current time.
	clock.Advance(time.Minute)
	if cmd := press(m, runes("1")); cmd == nil {
		t.Error("Expected the counter to resume on re-entry")
	}
	if want := "Left: 1 days, 22 hours, 56 minutes, 56 seconds"; s.status != want {
		t.Errorf("Expected %q, got %q", want, s.status)
	}
}

func TestPickerCancelKeepsState(t *testing.T) {
	m, _ := newTestModel(t, "EN", exampleNow)
	press(m, runes("1"))
	s := m.countdown

	press(m, runes("c"), keyRight, keyRight)
	if m.picker == nil {
		t.Fatal("Expected the picker to be open")
	}
	if cmd := press(m, keyEsc); cmd != nil {
		t.Error("Expected no command on cancel")
	}
	if m.picker != nil {
		t.Error("Expected the picker to close on cancel")
	}
	if s.state != stateNoDate || s.ticker.Active() || m.Active() != ScreenCountdown {
		t.Errorf("Cancel must not change state: %v active=%v screen=%v", s.state, s.ticker.Active(), m.Active())
	}
}

func TestLanguageSwitchKeepsNumbers(t *testing.T) {
	m, clock := newTestModel(t, "EN", exampleNow)
	press(m, runes("1"))
	pickOffset(m, 2)

	// No tick arrives, so the numbers must stay those of the last computation.
	clock.Advance(10 * time.Second)
	m.setLanguage("RU")

	if want := "Осталось: 1 дней, 22 часов, 57 минут, 57 секунд"; m.countdown.status != want {
		t.Errorf("Expected %q, got %q", want, m.countdown.status)
	}
	if m.countdown.last != (counter.Breakdown{Days: 1, Hours: 22, Minutes: 57, Seconds: 57}) {
		t.Errorf("Language switch must not recompute, got %+v", m.countdown.last)
	}

	// Screens that are not active follow the switch too.
	if m.menu.title != "Главное меню" || m.elapsed.status != "Выберите дату начала отношений" {
		t.Errorf("Inactive screens not relabeled: %q %q", m.menu.title, m.elapsed.status)
	}
	if m.countdown.buttons[counterBack] != "Назад" {
		t.Errorf("Expected localized back button, got %q", m.countdown.buttons[counterBack])
	}
	if !strings.Contains(m.help.ShortHelpView(m.keys.counterHelp()), "Назад") {
		t.Error("Expected the key help to follow the language")
	}
}

func TestLanguageDropdown(t *testing.T) {
	m, _ := newTestModel(t, "EN", exampleNow)

	press(m, runes("l"))
	if m.dropdown == nil {
		t.Fatal("Expected the language dropdown to open")
	}
	if m.dropdown.Value() != "EN" {
		t.Errorf("Expected the current language highlighted, got %q", m.dropdown.Value())
	}

	press(m, keyDown, keyEnter)
	if m.dropdown != nil {
		t.Error("Expected the dropdown to close after selection")
	}
	if m.loc.Language() != "RU" {
		t.Errorf("Expected RU, got %s", m.loc.Language())
	}
	if want := "Язык: Русский"; m.menu.buttons[menuLanguage] != want {
		t.Errorf("Expected %q, got %q", want, m.menu.buttons[menuLanguage])
	}

	press(m, runes("l"), keyEsc)
	if m.dropdown != nil || m.loc.Language() != "RU" {
		t.Error("Cancel must close the dropdown without switching")
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, "EN", exampleNow)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, want := range []string{"Main Menu", "Days until date", "Days in relationship", "Language: English"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected menu view to contain %q", want)
		}
	}

	press(m, runes("1"))
	pickOffset(m, 2)
	view = m.View()
	for _, want := range []string{"Days until date", "2025-01-10", "Open calendar", "Back"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected counter view to contain %q", want)
		}
	}

	press(m, runes("c"))
	view = m.View()
	if !strings.Contains(view, "January 2025") {
		t.Error("Expected the picker to show the month")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "EN", exampleNow)
	cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}
