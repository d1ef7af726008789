package tui

import (
	"lovedays/i18n"
)

const (
	menuLanguage = iota
	menuCountdown
	menuElapsed
	menuButtons
)

// menuScreen is the main menu: a language button and one button per counter.
type menuScreen struct {
	loc   *i18n.Localizer
	focus int

	title   string
	buttons [menuButtons]string

	unsubscribe func()
}

func newMenuScreen(loc *i18n.Localizer) *menuScreen {
	s := &menuScreen{loc: loc, focus: menuCountdown}
	s.relabel()
	s.unsubscribe = loc.Subscribe(s.relabel)
	return s
}

func (s *menuScreen) relabel() {
	s.title = s.loc.T("main_title")
	s.buttons[menuLanguage] = s.loc.T("language") + ": " + s.loc.Table().Name
	s.buttons[menuCountdown] = s.loc.T("days_until")
	s.buttons[menuElapsed] = s.loc.T("days_in_love")
}

func (s *menuScreen) moveFocus(delta int) {
	s.focus = (s.focus + delta + menuButtons) % menuButtons
}

// activate returns what pressing the focused button does. openLanguage is
// true for the language button.
func (s *menuScreen) activate() (action Action, openLanguage bool) {
	switch s.focus {
	case menuLanguage:
		return ActionNone, true
	case menuCountdown:
		return ActionOpenCountdown, false
	default:
		return ActionOpenElapsed, false
	}
}
