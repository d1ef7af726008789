package tui

import "fmt"

// ScreenID identifies one of the application's screens.
type ScreenID int

const (
	ScreenMenu ScreenID = iota
	ScreenCountdown
	ScreenElapsed
)

func (s ScreenID) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenCountdown:
		return "countdown"
	case ScreenElapsed:
		return "elapsed"
	default:
		return fmt.Sprintf("ScreenID(%d)", int(s))
	}
}

// Action is a navigation request raised by a screen.
type Action int

const (
	ActionNone Action = iota
	ActionOpenCountdown
	ActionOpenElapsed
	ActionBack
)

// transition returns the screen an action leads to from the current one.
// Counter screens only lead back to the menu; there is no deeper stack.
func transition(from ScreenID, action Action) ScreenID {
	switch action {
	case ActionOpenCountdown:
		if from == ScreenMenu {
			return ScreenCountdown
		}
	case ActionOpenElapsed:
		if from == ScreenMenu {
			return ScreenElapsed
		}
	case ActionBack:
		return ScreenMenu
	}
	return from
}
