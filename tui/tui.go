package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"lovedays/debug"
)

// LaunchTUI initializes and launches the terminal UI using Bubbletea.
func LaunchTUI(opts Options) error {
	m := NewModel(opts)
	defer m.Close()

	debug.Log("launching UI, language %s", opts.Localizer.Language())
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
