// Package debug writes an optional trace log. The terminal belongs to the
// UI, so the log always goes to a file.
package debug

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// LogEnvVar names the file the debug log is written to.
const LogEnvVar = "LOVEDAYS_DEBUG_LOG"

var opts struct {
	isEnabled bool
}

// Init enables logging when LogEnvVar is set. The returned function closes
// the log file and is safe to call when logging is disabled.
func Init() (func(), error) {
	path := os.Getenv(LogEnvVar)
	if path == "" {
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "lovedays")
	if err != nil {
		return func() {}, errors.Wrapf(err, "open debug log %s", path)
	}

	opts.isEnabled = true
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	Log("debug log enabled")

	return func() {
		opts.isEnabled = false
		_ = f.Close()
	}, nil
}

// Log writes a formatted line when logging is enabled.
func Log(f string, args ...interface{}) {
	if !opts.isEnabled {
		return
	}
	log.Output(2, fmt.Sprintf(f, args...))
}
