package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pollhz/pollhz/internal/hz"
)

// classify maps a Bubble Tea message to the device class it measures.
// Key presses are keyboard events; mouse motion, buttons, and wheel are
// mouse events (motion optionally excluded). Window/system messages and
// anything else never reach the tracker.
func classify(msg tea.Msg, includeMotion bool) (hz.DeviceClass, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return hz.Keyboard, true
	case tea.MouseMsg:
		if !includeMotion && msg.Action == tea.MouseActionMotion {
			return 0, false
		}
		return hz.Mouse, true
	}
	return 0, false
}
