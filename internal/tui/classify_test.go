package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pollhz/pollhz/internal/hz"
)

func TestClassifyKeyboard(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	class, ok := classify(msg, true)
	if !ok || class != hz.Keyboard {
		t.Fatalf("expected Keyboard, got %v ok=%v", class, ok)
	}
}

func TestClassifyMouseButtonsAndWheel(t *testing.T) {
	for _, msg := range []tea.MouseMsg{
		{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		{Action: tea.MouseActionMotion},
	} {
		class, ok := classify(msg, true)
		if !ok || class != hz.Mouse {
			t.Fatalf("expected Mouse for %+v, got %v ok=%v", msg, class, ok)
		}
	}
}

func TestClassifyMotionExcluded(t *testing.T) {
	motion := tea.MouseMsg{Action: tea.MouseActionMotion}
	if _, ok := classify(motion, false); ok {
		t.Fatalf("expected motion to be filtered out")
	}
	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if class, ok := classify(press, false); !ok || class != hz.Mouse {
		t.Fatalf("expected button press to pass the motion filter")
	}
}

func TestClassifyIgnoresOtherMessages(t *testing.T) {
	if _, ok := classify(tea.WindowSizeMsg{Width: 80, Height: 24}, true); ok {
		t.Fatalf("expected window messages to be ignored")
	}
	if _, ok := classify(tickMsg{}, true); ok {
		t.Fatalf("expected tick messages to be ignored")
	}
}
