package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestHeldKeysExpiry(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHeldKeys(100 * time.Millisecond)

	h.Press(DirLeft, start)

	tests := []struct {
		name  string
		after time.Duration
		held  bool
	}{
		{"immediately", 0, true},
		{"within hold", 99 * time.Millisecond, true},
		{"at expiry", 100 * time.Millisecond, false},
		{"long after", time.Second, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.Held(DirLeft, start.Add(tc.after)); got != tc.held {
				t.Errorf("Held() = %v, expected %v", got, tc.held)
			}
		})
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHeldKeys(100 * time.Millisecond)

	h.Press(DirUp, start)
	h.Press(DirUp, start.Add(80*time.Millisecond))

	if !h.Held(DirUp, start.Add(150*time.Millisecond)) {
		t.Error("a repeat should extend the hold")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHeldKeys(0)

	h.Press(DirLeft, now)
	h.Press(DirRight, now)
	h.Press(DirUp, now)

	got := h.Input(now)
	want := core.Input{Up: true, Right: true}
	if got != want {
		t.Errorf("Input() = %+v, expected %+v", got, want)
	}

	h.Clear()
	if !h.Input(now).Idle() {
		t.Error("Clear() should release every direction")
	}
}

func TestHeldKeysInvalidDirection(t *testing.T) {
	h := NewHeldKeys(0)
	now := time.Unix(1000, 0)
	h.Press(Direction(42), now)
	if h.Held(Direction(42), now) {
		t.Error("unknown direction should never be held")
	}
}

func TestKeyMapBindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, km.Up},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, km.Left},
		{tea.KeyMsg{Type: tea.KeyRight}, km.Right},
		{tea.KeyMsg{Type: tea.KeySpace}, km.Fire},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, km.Restart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, km.Pause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, km.Help},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, km.Screenshot},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if !key.Matches(tc.msg, tc.binding) {
				t.Errorf("%q does not match %v", tc.msg.String(), tc.binding.Keys())
			}
		})
	}
}
