package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// DefaultHoldDuration is how long a direction counts as held after its last
// key event. Terminals report repeats rather than releases, so this has to
// bridge the gap between the first press and the first auto-repeat.
const DefaultHoldDuration = 150 * time.Millisecond

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Restart, k.Pause},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

// HeldKeys turns discrete key events into held directions. A direction is
// held while its last press is younger than the hold duration.
type HeldKeys struct {
	hold time.Duration
	last [dirCount]time.Time
}

// NewHeldKeys creates a tracker. A non-positive hold uses DefaultHoldDuration.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &HeldKeys{hold: hold}
}

// Press records a key event for a direction. Pressing a direction releases
// its opposite, since a terminal cannot tell us the other key went up.
func (h *HeldKeys) Press(d Direction, now time.Time) {
	if d < 0 || d >= dirCount {
		return
	}
	h.last[d] = now
	switch d {
	case DirUp:
		h.last[DirDown] = time.Time{}
	case DirDown:
		h.last[DirUp] = time.Time{}
	case DirLeft:
		h.last[DirRight] = time.Time{}
	case DirRight:
		h.last[DirLeft] = time.Time{}
	}
}

// Held reports whether a direction is currently held.
func (h *HeldKeys) Held(d Direction, now time.Time) bool {
	if d < 0 || d >= dirCount {
		return false
	}
	t := h.last[d]
	return !t.IsZero() && now.Sub(t) < h.hold
}

// Input returns the held directions as an input snapshot.
func (h *HeldKeys) Input(now time.Time) core.Input {
	return core.Input{
		Up:    h.Held(DirUp, now),
		Down:  h.Held(DirDown, now),
		Left:  h.Held(DirLeft, now),
		Right: h.Held(DirRight, now),
	}
}

// Clear releases every direction.
func (h *HeldKeys) Clear() {
	h.last = [dirCount]time.Time{}
}
