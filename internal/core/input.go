package core

// Input is the input snapshot for a single simulation step.
// Direction fields describe keys currently held; Fire and Restart are
// one-shot events that the platform clears once they have been applied.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Fire    bool
	Restart bool
}

// Horizontal returns +1 for right, -1 for left, 0 for neither.
// Right takes precedence when both are held.
func (in Input) Horizontal() int {
	switch {
	case in.Right:
		return 1
	case in.Left:
		return -1
	default:
		return 0
	}
}

// Vertical returns -1 for up, +1 for down, 0 for neither.
// Up takes precedence when both are held.
func (in Input) Vertical() int {
	switch {
	case in.Up:
		return -1
	case in.Down:
		return 1
	default:
		return 0
	}
}

// Idle reports whether no key is held and no event is pending.
func (in Input) Idle() bool {
	return in == Input{}
}

// Events returns a copy holding only the one-shot events.
func (in Input) Events() Input {
	return Input{Fire: in.Fire, Restart: in.Restart}
}
