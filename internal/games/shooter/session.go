package shooter

// Status is the session's position in its lifecycle.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Session tracks score, lives and status for one play-through.
// Best carries the highest score across resets of the same process.
type Session struct {
	Score  int
	Lives  int
	Best   int
	Status Status
}

// NewSession returns a running session with the given lives.
func NewSession(lives int) Session {
	s := Session{}
	s.Reset(lives)
	return s
}

// Running reports whether the session accepts steps.
func (s Session) Running() bool {
	return s.Status == StatusRunning
}

// AddScore increases the score. Non-positive amounts are ignored so the
// score never decreases.
func (s *Session) AddScore(n int) {
	if n <= 0 {
		return
	}
	s.Score += n
	if s.Score > s.Best {
		s.Best = s.Score
	}
}

// LoseLife removes one life and returns true if the session just ended.
// Lives never go below zero.
func (s *Session) LoseLife() bool {
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives <= 0 && s.Status == StatusRunning {
		s.Status = StatusGameOver
		return true
	}
	return false
}

// Reset starts a new play-through. Best is kept.
func (s *Session) Reset(lives int) {
	s.Score = 0
	s.Lives = lives
	s.Status = StatusRunning
}
