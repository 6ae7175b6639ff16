package shooter

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// LockedWorld serializes access to a World for drivers that step and spawn
// from different goroutines.
type LockedWorld struct {
	mu sync.Mutex
	w  *World
}

// NewLockedWorld wraps w. The caller must not use w directly afterwards.
func NewLockedWorld(w *World) *LockedWorld {
	return &LockedWorld{w: w}
}

// Step advances the wrapped world by one frame.
func (l *LockedWorld) Step(in core.Input, dt time.Duration) StepResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Step(in, dt)
}

// SpawnEnemy spawns one enemy in the wrapped world.
func (l *LockedWorld) SpawnEnemy() (Enemy, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.SpawnEnemy()
}

// Fire fires from the wrapped world's player.
func (l *LockedWorld) Fire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Fire()
}

// Reset resets the wrapped world.
func (l *LockedWorld) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Reset()
}

// Snapshot returns a snapshot of the wrapped world.
func (l *LockedWorld) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Snapshot()
}

// Do runs fn with exclusive access to the wrapped world.
func (l *LockedWorld) Do(fn func(w *World)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.w)
}
