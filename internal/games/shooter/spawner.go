package shooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// Spawner decides when and where enemies appear.
// It is driven by time, not by simulation steps: the platform feeds it
// elapsed wall-clock time (or fires its own timer) and asks for spawns.
type Spawner struct {
	rng      *rand.Rand
	interval time.Duration
	pending  time.Duration // Time accumulated toward the next spawn

	arenaW float64
	enemyW float64
	enemyH float64
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.ShooterConfig) *Spawner {
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		interval: cfg.SpawnInterval(),
		arenaW:   cfg.Arena.Width,
		enemyW:   cfg.Enemy.Width,
		enemyH:   cfg.Enemy.Height,
	}
}

// Interval returns the spawn cadence.
func (s *Spawner) Interval() time.Duration {
	return s.interval
}

// Next returns the position of the next enemy: a uniformly random x in
// [0, arenaW-enemyW] and y just above the top edge.
func (s *Spawner) Next() (x, y float64) {
	span := s.arenaW - s.enemyW
	if span > 0 {
		x = s.rng.Float64() * span
	}
	return x, -s.enemyH
}

// Advance adds elapsed time and returns how many spawns are now due.
// The remainder carries over, so coarse or jittery callers still get one
// spawn per interval on average.
func (s *Spawner) Advance(elapsed time.Duration) int {
	if elapsed <= 0 || s.interval <= 0 {
		return 0
	}
	s.pending += elapsed
	due := int(s.pending / s.interval)
	s.pending -= time.Duration(due) * s.interval
	return due
}

// Reset drops accumulated time. The RNG stream continues, so a restarted
// game gets fresh enemy positions while staying reproducible from the seed.
func (s *Spawner) Reset() {
	s.pending = 0
}
