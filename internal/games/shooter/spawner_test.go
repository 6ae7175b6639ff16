package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestSpawnerIntervals(t *testing.T) {
	tests := []struct {
		name      string
		tick      time.Duration
		intervals int
	}{
		{"frame ticks", 16 * time.Millisecond, 10},
		{"exact ticks", time.Second, 5},
		{"coarse ticks", 2500 * time.Millisecond, 10},
		{"single step", 7 * time.Second, 7},
	}

	cfg := config.DefaultShooterConfig()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(1, cfg)
			total := time.Duration(tc.intervals) * s.Interval()
			spawned := 0
			for elapsed := time.Duration(0); elapsed < total; elapsed += tc.tick {
				spawned += s.Advance(tc.tick)
			}
			if spawned != tc.intervals {
				t.Errorf("spawned %d over %d intervals", spawned, tc.intervals)
			}
		})
	}
}

func TestSpawnerPositions(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	s := NewSpawner(3, cfg)
	maxX := cfg.Arena.Width - cfg.Enemy.Width

	for i := 0; i < 1000; i++ {
		x, y := s.Next()
		if x < 0 || x > maxX {
			t.Fatalf("spawn %d: x = %v outside [0, %v]", i, x, maxX)
		}
		if y != -cfg.Enemy.Height {
			t.Fatalf("spawn %d: y = %v, expected %v", i, y, -cfg.Enemy.Height)
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	a := NewSpawner(99, cfg)
	b := NewSpawner(99, cfg)
	for i := 0; i < 50; i++ {
		ax, _ := a.Next()
		bx, _ := b.Next()
		if ax != bx {
			t.Fatalf("spawn %d differs: %v != %v", i, ax, bx)
		}
	}
}

func TestSpawnerNarrowArena(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.Width = cfg.Arena.Width
	s := NewSpawner(5, cfg)
	if x, _ := s.Next(); x != 0 {
		t.Errorf("x = %v, expected 0 when enemies span the arena", x)
	}
}

func TestSpawnerReset(t *testing.T) {
	s := NewSpawner(1, config.DefaultShooterConfig())
	s.Advance(900 * time.Millisecond)
	s.Reset()
	if n := s.Advance(900 * time.Millisecond); n != 0 {
		t.Errorf("Advance() after Reset = %d, expected 0", n)
	}
	if n := s.Advance(0); n != 0 {
		t.Errorf("Advance(0) = %d, expected 0", n)
	}
	if n := s.Advance(-time.Second); n != 0 {
		t.Errorf("Advance(negative) = %d, expected 0", n)
	}
}
