package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestPilotDecisions(t *testing.T) {
	tests := []struct {
		name   string
		enemyX float64
		enemyY float64
		want   core.Input
	}{
		{"fires when lined up", 375, 100, core.Input{Fire: true}},
		{"tracks left", 100, 100, core.Input{Left: true}},
		{"tracks right", 700, 100, core.Input{Right: true}},
		{"dodges a landing enemy", 380, 486, core.Input{Left: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, nil)
			w.AddEnemy(tc.enemyX, tc.enemyY)
			got := NewPilot().Next(w)
			if got != tc.want {
				t.Errorf("Next() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestPilotIdleWithoutEnemies(t *testing.T) {
	w := newTestWorld(t, nil)
	if got := NewPilot().Next(w); !got.Idle() {
		t.Errorf("Next() = %+v, expected idle", got)
	}
}

func TestPilotRestartsAfterGameOver(t *testing.T) {
	w := newTestWorld(t, func(cfg *config.ShooterConfig) { cfg.Gameplay.Lives = 1 })
	w.AddEnemy(0, 560)
	w.Step(core.Input{}, frame)

	if got := NewPilot().Next(w); !got.Restart {
		t.Errorf("Next() = %+v, expected restart", got)
	}
}

func TestPilotFireRate(t *testing.T) {
	w := newTestWorld(t, nil)
	w.AddEnemy(375, 100)
	p := NewPilot()

	shots := 0
	for i := 0; i < 2*p.FireEvery; i++ {
		if p.Next(w).Fire {
			shots++
		}
	}
	if shots != 2 {
		t.Errorf("pilot fired %d times in %d steps, expected 2", shots, 2*p.FireEvery)
	}
}

func TestPilotScores(t *testing.T) {
	w := newTestWorld(t, nil)
	p := NewPilot()
	for i := 0; i < 3000; i++ {
		w.SpawnDue(frame)
		w.Step(p.Next(w), frame)
	}
	if w.Session().Best == 0 {
		t.Error("autopilot should destroy at least one enemy")
	}
}
