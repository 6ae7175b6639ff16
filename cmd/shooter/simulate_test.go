package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/headless"
)

func TestFormatSummary(t *testing.T) {
	out := formatSummary(headless.Summary{
		Steps:   1800,
		Score:   12,
		Lives:   0,
		Status:  shooter.StatusGameOver,
		Kills:   12,
		Escapes: 3,
		Spawned: 30,
		Elapsed: 30 * time.Second,
	}, 7)

	for _, want := range []string{"Simulation summary", "GAME_OVER", "12", "1800", "30s", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "interrupted") {
		t.Error("completed run should not be marked interrupted")
	}

	out = formatSummary(headless.Summary{Canceled: true}, 1)
	if !strings.Contains(out, "interrupted") {
		t.Error("canceled run should be marked interrupted")
	}
}

func TestSeedFlag(t *testing.T) {
	old := flagSeed
	t.Cleanup(func() { flagSeed = old })

	flagSeed = 42
	if got := seed(); got != 42 {
		t.Errorf("seed() = %d, expected 42", got)
	}
	flagSeed = 0
	if seed() == 0 {
		t.Error("seed() should pick a time-based seed when the flag is 0")
	}
}
