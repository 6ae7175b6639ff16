package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

func newWorld(t *testing.T, tweak func(cfg *config.ShooterConfig)) *shooter.World {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	w, err := shooter.New(cfg, 5)
	if err != nil {
		t.Fatalf("shooter.New() error = %v", err)
	}
	return w
}

// idlePilot never touches the controls.
type idlePilot struct{}

func (idlePilot) Next(*shooter.World) core.Input { return core.Input{} }

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	w := newWorld(t, nil)
	done := make(chan struct{})
	var (
		sum Summary
		err error
	)
	go func() {
		sum, err = Run(ctx, w, shooter.NewPilot(), Options{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
	if !sum.Canceled {
		t.Error("summary should be marked canceled")
	}
}

func TestRunStopsAfterDuration(t *testing.T) {
	sum, err := Run(context.Background(), newWorld(t, nil), shooter.NewPilot(), Options{
		TickRate: 100,
		Duration: 150 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Steps == 0 {
		t.Error("expected some steps to run")
	}
	if sum.Canceled {
		t.Error("a completed run is not canceled")
	}
}

func TestRunSpawnsOnItsOwnTimer(t *testing.T) {
	w := newWorld(t, func(cfg *config.ShooterConfig) { cfg.Spawn.IntervalMS = 20 })
	sum, err := Run(context.Background(), w, idlePilot{}, Options{
		TickRate: 30,
		Duration: 200 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Spawned == 0 {
		t.Error("expected spawns from the spawn ticker")
	}
}

func TestRunStopsOnGameOver(t *testing.T) {
	w := newWorld(t, func(cfg *config.ShooterConfig) {
		cfg.Gameplay.Lives = 1
		cfg.Enemy.Speed = 400
		cfg.Spawn.IntervalMS = 5
	})
	sum, err := Run(context.Background(), w, idlePilot{}, Options{
		TickRate: 200,
		Duration: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Status != shooter.StatusGameOver {
		t.Errorf("status = %v, expected GAME_OVER", sum.Status)
	}
}

func TestRunVirtualDeterministic(t *testing.T) {
	opts := Options{Duration: 60 * time.Second}

	a, err := RunVirtual(context.Background(), newWorld(t, nil), shooter.NewPilot(), opts)
	if err != nil {
		t.Fatalf("RunVirtual() error = %v", err)
	}
	b, err := RunVirtual(context.Background(), newWorld(t, nil), shooter.NewPilot(), opts)
	if err != nil {
		t.Fatalf("RunVirtual() error = %v", err)
	}
	if a != b {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
	if a.Spawned == 0 || a.Kills == 0 {
		t.Errorf("expected spawns and kills, got %+v", a)
	}
}

func TestRunVirtualSpawnCadence(t *testing.T) {
	sum, err := RunVirtual(context.Background(), newWorld(t, nil), idlePilot{}, Options{
		TickRate: 50,
		Duration: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("RunVirtual() error = %v", err)
	}
	if sum.Spawned != 2 {
		t.Errorf("spawned = %d, expected 2", sum.Spawned)
	}
	if sum.Steps != 100 {
		t.Errorf("steps = %d, expected 100", sum.Steps)
	}
}

func TestRunVirtualCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := RunVirtual(ctx, newWorld(t, nil), shooter.NewPilot(), Options{Duration: time.Minute})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
	if !sum.Canceled || sum.Steps != 0 {
		t.Errorf("summary = %+v, expected canceled before any step", sum)
	}
}
