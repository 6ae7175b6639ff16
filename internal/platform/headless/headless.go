// Package headless runs the shooter without a terminal: an autopilot plays
// against the real frame and spawn timers, or against a virtual clock.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// Pilot supplies input for each step.
type Pilot interface {
	Next(w *shooter.World) core.Input
}

// Options configures a headless run.
type Options struct {
	TickRate int           // Frames per second, default 60
	Duration time.Duration // Zero runs until the game ends or ctx is done
	Logger   *log.Logger
}

// Summary describes a finished run.
type Summary struct {
	Steps    int
	Score    int
	Best     int
	Lives    int
	Status   shooter.Status
	Kills    int
	Hits     int
	Escapes  int
	Spawned  int
	Elapsed  time.Duration
	Canceled bool
}

// run accumulates per-step events into a summary.
type run struct {
	world  *shooter.World
	pilot  Pilot
	logger *log.Logger
	sum    Summary
}

func newRun(world *shooter.World, pilot Pilot, opts Options) *run {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &run{world: world, pilot: pilot, logger: logger}
}

// step advances the world once and reports whether the game is still on.
func (r *run) step(dt time.Duration) bool {
	res := r.world.Step(r.pilot.Next(r.world), dt)
	ev := res.Events
	r.sum.Kills += ev.Kills
	r.sum.Hits += ev.PlayerHits
	r.sum.Escapes += ev.Escapes

	if ev.PlayerHits > 0 || ev.Escapes > 0 {
		r.logger.Debug("life lost", "lives", res.Lives, "hits", ev.PlayerHits, "escapes", ev.Escapes)
	}
	if ev.GameOver {
		r.logger.Info("game over", "score", res.Score, "steps", r.world.Steps())
	}
	return res.Status == shooter.StatusRunning
}

func (r *run) spawn() {
	if e, ok := r.world.SpawnEnemy(); ok {
		r.sum.Spawned++
		r.logger.Debug("enemy spawned", "id", e.ID, "x", e.X)
	}
}

func (r *run) summary(canceled bool) Summary {
	s := r.world.Session()
	r.sum.Steps = r.world.Steps()
	r.sum.Score = s.Score
	r.sum.Best = s.Best
	r.sum.Lives = s.Lives
	r.sum.Status = s.Status
	r.sum.Elapsed = r.world.Elapsed()
	r.sum.Canceled = canceled
	return r.sum
}

// Run plays the world in real time. The frame and spawn timers are two
// tickers served by this goroutine only, so the world needs no lock.
// Run returns when ctx is done, Duration elapses, or the game ends.
func Run(ctx context.Context, world *shooter.World, pilot Pilot, opts Options) (Summary, error) {
	r := newRun(world, pilot, opts)
	frame := frameInterval(opts.TickRate)

	frameTicker := time.NewTicker(frame)
	defer frameTicker.Stop()
	spawnTicker := time.NewTicker(world.SpawnInterval())
	defer spawnTicker.Stop()

	var deadline <-chan time.Time
	if opts.Duration > 0 {
		timer := time.NewTimer(opts.Duration)
		defer timer.Stop()
		deadline = timer.C
	}

	r.logger.Info("headless run started", "frame", frame, "duration", opts.Duration)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("headless run canceled")
			return r.summary(true), ctx.Err()

		case <-deadline:
			return r.summary(false), nil

		case now := <-frameTicker.C:
			dt := now.Sub(last)
			last = now
			if !r.step(dt) {
				return r.summary(false), nil
			}

		case <-spawnTicker.C:
			r.spawn()
		}
	}
}

// RunVirtual plays the world against a simulated clock, as fast as the CPU
// allows. Spawns come from the world's own spawn accounting, so the result
// depends only on the seed and the pilot. Duration must be positive.
func RunVirtual(ctx context.Context, world *shooter.World, pilot Pilot, opts Options) (Summary, error) {
	r := newRun(world, pilot, opts)
	frame := frameInterval(opts.TickRate)
	steps := int(opts.Duration / frame)

	for i := 0; i < steps; i++ {
		// Check for cancellation every second of game time
		if i%60 == 0 {
			if err := ctx.Err(); err != nil {
				return r.summary(true), err
			}
		}

		r.sum.Spawned += world.SpawnDue(frame)
		if !r.step(frame) {
			break
		}
	}
	return r.summary(false), nil
}

func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
