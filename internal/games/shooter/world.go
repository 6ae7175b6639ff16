// Package shooter implements the arcade shooter simulation: a player ship
// that moves inside a bounded arena, fires upward, and must destroy or dodge
// enemies descending from the top.
//
// The package has no terminal or timer dependencies. A driver calls Step once
// per frame with an input snapshot, calls SpawnEnemy on its own spawn timer,
// and renders the result.
package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// StepEvents counts what happened during one step.
type StepEvents struct {
	Fired      int // Projectiles created by a fire event
	Kills      int // Enemies destroyed by projectiles
	PlayerHits int // Enemies that collided with the player
	Escapes    int // Enemies that crossed the bottom edge
	GameOver   bool
	Restarted  bool
}

// StepResult is returned by Step for the driver to display.
type StepResult struct {
	Sprites []Sprite
	Score   int
	Lives   int
	Status  Status
	Events  StepEvents
}

// World holds all mutable state for one game instance.
// A World is not safe for concurrent use; see LockedWorld.
type World struct {
	cfg     config.ShooterConfig
	spawner *Spawner

	player      Player
	projectiles []Projectile
	enemies     []Enemy
	session     Session

	nextID   uint64
	steps    int
	lastShot int // Step index of the last accepted shot, -1 if none
	elapsed  time.Duration
}

// New creates a world from a configuration. The configuration is validated
// here so that a running world never meets an impossible size or speed.
func New(cfg config.ShooterConfig, seed int64) (*World, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	w := &World{
		cfg:     cfg,
		spawner: NewSpawner(seed, cfg),
	}
	w.Reset()
	return w, nil
}

// Reset starts a new play-through: full lives, zero score, a centered
// player and empty projectile and enemy collections.
func (w *World) Reset() {
	w.session.Reset(w.cfg.Gameplay.Lives)
	w.player = w.newPlayer()
	w.projectiles = w.projectiles[:0]
	w.enemies = w.enemies[:0]
	w.steps = 0
	w.lastShot = -1
	w.elapsed = 0
	w.spawner.Reset()
}

// newPlayer places the player centered horizontally near the floor.
func (w *World) newPlayer() Player {
	pc := w.cfg.Player
	p := Player{
		X:     w.cfg.Arena.Width/2 - pc.Width/2,
		Y:     w.cfg.Arena.Height - pc.Height - pc.BottomMargin,
		W:     pc.Width,
		H:     pc.Height,
		Speed: pc.Speed,
	}
	r := core.ClampToArena(p.Rect(), w.cfg.Arena.Width, w.cfg.Arena.Height)
	p.X, p.Y = r.X, r.Y
	return p
}

// Step advances the simulation by one frame.
//
// A Restart event while the game is over resets the world and ends the
// step. Otherwise a game-over world is left untouched. dt only feeds the
// play-time counter; entity speeds are per step.
func (w *World) Step(in core.Input, dt time.Duration) StepResult {
	var ev StepEvents

	if in.Restart && !w.session.Running() {
		w.Reset()
		ev.Restarted = true
		return w.result(ev)
	}
	if !w.session.Running() {
		return w.result(ev)
	}

	if in.Fire && w.Fire() {
		ev.Fired++
	}

	w.steps++
	if dt > 0 {
		w.elapsed += dt
	}

	// Player
	w.player.Steer(in)
	w.player.Move(w.cfg.Arena.Width, w.cfg.Arena.Height)

	// Projectiles move first, then claim at most one enemy each
	for i := range w.projectiles {
		p := &w.projectiles[i]
		p.Update()
		if p.OffTop() {
			p.removed = true
		}
	}
	ev.Kills = w.resolveShots()
	w.session.AddScore(ev.Kills)
	w.compact()

	// Enemies move, then either escape, hit the player, or survive
	for i := range w.enemies {
		w.enemies[i].Update()
	}
	for i := range w.enemies {
		e := &w.enemies[i]
		escaped := e.PastBottom(w.cfg.Arena.Height)
		hit := e.Rect().Intersects(w.player.Rect())
		if !escaped && !hit {
			continue
		}
		e.removed = true
		if hit {
			ev.PlayerHits++
		} else {
			ev.Escapes++
		}
		if w.session.LoseLife() {
			ev.GameOver = true
		}
	}
	w.compact()

	return w.result(ev)
}

// resolveShots pairs live projectiles with live enemies in collection order.
// The first enemy a projectile overlaps consumes it, so one shot can never
// score twice in the same step.
func (w *World) resolveShots() int {
	kills := 0
	for i := range w.projectiles {
		p := &w.projectiles[i]
		if p.removed {
			continue
		}
		pr := p.Rect()
		for j := range w.enemies {
			e := &w.enemies[j]
			if e.removed || !pr.Intersects(e.Rect()) {
				continue
			}
			p.removed = true
			e.removed = true
			kills++
			break
		}
	}
	return kills
}

// compact drops every entity marked during the step, preserving order.
func (w *World) compact() {
	live := w.projectiles[:0]
	for _, p := range w.projectiles {
		if !p.removed {
			live = append(live, p)
		}
	}
	w.projectiles = live

	alive := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.removed {
			alive = append(alive, e)
		}
	}
	w.enemies = alive
}

// Fire launches a projectile from the player's top-center.
// It returns false when the game is over or the shot cooldown has not
// elapsed.
func (w *World) Fire() bool {
	if !w.session.Running() {
		return false
	}
	if cd := w.cfg.Gameplay.FireCooldownSteps; cd > 0 && w.lastShot >= 0 && w.steps-w.lastShot < cd {
		return false
	}

	pc := w.cfg.Projectile
	x, y := w.player.Muzzle(pc.Width)
	w.projectiles = append(w.projectiles, Projectile{
		ID:    w.newID(),
		X:     x,
		Y:     y,
		W:     pc.Width,
		H:     pc.Height,
		Speed: pc.Speed,
	})
	w.lastShot = w.steps
	return true
}

// SpawnEnemy adds one enemy at a spawner-chosen position.
// It does nothing while the game is over.
func (w *World) SpawnEnemy() (Enemy, bool) {
	if !w.session.Running() {
		return Enemy{}, false
	}
	x, y := w.spawner.Next()
	return w.AddEnemy(x, y), true
}

// SpawnDue feeds elapsed time to the spawner and spawns every enemy that
// has come due. It returns the number spawned.
func (w *World) SpawnDue(elapsed time.Duration) int {
	due := w.spawner.Advance(elapsed)
	if !w.session.Running() {
		return 0
	}
	for i := 0; i < due; i++ {
		w.SpawnEnemy()
	}
	return due
}

// AddEnemy places an enemy at an explicit position.
func (w *World) AddEnemy(x, y float64) Enemy {
	ec := w.cfg.Enemy
	e := Enemy{
		ID:    w.newID(),
		X:     x,
		Y:     y,
		W:     ec.Width,
		H:     ec.Height,
		Speed: ec.Speed,
	}
	w.enemies = append(w.enemies, e)
	return e
}

func (w *World) newID() uint64 {
	w.nextID++
	return w.nextID
}

func (w *World) result(ev StepEvents) StepResult {
	return StepResult{
		Sprites: w.RenderList(),
		Score:   w.session.Score,
		Lives:   w.session.Lives,
		Status:  w.session.Status,
		Events:  ev,
	}
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.ShooterConfig {
	return w.cfg
}

// Session returns a copy of the score, lives and status.
func (w *World) Session() Session {
	return w.session
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Projectiles returns a copy of the live projectiles.
func (w *World) Projectiles() []Projectile {
	out := make([]Projectile, len(w.projectiles))
	copy(out, w.projectiles)
	return out
}

// Enemies returns a copy of the live enemies.
func (w *World) Enemies() []Enemy {
	out := make([]Enemy, len(w.enemies))
	copy(out, w.enemies)
	return out
}

// Steps returns how many running steps have been simulated since Reset.
func (w *World) Steps() int {
	return w.steps
}

// Elapsed returns the play time accumulated since Reset.
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

// SpawnInterval returns the enemy spawn cadence.
func (w *World) SpawnInterval() time.Duration {
	return w.spawner.Interval()
}
