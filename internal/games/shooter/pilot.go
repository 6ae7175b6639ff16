package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Default autopilot tuning.
const (
	DefaultPilotFireEvery = 8   // Steps between shots
	DefaultPilotDodgeGap  = 3.0 // Dodge when an enemy is this many steps of fall away
)

// Pilot produces input for demo and headless runs. It tracks the lowest
// enemy, fires when lined up under it, and sidesteps an enemy that is about
// to land on the ship.
type Pilot struct {
	FireEvery int
	DodgeGap  float64

	sinceShot int
}

// NewPilot returns a pilot with default tuning.
func NewPilot() *Pilot {
	return &Pilot{
		FireEvery: DefaultPilotFireEvery,
		DodgeGap:  DefaultPilotDodgeGap,
		sinceShot: DefaultPilotFireEvery,
	}
}

// Next returns the input for the coming step.
func (p *Pilot) Next(w *World) core.Input {
	var in core.Input
	p.sinceShot++

	if !w.session.Running() {
		return core.Input{Restart: true}
	}

	player := w.player
	pr := player.Rect()
	pcx, _ := pr.Center()

	if threat, ok := p.threat(w); ok {
		ecx, _ := threat.Rect().Center()
		// Head for whichever side has room
		goRight := ecx <= pcx
		if goRight && pr.Right()+player.Speed > w.cfg.Arena.Width {
			goRight = false
		}
		if !goRight && pr.X-player.Speed < 0 {
			goRight = true
		}
		in.Right = goRight
		in.Left = !goRight
		return in
	}

	target, ok := lowestEnemy(w.enemies)
	if !ok {
		return in
	}

	tcx, _ := target.Rect().Center()
	diff := tcx - pcx
	deadzone := math.Max(player.Speed/2, 1)
	switch {
	case diff > deadzone:
		in.Right = true
	case diff < -deadzone:
		in.Left = true
	}

	if math.Abs(diff) < target.W/2 && p.sinceShot >= p.FireEvery {
		in.Fire = true
		p.sinceShot = 0
	}
	return in
}

// threat returns the enemy that will overlap the ship soonest, if it is
// within DodgeGap steps.
func (p *Pilot) threat(w *World) (Enemy, bool) {
	pr := w.player.Rect()
	var (
		best  Enemy
		found bool
		soon  = math.Inf(1)
	)
	for _, e := range w.enemies {
		er := e.Rect()
		if er.Right() <= pr.X || er.X >= pr.Right() || e.Speed <= 0 {
			continue
		}
		gap := pr.Y - er.Bottom()
		if gap < 0 {
			continue
		}
		steps := gap / e.Speed
		if steps <= p.DodgeGap && steps < soon {
			best, found, soon = e, true, steps
		}
	}
	return best, found
}

// lowestEnemy returns the enemy closest to the bottom of the arena.
func lowestEnemy(enemies []Enemy) (Enemy, bool) {
	if len(enemies) == 0 {
		return Enemy{}, false
	}
	low := enemies[0]
	for _, e := range enemies[1:] {
		if e.Y > low.Y {
			low = e
		}
	}
	return low, true
}
