package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Player is the ship controlled by the user.
type Player struct {
	X, Y   float64 // Top-left corner in arena units
	W, H   float64
	DX, DY float64 // Velocity applied by the next Move
	Speed  float64 // Magnitude used when turning input into velocity
}

// Rect returns the collision rectangle for the player.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// SetDirection sets the velocity directly. Axes are independent, so a
// diagonal moves Speed along each axis rather than Speed overall.
func (p *Player) SetDirection(dx, dy float64) {
	p.DX = dx
	p.DY = dy
}

// Steer turns an input snapshot into velocity.
func (p *Player) Steer(in core.Input) {
	p.SetDirection(float64(in.Horizontal())*p.Speed, float64(in.Vertical())*p.Speed)
}

// Move applies the velocity and keeps the player inside the arena.
func (p *Player) Move(arenaW, arenaH float64) {
	p.X += p.DX
	p.Y += p.DY

	r := core.ClampToArena(p.Rect(), arenaW, arenaH)
	p.X, p.Y = r.X, r.Y
}

// Muzzle returns where a projectile of width projW should appear:
// horizontally centered on the player, at the player's top edge.
func (p Player) Muzzle(projW float64) (float64, float64) {
	return p.X + p.W/2 - projW/2, p.Y
}

// Projectile is a shot travelling up the arena.
type Projectile struct {
	ID    uint64
	X, Y  float64
	W, H  float64
	Speed float64

	removed bool // Marked during a step, dropped by the compaction pass
}

// Rect returns the collision rectangle for the projectile.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Update moves the projectile up by its speed.
func (p *Projectile) Update() {
	p.Y -= p.Speed
}

// OffTop reports whether the projectile is entirely above the arena.
func (p Projectile) OffTop() bool {
	return p.Y+p.H < 0
}

// Enemy descends from the top of the arena toward the player.
type Enemy struct {
	ID    uint64
	X, Y  float64
	W, H  float64
	Speed float64

	removed bool
}

// Rect returns the collision rectangle for the enemy.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Update moves the enemy down by its speed.
func (e *Enemy) Update() {
	e.Y += e.Speed
}

// PastBottom reports whether the enemy has crossed the arena floor.
func (e Enemy) PastBottom(arenaH float64) bool {
	return e.Y+e.H > arenaH
}
