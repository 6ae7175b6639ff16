package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Kind identifies what a sprite depicts.
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindEnemy
)

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Sprite is one drawable rectangle in arena units.
type Sprite struct {
	Kind Kind
	Rect core.Rect
}

// Visual constants
const (
	PlayerChar     = '█'
	ProjectileChar = '┃'
	EnemyChar      = '▓'
	BorderChar     = '─'

	PlayerColor     = core.ColorBlue
	ProjectileColor = core.ColorRed
	EnemyColor      = core.ColorGreen

	// MinScreenW and MinScreenH are the smallest screen the arena is drawn on.
	MinScreenW = 24
	MinScreenH = 8

	hudRows = 2 // HUD text plus separator line
)

// RenderList returns the player, then projectiles, then enemies.
func (w *World) RenderList() []Sprite {
	out := make([]Sprite, 0, 1+len(w.projectiles)+len(w.enemies))
	out = append(out, Sprite{Kind: KindPlayer, Rect: w.player.Rect()})
	for _, p := range w.projectiles {
		out = append(out, Sprite{Kind: KindProjectile, Rect: p.Rect()})
	}
	for _, e := range w.enemies {
		out = append(out, Sprite{Kind: KindEnemy, Rect: e.Rect()})
	}
	return out
}

// Render draws the current state to the screen. The logical arena is
// stretched over every row below the HUD.
func (w *World) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	w.drawHUD(dst)

	vp := w.viewport(dst)
	for _, s := range w.RenderList() {
		vp.draw(dst, s)
	}

	if !w.session.Running() {
		DrawBanner(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", w.session.Score))
	}
}

func (w *World) drawHUD(dst *core.Screen) {
	s := w.session
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))

	lives := fmt.Sprintf("Lives: %d", s.Lives)
	dst.DrawText((dst.Width()-len(lives))/2, 0, lives)

	best := fmt.Sprintf("Best: %d", s.Best)
	dst.DrawText(dst.Width()-len(best)-1, 0, best)

	dst.DrawHLine(0, 1, dst.Width(), BorderChar, core.ColorGray)
}

// viewport maps arena units onto a block of screen cells.
type viewport struct {
	top    int
	sx, sy float64 // Cells per arena unit
	cols   int
	rows   int
}

func (w *World) viewport(dst *core.Screen) viewport {
	rows := dst.Height() - hudRows
	cols := dst.Width()
	return viewport{
		top:  hudRows,
		sx:   float64(cols) / w.cfg.Arena.Width,
		sy:   float64(rows) / w.cfg.Arena.Height,
		cols: cols,
		rows: rows,
	}
}

// cells converts a rect to cell bounds clipped to the viewport.
// A visible rect always covers at least one cell.
func (vp viewport) cells(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0 = int(math.Floor(r.X * vp.sx))
	y0 = int(math.Floor(r.Y * vp.sy))
	x1 = int(math.Ceil(r.Right() * vp.sx))
	y1 = int(math.Ceil(r.Bottom() * vp.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Max(x0, 0)
	y0 = core.Max(y0, 0)
	x1 = core.Min(x1, vp.cols)
	y1 = core.Min(y1, vp.rows)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func (vp viewport) draw(dst *core.Screen, s Sprite) {
	x0, y0, x1, y1, ok := vp.cells(s.Rect)
	if !ok {
		return
	}

	var (
		ch    rune
		color core.Color
	)
	switch s.Kind {
	case KindPlayer:
		ch, color = PlayerChar, PlayerColor
	case KindProjectile:
		ch, color = ProjectileChar, ProjectileColor
	default:
		ch, color = EnemyChar, EnemyColor
	}
	dst.DrawRect(x0, vp.top+y0, x1-x0, y1-y0, ch, color)
}

// DrawBanner draws a boxed two-line message in the center of the screen.
func DrawBanner(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
