package stardefender

import "github.com/vovakirdan/star-defender/internal/core"

// Player is the defender on the bottom row. It only moves horizontally.
type Player struct {
	X, Y int
}

// MoveLeft shifts the player one column left, stopping at column 0.
func (p *Player) MoveLeft() {
	if p.X > 0 {
		p.X--
	}
}

// MoveRight shifts the player one column right, stopping at width-1.
func (p *Player) MoveRight(width int) {
	if p.X < width-1 {
		p.X++
	}
}

// Enemy descends from row 0 towards the player's row.
type Enemy struct {
	X, Y int
	Dead bool
}

// Bullet travels upward one row per tick.
type Bullet struct {
	X, Y int
	Dead bool
}

// hits reports whether the bullet strikes the enemy this tick. A bullet
// covers the cell it occupies and the one it just left, so a bullet and an
// enemy that swap cells in the same tick still collide.
func (b Bullet) hits(e Enemy) bool {
	if b.Dead || e.Dead {
		return false
	}
	at := e.Pos()
	return at == b.Pos() || at == b.Pos().Add(0, 1)
}

// Pos returns the enemy's cell.
func (e Enemy) Pos() core.Point { return core.Point{X: e.X, Y: e.Y} }

// Pos returns the bullet's cell.
func (b Bullet) Pos() core.Point { return core.Point{X: b.X, Y: b.Y} }
