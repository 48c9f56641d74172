// Package core holds the types shared by the simulation and the frontends:
// runtime config, phases, events, input frames and a cell screen. It imports
// no UI library.
package core

// Point is a cell on the playfield, (0,0) top-left.
type Point struct {
	X, Y int
}

// Add offsets the point.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is a box of cells; X/Y is the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies in the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// Min returns the smaller of a and b.
func Min(a, b int) int { return min(a, b) }

// Max returns the larger of a and b.
func Max(a, b int) int { return max(a, b) }
