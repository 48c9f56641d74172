package stardefender

import (
	"math"
	"math/rand"
)

// TileSize is the pixel size of one playfield tile in the window frontend.
// Particle speeds are expressed as pixels per tick and scaled by it.
const TileSize = 48

// Particle is a cosmetic spark emitted when an enemy is destroyed.
// Coordinates are in tiles (fractional), with (0,0) the top-left corner.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Heat    uint8 // Green channel of the spark color: 100..254
}

// Fade returns the remaining life as a fraction in (0, 1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// burst appends n particles radiating from the center of tile (x, y),
// evenly spread around the circle.
func burst(dst []Particle, rng *rand.Rand, x, y, n int) []Particle {
	if n <= 0 {
		return dst
	}
	cx := float64(x) + 0.5
	cy := float64(y) + 0.5
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		angle := float64(i) * step
		speed := float64(2+rng.Intn(3)) / TileSize
		life := 20 + rng.Intn(20)
		dst = append(dst, Particle{
			X:       cx,
			Y:       cy,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Heat:    uint8(100 + rng.Intn(155)),
		})
	}
	return dst
}

// advance moves particles and drops the expired ones in place.
func advance(ps []Particle) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}
