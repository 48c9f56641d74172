package stardefender

import "github.com/vovakirdan/star-defender/internal/core"

// Snapshot captures the complete gameplay state for determinism testing.
type Snapshot struct {
	Tick    int
	Phase   core.Phase
	Score   int
	Spawned int
	Player  core.Point
	Enemies []core.Point
	Bullets []core.Point
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		Score:   g.score,
		Spawned: g.spawned,
		Player:  core.Point{X: g.player.X, Y: g.player.Y},
		Enemies: make([]core.Point, len(g.enemies)),
		Bullets: make([]core.Point, len(g.bullets)),
	}
	for i, e := range g.enemies {
		s.Enemies[i] = e.Pos()
	}
	for i, b := range g.bullets {
		s.Bullets[i] = b.Pos()
	}
	return s
}
