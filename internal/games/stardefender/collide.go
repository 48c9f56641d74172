package stardefender

import "github.com/vovakirdan/star-defender/internal/core"

// collide checks every live bullet against every live enemy. Both die on a
// hit and each pair scores once.
func (g *Game) collide() {
	for bi := range g.bullets {
		b := &g.bullets[bi]
		for ei := range g.enemies {
			e := &g.enemies[ei]
			if !b.hits(*e) {
				continue
			}
			b.Dead = true
			e.Dead = true
			g.score += g.cfg.Scoring.PointsPerHit
			g.emit(core.EventHit, e.X, e.Y)
			if g.cfg.Effects.Particles {
				g.particles = burst(g.particles, g.fx, e.X, e.Y, g.cfg.Effects.ParticlesPerHit)
			}
			break
		}
	}
}

// cull removes dead and off-screen entities. An enemy that reaches the
// player's row ends the game.
func (g *Game) cull() {
	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Dead || b.Y < 0 {
			continue
		}
		bullets = append(bullets, b)
	}
	g.bullets = bullets

	landed := false
	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Dead {
			continue
		}
		if e.Y >= g.height-1 {
			landed = true
			continue
		}
		enemies = append(enemies, e)
	}
	g.enemies = enemies

	if landed {
		g.phase = core.PhaseGameOver
		g.emit(core.EventGameOver, g.player.X, g.player.Y)
	}
}
