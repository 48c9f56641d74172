package stardefender

// spawn adds an enemy to row 0 whenever the tick counter is a multiple of
// the current spawn interval. Enemies move in lockstep, so keeping row 0
// free of duplicates keeps every enemy in its own cell. A taken column
// shifts the enemy right to the next free one; a full row skips the spawn.
func (g *Game) spawn() {
	interval := g.difficulty.SpawnInterval(g.cfg.Spawn, g.score, g.tick)
	if g.tick%interval != 0 {
		return
	}
	x, ok := g.freeTopColumn(g.rng.Intn(g.width))
	if !ok {
		return
	}
	g.enemies = append(g.enemies, Enemy{X: x, Y: 0})
	g.spawned++
}

// freeTopColumn returns the first column at or right of start, wrapping,
// with no enemy in row 0.
func (g *Game) freeTopColumn(start int) (int, bool) {
	taken := make(map[int]bool)
	for _, e := range g.enemies {
		if e.Y == 0 {
			taken[e.X] = true
		}
	}
	for i := range g.width {
		if x := (start + i) % g.width; !taken[x] {
			return x, true
		}
	}
	return 0, false
}

// SpawnInterval returns the ticks between spawns at the current difficulty.
func (g *Game) SpawnInterval() int {
	return g.difficulty.SpawnInterval(g.cfg.Spawn, g.score, g.tick)
}
