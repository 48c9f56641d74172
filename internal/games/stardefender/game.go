// Package stardefender implements the Star Defender shooter.
// The player slides along the bottom row and shoots enemies that descend
// from the top; the run ends when an enemy reaches the player's row.
package stardefender

import (
	"math/rand"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
)

// Smallest playable arena, in tiles.
const (
	MinArenaW = 5
	MinArenaH = 5
)

// Game implements the Star Defender game logic.
type Game struct {
	cfg        config.GameConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand // Gameplay randomness (spawn columns)
	fx         *rand.Rand // Cosmetic randomness, kept apart so effects never change gameplay

	width  int
	height int

	phase   core.Phase
	tick    int
	score   int
	spawned int

	player    Player
	enemies   []Enemy
	bullets   []Bullet
	particles []Particle

	events []core.Event // Events raised during the current Step
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.GameConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the identifier used for storage and the CLI.
func (g *Game) ID() string {
	return "stardefender"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Star Defender"
}

// Reset sizes the arena, seeds the RNG and returns to the menu.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.width, g.height = ArenaSize(g.cfg.Arena, rt)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.fx = rand.New(rand.NewSource(rt.Seed + 1))
	g.phase = core.PhaseMenu
	g.restart()
}

// ArenaSize resolves the playfield size. Explicit config wins, then the
// frontend's grid, then whatever fits on the screen around the HUD and border.
func ArenaSize(arena config.ArenaConfig, rt core.RuntimeConfig) (int, int) {
	w, h := arena.Width, arena.Height
	if w <= 0 {
		w = rt.GridW
	}
	if h <= 0 {
		h = rt.GridH
	}
	if w <= 0 {
		w = rt.ScreenW - 2
		if arena.MaxWidth > 0 && w > arena.MaxWidth {
			w = arena.MaxWidth
		}
	}
	if h <= 0 {
		h = rt.ScreenH - 3
		if arena.MaxHeight > 0 && h > arena.MaxHeight {
			h = arena.MaxHeight
		}
	}
	return core.Max(w, MinArenaW), core.Max(h, MinArenaH)
}

// restart clears the field for a new run; the phase is left to the caller.
func (g *Game) restart() {
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.particles = g.particles[:0]
	g.player = Player{X: g.width / 2, Y: g.height - 1}
	g.tick = 0
	g.score = 0
	g.spawned = 0
}

// start begins a fresh run.
func (g *Game) start() {
	g.restart()
	g.phase = core.PhasePlaying
	g.emit(core.EventStart, g.player.X, g.player.Y)
}

// Step advances the game by one tick: input first, then the simulation.
// The world only moves while playing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if !in.Empty() {
		g.handleInput(in)
	}
	if g.phase == core.PhasePlaying {
		g.update()
	}

	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.start()
		}

	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePaused
			return
		}
		if in.Has(core.ActionLeft) {
			g.player.MoveLeft()
		}
		if in.Has(core.ActionRight) {
			g.player.MoveRight(g.width)
		}
		if in.Has(core.ActionFire) {
			g.fire()
		}

	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePlaying
		} else if in.Has(core.ActionBack) {
			g.phase = core.PhaseMenu
		}

	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.start()
		} else if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.phase = core.PhaseMenu
		}
	}
}

// fire launches a bullet from the cell above the player.
func (g *Game) fire() {
	if g.cfg.Bullet.Max > 0 && len(g.bullets) >= g.cfg.Bullet.Max {
		return
	}
	g.bullets = append(g.bullets, Bullet{X: g.player.X, Y: g.player.Y - 1})
	g.emit(core.EventFire, g.player.X, g.player.Y-1)
}

// update runs one simulation tick: spawn, move, collide, cull.
func (g *Game) update() {
	g.tick++
	g.spawn()

	for i := range g.bullets {
		g.bullets[i].Y--
	}
	if g.tick%g.cfg.Enemy.StepTicks == 0 {
		for i := range g.enemies {
			g.enemies[i].Y++
		}
	}

	g.collide()
	g.cull()
	g.particles = advance(g.particles)
}

func (g *Game) emit(kind core.EventKind, x, y int) {
	g.events = append(g.events, core.Event{Kind: kind, X: x, Y: y})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:   g.phase,
		Score:   g.score,
		Tick:    g.tick,
		Enemies: len(g.enemies),
		Bullets: len(g.bullets),
	}
}

// Phase returns the current phase.
func (g *Game) Phase() core.Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Width returns the arena width in tiles.
func (g *Game) Width() int { return g.width }

// Height returns the arena height in tiles.
func (g *Game) Height() int { return g.height }

// Player returns the player entity.
func (g *Game) Player() Player { return g.player }

// Enemies returns the live enemies. The slice is owned by the game and is
// only valid until the next Step.
func (g *Game) Enemies() []Enemy { return g.enemies }

// Bullets returns the live bullets, valid until the next Step.
func (g *Game) Bullets() []Bullet { return g.bullets }

// Particles returns the active particles, valid until the next Step.
func (g *Game) Particles() []Particle { return g.particles }

// Level returns the current difficulty level in [0, 1].
func (g *Game) Level() float64 {
	return g.difficulty.Level(g.score, g.tick)
}

// Config returns the gameplay configuration in use.
func (g *Game) Config() config.GameConfig { return g.cfg }
