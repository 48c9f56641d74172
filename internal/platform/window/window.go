// Package window is the graphical frontend, drawn with Ebitengine. The
// playfield is a grid of 48px tiles under a title bar holding the score.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/stardefender"
	"github.com/vovakirdan/star-defender/internal/storage"
)

// Sounder plays the sounds for a tick's events. ToggleMute reports whether
// sound is on afterwards.
type Sounder interface {
	PlayEvents(events []core.Event)
	ToggleMute() bool
}

// Options configure the window. Zero values fall back to defaults.
type Options struct {
	Width    int
	Height   int
	AssetDir string
	Recorder *storage.Recorder
	Sound    Sounder
	Logger   *log.Logger
}

// Game adapts a stardefender.Game to ebiten.Game.
type Game struct {
	game   *stardefender.Game
	assets *Assets
	opts   Options
	logger *log.Logger
	rt     core.RuntimeConfig
	state  core.GameState
	scroll float64
	keys   KeyState
}

// New creates the window game. rt.GridW/GridH are derived from the window
// size; TickRate and Seed are kept.
func New(game *stardefender.Game, rt core.RuntimeConfig, opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultTickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt.ScreenW, rt.ScreenH = opts.Width, opts.Height
	rt.GridW, rt.GridH = GridSize(opts.Width, opts.Height)

	g := &Game{
		game:   game,
		assets: NewAssets(opts.AssetDir, logger),
		opts:   opts,
		logger: logger,
		rt:     rt,
		keys: KeyState{
			Held:    ebiten.IsKeyPressed,
			Pressed: inpututil.IsKeyJustPressed,
		},
	}
	game.Reset(rt)
	g.state = game.State()
	return g
}

// Run opens the window and blocks until it is closed.
func Run(game *stardefender.Game, rt core.RuntimeConfig, opts Options) error {
	g := New(game, rt, opts)
	g.assets.Load()

	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(g.rt.TickRate)

	g.logger.Info("window opened", "size", fmt.Sprintf("%dx%d", g.opts.Width, g.opts.Height),
		"grid", fmt.Sprintf("%dx%d", game.Width(), game.Height()), "tps", g.rt.TickRate)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update runs one simulation tick. Ebiten calls it at the configured TPS.
func (g *Game) Update() error {
	frame := ReadInput(g.keys)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if g.keys.Pressed(muteKey) && g.opts.Sound != nil {
		g.logger.Info("sound toggled", "on", g.opts.Sound.ToggleMute())
	}
	g.Tick(frame)
	return nil
}

// Tick steps the game and notifies sound and score recording.
func (g *Game) Tick(frame core.InputFrame) core.StepResult {
	res := g.game.Step(frame)
	g.state = res.State
	if g.state.Phase == core.PhasePlaying {
		g.scroll = scrollOffset(g.scroll, g.opts.Height)
	}
	if g.opts.Sound != nil && len(res.Events) > 0 {
		g.opts.Sound.PlayEvents(res.Events)
	}
	if g.opts.Recorder != nil {
		g.opts.Recorder.Observe(res)
	}
	return res
}

// State returns the last observed game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Layout keeps a fixed logical resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Draw renders the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.state.Phase == core.PhaseMenu {
		g.drawMenu(screen)
		return
	}

	screen.Fill(colorBackdrop)
	g.drawBackground(screen)
	g.drawTitleBar(screen)
	g.drawField(screen)

	switch {
	case g.state.Paused():
		g.drawPaused(screen)
	case g.state.GameOver():
		g.drawGameOver(screen)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(colorTitleBar)
	h := float64(g.opts.Height)
	a := g.assets
	a.DrawTextCentered(screen, FontLarge, stardefender.TitleText, h/2-80, colorText)
	a.DrawTextCentered(screen, FontMedium, stardefender.StartPrompt, h/2+20, colorPrompt)
	a.DrawTextCentered(screen, FontSmall, stardefender.ControlsHint, h/2+60, colorHint)
	a.DrawTextCentered(screen, FontSmall, stardefender.PauseHint, h/2+90, colorHint)
	a.DrawTextCentered(screen, FontSmall, stardefender.SoundHint, h/2+120, colorHint)
	if g.opts.Recorder != nil {
		a.DrawTextCentered(screen, FontSmall, fmt.Sprintf("Best: %d", g.opts.Recorder.Best()), h-40, colorHint)
	}
}

// drawBackground tiles the background vertically, scrolling downward.
func (g *Game) drawBackground(screen *ebiten.Image) {
	img, ok := g.assets.Texture(TextureBackground)
	if !ok {
		return
	}
	b := img.Bounds()
	w, h := float64(g.opts.Width), float64(g.opts.Height)
	for _, y := range []float64{g.scroll - h, g.scroll} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate(0, y)
		screen.DrawImage(img, op)
	}
}

func (g *Game) drawTitleBar(screen *ebiten.Image) {
	w := float32(g.opts.Width)
	score := g.state.Score
	vector.DrawFilledRect(screen, 0, 0, w, TitleBarHeight, colorTitleBar, false)

	track := w - 2*scoreBarMargin
	vector.DrawFilledRect(screen, scoreBarMargin, scoreBarMargin, track, scoreBarHeight, colorScoreBarTrack, false)
	fill := float32(ScoreBarWidth(score, g.opts.Width))
	vector.DrawFilledRect(screen, scoreBarMargin, scoreBarMargin, fill, scoreBarHeight, ScoreBarColor(score), false)

	g.assets.DrawText(screen, FontSmall, fmt.Sprintf("Score: %d", score), scoreBarMargin, 45, colorText)
	if g.opts.Recorder != nil {
		best := fmt.Sprintf("Best: %d", max(g.opts.Recorder.Best(), score))
		x := float64(g.opts.Width) - scoreBarMargin - g.assets.TextWidth(FontSmall, best)
		g.assets.DrawText(screen, FontSmall, best, x, 45, colorText)
	}
}

func (g *Game) drawField(screen *ebiten.Image) {
	w, h := float32(g.opts.Width), float32(g.opts.Height)
	vector.StrokeRect(screen, 0, TitleBarHeight, w, h-TitleBarHeight, 1, colorBorder, false)

	for _, p := range g.game.Particles() {
		x := float32(p.X*TileSize) - 2
		y := float32(TitleBarHeight+p.Y*TileSize) - 2
		vector.DrawFilledRect(screen, x, y, 4, 4, ParticleColor(p), false)
	}

	const tile = float64(TileSize)
	for _, e := range g.game.Enemies() {
		x, y := TileOrigin(e.X, e.Y)
		g.assets.DrawSprite(screen, TextureEnemy, x, y, tile, tile, colorEnemy)
	}
	for _, b := range g.game.Bullets() {
		x, y := TileOrigin(b.X, b.Y)
		g.assets.DrawSprite(screen, TextureBullet, x+tile/4, y+tile/4, tile/4, tile/2, colorBullet)
	}
	p := g.game.Player()
	x, y := TileOrigin(p.X, p.Y)
	g.assets.DrawSprite(screen, TexturePlayer, x, y, tile, tile, colorPlayer)
}

func (g *Game) shade(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.opts.Width), float32(g.opts.Height), colorShade, false)
}

func (g *Game) drawPaused(screen *ebiten.Image) {
	g.shade(screen)
	h := float64(g.opts.Height)
	g.assets.DrawTextCentered(screen, FontLarge, stardefender.PausedText, h/2-30, colorText)
	g.assets.DrawTextCentered(screen, FontMedium, stardefender.ResumePrompt, h/2+20, colorPrompt)
	g.assets.DrawTextCentered(screen, FontSmall, stardefender.BackPrompt, h/2+60, colorHint)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	g.shade(screen)
	h := float64(g.opts.Height)
	a := g.assets
	a.DrawTextCentered(screen, FontLarge, stardefender.GameOverText, h/2-50, colorDanger)
	a.DrawTextCentered(screen, FontMedium, stardefender.FinalScoreText(g.state.Score), h/2+10, colorText)
	a.DrawTextCentered(screen, FontMedium, stardefender.MenuPrompt, h/2+50, colorPrompt)
	a.DrawTextCentered(screen, FontSmall, stardefender.RestartPrompt, h/2+90, colorHint)
}
