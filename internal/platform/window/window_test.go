package window

import (
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/stardefender"
)

func TestGridSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{800, 600, 16, 11},
		{480, 540, 10, 10},
		{1024, 768, 21, 14},
	}
	for _, tt := range tests {
		w, h := GridSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("GridSize(%d, %d) = %dx%d, want %dx%d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestTileOrigin(t *testing.T) {
	x, y := TileOrigin(2, 3)
	if x != 96 || y != 60+144 {
		t.Errorf("TileOrigin(2, 3) = (%v, %v), want (96, 204)", x, y)
	}
}

func TestScoreBarWidth(t *testing.T) {
	tests := []struct {
		score, width, want int
	}{
		{0, 800, 0},
		{10, 800, 20},
		{380, 800, 760},
		{1000, 800, 760},
		{50, 100, 60},
	}
	for _, tt := range tests {
		if got := ScoreBarWidth(tt.score, tt.width); got != tt.want {
			t.Errorf("ScoreBarWidth(%d, %d) = %d, want %d", tt.score, tt.width, got, tt.want)
		}
	}
}

func TestScoreBarColor(t *testing.T) {
	tests := []struct {
		score int
		want  color.RGBA
	}{
		{0, color.RGBA{0, 255, 255, 255}},
		{100, color.RGBA{50, 230, 255, 255}},
		{600, color.RGBA{255, 105, 255, 255}},
		{2000, color.RGBA{255, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := ScoreBarColor(tt.score); got != tt.want {
			t.Errorf("ScoreBarColor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestScrollOffsetWraps(t *testing.T) {
	off := 0.0
	for i := 0; i < 4; i++ {
		off = scrollOffset(off, 1)
	}
	if off != 0 {
		t.Errorf("offset after a full cycle = %v, want 0", off)
	}
	if got := scrollOffset(10, 600); got != 10.5 {
		t.Errorf("scrollOffset(10) = %v, want 10.5", got)
	}
}

func keys(held []ebiten.Key, pressed ...ebiten.Key) KeyState {
	return KeyState{
		Held:    func(k ebiten.Key) bool { return contains(held, k) },
		Pressed: func(k ebiten.Key) bool { return contains(pressed, k) },
	}
}

func contains(ks []ebiten.Key, k ebiten.Key) bool {
	for _, x := range ks {
		if x == k {
			return true
		}
	}
	return false
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name    string
		held    []ebiten.Key
		pressed []ebiten.Key
		want    []core.Action
	}{
		{"nothing", nil, nil, nil},
		{"hold a", []ebiten.Key{ebiten.KeyA}, nil, []core.Action{core.ActionLeft}},
		{"hold right arrow", []ebiten.Key{ebiten.KeyArrowRight}, nil, []core.Action{core.ActionRight}},
		{"space", nil, []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionFire}},
		{"enter", nil, []ebiten.Key{ebiten.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"escape", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionPause}},
		{"restart", nil, []ebiten.Key{ebiten.KeyR}, []core.Action{core.ActionRestart}},
		{"back", nil, []ebiten.Key{ebiten.KeyB}, []core.Action{core.ActionBack}},
		{"quit", nil, []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}},
		{"move and fire", []ebiten.Key{ebiten.KeyD}, []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionRight, core.ActionFire}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := ReadInput(keys(tt.held, tt.pressed...))
			if len(tt.want) == 0 && !frame.Empty() {
				t.Fatalf("expected empty frame")
			}
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("frame missing %v", a)
				}
			}
		})
	}
}

func TestReadInputHeldFireIgnored(t *testing.T) {
	frame := ReadInput(keys([]ebiten.Key{ebiten.KeySpace}))
	if frame.Has(core.ActionFire) {
		t.Error("holding space must not auto-fire")
	}
}

type recordingSounder struct {
	events []core.Event
	muted  bool
}

func (r *recordingSounder) PlayEvents(events []core.Event) {
	r.events = append(r.events, events...)
}

func (r *recordingSounder) ToggleMute() bool {
	r.muted = !r.muted
	return !r.muted
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	opts.AssetDir = t.TempDir()
	opts.Logger = log.New(io.Discard)
	return New(stardefender.New(config.DefaultGameConfig()), core.RuntimeConfig{Seed: 7}, opts)
}

func TestNewDerivesGrid(t *testing.T) {
	g := newTestGame(t, Options{})
	if g.game.Width() != 16 || g.game.Height() != 11 {
		t.Errorf("grid = %dx%d, want 16x11", g.game.Width(), g.game.Height())
	}
	if w, h := g.Layout(1920, 1080); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
	if g.State().Phase != core.PhaseMenu {
		t.Errorf("phase = %v, want menu", g.State().Phase)
	}
}

func TestTickStartsAndScrolls(t *testing.T) {
	snd := &recordingSounder{}
	g := newTestGame(t, Options{Sound: snd})

	g.Tick(core.FrameOf(core.ActionConfirm))
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.State().Phase)
	}
	if len(snd.events) == 0 || snd.events[0].Kind != core.EventStart {
		t.Errorf("expected start event, got %v", snd.events)
	}

	before := g.scroll
	g.Tick(core.NewInputFrame())
	if g.scroll != before+scrollSpeed {
		t.Errorf("scroll = %v, want %v", g.scroll, before+scrollSpeed)
	}

	g.Tick(core.FrameOf(core.ActionPause))
	paused := g.scroll
	g.Tick(core.NewInputFrame())
	if g.scroll != paused {
		t.Error("background must not scroll while paused")
	}
}

func TestUpdateMuteKey(t *testing.T) {
	snd := &recordingSounder{}
	g := newTestGame(t, Options{Sound: snd})
	g.keys = keys(nil, ebiten.KeyM)
	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if !snd.muted {
		t.Error("M should mute")
	}
	if g.State().Phase != core.PhaseMenu {
		t.Errorf("phase = %v, want menu", g.State().Phase)
	}
}

func TestUpdateQuits(t *testing.T) {
	g := newTestGame(t, Options{})
	g.keys = keys(nil, ebiten.KeyQ)
	if err := g.Update(); err != ebiten.Termination {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestUpdateStepsGame(t *testing.T) {
	g := newTestGame(t, Options{})
	g.keys = keys(nil, ebiten.KeySpace)
	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if g.State().Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want playing", g.State().Phase)
	}
}

func TestAssetsFallback(t *testing.T) {
	a := NewAssets(t.TempDir(), log.New(io.Discard))
	if failed := a.Load(); failed != len(textureFiles)+len(fontFiles) {
		t.Errorf("Load() failed = %d, want %d", failed, len(textureFiles)+len(fontFiles))
	}
	if _, ok := a.Texture(TexturePlayer); ok {
		t.Error("missing texture reported as loaded")
	}
	if _, ok := a.Face(FontLarge); ok {
		t.Error("missing font reported as loaded")
	}
	if got := a.TextWidth(FontSmall, "PAUSED"); got != 6*debugGlyphW {
		t.Errorf("fallback TextWidth = %v, want %v", got, 6*debugGlyphW)
	}
}

func TestAssetsDefaultDir(t *testing.T) {
	if got := NewAssets("", log.New(io.Discard)).Dir(); got != DefaultAssetDir {
		t.Errorf("Dir() = %q, want %q", got, DefaultAssetDir)
	}
}

func TestParticleColor(t *testing.T) {
	got := ParticleColor(stardefender.Particle{Heat: 180})
	if got != (color.RGBA{255, 180, 0, 255}) {
		t.Errorf("ParticleColor = %v", got)
	}
}
