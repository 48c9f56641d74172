package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/stardefender"
	"github.com/vovakirdan/star-defender/internal/storage"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newFrontend(t *testing.T, opts Options) (*Frontend, *stardefender.Game, tcell.SimulationScreen) {
	t.Helper()
	screen := newSimScreen(t, 40, 20)
	cfg := config.DefaultGameConfig()
	cfg.Arena.Width, cfg.Arena.Height = 10, 8
	game := stardefender.New(cfg)
	return New(screen, game, core.RuntimeConfig{Seed: 5}, opts), game, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		want     core.Action
		wantQuit bool
	}{
		{"a", key('a'), core.ActionLeft, false},
		{"D", key('D'), core.ActionRight, false},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft, false},
		{"space", key(' '), core.ActionFire, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.ActionConfirm, false},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionPause, false},
		{"r", key('r'), core.ActionRestart, false},
		{"q", key('q'), core.ActionQuit, true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit, true},
		{"unbound", key('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := MapKey(tt.ev)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey() = (%v, %v), want (%v, %v)", got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestFrontendPlaysAndDraws(t *testing.T) {
	f, game, screen := newFrontend(t, Options{})

	if !f.HandleEvent(key(' ')) {
		t.Fatal("space should not quit")
	}
	f.Tick()
	if f.State().Phase != core.PhasePlaying {
		t.Fatalf("expected playing, got %v", f.State().Phase)
	}

	f.HandleEvent(key('a'))
	f.Tick()
	f.Draw()

	// 10x8 arena in a 40x20 screen: box at x=14, field starts at (15,2)
	p := game.Player()
	mainc, _, style, _ := screen.GetContent(15+p.X, 2+p.Y)
	if mainc != stardefender.GlyphPlayer {
		t.Errorf("expected player glyph, got %q", mainc)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.PaletteColor(10) {
		t.Errorf("expected bright green player, got %v", fg)
	}
	if p.X != 4 {
		t.Errorf("expected player moved to 4, got %d", p.X)
	}
}

func TestFrontendQuitKey(t *testing.T) {
	f, _, _ := newFrontend(t, Options{})
	if f.HandleEvent(key('q')) {
		t.Error("q should quit")
	}
}

type muteSounder struct{ muted bool }

func (s *muteSounder) PlayEvents([]core.Event) {}

func (s *muteSounder) ToggleMute() bool {
	s.muted = !s.muted
	return !s.muted
}

func TestFrontendMuteKey(t *testing.T) {
	snd := &muteSounder{}
	f, _, _ := newFrontend(t, Options{Sound: snd})

	if !f.HandleEvent(key('m')) {
		t.Fatal("m should not quit")
	}
	if !snd.muted {
		t.Error("m should mute")
	}
	if !f.input.Empty() {
		t.Error("mute key must not reach the game")
	}
	f.HandleEvent(key('M'))
	if snd.muted {
		t.Error("M should unmute")
	}
}

func TestFrontendRecordsScores(t *testing.T) {
	rec := storage.NewRecorder(nil, "easy", "", nil)
	f, game, _ := newFrontend(t, Options{Recorder: rec})

	f.HandleEvent(key(' '))
	f.Tick()
	for i := 0; i < 500 && !f.State().GameOver(); i++ {
		f.Tick()
	}
	if !f.State().GameOver() {
		t.Fatal("game never ended")
	}
	if rec.Best() != game.Score() {
		t.Errorf("recorder best %d, game score %d", rec.Best(), game.Score())
	}
}

func TestFrontendResizeInMenu(t *testing.T) {
	screen := newSimScreen(t, 30, 15)
	game := stardefender.New(config.DefaultGameConfig())
	f := New(screen, game, core.RuntimeConfig{Seed: 1}, Options{})

	if game.Width() != 28 {
		t.Fatalf("unexpected initial width %d", game.Width())
	}
	f.HandleEvent(tcell.NewEventResize(60, 24))
	if game.Width() != 40 || game.Height() != 20 {
		t.Errorf("expected 40x20 arena after resize, got %dx%d", game.Width(), game.Height())
	}
}

func TestRunStopsOnContext(t *testing.T) {
	f, _, _ := newFrontend(t, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not stop after context cancellation")
	}
}

func TestStyle(t *testing.T) {
	if Style(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should map to the default style")
	}
	fg, _, _ := Style(core.ColorOrange).Decompose()
	if fg != tcell.PaletteColor(208) {
		t.Errorf("orange mapped to %v", fg)
	}
}
