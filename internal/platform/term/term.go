// Package term is the classic full-screen console frontend, drawn with tcell.
// It redraws the whole screen every tick and reads raw keys without echo.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

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

// Options wire the frontend to its surroundings. Every field is optional.
type Options struct {
	Recorder *storage.Recorder
	Sound    Sounder
	Logger   *log.Logger
}

// Frontend runs a game on a tcell screen.
type Frontend struct {
	screen tcell.Screen
	game   *stardefender.Game
	buf    *core.Screen
	rt     core.RuntimeConfig
	opts   Options
	logger *log.Logger
	input  core.InputFrame
	state  core.GameState
}

// Open creates and initializes the terminal screen. Callers must Fini it.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot initialize screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// New creates a frontend on an initialized screen. The screen size overrides
// rt.ScreenW/ScreenH.
func New(screen tcell.Screen, game *stardefender.Game, rt core.RuntimeConfig, opts Options) *Frontend {
	rt.ScreenW, rt.ScreenH = screen.Size()
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultTickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	f := &Frontend{
		screen: screen,
		game:   game,
		buf:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		rt:     rt,
		opts:   opts,
		logger: logger,
		input:  core.NewInputFrame(),
	}
	game.Reset(rt)
	f.state = game.State()
	return f
}

// Run drives the fixed-delay loop until the player quits or ctx is done.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go f.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(f.rt.TickRate))
	defer ticker.Stop()

	f.logger.Debug("console loop started", "tick_rate", f.rt.TickRate, "size", fmt.Sprintf("%dx%d", f.rt.ScreenW, f.rt.ScreenH))
	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Tick()
			f.Draw()
		}
	}
}

// HandleEvent buffers key presses for the next tick and tracks resizes.
// It returns false when the player asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') {
			if f.opts.Sound != nil {
				f.logger.Info("sound toggled", "on", f.opts.Sound.ToggleMute())
			}
			return true
		}
		action, isQuit := MapKey(ev)
		if isQuit {
			return false
		}
		if action != core.ActionNone {
			f.logger.Debug("key", "action", action.String())
		}
		f.input.Set(action)

	case *tcell.EventResize:
		f.rt.ScreenW, f.rt.ScreenH = ev.Size()
		f.buf.Resize(f.rt.ScreenW, f.rt.ScreenH)
		if f.state.Phase == core.PhaseMenu {
			f.game.Reset(f.rt)
			f.state = f.game.State()
		}
		f.screen.Sync()
	}
	return true
}

// Tick advances the game one step with the buffered input.
func (f *Frontend) Tick() core.StepResult {
	res := f.game.Step(f.input)
	f.input.Clear()
	f.state = res.State

	if f.opts.Sound != nil && len(res.Events) > 0 {
		f.opts.Sound.PlayEvents(res.Events)
	}
	if f.opts.Recorder != nil {
		f.opts.Recorder.Observe(res)
	}
	return res
}

// Draw renders the game and copies it to the terminal.
func (f *Frontend) Draw() {
	f.game.Render(f.buf)
	if f.opts.Recorder != nil && f.state.Phase != core.PhaseMenu {
		if _, ok := f.game.Layout(f.buf.Width(), f.buf.Height()); ok {
			best := fmt.Sprintf("Best: %d ", max(f.opts.Recorder.Best(), f.state.Score))
			f.buf.DrawTextColored(f.buf.Width()-len(best), 0, best, core.ColorGray)
		}
	}

	for y := 0; y < f.buf.Height(); y++ {
		for x := 0; x < f.buf.Width(); x++ {
			c := f.buf.GetCell(x, y)
			f.screen.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
	f.screen.Show()
}

// State returns the last observed game state.
func (f *Frontend) State() core.GameState {
	return f.state
}

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) (action core.Action, isQuit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyEnter:
		return core.ActionConfirm, false
	case tcell.KeyEscape:
		return core.ActionPause, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return core.ActionQuit, true
		case 'a', 'A':
			return core.ActionLeft, false
		case 'd', 'D':
			return core.ActionRight, false
		case ' ':
			return core.ActionFire, false
		case 'p', 'P':
			return core.ActionPause, false
		case 'r', 'R':
			return core.ActionRestart, false
		case 'b', 'B':
			return core.ActionBack, false
		}
	}
	return core.ActionNone, false
}

var palette = map[core.Color]tcell.Color{
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

// Style returns the tcell style for a cell color.
func Style(c core.Color) tcell.Style {
	if tc, ok := palette[c]; ok {
		return tcell.StyleDefault.Foreground(tc)
	}
	return tcell.StyleDefault
}
