package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/stardefender"
	"github.com/vovakirdan/star-defender/internal/storage"
)

// ScoreStore is the persistence the model needs. *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	TopScores(mode string, limit int) ([]storage.ScoreEntry, error)
	HighScore(mode string) (int, error)
	Modes() ([]string, error)
}

// Sounder plays the sounds for a tick's events. ToggleMute reports whether
// sound is on afterwards.
type Sounder interface {
	PlayEvents(events []core.Event)
	ToggleMute() bool
}

// Options wire the model to its surroundings. Every field is optional.
type Options struct {
	Store         ScoreStore
	Mode          string // Difficulty mode scores are filed under
	Player        string
	Logger        *log.Logger
	Sound         Sounder
	ScreenshotDir string // Defaults to ~/.stardefender/screenshots
}

// Model is the Bubble Tea model that runs Star Defender in a terminal.
type Model struct {
	game       *stardefender.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	recorder   *storage.Recorder
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *stardefender.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if opts.Mode == "" {
		opts.Mode = "default"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.recorder = storage.NewRecorder(opts.Store, opts.Mode, opts.Player, logger)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case "m", "M":
		if m.opts.Sound != nil {
			m.logger.Info("sound toggled", "on", m.opts.Sound.ToggleMute())
		}
		return m, nil
	case "tab":
		if m.gameState.Phase == core.PhaseMenu {
			sb := NewScoreboardModel(m.opts.Store, m.opts.Mode, m.config.ScreenW, m.config.ScreenH)
			m.scoreboard = &sb
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb := next.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		m.recorder.Refresh()
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. The arena is only resized
// from the menu; mid-run the game keeps its size and reports when the
// terminal is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.Phase == core.PhaseMenu {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick runs one simulation step with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.opts.Sound != nil && len(result.Events) > 0 {
		m.opts.Sound.PlayEvents(result.Events)
	}

	m.recorder.Observe(result)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.render()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".stardefender", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// render draws the game plus the frontend's own annotations.
func (m *Model) render() {
	m.game.Render(m.screen)

	w, h := m.screen.Width(), m.screen.Height()
	if m.gameState.Phase == core.PhaseMenu {
		hint := "TAB: high scores   Q: quit"
		if best := m.recorder.Best(); best > 0 {
			hint = fmt.Sprintf("Best: %d   %s", best, hint)
		}
		m.screen.DrawTextCenteredColored(h-1, hint, core.ColorGray)
		return
	}
	if _, ok := m.game.Layout(w, h); ok {
		best := fmt.Sprintf("Best: %d ", max(m.recorder.Best(), m.gameState.Score))
		m.screen.DrawTextColored(w-len(best), 0, best, core.ColorGray)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.render()
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game *stardefender.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
