package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-defender/internal/audio"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/stardefender"
	termfe "github.com/vovakirdan/star-defender/internal/platform/term"
	"github.com/vovakirdan/star-defender/internal/platform/tui"
	"github.com/vovakirdan/star-defender/internal/storage"
)

const (
	frontendTea   = "tea"
	frontendTcell = "tcell"
)

var (
	flagFrontend string
	flagMute     bool
	flagVolume   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Star Defender in the terminal.

Controls:
  A/D, Left/Right - Move
  Space           - Fire / start
  Enter           - Start
  P/Esc           - Pause
  B               - Back to menu (while paused)
  R               - Restart (after game over)
  M               - Toggle sound
  Tab             - High scores (from the menu)
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Frontends:
  tea    - Bubble Tea renderer with scoreboard and screenshots (default)
  tcell  - Classic full-screen console

Difficulty options:
  easy   - Slow enemies, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, limited bullets
  fixed  - No progression, stays at config's initial level

Examples:
  stardefender play
  stardefender play --difficulty hard
  stardefender play --frontend tcell --fps 15
  stardefender play --config ./my-stardefender.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTea, "Terminal frontend: tea or tcell")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if flagFrontend != frontendTea && flagFrontend != frontendTcell {
		fatal("unknown frontend %q (want %s or %s)", flagFrontend, frontendTea, frontendTcell)
	}

	gameCfg, mode, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	// The screen belongs to the game, so logs go to --log-file or nowhere
	logger, closer := openLogger("stardefender", io.Discard)
	defer closer.Close()

	width, height := terminalSize()
	rt := runtimeConfig(gameCfg, width, height, cmd.Flags().Changed("fps"))

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var sound *audio.Player
	if !flagMute {
		sound = startSound(logger)
		defer sound.Close()
	}

	game := stardefender.New(gameCfg)
	logger.Info("starting game", "frontend", flagFrontend, "mode", mode, "width", width, "height", height, "tick_rate", rt.TickRate)

	switch flagFrontend {
	case frontendTcell:
		err = playConsole(game, rt, store, sound, mode, logger)
	default:
		opts := tui.Options{Mode: mode, Player: playerName(), Logger: logger}
		if store != nil {
			opts.Store = store
		}
		if sound != nil {
			opts.Sound = sound
		}
		err = tui.Run(game, rt, opts)
	}
	if err != nil {
		fatal("running game: %v", err)
	}
}

func playConsole(game *stardefender.Game, rt core.RuntimeConfig, store *storage.Store, sound *audio.Player, mode string, logger *log.Logger) error {
	screen, err := termfe.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	opts := termfe.Options{Logger: logger}
	if store != nil {
		opts.Recorder = storage.NewRecorder(store, mode, playerName(), logger)
	}
	if sound != nil {
		opts.Sound = sound
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return termfe.New(screen, game, rt, opts).Run(ctx)
}
