package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-defender/internal/audio"
	"github.com/vovakirdan/star-defender/internal/games/stardefender"
	"github.com/vovakirdan/star-defender/internal/platform/window"
	"github.com/vovakirdan/star-defender/internal/storage"
)

var (
	flagAssets       string
	flagWindowWidth  int
	flagWindowHeight int
	flagWindowMute   bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a graphical window",
	Long: `Start Star Defender in a window.

Textures (player_128.png, enemy_128.png, bullet_128.png, background.png) and
fonts (Pixel Game.otf, Pixel Game Extrude.otf) are read from --assets.
Missing files are logged and drawn with plain shapes and the debug font.

Controls:
  A/D, Left/Right - Move (hold)
  Space           - Fire / start
  Enter           - Start
  Esc/P           - Pause
  B               - Back to menu (while paused)
  R               - Restart (after game over)
  M               - Toggle sound
  Q               - Quit

Examples:
  stardefender window
  stardefender window --assets ./assets --difficulty easy
  STARDEFENDER_ASSETS=/usr/share/stardefender stardefender window`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", window.DefaultAssetDir, "Directory with textures and fonts")
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", window.DefaultHeight, "Window height in pixels")
	windowCmd.Flags().BoolVar(&flagWindowMute, "mute", false, "Disable sound")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Sound volume from 0 to 1")
}

func runWindow(cmd *cobra.Command, _ []string) {
	gameCfg, mode, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	// The window sizes the grid from its pixels
	gameCfg.Arena.Width, gameCfg.Arena.Height = 0, 0

	logger, closer := openLogger("stardefender", os.Stderr)
	defer closer.Close()

	rt := runtimeConfig(gameCfg, flagWindowWidth, flagWindowHeight, cmd.Flags().Changed("fps"))
	opts := window.Options{
		Width:    flagWindowWidth,
		Height:   flagWindowHeight,
		AssetDir: flagAssets,
		Logger:   logger,
	}

	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Recorder = storage.NewRecorder(store, mode, playerName(), logger)
	}
	if !flagWindowMute {
		sound := startSound(logger)
		defer sound.Close()
		opts.Sound = sound
	}

	if err := window.Run(stardefender.New(gameCfg), rt, opts); err != nil {
		fatal("%v", err)
	}
}
