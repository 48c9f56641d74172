package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/star-defender/internal/audio"
	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/logging"
	"github.com/vovakirdan/star-defender/internal/storage"
)

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadGameConfig reads the config file and applies --difficulty.
// It returns the config and the mode scores are filed under.
func loadGameConfig() (config.GameConfig, string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return cfg, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset.ModeName(), nil
}

// runtimeConfig builds the runtime config for a screen of the given size.
// --fps overrides the config file's tick rate only when set.
func runtimeConfig(cfg config.GameConfig, screenW, screenH int, fpsSet bool) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if screenW > 0 && screenH > 0 {
		rt.ScreenW, rt.ScreenH = screenW, screenH
	}
	rt.TickRate = cfg.TickRate
	if fpsSet || rt.TickRate <= 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}

// startSound opens the speaker at --volume. The returned player is usable
// even when no sound device exists.
func startSound(logger *log.Logger) *audio.Player {
	sound := audio.NewPlayer(logger)
	sound.SetVolume(flagVolume)
	sound.Start()
	logger.Debug("audio", "enabled", sound.Enabled(), "volume", flagVolume)
	return sound
}

// terminalSize returns the size of the terminal on stdout, or the default
// 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	def := core.DefaultConfig()
	return def.ScreenW, def.ScreenH
}

// openLogger opens the logger from the global flags. fallback receives
// output when no --log-file is given.
func openLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer) {
	logger, closer, err := logging.Open(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: prefix,
	}, fallback)
	if err != nil {
		fatal("%v", err)
	}
	return logger, closer
}

// openStore opens the score database. A failure is logged and the game runs
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// playerName returns the local user name for score entries.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
