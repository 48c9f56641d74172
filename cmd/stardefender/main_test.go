package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newFlagCmd() (*cobra.Command, *string, *int) {
	var db string
	var fps int
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&db, "db", "default.db", "")
	cmd.Flags().IntVar(&fps, "fps", 12, "")
	return cmd, &db, &fps
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantDB  string
		wantFPS int
		wantErr bool
	}{
		{"no env", nil, nil, "default.db", 12, false},
		{"env fills defaults", nil, map[string]string{"STARDEFENDER_DB": "env.db", "STARDEFENDER_FPS": "20"}, "env.db", 20, false},
		{"flag wins over env", []string{"--db", "flag.db"}, map[string]string{"STARDEFENDER_DB": "env.db"}, "flag.db", 12, false},
		{"empty env ignored", nil, map[string]string{"STARDEFENDER_DB": ""}, "default.db", 12, false},
		{"bad int", nil, map[string]string{"STARDEFENDER_FPS": "fast"}, "default.db", 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, db, fps := newFlagCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			lookup := func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			}
			err := applyEnvFrom(cmd, lookup)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyEnvFrom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if *db != tt.wantDB {
				t.Errorf("db = %q, want %q", *db, tt.wantDB)
			}
			if *fps != tt.wantFPS {
				t.Errorf("fps = %d, want %d", *fps, tt.wantFPS)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sd.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 15\nspawn:\n  interval: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		config     string
		difficulty string
		wantMode   string
		wantRate   int
		wantErr    bool
	}{
		{"custom file", path, "", "default", 15, false},
		{"preset", path, "hard", "hard", 15, false},
		{"fixed", path, "fixed", "fixed", 15, false},
		{"unknown preset", path, "insane", "", 0, true},
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), "", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagConfig, flagDifficulty = tt.config, tt.difficulty
			t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

			cfg, mode, err := loadGameConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadGameConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if mode != tt.wantMode {
				t.Errorf("mode = %q, want %q", mode, tt.wantMode)
			}
			if cfg.TickRate != tt.wantRate {
				t.Errorf("tick rate = %d, want %d", cfg.TickRate, tt.wantRate)
			}
			if tt.difficulty == "fixed" && cfg.Difficulty.Enabled {
				t.Error("fixed preset should disable progression")
			}
		})
	}
}

func TestRuntimeConfig(t *testing.T) {
	flagFPS, flagSeed = 30, 99
	t.Cleanup(func() { flagFPS, flagSeed = 12, 0 })

	cfg, _, err := loadGameConfig()
	if err != nil {
		t.Fatal(err)
	}
	cfg.TickRate = 15

	if rt := runtimeConfig(cfg, 100, 40, false); rt.TickRate != 15 {
		t.Errorf("tick rate without --fps = %d, want config's 15", rt.TickRate)
	}
	rt := runtimeConfig(cfg, 100, 40, true)
	if rt.TickRate != 30 || rt.Seed != 99 || rt.ScreenW != 100 || rt.ScreenH != 40 {
		t.Errorf("runtimeConfig = %+v", rt)
	}
	if rt := runtimeConfig(cfg, 0, 0, false); rt.ScreenW != 80 || rt.ScreenH != 24 {
		t.Errorf("unsized runtimeConfig = %dx%d, want 80x24", rt.ScreenW, rt.ScreenH)
	}
}

func TestTerminalSizeFallback(t *testing.T) {
	w, h := terminalSize()
	if w <= 0 || h <= 0 {
		t.Errorf("terminalSize() = %dx%d", w, h)
	}
}

func TestPlayerName(t *testing.T) {
	if playerName() == "" {
		t.Error("playerName() is empty")
	}
}

func TestStartSoundWithoutDevice(t *testing.T) {
	flagVolume = 2
	t.Cleanup(func() { flagVolume = 0.5 })

	sound := startSound(log.New(io.Discard))
	if sound == nil {
		t.Fatal("startSound() = nil")
	}
	defer sound.Close()
	sound.ToggleMute()
	if sound.Enabled() {
		t.Error("muted player reports enabled")
	}
}
