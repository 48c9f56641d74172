package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default YAML should parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded YAML and DefaultGameConfig differ:\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("spawn:\n  interval: 20\nscoring:\n  points_per_hit: 25\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Spawn.Interval != 20 {
		t.Errorf("spawn.interval = %d, expected 20", cfg.Spawn.Interval)
	}
	if cfg.Scoring.PointsPerHit != 25 {
		t.Errorf("points_per_hit = %d, expected 25", cfg.Scoring.PointsPerHit)
	}
	// Untouched values keep defaults
	if cfg.Enemy.StepTicks != 2 {
		t.Errorf("enemy.step_ticks = %d, expected default 2", cfg.Enemy.StepTicks)
	}
	if cfg.TickRate != 12 {
		t.Errorf("tick_rate = %d, expected default 12", cfg.TickRate)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero tick rate", "tick_rate: 0\n", "tick_rate"},
		{"negative arena", "arena:\n  width: -1\n", "arena size"},
		{"zero spawn interval", "spawn:\n  interval: 0\n", "spawn.interval"},
		{"min above interval", "spawn:\n  interval: 5\n  min_interval: 9\n", "min_interval"},
		{"zero enemy step", "enemy:\n  step_ticks: 0\n", "step_ticks"},
		{"bad progression", "difficulty:\n  progression:\n    type: lunar\n", "progression.type"},
		{"bad level", "difficulty:\n  initial_level: 2\n", "initial_level"},
		{"not yaml", "tick_rate: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  step_ticks: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Enemy.StepTicks != 4 {
		t.Errorf("step_ticks = %d, expected 4", cfg.Enemy.StepTicks)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if cfg.Spawn.Interval != DefaultGameConfig().Spawn.Interval {
		t.Error("defaults should be returned alongside the error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		stepTicks   int
		maxBullets  int
		minInterval int
	}{
		{DifficultyEasy, true, 0.0, 3, 0, 10},
		{DifficultyNormal, true, 0.3, 2, 0, 10},
		{DifficultyHard, true, 0.7, 2, 3, 6},
		{DifficultyFixed, false, 0.0, 2, 0, 10},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Enemy.StepTicks != tc.stepTicks {
				t.Errorf("StepTicks = %d, expected %d", cfg.Enemy.StepTicks, tc.stepTicks)
			}
			if cfg.Bullet.Max != tc.maxBullets {
				t.Errorf("Bullet.Max = %d, expected %d", cfg.Bullet.Max, tc.maxBullets)
			}
			if cfg.Spawn.MinInterval != tc.minInterval {
				t.Errorf("MinInterval = %d, expected %d", cfg.Spawn.MinInterval, tc.minInterval)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestApplyEmptyPresetKeepsConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Difficulty.InitialLevel = 0.5
	ApplyPreset(&cfg, "")
	if cfg.Difficulty.InitialLevel != 0.5 {
		t.Error("empty preset should not modify the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse as empty")
	}
	if DifficultyPreset("").ModeName() != "default" {
		t.Error("empty preset should be stored as default mode")
	}
	if DifficultyEasy.ModeName() != "easy" {
		t.Error("easy preset mode name should be easy")
	}
}
