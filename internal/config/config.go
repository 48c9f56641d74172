// Package config provides YAML-based game configuration loading and
// difficulty management for Star Defender.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tunable gameplay parameters.
type GameConfig struct {
	TickRate   int              `yaml:"tick_rate"`
	Arena      ArenaConfig      `yaml:"arena"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the playfield size in tiles.
// A zero width/height means the frontend decides (terminal size or window grid).
type ArenaConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MaxWidth  int `yaml:"max_width"`  // Cap when the size comes from the terminal
	MaxHeight int `yaml:"max_height"` // Cap when the size comes from the terminal
}

// SpawnConfig defines how often enemies appear.
type SpawnConfig struct {
	Interval          int `yaml:"interval"`           // Ticks between spawns at level 0
	MinInterval       int `yaml:"min_interval"`       // Lower bound at any level
	IntervalReduction int `yaml:"interval_reduction"` // Ticks removed at max difficulty
}

// EnemyConfig defines enemy movement.
type EnemyConfig struct {
	StepTicks int `yaml:"step_ticks"` // Enemies descend one row every N ticks
}

// BulletConfig defines player projectile limits.
type BulletConfig struct {
	Max int `yaml:"max"` // Maximum live bullets, 0 = unlimited
}

// ScoringConfig defines points.
type ScoringConfig struct {
	PointsPerHit int `yaml:"points_per_hit"`
}

// EffectsConfig toggles cosmetic effects.
type EffectsConfig struct {
	Particles       bool `yaml:"particles"`
	ParticlesPerHit int  `yaml:"particles_per_hit"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// Validate checks that the configuration can drive a game.
func (c GameConfig) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Arena.Width < 0 || c.Arena.Height < 0 {
		errs = append(errs, fmt.Errorf("arena size must not be negative, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval must be positive, got %d", c.Spawn.Interval))
	}
	if c.Spawn.MinInterval <= 0 || c.Spawn.MinInterval > c.Spawn.Interval {
		errs = append(errs, fmt.Errorf("spawn.min_interval must be in [1, %d], got %d", c.Spawn.Interval, c.Spawn.MinInterval))
	}
	if c.Enemy.StepTicks <= 0 {
		errs = append(errs, fmt.Errorf("enemy.step_ticks must be positive, got %d", c.Enemy.StepTicks))
	}
	if c.Bullet.Max < 0 {
		errs = append(errs, fmt.Errorf("bullet.max must not be negative, got %d", c.Bullet.Max))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %g", c.Difficulty.InitialLevel))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid game config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty input
// returns an empty preset, which keeps the config file's values.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ModeName returns the label scores are stored under.
func (p DifficultyPreset) ModeName() string {
	if p == "" {
		return "default"
	}
	return string(p)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
