package config

import (
	_ "embed"
)

//go:embed defaults/stardefender.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration. It matches the
// embedded YAML and is used when that cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TickRate: 12,
		Arena: ArenaConfig{
			Width:     0,
			Height:    0,
			MaxWidth:  40,
			MaxHeight: 20,
		},
		Spawn: SpawnConfig{
			Interval:          30,
			MinInterval:       10,
			IntervalReduction: 20,
		},
		Enemy: EnemyConfig{
			StepTicks: 2,
		},
		Bullet: BulletConfig{
			Max: 0,
		},
		Scoring: ScoringConfig{
			PointsPerHit: 10,
		},
		Effects: EffectsConfig{
			Particles:       true,
			ParticlesPerHit: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
		},
	}
}

// DefaultYAML returns the embedded default config file, used by
// `stardefender config` to print a starting point for custom configs.
func DefaultYAML() []byte {
	return defaultGameYAML
}
