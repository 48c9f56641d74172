package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config dirs.
const ConfigFileName = "stardefender.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.stardefender/configs/stardefender.yaml ->
// ./configs/stardefender.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first; errors here are the user's to fix
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stardefender", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.StepTicks = 3
		cfg.Spawn.Interval = 36
	case DifficultyHard:
		cfg.Enemy.StepTicks = 2
		cfg.Spawn.MinInterval = 6
		cfg.Bullet.Max = 3
	}
	if cfg.Spawn.MinInterval > cfg.Spawn.Interval {
		cfg.Spawn.MinInterval = cfg.Spawn.Interval
	}
}
