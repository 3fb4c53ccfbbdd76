package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBike loads the bike trail configuration.
// Search order: customPath -> ~/.biketrail/configs/bike.yaml -> ./configs/bike.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial YAML only overrides what it names.
func LoadBike(customPath string) (BikeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config, then local config; broken files are skipped like missing ones
	candidates := []string{userConfigPath("bike.yaml"), filepath.Join("configs", "bike.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultBikeConfig()
	if err := yaml.Unmarshal(defaultBikeYAML, &cfg); err != nil {
		return DefaultBikeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a YAML file on top of the default config.
func loadFile(path string) (BikeConfig, error) {
	cfg := DefaultBikeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".biketrail", "configs", filename)
}

// ApplyBikePreset modifies the config based on a difficulty preset.
func ApplyBikePreset(cfg *BikeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.LevelTime *= 1.5
		cfg.Physics.LateralSpeed += 20
	case DifficultyHard:
		cfg.Timing.LevelTime *= 0.75
		cfg.Difficulty.SpeedStep *= 1.5
	case DifficultyFixed:
		cfg.Difficulty.SpeedStep = 0
	}
}
