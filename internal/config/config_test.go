package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BikeConfig
	if err := yaml.Unmarshal(defaultBikeYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultBikeConfig() {
		t.Errorf("embedded YAML differs from DefaultBikeConfig()\nyaml: %+v\ncode: %+v", fromYAML, DefaultBikeConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBikeConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BikeConfig)
	}{
		{"zero width", func(c *BikeConfig) { c.World.Width = 0 }},
		{"no levels", func(c *BikeConfig) { c.World.LevelCount = 0 }},
		{"inverted hole widths", func(c *BikeConfig) { c.Holes.MaxWidth = c.Holes.MinWidth - 1 }},
		{"inverted rock heights", func(c *BikeConfig) { c.Obstacles.MaxHeight = 1 }},
		{"inverted count clamp", func(c *BikeConfig) { c.Holes.Count.Max = 1 }},
		{"lerp above one", func(c *BikeConfig) { c.Camera.Lerp = 2 }},
		{"ground taller than view", func(c *BikeConfig) { c.World.GroundHeight = 600 }},
		{"holes do not fit", func(c *BikeConfig) { c.World.Width = 900 }},
		{"end flag inside clear margin", func(c *BikeConfig) { c.World.EndOffset = 10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBikeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadBikeCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bike.yaml")
	data := []byte("timing:\n  level_time: 45\ndifficulty:\n  speed_step: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBike(path)
	if err != nil {
		t.Fatalf("LoadBike() failed: %v", err)
	}
	if cfg.Timing.LevelTime != 45 {
		t.Errorf("LevelTime = %v, expected 45", cfg.Timing.LevelTime)
	}
	if cfg.Difficulty.SpeedStep != 20 {
		t.Errorf("SpeedStep = %v, expected 20", cfg.Difficulty.SpeedStep)
	}
	// Untouched fields keep their defaults
	if cfg.World.Width != 2200 {
		t.Errorf("Width = %v, expected default 2200", cfg.World.Width)
	}
}

func TestLoadBikeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBike(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBike(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  level_count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBike(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplyBikePreset(t *testing.T) {
	easy := DefaultBikeConfig()
	ApplyBikePreset(&easy, DifficultyEasy)
	if easy.Timing.LevelTime != 90 {
		t.Errorf("easy LevelTime = %v, expected 90", easy.Timing.LevelTime)
	}

	hard := DefaultBikeConfig()
	ApplyBikePreset(&hard, DifficultyHard)
	if hard.Timing.LevelTime != 45 || hard.Difficulty.SpeedStep != 15 {
		t.Errorf("hard preset = time %v step %v", hard.Timing.LevelTime, hard.Difficulty.SpeedStep)
	}

	fixed := DefaultBikeConfig()
	ApplyBikePreset(&fixed, DifficultyFixed)
	s := NewLevelScaling(fixed)
	if s.ForwardSpeed(10) != s.ForwardSpeed(1) {
		t.Error("fixed preset should keep the forward speed constant")
	}

	normal := DefaultBikeConfig()
	ApplyBikePreset(&normal, DifficultyNormal)
	if normal != DefaultBikeConfig() {
		t.Error("normal preset should not change the config")
	}
}
