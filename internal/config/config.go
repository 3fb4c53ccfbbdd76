// Package config provides YAML-based configuration loading and per-level
// difficulty scaling for the bike trail game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Validate for unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// BikeConfig contains all configuration for the bike trail game.
type BikeConfig struct {
	World      WorldConfig    `yaml:"world"`
	Player     PlayerConfig   `yaml:"player"`
	Physics    PhysicsConfig  `yaml:"physics"`
	Holes      HoleConfig     `yaml:"holes"`
	Obstacles  ObstacleConfig `yaml:"obstacles"`
	Timing     TimingConfig   `yaml:"timing"`
	Camera     CameraConfig   `yaml:"camera"`
	Difficulty ScalingConfig  `yaml:"difficulty"`
}

// WorldConfig defines level geometry in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	ViewWidth    float64 `yaml:"view_width"`
	ViewHeight   float64 `yaml:"view_height"`
	GroundHeight float64 `yaml:"ground_height"`
	GroundTile   float64 `yaml:"ground_tile"`
	EndOffset    float64 `yaml:"end_offset"`
	ClearMargin  float64 `yaml:"clear_margin"`
	FallMargin   float64 `yaml:"fall_margin"`
	LevelCount   int     `yaml:"level_count"`
}

// GroundTop returns the y coordinate of the ground surface.
func (w WorldConfig) GroundTop() float64 {
	return w.ViewHeight - w.GroundHeight
}

// EndMarker returns the x position of the end flag.
func (w WorldConfig) EndMarker() float64 {
	return w.Width - w.EndOffset
}

// PlayerConfig defines the bike body.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartOffset float64 `yaml:"start_offset"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Bounce      float64 `yaml:"bounce"`
}

// PhysicsConfig defines gravity and player speeds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // units/s², downward
	JumpImpulse  float64 `yaml:"jump_impulse"`  // units/s, applied upward
	LateralSpeed float64 `yaml:"lateral_speed"` // units/s while left/right is held
}

// CountScaling defines clamp(base + floor(level*per_level), min, max).
type CountScaling struct {
	Base     int     `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Min      int     `yaml:"min"`
	Max      int     `yaml:"max"`
}

// HoleConfig defines hole sizes and placement windows.
// Hole i of N is drawn from [StartOffset+i*IndexStep, Width-EndOffset-(N-i)*TailStep].
type HoleConfig struct {
	MinWidth    float64      `yaml:"min_width"`
	MaxWidth    float64      `yaml:"max_width"`
	StartOffset float64      `yaml:"start_offset"`
	IndexStep   float64      `yaml:"index_step"`
	EndOffset   float64      `yaml:"end_offset"`
	TailStep    float64      `yaml:"tail_step"`
	MinGround   float64      `yaml:"min_ground"`
	Count       CountScaling `yaml:"count"`
}

// ObstacleConfig defines decorative rocks.
type ObstacleConfig struct {
	Margin    float64      `yaml:"margin"`
	MinWidth  float64      `yaml:"min_width"`
	MaxWidth  float64      `yaml:"max_width"`
	MinHeight float64      `yaml:"min_height"`
	MaxHeight float64      `yaml:"max_height"`
	MaxLift   float64      `yaml:"max_lift"`
	Count     CountScaling `yaml:"count"`
}

// TimingConfig defines the per-level countdown.
type TimingConfig struct {
	LevelTime float64 `yaml:"level_time"` // seconds
}

// CameraConfig defines camera smoothing.
type CameraConfig struct {
	Lerp float64 `yaml:"lerp"` // 0 < lerp <= 1, fraction of the distance closed per frame
}

// ScalingConfig defines how forward speed grows with the level number.
type ScalingConfig struct {
	BaseSpeed float64 `yaml:"base_speed"`
	SpeedStep float64 `yaml:"speed_step"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate checks that the config can produce playable levels.
func (c BikeConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"world.width", c.World.Width},
		{"world.view_width", c.World.ViewWidth},
		{"world.view_height", c.World.ViewHeight},
		{"world.ground_height", c.World.GroundHeight},
		{"world.ground_tile", c.World.GroundTile},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_impulse", c.Physics.JumpImpulse},
		{"holes.min_width", c.Holes.MinWidth},
		{"timing.level_time", c.Timing.LevelTime},
		{"camera.lerp", c.Camera.Lerp},
		{"difficulty.base_speed", c.Difficulty.BaseSpeed},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.World.LevelCount < 1 || c.World.LevelCount > 99 {
		return fmt.Errorf("%w: world.level_count must be in [1, 99], got %d", ErrInvalidConfig, c.World.LevelCount)
	}
	if c.World.GroundHeight >= c.World.ViewHeight {
		return fmt.Errorf("%w: world.ground_height must be below view_height", ErrInvalidConfig)
	}
	if c.World.EndOffset <= c.World.ClearMargin || c.World.EndOffset >= c.World.Width {
		return fmt.Errorf("%w: world.end_offset must be in (clear_margin, width)", ErrInvalidConfig)
	}
	if c.Camera.Lerp > 1 {
		return fmt.Errorf("%w: camera.lerp must be <= 1, got %v", ErrInvalidConfig, c.Camera.Lerp)
	}
	if c.Holes.MaxWidth < c.Holes.MinWidth {
		return fmt.Errorf("%w: holes.max_width < holes.min_width", ErrInvalidConfig)
	}
	if c.Obstacles.MaxWidth < c.Obstacles.MinWidth || c.Obstacles.MaxHeight < c.Obstacles.MinHeight {
		return fmt.Errorf("%w: obstacle size range is inverted", ErrInvalidConfig)
	}
	if err := c.Holes.Count.validate("holes.count"); err != nil {
		return err
	}
	if err := c.Obstacles.Count.validate("obstacles.count"); err != nil {
		return err
	}

	// Every hole must fit between the start offset and the clear line
	// even when each one is drawn at maximum width.
	n := float64(c.Holes.Count.At(c.World.LevelCount))
	need := c.Holes.StartOffset + n*(c.Holes.MaxWidth+c.Holes.MinGround)
	if need > c.World.EndMarker()-c.World.ClearMargin {
		return fmt.Errorf("%w: %v holes of up to %v units do not fit in a %v unit level",
			ErrInvalidConfig, n, c.Holes.MaxWidth, c.World.Width)
	}

	return nil
}

func (s CountScaling) validate(name string) error {
	if s.Min < 0 || s.Max < s.Min {
		return fmt.Errorf("%w: %s range [%d, %d] is invalid", ErrInvalidConfig, name, s.Min, s.Max)
	}
	return nil
}
