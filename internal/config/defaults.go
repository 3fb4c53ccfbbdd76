package config

import (
	_ "embed"
)

//go:embed defaults/bike.yaml
var defaultBikeYAML []byte

// DefaultBikeConfig returns the hard-coded default configuration.
// It mirrors defaults/bike.yaml and is used when the embedded YAML cannot be parsed.
func DefaultBikeConfig() BikeConfig {
	return BikeConfig{
		World: WorldConfig{
			Width:        2200,
			ViewWidth:    900,
			ViewHeight:   500,
			GroundHeight: 64,
			GroundTile:   160,
			EndOffset:    80,
			ClearMargin:  50,
			FallMargin:   200,
			LevelCount:   10,
		},
		Player: PlayerConfig{
			StartX:      120,
			StartOffset: 120,
			Width:       48,
			Height:      30,
			Bounce:      0.05,
		},
		Physics: PhysicsConfig{
			Gravity:      900,
			JumpImpulse:  480,
			LateralSpeed: 160,
		},
		Holes: HoleConfig{
			MinWidth:    80,
			MaxWidth:    160,
			StartOffset: 200,
			IndexStep:   140,
			EndOffset:   200,
			TailStep:    80,
			MinGround:   40,
			Count: CountScaling{
				Base:     3,
				PerLevel: 0.6,
				Min:      3,
				Max:      12,
			},
		},
		Obstacles: ObstacleConfig{
			Margin:    120,
			MinWidth:  16,
			MaxWidth:  40,
			MinHeight: 8,
			MaxHeight: 20,
			MaxLift:   10,
			Count: CountScaling{
				Base:     6,
				PerLevel: 1,
				Min:      6,
				Max:      30,
			},
		},
		Timing: TimingConfig{
			LevelTime: 60,
		},
		Camera: CameraConfig{
			Lerp: 0.05,
		},
		Difficulty: ScalingConfig{
			BaseSpeed: 180,
			SpeedStep: 10,
		},
	}
}
