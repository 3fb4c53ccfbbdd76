package config

import "math"

// At returns the count for the given level number.
func (s CountScaling) At(level int) int {
	n := s.Base + int(math.Floor(float64(level)*s.PerLevel))
	return clampInt(n, s.Min, s.Max)
}

// LevelScaling derives per-level parameters from the config. Counts are
// deterministic in the level number; only placement is randomized.
type LevelScaling struct {
	cfg BikeConfig
}

// NewLevelScaling creates a scaling helper for the given config.
func NewLevelScaling(cfg BikeConfig) *LevelScaling {
	return &LevelScaling{cfg: cfg}
}

// LevelCount returns the number of levels in a run.
func (s *LevelScaling) LevelCount() int {
	return s.cfg.World.LevelCount
}

// ClampLevel restricts a level number to [1, LevelCount].
func (s *LevelScaling) ClampLevel(level int) int {
	return clampInt(level, 1, s.cfg.World.LevelCount)
}

// HoleCount returns the number of holes on the given level.
func (s *LevelScaling) HoleCount(level int) int {
	return s.cfg.Holes.Count.At(level)
}

// ObstacleCount returns the number of decorative rocks on the given level.
func (s *LevelScaling) ObstacleCount(level int) int {
	return s.cfg.Obstacles.Count.At(level)
}

// ForwardSpeed returns the automatic forward speed on the given level.
func (s *LevelScaling) ForwardSpeed(level int) float64 {
	return s.cfg.Difficulty.BaseSpeed + float64(level-1)*s.cfg.Difficulty.SpeedStep
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
