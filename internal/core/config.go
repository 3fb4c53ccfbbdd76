package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic level layouts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WithSeed returns a copy of c whose zero seed is replaced by now, so
// layouts differ from launch to launch unless a seed was asked for.
func (c RuntimeConfig) WithSeed(now time.Time) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// TickSeconds returns the duration of one simulation tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Level failed or run complete; waiting for retry/restart
	Paused   bool // Whether the game is paused
}

// EventKind identifies a gameplay event surfaced to the platform.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventLevelCleared
	EventLevelFailed
	EventRunComplete
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventLevelCleared:
		return "level_cleared"
	case EventLevelFailed:
		return "level_failed"
	case EventRunComplete:
		return "run_complete"
	default:
		return "unknown"
	}
}

// Event is a one-shot notification emitted by a game during a tick.
// Games never log or persist anything themselves; the platform consumes these.
type Event struct {
	Kind    EventKind
	Level   int
	Reason  string  // "timeout" or "fell" for EventLevelFailed
	Elapsed float64 // Seconds spent on the level
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
