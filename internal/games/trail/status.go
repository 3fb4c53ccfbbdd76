package trail

import (
	"fmt"
	"math"
)

// Status is what the player should be told about the run. It is one of
// StatusIdle, StatusPlaying, StatusFailed or StatusComplete; renderers
// switch on the concrete type.
type Status interface {
	fmt.Stringer
	status()
}

// StatusIdle means the run has not been started yet.
type StatusIdle struct{}

// StatusPlaying means a level is in progress.
type StatusPlaying struct {
	Level    int
	TimeLeft float64
	Paused   bool
}

// StatusFailed means the level was lost and is waiting for a retry.
type StatusFailed struct {
	Level  int
	Reason FailReason
}

// StatusComplete means every level of the run has been cleared.
type StatusComplete struct {
	Levels int
	Score  int
}

func (StatusIdle) status()     {}
func (StatusPlaying) status()  {}
func (StatusFailed) status()   {}
func (StatusComplete) status() {}

func (StatusIdle) String() string {
	return "Press Enter to start"
}

func (s StatusPlaying) String() string {
	text := fmt.Sprintf("Level %d  Time left: %ds", s.Level, int(math.Ceil(math.Max(s.TimeLeft, 0))))
	if s.Paused {
		text += "  (paused)"
	}
	return text
}

func (s StatusFailed) String() string {
	switch s.Reason {
	case ReasonTimeout:
		return fmt.Sprintf("Time's up! Retry level %d", s.Level)
	case ReasonFell:
		return fmt.Sprintf("You fell! Retry level %d", s.Level)
	default:
		return fmt.Sprintf("Level %d failed", s.Level)
	}
}

func (s StatusComplete) String() string {
	return fmt.Sprintf("All %d levels complete! Score %d", s.Levels, s.Score)
}

// StatusOf derives the status from a run state.
func StatusOf(rs RunState) Status {
	switch rs.Phase {
	case PhasePlaying:
		return StatusPlaying{Level: rs.Level, TimeLeft: rs.TimeRemaining, Paused: rs.Paused}
	case PhaseLevelFailed:
		return StatusFailed{Level: rs.Level, Reason: rs.Reason}
	case PhaseGameComplete:
		return StatusComplete{Levels: rs.Cleared, Score: rs.Score}
	default:
		return StatusIdle{}
	}
}
