package trail

import "github.com/vovakirdan/biketrail/internal/core"

// Phase is the run's position in the level progression state machine.
// A cleared level is not a phase: it is reported as an event and the run
// moves straight on to the next level or to PhaseGameComplete.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseLevelFailed
	PhaseGameComplete
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseLevelFailed:
		return "level_failed"
	case PhaseGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// FailReason says why a level was failed.
type FailReason int

const (
	ReasonNone FailReason = iota
	ReasonTimeout
	ReasonFell
)

// String returns the reason name used in events and storage.
func (r FailReason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonFell:
		return "fell"
	default:
		return "none"
	}
}

// RunState is the whole progression state of a run. It is a plain value:
// transitions return a new RunState and never touch the level or physics.
type RunState struct {
	StartLevel int // first level of the run
	LastLevel  int // clearing this level completes the run

	Level         int
	TimeRemaining float64
	Phase         Phase
	Reason        FailReason
	Paused        bool

	Cleared int     // levels cleared in this run
	Score   int     // sum of clear bonuses
	Elapsed float64 // seconds spent on the current level
}

// NewRunState returns an idle run covering levels [start, last], with
// the timer primed for the first level.
func NewRunState(start, last int, levelTime float64) RunState {
	if last < start {
		last = start
	}
	return RunState{
		StartLevel:    start,
		LastLevel:     last,
		Level:         start,
		TimeRemaining: levelTime,
		Phase:         PhaseIdle,
	}
}

// IsRunning reports whether frames should advance the simulation.
func (rs RunState) IsRunning() bool {
	return rs.Phase == PhasePlaying && !rs.Paused
}

// Start handles the start/retry/restart trigger:
//
//	Idle         -> Playing on the current level
//	LevelFailed  -> Playing on the same level (retry)
//	GameComplete -> Playing on the start level, as a new run
//
// The second result is false when the trigger does nothing (already playing).
func (rs RunState) Start(levelTime float64) (RunState, bool) {
	switch rs.Phase {
	case PhaseIdle, PhaseLevelFailed:
		// keep level and progress
	case PhaseGameComplete:
		rs.Level = rs.StartLevel
		rs.Cleared = 0
		rs.Score = 0
	default:
		return rs, false
	}
	rs.Phase = PhasePlaying
	rs.Reason = ReasonNone
	rs.Paused = false
	rs.TimeRemaining = levelTime
	rs.Elapsed = 0
	return rs, true
}

// TogglePause flips the pause flag. Only a playing run can be paused.
func (rs RunState) TogglePause() RunState {
	if rs.Phase == PhasePlaying {
		rs.Paused = !rs.Paused
	}
	return rs
}

// Advance counts elapsed seconds off the level timer.
func (rs RunState) Advance(elapsed float64) RunState {
	rs.TimeRemaining -= elapsed
	rs.Elapsed += elapsed
	return rs
}

// Fail moves a playing run to PhaseLevelFailed.
func (rs RunState) Fail(reason FailReason) RunState {
	if rs.Phase != PhasePlaying {
		return rs
	}
	rs.Phase = PhaseLevelFailed
	rs.Reason = reason
	rs.Paused = false
	return rs
}

// Clear credits the current level and moves on. The run either continues
// on the next level with a fresh timer or ends in PhaseGameComplete.
// The returned bonus is the score awarded for the clear.
func (rs RunState) Clear(levelTime float64) (RunState, int) {
	if rs.Phase != PhasePlaying {
		return rs, 0
	}
	bonus := ClearBonus(rs.TimeRemaining)
	rs.Score += bonus
	rs.Cleared++

	if rs.Level >= rs.LastLevel {
		rs.Phase = PhaseGameComplete
		return rs, bonus
	}
	rs.Level++
	rs.TimeRemaining = levelTime
	rs.Elapsed = 0
	return rs, bonus
}

// ClearBonus is 100 points plus 10 for every started second left on the clock.
func ClearBonus(timeLeft float64) int {
	if timeLeft < 0 {
		timeLeft = 0
	}
	return 100 + 10*core.CeilInt(timeLeft)
}
