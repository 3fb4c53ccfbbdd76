package trail

import (
	"math"
	"testing"

	"github.com/vovakirdan/biketrail/internal/config"
	"github.com/vovakirdan/biketrail/internal/core"
)

const frame = 1.0 / 60.0

func newTestSession(t *testing.T, first, last int) *Session {
	t.Helper()
	return NewSession(config.DefaultBikeConfig(), 1, first, last)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// started returns a session that has taken its start trigger.
func started(t *testing.T, first, last int) *Session {
	t.Helper()
	s := newTestSession(t, first, last)
	fx := s.Tick(frame, input(core.ActionStart))
	if s.Run().Phase != PhasePlaying {
		t.Fatalf("start trigger left phase at %v", s.Run().Phase)
	}
	if len(fx.Events) != 1 || fx.Events[0].Kind != core.EventLevelStarted || fx.Events[0].Level != first {
		t.Fatalf("start events = %+v", fx.Events)
	}
	return s
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestEvaluateOrder(t *testing.T) {
	playing := RunState{Phase: PhasePlaying, TimeRemaining: 10}
	expired := RunState{Phase: PhasePlaying, TimeRemaining: -0.5}
	limits := Probe{ClearX: 2070, FallY: 700}

	tests := []struct {
		name string
		rs   RunState
		x, y float64
		want Outcome
	}{
		{"nothing", playing, 500, 400, OutcomeNone},
		{"timeout beats clear and fall", expired, 2100, 800, OutcomeTimeout},
		{"clear beats fall", playing, 2071, 800, OutcomeCleared},
		{"fall", playing, 500, 701, OutcomeFell},
		{"exactly at clear line", playing, 2070, 400, OutcomeNone},
		{"not playing", RunState{Phase: PhaseLevelFailed}, 2100, 800, OutcomeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := limits
			p.X, p.Y = tt.x, tt.y
			if got := Evaluate(tt.rs, p); got != tt.want {
				t.Errorf("Evaluate() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestIdleTickDoesNothing(t *testing.T) {
	s := newTestSession(t, 1, 10)
	x := s.Bike().X

	in := core.NewInputFrame()
	in.Tap(0)
	in.Set(core.ActionRight)
	fx := s.Tick(1.0, in)

	if _, ok := fx.Status.(StatusIdle); !ok {
		t.Fatalf("status = %v, expected idle", fx.Status)
	}
	if s.Run().TimeRemaining != 60 {
		t.Errorf("timer ran while idle: %v", s.Run().TimeRemaining)
	}
	if s.Bike().X != x {
		t.Errorf("bike moved while idle")
	}
	if len(fx.Events) != 0 {
		t.Errorf("idle tick produced events: %+v", fx.Events)
	}
}

func TestStartDoesNotSimulateSameTick(t *testing.T) {
	s := newTestSession(t, 1, 10)
	fx := s.Tick(0.5, input(core.ActionStart))

	if fx.PlayerX != 120 {
		t.Errorf("bike moved on the start tick: x=%v", fx.PlayerX)
	}
	if s.Run().TimeRemaining != 60 {
		t.Errorf("timer ran on the start tick: %v", s.Run().TimeRemaining)
	}
}

// Scenario: a 60.5 s frame on a fresh 60 s level times out.
func TestTimeoutFailsLevel(t *testing.T) {
	s := started(t, 1, 10)

	fx := s.Tick(60.5, core.NewInputFrame())

	rs := s.Run()
	if rs.Phase != PhaseLevelFailed || rs.Reason != ReasonTimeout {
		t.Fatalf("phase %v reason %v, expected level_failed timeout", rs.Phase, rs.Reason)
	}
	if rs.TimeRemaining > 0 {
		t.Errorf("TimeRemaining = %v, expected <= 0", rs.TimeRemaining)
	}
	if len(fx.Events) != 1 || fx.Events[0].Kind != core.EventLevelFailed || fx.Events[0].Reason != "timeout" {
		t.Errorf("events = %+v, expected a single timeout failure", fx.Events)
	}
	if s, ok := fx.Status.(StatusFailed); !ok || s.Reason != ReasonTimeout || s.Level != 1 {
		t.Errorf("status = %#v", fx.Status)
	}
}

// Scenario: one forward step past end-50 clears the level.
func TestPassingEndClearsLevel(t *testing.T) {
	s := started(t, 1, 10)
	s.Bike().X = s.Level().EndMarker - 51

	fx := s.Tick(frame, core.NewInputFrame())

	rs := s.Run()
	if rs.Level != 2 || rs.Phase != PhasePlaying {
		t.Fatalf("level %d phase %v, expected level 2 playing", rs.Level, rs.Phase)
	}
	if rs.TimeRemaining != 60 {
		t.Errorf("timer not reset for the next level: %v", rs.TimeRemaining)
	}
	if rs.Score != 700 {
		t.Errorf("Score = %d, expected 700", rs.Score)
	}
	if !hasEvent(fx.Events, core.EventLevelCleared) || !hasEvent(fx.Events, core.EventLevelStarted) {
		t.Errorf("events = %+v, expected cleared then started", fx.Events)
	}
	if s.Level().Number != 2 || s.Level().HoleCount != 4 {
		t.Errorf("next level spec: number %d holes %d", s.Level().Number, s.Level().HoleCount)
	}
	if s.Bike().X != 120 {
		t.Errorf("bike not returned to the start: x=%v", s.Bike().X)
	}
}

func TestClearingLastLevelCompletesRun(t *testing.T) {
	s := started(t, 10, 10)
	s.Bike().X = s.Level().EndMarker - 51

	fx := s.Tick(frame, core.NewInputFrame())

	if s.Run().Phase != PhaseGameComplete {
		t.Fatalf("phase = %v, expected game_complete", s.Run().Phase)
	}
	if !hasEvent(fx.Events, core.EventRunComplete) {
		t.Errorf("events = %+v, expected run_complete", fx.Events)
	}
	if hasEvent(fx.Events, core.EventLevelStarted) {
		t.Error("no level should start after the last one")
	}
	if _, ok := fx.Status.(StatusComplete); !ok {
		t.Errorf("status = %v, expected complete", fx.Status)
	}
}

// Scenario: dropping below the world fails the level regardless of the timer.
func TestFallingFailsLevel(t *testing.T) {
	s := started(t, 1, 10)
	s.Bike().Y = s.Config().World.ViewHeight + 201

	fx := s.Tick(frame, core.NewInputFrame())

	rs := s.Run()
	if rs.Phase != PhaseLevelFailed || rs.Reason != ReasonFell {
		t.Fatalf("phase %v reason %v, expected level_failed fell", rs.Phase, rs.Reason)
	}
	if rs.TimeRemaining <= 59 {
		t.Errorf("TimeRemaining = %v, expected the timer to be nearly full", rs.TimeRemaining)
	}
	if len(fx.Events) != 1 || fx.Events[0].Reason != "fell" {
		t.Errorf("events = %+v", fx.Events)
	}
}

func TestOneTransitionPerFrame(t *testing.T) {
	s := started(t, 1, 10)
	s.run.TimeRemaining = 0.001
	s.Bike().X = s.Level().EndMarker - 51
	s.Bike().Y = 900

	fx := s.Tick(frame, core.NewInputFrame())

	if s.Run().Reason != ReasonTimeout {
		t.Errorf("reason = %v, expected timeout to win", s.Run().Reason)
	}
	if len(fx.Events) != 1 {
		t.Errorf("events = %+v, expected exactly one", fx.Events)
	}

	s = started(t, 1, 10)
	s.Bike().X = s.Level().EndMarker - 51
	s.Bike().Y = 900
	s.Tick(frame, core.NewInputFrame())
	if s.Run().Phase != PhasePlaying || s.Run().Level != 2 {
		t.Errorf("clear should win over fall: phase %v level %d", s.Run().Phase, s.Run().Level)
	}
}

func TestRetryRegeneratesSameLevel(t *testing.T) {
	s := started(t, 3, 10)
	s.Bike().Y = 900
	s.Tick(frame, core.NewInputFrame())
	if s.Run().Phase != PhaseLevelFailed {
		t.Fatalf("setup: phase = %v", s.Run().Phase)
	}

	// Jumping does not retry
	s.Tick(frame, input(core.ActionJump))
	if s.Run().Phase != PhaseLevelFailed {
		t.Fatal("jump should not leave the failed state")
	}

	fx := s.Tick(frame, input(core.ActionStart))

	rs := s.Run()
	if rs.Phase != PhasePlaying || rs.Level != 3 {
		t.Fatalf("after retry: phase %v level %d, expected playing level 3", rs.Phase, rs.Level)
	}
	if rs.TimeRemaining != 60 {
		t.Errorf("timer = %v, expected 60", rs.TimeRemaining)
	}
	if s.Level().Number != 3 || s.Level().HoleCount != 4 {
		t.Errorf("regenerated level %d with %d holes, expected level 3 with 4", s.Level().Number, s.Level().HoleCount)
	}
	if s.Bike().X != 120 || s.Bike().Y != 380 {
		t.Errorf("bike at (%v, %v), expected the start point", s.Bike().X, s.Bike().Y)
	}
	if len(fx.Events) != 1 || fx.Events[0].Kind != core.EventLevelStarted || fx.Events[0].Level != 3 {
		t.Errorf("events = %+v", fx.Events)
	}
}

func TestRestartAfterCompleteBeginsNewRun(t *testing.T) {
	s := started(t, 5, 5)
	s.Bike().X = s.Level().EndMarker - 51
	s.Tick(frame, core.NewInputFrame())
	if s.Run().Phase != PhaseGameComplete || s.Run().Score == 0 {
		t.Fatalf("setup: phase %v score %d", s.Run().Phase, s.Run().Score)
	}

	s.Tick(frame, input(core.ActionRestart))

	rs := s.Run()
	if rs.Phase != PhasePlaying || rs.Level != 5 {
		t.Errorf("after restart: phase %v level %d", rs.Phase, rs.Level)
	}
	if rs.Score != 0 || rs.Cleared != 0 {
		t.Errorf("new run kept score %d / cleared %d", rs.Score, rs.Cleared)
	}
}

func TestLateralReplacesForward(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		action core.Action
		want   float64
	}{
		{"forward level 1", 1, core.ActionNone, 18},
		{"forward level 3", 3, core.ActionNone, 20},
		{"right", 1, core.ActionRight, 16},
		{"left", 1, core.ActionLeft, -16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := started(t, tt.level, 10)
			x := s.Bike().X

			s.Tick(0.1, input(tt.action))

			if got := s.Bike().X - x; math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("moved %v, expected %v", got, tt.want)
			}
		})
	}
}

// settle holds left until the bike rests against the left edge.
func settle(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 60; i++ {
		s.Tick(frame, input(core.ActionLeft))
	}
	if !s.Bike().Grounded() {
		t.Fatal("bike should be resting on the ground")
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	s := started(t, 1, 10)

	// Spawned in the air: no impulse
	s.Tick(frame, input(core.ActionJump, core.ActionLeft))
	if s.Bike().VY < 0 {
		t.Fatalf("jumped while airborne: vy=%v", s.Bike().VY)
	}

	settle(t, s)

	s.Tick(frame, input(core.ActionJump, core.ActionLeft))
	vy := s.Bike().VY
	if vy >= 0 {
		t.Fatalf("grounded jump gave vy=%v, expected upward velocity", vy)
	}

	// Second press mid-air does not add another impulse
	s.Tick(frame, input(core.ActionJump, core.ActionLeft))
	if s.Bike().VY <= vy {
		t.Errorf("double jump: vy went from %v to %v", vy, s.Bike().VY)
	}
}

func TestTapJumps(t *testing.T) {
	s := started(t, 1, 10)
	settle(t, s)

	in := input(core.ActionLeft)
	in.Tap(2)
	s.Tick(frame, in)

	if s.Bike().VY >= 0 {
		t.Errorf("tap should jump, vy=%v", s.Bike().VY)
	}
}

func TestPauseFreezesTimerAndBike(t *testing.T) {
	s := started(t, 1, 10)
	s.Tick(frame, core.NewInputFrame())

	s.Tick(frame, input(core.ActionPause))
	if !s.Run().Paused {
		t.Fatal("expected paused")
	}
	timeLeft := s.Run().TimeRemaining
	x, y := s.Bike().X, s.Bike().Y

	fx := s.Tick(5, core.NewInputFrame())

	if s.Run().TimeRemaining != timeLeft {
		t.Errorf("timer ran while paused: %v -> %v", timeLeft, s.Run().TimeRemaining)
	}
	if s.Bike().X != x || s.Bike().Y != y {
		t.Error("bike moved while paused")
	}
	if st, ok := fx.Status.(StatusPlaying); !ok || !st.Paused {
		t.Errorf("status = %#v, expected paused playing", fx.Status)
	}

	s.Tick(frame, input(core.ActionPause))
	if s.Run().Paused {
		t.Error("expected resumed")
	}
}

func TestCameraFollowsBike(t *testing.T) {
	s := started(t, 1, 10)
	start := s.Camera().X
	s.Bike().X = 1500

	for i := 0; i < 10; i++ {
		s.Tick(frame, core.NewInputFrame())
	}

	if s.Camera().X <= start {
		t.Errorf("camera did not follow: %v -> %v", start, s.Camera().X)
	}
	if s.Camera().X > s.Level().Width-s.Config().World.ViewWidth {
		t.Errorf("camera out of bounds: %v", s.Camera().X)
	}
}
