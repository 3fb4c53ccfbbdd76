package trail

import (
	"github.com/vovakirdan/biketrail/internal/config"
	"github.com/vovakirdan/biketrail/internal/core"
	"github.com/vovakirdan/biketrail/internal/level"
	"github.com/vovakirdan/biketrail/internal/physics"
)

// maxPhysicsStep bounds a single physics integration step so long frames
// cannot tunnel the bike through the ground.
const maxPhysicsStep = 1.0 / 30.0

// Outcome is the terminal condition detected on a frame, if any.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeTimeout
	OutcomeCleared
	OutcomeFell
)

// Probe is what Evaluate needs to know about the world after a frame.
type Probe struct {
	X, Y   float64 // bike centre
	ClearX float64 // passing this x clears the level
	FallY  float64 // dropping below this y fails the level
}

// Evaluate checks the terminal conditions in order: timeout, then clear,
// then fall. The first that holds wins, so at most one fires per frame.
func Evaluate(rs RunState, p Probe) Outcome {
	if rs.Phase != PhasePlaying {
		return OutcomeNone
	}
	switch {
	case rs.TimeRemaining <= 0:
		return OutcomeTimeout
	case p.X > p.ClearX:
		return OutcomeCleared
	case p.Y > p.FallY:
		return OutcomeFell
	default:
		return OutcomeNone
	}
}

// FrameEffects is everything a frame produced that a renderer or platform
// might care about.
type FrameEffects struct {
	Status  Status
	Events  []core.Event
	PlayerX float64
	PlayerY float64
	CameraX float64
	CameraY float64
}

// Session runs one player's progression through the levels: it owns the
// generator, the current level and its physics world, and the RunState.
type Session struct {
	cfg     config.BikeConfig
	scaling *config.LevelScaling
	gen     *level.Generator

	spec   level.Spec
	world  *physics.World
	bike   *physics.Body
	camera *physics.Camera

	run  RunState
	tick uint64
}

// NewSession creates an idle session over levels [startLevel, lastLevel].
// Both bounds are clamped to the configured level count. The first level
// is generated immediately so it can be shown before the run starts.
func NewSession(cfg config.BikeConfig, seed int64, startLevel, lastLevel int) *Session {
	scaling := config.NewLevelScaling(cfg)
	startLevel = scaling.ClampLevel(startLevel)
	lastLevel = scaling.ClampLevel(lastLevel)

	s := &Session{
		cfg:     cfg,
		scaling: scaling,
		gen:     level.NewGenerator(cfg, seed),
		world:   physics.NewWorld(physics.Bounds{}, cfg.Physics.Gravity),
		camera:  physics.NewCamera(cfg.World.ViewWidth, cfg.World.ViewHeight, cfg.Camera.Lerp),
		run:     NewRunState(startLevel, lastLevel, cfg.Timing.LevelTime),
	}
	s.loadLevel(startLevel)
	return s
}

// loadLevel generates a fresh layout for n and rebuilds the world around it.
func (s *Session) loadLevel(n int) {
	s.spec = s.gen.Generate(n)
	s.bike = level.Build(s.world, s.spec, s.cfg.Player)
	s.camera.CenterOn(s.bike.X, s.bike.Y, s.world.Bounds)
}

// Tick advances the session by elapsed seconds using input sampled once
// for this frame.
//
// A start, retry or restart trigger only changes the phase and rebuilds
// the level; simulation begins on the following tick. Pause toggles are
// honoured while playing. Otherwise, while running, the bike is moved,
// physics and the camera are stepped, the timer runs down and the
// terminal conditions are evaluated.
func (s *Session) Tick(elapsed float64, in core.InputFrame) FrameEffects {
	var events []core.Event

	if in.Has(core.ActionStart) || in.Has(core.ActionRestart) {
		if ev, ok := s.start(); ok {
			events = append(events, ev)
			return s.effects(events)
		}
	}

	if in.Has(core.ActionPause) {
		s.run = s.run.TogglePause()
	}
	if !s.run.IsRunning() || elapsed <= 0 {
		return s.effects(events)
	}

	s.tick++

	// Jumps only leave the ground
	if (in.Has(core.ActionJump) || in.Tapped()) && s.bike.Grounded() {
		s.bike.SetVelocityY(-s.cfg.Physics.JumpImpulse)
	}

	// Lateral input replaces the forward drift for this frame
	if lateral := in.Lateral(); lateral != 0 {
		s.bike.X += float64(lateral) * s.cfg.Physics.LateralSpeed * elapsed
	} else {
		s.bike.X += s.scaling.ForwardSpeed(s.run.Level) * elapsed
	}
	s.world.Separate(s.bike)

	for remaining := elapsed; remaining > 0; remaining -= maxPhysicsStep {
		s.world.Step(min(remaining, maxPhysicsStep))
	}
	s.camera.Follow(s.bike, s.world.Bounds)

	s.run = s.run.Advance(elapsed)

	switch Evaluate(s.run, s.probe()) {
	case OutcomeTimeout:
		events = append(events, s.fail(ReasonTimeout))
	case OutcomeCleared:
		events = append(events, s.clear()...)
	case OutcomeFell:
		events = append(events, s.fail(ReasonFell))
	}

	return s.effects(events)
}

func (s *Session) start() (core.Event, bool) {
	prev := s.run.Phase
	next, ok := s.run.Start(s.cfg.Timing.LevelTime)
	if !ok {
		return core.Event{}, false
	}
	s.run = next

	// The idle level is already built and untouched. Retries and new
	// runs get a freshly generated layout.
	if prev != PhaseIdle {
		s.loadLevel(s.run.Level)
	}
	return core.Event{Kind: core.EventLevelStarted, Level: s.run.Level}, true
}

func (s *Session) fail(reason FailReason) core.Event {
	elapsed := s.run.Elapsed
	s.run = s.run.Fail(reason)
	return core.Event{
		Kind:    core.EventLevelFailed,
		Level:   s.run.Level,
		Reason:  reason.String(),
		Elapsed: elapsed,
	}
}

func (s *Session) clear() []core.Event {
	cleared := s.run.Level
	elapsed := s.run.Elapsed
	s.run, _ = s.run.Clear(s.cfg.Timing.LevelTime)

	events := []core.Event{{Kind: core.EventLevelCleared, Level: cleared, Elapsed: elapsed}}
	if s.run.Phase == PhaseGameComplete {
		return append(events, core.Event{Kind: core.EventRunComplete, Level: cleared})
	}

	s.loadLevel(s.run.Level)
	return append(events, core.Event{Kind: core.EventLevelStarted, Level: s.run.Level})
}

func (s *Session) probe() Probe {
	return Probe{
		X:      s.bike.X,
		Y:      s.bike.Y,
		ClearX: s.spec.EndMarker - s.cfg.World.ClearMargin,
		FallY:  s.cfg.World.ViewHeight + s.cfg.World.FallMargin,
	}
}

func (s *Session) effects(events []core.Event) FrameEffects {
	return FrameEffects{
		Status:  StatusOf(s.run),
		Events:  events,
		PlayerX: s.bike.X,
		PlayerY: s.bike.Y,
		CameraX: s.camera.X,
		CameraY: s.camera.Y,
	}
}

// Run returns the current run state.
func (s *Session) Run() RunState { return s.run }

// Level returns the layout of the current level.
func (s *Session) Level() level.Spec { return s.spec }

// World returns the physics world of the current level.
func (s *Session) World() *physics.World { return s.world }

// Bike returns the player body.
func (s *Session) Bike() *physics.Body { return s.bike }

// Camera returns the view position.
func (s *Session) Camera() *physics.Camera { return s.camera }

// Status returns the current status without advancing the session.
func (s *Session) Status() Status { return StatusOf(s.run) }

// Ticks returns the number of simulated frames.
func (s *Session) Ticks() uint64 { return s.tick }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.BikeConfig { return s.cfg }
