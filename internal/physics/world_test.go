package physics

import (
	"math"
	"testing"
)

const dt = 1.0 / 60.0

func newTestWorld() *World {
	w := NewWorld(Bounds{X: 0, Y: 0, W: 2200, H: 500}, 900)
	// Ground top at y=436
	w.AddStatic(KindGround, 500, 468, 1000, 64)
	w.AddStatic(KindGround, 1600, 468, 1000, 64)
	return w
}

func TestBodyLandsOnGround(t *testing.T) {
	w := newTestWorld()
	b := w.AddDynamic(120, 380, 48, 30)
	b.CollideWorldBounds = true

	for i := 0; i < 120; i++ {
		w.Step(dt)
	}

	if !b.Grounded() {
		t.Fatal("body should be grounded after falling onto the ground")
	}
	if math.Abs(b.Bottom()-436) > 1e-6 {
		t.Errorf("Bottom() = %v, expected 436", b.Bottom())
	}
	if b.VY != 0 {
		t.Errorf("VY = %v, expected body at rest", b.VY)
	}
}

func TestBodyStaysGroundedWhileResting(t *testing.T) {
	w := newTestWorld()
	b := w.AddDynamic(120, 421, 48, 30) // bottom exactly on ground top

	for i := 0; i < 10; i++ {
		w.Step(dt)
		if !b.Grounded() {
			t.Fatalf("step %d: resting body should stay grounded", i)
		}
	}
}

func TestBodyFallsThroughGap(t *testing.T) {
	w := newTestWorld()
	// Gap between x=1000 and x=1100
	b := w.AddDynamic(1050, 421, 48, 30)
	b.CollideWorldBounds = true

	for i := 0; i < 120; i++ {
		w.Step(dt)
	}

	if b.Grounded() {
		t.Error("body over a gap should not be grounded")
	}
	if b.Y <= 700 {
		t.Errorf("Y = %v, expected body to fall below the world (open bottom)", b.Y)
	}
}

func TestJumpLeavesGround(t *testing.T) {
	w := newTestWorld()
	b := w.AddDynamic(120, 421, 48, 30)
	w.Step(dt)

	b.SetVelocityY(-480)
	w.Step(dt)

	if b.Grounded() {
		t.Error("body should be airborne after a jump impulse")
	}
	if b.Bottom() >= 436 {
		t.Errorf("Bottom() = %v, expected above ground", b.Bottom())
	}
}

func TestSeparatePushesOutOfWall(t *testing.T) {
	w := newTestWorld()
	// Inside the gap, below ground level, overlapping the right segment
	b := w.AddDynamic(1090, 470, 48, 30)

	w.Separate(b)

	if b.Right() > 1100+1e-9 {
		t.Errorf("Right() = %v, expected to be pushed back to 1100", b.Right())
	}
	if !b.Blocked.Right {
		t.Error("Blocked.Right should be set")
	}
}

func TestWorldBoundsClampSides(t *testing.T) {
	w := newTestWorld()
	b := w.AddDynamic(10, 421, 48, 30)
	b.CollideWorldBounds = true

	w.Step(dt)
	if b.Left() < 0 {
		t.Errorf("Left() = %v, expected clamp to 0", b.Left())
	}

	b.X = 2199
	w.Separate(b)
	if b.Right() > 2200 {
		t.Errorf("Right() = %v, expected clamp to 2200", b.Right())
	}
}

func TestSensorsDoNotCollide(t *testing.T) {
	w := NewWorld(Bounds{W: 1000, H: 500}, 900)
	w.AddSensor(KindFlag, 120, 436, 200, 20)
	b := w.AddDynamic(120, 380, 48, 30)

	for i := 0; i < 60; i++ {
		w.Step(dt)
	}
	if b.Grounded() {
		t.Error("a sensor should never support a body")
	}
	if len(w.Sensors()) != 1 || len(w.Statics()) != 0 {
		t.Error("sensor should be tracked separately from statics")
	}
}

func TestClearRemovesBodies(t *testing.T) {
	w := newTestWorld()
	w.AddDynamic(0, 0, 1, 1)
	w.AddSensor(KindRock, 0, 0, 1, 1)

	w.Clear()
	if len(w.Statics()) != 0 || len(w.Sensors()) != 0 || len(w.dynamic) != 0 {
		t.Error("Clear should remove every body")
	}
}

func TestCameraFollowAndClamp(t *testing.T) {
	bounds := Bounds{W: 2200, H: 500}
	c := NewCamera(900, 500, 0.05)
	b := &Body{X: 1200, Y: 250, W: 48, H: 30}

	c.Follow(b, bounds)
	// Target x is 750; 5% of the way from 0
	if math.Abs(c.X-37.5) > 1e-9 {
		t.Errorf("X = %v, expected 37.5", c.X)
	}

	c.CenterOn(2150, 250, bounds)
	if c.X != 1300 {
		t.Errorf("X = %v, expected clamp to 1300", c.X)
	}

	c.CenterOn(0, 0, bounds)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("camera = (%v, %v), expected clamp to origin", c.X, c.Y)
	}
}
