// Package physics is a minimal arcade-style physics world: axis-aligned
// bodies, gravity, landing on static colliders and world-bound clamping.
// It implements only what the trail game needs from a 2D engine and makes
// no attempt at accurate simulation.
package physics

import "math"

// restThreshold is the rebound speed below which a landing body comes to rest.
const restThreshold = 30

// Kind tags static bodies and sensors so renderers can draw them.
type Kind int

const (
	KindGround Kind = iota
	KindHole
	KindRock
	KindFlag
)

// Bounds is the world rectangle. Bodies with CollideWorldBounds are kept
// inside its left, right and top edges; the bottom is open.
type Bounds struct {
	X, Y, W, H float64
}

// Blocked records which sides of a body touched something during the last step.
type Blocked struct {
	Down, Up, Left, Right bool
}

// Body is an axis-aligned box. X and Y are the centre.
type Body struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	VX, VY float64
	Bounce float64

	// Static bodies never move; sensors never collide.
	Static bool
	Sensor bool

	CollideWorldBounds bool
	Blocked            Blocked
}

// Left returns the x coordinate of the left edge.
func (b *Body) Left() float64 { return b.X - b.W/2 }

// Right returns the x coordinate of the right edge.
func (b *Body) Right() float64 { return b.X + b.W/2 }

// Top returns the y coordinate of the top edge.
func (b *Body) Top() float64 { return b.Y - b.H/2 }

// Bottom returns the y coordinate of the bottom edge.
func (b *Body) Bottom() float64 { return b.Y + b.H/2 }

// Grounded reports whether the body rested on a surface during the last step.
func (b *Body) Grounded() bool {
	return b.Blocked.Down
}

// SetVelocityY sets the vertical velocity (negative is up).
func (b *Body) SetVelocityY(vy float64) {
	b.VY = vy
}

// Reset moves the body to (x, y) and clears its motion.
func (b *Body) Reset(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	b.Blocked = Blocked{}
}

// overlaps reports whether two bodies intersect (touching edges do not count).
func (b *Body) overlaps(o *Body) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// World holds all bodies for the current level.
type World struct {
	Bounds  Bounds
	Gravity float64

	statics []*Body
	sensors []*Body
	dynamic []*Body
}

// NewWorld creates an empty world.
func NewWorld(bounds Bounds, gravity float64) *World {
	return &World{
		Bounds:  bounds,
		Gravity: gravity,
	}
}

// SetBounds replaces the world rectangle.
func (w *World) SetBounds(bounds Bounds) {
	w.Bounds = bounds
}

// Clear removes every body from the world.
func (w *World) Clear() {
	w.statics = w.statics[:0]
	w.sensors = w.sensors[:0]
	w.dynamic = w.dynamic[:0]
}

// AddStatic adds an immovable collider centred at (x, y).
func (w *World) AddStatic(kind Kind, x, y, width, height float64) *Body {
	b := &Body{Kind: kind, X: x, Y: y, W: width, H: height, Static: true}
	w.statics = append(w.statics, b)
	return b
}

// AddSensor adds a non-colliding body centred at (x, y). Sensors are visual only.
func (w *World) AddSensor(kind Kind, x, y, width, height float64) *Body {
	b := &Body{Kind: kind, X: x, Y: y, W: width, H: height, Static: true, Sensor: true}
	w.sensors = append(w.sensors, b)
	return b
}

// AddDynamic adds a gravity-affected body centred at (x, y).
func (w *World) AddDynamic(x, y, width, height float64) *Body {
	b := &Body{X: x, Y: y, W: width, H: height}
	w.dynamic = append(w.dynamic, b)
	return b
}

// Statics returns the static colliders.
func (w *World) Statics() []*Body {
	return w.statics
}

// Sensors returns the non-colliding bodies.
func (w *World) Sensors() []*Body {
	return w.sensors
}

// Step advances every dynamic body by dt seconds.
// Each axis is moved and resolved separately, vertical first, so a body
// resting on the ground can slide along it without snagging on seams.
func (w *World) Step(dt float64) {
	for _, b := range w.dynamic {
		w.stepBody(b, dt)
	}
}

// Separate resolves any overlap a body picked up from being moved directly
// (e.g. by lateral input) rather than through its velocity.
func (w *World) Separate(b *Body) {
	w.resolveX(b, 0)
	w.clampToBounds(b)
}

func (w *World) stepBody(b *Body, dt float64) {
	b.Blocked = Blocked{}

	b.VY += w.Gravity * dt
	dy := b.VY * dt
	b.Y += dy
	w.resolveY(b, dy)

	dx := b.VX * dt
	b.X += dx
	w.resolveX(b, dx)

	w.clampToBounds(b)
}

// resolveY pushes the body out of statics it moved into vertically.
func (w *World) resolveY(b *Body, dy float64) {
	for _, s := range w.statics {
		if !b.overlaps(s) {
			continue
		}
		switch {
		case dy > 0 && b.Bottom()-dy <= s.Top()+1e-9:
			// Landed on top
			b.Y = s.Top() - b.H/2
			b.Blocked.Down = true
			b.VY = -b.VY * b.Bounce
			if math.Abs(b.VY) < restThreshold {
				b.VY = 0
			}
		case dy < 0 && b.Top()-dy >= s.Bottom()-1e-9:
			// Hit a ceiling
			b.Y = s.Bottom() + b.H/2
			b.Blocked.Up = true
			b.VY = 0
		}
	}

	// Resting exactly on a surface still counts as grounded.
	if !b.Blocked.Down && b.VY >= 0 {
		for _, s := range w.statics {
			if math.Abs(b.Bottom()-s.Top()) < 1e-6 && b.Left() < s.Right() && s.Left() < b.Right() {
				b.Blocked.Down = true
				break
			}
		}
	}
}

// resolveX pushes the body out of statics it overlaps sideways.
func (w *World) resolveX(b *Body, dx float64) {
	for _, s := range w.statics {
		if !b.overlaps(s) {
			continue
		}
		if dx > 0 || (dx == 0 && b.X < s.X) {
			b.X = s.Left() - b.W/2
			b.Blocked.Right = true
		} else {
			b.X = s.Right() + b.W/2
			b.Blocked.Left = true
		}
		b.VX = 0
	}
}

// clampToBounds keeps the body inside the left, right and top world edges.
func (w *World) clampToBounds(b *Body) {
	if !b.CollideWorldBounds {
		return
	}
	if b.Left() < w.Bounds.X {
		b.X = w.Bounds.X + b.W/2
		b.Blocked.Left = true
	}
	if b.Right() > w.Bounds.X+w.Bounds.W {
		b.X = w.Bounds.X + w.Bounds.W - b.W/2
		b.Blocked.Right = true
	}
	if b.Top() < w.Bounds.Y {
		b.Y = w.Bounds.Y + b.H/2
		b.Blocked.Up = true
		if b.VY < 0 {
			b.VY = 0
		}
	}
}
