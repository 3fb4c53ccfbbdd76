package physics

import (
	"math"

	"github.com/vovakirdan/biketrail/internal/core"
)

// Camera smooth-follows a target inside the world bounds.
// X and Y are the top-left corner of the view in world units.
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64
	Lerp         float64
}

// NewCamera creates a camera with the given view size and smoothing factor.
func NewCamera(viewW, viewH, lerp float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, Lerp: lerp}
}

// CenterOn snaps the view onto (x, y) without smoothing.
func (c *Camera) CenterOn(x, y float64, bounds Bounds) {
	c.X = x - c.ViewW/2
	c.Y = y - c.ViewH/2
	c.clamp(bounds)
}

// Follow moves the view a Lerp fraction of the way towards centring on
// the body, then clamps it to the world bounds.
func (c *Camera) Follow(b *Body, bounds Bounds) {
	targetX := b.X - c.ViewW/2
	targetY := b.Y - c.ViewH/2
	c.X += (targetX - c.X) * c.Lerp
	c.Y += (targetY - c.Y) * c.Lerp
	c.clamp(bounds)
}

func (c *Camera) clamp(bounds Bounds) {
	// A view larger than the world pins to the top-left corner
	maxX := math.Max(bounds.X+bounds.W-c.ViewW, bounds.X)
	maxY := math.Max(bounds.Y+bounds.H-c.ViewH, bounds.Y)
	c.X = core.ClampF(c.X, bounds.X, maxX)
	c.Y = core.ClampF(c.Y, bounds.Y, maxY)
}
