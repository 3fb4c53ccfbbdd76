package level

import (
	"github.com/vovakirdan/biketrail/internal/config"
	"github.com/vovakirdan/biketrail/internal/physics"
)

// Flag dimensions, centred above the end marker.
const (
	flagWidth  = 20
	flagHeight = 80
)

// Build replaces the world's contents with the level described by spec
// and returns the player body placed at the start point.
//
// Ground segments are static colliders. Holes, rocks and the flag are
// sensors: they are drawn but never collide.
func Build(world *physics.World, spec Spec, player config.PlayerConfig) *physics.Body {
	world.Clear()
	world.SetBounds(physics.Bounds{X: 0, Y: 0, W: spec.Width, H: spec.Height})

	groundH := spec.Height - spec.GroundTop
	groundY := spec.GroundTop + groundH/2

	for _, seg := range spec.GroundSegments() {
		w := seg.Right - seg.Left
		world.AddStatic(physics.KindGround, seg.Left+w/2, groundY, w, groundH)
	}
	for _, h := range spec.Holes {
		world.AddSensor(physics.KindHole, h.Center, groundY, h.Width, groundH)
	}
	for _, r := range spec.Obstacles {
		world.AddSensor(physics.KindRock, r.X, r.Y, r.W, r.H)
	}
	world.AddSensor(physics.KindFlag, spec.EndMarker, spec.GroundTop-flagHeight/2, flagWidth, flagHeight)

	bike := world.AddDynamic(spec.StartX, spec.StartY, player.Width, player.Height)
	bike.Bounce = player.Bounce
	bike.CollideWorldBounds = true
	return bike
}
