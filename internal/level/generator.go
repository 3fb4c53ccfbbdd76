// Package level generates trail layouts: holes in the ground, decorative
// rocks and the end flag. Counts are fixed per level number; positions
// and sizes are drawn from a seeded RNG within per-index windows.
package level

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/biketrail/internal/config"
)

// Hole is a gap in the ground.
type Hole struct {
	Center float64
	Width  float64
}

// Left returns the x coordinate where the gap starts.
func (h Hole) Left() float64 { return h.Center - h.Width/2 }

// Right returns the x coordinate where the gap ends.
func (h Hole) Right() float64 { return h.Center + h.Width/2 }

// Obstacle is a decorative rock sitting on the ground.
type Obstacle struct {
	X, Y float64 // centre
	W, H float64
}

// Segment is a solid span of ground between holes.
type Segment struct {
	Left, Right float64
}

// Spec is one generated level. It fully replaces the previous level's
// Spec when a level starts or restarts.
type Spec struct {
	Number        int
	Width         float64
	Height        float64
	GroundTop     float64
	HoleCount     int
	Holes         []Hole
	ObstacleCount int
	Obstacles     []Obstacle
	EndMarker     float64
	StartX        float64
	StartY        float64
}

// GroundSegments returns the solid ground spans left between holes, in order.
func (s Spec) GroundSegments() []Segment {
	segments := make([]Segment, 0, len(s.Holes)+1)
	x := 0.0
	for _, h := range s.Holes {
		if h.Left() > x {
			segments = append(segments, Segment{Left: x, Right: h.Left()})
		}
		x = math.Max(x, h.Right())
	}
	if x < s.Width {
		segments = append(segments, Segment{Left: x, Right: s.Width})
	}
	return segments
}

// HoleAt returns the hole under the given x position, if any.
func (s Spec) HoleAt(x float64) (Hole, bool) {
	for _, h := range s.Holes {
		if x >= h.Left() && x < h.Right() {
			return h, true
		}
	}
	return Hole{}, false
}

// Generator builds level specs from a config and a seeded RNG.
type Generator struct {
	cfg     config.BikeConfig
	scaling *config.LevelScaling
	rng     *rand.Rand
}

// NewGenerator creates a generator. The same seed and call sequence
// always yields the same layouts.
func NewGenerator(cfg config.BikeConfig, seed int64) *Generator {
	return &Generator{
		cfg:     cfg,
		scaling: config.NewLevelScaling(cfg),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Reseed resets the RNG.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Scaling returns the per-level scaling used by the generator.
func (g *Generator) Scaling() *config.LevelScaling {
	return g.scaling
}

// Generate builds a fresh layout for the given level number.
// Out-of-range level numbers are clamped to [1, LevelCount].
func (g *Generator) Generate(levelNumber int) Spec {
	n := g.scaling.ClampLevel(levelNumber)
	w := g.cfg.World

	spec := Spec{
		Number:        n,
		Width:         w.Width,
		Height:        w.ViewHeight,
		GroundTop:     w.GroundTop(),
		HoleCount:     g.scaling.HoleCount(n),
		ObstacleCount: g.scaling.ObstacleCount(n),
		EndMarker:     w.EndMarker(),
		StartX:        g.cfg.Player.StartX,
		StartY:        w.ViewHeight - g.cfg.Player.StartOffset,
	}

	spec.Holes = g.placeHoles(spec.HoleCount)
	spec.Obstacles = g.placeObstacles(spec.ObstacleCount, spec.GroundTop)

	return spec
}

// placeHoles draws count holes left to right.
//
// Hole i of N is drawn from the window [start+i*step, width-end-(N-i)*tail].
// Upper bounds are computed back to front so every later hole still fits
// at maximum width inside its own window and before the clear line. The
// lower bound is raised so the hole starts after the previous hole plus
// min_ground. Only when a config's windows genuinely invert is the window
// start dropped in favour of that spacing rule.
func (g *Generator) placeHoles(count int) []Hole {
	hc := g.cfg.Holes
	clearLine := g.cfg.World.EndMarker() - g.cfg.World.ClearMargin
	reserve := hc.MaxWidth + hc.MinGround

	his := make([]float64, count)
	next := clearLine - hc.MaxWidth/2 + reserve
	for i := count - 1; i >= 0; i-- {
		_, windowHi := g.holeWindow(i, count)
		his[i] = math.Min(windowHi, next-reserve)
		next = his[i]
	}

	holes := make([]Hole, 0, count)
	prevRight := -hc.MinGround
	for i := 0; i < count; i++ {
		width := g.between(hc.MinWidth, hc.MaxWidth)
		half := width / 2

		windowLo, _ := g.holeWindow(i, count)
		floor := prevRight + hc.MinGround + half
		lo := math.Max(windowLo, floor)
		hi := his[i]
		if lo > hi {
			lo = floor
		}
		if lo > hi {
			hi = lo
		}

		center := g.between(lo, hi)
		holes = append(holes, Hole{Center: center, Width: width})
		prevRight = center + half
	}
	return holes
}

// holeWindow returns the range hole i of count may be centred in.
func (g *Generator) holeWindow(i, count int) (lo, hi float64) {
	hc := g.cfg.Holes
	lo = hc.StartOffset + float64(i)*hc.IndexStep
	hi = g.cfg.World.Width - hc.EndOffset - float64(count-i)*hc.TailStep
	return lo, hi
}

// placeObstacles scatters decorative rocks along the ground.
func (g *Generator) placeObstacles(count int, groundTop float64) []Obstacle {
	oc := g.cfg.Obstacles
	rocks := make([]Obstacle, 0, count)
	for i := 0; i < count; i++ {
		x := g.between(oc.Margin, g.cfg.World.Width-oc.Margin)
		lift := g.between(0, oc.MaxLift)
		w := g.between(oc.MinWidth, oc.MaxWidth)
		h := g.between(oc.MinHeight, oc.MaxHeight)
		rocks = append(rocks, Obstacle{
			X: x,
			Y: groundTop - h/2 - lift,
			W: w,
			H: h,
		})
	}
	return rocks
}

// between returns an integer-valued draw from [lo, hi], inclusive.
// An inverted range collapses to lo.
func (g *Generator) between(lo, hi float64) float64 {
	a := math.Ceil(lo)
	b := math.Floor(hi)
	if b <= a {
		return lo
	}
	return a + float64(g.rng.Int63n(int64(b-a)+1))
}
