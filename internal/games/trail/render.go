package trail

import (
	"github.com/vovakirdan/biketrail/internal/core"
	"github.com/vovakirdan/biketrail/internal/physics"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// view projects world units onto screen cells for one frame.
type view struct {
	s              *Session
	camX, camY     float64
	scaleX, scaleY float64
	width, height  int
	groundRow      int
}

func newView(s *Session, dst *core.Screen) view {
	cfg := s.Config().World
	rows := core.Max(dst.Height()-hudRows, 1)
	v := view{
		s:      s,
		camX:   s.Camera().X,
		camY:   s.Camera().Y,
		scaleX: float64(dst.Width()) / cfg.ViewWidth,
		scaleY: float64(rows) / cfg.ViewHeight,
		width:  dst.Width(),
		height: dst.Height(),
	}
	v.groundRow = v.row(s.Level().GroundTop)
	return v
}

func (v view) col(x float64) int {
	return core.FloorInt((x - v.camX) * v.scaleX)
}

func (v view) row(y float64) int {
	return hudRows + core.FloorInt((y-v.camY)*v.scaleY)
}

// worldX returns the world x at the centre of a screen column.
func (v view) worldX(col int) float64 {
	return v.camX + (float64(col)+0.5)/v.scaleX
}

func (v view) drawGround(dst *core.Screen) {
	spec := v.s.Level()
	for c := 0; c < v.width; c++ {
		if _, hole := spec.HoleAt(v.worldX(c)); hole {
			dst.SetColor(c, v.height-1, PitChar, core.ColorDarkGray)
			continue
		}
		dst.DrawVLine(c, v.groundRow, v.height-v.groundRow, GroundChar, core.ColorBrown)
	}
}

func (v view) drawRocks(dst *core.Screen) {
	for _, r := range v.s.World().Sensors() {
		if r.Kind != physics.KindRock {
			continue
		}
		if _, hole := v.s.Level().HoleAt(r.X); hole {
			continue
		}
		row := core.Min(v.row(r.Y), v.groundRow-1)
		left, right := v.span(r)
		dst.DrawHLine(left, row, right-left, RockChar, core.ColorDarkGray)
	}
}

func (v view) drawFlag(dst *core.Screen) {
	for _, f := range v.s.World().Sensors() {
		if f.Kind != physics.KindFlag {
			continue
		}
		c := v.col(f.X)
		top := v.row(f.Top())
		dst.DrawVLine(c, top, v.groundRow-top, PoleChar, core.ColorWhite)
		dst.SetColor(c+1, top, FlagChar, core.ColorRed)
	}
}

func (v view) drawBike(dst *core.Screen) {
	b := v.s.Bike()
	left, right := v.span(b)
	wheels := core.Max(v.row(b.Bottom())-1, hudRows)
	frame := core.Max(wheels-1, hudRows)

	dst.DrawHLine(left, frame, right-left, FrameChar, core.ColorCyan)
	dst.SetColor(left, wheels, WheelChar, core.ColorBrightWhite)
	dst.SetColor(right-1, wheels, WheelChar, core.ColorBrightWhite)
}

// span returns the half-open column range a body covers, at least one cell wide.
func (v view) span(b *physics.Body) (int, int) {
	left := v.col(b.Left())
	right := v.col(b.Right())
	if right <= left {
		right = left + 1
	}
	return left, right
}
