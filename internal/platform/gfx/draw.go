package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/biketrail/internal/games/trail"
	"github.com/vovakirdan/biketrail/internal/physics"
)

// glyph sizes of basicfont.Face7x13
const (
	glyphW = 7
	glyphH = 13
)

// Draw renders the visible part of the level, the bike and the status text.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.Session()
	cam := s.Camera()

	screen.Fill(skyColor)

	fill := func(b *physics.Body, c color.Color) {
		vector.DrawFilledRect(screen,
			float32(b.Left()-cam.X), float32(b.Top()-cam.Y),
			float32(b.W), float32(b.H), c, false)
	}

	for _, b := range s.World().Statics() {
		if b.Kind == physics.KindGround {
			fill(b, groundColor)
			vector.DrawFilledRect(screen,
				float32(b.Left()-cam.X), float32(b.Top()-cam.Y),
				float32(b.W), 4, grassColor, false)
		}
	}

	for _, b := range s.World().Sensors() {
		switch b.Kind {
		case physics.KindHole:
			fill(b, holeColor)
		case physics.KindRock:
			fill(b, rockColor)
		case physics.KindFlag:
			fill(b, poleColor)
			vector.DrawFilledRect(screen,
				float32(b.Right()-cam.X), float32(b.Top()-cam.Y),
				24, 16, flagColor, false)
		}
	}

	bike := s.Bike()
	fill(bike, bikeColor)
	r := float32(bike.H / 3)
	vector.DrawFilledCircle(screen, float32(bike.Left()-cam.X)+r, float32(bike.Bottom()-cam.Y), r, wheelColor, true)
	vector.DrawFilledCircle(screen, float32(bike.Right()-cam.X)-r, float32(bike.Bottom()-cam.Y), r, wheelColor, true)

	g.drawHUD(screen, s)
}

// drawHUD draws the status text top-left and, while not riding, the
// start button with the message for the current status.
func (g *Game) drawHUD(screen *ebiten.Image, s *trail.Session) {
	status := s.Status()
	vector.DrawFilledRect(screen, 0, 0, ScreenW, glyphH+10, panelColor, false)
	text.Draw(screen, status.String(), basicfont.Face7x13, 8, glyphH+2, color.White)

	score := fmt.Sprintf("Score: %d", s.Run().Score)
	text.Draw(screen, score, basicfont.Face7x13, ScreenW-8-len(score)*glyphW, glyphH+2, color.White)

	var label string
	switch st := status.(type) {
	case trail.StatusIdle:
		label = "START"
	case trail.StatusFailed:
		label = "RETRY"
	case trail.StatusComplete:
		label = "PLAY AGAIN"
		drawCentered(screen, fmt.Sprintf("Trail complete! Score %d", st.Score), int(g.button.y)-20)
	case trail.StatusPlaying:
		if st.Paused {
			drawCentered(screen, "PAUSED (P to resume)", ScreenH/2)
		}
		return
	}

	b := g.button
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), buttonColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.White, false)
	drawCentered(screen, label, int(b.y+b.h/2)+glyphH/2-2)
	drawCentered(screen, "Space/tap: jump   Left/Right or hold screen edges: steer", int(b.y+b.h)+24)
}

// drawCentered draws one line of text centred horizontally with its
// baseline at y.
func drawCentered(screen *ebiten.Image, msg string, y int) {
	x := (ScreenW - len(msg)*glyphW) / 2
	text.Draw(screen, msg, basicfont.Face7x13, x, y, color.White)
}
