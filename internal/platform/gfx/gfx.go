// Package gfx runs the bike trail in an ebiten window (or a browser
// canvas when built for WASM). It draws the same trail.Session the
// terminal front end plays.
package gfx

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/biketrail/internal/core"
	"github.com/vovakirdan/biketrail/internal/games/trail"
	"github.com/vovakirdan/biketrail/internal/platform/touch"
)

// Viewport size in pixels. One world unit is one pixel.
const (
	ScreenW = 900
	ScreenH = 500
)

// mousePointerID keeps the mouse apart from touch IDs.
const mousePointerID = -1

// errQuit ends the ebiten loop without reporting a failure.
var errQuit = errors.New("quit")

// Options configures a window run.
type Options struct {
	Runtime  core.RuntimeConfig
	Practice bool
	Level    int // first level; 0 uses the game default
	Logger   *log.Logger
}

// Game is the ebiten.Game driving one trail.Game.
type Game struct {
	game    *trail.Game
	log     *log.Logger
	touches *touch.Tracker
	ids     []ebiten.TouchID
	button  rect
}

// NewGame creates and resets a trail game for the window. A zero seed
// is replaced by the clock.
func NewGame(opts Options) *Game {
	g := trail.New()
	if opts.Practice {
		g = trail.NewPractice()
	}
	if opts.Level > 0 {
		g.SetLevel(opts.Level)
	}

	rt := opts.Runtime.WithSeed(time.Now())
	rt.ScreenW, rt.ScreenH = ScreenW, ScreenH
	if rt.TickRate <= 0 {
		rt.TickRate = ebiten.DefaultTPS
	}
	g.Reset(rt)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		game:    g,
		log:     logger.With("game", g.ID()),
		touches: touch.NewTracker(),
		button:  rect{x: ScreenW/2 - 70, y: ScreenH/2 - 20, w: 140, h: 40},
	}
}

// Session returns the session being played.
func (g *Game) Session() *trail.Session {
	return g.game.Session()
}

// Update samples input once and steps the game by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}

	frame := g.sample()
	result := g.game.Step(frame)
	for _, ev := range result.Events {
		g.logEvent(ev)
	}
	return nil
}

// sample builds this tick's input frame from the keyboard, the mouse and
// up to core.MaxPointers touches.
func (g *Game) sample() core.InputFrame {
	frame := core.NewInputFrame()

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		frame.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		frame.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}

	var points []touch.Point
	g.ids = ebiten.AppendTouchIDs(g.ids[:0])
	for _, id := range g.ids {
		x, y := ebiten.TouchPosition(id)
		points = append(points, touch.Point{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, touch.Point{ID: mousePointerID, X: float64(x), Y: float64(y)})
	}

	taps := g.touches.Apply(points, ScreenW, &frame)

	// While not riding, a tap on the start button starts or retries
	if !g.Session().Run().IsRunning() {
		for _, p := range taps {
			if g.button.contains(p.X, p.Y) {
				frame.Set(core.ActionStart)
			}
		}
	}

	return frame
}

func (g *Game) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventLevelFailed:
		g.log.Info("level failed", "level", ev.Level, "reason", ev.Reason)
	case core.EventLevelCleared:
		g.log.Info("level cleared", "level", ev.Level, "seconds", fmt.Sprintf("%.2f", ev.Elapsed))
	case core.EventRunComplete:
		g.log.Info("run complete", "score", g.game.State().Score)
	default:
		g.log.Info(ev.Kind.String(), "level", ev.Level)
	}
}

// Layout returns the fixed viewport; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(opts Options) error {
	g := NewGame(opts)

	ebiten.SetWindowSize(ScreenW, ScreenH)
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}

// rect is a screen-space rectangle.
type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Palette
var (
	skyColor    = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	groundColor = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	grassColor  = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	holeColor   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	rockColor   = color.RGBA{0x77, 0x77, 0x77, 0xff}
	poleColor   = color.RGBA{0xee, 0xee, 0xee, 0xff}
	flagColor   = color.RGBA{0xff, 0x33, 0x33, 0xff}
	bikeColor   = color.RGBA{0x22, 0x22, 0xdd, 0xff}
	wheelColor  = color.RGBA{0x11, 0x11, 0x11, 0xff}
	panelColor  = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	buttonColor = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
)
