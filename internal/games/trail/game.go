// Package trail implements the bike trail game: an automatically advancing
// bike that must reach the end flag of each level before the timer runs
// out, without dropping into a hole.
package trail

import (
	"fmt"

	"github.com/vovakirdan/biketrail/internal/config"
	"github.com/vovakirdan/biketrail/internal/core"
	"github.com/vovakirdan/biketrail/internal/registry"
)

// Visual characters for rendering
const (
	GroundChar = '▓'
	PitChar    = '░'
	RockChar   = '▲'
	PoleChar   = '│'
	FlagChar   = '▶'
	FrameChar  = '▄'
	WheelChar  = 'O'
)

// GameMode selects which levels a run covers.
type GameMode int

const (
	ModeCampaign GameMode = iota // start level through the last level
	ModePractice                 // the start level only
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel is the first level of a run, 1 unless set via CLI
var startLevel = 1

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetStartLevel sets the level new runs begin on.
func SetStartLevel(n int) {
	if n < 1 {
		n = 1
	}
	startLevel = n
}

// StartLevel returns the level new runs begin on.
func StartLevel() int {
	return startLevel
}

// LevelCount returns the number of levels in the effective config.
func LevelCount() int {
	return EffectiveConfig().World.LevelCount
}

// LoadConfig reads the custom or default config and applies the preset.
func LoadConfig() (config.BikeConfig, error) {
	cfg, err := config.LoadBike(configPath)
	if err != nil {
		return config.BikeConfig{}, err
	}
	if difficultyPreset != "" {
		config.ApplyBikePreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// EffectiveConfig is LoadConfig falling back to the preset-adjusted
// defaults when the config cannot be loaded.
func EffectiveConfig() config.BikeConfig {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultBikeConfig()
		if difficultyPreset != "" {
			config.ApplyBikePreset(&cfg, difficultyPreset)
		}
	}
	return cfg
}

// Game adapts a Session to the registry.Game contract.
type Game struct {
	mode    GameMode
	level   int // overrides startLevel when positive
	runtime core.RuntimeConfig
	session *Session
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewPractice creates a single-level practice game.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "trail_practice"
	}
	return "trail"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Bike Trail (Practice)"
	}
	return "Bike Trail"
}

// SetLevel makes the next Reset begin on level n instead of the
// package-wide start level. Sessions sharing a process use this.
func (g *Game) SetLevel(n int) {
	g.level = n
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

// Reset loads the config and builds a new idle session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := EffectiveConfig()

	first := startLevel
	if g.level > 0 {
		first = g.level
	}
	last := cfg.World.LevelCount
	if g.mode == ModePractice {
		last = first
	}
	g.session = NewSession(cfg, runtime.Seed, first, last)
}

// Session returns the underlying session. Reset must have been called.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	fx := g.session.Tick(g.runtime.TickSeconds(), in)
	return core.StepResult{State: g.State(), Events: fx.Events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	rs := g.session.Run()
	return core.GameState{
		Score:    rs.Score,
		GameOver: rs.Phase == PhaseLevelFailed || rs.Phase == PhaseGameComplete,
		Paused:   rs.Paused,
	}
}

// Render draws the visible part of the level, the bike and the status line.
// World units are scaled so the viewport fills the screen below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	v := newView(g.session, dst)
	v.drawGround(dst)
	v.drawRocks(dst)
	v.drawFlag(dst)
	v.drawBike(dst)

	// HUD
	status := g.session.Status()
	dst.DrawTextColor(1, 0, status.String(), core.ColorBrightWhite)
	scoreText := fmt.Sprintf("Score: %d", g.session.Run().Score)
	dst.DrawTextColor(dst.Width()-len(scoreText)-1, 0, scoreText, core.ColorBrightYellow)

	switch s := status.(type) {
	case StatusIdle:
		g.drawCenteredMessage(dst, g.Title(), "Enter: start  Space: jump  ←/→: steer")
	case StatusPlaying:
		if s.Paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	case StatusFailed:
		g.drawCenteredMessage(dst, s.String(), "Enter: retry  B: menu")
	case StatusComplete:
		g.drawCenteredMessage(dst, "TRAIL COMPLETE", fmt.Sprintf("Score: %d  |  R: new run  B: menu", s.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// Register both modes with the registry
func init() {
	registry.Register("trail", func() registry.Game {
		return New()
	})
	registry.Register("trail_practice", func() registry.Game {
		return NewPractice()
	})
}
