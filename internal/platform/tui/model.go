package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/biketrail/internal/core"
	"github.com/vovakirdan/biketrail/internal/registry"
	"github.com/vovakirdan/biketrail/internal/storage"
)

// Options carries the collaborators shared by every screen of a session.
type Options struct {
	Store  *storage.Store // may be nil; nothing is persisted then
	Logger *log.Logger    // may be nil; events are discarded then
	Player string         // recorded with runs and clear times
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// runTracker follows the events of one run so it can be saved exactly once.
type runTracker struct {
	active     bool
	startLevel int
	cleared    int
	started    time.Time
	lastReason string
}

// GameModel is the Bubble Tea model that drives one game: it samples input
// once per tick, steps the game, and logs and persists the events it emits.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	log        *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	run        *runTracker
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. A zero seed is replaced by the clock.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	cfg = cfg.WithSeed(time.Now())

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		log:        opts.logger().With("game", game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		run:        &runTracker{},
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Debug("game opened", "seed", m.config.Seed, "player", m.opts.Player)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// The game scales to the screen, so no reset is needed
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.Press(msg, time.Now(), &m.inputFrame) {
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered while the bike is not moving
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused || !m.run.active) {
		m.leave()
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.keyMapper.Sample(now, &m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs a game event and persists what it records.
func (m GameModel) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventLevelStarted:
		if !m.run.active {
			*m.run = runTracker{active: true, startLevel: ev.Level, started: time.Now()}
			m.log.Info("run started", "level", ev.Level)
		}
		m.log.Info("level started", "level", ev.Level)

	case core.EventLevelCleared:
		m.run.cleared++
		m.log.Info("level cleared", "level", ev.Level, "seconds", fmt.Sprintf("%.2f", ev.Elapsed))
		if m.opts.Store != nil {
			if _, err := m.opts.Store.SaveLevelClear(ev.Level, ev.Elapsed, m.opts.Player); err != nil {
				m.log.Warn("could not save level clear", "error", err)
			}
		}

	case core.EventLevelFailed:
		m.run.lastReason = ev.Reason
		m.log.Info("level failed", "level", ev.Level, "reason", ev.Reason)

	case core.EventRunComplete:
		m.log.Info("run complete", "score", m.gameState.Score, "levels", m.run.cleared)
		m.saveRun(storage.OutcomeComplete)
	}
}

// leave saves a run that was started but not completed.
func (m GameModel) leave() {
	m.keyMapper.Release()
	if !m.run.active {
		return
	}
	outcome := m.run.lastReason
	if outcome == "" || !m.gameState.GameOver {
		outcome = storage.OutcomeAbandoned
	}
	m.log.Info("run ended", "outcome", outcome, "score", m.gameState.Score)
	m.saveRun(outcome)
}

// saveRun records the current run once. Best-effort: failures are logged.
func (m GameModel) saveRun(outcome string) {
	r := m.run
	if !r.active {
		return
	}
	r.active = false

	if m.opts.Store == nil {
		return
	}
	rec := storage.RunRecord{
		Mode:          m.game.ID(),
		Player:        m.opts.Player,
		StartLevel:    r.startLevel,
		LevelsCleared: r.cleared,
		Score:         m.gameState.Score,
		Outcome:       outcome,
		DurationSecs:  int(time.Since(r.started).Seconds()),
	}
	if _, err := m.opts.Store.SaveRun(rec); err != nil {
		m.log.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".biketrail", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits or backs out.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := singleGame{NewGameModel(game, cfg, opts)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

// singleGame quits the program when its game model backs out to the menu.
type singleGame struct {
	GameModel
}

func (s singleGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		s.GameModel = gm
	}
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
