package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/biketrail/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show board list sidebar
	sidebarWidth       = 20  // Width of board list sidebar
	maxRuns            = 100 // Max runs to load
)

// board is one page of the scoreboard.
type board struct {
	title string
	mode  string // game ID for run boards; empty for clear times
}

var boards = []board{
	{title: "Campaign", mode: "trail"},
	{title: "Practice", mode: "trail_practice"},
	{title: "Best times"},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the top runs per mode and the best clear time per level.
type ScoreboardModel struct {
	cursor      int
	store       *storage.Store
	runs        []storage.RunRecord
	bests       []storage.LevelBest
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	return m
}

func (m *ScoreboardModel) current() board {
	return boards[m.cursor]
}

// columns returns the table columns for the current board.
func (m *ScoreboardModel) columns() []table.Column {
	if m.current().mode == "" {
		return []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Best", Width: 9},
			{Title: "Player", Width: 12},
			{Title: "Clears", Width: 7},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Lvls", Width: 5},
		{Title: "Result", Width: 9},
		{Title: "Date", Width: 12},
	}
}

// createTable creates a table sized for the current board and window.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(atLeastOne(m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the current board from the store and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.runs, m.bests, m.loadErr = nil, nil, nil
	if m.store != nil {
		if mode := m.current().mode; mode != "" {
			m.runs, m.loadErr = m.store.TopRuns(mode, maxRuns)
		} else {
			m.bests, m.loadErr = m.store.BestClearTimes()
		}
	}
	m.table = m.createTable()
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded records.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.current().mode == "" {
		rows = make([]table.Row, len(m.bests))
		for i, b := range m.bests {
			rows[i] = table.Row{
				fmt.Sprintf("%d", b.Level),
				fmt.Sprintf("%.2fs", b.Seconds),
				playerName(b.Player),
				fmt.Sprintf("%d", b.Clears),
			}
		}
	} else {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				playerName(r.Player),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.LevelsCleared),
				r.Outcome,
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) empty() bool {
	return len(m.runs) == 0 && len(m.bests) == 0
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard. Back and quit only set
// flags; the owner decides what happens next.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextBoard):
			m.cursor = (m.cursor + 1) % len(boards)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard):
			m.cursor = (m.cursor + len(boards) - 1) % len(boards)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s", m.current().title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar of boards.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, bd := range boards {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + bd.title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with board tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(boards))
	for i, bd := range boards {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(bd.title)
		} else {
			tabs[i] = tabStyle.Render(" " + bd.title + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.current().title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Scores are unavailable:\nno database is open.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case m.empty():
		return emptyStyle.Render("Nothing recorded yet.\nFinish a run to get on the board!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		standaloneScoreboard{NewScoreboardModel(store, width, height)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// standaloneScoreboard quits the program on back or quit.
type standaloneScoreboard struct {
	ScoreboardModel
}

func (s standaloneScoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.ScoreboardModel.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		s.ScoreboardModel = sb
	}
	if s.IsGoingBack() || s.IsQuitting() {
		return s, tea.Quit
	}
	return s, cmd
}
