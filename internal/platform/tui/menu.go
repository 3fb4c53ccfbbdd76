package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/biketrail/internal/core"
	"github.com/vovakirdan/biketrail/internal/registry"
)

// MenuEntry identifies a menu line.
type MenuEntry int

const (
	EntryCampaign MenuEntry = iota
	EntryPractice
	EntryScores
	EntryQuit
)

// MenuItem represents a selectable line in the menu.
type MenuItem struct {
	Entry  MenuEntry
	GameID string // set for playable entries
	Title  string
}

// MenuModel is the Bubble Tea model for the main menu.
// Selecting an entry only records it; the owner reacts to Selected().
type MenuModel struct {
	items     []MenuItem
	cursor    int
	level     int // practice level
	maxLevel  int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	highScore int
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new menu model. maxLevel bounds the practice
// level chooser; highScore is shown under the title when positive.
func NewMenuModel(cfg core.RuntimeConfig, maxLevel, highScore int) MenuModel {
	items := []MenuItem{
		{Entry: EntryCampaign, GameID: "trail", Title: "Campaign"},
		{Entry: EntryPractice, GameID: "trail_practice", Title: "Practice"},
		{Entry: EntryScores, Title: "High scores"},
		{Entry: EntryQuit, Title: "Quit"},
	}

	// Use registered titles so the menu matches `list`
	for _, g := range registry.List() {
		for i := range items {
			if items[i].GameID == g.ID {
				items[i].Title = g.Title
			}
		}
	}

	if maxLevel < 1 {
		maxLevel = 1
	}

	return MenuModel{
		items:     items,
		level:     1,
		maxLevel:  maxLevel,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		highScore: highScore,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.items[m.cursor].Entry == EntryPractice && m.level > 1 {
			m.level--
		}

	case MenuActionRight:
		if m.items[m.cursor].Entry == EntryPractice && m.level < m.maxLevel {
			m.level++
		}

	case MenuActionScoreboard:
		item := m.items[2]
		m.selected = &item

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Entry == EntryQuit {
			m.quitting = true
			break
		}
		m.selected = &item
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B I K E   T R A I L"), m.width))
	b.WriteString("\n\n")

	subtitle := "Reach the flag before the clock runs out"
	if m.highScore > 0 {
		subtitle = fmt.Sprintf("High score: %d", m.highScore)
	}
	b.WriteString(centerText(dimStyle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if item.Entry == EntryPractice {
			line = fmt.Sprintf("%s  < level %d >", item.Title, m.level)
		}

		if i == m.cursor {
			line = activeStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Level  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Level returns the chosen practice level.
func (m MenuModel) Level() int {
	return m.level
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
