package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/biketrail/internal/core"
)

// DefaultHoldWindow is how long a lateral key press counts as held.
// Terminals report key repeats but never key releases, so a hold is a
// press that keeps being renewed by auto-repeat within this window.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	holdWindow time.Duration
	leftUntil  time.Time
	rightUntil time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{holdWindow: DefaultHoldWindow}
}

// NewKeyMapperWithHold creates a key mapper with a custom hold window.
func NewKeyMapperWithHold(window time.Duration) *KeyMapper {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyMapper{holdWindow: window}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "up", "w":
		return core.ActionJump, false
	case "enter":
		return core.ActionStart, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Press records a key press at the given time. Lateral keys start or renew
// a hold; everything else is set on the frame directly.
// Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		km.leftUntil = now.Add(km.holdWindow)
		km.rightUntil = time.Time{}
	case core.ActionRight:
		km.rightUntil = now.Add(km.holdWindow)
		km.leftUntil = time.Time{}
	default:
		frame.Set(action)
	}
	return isQuit
}

// Sample adds the lateral holds still active at now to the frame.
// Called once per tick, just before the frame is stepped.
func (km *KeyMapper) Sample(now time.Time, frame *core.InputFrame) {
	if now.Before(km.leftUntil) {
		frame.Set(core.ActionLeft)
	}
	if now.Before(km.rightUntil) {
		frame.Set(core.ActionRight)
	}
}

// Release drops any lateral hold, e.g. when leaving the game screen.
func (km *KeyMapper) Release() {
	km.leftUntil = time.Time{}
	km.rightUntil = time.Time{}
}

// MapMouse records a mouse press as a pointer tap. Each button is its own
// pointer, so up to three can tap in the same frame.
// Returns true if a tap was recorded.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}

	var pointer int
	switch msg.Button {
	case tea.MouseButtonLeft:
		pointer = 0
	case tea.MouseButtonMiddle:
		pointer = 1
	case tea.MouseButtonRight:
		pointer = 2
	default:
		return false
	}
	return frame.Tap(pointer)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
