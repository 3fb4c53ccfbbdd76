// Package registry maps game mode IDs ("trail", "trail_practice") to the
// factories that build them. Modes register from init(); the CLI, the
// menu and the SSH sessions look them up by ID.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/biketrail/internal/core"
)

// Game is one playable mode. Implementations hold only simulation state;
// the front ends own input sampling, timing and drawing.
type Game interface {
	// ID is the stable key used by CLI arguments and the scores table.
	ID() string
	// Title is shown in menus and listings.
	Title() string

	// Reset starts the mode from scratch with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)
	// Step advances one fixed tick and reports the events it produced.
	Step(in core.InputFrame) core.StepResult
	// Render draws into a pre-cleared character buffer.
	Render(dst *core.Screen)
	// State summarises score and run status for the front end.
	State() core.GameState
}

// ErrUnknownGame is returned (wrapped) by Create for unregistered IDs.
var ErrUnknownGame = errors.New("unknown game")

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, un-reset game.
type Factory func() Game

type mode struct {
	info    GameInfo
	factory Factory
}

var (
	mu    sync.RWMutex
	modes = map[string]mode{}
)

// Register adds a mode. It panics when id is already taken or when the
// factory builds a game reporting a different ID, since scores are keyed
// by Game.ID().
func Register(id string, f Factory) {
	sample := f()
	if sample.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, sample.ID()))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, taken := modes[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	modes[id] = mode{
		info:    GameInfo{ID: id, Title: sample.Title()},
		factory: f,
	}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(modes))
	for _, m := range modes {
		infos = append(infos, m.info)
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new instance of the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	m, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return m.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := modes[id]
	return ok
}
