// Package registry maps game IDs to factories. Games register themselves
// from init, so the CLI only needs a blank import to make a game playable.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives: whole ticks, abstract keys and a
// screen to draw into. Implementations must not depend on Bubble Tea.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new session on the same instance.
	Reset()

	// Tick advances the simulation by one fixed step.
	Tick()

	// HandleInput takes one key event. Unmapped keys are ignored.
	HandleInput(k core.Key)

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a game for the given configuration.
type Factory func(cfg core.RuntimeConfig) Game

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game. It panics on a duplicate ID.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, build: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Create builds the game registered under id.
func Create(id string, cfg core.RuntimeConfig) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.build(cfg), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
