// Package registry holds the game factory registry. Game packages register
// themselves in init() functions so the platform can discover and create
// them without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/avoronov/tui-orbit/internal/core"
)

// Game is the interface every playable title implements. Games contain pure
// simulation logic with no terminal dependencies; the platform handles input
// mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable display name.
	Title() string

	// Reset initializes or restarts the game with screen dimensions, tick
	// rate, and the RNG seed for deterministic simulation.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current score, combo, and status flags.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry. Typically called from a
// game's init() function. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Resolve the display title once, from a throwaway instance.
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// DefaultID returns the single registered game when exactly one exists, or
// the empty string otherwise. Lets the CLI omit the game argument on a
// single-title build.
func DefaultID() string {
	mu.RLock()
	defer mu.RUnlock()

	if len(factories) != 1 {
		return ""
	}
	for id := range factories {
		return id
	}
	return ""
}
