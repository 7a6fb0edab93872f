// Package registry maps game IDs to factories. Engines register themselves
// in init() so the CLI can build them by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the contract between a simulation engine and the platform.
// Engines are pure logic: no Bubble Tea, no terminal access. The platform
// owns timing, input mapping and drawing to the terminal.
type Game interface {
	// ID returns a unique identifier (e.g. "breakout").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize rebuilds the layout for a new screen size without
	// discarding the session.
	Resize(screenW, screenH int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared buffer.
	Render(dst *core.Screen)

	// State returns the current status summary.
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
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
