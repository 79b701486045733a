// Package registry keeps the set of playable puzzle variants.
// Variants register themselves in init() functions so the platform can
// list and instantiate them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// Game is the interface the platform drives every frame.
// Games contain pure logic with no Bubble Tea dependency; the platform
// owns input mapping, timing, and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "15puzzle"), used on the command line
	// and as the score key.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset builds a fresh, solved board.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current board into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current round status.
	State() core.GameState
}

// Configurable is implemented by games that read a YAML config file
// and accept a difficulty preset before Reset.
type Configurable interface {
	SetConfigPath(path string)
	SetDifficulty(preset string) error
}

// Observable is implemented by games that publish puzzle events.
// Observers registered here survive Reset.
type Observable interface {
	Observe(fn puzzle.Observer)
}

// Resizable is implemented by games that can follow a terminal resize
// without starting over.
type Resizable interface {
	Resize(w, h int)
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

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
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
