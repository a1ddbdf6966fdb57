// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions so the platform can
// list and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier (e.g. "taxi", "delivery").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a new round using the given screen size, seed and name.
	Reset(cfg core.RuntimeConfig)

	// Step applies the queued actions and advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns score, game-over and pause status.
	State() core.GameState
}

// Reporter is implemented by games that can summarise a finished round for
// the run history.
type Reporter interface {
	Report() core.RoundReport
}

// Env carries shared dependencies into new game instances.
type Env struct {
	Logger *log.Logger // nil discards
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func(env Env) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f(Env{}).Title()
}

// List returns all registered games sorted by ID.
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

// Create instantiates a game by ID.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(env), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
