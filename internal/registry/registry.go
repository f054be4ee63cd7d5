// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// Game is what a frontend drives. The simulation owns its rules; the
// frontend handles input mapping, timing and presentation.
type Game interface {
	// ID returns a unique identifier for the game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns to the title screen.
	Reset()

	// Step advances the simulation by dt seconds.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Draw paints the current frame in level pixels.
	Draw(c core.Canvas)

	// Size returns the play area in level pixels.
	Size() (w, h float64)

	// CellSize returns the grid cell size in level pixels.
	CellSize() float64

	// State returns the current game state.
	State() core.GameState

	// Reload swaps the level; an invalid descriptor is rejected.
	Reload(d levels.Descriptor) error
}

// Frontend presents a game session on some surface.
type Frontend interface {
	// ID returns the name used by --frontend.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run blocks until the player quits.
	Run(s *Session) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
