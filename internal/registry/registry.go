// Package registry provides a global registry of maze generators.
// Generators register themselves in init() functions, allowing the CLI
// and the SSH server to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// Generator carves a maze out of a fully walled grid.
type Generator interface {
	// ID returns a unique identifier (e.g., "backtracker").
	// Used for CLI flags and stored with saved mazes.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Generate returns a new maze for m. The same rng seed must produce
	// the same maze.
	Generate(m grid.Matrix, rng *rand.Rand) *maze.Maze
}

// GeneratorInfo contains metadata about a registered generator.
type GeneratorInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Factory is a function that creates a new generator instance.
type Factory func() Generator

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Panics if a generator with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered generators, sorted by ID.
func List() []GeneratorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GeneratorInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GeneratorInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a generator by its ID.
func Create(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown generator %q", id)
	}

	return f(), nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Generate looks up a generator and runs it with a seeded source.
func Generate(id string, m grid.Matrix, seed int64) (*maze.Maze, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	return g.Generate(m, rand.New(rand.NewSource(seed))), nil
}
