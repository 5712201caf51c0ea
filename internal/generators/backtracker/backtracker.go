// Package backtracker implements the randomized depth-first search maze
// generator. It produces long winding corridors with few dead ends.
package backtracker

import (
	"math/rand"

	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

const ID = "backtracker"

func init() {
	registry.Register(ID, New)
}

// Generator is the recursive backtracker. The recursion is kept on an
// explicit stack so large mazes do not grow the goroutine stack.
type Generator struct{}

// New creates a backtracker generator.
func New() registry.Generator {
	return Generator{}
}

func (Generator) ID() string    { return ID }
func (Generator) Title() string { return "Recursive Backtracker" }

// Generate carves a perfect maze starting from the top-left room.
func (Generator) Generate(m grid.Matrix, rng *rand.Rand) *maze.Maze {
	mz := maze.New(m)
	if m.Size() == 0 {
		return mz
	}

	visited := make([]bool, m.Size())
	start := mz.Start()
	visited[start.As1D(m)] = true
	stack := []grid.Coord{start}

	var options []grid.Dir
	for len(stack) > 0 {
		c := stack[len(stack)-1]

		options = options[:0]
		for _, d := range grid.Dirs {
			if c.Has(m, d) && !visited[c.Get(d).As1D(m)] {
				options = append(options, d)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := options[rng.Intn(len(options))]
		n := c.Get(d)
		mz.Carve(c, d)
		visited[n.As1D(m)] = true
		stack = append(stack, n)
	}
	return mz
}
