// Package sidewinder implements the sidewinder maze generator.
//
// Each row is split into horizontal runs. A run ends at random; when it does,
// one room of the run is connected upward. The top row is a single corridor.
package sidewinder

import (
	"math/rand"

	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

const ID = "sidewinder"

func init() {
	registry.Register(ID, New)
}

type Generator struct{}

func New() registry.Generator {
	return Generator{}
}

func (Generator) ID() string    { return ID }
func (Generator) Title() string { return "Sidewinder" }

func (Generator) Generate(m grid.Matrix, rng *rand.Rand) *maze.Maze {
	mz := maze.New(m)
	var run []grid.Coord
	for row := 0; row < m.Height; row++ {
		run = run[:0]
		for col := 0; col < m.Width; col++ {
			c := grid.C(row, col)
			run = append(run, c)

			closeRun := !m.HasRightOf(c) || (m.HasTopOf(c) && rng.Intn(2) == 0)
			if !closeRun {
				mz.Carve(c, grid.Right)
				continue
			}
			if m.HasTopOf(c) {
				mz.Carve(run[rng.Intn(len(run))], grid.Top)
			}
			run = run[:0]
		}
	}
	return mz
}
