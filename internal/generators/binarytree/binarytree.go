// Package binarytree implements the binary tree maze generator: every room
// opens either Bottom or Right. The last row and column become straight
// corridors.
package binarytree

import (
	"math/rand"

	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

const ID = "binarytree"

func init() {
	registry.Register(ID, New)
}

type Generator struct{}

func New() registry.Generator {
	return Generator{}
}

func (Generator) ID() string    { return ID }
func (Generator) Title() string { return "Binary Tree" }

func (Generator) Generate(m grid.Matrix, rng *rand.Rand) *maze.Maze {
	mz := maze.New(m)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			c := grid.C(row, col)
			down, right := m.HasBottomOf(c), m.HasRightOf(c)
			switch {
			case down && right:
				if rng.Intn(2) == 0 {
					mz.Carve(c, grid.Bottom)
				} else {
					mz.Carve(c, grid.Right)
				}
			case down:
				mz.Carve(c, grid.Bottom)
			case right:
				mz.Carve(c, grid.Right)
			}
		}
	}
	return mz
}
