// Package maze stores a perfect or imperfect maze on top of a grid.Matrix.
// Each room keeps a bit field of open passages indexed by grid.Dir code.
package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridkit/pkg/bitfield"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// ErrSize is returned when serialized data does not match the matrix.
var ErrSize = errors.New("maze: data size does not match dimensions")

// ErrCorrupt is returned when serialized passages are not a valid maze.
var ErrCorrupt = errors.New("maze: corrupt passage data")

// Maze is a Width x Height set of rooms. All walls start closed.
type Maze struct {
	m     grid.Matrix
	cells []uint8 // passage flags, row-major
}

// New creates a maze with every wall closed.
func New(m grid.Matrix) *Maze {
	return &Maze{
		m:     m,
		cells: make([]uint8, m.Size()),
	}
}

// FromBytes rebuilds a maze from the output of Bytes.
func FromBytes(m grid.Matrix, data []byte) (*Maze, error) {
	if len(data) != m.Size() {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrSize, len(data), m.Width, m.Height)
	}
	mz := New(m)
	copy(mz.cells, data)
	if err := mz.validate(); err != nil {
		return nil, err
	}
	return mz, nil
}

// validate checks that every passage bit names a direction, leads to a room
// inside the maze and is matched by the neighbor's inverse bit.
func (mz *Maze) validate() error {
	var known uint8
	for _, d := range grid.Dirs {
		known = bitfield.SetOn(known, d)
	}

	for i, flags := range mz.cells {
		c := grid.C(i/mz.m.Width, i%mz.m.Width)
		if flags&^known != 0 {
			return fmt.Errorf("%w: room %v has unknown bits %08b", ErrCorrupt, c, flags&^known)
		}
		for _, d := range grid.Dirs {
			if !bitfield.Contains(flags, d) {
				continue
			}
			if !c.Has(mz.m, d) {
				return fmt.Errorf("%w: room %v opens %v off the grid", ErrCorrupt, c, d)
			}
			if !mz.Open(c.Get(d), d.Inverse()) {
				return fmt.Errorf("%w: room %v opens %v but %v does not open back", ErrCorrupt, c, d, c.Get(d))
			}
		}
	}
	return nil
}

// Matrix returns the dimensions of the maze.
func (mz *Maze) Matrix() grid.Matrix {
	return mz.m
}

// Bytes returns a copy of the passage flags, one byte per room.
func (mz *Maze) Bytes() []byte {
	out := make([]byte, len(mz.cells))
	copy(out, mz.cells)
	return out
}

// Carve opens the passage between c and its neighbor in direction d.
// It returns false and changes nothing if either room is outside the maze.
func (mz *Maze) Carve(c grid.Coord, d grid.Dir) bool {
	if !c.In(mz.m) || !c.Has(mz.m, d) {
		return false
	}
	n := c.Get(d)
	i, j := c.As1D(mz.m), n.As1D(mz.m)
	mz.cells[i] = bitfield.SetOn(mz.cells[i], d)
	mz.cells[j] = bitfield.SetOn(mz.cells[j], d.Inverse())
	return true
}

// Wall closes the passage between c and its neighbor in direction d.
func (mz *Maze) Wall(c grid.Coord, d grid.Dir) bool {
	if !c.In(mz.m) || !c.Has(mz.m, d) {
		return false
	}
	n := c.Get(d)
	i, j := c.As1D(mz.m), n.As1D(mz.m)
	mz.cells[i] = bitfield.SetOff(mz.cells[i], d)
	mz.cells[j] = bitfield.SetOff(mz.cells[j], d.Inverse())
	return true
}

// Open reports whether the passage from c in direction d is open.
func (mz *Maze) Open(c grid.Coord, d grid.Dir) bool {
	if !c.In(mz.m) {
		return false
	}
	return bitfield.Contains(mz.cells[c.As1D(mz.m)], d)
}

// Flags returns the raw passage bits of room c.
func (mz *Maze) Flags(c grid.Coord) uint8 {
	if !c.In(mz.m) {
		return 0
	}
	return mz.cells[c.As1D(mz.m)]
}

// Passages returns the number of open passages of room c.
func (mz *Maze) Passages(c grid.Coord) int {
	return bitfield.CountOn(mz.Flags(c))
}

// Exits returns the directions with an open passage from c.
func (mz *Maze) Exits(c grid.Coord) []grid.Dir {
	var dirs []grid.Dir
	for _, d := range grid.Dirs {
		if mz.Open(c, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// DeadEnds returns every room with exactly one passage, in row-major order.
func (mz *Maze) DeadEnds() []grid.Coord {
	var ends []grid.Coord
	for row := 0; row < mz.m.Height; row++ {
		for col := 0; col < mz.m.Width; col++ {
			c := grid.C(row, col)
			if mz.Passages(c) == 1 {
				ends = append(ends, c)
			}
		}
	}
	return ends
}

// Start returns the top-left room.
func (mz *Maze) Start() grid.Coord {
	return grid.C(0, 0)
}

// Goal returns the bottom-right room.
func (mz *Maze) Goal() grid.Coord {
	return grid.C(mz.m.Height-1, mz.m.Width-1)
}

// DirTo returns the direction that leads from a to its neighbor b.
func DirTo(a, b grid.Coord) (grid.Dir, bool) {
	for _, d := range grid.Dirs {
		if a.Get(d) == b {
			return d, true
		}
	}
	return 0, false
}
