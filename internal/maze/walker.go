package maze

import "github.com/vovakirdan/gridkit/pkg/grid"

// Walker tracks a walk from the start room towards the goal. The zero value
// is not usable, create one with NewWalker.
type Walker struct {
	mz    *Maze
	pos   grid.Coord
	steps int
}

// NewWalker places a walker in the start room of mz.
func NewWalker(mz *Maze) Walker {
	return Walker{mz: mz, pos: mz.Start()}
}

// Maze returns the maze being walked.
func (w *Walker) Maze() *Maze {
	return w.mz
}

// Position returns the current room.
func (w *Walker) Position() grid.Coord {
	return w.pos
}

// Steps returns the number of moves since the last reset.
func (w *Walker) Steps() int {
	return w.steps
}

// Finished reports whether the walker stands in the goal room.
func (w *Walker) Finished() bool {
	return w.pos == w.mz.Goal()
}

// Move steps through an open passage in direction d. It returns false when
// a wall or the border is in the way, or the walk is already finished.
func (w *Walker) Move(d grid.Dir) bool {
	if w.Finished() || !w.mz.Open(w.pos, d) {
		return false
	}
	w.pos = w.pos.Get(d)
	w.steps++
	return true
}

// Reset returns the walker to the start room.
func (w *Walker) Reset() {
	w.pos = w.mz.Start()
	w.steps = 0
}
