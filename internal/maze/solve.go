package maze

import (
	"github.com/vovakirdan/gridkit/pkg/bitfield"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// Solve finds the shortest path from one room to another through open
// passages using breadth-first search. The path includes both endpoints.
func (mz *Maze) Solve(from, to grid.Coord) ([]grid.Coord, bool) {
	if !from.In(mz.m) || !to.In(mz.m) {
		return nil, false
	}

	const unvisited = -1
	prev := make([]int, mz.m.Size())
	for i := range prev {
		prev[i] = unvisited
	}

	start := from.As1D(mz.m)
	prev[start] = start
	queue := []grid.Coord{from}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			break
		}
		for _, d := range grid.Dirs {
			if !mz.Open(c, d) {
				continue
			}
			n := c.Get(d)
			i := n.As1D(mz.m)
			if prev[i] != unvisited {
				continue
			}
			prev[i] = c.As1D(mz.m)
			queue = append(queue, n)
		}
	}

	end := to.As1D(mz.m)
	if prev[end] == unvisited {
		return nil, false
	}

	// Walk back from the goal. Indices are row-major, so convert with
	// Width on both axes instead of Matrix.As2D.
	var path []grid.Coord
	for i := end; ; i = prev[i] {
		path = append(path, grid.C(i/mz.m.Width, i%mz.m.Width))
		if i == start {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, true
}

// Distances returns the passage distance from the given room to every
// room, row-major. Unreachable rooms get -1.
func (mz *Maze) Distances(from grid.Coord) []int {
	dist := make([]int, mz.m.Size())
	for i := range dist {
		dist[i] = -1
	}
	if !from.In(mz.m) {
		return dist
	}

	dist[from.As1D(mz.m)] = 0
	queue := []grid.Coord{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range mz.Exits(c) {
			n := c.Get(d)
			if dist[n.As1D(mz.m)] >= 0 {
				continue
			}
			dist[n.As1D(mz.m)] = dist[c.As1D(mz.m)] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Perfect reports whether every room is reachable and there is exactly one
// path between any two rooms, i.e. the passages form a spanning tree.
func (mz *Maze) Perfect() bool {
	for _, d := range mz.Distances(mz.Start()) {
		if d < 0 {
			return false
		}
	}
	open := 0
	for _, flags := range mz.cells {
		open += bitfield.CountOn(flags)
	}
	// every passage is counted from both sides
	return open/2 == mz.m.Size()-1
}
