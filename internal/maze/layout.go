package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/gridkit/internal/render"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

// Style controls how a maze is drawn.
type Style struct {
	Wall      rune
	Floor     rune
	Path      rune
	WallColor render.Color
	PathColor render.Color
}

// DefaultStyle returns the plain ASCII style.
func DefaultStyle() Style {
	return Style{
		Wall:      '#',
		Floor:     ' ',
		Path:      '.',
		WallColor: render.ColorGray,
		PathColor: render.ColorYellow,
	}
}

// LayoutMatrix returns the dimensions of the double-resolution layout:
// one character per room, one per wall between rooms, and the outer border.
func LayoutMatrix(m grid.Matrix) grid.Matrix {
	return grid.New(2*m.Width+1, 2*m.Height+1)
}

// RoomAt returns the layout position of room c.
func RoomAt(c grid.Coord) grid.Coord {
	return grid.MapToGrid(c).Get(grid.Bottom).Get(grid.Right)
}

// Draw renders the maze into cv with its top-left corner at origin.
// Rooms on path, and the passages between consecutive rooms, use the path rune.
func (mz *Maze) Draw(cv *render.Canvas, origin grid.Coord, st Style, path []grid.Coord) {
	lm := LayoutMatrix(mz.m)
	at := func(c grid.Coord) grid.Coord {
		return grid.C(origin.Row+c.Row, origin.Col+c.Col)
	}

	for row := 0; row < lm.Height; row++ {
		for col := 0; col < lm.Width; col++ {
			cv.Set(at(grid.C(row, col)), st.Wall, st.WallColor)
		}
	}

	for row := 0; row < mz.m.Height; row++ {
		for col := 0; col < mz.m.Width; col++ {
			c := grid.C(row, col)
			l := RoomAt(c)
			cv.Set(at(l), st.Floor, render.ColorDefault)
			for _, d := range [2]grid.Dir{grid.Right, grid.Bottom} {
				if mz.Open(c, d) {
					cv.Set(at(l.Get(d)), st.Floor, render.ColorDefault)
				}
			}
		}
	}

	for i, c := range path {
		l := RoomAt(c)
		cv.Set(at(l), st.Path, st.PathColor)
		if i+1 < len(path) {
			if d, ok := DirTo(c, path[i+1]); ok {
				cv.Set(at(l.Get(d)), st.Path, st.PathColor)
			}
		}
	}
}

// Canvas renders the maze into a fresh canvas sized to its layout.
func (mz *Maze) Canvas(st Style, path []grid.Coord) *render.Canvas {
	lm := LayoutMatrix(mz.m)
	cv := render.NewCanvas(lm.Width, lm.Height)
	mz.Draw(cv, grid.C(0, 0), st, path)
	return cv
}

// String renders the maze as plain text with the default style.
func (mz *Maze) String() string {
	return mz.Canvas(DefaultStyle(), nil).String()
}

// Parse rebuilds a maze from its text layout. Any rune other than wall is
// treated as open.
func Parse(text string, wall rune) (*Maze, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, errors.New("maze: empty layout")
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("maze: line %d has %d columns, expected %d", i+1, len(rows[i]), len(rows[0]))
		}
	}

	lh, lw := len(rows), len(rows[0])
	if lh < 3 || lw < 3 || lh%2 == 0 || lw%2 == 0 {
		return nil, fmt.Errorf("maze: layout %dx%d is not a (2w+1)x(2h+1) grid", lw, lh)
	}

	mz := New(grid.New((lw-1)/2, (lh-1)/2))

	// Passages sit where exactly one of the layout row and column is even.
	// The rooms on either side map back with MapToMaze.
	for row := 1; row < lh-1; row++ {
		for col := 1; col < lw-1; col++ {
			if rows[row][col] == wall {
				continue
			}
			l := grid.C(row, col)
			switch {
			case row%2 == 1 && col%2 == 0:
				mz.Carve(grid.MapToMaze(l.Get(grid.Left)), grid.Right)
			case row%2 == 0 && col%2 == 1:
				mz.Carve(grid.MapToMaze(l.Get(grid.Top)), grid.Bottom)
			}
		}
	}
	return mz, nil
}
