// Package render provides a character canvas addressed by grid coordinates
// and converts it to plain or styled terminal output.
package render

import (
	"strings"

	"github.com/vovakirdan/gridkit/pkg/grid"
)

// Cell is a single character on the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a 2D character buffer. Row 0 is the top line.
type Canvas struct {
	m     grid.Matrix
	cells []Cell
}

// NewCanvas creates a canvas with the given number of columns and rows,
// filled with spaces.
func NewCanvas(width, height int) *Canvas {
	cv := &Canvas{
		m:     grid.New(width, height),
		cells: make([]Cell, width*height),
	}
	cv.Clear()
	return cv
}

// Width returns the canvas width in characters.
func (cv *Canvas) Width() int {
	return cv.m.Width
}

// Height returns the canvas height in characters.
func (cv *Canvas) Height() int {
	return cv.m.Height
}

// Clear fills the entire canvas with uncolored spaces.
func (cv *Canvas) Clear() {
	cv.Fill(' ', ColorDefault)
}

// Fill fills the entire canvas with the given rune and color.
func (cv *Canvas) Fill(r rune, color Color) {
	for i := range cv.cells {
		cv.cells[i] = Cell{Rune: r, Color: color}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (cv *Canvas) Set(c grid.Coord, r rune, color Color) {
	if !c.In(cv.m) {
		return
	}
	cv.cells[c.As1D(cv.m)] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the given position.
// Returns an uncolored space for out-of-bounds coordinates.
func (cv *Canvas) Get(c grid.Coord) Cell {
	if !c.In(cv.m) {
		return Cell{Rune: ' '}
	}
	return cv.cells[c.As1D(cv.m)]
}

// DrawText writes a string horizontally starting at c.
// Characters that extend beyond the canvas are clipped.
func (cv *Canvas) DrawText(c grid.Coord, text string, color Color) {
	for _, r := range text {
		cv.Set(c, r, color)
		c = c.Get(grid.Right)
	}
}

// String converts the canvas to plain text, one line per row.
func (cv *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(cv.m.Size() + cv.m.Height)

	for row := 0; row < cv.m.Height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(cv.Row(row))
	}
	return sb.String()
}

// Row returns the runes of one row as a string.
func (cv *Canvas) Row(row int) string {
	if row < 0 || row >= cv.m.Height {
		return strings.Repeat(" ", cv.m.Width)
	}
	runes := make([]rune, cv.m.Width)
	for col := range runes {
		runes[col] = cv.cells[cv.m.As1D(row, col)].Rune
	}
	return string(runes)
}
