package grid

import "fmt"

// Coord is a (row, col) pair. It is not bound to any Matrix; use In to check
// whether it lies inside one.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// As1D maps the coordinate to a linear index in m.
func (c Coord) As1D(m Matrix) int {
	return c.Row*m.Width + c.Col
}

// In reports whether the coordinate lies inside m.
func (c Coord) In(m Matrix) bool {
	return c.Row >= 0 && c.Row < m.Height && c.Col >= 0 && c.Col < m.Width
}

// Get returns the neighbor of c in direction d.
//
// Bit 0 of d picks the axis: set changes the row, clear changes the column.
// (d&2)-1 is -1 or +1 and gives the sign, so one formula covers all four
// directions.
func (c Coord) Get(d Dir) Coord {
	return Coord{Row: c.GetRow(d), Col: c.GetCol(d)}
}

// GetRow returns the row of the neighbor in direction d.
func (c Coord) GetRow(d Dir) int {
	n := int(d)
	return c.Row + (n&1)*((n&2)-1)
}

// GetCol returns the column of the neighbor in direction d.
func (c Coord) GetCol(d Dir) int {
	n := int(d)
	return c.Col + (^n&1)*((n&2)-1)
}

// Has reports whether the neighbor in direction d lies inside m.
func (c Coord) Has(m Matrix, d Dir) bool {
	return c.Get(d).In(m)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// MapToGrid scales a room coordinate to the double-resolution layout where
// walls sit between rooms.
func MapToGrid(c Coord) Coord {
	return Coord{Row: c.Row * 2, Col: c.Col * 2}
}

// MapToMaze maps a double-resolution layout coordinate back to its room.
// Division truncates toward zero.
func MapToMaze(c Coord) Coord {
	return Coord{Row: c.Row / 2, Col: c.Col / 2}
}
