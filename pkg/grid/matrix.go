package grid

// Matrix describes a Width x Height grid of cells without storing them.
// Linear indices are row-major: index = row*Width + col.
type Matrix struct {
	Width  int // number of columns
	Height int // number of rows
}

// New returns a Matrix with the given number of columns and rows.
func New(width, height int) Matrix {
	return Matrix{Width: width, Height: height}
}

// Size returns the number of cells.
func (m Matrix) Size() int {
	return m.Width * m.Height
}

// Row maps a linear cell to its row.
//
// The divisor is Height, not Width, so Row and As1D are only inverses of
// each other on square matrices. Callers that need a reliable round trip
// on non-square matrices should work with Coord values.
func (m Matrix) Row(cell int) int {
	return cell / m.Height
}

// Col maps a linear cell to its column.
func (m Matrix) Col(cell int) int {
	return cell % m.Width
}

// As1D maps a (row, col) pair to a linear cell index.
func (m Matrix) As1D(row, col int) int {
	return row*m.Width + col
}

// As2D maps a linear cell index to a coordinate.
func (m Matrix) As2D(cell int) Coord {
	return Coord{Row: m.Row(cell), Col: m.Col(cell)}
}

// HasRight reports whether cell has a column to its right.
func (m Matrix) HasRight(cell int) bool {
	return m.Col(cell) < m.Width-1
}

// HasLeft reports whether cell has a column to its left.
func (m Matrix) HasLeft(cell int) bool {
	return m.Col(cell) > 0
}

// HasTop reports whether cell has a row above it.
func (m Matrix) HasTop(cell int) bool {
	return m.Row(cell) > 0
}

// HasBottom reports whether cell has a row below it.
func (m Matrix) HasBottom(cell int) bool {
	return m.Row(cell) < m.Height-1
}

// HasDiagonal reports whether cell has a neighbor one row down and one
// column right.
func (m Matrix) HasDiagonal(cell int) bool {
	return m.HasRight(cell) && m.HasBottom(cell)
}

// The neighbor accessors below do not check bounds. Pair them with the
// matching Has* predicate.

// Right returns the coordinate right of cell.
func (m Matrix) Right(cell int) Coord {
	return Coord{Row: m.Row(cell), Col: m.Col(cell) + 1}
}

// Left returns the coordinate left of cell.
func (m Matrix) Left(cell int) Coord {
	return Coord{Row: m.Row(cell), Col: m.Col(cell) - 1}
}

// Top returns the coordinate above cell.
func (m Matrix) Top(cell int) Coord {
	return Coord{Row: m.Row(cell) - 1, Col: m.Col(cell)}
}

// Bottom returns the coordinate below cell.
func (m Matrix) Bottom(cell int) Coord {
	return Coord{Row: m.Row(cell) + 1, Col: m.Col(cell)}
}

// Diagonal returns the coordinate one row down and one column right of cell.
func (m Matrix) Diagonal(cell int) Coord {
	return Coord{Row: m.Row(cell) + 1, Col: m.Col(cell) + 1}
}

// TopOf returns the coordinate above c.
func (m Matrix) TopOf(c Coord) Coord {
	return c.Get(Top)
}

// BottomOf returns the coordinate below c.
func (m Matrix) BottomOf(c Coord) Coord {
	return c.Get(Bottom)
}

// RightOf returns the coordinate right of c.
func (m Matrix) RightOf(c Coord) Coord {
	return c.Get(Right)
}

// LeftOf returns the coordinate left of c.
func (m Matrix) LeftOf(c Coord) Coord {
	return c.Get(Left)
}

// DiagonalOf returns the coordinate one row down and one column right of c.
func (m Matrix) DiagonalOf(c Coord) Coord {
	return Coord{Row: c.GetRow(Bottom), Col: c.GetCol(Right)}
}

// HasTopOf reports whether c has a neighbor above it inside m.
func (m Matrix) HasTopOf(c Coord) bool {
	return c.Has(m, Top)
}

// HasBottomOf reports whether c has a neighbor below it inside m.
func (m Matrix) HasBottomOf(c Coord) bool {
	return c.Has(m, Bottom)
}

// HasRightOf reports whether c has a neighbor right of it inside m.
func (m Matrix) HasRightOf(c Coord) bool {
	return c.Has(m, Right)
}

// HasLeftOf reports whether c has a neighbor left of it inside m.
func (m Matrix) HasLeftOf(c Coord) bool {
	return c.Has(m, Left)
}

// HasDiagonalOf reports whether c has a neighbor one row down and one
// column right inside m.
func (m Matrix) HasDiagonalOf(c Coord) bool {
	return c.Has(m, Right) && c.Has(m, Bottom)
}

// Get returns the neighbor of c in direction d.
func (m Matrix) Get(c Coord, d Dir) Coord {
	return c.Get(d)
}

// Contains reports whether c lies inside m.
func (m Matrix) Contains(c Coord) bool {
	return c.In(m)
}
