// Package grid provides coordinate math for rectangular grids.
// A Matrix has no backing storage: it converts between linear cell indices
// and (row, col) coordinates and computes neighbors in the four cardinal
// directions. Nothing in this package validates its input; callers check
// results with Coord.In or the Has* predicates.
package grid

import "fmt"

// Dir is one of the four cardinal directions.
//
// The codes are chosen so that neighbor arithmetic needs no branching:
// bit 0 is set for the Y axis (Top, Bottom) and clear for the X axis
// (Right, Left); bit 1 together with bit 0 gives the sign of the step.
type Dir uint8

const (
	Top Dir = iota + 1
	Right
	Bottom
	Left
)

// Dirs lists the four directions in code order.
var Dirs = [4]Dir{Top, Right, Bottom, Left}

// IsY reports whether d is Top or Bottom.
func (d Dir) IsY() bool {
	return d&1 != 0
}

// IsX reports whether d is Right or Left.
func (d Dir) IsX() bool {
	return d&1 == 0
}

// Inverse returns the opposite direction: Top <-> Bottom, Right <-> Left.
func (d Dir) Inverse() Dir {
	return 1 + (d+1)&3
}

// Delta returns the (drow, dcol) step for one move in this direction.
func (d Dir) Delta() (drow, dcol int) {
	n := C(0, 0).Get(d)
	return n.Row, n.Col
}

// String returns the lowercase name of the direction.
func (d Dir) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("dir(%d)", uint8(d))
	}
}

// ParseDir converts a direction name (or its first letter) to a Dir.
func ParseDir(s string) (Dir, error) {
	switch s {
	case "top", "t", "up", "north", "n":
		return Top, nil
	case "right", "r", "east", "e":
		return Right, nil
	case "bottom", "b", "down", "south", "s":
		return Bottom, nil
	case "left", "l", "west", "w":
		return Left, nil
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}
