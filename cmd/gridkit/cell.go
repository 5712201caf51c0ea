package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/pkg/bitfield"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

var (
	flagCellWidth  int
	flagCellHeight int
)

var cellCmd = &cobra.Command{
	Use:   "cell <index> | cell <row> <col>",
	Short: "Show coordinates and neighbors of a cell",
	Long: `Shows how a cell of a width x height grid is addressed: its flat index,
row and column, which neighbors exist and where they are.

With one argument the cell is given by its flat index and the index based
helpers are shown. With two arguments it is given as row and column.

Note: the row of a flat index is computed as index / height, which only
agrees with row*width + col on square grids.

Examples:
  gridkit cell 4                       # center of the default 3x3 grid
  gridkit cell 5 --width 3 --height 2
  gridkit cell 1 2 --width 4 --height 4`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runCell,
}

func init() {
	cellCmd.Flags().IntVar(&flagCellWidth, "width", 3, "Grid width (columns)")
	cellCmd.Flags().IntVar(&flagCellHeight, "height", 3, "Grid height (rows)")
}

func runCell(cmd *cobra.Command, args []string) {
	if flagCellWidth < 1 || flagCellHeight < 1 {
		fail("grid size must be positive, got %dx%d", flagCellWidth, flagCellHeight)
	}
	m := grid.New(flagCellWidth, flagCellHeight)

	values := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			fail("invalid number %q", a)
		}
		values[i] = v
	}

	fmt.Printf("Grid %dx%d (%d cells)\n\n", m.Width, m.Height, m.Size())

	if len(values) == 1 {
		printIndexCell(m, values[0])
		return
	}
	printCoordCell(m, grid.C(values[0], values[1]))
}

func printIndexCell(m grid.Matrix, cell int) {
	if cell < 0 || cell >= m.Size() {
		fail("cell %d is outside the grid (0..%d)", cell, m.Size()-1)
	}

	c := m.As2D(cell)
	fmt.Printf("  index   %d\n", cell)
	fmt.Printf("  row     %d\n", m.Row(cell))
	fmt.Printf("  col     %d\n", m.Col(cell))
	fmt.Printf("  as 2D   %s\n", c)
	fmt.Printf("  as 1D   %d\n", m.As1D(c.Row, c.Col))
	fmt.Println()

	type neighbor struct {
		name string
		has  bool
		at   grid.Coord
	}
	neighbors := []neighbor{
		{"top", m.HasTop(cell), m.Top(cell)},
		{"right", m.HasRight(cell), m.Right(cell)},
		{"bottom", m.HasBottom(cell), m.Bottom(cell)},
		{"left", m.HasLeft(cell), m.Left(cell)},
		{"diagonal", m.HasDiagonal(cell), m.Diagonal(cell)},
	}

	var present uint8
	fmt.Printf("  %-9s %-5s %s\n", "Neighbor", "Has", "At")
	fmt.Printf("  %-9s %-5s %s\n", "--------", "---", "--")
	for i, n := range neighbors {
		fmt.Printf("  %-9s %-5t %s\n", n.name, n.has, n.at)
		if n.has {
			present = bitfield.SetOn(present, i)
		}
	}
	fmt.Printf("\n  %d of %d neighbors inside the grid\n", bitfield.CountOn(present), len(neighbors))
}

func printCoordCell(m grid.Matrix, c grid.Coord) {
	if !m.Contains(c) {
		fail("cell %s is outside the grid", c)
	}

	fmt.Printf("  coord   %s\n", c)
	fmt.Printf("  index   %d\n", c.As1D(m))
	fmt.Printf("  layout  %s\n", grid.MapToGrid(c))
	fmt.Println()

	type neighbor struct {
		name string
		has  bool
		at   grid.Coord
	}
	neighbors := []neighbor{
		{"top", m.HasTopOf(c), m.TopOf(c)},
		{"right", m.HasRightOf(c), m.RightOf(c)},
		{"bottom", m.HasBottomOf(c), m.BottomOf(c)},
		{"left", m.HasLeftOf(c), m.LeftOf(c)},
		{"diagonal", m.HasDiagonalOf(c), m.DiagonalOf(c)},
	}

	var present uint8
	fmt.Printf("  %-9s %-5s %-8s %s\n", "Neighbor", "Has", "At", "Index")
	fmt.Printf("  %-9s %-5s %-8s %s\n", "--------", "---", "--", "-----")
	for i, n := range neighbors {
		index := "-"
		if n.has {
			index = strconv.Itoa(n.at.As1D(m))
			present = bitfield.SetOn(present, i)
		}
		fmt.Printf("  %-9s %-5t %-8s %s\n", n.name, n.has, n.at, index)
	}
	fmt.Printf("\n  %d of %d neighbors inside the grid\n", bitfield.CountOn(present), len(neighbors))
}
