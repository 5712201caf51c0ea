package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridkit/internal/config"
	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/platform/tui"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/internal/render"
	"github.com/vovakirdan/gridkit/pkg/grid"
)

var (
	flagSize      string
	flagWidth     int
	flagHeight    int
	flagAlgorithm string
	flagSolve     bool
	flagSave      bool
	flagName      string
	flagPlain     bool
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Generate and print a maze",
	Long: `Generate a maze and print its layout.

The maze is drawn at double resolution: every room and every wall between
two rooms takes one character. The start is the top-left room, the goal
the bottom-right one.

Size options:
  small  - 10x6 rooms
  medium - 20x10 rooms
  large  - 40x20 rooms
  fit    - as large as the terminal allows
--width and --height override the preset.

Examples:
  gridkit maze
  gridkit maze --size fit --solve
  gridkit maze --algorithm binarytree --width 8 --height 8
  gridkit maze --seed 42 --save --name practice`,
	Run: runMaze,
}

func init() {
	addMazeFlags(mazeCmd)
	mazeCmd.Flags().BoolVar(&flagSolve, "solve", false, "Draw the shortest path from start to goal")
	mazeCmd.Flags().BoolVar(&flagSave, "save", false, "Save the maze to the database")
	mazeCmd.Flags().StringVar(&flagName, "name", "", "Name for the saved maze")
	mazeCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
}

// addMazeFlags registers the flags shared by commands that generate mazes.
func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSize, "size", "", "Size preset: small, medium, large, fit")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Maze width in rooms (overrides --size)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Maze height in rooms (overrides --size)")
	cmd.Flags().StringVar(&flagAlgorithm, "algorithm", "", "Generator ID (see 'gridkit list')")
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// applyMazeFlags resolves maze dimensions and algorithm from the config and
// the maze flags. spareLines is kept free when sizing to the terminal.
func applyMazeFlags(cfg *config.Config, spareLines int) {
	if flagSize != "" {
		preset, err := config.ParseSizePreset(flagSize)
		if err != nil {
			fail("%v", err)
		}
		if preset == config.SizeFit {
			cfg.Maze.Width, cfg.Maze.Height = fitWithSpare(spareLines)
		} else {
			config.ApplySizePreset(cfg, preset)
		}
	}
	if flagWidth > 0 {
		cfg.Maze.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Maze.Height = flagHeight
	}
	if flagAlgorithm != "" {
		cfg.Maze.Algorithm = flagAlgorithm
	}

	if !registry.Exists(cfg.Maze.Algorithm) {
		fmt.Fprintf(os.Stderr, "Error: unknown generator %q\n", cfg.Maze.Algorithm)
		fmt.Fprintln(os.Stderr, "Run 'gridkit list' to see available generators.")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
}

func fitWithSpare(spareLines int) (int, int) {
	w, h := terminalSize()
	return config.FitDimensions(w, h, spareLines)
}

// generate builds a maze from the resolved config and returns it with the
// seed that produced it.
func generate(cfg config.Config) (*maze.Maze, int64) {
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mz, err := registry.Generate(cfg.Maze.Algorithm, grid.New(cfg.Maze.Width, cfg.Maze.Height), seed)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("maze generated",
		"algorithm", cfg.Maze.Algorithm,
		"width", cfg.Maze.Width,
		"height", cfg.Maze.Height,
		"seed", seed,
	)
	return mz, seed
}

func runMaze(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	applyMazeFlags(&cfg, 3) // Leave room for the summary lines

	mz, seed := generate(cfg)

	var path []grid.Coord
	if flagSolve {
		var ok bool
		path, ok = mz.Solve(mz.Start(), mz.Goal())
		if !ok {
			logger.Warn("maze has no path from start to goal", "algorithm", cfg.Maze.Algorithm)
		}
	}

	theme := tui.ThemeFromConfig(cfg.Render)
	cv := mz.Canvas(theme.Maze, path)
	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(cv.String())
	} else {
		fmt.Println(render.Styled(cv))
	}

	fmt.Printf("%s %dx%d, seed %d, %d dead ends",
		cfg.Maze.Algorithm, cfg.Maze.Width, cfg.Maze.Height, seed, len(mz.DeadEnds()))
	if flagSolve && len(path) > 0 {
		fmt.Printf(", solution %d steps", len(path)-1)
	}
	fmt.Println()

	if flagSave {
		store := openStore(cfg)
		defer store.Close()

		id, err := store.SaveMaze(flagName, cfg.Maze.Algorithm, seed, mz)
		if err != nil {
			fail("saving maze: %v", err)
		}
		fmt.Printf("Saved as maze #%d. Walk it with 'gridkit walk %d'.\n", id, id)
	}
}
