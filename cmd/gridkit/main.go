// gridkit is a toolkit for rectangular grids and the mazes carved in them.
//
// Usage:
//
//	gridkit cell <index>        - Show coordinates and neighbors of a cell
//	gridkit list                - List available maze generators
//	gridkit maze                - Generate and print a maze
//	gridkit mazes               - List saved mazes
//	gridkit show <id>           - Print a saved maze and its walks
//	gridkit delete <id>         - Delete a saved maze
//	gridkit browse              - Pick a saved maze interactively
//	gridkit walk [id]           - Walk a maze in the terminal
//	gridkit serve               - Start SSH server for remote walking
//	gridkit http                - Start JSON and WebSocket API server
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.gridkit/mazes.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/config"
	"github.com/vovakirdan/gridkit/internal/storage"

	// Import generators to register them
	_ "github.com/vovakirdan/gridkit/internal/generators/backtracker"
	_ "github.com/vovakirdan/gridkit/internal/generators/binarytree"
	_ "github.com/vovakirdan/gridkit/internal/generators/sidewinder"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "gridkit",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridkit",
	Short: "gridkit - rectangular grids and mazes in your terminal",
	Long: `gridkit works with rectangular grids addressed by flat indices or
(row, col) coordinates, and carves, solves, stores and walks mazes on them.

Available commands:
  cell     - Show coordinates, predicates and neighbors of a cell
  list     - Show all maze generators
  maze     - Generate a maze and print it
  mazes    - List saved mazes
  show     - Print a saved maze with its best walk
  delete   - Delete a saved maze
  browse   - Pick a saved maze from a table and walk it
  walk     - Walk a maze interactively
  serve    - Start SSH server for remote walking
  http     - Start JSON and WebSocket API server

Examples:
  gridkit cell 5 --width 3 --height 2
  gridkit maze --size small --solve
  gridkit maze --algorithm sidewinder --seed 42 --save
  gridkit walk 3
  gridkit serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to maze database (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(cellCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(httpCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("loading config: %v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagSeed != 0 {
		cfg.Maze.Seed = flagSeed
	}
	logger.Debug("config loaded", "algorithm", cfg.Maze.Algorithm, "db", cfg.Storage.DBPath)
	return cfg
}

// openStore opens the maze database or exits.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	return store
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
