package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/config"
	"github.com/vovakirdan/gridkit/internal/maze"
	"github.com/vovakirdan/gridkit/internal/platform/tui"
	"github.com/vovakirdan/gridkit/internal/storage"
)

var walkCmd = &cobra.Command{
	Use:   "walk [id]",
	Short: "Walk a maze in the terminal",
	Long: `Walk from the top-left room to the bottom-right one.

Without an ID a new maze is generated to fit the terminal (or with the
size given by --size, --width and --height) and saved, so the walk can be
recorded. With an ID the saved maze is loaded.

Controls:
  Arrows/hjkl/wasd - Move
  P                - Show the shortest path from where you stand
  R                - Restart
  ?                - More keys
  Q/Esc/Ctrl+C     - Quit

Examples:
  gridkit walk
  gridkit walk --size small --algorithm sidewinder
  gridkit walk 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWalk,
}

func init() {
	addMazeFlags(walkCmd)
}

// playerName returns the local user name recorded with walks.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

func runWalk(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	if len(args) == 1 {
		walkSaved(cfg, store, parseID(args[0]))
		return
	}

	if flagSize == "" && flagWidth == 0 && flagHeight == 0 {
		flagSize = string(config.SizeFit)
	}
	applyMazeFlags(&cfg, 3) // Status and help lines

	mz, seed := generate(cfg)
	id, err := store.SaveMaze("", cfg.Maze.Algorithm, seed, mz)
	if err != nil {
		logger.Warn("cannot save maze, walk will not be recorded", "error", err)
		id = 0
	}

	runWalker(cfg, store, id, mz)
}

// walkSaved loads a saved maze and walks it.
func walkSaved(cfg config.Config, store *storage.Store, id int64) {
	rec := getMaze(store, id)
	mz, err := rec.Maze()
	if err != nil {
		fail("decoding maze #%d: %v", id, err)
	}
	runWalker(cfg, store, id, mz)
}

func runWalker(cfg config.Config, store *storage.Store, id int64, mz *maze.Maze) {
	opts := tui.WalkOptions{
		Player: playerName(),
		Theme:  tui.ThemeFromConfig(cfg.Render),
		Logger: logger,
	}
	if id != 0 {
		opts.MazeID = id
		opts.Store = store
	}

	finished, err := tui.RunWalk(mz, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running walker: %v\n", err)
		os.Exit(1)
	}

	if finished && id != 0 {
		best, err := store.BestWalk(id)
		if err == nil {
			fmt.Printf("Maze #%d solved! Best walk: %d steps.\n", id, best)
		}
	}
}
