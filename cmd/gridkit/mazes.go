package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/platform/tui"
	"github.com/vovakirdan/gridkit/internal/storage"
)

var flagLimit int

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List saved mazes",
	Long: `Display the most recently saved mazes with their best walk.

Examples:
  gridkit mazes
  gridkit mazes --limit 50`,
	Args: cobra.NoArgs,
	Run:  runMazes,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved maze and its walks",
	Long: `Print a saved maze with its shortest solution and the best walks
recorded for it.

Examples:
  gridkit show 3`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved maze",
	Long:  `Delete a saved maze together with its recorded walks.`,
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a saved maze and walk it",
	Long: `Show saved mazes in an interactive table. Press Enter on a row to
walk that maze.`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func init() {
	mazesCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of mazes to list")
}

// parseID parses a maze ID argument or exits.
func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		fail("invalid maze ID %q", s)
	}
	return id
}

// getMaze loads a saved maze or exits with a hint when it does not exist.
func getMaze(store *storage.Store, id int64) storage.MazeRecord {
	rec, err := store.GetMaze(id)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no saved maze #%d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'gridkit mazes' to see saved mazes.")
		os.Exit(1)
	}
	if err != nil {
		fail("loading maze #%d: %v", id, err)
	}
	return rec
}

func runMazes(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	records, err := store.ListMazes(flagLimit)
	if err != nil {
		fail("listing mazes: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("No mazes saved yet.")
		fmt.Println()
		fmt.Println("Run 'gridkit maze --save' to save one.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-12s  %-7s  %-5s  %s\n", "ID", "Name", "Algorithm", "Size", "Best", "Date")
	fmt.Printf("  %-5s  %-16s  %-12s  %-7s  %-5s  %s\n", "--", "----", "---------", "----", "----", "----")

	for _, r := range records {
		best, err := store.BestWalk(r.ID)
		if err != nil {
			fail("loading walks for maze #%d: %v", r.ID, err)
		}
		bestStr := "-"
		if best > 0 {
			bestStr = strconv.Itoa(best)
		}
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-16s  %-12s  %-7s  %-5s  %s\n", r.ID, r.Name, r.Algorithm, size, bestStr, dateStr)
	}
}

func runShow(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	rec := getMaze(store, id)
	mz, err := rec.Maze()
	if err != nil {
		fail("decoding maze #%d: %v", id, err)
	}

	path, _ := mz.Solve(mz.Start(), mz.Goal())
	theme := tui.ThemeFromConfig(cfg.Render)
	fmt.Println(mz.Canvas(theme.Maze, path).String())

	title := rec.Name
	if title == "" {
		title = "(unnamed)"
	}
	fmt.Printf("Maze #%d %s - %s %dx%d, seed %d\n", rec.ID, title, rec.Algorithm, rec.Width, rec.Height, rec.Seed)
	fmt.Printf("Shortest path: %d steps\n", len(path)-1)
	fmt.Println()

	walks, err := store.Walks(id, 10)
	if err != nil {
		fail("loading walks: %v", err)
	}
	if len(walks) == 0 {
		fmt.Println("No walks recorded yet.")
		fmt.Printf("Run 'gridkit walk %d' to be the first!\n", id)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %s\n", "Rank", "Player", "Steps", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %s\n", "----", "------", "-----", "----")
	for i, w := range walks {
		dateStr := w.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6d  %s\n", i+1, w.Player, w.Steps, dateStr)
	}
}

func runDelete(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	if err := store.DeleteMaze(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fail("no saved maze #%d", id)
		}
		fail("deleting maze #%d: %v", id, err)
	}
	fmt.Printf("Deleted maze #%d.\n", id)
}

func runBrowse(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	_, height := terminalSize()
	id, err := tui.RunMazeList(store, height)
	if err != nil {
		fail("running browser: %v", err)
	}
	if id == 0 {
		return
	}

	walkSaved(cfg, store, id)
}
