package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all maze generators",
	Long:  `Shows a list of all maze generators that can be passed to --algorithm.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	generators := registry.List()

	if len(generators) == 0 {
		fmt.Println("No generators available.")
		return
	}

	fmt.Println("Available generators:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range generators {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range generators {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gridkit maze --algorithm <id>' to generate a maze.")
}
