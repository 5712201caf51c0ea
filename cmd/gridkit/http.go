package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/api"
)

var flagHTTPAddr string

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Start the JSON and WebSocket API server",
	Long: `Serve saved mazes over HTTP.

Endpoints:
  GET    /generators            - Available generators
  GET    /cells/{index}         - Cell info (?width=&height=)
  GET    /mazes                 - Saved mazes (?limit=)
  POST   /mazes                 - Generate and save a maze
  GET    /mazes/{id}            - A saved maze with its layout
  DELETE /mazes/{id}            - Delete a saved maze
  GET    /mazes/{id}/walk       - WebSocket: send directions, receive positions

Examples:
  gridkit http
  gridkit http --addr 127.0.0.1:9000
  curl -d '{"width":8,"height":5}' localhost:8427/mazes`,
	Args: cobra.NoArgs,
	Run:  runHTTP,
}

func init() {
	httpCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address (default from config)")
}

func runHTTP(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagHTTPAddr != "" {
		cfg.HTTP.Address = flagHTTPAddr
	}

	store := openStore(cfg)
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(store, api.OptionsFrom(cfg), logger)
	fmt.Printf("Starting gridkit HTTP server on %s\n", cfg.HTTP.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: server: %v\n", err)
		os.Exit(1)
	}
}
