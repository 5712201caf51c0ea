package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridkit SSH server",
	Long: `Start an SSH server that lets users connect and walk mazes.

Each SSH connection gets a fresh maze sized to its terminal. Session mazes
and finished walks are stored in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridkit/host_key

Examples:
  gridkit serve                           # Listen on :23235 with auto-generated key
  gridkit serve --ssh :2222               # Listen on port 2222
  gridkit serve --host-key ./my_host_key  # Use specific host key
  gridkit serve --algorithm sidewinder    # Serve sidewinder mazes

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagAlgorithm, "algorithm", "", "Generator ID for session mazes")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}
	if flagAlgorithm != "" {
		cfg.Maze.Algorithm = flagAlgorithm
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(cfg), logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting gridkit SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
