package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagWatchAddr   string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the slide SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a board picker menu.
Solves are stored per-server (all users share the same leaderboard).

With --watch, puzzle events from every session are streamed to websocket
spectators:
  ws://host:8080/watch?session=<id>   one session
  ws://host:8080/watch                every session
  http://host:8080/sessions           live session IDs

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.slide/host_key

Examples:
  slide serve                           # Listen on :23234 with auto-generated key
  slide serve --ssh :2222               # Listen on port 2222
  slide serve --watch :8080             # Also stream events to spectators
  slide serve --db ./slide.db           # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagWatchAddr, "watch", "", "Spectator websocket address (disabled if empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagDBPath,
		ConfigPath:   flagConfig,
		WatchAddress: flagWatchAddr,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide-ssh",
	})
	if flagLogPath != "" {
		logger.SetLevel(log.DebugLevel)
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting slide SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
