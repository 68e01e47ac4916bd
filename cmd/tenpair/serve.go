package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tenpair/internal/config"
	"github.com/vovakirdan/tui-tenpair/internal/platform/tui"
	"github.com/vovakirdan/tui-tenpair/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeMode   string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play over SSH.

Each connection gets its own session with a mode picker. Results are
stored per-server (all users share the same results log).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tenpair/host_key

Examples:
  tenpair serve                           # Listen on :23235 with auto-generated key
  tenpair serve --ssh :2222               # Listen on port 2222
  tenpair serve --mode classic            # Skip the picker, everyone plays classic
  tenpair serve --host-key ./my_host_key  # Use specific host key
  tenpair serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "", "Pin all connections to one supply mode (default: picker)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom rules YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagServeMode != "" && !registry.Exists(flagServeMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagServeMode)
		fmt.Fprintln(os.Stderr, "Run 'tenpair modes' to see available modes.")
		os.Exit(1)
	}

	rulesCfg, err := config.LoadRules(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		Mode:        flagServeMode,
		Rules:       rulesCfg.Rules(),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tenpair SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
