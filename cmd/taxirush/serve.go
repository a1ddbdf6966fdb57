package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/taxi-rush/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Taxi Rush SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the start screen. All users
share the same leaderboard file and run history. Sound is disabled for
remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.taxirush/host_key

Examples:
  taxirush serve                           # Listen on :23234 with auto-generated key
  taxirush serve --ssh :2222               # Listen on port 2222
  taxirush serve --host-key ./my_host_key  # Use specific host key
  taxirush serve --leaderboard ./scores.dat

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := setup(modeConsole)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Runtime:     a.runtime,
	}
	server, err := tui.NewSSHServer(cfg, a.svc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting Taxi Rush SSH server on %s\n", cfg.Address)
	fmt.Fprintln(out, "Connect with: ssh localhost -p 23234")
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
