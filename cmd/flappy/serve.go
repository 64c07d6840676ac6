package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-snickers/internal/games/flappy"
	"github.com/vovakirdan/flappy-snickers/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the game SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Scores go to the shared
leaderboard (remote when --leaderboard is set, otherwise the server's
local database) under the first three letters of the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  flappy serve                           # Listen on :23234 with auto-generated key
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key
  flappy serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, logCloser, err := newLogger("flappy-ssh", "")
	if err != nil {
		fatalf("cannot open log: %v", err)
	}
	defer logCloser.Close()

	lb, err := openBoard(cfg.Leaderboard, logger)
	if err != nil {
		fatalf("opening leaderboard: %v", err)
	}
	defer lb.Close(logger)

	factory := func(playerName string) *flappy.Game {
		if cfg.Leaderboard.PlayerName != "" {
			playerName = cfg.Leaderboard.PlayerName
		}
		return newGame(cfg, lb, playerName)
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(sshCfg, factory, logger)
	if err != nil {
		lb.Close(logger)
		fatalf("creating server: %v", err)
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
	}
}
