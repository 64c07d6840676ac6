package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-snickers/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Enter/Click/Tap - Start, flap, restart
  Esc                   - Quit (skips the initials prompt when shown)

Examples:
  flappy window
  flappy window --scale 1.5`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the play field")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, logCloser, err := newLogger("flappy", "")
	if err != nil {
		fatalf("cannot open log: %v", err)
	}
	defer logCloser.Close()

	game := newGame(cfg, nil, cfg.Leaderboard.PlayerName)
	lb, err := openBoard(cfg.Leaderboard, logger)
	if err != nil {
		logger.Warn("leaderboard unavailable", "err", err)
	} else {
		game.SetLeaderboard(lb)
		defer lb.Close(logger)
	}

	if err := window.Run(game, window.Options{TickRate: flagFPS, Scale: flagScale}); err != nil {
		logger.Error("window closed with error", "err", err)
	}
}
