package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-snickers/internal/core"
	"github.com/vovakirdan/flappy-snickers/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Enter/Up - Start, flap, restart
  Mouse click    - Same as Space
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

After a scoring run you are asked for three initials unless --name is
set. Enter submits, Esc skips.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy play --leaderboard http://localhost:8080/ --name ABC`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	// The alt screen owns stdout, so logs go to a file.
	logger, logCloser, err := newLogger("flappy", "~/.arcade/flappy.log")
	if err != nil {
		fatalf("cannot open log: %v", err)
	}
	defer logCloser.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := newGame(cfg, nil, cfg.Leaderboard.PlayerName)
	lb, err := openBoard(cfg.Leaderboard, logger)
	if err != nil {
		// The game still works without a leaderboard.
		logger.Warn("leaderboard unavailable", "err", err)
	} else {
		game.SetLeaderboard(lb)
	}

	runErr := tui.Run(game, rt)

	if lb != nil {
		lb.Close(logger)
	}
	if runErr != nil {
		logCloser.Close()
		fatalf("running game: %v", runErr)
	}
}
