// flappy is a Flappy Bird-style game for the terminal, a desktop window
// and SSH, with an optional shared leaderboard service.
//
// Usage:
//
//	flappy play                 - Play in the terminal
//	flappy window               - Play in a desktop window
//	flappy serve                - Start SSH server for remote play
//	flappy leaderboard serve    - Run the leaderboard HTTP service
//	flappy scores               - Show local high scores
//
// Global flags:
//
//	--config <path>       - Game config YAML (default: search ~/.arcade/configs)
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--leaderboard <url>   - Remote leaderboard endpoint
//	--name <initials>     - Submit scores under these initials without asking
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig      string
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagLeaderboard string
	flagName        string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Snickers - keep the snack in the air",
	Long: `Flappy Snickers is a Flappy Bird-style game. Flap through the gaps
between scrolling columns; every column cleared scores a point.

Available commands:
  play         - Play in the terminal
  window       - Play in a desktop window
  serve        - Start SSH server for remote play
  leaderboard  - Run the shared leaderboard service
  scores       - View local high scores

Examples:
  flappy play
  flappy play --name ABC --leaderboard http://localhost:8080/
  flappy window --seed 42
  flappy serve --ssh :2222
  flappy leaderboard serve --addr :8080
  flappy scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Leaderboard URL (overrides config; empty uses the local database)")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player initials (skips the prompt)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (terminal play defaults to ~/.arcade/flappy.log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(scoresCmd)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
