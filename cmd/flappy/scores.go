package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-snickers/internal/leaderboard"
	"github.com/vovakirdan/flappy-snickers/internal/platform/tui"
	"github.com/vovakirdan/flappy-snickers/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
	flagBrowse      bool
	flagBest        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show local high scores",
	Long: `Display the best scores in the local database.

Examples:
  flappy scores
  flappy scores --limit 20
  flappy scores --clear
  flappy scores --best
  flappy scores --browse
  flappy scores --browse --leaderboard http://localhost:8080/`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all local scores")
	scoresCmd.Flags().BoolVar(&flagBest, "best", false, "Print only the best local score")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the leaderboard interactively (remote with --leaderboard)")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd54f"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(_ *cobra.Command, _ []string) {
	ctx := context.Background()

	if flagBrowse && flagLeaderboard != "" {
		client, err := leaderboard.NewClient(flagLeaderboard, &http.Client{})
		if err != nil {
			fatalf("%v", err)
		}
		browse(client, flagLeaderboard)
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagBrowse {
		browse(leaderboard.NewLocalBoard(store), "Local")
		return
	}

	if flagClear {
		if err := store.ClearScores(ctx); err != nil {
			store.Close()
			fatalf("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagBest {
		if err := printBest(ctx, os.Stdout, store); err != nil {
			store.Close()
			fatalf("retrieving best score: %v", err)
		}
		return
	}

	scores, err := store.TopScores(ctx, flagScoresLimit)
	if err != nil {
		store.Close()
		fatalf("retrieving scores: %v", err)
	}

	fmt.Println(titleStyle.Render("High Scores - Flappy Snickers"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println(dimStyle.Render("Play 'flappy play' to set the first high score!"))
		return
	}

	fmt.Println(scoreTable(scores))

	stats, err := store.GetStats(ctx)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Println(dimStyle.Render("Last played " + stats.LastPlayed.Format("2006-01-02 15:04")))
	}
}

// printBest writes the best stored score as a bare number, 0 when empty.
func printBest(ctx context.Context, w io.Writer, store *storage.Store) error {
	high, err := store.HighScore(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, high)
	return err
}

func browse(source leaderboard.Fetcher, title string) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	if err := tui.RunScoreboard(source, title, width, height); err != nil {
		fatalf("scoreboard: %v", err)
	}
}

func scoreTable(scores []storage.ScoreEntry) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Rank", "Name", "Score", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, entry := range scores {
		t.Row(
			strconv.Itoa(i+1),
			entry.Name,
			strconv.Itoa(entry.Score),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t
}
