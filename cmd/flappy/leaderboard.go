package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-snickers/internal/leaderboard"
	"github.com/vovakirdan/flappy-snickers/internal/storage"
)

var (
	flagHTTPAddr string
	flagPGDSN    string
	flagLimit    int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Leaderboard service commands",
}

var leaderboardServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the leaderboard HTTP service",
	Long: `Serve the shared leaderboard over HTTP.

  GET  /         - Top scores as a JSON array of [name, score] rows
  POST /         - Submit a form with name and score fields
  GET  /healthz  - Liveness check

Scores are kept in PostgreSQL when --pg-dsn (or FLAPPY_PG_DSN) is set,
otherwise in the local SQLite database given by --db.

Examples:
  flappy leaderboard serve
  flappy leaderboard serve --addr :9000
  flappy leaderboard serve --pg-dsn postgres://flappy@localhost/flappy`,
	Args: cobra.NoArgs,
	Run:  runLeaderboardServe,
}

func init() {
	leaderboardServeCmd.Flags().StringVar(&flagHTTPAddr, "addr", ":8080", "HTTP listen address")
	leaderboardServeCmd.Flags().StringVar(&flagPGDSN, "pg-dsn", os.Getenv("FLAPPY_PG_DSN"), "PostgreSQL connection string")
	leaderboardServeCmd.Flags().IntVar(&flagLimit, "limit", leaderboard.DefaultLimit, "Rows returned by GET /")
	leaderboardCmd.AddCommand(leaderboardServeCmd)
}

func runLeaderboardServe(_ *cobra.Command, _ []string) {
	logger, logCloser, err := newLogger("leaderboard", "")
	if err != nil {
		fatalf("cannot open log: %v", err)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo leaderboard.Repository
	if flagPGDSN != "" {
		pg, err := leaderboard.OpenPG(ctx, flagPGDSN)
		if err != nil {
			fatalf("connecting to postgres: %v", err)
		}
		defer pg.Close()
		logger.Info("using postgres")
		repo = pg
	} else {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fatalf("opening scores database: %v", err)
		}
		defer store.Close()
		logger.Info("using sqlite", "db", flagDBPath)
		repo = leaderboard.NewLocalBoard(store)
	}

	handler := leaderboard.NewHandler(leaderboard.HandlerDeps{
		Repo:   repo,
		Logger: logger,
		Limit:  flagLimit,
	})

	if err := leaderboard.Serve(ctx, flagHTTPAddr, leaderboard.NewRouter(handler), logger); err != nil {
		logger.Error("server stopped", "err", err)
	}
}
