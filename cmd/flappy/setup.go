package main

import (
	"context"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-snickers/internal/assets"
	"github.com/vovakirdan/flappy-snickers/internal/config"
	"github.com/vovakirdan/flappy-snickers/internal/games/flappy"
	"github.com/vovakirdan/flappy-snickers/internal/leaderboard"
	"github.com/vovakirdan/flappy-snickers/internal/storage"
)

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallbackFile, otherwise to stderr. The returned closer is
// never nil.
func newLogger(prefix, fallbackFile string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	path := flagLogFile
	if path == "" {
		path = fallbackFile
	}
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// loadConfig loads the game config and applies command line overrides.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLeaderboard != "" {
		cfg.Leaderboard.URL = flagLeaderboard
	}
	if flagName != "" {
		cfg.Leaderboard.PlayerName = flagName
	}
	return cfg, nil
}

func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// board is the leaderboard a game process talks to, with its teardown.
type board struct {
	*leaderboard.Dispatcher
	store *storage.Store
}

// openBoard connects to the remote leaderboard when a URL is configured and
// falls back to the local scores database otherwise.
func openBoard(cfg config.LeaderboardConfig, logger *log.Logger) (*board, error) {
	if cfg.URL != "" {
		client, err := leaderboard.NewClient(cfg.URL, &http.Client{})
		if err != nil {
			return nil, err
		}
		logger.Info("using remote leaderboard", "url", cfg.URL)
		return &board{Dispatcher: leaderboard.NewDispatcher(client, cfg.Timeout, logger)}, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	logger.Info("using local leaderboard", "db", flagDBPath)
	local := leaderboard.NewLocalBoard(store)
	return &board{
		Dispatcher: leaderboard.NewDispatcher(local, cfg.Timeout, logger),
		store:      store,
	}, nil
}

// Close waits briefly for pending submissions, then releases the store.
func (b *board) Close(logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := b.Dispatcher.Close(ctx); err != nil {
		logger.Warn("leaderboard calls still pending at exit", "err", err)
	}
	if b.store != nil {
		b.store.Close()
	}
}

// newGame builds a game wired to lb with sprites loading in the background.
// A nil lb leaves the leaderboard off.
func newGame(cfg config.FlappyConfig, lb flappy.Leaderboard, playerName string) *flappy.Game {
	game := flappy.New(cfg, newRand())
	game.SetAssets(assets.LoadSet(cfg.Assets.Avatar, cfg.Assets.Obstacle))
	if lb != nil {
		game.SetLeaderboard(lb)
	}
	if playerName != "" {
		game.SetPlayerName(playerName)
	}
	return game
}
