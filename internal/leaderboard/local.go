package leaderboard

import (
	"context"

	"github.com/vovakirdan/flappy-snickers/internal/core"
	"github.com/vovakirdan/flappy-snickers/internal/storage"
)

// LocalBoard keeps scores in the local SQLite store.
type LocalBoard struct {
	store *storage.Store
}

// NewLocalBoard wraps an open store.
func NewLocalBoard(store *storage.Store) *LocalBoard {
	return &LocalBoard{store: store}
}

// Submit stores a score.
func (b *LocalBoard) Submit(ctx context.Context, name string, score int) error {
	n, err := validate(name, score)
	if err != nil {
		return err
	}
	_, err = b.store.SaveScore(ctx, n, score)
	return err
}

// Top returns the best stored scores.
func (b *LocalBoard) Top(ctx context.Context, limit int) ([]core.ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := b.store.TopScores(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]core.ScoreEntry, len(rows))
	for i, r := range rows {
		entries[i] = r.Entry()
	}
	return entries, nil
}

var _ Repository = (*LocalBoard)(nil)
