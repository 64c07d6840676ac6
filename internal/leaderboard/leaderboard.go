// Package leaderboard connects the game to a score service. It provides an
// HTTP client for the remote endpoint, a local SQLite-backed board, an
// asynchronous dispatcher that keeps network calls off the frame loop, and
// a self-hostable HTTP service with SQLite or Postgres storage.
package leaderboard

import (
	"context"
	"errors"

	"github.com/vovakirdan/flappy-snickers/internal/core"
)

// DefaultLimit is the number of rows returned when a caller does not ask
// for a specific count.
const DefaultLimit = 5

// ErrInvalidScore is returned for submissions with an empty name or a
// negative score.
var ErrInvalidScore = errors.New("leaderboard: invalid score")

// Submitter records a score.
type Submitter interface {
	Submit(ctx context.Context, name string, score int) error
}

// Fetcher retrieves the best scores, highest first.
type Fetcher interface {
	Top(ctx context.Context, limit int) ([]core.ScoreEntry, error)
}

// Repository is a score backend that can both record and list scores.
type Repository interface {
	Submitter
	Fetcher
}

// validate normalizes a submission.
func validate(name string, score int) (string, error) {
	n := core.NormalizeName(name)
	if n == "" || score < 0 {
		return "", ErrInvalidScore
	}
	return n, nil
}
