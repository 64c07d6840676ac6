package leaderboard

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vovakirdan/flappy-snickers/internal/core"
)

const (
	table    = "scores"
	colID    = "id"
	colName  = "name"
	colScore = "score"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS scores (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	score INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores (score DESC);
`

// PGRepository stores scores in Postgres.
type PGRepository struct {
	dbc *pgxpool.Pool
}

// NewPGRepository wraps a connection pool.
func NewPGRepository(dbc *pgxpool.Pool) *PGRepository {
	return &PGRepository{dbc: dbc}
}

// OpenPG connects to the database at dsn, checks the connection and
// creates the schema.
func OpenPG(ctx context.Context, dsn string) (*PGRepository, error) {
	dbc, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: create db pool: %w", err)
	}
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		return nil, fmt.Errorf("leaderboard: ping db: %w", err)
	}

	repo := NewPGRepository(dbc)
	if err := repo.Migrate(ctx); err != nil {
		dbc.Close()
		return nil, err
	}
	return repo, nil
}

// Migrate creates the scores table if it doesn't exist.
func (r *PGRepository) Migrate(ctx context.Context) error {
	if _, err := r.dbc.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("leaderboard: migrate: %w", err)
	}
	return nil
}

// Close releases the pool.
func (r *PGRepository) Close() {
	r.dbc.Close()
}

func insertScoreQuery(name string, score int) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colName, colScore).
		Values(name, score).
		PlaceholderFormat(sq.Dollar)
}

func topScoresQuery(limit int) sq.SelectBuilder {
	return sq.Select(colName, colScore).
		From(table).
		OrderBy(colScore+" DESC", colID+" ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)
}

// Submit inserts a score.
func (r *PGRepository) Submit(ctx context.Context, name string, score int) error {
	n, err := validate(name, score)
	if err != nil {
		return err
	}

	sqlStr, args, err := insertScoreQuery(n, score).ToSql()
	if err != nil {
		return fmt.Errorf("leaderboard: build insert: %w", err)
	}

	if _, err := r.dbc.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("leaderboard: insert score: %w", err)
	}
	return nil
}

// Top returns the best scores, ties in insertion order.
func (r *PGRepository) Top(ctx context.Context, limit int) ([]core.ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sqlStr, args, err := topScoresQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build select: %w", err)
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: query scores: %w", err)
	}
	defer rows.Close()

	var entries []core.ScoreEntry
	for rows.Next() {
		var e core.ScoreEntry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("leaderboard: scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard: row iteration: %w", err)
	}
	return entries, nil
}

var _ Repository = (*PGRepository)(nil)
