package leaderboard

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/vovakirdan/flappy-snickers/internal/core"
	"github.com/vovakirdan/flappy-snickers/internal/storage"
)

// memRepo is an in-memory Repository.
type memRepo struct {
	mu      sync.Mutex
	entries []core.ScoreEntry
	fail    bool
	gate    chan struct{} // when set, Submit blocks until it is closed
}

func (m *memRepo) Submit(ctx context.Context, name string, score int) error {
	if m.gate != nil {
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("boom")
	}
	m.entries = append(m.entries, core.ScoreEntry{Name: name, Score: score})
	return nil
}

func (m *memRepo) Top(ctx context.Context, limit int) ([]core.ScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errors.New("boom")
	}
	out := append([]core.ScoreEntry(nil), m.entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func openLocalBoard(t *testing.T) *LocalBoard {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewLocalBoard(store)
}
