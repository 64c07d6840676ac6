package leaderboard

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-snickers/internal/core"
)

// Dispatcher runs leaderboard calls in background goroutines so the frame
// loop never blocks on the network. Failures are logged and dropped.
// A fetch starts only after every submission issued before it has finished,
// so a fresh score shows up in the rows that follow it.
type Dispatcher struct {
	repo    Repository
	timeout time.Duration
	logger  *log.Logger

	mu       sync.Mutex
	nextID   int
	submits  map[int]chan struct{}
	inflight sync.WaitGroup
	closed   bool
}

// NewDispatcher creates a dispatcher over repo. Each call gets its own
// timeout; zero means no timeout. A nil logger discards messages.
func NewDispatcher(repo Repository, timeout time.Duration, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{
		repo:    repo,
		timeout: timeout,
		logger:  logger,
		submits: make(map[int]chan struct{}),
	}
}

func (d *Dispatcher) context() (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), d.timeout)
}

// Submit records a score in the background.
func (d *Dispatcher) Submit(name string, score int) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	id := d.nextID
	d.nextID++
	done := make(chan struct{})
	d.submits[id] = done
	d.inflight.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.inflight.Done()
		defer func() {
			d.mu.Lock()
			delete(d.submits, id)
			d.mu.Unlock()
			close(done)
		}()

		ctx, cancel := d.context()
		defer cancel()

		if err := d.repo.Submit(ctx, name, score); err != nil {
			d.logger.Warn("score submission failed", "name", name, "score", score, "error", err)
			return
		}
		d.logger.Debug("score submitted", "name", name, "score", score)
	}()
}

// FetchTop requests the best scores in the background. The returned
// channel yields the rows once and is closed; on failure it is closed
// without a value.
func (d *Dispatcher) FetchTop(limit int) <-chan []core.ScoreEntry {
	out := make(chan []core.ScoreEntry, 1)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		close(out)
		return out
	}
	pending := make([]chan struct{}, 0, len(d.submits))
	for _, ch := range d.submits {
		pending = append(pending, ch)
	}
	d.inflight.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.inflight.Done()
		defer close(out)

		for _, ch := range pending {
			<-ch
		}

		ctx, cancel := d.context()
		defer cancel()

		rows, err := d.repo.Top(ctx, limit)
		if err != nil {
			d.logger.Warn("leaderboard fetch failed", "error", err)
			return
		}
		out <- rows
	}()

	return out
}

// Close stops accepting work and waits for running calls to finish or for
// ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
