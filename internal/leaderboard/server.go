package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// HandlerDeps holds the handler's collaborators.
type HandlerDeps struct {
	Repo   Repository
	Logger *log.Logger
	Limit  int // Rows returned by GET; DefaultLimit when zero
}

// Handler serves the score endpoint.
type Handler struct {
	repo   Repository
	logger *log.Logger
	limit  int
}

// NewHandler creates a handler.
func NewHandler(deps HandlerDeps) *Handler {
	limit := deps.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{repo: deps.Repo, logger: logger, limit: limit}
}

// List answers with the best scores as [name, score] rows.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.Top(r.Context(), h.limit)
	if err != nil {
		h.logger.Error("list scores", "request_id", RequestID(r.Context()), "error", err)
		http.Error(w, "cannot load scores", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := EncodeRows(w, rows); err != nil {
		h.logger.Warn("write scores", "request_id", RequestID(r.Context()), "error", err)
	}
}

// Submit records a form-encoded name and score.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	score, err := strconv.Atoi(r.PostFormValue("score"))
	if err != nil {
		http.Error(w, "score must be an integer", http.StatusBadRequest)
		return
	}

	name, err := validate(r.PostFormValue("name"), score)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Submit(r.Context(), name, score); err != nil {
		h.logger.Error("save score", "request_id", RequestID(r.Context()), "error", err)
		http.Error(w, "cannot save score", http.StatusInternalServerError)
		return
	}

	h.logger.Info("score saved", "request_id", RequestID(r.Context()), "name", name, "score", score)
	w.WriteHeader(http.StatusNoContent)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok")) //nolint:errcheck
}

// NewRouter mounts the handler. CORS is open to any origin.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))
	r.Use(h.requestID)

	r.Get("/", h.List)
	r.Post("/", h.Submit)
	r.Get("/healthz", h.Health)

	return r
}

type requestIDKey struct{}

// RequestID returns the ID assigned to the request, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestID tags every request with a UUID and logs it on completion.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		h.logger.Debug("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// Serve runs an HTTP server on addr until ctx is canceled, then shuts it
// down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting leaderboard server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("leaderboard: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
