// Package httpapi exposes the Digital Diary JSON API over net/http. Every
// handler follows the same protocol: resolve identity, parse the path,
// confirm ownership, validate presence, call the service, encode the result.
package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"digidiary/internal/logging"
	"digidiary/internal/server/auth"
	"digidiary/internal/server/services"
	"digidiary/internal/server/validation"
)

type Server struct {
	logger   logging.Logger
	verifier auth.TokenVerifier
	validate *validation.Validator

	users   *services.UserService
	entries *services.EntryService
	todos   *services.TodoService
	tasks   *services.TaskService
	moods   *services.MoodService
	notes   *services.NoteService

	metrics       *Metrics
	registry      *prometheus.Registry
	audioMaxBytes int64

	httpServer *http.Server
}

type Options struct {
	Addr          string
	AudioMaxBytes int64
}

func New(
	logger logging.Logger,
	verifier auth.TokenVerifier,
	users *services.UserService,
	entries *services.EntryService,
	todos *services.TodoService,
	tasks *services.TaskService,
	moods *services.MoodService,
	notes *services.NoteService,
	opts Options,
) *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		logger:        logger,
		verifier:      verifier,
		validate:      validation.New(),
		users:         users,
		entries:       entries,
		todos:         todos,
		tasks:         tasks,
		moods:         moods,
		notes:         notes,
		metrics:       NewMetrics(registry),
		registry:      registry,
		audioMaxBytes: opts.AudioMaxBytes,
	}

	s.httpServer = &http.Server{
		Addr:    opts.Addr,
		Handler: s.Handler(),
	}

	return s
}

// Handler builds the full middleware-wrapped route tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/auth", s.handleAuth)

	mux.HandleFunc("/entries", s.requireAuth(s.handleEntries))
	mux.HandleFunc("/entries/", s.requireAuth(s.handleEntryByID))

	mux.HandleFunc("/todo", s.requireAuth(s.handleTodos))
	mux.HandleFunc("/todo/", s.requireAuth(s.handleTodoSub))

	mux.HandleFunc("/tasks", s.requireAuth(s.handleTasks))
	mux.HandleFunc("/tasks/", s.requireAuth(s.handleTaskByID))

	mux.HandleFunc("/moods", s.requireAuth(s.handleMoods))
	mux.HandleFunc("/moods/", s.requireAuth(s.handleMoodByID))

	mux.HandleFunc("/notes", s.requireAuth(s.handleNotes))
	mux.HandleFunc("/notes/", s.handleNotesSub)

	mux.HandleFunc("/users/profile/", s.requireAuth(s.handleProfile))

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return withCORS(s.metrics.instrument(s.withLogging(mux)))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.httpServer.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathSegments strips prefix from the request path and splits the rest,
// so "/todo/5/restore" with prefix "/todo/" yields ["5", "restore"].
func pathSegments(r *http.Request, prefix string) []string {
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

// parseID parses a path segment as a record id; non-numeric ids fail.
func parseID(segment string) (int64, bool) {
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
