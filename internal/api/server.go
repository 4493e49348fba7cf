// Package api exposes the session timer and the activity store over a
// local JSON HTTP interface.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
)

// SessionTimer is the part of *timer.Timer the server drives.
type SessionTimer interface {
	Start(category string)
	Pause()
	Resume()
	Stop() (timer.Result, bool)
	Reset()
	State() timer.State
}

// Server serves the REST surface.
type Server struct {
	timer      SessionTimer
	activities service.ActivityService
	stats      service.StatsService
	clock      clock.Clock
	logger     *slog.Logger
	pageSize   int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the clock used for "now" in stats and timestamps.
func WithClock(c clock.Clock) Option {
	return func(s *Server) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithPageSize sets the default page size for GET /activities.
func WithPageSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

func NewServer(t SessionTimer, activities service.ActivityService, stats service.StatsService, opts ...Option) *Server {
	s := &Server{
		timer:      t,
		activities: activities,
		stats:      stats,
		clock:      clock.New(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		pageSize:   20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/timer", s.handleTimerState).Methods(http.MethodGet)
	r.HandleFunc("/timer/start", s.handleTimerStart).Methods(http.MethodPost)
	r.HandleFunc("/timer/pause", s.timerAction(s.timer.Pause)).Methods(http.MethodPost)
	r.HandleFunc("/timer/resume", s.timerAction(s.timer.Resume)).Methods(http.MethodPost)
	r.HandleFunc("/timer/reset", s.timerAction(s.timer.Reset)).Methods(http.MethodPost)
	r.HandleFunc("/timer/stop", s.handleTimerStop).Methods(http.MethodPost)

	r.HandleFunc("/activities", s.handleListActivities).Methods(http.MethodGet)
	r.HandleFunc("/activities", s.handleSaveActivity).Methods(http.MethodPost)
	r.HandleFunc("/activities/{id}", s.handleGetActivity).Methods(http.MethodGet)
	r.HandleFunc("/activities/{id}", s.handleUpdateActivity).Methods(http.MethodPatch)
	r.HandleFunc("/activities/{id}", s.handleDeleteActivity).Methods(http.MethodDelete)
	r.HandleFunc("/activities/{id}/share", s.handleShareActivity).Methods(http.MethodPost)
	r.HandleFunc("/activities/{id}/like", s.handleToggleLike).Methods(http.MethodPost)
	r.HandleFunc("/activities/{id}/comments", s.handleListComments).Methods(http.MethodGet)
	r.HandleFunc("/activities/{id}/comments", s.handlePostComment).Methods(http.MethodPost)
	r.HandleFunc("/comments/{id}", s.handleEditComment).Methods(http.MethodPatch)
	r.HandleFunc("/comments/{id}", s.handleDeleteComment).Methods(http.MethodDelete)

	r.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such route")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api_listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("api_shutdown", "reason", ctx.Err().Error())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down api: %w", err)
		}
		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.clock.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("api_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", s.clock.Since(start).Milliseconds(),
		)
	})
}
