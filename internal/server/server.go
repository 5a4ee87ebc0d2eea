// Package server exposes the teamcut solver over HTTP.
//
// The API is deliberately small: POST an instance in node-link JSON to
// /api/v1/solve and get back the assignment with its score components;
// solved results are persisted in the configured store and retrievable via
// /api/v1/results.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/teamcut/teamcut/pkg/partition"
	"github.com/teamcut/teamcut/pkg/store"
)

// Server wires the solver and result store into an HTTP handler.
type Server struct {
	store  store.Store
	config partition.Config
	logger *log.Logger
}

// New creates a server. If st is nil, an in-memory store is used.
// If logger is nil, the default logger is used.
func New(st store.Store, cfg partition.Config, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:  st,
		config: cfg,
		logger: logger,
	}
}

// Router builds the HTTP route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/results", s.handleListResults)
		r.Get("/results/{id}", s.handleGetResult)
		r.Delete("/results/{id}", s.handleDeleteResult)
	})

	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// logRequests logs each request with method, path, status, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}
