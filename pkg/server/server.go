// Package server exposes the block catalog over HTTP. All responses are
// JSON; unknown resources are 404s with an error body, never panics.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/laufblocks/laufblocks/pkg/analytics"
	"github.com/laufblocks/laufblocks/pkg/loader"
	"github.com/laufblocks/laufblocks/pkg/registry"
)

// Server holds the wired dependencies behind the HTTP API.
type Server struct {
	registry  *registry.Registry
	loader    *loader.Loader
	analytics *analytics.Service
	logger    *slog.Logger
}

// New creates a Server. The analytics service may be backed by a nil
// store; tracking then degrades to a no-op.
func New(reg *registry.Registry, l *loader.Loader, svc *analytics.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		registry:  reg,
		loader:    l,
		analytics: svc,
		logger:    logger,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer(s.logger))
	r.Use(requestLogger(s.logger))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/blocks", s.handleListBlocks)
		r.Get("/blocks/{slug}", s.handleGetBlock)
		r.Post("/blocks/{slug}/analytics", s.handleTrackAnalytics)
		r.Get("/blocks/{slug}/analytics", s.handleGetAnalytics)
		r.Get("/categories", s.handleListCategories)
		r.Get("/themes", s.handleListThemes)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
