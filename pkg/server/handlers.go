package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/laufblocks/laufblocks/pkg/analytics"
	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/registry"
	"github.com/laufblocks/laufblocks/pkg/theme"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListBlocks serves the filtered catalog. All filters compose with
// AND; an empty query returns every published block.
func (s *Server) handleListBlocks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := registry.Filters{
		Category: category.ID(q.Get("category")),
		Tier:     registry.Tier(q.Get("tier")),
		Search:   q.Get("search"),
	}
	if style := q.Get("style"); style != "" {
		filters.Style = theme.Style(style)
	}

	blocks := s.registry.Filter(filters)
	writeJSON(w, http.StatusOK, map[string]any{
		"blocks": blocks,
		"count":  len(blocks),
	})
}

// handleGetBlock serves the full detail view for one block, including
// source, parsed metadata, available variants, and install commands.
func (s *Server) handleGetBlock(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	block, ok := s.registry.Get(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "block not found")
		return
	}
	writeJSON(w, http.StatusOK, s.loader.WithSource(block))
}

type trackRequest struct {
	Action   string         `json:"action"`
	Metadata map[string]any `json:"metadata"`
}

// handleTrackAnalytics records one interaction. The user id rides on the
// X-User-Id header when present; anonymous events are fine.
func (s *Server) handleTrackAnalytics(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	action := analytics.Action(req.Action)
	if !action.Valid() {
		writeError(w, http.StatusBadRequest, "action must be \"view\", \"copy_code\", or \"copy_cli\"")
		return
	}

	var userID *string
	if id := r.Header.Get("X-User-Id"); id != "" {
		userID = &id
	}

	if err := s.analytics.Track(r.Context(), slug, action, userID, req.Metadata); err != nil {
		s.logger.Error("analytics track failed", "slug", slug, "action", action, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record event")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

// handleGetAnalytics serves the aggregate counters for one block. Any
// slug the store has never seen reads as zeros; the registry is not
// consulted, counters can outlive a delisted block.
func (s *Server) handleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	stats, err := s.analytics.Stats(r.Context(), slug)
	if err != nil {
		s.logger.Error("analytics stats failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"slug":  slug,
		"stats": stats,
	})
}

// handleListCategories serves the category registry in display order,
// with per-category block counts.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	counts := s.registry.CountByCategory()

	type categoryResponse struct {
		category.Meta
		BlockCount int `json:"block_count"`
	}
	cats := category.All()
	out := make([]categoryResponse, 0, len(cats))
	for _, meta := range cats {
		out = append(out, categoryResponse{Meta: meta, BlockCount: counts[meta.ID]})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

type themeResponse struct {
	Style       theme.Style       `json:"style"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CSSVars     map[string]string `json:"css_vars"`
	Default     bool              `json:"default"`
}

// handleListThemes serves every visual style with its CSS variables.
func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	styles := theme.AllStyles()
	out := make([]themeResponse, 0, len(styles))
	for _, style := range styles {
		cfg, ok := theme.Get(style)
		if !ok {
			continue
		}
		out = append(out, themeResponse{
			Style:       style,
			Name:        cfg.Name,
			Description: cfg.Description,
			CSSVars:     theme.StyleObject(style),
			Default:     style == theme.DefaultStyle,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"themes": out})
}
