// Package api implements the hosted Creditscope REST API.
// It provides scoring and decision endpoints backed by Postgres and blob
// storage; the scoring core itself stays pure and stateless.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/creditscope/creditscope/internal/pipeline"
	"github.com/creditscope/creditscope/pkg/config"
)

// Handler is the top-level API handler for the hosted Creditscope service.
type Handler struct {
	pipeline *pipeline.Service
	cfg      *config.Config
	cache    Cache
}

// NewHandler creates a new API handler. A nil cache gets an in-memory one.
func NewHandler(pipelineSvc *pipeline.Service, cfg *config.Config, cache Cache) *Handler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cache == nil {
		cache = NewMemoryCache(cfg.Cache.Size)
	}
	return &Handler{
		pipeline: pipelineSvc,
		cfg:      cfg,
		cache:    cache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Scoring endpoints (pure, no persistence)
	mux.HandleFunc("POST /api/v1/score", h.handleScore)
	mux.HandleFunc("POST /api/v1/score/compare", h.handleCompare)

	// Decision endpoints
	mux.HandleFunc("POST /api/v1/decisions", h.handleDecide)
	mux.HandleFunc("GET /api/v1/decisions/{decisionID}", h.handleGetDecision)
	mux.HandleFunc("GET /api/v1/applicants/{applicantID}/decisions", h.handleHistory)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
