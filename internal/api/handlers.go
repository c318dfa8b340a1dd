// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/airdefence/internal/cache"
	"github.com/tomtom215/airdefence/internal/config"
	"github.com/tomtom215/airdefence/internal/database"
	"github.com/tomtom215/airdefence/internal/events"
	"github.com/tomtom215/airdefence/internal/logging"
	"github.com/tomtom215/airdefence/internal/prediction"
)

// Project identity reported by the root endpoint.
const ProjectName = "Air Defence ML API"

// Version is the API version. Overridden at build time via -ldflags.
var Version = "1.0.0"

const defaultCacheTTL = 10 * time.Minute

// Handler contains dependencies for API handlers
type Handler struct {
	db        *database.DB
	predictor *prediction.Service
	history   *events.History
	cfg       *config.Config
	cache     *cache.Cache
	startTime time.Time
}

// NewHandler creates a handler over the loaded tables. predictor serves the
// model-backed endpoints and history backs /api/predict/history; either may
// be nil, in which case those endpoints report 503 and an empty history.
//
// Whole-dataset views (overview, zone map) are cached for cfg.Cache.TTL.
// The tables never change while the process runs, so the TTL only bounds
// memory held by rarely used entries.
func NewHandler(db *database.DB, predictor *prediction.Service, history *events.History, cfg *config.Config) *Handler {
	ttl := defaultCacheTTL
	if cfg != nil && cfg.Cache.TTL > 0 {
		ttl = cfg.Cache.TTL
	}
	return &Handler{
		db:        db,
		predictor: predictor,
		history:   history,
		cfg:       cfg,
		cache:     cache.New("responses", ttl),
		startTime: time.Now(),
	}
}

// ClearCache drops every cached response.
func (h *Handler) ClearCache() {
	h.cache.Clear()
	logging.Info().Msg("Response cache cleared")
}

// cached serves key from the response cache, computing it with fn on a miss.
func (h *Handler) cached(w http.ResponseWriter, r *http.Request, key string, fn func(context.Context) (interface{}, error)) {
	v, err := h.cache.GetOrCompute(r.Context(), key, fn)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, v)
}
