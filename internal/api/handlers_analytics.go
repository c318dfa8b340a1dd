// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/airdefence/internal/analytics"
	"github.com/tomtom215/airdefence/internal/models"
)

// Cache keys for whole-dataset views.
const (
	cacheKeyOverview = "stats:overview"
	cacheKeyMapZones = "map:zones"
)

// Compare returns a side-by-side comparison of two countries.
//
// @Summary Compare two countries
// @Description Profiles, force summaries, radar chart data, systems grouped by type and scenario stats for both countries, plus chart rows keyed by the requested names
// @Tags Comparison
// @Produce json
// @Param country1 query string true "First country"
// @Param country2 query string true "Second country"
// @Success 200 {object} APIResponse{data=models.CompareResult}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/compare [get]
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	q, err := parseCompareQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	side1, err := h.compareSide(r.Context(), q.Country1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	side2, err := h.compareSide(r.Context(), q.Country2)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, analytics.Compare(q.Country1, q.Country2, side1, side2))
}

func (h *Handler) compareSide(ctx context.Context, name string) (*models.CompareSide, error) {
	country, err := h.db.CountryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	systems, err := h.db.SystemsByCountry(ctx, country.Country)
	if err != nil {
		return nil, err
	}
	stats, err := h.db.ScenarioStats(ctx, country.Country)
	if err != nil {
		return nil, err
	}
	side := analytics.CompareSide(country, systems, stats)
	return &side, nil
}

// MapZones returns every country with its zone, colour and coordinates for
// the interactive map.
//
// @Summary Zone map
// @Tags War Prediction
// @Produce json
// @Success 200 {object} APIResponse{data=models.MapZones}
// @Router /api/map/zones [get]
func (h *Handler) MapZones(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cacheKeyMapZones, func(ctx context.Context) (interface{}, error) {
		countries, err := h.db.Countries(ctx)
		if err != nil {
			return nil, err
		}
		systems, err := h.db.Systems(ctx, models.SystemFilter{})
		if err != nil {
			return nil, err
		}
		zones := analytics.MapZones(countries, systems)
		return &zones, nil
	})
}

// CountryInsights returns the click-through view of one country: strength
// score, top threats, scenario history and system breakdown.
//
// @Summary Country insights
// @Tags War Prediction
// @Produce json
// @Param name path string true "Country name, case-insensitive"
// @Success 200 {object} APIResponse{data=models.CountryInsights}
// @Failure 404 {object} APIResponse
// @Router /api/country/{name}/insights [get]
func (h *Handler) CountryInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	country, err := h.db.CountryByName(ctx, pathParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	systems, err := h.db.SystemsByCountry(ctx, country.Country)
	if err != nil {
		writeError(w, r, err)
		return
	}
	history, err := h.db.ScenarioHistory(ctx, country.Country)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, analytics.Insights(country, systems, history))
}

// StatsOverview returns the landing dashboard figures.
//
// @Summary Dashboard overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} APIResponse{data=models.Overview}
// @Router /api/stats/overview [get]
func (h *Handler) StatsOverview(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, cacheKeyOverview, func(ctx context.Context) (interface{}, error) {
		return h.db.Overview(ctx)
	})
}
