// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/airdefence/internal/config"
	"github.com/tomtom215/airdefence/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler *Handler
	cfg     *config.Config
}

// NewRouter creates a router for handler.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(router.cfg.Security.CORSOrigins)) // global so OPTIONS preflight is answered

	// ========================
	// Health Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(middleware.SecurityHeaders())
		r.Get("/", router.handler.Root)
		r.Get("/health/live", router.handler.HealthLive)
		r.Get("/health/ready", router.handler.HealthReady)
	})

	// ========================
	// Data and Prediction Endpoints
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Requests: router.cfg.Security.RateLimitReqs,
			Window:   router.cfg.Security.RateLimitWindow,
			Disabled: router.cfg.Security.RateLimitDisabled,
		}))
		r.Use(middleware.SecurityHeaders())
		r.Use(middleware.Compression)
		r.Use(middleware.PrometheusMetrics)

		r.Get("/countries", router.handler.Countries)
		r.Get("/countries/names", router.handler.CountryNames)
		r.Get("/countries/{name}", router.handler.Country)

		r.Get("/systems", router.handler.Systems)
		r.Get("/systems/names", router.handler.SystemNames)
		r.Get("/systems/by-name/{name}", router.handler.SystemByName)

		r.Get("/compare", router.handler.Compare)
		r.Get("/map/zones", router.handler.MapZones)
		r.Get("/country/{name}/insights", router.handler.CountryInsights)

		r.Route("/predict", func(r chi.Router) {
			r.Post("/classify-system", router.handler.ClassifySystem)
			r.Get("/war", router.handler.PredictWar)
			r.Get("/history", router.handler.PredictionHistory)
		})

		r.Get("/stats/overview", router.handler.StatsOverview)
		r.Get("/models/info", router.handler.ModelsInfo)
	})

	// ========================
	// Operations
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
