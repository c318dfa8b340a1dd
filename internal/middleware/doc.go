// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package middleware provides the HTTP middleware used by the API router.

Key Components:

  - RequestIDWithLogging: chi RequestID plus request/correlation IDs in the
    logging context
  - AccessLog: one zerolog line per request
  - CORS and RateLimit: go-chi/cors and go-chi/httprate built from config
  - SecurityHeaders: nosniff, frame denial, referrer policy, HSTS over TLS
  - Compression: pooled gzip writers
  - PrometheusMetrics: per-route request counters and latency histograms

Middleware Stack:

The router applies them in this order:

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestIDWithLogging())
	r.Use(middleware.AccessLog())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(cfg))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Compression)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics labels requests with the chi route pattern
("/api/countries/{name}") rather than the raw path so that country and
system names do not create new series.
*/
package middleware
