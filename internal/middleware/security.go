// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"

	"github.com/tomtom215/airdefence/internal/logging"
	"github.com/tomtom215/airdefence/internal/metrics"
)

// RateLimitConfig configures the per-IP limiter.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	Disabled bool
}

// CORS returns a go-chi/cors handler for the given origins. The API is
// read-only, so only GET, POST and OPTIONS are allowed and credentials are
// never sent.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           86400,
	})
}

// RateLimit returns a per-IP httprate limiter, or a pass-through when
// disabled. Rejections are counted per route and answered with the API
// error envelope.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.Disabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimited),
	)
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	metrics.APIRateLimitHits.WithLabelValues(routePattern(r)).Inc()
	logging.CtxWarn(r.Context()).Str("remote_addr", r.RemoteAddr).Msg("Rate limit exceeded")

	requestID := logging.RequestIDFromContext(r.Context())
	body, _ := json.Marshal(map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"code":       "TOO_MANY_REQUESTS",
			"message":    "Rate limit exceeded, retry later",
			"request_id": requestID,
		},
	})
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write(body)
}

// SecurityHeaders sets the response headers every API response carries.
// HSTS is only sent when the request arrived over TLS, directly or through
// a terminating proxy.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// routePattern returns the matched chi route. Before routing has run (in
// router-level middleware) it falls back to the first two path segments so
// that names in the path never become label values.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return "/" + strings.Join(parts, "/")
}
