// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/airdefence/internal/models"
)

// endpointList is advertised by the root endpoint.
var endpointList = []string{
	"GET  /api/countries",
	"GET  /api/countries/names",
	"GET  /api/countries/{name}",
	"GET  /api/systems",
	"GET  /api/systems/names",
	"GET  /api/systems/by-name/{system_name}",
	"GET  /api/compare",
	"GET  /api/map/zones",
	"GET  /api/country/{name}/insights",
	"POST /api/predict/classify-system",
	"GET  /api/predict/war",
	"GET  /api/predict/history",
	"GET  /api/stats/overview",
	"GET  /api/models/info",
}

// Root reports that the service is online and lists its endpoints.
//
// @Summary Service status
// @Description Returns the project name, version and the list of endpoints
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=models.HealthStatus}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, models.HealthStatus{
		Status:    "online",
		Project:   ProjectName,
		Version:   Version,
		Endpoints: endpointList,
	})
}

// HealthLive handles liveness probes. It never touches dependencies.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":          true,
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
	})
}

// HealthReady handles readiness probes. The service is ready once the
// database answers and a model bundle is loaded.
//
// @Summary Readiness probe
// @Description Returns 200 when the database responds and models are loaded, 503 otherwise
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=models.ReadinessStatus}
// @Failure 503 {object} APIResponse{data=models.ReadinessStatus}
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := models.ReadinessStatus{
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			status.DatabaseError = err.Error()
		} else {
			status.Database = true
		}
	}
	if h.predictor != nil {
		status.ModelsLoaded = h.predictor.Loaded()
		status.BundleVersion = h.predictor.Version()
	}
	status.Ready = status.Database && status.ModelsLoaded

	code := http.StatusOK
	if !status.Ready {
		code = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).Status(code, status)
}
