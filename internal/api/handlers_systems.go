// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"net/http"

	"github.com/tomtom215/airdefence/internal/models"
)

// Systems lists the systems matching every given filter.
//
// @Summary List systems
// @Description Full system rows. Text filters are case-insensitive; system_name matches a substring.
// @Tags Systems
// @Produce json
// @Param country query string false "Exact country name"
// @Param system_name query string false "Name substring"
// @Param system_type query string false "System type"
// @Param classification query string false "Modern | Traditional"
// @Param min_threat query number false "Minimum threat level"
// @Param max_threat query number false "Maximum threat level"
// @Success 200 {object} APIResponse{data=models.SystemList}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse "No systems match"
// @Router /api/systems [get]
func (h *Handler) Systems(w http.ResponseWriter, r *http.Request) {
	q, err := parseSystemsQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	systems, err := h.db.Systems(r.Context(), q.filter())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(systems) == 0 {
		NewResponseWriter(w, r).NotFound("No systems match the given filters")
		return
	}
	WriteSuccess(w, r, models.SystemList{Count: len(systems), Systems: systems})
}

// SystemNames is the lightweight system list for autocomplete.
//
// @Summary System names
// @Tags Systems
// @Produce json
// @Param country query string false "Exact country name"
// @Param q query string false "Name substring"
// @Param limit query int false "Max results (1-500)" default(100)
// @Success 200 {object} APIResponse{data=models.SystemNameList}
// @Failure 400 {object} APIResponse
// @Router /api/systems/names [get]
func (h *Handler) SystemNames(w http.ResponseWriter, r *http.Request) {
	q, err := parseNamesQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	names, err := h.db.SystemNames(r.Context(), q.Country, q.Q, q.Limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, models.SystemNameList{Count: len(names), Systems: names})
}

// SystemByName returns one system's full specification. An exact name wins;
// otherwise the name must match exactly one system partially.
//
// @Summary System by name
// @Tags Systems
// @Produce json
// @Param name path string true "System name, full or partial"
// @Success 200 {object} APIResponse{data=models.System}
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse "Several systems match; details.matches lists them"
// @Router /api/systems/by-name/{name} [get]
func (h *Handler) SystemByName(w http.ResponseWriter, r *http.Request) {
	system, err := h.db.SystemByName(r.Context(), pathParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, system)
}
