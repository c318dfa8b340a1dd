// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/airdefence/internal/analytics"
	"github.com/tomtom215/airdefence/internal/models"
)

// Countries lists every country, optionally filtered by risk zone.
//
// @Summary List countries
// @Description Countries with coordinates, zone colour and profile fields. risk_zone is case-insensitive.
// @Tags Countries
// @Produce json
// @Param risk_zone query string false "Red | Yellow | Green"
// @Success 200 {object} APIResponse{data=models.CountryList}
// @Failure 404 {object} APIResponse "No countries in that zone"
// @Router /api/countries [get]
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	zoneParam := queryString(r, "risk_zone")

	var (
		countries []models.Country
		err       error
	)
	if zoneParam == "" {
		countries, err = h.db.Countries(r.Context())
	} else if zone, ok := models.ParseZone(zoneParam); ok {
		countries, err = h.db.CountriesByZone(r.Context(), zone)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	if zoneParam != "" && len(countries) == 0 {
		NewResponseWriter(w, r).NotFound(fmt.Sprintf("No countries found for risk_zone='%s'", zoneParam))
		return
	}

	items := make([]models.CountryListItem, len(countries))
	for i := range countries {
		items[i] = analytics.CountryItem(&countries[i])
	}
	WriteSuccess(w, r, models.CountryList{Count: len(items), Countries: items})
}

// CountryNames is the lightweight country list for autocomplete.
//
// @Summary Country names
// @Tags Countries
// @Produce json
// @Param q query string false "Name substring, case-insensitive"
// @Param limit query int false "Max results (1-500)" default(100)
// @Success 200 {object} APIResponse{data=models.CountryNameList}
// @Failure 400 {object} APIResponse
// @Router /api/countries/names [get]
func (h *Handler) CountryNames(w http.ResponseWriter, r *http.Request) {
	q, err := parseNamesQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	names, err := h.db.CountryNames(r.Context(), q.Q, q.Limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, models.CountryNameList{Count: len(names), Countries: names})
}

// Country returns the full profile of one country with its systems.
//
// @Summary Country profile
// @Tags Countries
// @Produce json
// @Param name path string true "Country name, case-insensitive"
// @Success 200 {object} APIResponse{data=models.CountryDetail}
// @Failure 404 {object} APIResponse
// @Router /api/countries/{name} [get]
func (h *Handler) Country(w http.ResponseWriter, r *http.Request) {
	country, err := h.db.CountryByName(r.Context(), pathParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	systems, err := h.db.SystemsByCountry(r.Context(), country.Country)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, analytics.CountryDetail(country, systems))
}
