// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/airdefence/internal/features"
	"github.com/tomtom215/airdefence/internal/models"
	"github.com/tomtom215/airdefence/internal/prediction"
)

// ClassifySystem predicts Modern or Traditional for a dataset system chosen
// by name (model 1).
//
// @Summary Classify a system
// @Description Resolves system_name like /api/systems/by-name, then classifies it with the loaded model
// @Tags ML Predictions
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "System to classify"
// @Success 200 {object} APIResponse{data=models.ClassifyResult}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Failure 503 {object} APIResponse "Models not loaded"
// @Router /api/predict/classify-system [post]
func (h *Handler) ClassifySystem(w http.ResponseWriter, r *http.Request) {
	req, err := decodeClassifyRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	system, err := h.db.SystemByName(r.Context(), req.SystemName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.predictor == nil {
		writeError(w, r, prediction.ErrModelsNotLoaded)
		return
	}
	result, err := h.predictor.ClassifySystem(r.Context(), system)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, result)
}

// PredictWar predicts the outcome of an air campaign between two countries
// (models 2 and 3).
//
// @Summary Predict a war scenario
// @Tags ML Predictions
// @Produce json
// @Param attacker_country query string true "Attacker country"
// @Param defender_country query string true "Defender country"
// @Success 200 {object} APIResponse{data=models.WarResult}
// @Failure 400 {object} APIResponse "Missing or identical countries"
// @Failure 404 {object} APIResponse
// @Failure 503 {object} APIResponse "Models not loaded"
// @Router /api/predict/war [get]
func (h *Handler) PredictWar(w http.ResponseWriter, r *http.Request) {
	q, err := parseWarQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if strings.EqualFold(q.AttackerCountry, q.DefenderCountry) {
		writeError(w, r, prediction.ErrSameCountry)
		return
	}

	ctx := r.Context()
	att, attFS, err := h.countryForce(ctx, q.AttackerCountry)
	if err != nil {
		writeError(w, r, err)
		return
	}
	dfn, dfnFS, err := h.countryForce(ctx, q.DefenderCountry)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.predictor == nil {
		writeError(w, r, prediction.ErrModelsNotLoaded)
		return
	}

	result, err := h.predictor.PredictWar(ctx, att, dfn, attFS, dfnFS)
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, result)
}

// countryForce resolves a country and summarizes its systems.
func (h *Handler) countryForce(ctx context.Context, name string) (*models.Country, *models.ForceSummary, error) {
	country, err := h.db.CountryByName(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	systems, err := h.db.SystemsByCountry(ctx, country.Country)
	if err != nil {
		return nil, nil, err
	}
	fs := features.Summarize(country.Country, systems)
	return country, &fs, nil
}

// PredictionHistory returns the most recent predictions, newest first.
//
// @Summary Recent predictions
// @Tags ML Predictions
// @Produce json
// @Param limit query int false "Max results (1-500)" default(50)
// @Success 200 {object} APIResponse{data=models.PredictionHistory}
// @Failure 400 {object} APIResponse
// @Router /api/predict/history [get]
func (h *Handler) PredictionHistory(w http.ResponseWriter, r *http.Request) {
	q, err := parseHistoryQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	records := []models.PredictionRecord{}
	if h.history != nil {
		records = h.history.Recent(q.Limit)
	}
	WriteSuccess(w, r, models.PredictionHistory{Count: len(records), Predictions: records})
}

// ModelsInfo returns the metadata of the loaded model bundle.
//
// @Summary Model metadata
// @Tags Dashboard
// @Produce json
// @Success 200 {object} APIResponse{data=ml.Metadata}
// @Failure 503 {object} APIResponse "Models not loaded"
// @Router /api/models/info [get]
func (h *Handler) ModelsInfo(w http.ResponseWriter, r *http.Request) {
	if h.predictor == nil {
		writeError(w, r, prediction.ErrModelsNotLoaded)
		return
	}
	meta, err := h.predictor.Metadata()
	if err != nil {
		writeError(w, r, err)
		return
	}
	WriteSuccess(w, r, meta)
}
