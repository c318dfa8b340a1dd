// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/airdefence/internal/models"
	"github.com/tomtom215/airdefence/internal/validation"
)

const (
	defaultNamesLimit   = 100
	defaultHistoryLimit = 50
	maxRequestBodyBytes = 1 << 16
)

// ParamError reports a query parameter that could not be parsed.
type ParamError struct {
	Param string
	Value string
	Want  string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.Param, e.Value, e.Want)
}

type namesQuery struct {
	Country string `query:"country" validate:"max=100"`
	Q       string `query:"q" validate:"max=100"`
	Limit   int    `query:"limit" validate:"min=1,max=500"`
}

type systemsQuery struct {
	Country        string   `query:"country" validate:"max=100"`
	SystemName     string   `query:"system_name" validate:"max=200"`
	SystemType     string   `query:"system_type" validate:"max=50"`
	Classification string   `query:"classification" validate:"max=50"`
	MinThreat      *float64 `query:"min_threat"`
	MaxThreat      *float64 `query:"max_threat"`
}

func (q *systemsQuery) filter() models.SystemFilter {
	return models.SystemFilter{
		Country:        q.Country,
		NameContains:   q.SystemName,
		SystemType:     q.SystemType,
		Classification: q.Classification,
		MinThreat:      q.MinThreat,
		MaxThreat:      q.MaxThreat,
	}
}

type compareQuery struct {
	Country1 string `query:"country1" validate:"required,max=100"`
	Country2 string `query:"country2" validate:"required,max=100"`
}

type warQuery struct {
	AttackerCountry string `query:"attacker_country" validate:"required,max=100"`
	DefenderCountry string `query:"defender_country" validate:"required,max=100"`
}

type historyQuery struct {
	Limit int `query:"limit" validate:"min=1,max=500"`
}

// ClassifyRequest is the body of POST /api/predict/classify-system.
type ClassifyRequest struct {
	SystemName string `json:"system_name" validate:"required,max=200"`
}

// queryString returns the trimmed value of key.
func queryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// pathParam returns the decoded URL parameter key. Chi hands back the raw
// segment when the request path carried escapes of its own.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(raw)
}

// queryInt parses key as an integer, returning def when it is absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := queryString(r, key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParamError{Param: key, Value: raw, Want: "an integer"}
	}
	return v, nil
}

// queryFloat parses key as a float, returning nil when it is absent.
func queryFloat(r *http.Request, key string) (*float64, error) {
	raw := queryString(r, key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ParamError{Param: key, Value: raw, Want: "a number"}
	}
	return &v, nil
}

// validated runs the struct validator, returning nil or the field errors.
func validated(v interface{}) error {
	if ve := validation.ValidateStruct(v); ve != nil {
		return ve
	}
	return nil
}

func parseNamesQuery(r *http.Request) (*namesQuery, error) {
	limit, err := queryInt(r, "limit", defaultNamesLimit)
	if err != nil {
		return nil, err
	}
	q := &namesQuery{
		Country: queryString(r, "country"),
		Q:       queryString(r, "q"),
		Limit:   limit,
	}
	return q, validated(q)
}

func parseSystemsQuery(r *http.Request) (*systemsQuery, error) {
	minThreat, err := queryFloat(r, "min_threat")
	if err != nil {
		return nil, err
	}
	maxThreat, err := queryFloat(r, "max_threat")
	if err != nil {
		return nil, err
	}
	q := &systemsQuery{
		Country:        queryString(r, "country"),
		SystemName:     queryString(r, "system_name"),
		SystemType:     queryString(r, "system_type"),
		Classification: queryString(r, "classification"),
		MinThreat:      minThreat,
		MaxThreat:      maxThreat,
	}
	return q, validated(q)
}

func parseCompareQuery(r *http.Request) (*compareQuery, error) {
	q := &compareQuery{
		Country1: queryString(r, "country1"),
		Country2: queryString(r, "country2"),
	}
	return q, validated(q)
}

func parseWarQuery(r *http.Request) (*warQuery, error) {
	q := &warQuery{
		AttackerCountry: queryString(r, "attacker_country"),
		DefenderCountry: queryString(r, "defender_country"),
	}
	return q, validated(q)
}

func parseHistoryQuery(r *http.Request) (*historyQuery, error) {
	limit, err := queryInt(r, "limit", defaultHistoryLimit)
	if err != nil {
		return nil, err
	}
	q := &historyQuery{Limit: limit}
	return q, validated(q)
}

// decodeClassifyRequest reads and validates the classify body.
func decodeClassifyRequest(w http.ResponseWriter, r *http.Request) (*ClassifyRequest, error) {
	var req ClassifyRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return nil, &ParamError{Param: "body", Value: truncate(err.Error(), 120), Want: `a JSON object {"system_name": "..."}`}
	}
	req.SystemName = strings.TrimSpace(req.SystemName)
	return &req, validated(&req)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
