// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/airdefence/internal/models"
	"github.com/tomtom215/airdefence/internal/validation"
)

func TestRoot(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/")
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d success = %v", w.Code, env.Success)
	}
	var status models.HealthStatus
	decodeData(t, env, &status)
	if status.Status != "online" || status.Project != ProjectName {
		t.Errorf("status = %+v", status)
	}
	if len(status.Endpoints) != len(endpointList) {
		t.Errorf("endpoints = %d, want %d", len(status.Endpoints), len(endpointList))
	}
	if env.Meta == nil || env.Meta.RequestID == "" {
		t.Error("meta.request_id missing")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestHealthReady_NoModels(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/health/ready")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var status models.ReadinessStatus
	decodeData(t, env, &status)
	if !status.Database || status.ModelsLoaded || status.Ready {
		t.Errorf("status = %+v, want database up and models not loaded", status)
	}
}

func TestHealthLive(t *testing.T) {
	router, _ := setupTestRouter(t)
	w, env := get(t, router, "/health/live")
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCountries(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name      string
		target    string
		wantCount int
	}{
		{"all", "/api/countries", 14},
		{"red zone", "/api/countries?risk_zone=Red", 3},
		{"case-insensitive zone", "/api/countries?risk_zone=yellow", 4},
		{"green zone", "/api/countries?risk_zone=GREEN", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := get(t, router, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
			}
			var list models.CountryList
			decodeData(t, env, &list)
			if list.Count != tt.wantCount || len(list.Countries) != tt.wantCount {
				t.Errorf("count = %d (%d items), want %d", list.Count, len(list.Countries), tt.wantCount)
			}
			for _, c := range list.Countries {
				if c.ZoneColor == "" {
					t.Errorf("%s: zone_color empty", c.Country)
				}
			}
		})
	}
}

func TestCountries_UnknownZone(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/countries?risk_zone=Purple")
	expectError(t, w, env, http.StatusNotFound, ErrCodeNotFound)
	if env.Error.Message != "No countries found for risk_zone='Purple'" {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestCountry(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/countries/pakistan")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	var detail models.CountryDetail
	decodeData(t, env, &detail)
	if detail.Country.Country != "Pakistan" {
		t.Errorf("country = %q, want Pakistan", detail.Country.Country)
	}
	if len(detail.Systems) == 0 || detail.ForceSummary.TotalSystems != len(detail.Systems) {
		t.Errorf("systems = %d, force_summary.total_systems = %d", len(detail.Systems), detail.ForceSummary.TotalSystems)
	}

	w, env = get(t, router, "/api/countries/United%20Kingdom")
	if w.Code != http.StatusOK {
		t.Fatalf("escaped name: status = %d", w.Code)
	}

	w, env = get(t, router, "/api/countries/Atlantis")
	expectError(t, w, env, http.StatusNotFound, ErrCodeNotFound)
	if env.Error.Message != "Country 'Atlantis' not found" {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestCountryNames(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/countries/names?q=an&limit=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list models.CountryNameList
	decodeData(t, env, &list)
	if list.Count != 2 {
		t.Errorf("count = %d, want 2", list.Count)
	}

	w, env = get(t, router, "/api/countries/names?limit=0")
	expectError(t, w, env, http.StatusBadRequest, validation.ErrCodeValidation)

	w, env = get(t, router, "/api/countries/names?limit=ten")
	expectError(t, w, env, http.StatusBadRequest, ErrCodeBadRequest)
}

func TestSystems_Filters(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/systems?country=india&classification=modern&min_threat=5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	var list models.SystemList
	decodeData(t, env, &list)
	if list.Count == 0 {
		t.Fatal("no systems returned")
	}
	for _, s := range list.Systems {
		if s.Country != "India" || s.Classification != "Modern" || s.ThreatLevel < 5 {
			t.Errorf("system %s (%s, %s, %.1f) does not match filters", s.SystemName, s.Country, s.Classification, s.ThreatLevel)
		}
	}

	w, env = get(t, router, "/api/systems?country=Atlantis")
	expectError(t, w, env, http.StatusNotFound, ErrCodeNotFound)

	w, env = get(t, router, "/api/systems?min_threat=high")
	expectError(t, w, env, http.StatusBadRequest, ErrCodeBadRequest)
}

func TestSystemByName(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("exact", func(t *testing.T) {
		w, env := get(t, router, "/api/systems/by-name/S-400%20Triumf%20(India)")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
		}
		var sys models.System
		decodeData(t, env, &sys)
		if sys.Country != "India" {
			t.Errorf("country = %q, want India", sys.Country)
		}
	})

	t.Run("unique partial", func(t *testing.T) {
		w, env := get(t, router, "/api/systems/by-name/tejas")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var sys models.System
		decodeData(t, env, &sys)
		if sys.SystemName != "HAL Tejas Mk1A" {
			t.Errorf("system_name = %q", sys.SystemName)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		w, env := get(t, router, "/api/systems/by-name/S-400")
		expectError(t, w, env, http.StatusConflict, ErrCodeConflict)
		var details struct {
			Matches []string `json:"matches"`
		}
		if err := json.Unmarshal(env.Error.Details, &details); err != nil {
			t.Fatalf("decode details: %v", err)
		}
		want := []string{"S-400 Triumf (India)", "S-400 Triumf (Russia)"}
		if len(details.Matches) != len(want) || details.Matches[0] != want[0] || details.Matches[1] != want[1] {
			t.Errorf("matches = %v, want %v", details.Matches, want)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w, env := get(t, router, "/api/systems/by-name/Nonexistent")
		expectError(t, w, env, http.StatusNotFound, ErrCodeNotFound)
		if env.Error.Message != "System 'Nonexistent' not found" {
			t.Errorf("message = %q", env.Error.Message)
		}
	})
}

func TestSystemNames(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/systems/names?country=USA")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list models.SystemNameList
	decodeData(t, env, &list)
	if list.Count == 0 {
		t.Fatal("no names for USA")
	}
	for _, n := range list.Systems {
		if n.Country != "USA" {
			t.Errorf("%s has country %q", n.SystemName, n.Country)
		}
	}
}

func TestCompare(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/compare?country1=india&country2=China")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	var result models.CompareResult
	decodeData(t, env, &result)
	if result.Country1.Country != "India" || result.Country2.Country != "China" {
		t.Errorf("sides = %q, %q", result.Country1.Country, result.Country2.Country)
	}
	if len(result.ComparisonChart) == 0 {
		t.Fatal("comparison_chart empty")
	}
	// Chart rows are keyed by the names as requested.
	if _, ok := result.ComparisonChart[0]["india"]; !ok {
		t.Errorf("comparison row keys = %v, want requested name %q", result.ComparisonChart[0], "india")
	}

	w, env = get(t, router, "/api/compare?country1=India")
	expectError(t, w, env, http.StatusBadRequest, validation.ErrCodeValidation)

	w, env = get(t, router, "/api/compare?country1=India&country2=Atlantis")
	expectError(t, w, env, http.StatusNotFound, ErrCodeNotFound)
}

func TestMapZones(t *testing.T) {
	router, h := setupTestRouter(t)

	w, env := get(t, router, "/api/map/zones")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var zones models.MapZones
	decodeData(t, env, &zones)
	if len(zones.Countries) != 14 {
		t.Errorf("countries = %d, want 14", len(zones.Countries))
	}
	if zones.ZoneCounts[models.ZoneRed] != 3 {
		t.Errorf("red count = %d, want 3", zones.ZoneCounts[models.ZoneRed])
	}

	// Second call is served from the cache.
	if _, ok := h.cache.Get(cacheKeyMapZones); !ok {
		t.Error("map zones not cached after first request")
	}
	w2, env2 := get(t, router, "/api/map/zones")
	if w2.Code != http.StatusOK || string(env2.Data) != string(env.Data) {
		t.Error("cached response differs")
	}

	h.ClearCache()
	if _, ok := h.cache.Get(cacheKeyMapZones); ok {
		t.Error("cache not cleared")
	}
}

func TestCountryInsights(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/country/Israel/insights")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	var insights models.CountryInsights
	decodeData(t, env, &insights)
	if insights.Country != "Israel" {
		t.Errorf("country = %q", insights.Country)
	}
	if len(insights.Top3Systems) == 0 || len(insights.Top3Systems) > 3 {
		t.Errorf("top systems = %d, want 1..3", len(insights.Top3Systems))
	}

	w, env = get(t, router, "/api/country/Atlantis/insights")
	expectError(t, w, env, http.StatusNotFound, ErrCodeNotFound)
}

func TestStatsOverview(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/stats/overview")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var overview models.Overview
	decodeData(t, env, &overview)
	if overview.TotalCountries != 14 || overview.TotalSystems != 82 {
		t.Errorf("overview = %d countries, %d systems", overview.TotalCountries, overview.TotalSystems)
	}
	if overview.ModernSystems+overview.TraditionalSystems != overview.TotalSystems {
		t.Errorf("modern %d + traditional %d != total %d", overview.ModernSystems, overview.TraditionalSystems, overview.TotalSystems)
	}
}

func TestPredict_ModelsNotLoaded(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/predict/classify-system", `{"system_name":"Rafale C"}`)
	expectError(t, w, env, http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
	if env.Error.Message != msgModelsNotLoaded {
		t.Errorf("message = %q", env.Error.Message)
	}

	w, env = get(t, router, "/api/predict/war?attacker_country=India&defender_country=Pakistan")
	expectError(t, w, env, http.StatusServiceUnavailable, ErrCodeServiceUnavailable)

	w, env = get(t, router, "/api/models/info")
	expectError(t, w, env, http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
}

func TestClassifySystem_BadRequests(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed body", `{"system_name":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"missing name", `{}`, http.StatusBadRequest, validation.ErrCodeValidation},
		{"blank name", `{"system_name":"   "}`, http.StatusBadRequest, validation.ErrCodeValidation},
		{"unknown system", `{"system_name":"Nonexistent"}`, http.StatusNotFound, ErrCodeNotFound},
		{"ambiguous system", `{"system_name":"S-400"}`, http.StatusConflict, ErrCodeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, router, http.MethodPost, "/api/predict/classify-system", tt.body)
			expectError(t, w, env, tt.status, tt.code)
		})
	}
}

func TestPredictWar_BadRequests(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name    string
		target  string
		status  int
		code    string
		message string
	}{
		{
			name:   "missing defender",
			target: "/api/predict/war?attacker_country=India",
			status: http.StatusBadRequest,
			code:   validation.ErrCodeValidation,
		},
		{
			name:    "same country",
			target:  "/api/predict/war?attacker_country=India&defender_country=india",
			status:  http.StatusBadRequest,
			code:    ErrCodeBadRequest,
			message: "Attacker and defender must be different countries",
		},
		{
			// Same-country is checked before the countries are resolved.
			name:   "same unknown country",
			target: "/api/predict/war?attacker_country=Atlantis&defender_country=ATLANTIS",
			status: http.StatusBadRequest,
			code:   ErrCodeBadRequest,
		},
		{
			name:    "unknown attacker",
			target:  "/api/predict/war?attacker_country=Atlantis&defender_country=India",
			status:  http.StatusNotFound,
			code:    ErrCodeNotFound,
			message: "Country 'Atlantis' not found",
		},
		{
			name:    "unknown defender",
			target:  "/api/predict/war?attacker_country=India&defender_country=Atlantis",
			status:  http.StatusNotFound,
			code:    ErrCodeNotFound,
			message: "Country 'Atlantis' not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := get(t, router, tt.target)
			expectError(t, w, env, tt.status, tt.code)
			if tt.message != "" && env.Error.Message != tt.message {
				t.Errorf("message = %q, want %q", env.Error.Message, tt.message)
			}
		})
	}
}

func TestPredictionHistory_Empty(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := get(t, router, "/api/predict/history")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var history models.PredictionHistory
	decodeData(t, env, &history)
	if history.Count != 0 || history.Predictions == nil {
		t.Errorf("history = %+v, want empty non-nil list", history)
	}

	w, env = get(t, router, "/api/predict/history?limit=501")
	expectError(t, w, env, http.StatusBadRequest, validation.ErrCodeValidation)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, _ := get(t, router, "/api/does-not-exist")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	w, _ = do(t, router, http.MethodGet, "/api/predict/classify-system", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET classify: status = %d, want 405", w.Code)
	}
}
