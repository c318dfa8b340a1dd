// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/airdefence/internal/config"
	"github.com/tomtom215/airdefence/internal/database"
	"github.com/tomtom215/airdefence/internal/dataset"
	"github.com/tomtom215/airdefence/internal/events"
	"github.com/tomtom215/airdefence/internal/models"
	"github.com/tomtom215/airdefence/internal/pipeline"
	"github.com/tomtom215/airdefence/internal/prediction"
)

// testScenarios keeps fixture generation fast; endpoint behaviour does not
// depend on the scenario count.
const testScenarios = 200

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
		Cache:  config.CacheConfig{TTL: time.Minute},
		Events: config.EventsConfig{HistorySize: 10},
	}
}

// setupTestDB generates the reference dataset into an in-memory database.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", Threads: 2, MaxMemory: "512MB"})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	opts := pipeline.Options{
		DataDir:   filepath.Join(t.TempDir(), "data"),
		Seed:      dataset.DefaultSeed,
		Scenarios: testScenarios,
	}
	if _, err := pipeline.Generate(context.Background(), db, opts, zerolog.Nop()); err != nil {
		t.Fatalf("pipeline.Generate() error = %v", err)
	}
	return db
}

// setupTestRouter returns a router over a generated dataset with no models
// loaded.
func setupTestRouter(t *testing.T) (http.Handler, *Handler) {
	t.Helper()
	h := NewHandler(setupTestDB(t), prediction.NewService(nil, zerolog.Nop()), events.NewHistory(10), testConfig())
	return NewRouter(h, testConfig()).Setup(), h
}

// envelope mirrors APIResponse with Data left raw for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta *APIMeta `json:"meta"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode body: %v\n%s", method, target, err, w.Body.String())
		}
	}
	return w, env
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return do(t, h, http.MethodGet, target, "")
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v\n%s", err, env.Data)
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d; body %s", w.Code, status, w.Body.String())
	}
	if env.Success {
		t.Error("success = true on error response")
	}
	if env.Error == nil {
		t.Fatal("error = nil")
	}
	if env.Error.Code != code {
		t.Errorf("error.code = %q, want %q", env.Error.Code, code)
	}
}

// historyPublisher records served predictions straight into a History.
type historyPublisher struct {
	history *events.History
}

func (p historyPublisher) PublishPrediction(_ context.Context, rec *models.PredictionRecord) error {
	p.history.Add(rec)
	return nil
}
