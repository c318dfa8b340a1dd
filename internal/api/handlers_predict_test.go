// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/airdefence/internal/events"
	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/ml/storage"
	"github.com/tomtom215/airdefence/internal/models"
	"github.com/tomtom215/airdefence/internal/pipeline"
	"github.com/tomtom215/airdefence/internal/prediction"
	"github.com/tomtom215/airdefence/internal/training"
)

// TestPredictions_TrainedModels trains a bundle on the generated dataset and
// drives every model-backed endpoint through the router.
func TestPredictions_TrainedModels(t *testing.T) {
	if testing.Short() {
		t.Skip("trains three models")
	}

	ctx := context.Background()
	db := setupTestDB(t)
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	bundle, err := pipeline.Train(ctx, db, store, training.Config{ModelsDir: t.TempDir(), KeepVersions: 1}, zerolog.Nop())
	if err != nil {
		t.Fatalf("pipeline.Train() error = %v", err)
	}

	history := events.NewHistory(10)
	predictor := prediction.NewService(historyPublisher{history: history}, zerolog.Nop())
	if err := predictor.Load(bundle); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	h := NewHandler(db, predictor, history, testConfig())
	router := NewRouter(h, testConfig()).Setup()

	t.Run("ready", func(t *testing.T) {
		w, env := get(t, router, "/health/ready")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
		}
		var status models.ReadinessStatus
		decodeData(t, env, &status)
		if status.BundleVersion != bundle.Version {
			t.Errorf("bundle_version = %d, want %d", status.BundleVersion, bundle.Version)
		}
	})

	t.Run("classify", func(t *testing.T) {
		w, env := do(t, router, http.MethodPost, "/api/predict/classify-system", `{"system_name":"f-22 raptor"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
		}
		var result models.ClassifyResult
		decodeData(t, env, &result)
		if result.SelectedSystem.SystemName != "F-22 Raptor" {
			t.Errorf("selected = %q", result.SelectedSystem.SystemName)
		}
		p := result.Prediction
		if p.Classification != "Modern" && p.Classification != "Traditional" {
			t.Errorf("classification = %q", p.Classification)
		}
		if p.Confidence != p.Probabilities[p.Classification] {
			t.Errorf("confidence %v != probability of %s %v", p.Confidence, p.Classification, p.Probabilities)
		}
	})

	t.Run("war", func(t *testing.T) {
		w, env := get(t, router, "/api/predict/war?attacker_country=china&defender_country=India")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
		}
		var result models.WarResult
		decodeData(t, env, &result)
		if result.Attacker.Country != "China" || result.Defender.Country != "India" {
			t.Errorf("sides = %q vs %q", result.Attacker.Country, result.Defender.Country)
		}
		var sum float64
		for _, p := range result.Prediction.OutcomeProbabilities {
			sum += p
		}
		if math.Abs(sum-1) > 0.01 {
			t.Errorf("outcome probabilities sum to %v", sum)
		}
		if result.Prediction.EstimatedDurationDays < 1 {
			t.Errorf("duration = %d days", result.Prediction.EstimatedDurationDays)
		}
	})

	t.Run("history", func(t *testing.T) {
		w, env := get(t, router, "/api/predict/history?limit=1")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var list models.PredictionHistory
		decodeData(t, env, &list)
		if list.Count != 1 {
			t.Fatalf("count = %d, want 1", list.Count)
		}
		if list.Predictions[0].Kind != "war" {
			t.Errorf("newest kind = %q, want war", list.Predictions[0].Kind)
		}
		if history.Len() != 2 {
			t.Errorf("history len = %d, want 2", history.Len())
		}
	})

	t.Run("models info", func(t *testing.T) {
		w, env := get(t, router, "/api/models/info")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var meta ml.Metadata
		decodeData(t, env, &meta)
		if meta.BundleVersion != bundle.Version {
			t.Errorf("bundle_version = %d, want %d", meta.BundleVersion, bundle.Version)
		}
	})
}
