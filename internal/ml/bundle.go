// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import (
	"errors"
	"time"
)

// ErrIncompleteBundle is returned when a bundle is missing an artifact.
var ErrIncompleteBundle = errors.New("model bundle is incomplete")

// BundleName is the model-store name bundles are saved under.
const BundleName = "airdefence"

// SystemClassifier holds whichever model-1 candidate won selection.
// Exactly one field is set.
type SystemClassifier struct {
	Forest   *RandomForestClassifier
	Boosting *GradientBoostingClassifier
}

// Model returns the selected classifier, or nil.
func (s *SystemClassifier) Model() Classifier {
	switch {
	case s.Forest != nil:
		return s.Forest
	case s.Boosting != nil:
		return s.Boosting
	default:
		return nil
	}
}

// Bundle is every artifact the prediction service needs, persisted and
// swapped as one unit.
type Bundle struct {
	Version int

	SystemTypes    LabelEncoder
	Classes        LabelEncoder
	Outcomes       LabelEncoder
	SystemScaler   StandardScaler
	WarScaler      StandardScaler
	SystemModel    SystemClassifier
	OutcomeModel   *RandomForestClassifier
	WinProbability *RandomForestRegressor

	Metadata Metadata
}

// Validate reports whether every artifact is present.
func (b *Bundle) Validate() error {
	switch {
	case b == nil:
		return ErrIncompleteBundle
	case b.SystemModel.Model() == nil:
		return errors.Join(ErrIncompleteBundle, errors.New("missing system classifier"))
	case b.OutcomeModel == nil:
		return errors.Join(ErrIncompleteBundle, errors.New("missing outcome classifier"))
	case b.WinProbability == nil:
		return errors.Join(ErrIncompleteBundle, errors.New("missing win probability regressor"))
	case b.SystemScaler.Mean == nil || b.WarScaler.Mean == nil:
		return errors.Join(ErrIncompleteBundle, errors.New("missing scaler"))
	case len(b.SystemTypes.Classes) == 0 || len(b.Classes.Classes) == 0 || len(b.Outcomes.Classes) == 0:
		return errors.Join(ErrIncompleteBundle, errors.New("missing label encoder"))
	}
	return nil
}

// Metadata describes a trained bundle. It is served by /api/models/info
// and written to model_metadata.json.
type Metadata struct {
	Model1Accuracy float64     `json:"model1_accuracy"`
	Model2Accuracy float64     `json:"model2_accuracy"`
	Model3R2       float64     `json:"model3_r2"`
	SystemTypes    []string    `json:"system_types"`
	Model1         ModelInfo   `json:"model1"`
	Model2         ModelInfo   `json:"model2"`
	Model3         ModelInfo   `json:"model3"`
	Dataset        DatasetInfo `json:"dataset"`
	BundleVersion  int         `json:"bundle_version"`
	TrainedAt      time.Time   `json:"trained_at"`
	TrainingMS     int64       `json:"training_duration_ms"`
}

// ModelInfo describes one trained model.
type ModelInfo struct {
	Algorithm    string             `json:"algorithm"`
	Task         string             `json:"task"`
	Accuracy     float64            `json:"accuracy,omitempty"`
	CVMean       float64            `json:"cv_mean,omitempty"`
	CVStd        float64            `json:"cv_std,omitempty"`
	MAE          float64            `json:"mae,omitempty"`
	R2           float64            `json:"r2,omitempty"`
	Candidates   map[string]float64 `json:"candidates,omitempty"`
	Classes      []string           `json:"classes,omitempty"`
	Features     []string           `json:"features"`
	NEstimators  int                `json:"n_estimators"`
	MaxDepth     int                `json:"max_depth"`
	ClassWeight  string             `json:"class_weight,omitempty"`
	TrainSamples int                `json:"train_samples"`
	TestSamples  int                `json:"test_samples"`
}

// DatasetInfo records the table sizes a bundle was trained on.
type DatasetInfo struct {
	Countries int `json:"countries"`
	Systems   int `json:"systems"`
	Scenarios int `json:"scenarios"`
}
