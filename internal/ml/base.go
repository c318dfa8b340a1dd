// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrNotFitted is returned when predicting with an untrained model.
	ErrNotFitted = errors.New("model is not fitted")

	// ErrEmptyInput is returned when fitting on zero samples.
	ErrEmptyInput = errors.New("no training samples")

	// ErrShapeMismatch is returned when X and y disagree in length, or a
	// row has the wrong width.
	ErrShapeMismatch = errors.New("input shape mismatch")
)

// Classifier is a fitted-or-fittable multi-class model over integer labels.
type Classifier interface {
	Name() string
	Fit(ctx context.Context, X [][]float64, y []int) error
	PredictProba(x []float64) ([]float64, error)
	Predict(x []float64) (int, error)
}

// Regressor is a fitted-or-fittable model over real targets.
type Regressor interface {
	Name() string
	Fit(ctx context.Context, X [][]float64, y []float64) error
	Predict(x []float64) (float64, error)
}

// baseModel carries the lock and fit timestamp shared by all models.
// It is unexported so gob skips it.
type baseModel struct {
	mu       sync.RWMutex
	fittedAt time.Time
}

// FittedAt returns when Fit last completed, or the zero time after decoding.
func (b *baseModel) FittedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fittedAt
}

// markFitted must be called while holding the write lock.
func (b *baseModel) markFitted() {
	b.fittedAt = time.Now()
}

func checkShape(X [][]float64, n int) (int, error) {
	if len(X) == 0 {
		return 0, ErrEmptyInput
	}
	if len(X) != n {
		return 0, ErrShapeMismatch
	}
	width := len(X[0])
	for _, row := range X {
		if len(row) != width {
			return 0, ErrShapeMismatch
		}
	}
	return width, nil
}

// argmax returns the index of the largest value, lowest index on ties.
func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

// PredictAll applies c to every row of X.
func PredictAll(c Classifier, X [][]float64) ([]int, error) {
	out := make([]int, len(X))
	for i, x := range X {
		p, err := c.Predict(x)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// PredictAllRegressor applies r to every row of X.
func PredictAllRegressor(r Regressor, X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i, x := range X {
		p, err := r.Predict(x)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
