// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrUnknownLabel is returned when encoding a label not seen during Fit.
var ErrUnknownLabel = errors.New("unknown label")

// StandardScaler centers features to zero mean and unit population variance.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// Fit learns per-column mean and standard deviation. Constant columns get
// a scale of 1.
func (s *StandardScaler) Fit(X [][]float64) error {
	width, err := checkShape(X, len(X))
	if err != nil {
		return err
	}
	n := float64(len(X))
	mean := make([]float64, width)
	for _, row := range X {
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= n
	}
	scale := make([]float64, width)
	for _, row := range X {
		for j, v := range row {
			d := v - mean[j]
			scale[j] += d * d
		}
	}
	for j := range scale {
		scale[j] = math.Sqrt(scale[j] / n)
		if scale[j] == 0 {
			scale[j] = 1
		}
	}
	s.Mean, s.Scale = mean, scale
	return nil
}

// TransformRow scales a single row.
func (s *StandardScaler) TransformRow(x []float64) ([]float64, error) {
	if s.Mean == nil {
		return nil, ErrNotFitted
	}
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrShapeMismatch, len(x), len(s.Mean))
	}
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return out, nil
}

// Transform scales every row of X.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	out := make([][]float64, len(X))
	for i, row := range X {
		r, err := s.TransformRow(row)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// FitTransform fits on X and returns it scaled.
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// LabelEncoder maps string labels to indices of their sorted unique values.
type LabelEncoder struct {
	Classes []string
}

// Fit records the sorted distinct labels.
func (e *LabelEncoder) Fit(labels []string) {
	classes := slices.Clone(labels)
	slices.Sort(classes)
	e.Classes = slices.Compact(classes)
}

// Transform encodes one label.
func (e *LabelEncoder) Transform(label string) (int, error) {
	i, ok := slices.BinarySearch(e.Classes, label)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return i, nil
}

// TransformAll encodes every label.
func (e *LabelEncoder) TransformAll(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		v, err := e.Transform(l)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Inverse decodes an index.
func (e *LabelEncoder) Inverse(i int) (string, error) {
	if i < 0 || i >= len(e.Classes) {
		return "", fmt.Errorf("%w: index %d", ErrUnknownLabel, i)
	}
	return e.Classes[i], nil
}
