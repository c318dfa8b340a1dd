// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// blobs returns two well separated clusters in 4 dimensions.
func blobs(n int, seed uint64) ([][]float64, []int) {
	rng := rand.New(rand.NewPCG(seed, 1))
	X := make([][]float64, n)
	y := make([]int, n)
	for i := range X {
		c := i % 2
		center := float64(c) * 10
		X[i] = []float64{
			center + rng.NormFloat64(),
			center + rng.NormFloat64(),
			rng.NormFloat64(),
			rng.NormFloat64(),
		}
		y[i] = c
	}
	return X, y
}

func TestRandomForestClassifier_Separable(t *testing.T) {
	X, y := blobs(120, 1)
	rf := NewRandomForestClassifier(WithNEstimators(25), WithMaxDepth(4), WithSeed(42))
	if err := rf.Fit(context.Background(), X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	pred, err := PredictAll(rf, X)
	if err != nil {
		t.Fatalf("PredictAll() error = %v", err)
	}
	if acc := Accuracy(y, pred); acc < 0.98 {
		t.Errorf("training accuracy = %v, want >= 0.98", acc)
	}

	p, err := rf.PredictProba(X[0])
	if err != nil {
		t.Fatalf("PredictProba() error = %v", err)
	}
	if math.Abs(p[0]+p[1]-1) > 1e-9 {
		t.Errorf("probabilities sum to %v", p[0]+p[1])
	}
	for i := range rf.Trees {
		if d := rf.Trees[i].Depth(); d > 4 {
			t.Fatalf("tree %d depth = %d, want <= 4", i, d)
		}
	}
}

func TestRandomForestClassifier_DeterministicAcrossWorkers(t *testing.T) {
	X, y := blobs(80, 2)
	a := NewRandomForestClassifier(WithNEstimators(12), WithSeed(7), WithWorkers(1), WithBalancedClassWeight())
	b := NewRandomForestClassifier(WithNEstimators(12), WithSeed(7), WithWorkers(6), WithBalancedClassWeight())
	if err := a.Fit(context.Background(), X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if err := b.Fit(context.Background(), X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if diff := cmp.Diff(a.Trees, b.Trees); diff != "" {
		t.Errorf("trees differ by worker count (-1 +6):\n%s", diff)
	}
}

func TestRandomForestClassifier_Errors(t *testing.T) {
	rf := NewRandomForestClassifier()
	if _, err := rf.Predict([]float64{1}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Predict() before Fit error = %v, want ErrNotFitted", err)
	}
	if err := rf.Fit(context.Background(), nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Fit(empty) error = %v, want ErrEmptyInput", err)
	}
	if err := rf.Fit(context.Background(), [][]float64{{1}, {2}}, []int{0}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Fit(mismatch) error = %v, want ErrShapeMismatch", err)
	}

	X, y := blobs(20, 3)
	if err := rf.Fit(context.Background(), X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if _, err := rf.Predict([]float64{1, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Predict(short row) error = %v, want ErrShapeMismatch", err)
	}
}

func TestRandomForestClassifier_Canceled(t *testing.T) {
	X, y := blobs(40, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rf := NewRandomForestClassifier(WithNEstimators(10))
	if err := rf.Fit(ctx, X, y); !errors.Is(err, context.Canceled) {
		t.Errorf("Fit() error = %v, want context.Canceled", err)
	}
}

func TestRandomForestClassifier_GobRoundTrip(t *testing.T) {
	X, y := blobs(60, 5)
	rf := NewRandomForestClassifier(WithNEstimators(8), WithSeed(1))
	if err := rf.Fit(context.Background(), X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	var decoded RandomForestClassifier
	if err := gob.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	for _, x := range X[:10] {
		want, _ := rf.PredictProba(x)
		got, err := decoded.PredictProba(x)
		if err != nil {
			t.Fatalf("decoded PredictProba() error = %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("decoded model disagrees (-want +got):\n%s", diff)
		}
	}
}

func TestRandomForestRegressor(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	X := make([][]float64, 150)
	y := make([]float64, 150)
	for i := range X {
		a, b := rng.Float64()*10, rng.Float64()*10
		X[i] = []float64{a, b, rng.Float64()}
		y[i] = 2*a + b
	}
	rf := NewRandomForestRegressor(WithNEstimators(30), WithMaxDepth(8), WithSeed(42))
	if err := rf.Fit(context.Background(), X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	pred, err := PredictAllRegressor(rf, X)
	if err != nil {
		t.Fatalf("PredictAllRegressor() error = %v", err)
	}
	if r2 := R2Score(y, pred); r2 < 0.9 {
		t.Errorf("training R2 = %v, want >= 0.9", r2)
	}
	if _, err := NewRandomForestRegressor().Predict(X[0]); !errors.Is(err, ErrNotFitted) {
		t.Errorf("unfitted Predict() error = %v, want ErrNotFitted", err)
	}
}

func TestGradientBoostingClassifier(t *testing.T) {
	X, y := blobs(100, 6)
	gb := NewGradientBoostingClassifier(WithNEstimators(30), WithMaxDepth(2), WithSeed(42))
	if err := gb.Fit(context.Background(), X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	pred, err := PredictAll(gb, X)
	if err != nil {
		t.Fatalf("PredictAll() error = %v", err)
	}
	if acc := Accuracy(y, pred); acc < 0.98 {
		t.Errorf("training accuracy = %v, want >= 0.98", acc)
	}
	p, _ := gb.PredictProba(X[1])
	if p[1] < 0.5 {
		t.Errorf("P(class 1) for a class-1 sample = %v", p[1])
	}
}

func TestGradientBoostingClassifier_RequiresBinary(t *testing.T) {
	tests := []struct {
		name string
		y    []int
	}{
		{"three classes", []int{0, 1, 2, 0}},
		{"single class", []int{1, 1, 1, 1}},
	}
	X := [][]float64{{0}, {1}, {2}, {3}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewGradientBoostingClassifier().Fit(context.Background(), X, tt.y)
			if !errors.Is(err, ErrNotBinary) {
				t.Errorf("Fit() error = %v, want ErrNotBinary", err)
			}
		})
	}
}

func TestStandardScaler(t *testing.T) {
	X := [][]float64{{1, 5}, {3, 5}, {5, 5}}
	var s StandardScaler
	out, err := s.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	std := math.Sqrt(8.0 / 3.0)
	want := [][]float64{{-2 / std, 0}, {0, 0}, {2 / std, 0}}
	if diff := cmp.Diff(want, out, cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-12 })); diff != "" {
		t.Errorf("FitTransform() mismatch (-want +got):\n%s", diff)
	}
	if s.Scale[1] != 1 {
		t.Errorf("constant column scale = %v, want 1", s.Scale[1])
	}

	var unfitted StandardScaler
	if _, err := unfitted.TransformRow([]float64{1}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("TransformRow() error = %v, want ErrNotFitted", err)
	}
}

func TestLabelEncoder(t *testing.T) {
	var e LabelEncoder
	e.Fit([]string{"UAV_Drone", "Fighter_Aircraft", "SAM_System", "Fighter_Aircraft"})
	if diff := cmp.Diff([]string{"Fighter_Aircraft", "SAM_System", "UAV_Drone"}, e.Classes); diff != "" {
		t.Errorf("Classes mismatch (-want +got):\n%s", diff)
	}
	if i, err := e.Transform("SAM_System"); err != nil || i != 1 {
		t.Errorf("Transform(SAM_System) = %d, %v", i, err)
	}
	if _, err := e.Transform("Balloon"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Transform(Balloon) error = %v, want ErrUnknownLabel", err)
	}
	if s, err := e.Inverse(2); err != nil || s != "UAV_Drone" {
		t.Errorf("Inverse(2) = %q, %v", s, err)
	}
	if _, err := e.Inverse(3); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Inverse(3) error = %v, want ErrUnknownLabel", err)
	}
}

func TestTrainTestSplit(t *testing.T) {
	y := make([]int, 100)
	for i := range y {
		if i < 30 {
			y[i] = 1
		}
	}

	s, err := TrainTestSplit(len(y), 0.2, y, 42)
	if err != nil {
		t.Fatalf("TrainTestSplit() error = %v", err)
	}
	if len(s.Test) != 20 || len(s.Train) != 80 {
		t.Fatalf("sizes = %d/%d, want 80/20", len(s.Train), len(s.Test))
	}
	pos := 0
	for _, i := range s.Test {
		pos += y[i]
	}
	if pos != 6 {
		t.Errorf("positive test rows = %d, want 6", pos)
	}

	seen := map[int]bool{}
	for _, i := range append(append([]int{}, s.Train...), s.Test...) {
		if seen[i] {
			t.Fatalf("index %d appears twice", i)
		}
		seen[i] = true
	}

	again, _ := TrainTestSplit(len(y), 0.2, y, 42)
	if diff := cmp.Diff(s, again); diff != "" {
		t.Errorf("split not deterministic:\n%s", diff)
	}

	plain, err := TrainTestSplit(10, 0.25, nil, 42)
	if err != nil {
		t.Fatalf("TrainTestSplit(plain) error = %v", err)
	}
	if len(plain.Test) != 3 {
		t.Errorf("plain test size = %d, want ceil(2.5)=3", len(plain.Test))
	}

	if _, err := TrainTestSplit(10, 1.5, nil, 1); err == nil {
		t.Error("expected error for test size >= 1")
	}
}

func TestStratifiedKFold(t *testing.T) {
	y := []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}
	folds, err := StratifiedKFold(y, 5, 42)
	if err != nil {
		t.Fatalf("StratifiedKFold() error = %v", err)
	}
	count := map[int]int{}
	for _, f := range folds {
		if len(f.Test) != 2 || len(f.Train) != 8 {
			t.Errorf("fold sizes = %d/%d, want 8/2", len(f.Train), len(f.Test))
		}
		if y[f.Test[0]] == y[f.Test[1]] {
			t.Errorf("fold test %v not stratified", f.Test)
		}
		for _, i := range f.Test {
			count[i]++
		}
	}
	for i := range y {
		if count[i] != 1 {
			t.Errorf("index %d held out %d times", i, count[i])
		}
	}

	if _, err := StratifiedKFold(y, 1, 0); err == nil {
		t.Error("expected error for k=1")
	}
}

func TestCrossValScore(t *testing.T) {
	X, y := blobs(60, 8)
	folds, err := StratifiedKFold(y, 3, 42)
	if err != nil {
		t.Fatalf("StratifiedKFold() error = %v", err)
	}
	scores, err := CrossValScore(context.Background(), func() Classifier {
		return NewRandomForestClassifier(WithNEstimators(10), WithSeed(1))
	}, X, y, folds)
	if err != nil {
		t.Fatalf("CrossValScore() error = %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("len(scores) = %d, want 3", len(scores))
	}
	mean, _ := MeanStd(scores)
	if mean < 0.95 {
		t.Errorf("mean CV accuracy = %v, want >= 0.95", mean)
	}
}

func TestMetrics(t *testing.T) {
	if got := Accuracy([]int{1, 0, 1, 1}, []int{1, 1, 1, 0}); got != 0.5 {
		t.Errorf("Accuracy() = %v, want 0.5", got)
	}
	if got := MeanAbsoluteError([]float64{1, 2, 3}, []float64{2, 2, 1}); got != 1 {
		t.Errorf("MeanAbsoluteError() = %v, want 1", got)
	}
	if got := R2Score([]float64{1, 2, 3}, []float64{1, 2, 3}); got != 1 {
		t.Errorf("R2Score(perfect) = %v, want 1", got)
	}
	if got := R2Score([]float64{1, 2, 3}, []float64{2, 2, 2}); got != 0 {
		t.Errorf("R2Score(mean) = %v, want 0", got)
	}
	mean, std := MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 || std != 2 {
		t.Errorf("MeanStd() = %v, %v, want 5, 2", mean, std)
	}
}

func TestBundleValidate(t *testing.T) {
	var b *Bundle
	if err := b.Validate(); !errors.Is(err, ErrIncompleteBundle) {
		t.Errorf("nil bundle error = %v", err)
	}
	if err := (&Bundle{}).Validate(); !errors.Is(err, ErrIncompleteBundle) {
		t.Errorf("empty bundle error = %v", err)
	}
}
