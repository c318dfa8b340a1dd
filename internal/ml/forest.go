// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// Algorithm names reported in model metadata.
const (
	NameRandomForestClassifier     = "RandomForestClassifier"
	NameRandomForestRegressor      = "RandomForestRegressor"
	NameGradientBoostingClassifier = "GradientBoostingClassifier"
)

// RandomForestClassifier averages the class probabilities of bootstrapped
// Gini trees.
type RandomForestClassifier struct {
	baseModel

	Params    Params
	Trees     []Tree
	NClasses  int
	NFeatures int
}

// NewRandomForestClassifier returns an unfitted forest. Defaults: 100 trees,
// unlimited depth, sqrt(n_features) per split.
func NewRandomForestClassifier(opts ...Option) *RandomForestClassifier {
	return &RandomForestClassifier{
		Params: newParams(Params{NEstimators: 100, MinSamplesSplit: 2}, opts),
	}
}

// Name implements Classifier.
func (m *RandomForestClassifier) Name() string {
	return NameRandomForestClassifier
}

// Fit trains the forest on X and class indices y.
func (m *RandomForestClassifier) Fit(ctx context.Context, X [][]float64, y []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	width, err := checkShape(X, len(y))
	if err != nil {
		return err
	}
	nClasses := 0
	for _, c := range y {
		if c < 0 {
			return fmt.Errorf("%w: negative class %d", ErrShapeMismatch, c)
		}
		nClasses = max(nClasses, c+1)
	}

	classWeight := make([]float64, nClasses)
	for c := range classWeight {
		classWeight[c] = 1
	}
	if m.Params.ClassWeight == ClassWeightBalanced {
		classWeight = balancedWeights(y, nClasses)
	}

	maxFeatures := m.Params.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = max(1, int(math.Sqrt(float64(width))))
	}

	trees, err := growForest(ctx, m.Params, len(y), func(rng *rand.Rand, counts []int) Tree {
		w := make([]float64, len(y))
		idx := make([]int, 0, len(y))
		for i, c := range counts {
			if c > 0 {
				w[i] = float64(c) * classWeight[y[i]]
				idx = append(idx, i)
			}
		}
		b := &treeBuilder{
			X:           X,
			yClass:      y,
			w:           w,
			nClasses:    nClasses,
			crit:        criterionGini,
			maxDepth:    m.Params.MaxDepth,
			minSplit:    m.Params.MinSamplesSplit,
			maxFeatures: maxFeatures,
			rng:         rng,
		}
		return b.build(idx)
	})
	if err != nil {
		return err
	}

	m.Trees = trees
	m.NClasses = nClasses
	m.NFeatures = width
	m.markFitted()
	return nil
}

// PredictProba returns per-class probabilities averaged across trees.
func (m *RandomForestClassifier) PredictProba(x []float64) ([]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.Trees) == 0 {
		return nil, ErrNotFitted
	}
	if len(x) != m.NFeatures {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrShapeMismatch, len(x), m.NFeatures)
	}
	out := make([]float64, m.NClasses)
	for i := range m.Trees {
		for c, p := range m.Trees[i].Predict(x) {
			out[c] += p
		}
	}
	n := float64(len(m.Trees))
	for c := range out {
		out[c] /= n
	}
	return out, nil
}

// Predict returns the most probable class.
func (m *RandomForestClassifier) Predict(x []float64) (int, error) {
	p, err := m.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return argmax(p), nil
}

// RandomForestRegressor averages bootstrapped MSE trees.
type RandomForestRegressor struct {
	baseModel

	Params    Params
	Trees     []Tree
	NFeatures int
}

// NewRandomForestRegressor returns an unfitted regressor. Defaults: 100
// trees, unlimited depth, all features per split.
func NewRandomForestRegressor(opts ...Option) *RandomForestRegressor {
	return &RandomForestRegressor{
		Params: newParams(Params{NEstimators: 100, MinSamplesSplit: 2}, opts),
	}
}

// Name implements Regressor.
func (m *RandomForestRegressor) Name() string {
	return NameRandomForestRegressor
}

// Fit trains the forest on X and targets y.
func (m *RandomForestRegressor) Fit(ctx context.Context, X [][]float64, y []float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	width, err := checkShape(X, len(y))
	if err != nil {
		return err
	}

	trees, err := growForest(ctx, m.Params, len(y), func(rng *rand.Rand, counts []int) Tree {
		w := make([]float64, len(y))
		idx := make([]int, 0, len(y))
		for i, c := range counts {
			if c > 0 {
				w[i] = float64(c)
				idx = append(idx, i)
			}
		}
		b := &treeBuilder{
			X:           X,
			yReg:        y,
			w:           w,
			crit:        criterionMSE,
			maxDepth:    m.Params.MaxDepth,
			minSplit:    m.Params.MinSamplesSplit,
			maxFeatures: m.Params.MaxFeatures,
			rng:         rng,
		}
		return b.build(idx)
	})
	if err != nil {
		return err
	}

	m.Trees = trees
	m.NFeatures = width
	m.markFitted()
	return nil
}

// Predict returns the mean tree prediction.
func (m *RandomForestRegressor) Predict(x []float64) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.Trees) == 0 {
		return 0, ErrNotFitted
	}
	if len(x) != m.NFeatures {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrShapeMismatch, len(x), m.NFeatures)
	}
	var sum float64
	for i := range m.Trees {
		sum += m.Trees[i].Predict(x)[0]
	}
	return sum / float64(len(m.Trees)), nil
}

// growForest draws one seed per tree from the forest seed, then trains the
// trees concurrently with at most p.Workers in flight. grow receives the
// tree's own source and its bootstrap multiplicities.
func growForest(ctx context.Context, p Params, n int, grow func(*rand.Rand, []int) Tree) ([]Tree, error) {
	master := rand.New(rand.NewPCG(p.Seed, 0x5eed))
	seeds := make([]uint64, p.NEstimators)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	trees := make([]Tree, p.NEstimators)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)

	for i := range trees {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seeds[i], uint64(i)))
			counts := make([]int, n)
			for range n {
				counts[rng.IntN(n)]++
			}
			trees[i] = grow(rng, counts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}

// balancedWeights returns n_samples / (n_classes * count) per class.
func balancedWeights(y []int, nClasses int) []float64 {
	counts := make([]int, nClasses)
	for _, c := range y {
		counts[c]++
	}
	present := 0
	for _, c := range counts {
		if c > 0 {
			present++
		}
	}
	w := make([]float64, nClasses)
	for c, n := range counts {
		if n > 0 {
			w[c] = float64(len(y)) / (float64(present) * float64(n))
		}
	}
	return w
}
