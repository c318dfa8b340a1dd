// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrNotBinary is returned when boosting is fit on other than two classes.
var ErrNotBinary = errors.New("gradient boosting supports exactly two classes")

// GradientBoostingClassifier is a binary log-loss boosted tree ensemble.
// Class 1 is the positive class.
type GradientBoostingClassifier struct {
	baseModel

	Params    Params
	Init      float64
	Trees     []Tree
	NFeatures int
}

// NewGradientBoostingClassifier returns an unfitted model. Defaults: 100
// stages, depth 3, learning rate 0.1.
func NewGradientBoostingClassifier(opts ...Option) *GradientBoostingClassifier {
	return &GradientBoostingClassifier{
		Params: newParams(Params{NEstimators: 100, MaxDepth: 3, MinSamplesSplit: 2, LearningRate: 0.1}, opts),
	}
}

// Name implements Classifier.
func (m *GradientBoostingClassifier) Name() string {
	return NameGradientBoostingClassifier
}

// Fit trains stages sequentially; each stage fits a regression tree to the
// log-loss residuals and replaces its leaf values with a Newton step.
func (m *GradientBoostingClassifier) Fit(ctx context.Context, X [][]float64, y []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	width, err := checkShape(X, len(y))
	if err != nil {
		return err
	}
	var pos int
	for _, c := range y {
		switch c {
		case 0:
		case 1:
			pos++
		default:
			return fmt.Errorf("%w: class %d", ErrNotBinary, c)
		}
	}
	if pos == 0 || pos == len(y) {
		return ErrNotBinary
	}

	n := len(y)
	prior := float64(pos) / float64(n)
	init := math.Log(prior / (1 - prior))
	lr := m.Params.LearningRate

	raw := make([]float64, n)
	for i := range raw {
		raw[i] = init
	}
	residual := make([]float64, n)
	w := make([]float64, n)
	idx := make([]int, n)
	for i := range idx {
		w[i] = 1
		idx[i] = i
	}

	rng := rand.New(rand.NewPCG(m.Params.Seed, 0xb005))
	trees := make([]Tree, 0, m.Params.NEstimators)

	for stage := 0; stage < m.Params.NEstimators; stage++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		prob := make([]float64, n)
		for i := range residual {
			prob[i] = sigmoid(raw[i])
			residual[i] = float64(y[i]) - prob[i]
		}

		b := &treeBuilder{
			X:           X,
			yReg:        residual,
			w:           w,
			crit:        criterionMSE,
			maxDepth:    m.Params.MaxDepth,
			minSplit:    m.Params.MinSamplesSplit,
			maxFeatures: m.Params.MaxFeatures,
			rng:         rng,
		}
		tree := b.build(idx)

		num := make([]float64, len(tree.Nodes))
		den := make([]float64, len(tree.Nodes))
		leafOf := make([]int, n)
		for i := range X {
			leaf := tree.Leaf(X[i])
			leafOf[i] = leaf
			num[leaf] += residual[i]
			den[leaf] += prob[i] * (1 - prob[i])
		}
		for j := range tree.Nodes {
			if !tree.Nodes[j].IsLeaf() {
				continue
			}
			v := 0.0
			if math.Abs(den[j]) > 1e-150 {
				v = num[j] / den[j]
			}
			tree.Nodes[j].Value = []float64{v}
		}
		for i := range raw {
			raw[i] += lr * tree.Nodes[leafOf[i]].Value[0]
		}
		trees = append(trees, tree)
	}

	m.Init = init
	m.Trees = trees
	m.NFeatures = width
	m.markFitted()
	return nil
}

// PredictProba returns [P(class 0), P(class 1)].
func (m *GradientBoostingClassifier) PredictProba(x []float64) ([]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.Trees) == 0 {
		return nil, ErrNotFitted
	}
	if len(x) != m.NFeatures {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrShapeMismatch, len(x), m.NFeatures)
	}
	raw := m.Init
	for i := range m.Trees {
		raw += m.Params.LearningRate * m.Trees[i].Predict(x)[0]
	}
	p := sigmoid(raw)
	return []float64{1 - p, p}, nil
}

// Predict returns the more probable class.
func (m *GradientBoostingClassifier) Predict(x []float64) (int, error) {
	p, err := m.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return argmax(p), nil
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}
