// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package ml

import "runtime"

// ClassWeightBalanced weights classes inversely to their frequency.
const ClassWeightBalanced = "balanced"

// Params holds hyperparameters for every model. Each constructor fills in
// its own defaults before applying options.
type Params struct {
	NEstimators     int
	MaxDepth        int // 0 means unlimited
	MinSamplesSplit int
	MaxFeatures     int // 0 means the model's default
	ClassWeight     string
	LearningRate    float64
	Seed            uint64
	Workers         int
}

// Option configures model hyperparameters.
type Option func(*Params)

// WithNEstimators sets the number of trees or boosting stages.
func WithNEstimators(n int) Option {
	return func(p *Params) {
		p.NEstimators = n
	}
}

// WithMaxDepth limits tree depth.
func WithMaxDepth(d int) Option {
	return func(p *Params) {
		p.MaxDepth = d
	}
}

// WithMinSamplesSplit sets the minimum node size eligible for splitting.
func WithMinSamplesSplit(n int) Option {
	return func(p *Params) {
		p.MinSamplesSplit = n
	}
}

// WithMaxFeatures sets how many features each split considers.
func WithMaxFeatures(n int) Option {
	return func(p *Params) {
		p.MaxFeatures = n
	}
}

// WithBalancedClassWeight enables balanced class weights.
func WithBalancedClassWeight() Option {
	return func(p *Params) {
		p.ClassWeight = ClassWeightBalanced
	}
}

// WithLearningRate sets the boosting shrinkage.
func WithLearningRate(lr float64) Option {
	return func(p *Params) {
		p.LearningRate = lr
	}
}

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(p *Params) {
		p.Seed = seed
	}
}

// WithWorkers bounds concurrent tree training.
func WithWorkers(n int) Option {
	return func(p *Params) {
		p.Workers = n
	}
}

func newParams(defaults Params, opts []Option) Params {
	p := defaults
	for _, opt := range opts {
		opt(&p)
	}
	if p.NEstimators <= 0 {
		p.NEstimators = defaults.NEstimators
	}
	if p.MinSamplesSplit < 2 {
		p.MinSamplesSplit = 2
	}
	if p.Workers <= 0 {
		p.Workers = runtime.GOMAXPROCS(0)
	}
	return p
}
