// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package ml implements the small set of supervised learners the trainer
// needs: tree ensembles for classification and regression, preprocessing,
// and model-selection helpers.
//
// # Models
//
//   - RandomForestClassifier: bootstrap + sqrt feature sampling, optional
//     balanced class weights, probabilities averaged over trees
//   - RandomForestRegressor: bootstrap, all features, mean of tree outputs
//   - GradientBoostingClassifier: binary log-loss boosting with Newton leaf
//     updates on shallow regression trees
//
// All models are configured with functional options:
//
//	rf := ml.NewRandomForestClassifier(
//	    ml.WithNEstimators(200),
//	    ml.WithMaxDepth(8),
//	    ml.WithBalancedClassWeight(),
//	    ml.WithSeed(42),
//	)
//	if err := rf.Fit(ctx, X, y); err != nil { ... }
//	proba, err := rf.PredictProba(x)
//
// # Determinism
//
// Every random choice flows from the configured seed. Forest trees draw
// their own seeds up front, so results do not depend on how many workers
// train them.
//
// # Thread Safety
//
// Fit takes an exclusive lock; predictions take a shared lock. Fitted models
// hold only exported state and round-trip through encoding/gob.
package ml
