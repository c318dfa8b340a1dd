// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package training fits the three prediction models and persists them as one
// versioned bundle.
//
// Model 1 classifies a weapon system as Modern or Traditional from its 12
// system features. A random forest and a gradient-boosted ensemble are both
// trained and the more accurate one is kept.
//
// Model 2 classifies a synthetic conflict scenario into one of the three
// outcomes from its 26 war features.
//
// Model 3 regresses the attacker win probability from the same 26 features,
// scaled with model 2's scaler.
//
// Model 1 and models 2/3 train concurrently. All randomness is seeded, so a
// fixed dataset and seed produce the same bundle.
package training
