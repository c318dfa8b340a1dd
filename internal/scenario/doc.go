// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package scenario synthesizes labelled conflict scenarios for the war models.
//
// Each iteration draws an ordered (attacker, defender) pair, scores the
// attacker's advantage from the generation-mode ratios, perturbs it with
// Gaussian noise and buckets the result:
//
//	noisy > 62          Attacker_Wins   win prob in [0.55, 0.95]
//	noisy < 38          Defender_Wins   win prob in [0.05, 0.45]
//	otherwise           Stalemate       win prob in [0.40, 0.60]
//
// Output is a pure function of the seed and the input tables.
package scenario
