// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package features derives model inputs from the reference tables.
//
// It is shared by the offline generator and the online server so both build
// identical vectors:
//
//   - Summarize aggregates one country's systems into a ForceSummary
//   - ZoneCode encodes a risk zone (Red=3, Yellow=2, Green=1)
//   - ComputeRatios derives the attacker/defender advantage ratios
//   - WarVector and SystemVector lay features out in model column order
//
// The only difference between offline and online use is the denominator
// floor applied to ratios, selected with Mode.
package features
