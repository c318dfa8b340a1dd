// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package dataset holds the embedded reference data the pipeline starts from.
//
// The seed is two YAML documents compiled into the binary:
//
//	seed/countries.yaml  14 country profiles, in generation order
//	seed/systems.yaml    current systems followed by legacy systems
//
// LoadSeed decodes both. Enrich then assigns system IDs and the derived
// columns (fuel_efficiency, export_available) from a seeded source, so the
// same seed always produces the same tables.
package dataset
