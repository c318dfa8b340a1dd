// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package models defines the data structures shared across AirDefence.

Model Categories:

1. Reference rows (one per CSV line):
  - Country: a country profile with its risk Zone
  - System: an air defence platform
  - Scenario: a synthesized, labelled conflict

2. Derived values:
  - ForceSummary: per-country inventory aggregates
  - SideFeatures, Ratios: war feature inputs

3. Prediction results:
  - ClassifyResult, WarResult
  - PredictionRecord: one served prediction, as published on the event bus

4. API views:
  - CountryList, CountryDetail, SystemList, CompareResult, MapZones,
    CountryInsights, Overview, PredictionHistory

JSON field names are the wire format of the HTTP API and must not change.
*/
package models
