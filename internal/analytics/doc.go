// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package analytics derives the dashboard views served by the API from rows
already loaded out of the database.

Every function here is pure: callers fetch countries, systems and scenario
counts, and the builders turn them into chart-ready structures.

Views:

  - CountryItem, CountryDetail: country listings and profiles
  - CompareSide, Compare: side-by-side comparison with radar, metric and
    type-count charts
  - MapZones: the zone map relative to models.ReferenceCountry
  - Insights: per-country insights with strength score and top systems

Derived values:

  - RadarChart normalizes six force metrics to a 0-100 scale
  - StrengthScore weighs threat, modernity, technology and budget
  - TopSystems returns the highest-threat systems, dataset order on ties

Force summaries are recomputed on every call; nothing here caches.
*/
package analytics
