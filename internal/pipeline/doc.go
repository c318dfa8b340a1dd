// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package pipeline runs the offline dataset and training steps.

Generate builds the three reference tables from the embedded seed:

 1. decode the seed YAML (dataset.LoadSeed)
 2. add the derived system columns (dataset.Enrich)
 3. load countries and systems into DuckDB
 4. synthesize conflict scenarios (scenario.Synthesizer)
 5. export countries_profiles.csv, air_systems_enhanced.csv and
    conflict_scenarios.csv with DuckDB COPY

EnsureData is what the server calls at startup: it loads the CSVs when
they exist and falls back to Generate when they do not.

Train wraps training.Trainer so the CLI and server share one code path.

Both cmd/pipeline and cmd/server call into this package; neither re-implements
a step.
*/
package pipeline
