// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package database holds the reference tables in DuckDB.

Three tables back the whole API:

  - countries: one profile per country (countries_profiles.csv)
  - systems: every air defence platform (air_systems_enhanced.csv)
  - scenarios: labelled synthetic conflicts (conflict_scenarios.csv)

The tables are filled once, either from generated rows (ReplaceCountries,
ReplaceSystems, ReplaceScenarios) or from a CSV directory (LoadCSV), and are
never mutated by requests. Column order matches the CSV files, so ExportCSV
and LoadCSV round-trip through DuckDB's COPY and read_csv.

Name matching is case-insensitive. "Contains" filters are literal substring
matches, never patterns.

Usage:

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	if err := db.LoadCSV(ctx, cfg.Data.Dir); err != nil {
	    return err
	}
	india, err := db.CountryByName(ctx, "india")

Lookups that find nothing return ErrNotFound. A partial system name that
matches several systems returns an *AmbiguousError listing the candidates.

Every query is timed into the duckdb_query_duration_seconds histogram and
table sizes are published in dataset_rows.
*/
package database
