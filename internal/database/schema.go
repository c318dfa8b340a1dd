// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/airdefence/internal/features"
)

// Table names.
const (
	TableCountries = "countries"
	TableSystems   = "systems"
	TableScenarios = "scenarios"
)

// CSV file names inside a data directory.
const (
	CountriesFile = "countries_profiles.csv"
	SystemsFile   = "air_systems_enhanced.csv"
	ScenariosFile = "conflict_scenarios.csv"
)

type column struct {
	name    string
	sqlType string
}

// table describes one reference table. Columns are listed in CSV order.
type table struct {
	name    string
	file    string
	columns []column
}

var countriesTable = table{
	name: TableCountries,
	file: CountriesFile,
	columns: []column{
		{"country", "VARCHAR"},
		{"iso_code", "VARCHAR"},
		{"risk_zone", "VARCHAR"},
		{"risk_score", "INTEGER"},
		{"flag_url", "VARCHAR"},
		{"gdp_billion_usd", "DOUBLE"},
		{"military_budget_billion_usd", "DOUBLE"},
		{"active_personnel", "BIGINT"},
		{"combat_aircraft_count", "INTEGER"},
		{"relation_with_india", "VARCHAR"},
		{"key_conflicts", "VARCHAR"},
		{"geopolitical_stance", "VARCHAR"},
		{"nuclear_capable", "BOOLEAN"},
		{"alliance", "VARCHAR"},
	},
}

var systemsTable = table{
	name: TableSystems,
	file: SystemsFile,
	columns: []column{
		{"country", "VARCHAR"},
		{"system_name", "VARCHAR"},
		{"system_type", "VARCHAR"},
		{"classification", "VARCHAR"},
		{"year_inducted", "INTEGER"},
		{"tech_generation", "DOUBLE"},
		{"max_speed_kmph", "DOUBLE"},
		{"range_km", "DOUBLE"},
		{"max_altitude_m", "DOUBLE"},
		{"stealth_rating", "DOUBLE"},
		{"ew_capability", "DOUBLE"},
		{"payload_kg", "DOUBLE"},
		{"reliability", "DOUBLE"},
		{"cost_million_usd", "DOUBLE"},
		{"threat_level", "DOUBLE"},
		{"operational_status", "VARCHAR"},
		{"combat_proven", "BOOLEAN"},
		{"description", "VARCHAR"},
		{"image_url", "VARCHAR"},
		{"wikipedia_url", "VARCHAR"},
		{"fuel_efficiency", "DOUBLE"},
		{"export_available", "VARCHAR"},
		{"system_id", "VARCHAR"},
	},
}

// integerScenarioFeatures are the war features stored as counts.
var integerScenarioFeatures = map[string]bool{
	"fighter_count": true,
	"sam_count":     true,
	"uav_count":     true,
	"zone":          true,
}

var scenariosTable = func() table {
	cols := []column{
		{"scenario_id", "VARCHAR"},
		{"attacker", "VARCHAR"},
		{"defender", "VARCHAR"},
	}
	for _, name := range features.WarFeatureNames {
		typ := "DOUBLE"
		suffix := strings.TrimPrefix(strings.TrimPrefix(name, "att_"), "dfn_")
		if integerScenarioFeatures[suffix] {
			typ = "INTEGER"
		}
		cols = append(cols, column{name, typ})
	}
	cols = append(cols,
		column{"outcome", "VARCHAR"},
		column{"attacker_win_probability", "DOUBLE"},
	)
	return table{name: TableScenarios, file: ScenariosFile, columns: cols}
}()

var allTables = []table{countriesTable, systemsTable, scenariosTable}

func (t table) columnList() string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return strings.Join(names, ", ")
}

func (t table) createSQL() string {
	defs := make([]string, len(t.columns))
	for i, c := range t.columns {
		defs[i] = c.name + " " + c.sqlType
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.name, strings.Join(defs, ", "))
}

func (t table) insertSQL() string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, t.columnList(), placeholders)
}

// csvSelectList selects every column from read_csv, mapping empty text
// fields (read as NULL) back to empty strings.
func (t table) csvSelectList() string {
	exprs := make([]string, len(t.columns))
	for i, c := range t.columns {
		if c.sqlType == "VARCHAR" {
			exprs[i] = fmt.Sprintf("coalesce(%s, '') AS %s", c.name, c.name)
			continue
		}
		exprs[i] = c.name
	}
	return strings.Join(exprs, ", ")
}

// csvColumns renders the read_csv columns struct so that types never
// depend on sniffing.
func (t table) csvColumns() string {
	defs := make([]string, len(t.columns))
	for i, c := range t.columns {
		defs[i] = fmt.Sprintf("'%s': '%s'", c.name, c.sqlType)
	}
	return "{" + strings.Join(defs, ", ") + "}"
}

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the reference tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, t := range allTables {
		if _, err := db.conn.ExecContext(ctx, t.createSQL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.name, err)
		}
	}
	return nil
}

// sqlString quotes s as a SQL string literal.
func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
