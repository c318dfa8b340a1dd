// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/airdefence/internal/models"
)

// topThreatCount is the size of the dashboard threat leaderboard.
const topThreatCount = 5

// Overview aggregates the landing dashboard figures.
func (db *DB) Overview(ctx context.Context) (overview *models.Overview, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("aggregate", "all", time.Now(), &err)

	overview = &models.Overview{}
	err = db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM countries),
			(SELECT COUNT(*) FROM systems),
			(SELECT COUNT(*) FROM systems WHERE classification = $1),
			(SELECT COUNT(*) FROM systems WHERE classification = $2),
			(SELECT COUNT(*) FROM scenarios)`,
		models.ClassModern, models.ClassTraditional,
	).Scan(
		&overview.TotalCountries,
		&overview.TotalSystems,
		&overview.ModernSystems,
		&overview.TraditionalSystems,
		&overview.TotalScenarios,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count reference tables: %w", err)
	}

	if overview.RiskZoneCounts, err = db.valueCounts(ctx, TableCountries, "risk_zone"); err != nil {
		return nil, err
	}
	if overview.SystemTypeCounts, err = db.valueCounts(ctx, TableSystems, "system_type"); err != nil {
		return nil, err
	}

	top, err := db.TopThreatSystems(ctx, topThreatCount)
	if err != nil {
		return nil, err
	}
	overview.TopThreatSystems = make([]models.TopThreatSystem, len(top))
	for i := range top {
		overview.TopThreatSystems[i] = models.TopThreatSystem{
			SystemName:     top[i].SystemName,
			Country:        top[i].Country,
			ThreatLevel:    top[i].ThreatLevel,
			Classification: top[i].Classification,
			ImageURL:       top[i].ImageURL,
		}
	}

	overview.CountriesList = make([]string, 0, overview.TotalCountries)
	err = db.queryAndScan(ctx, "SELECT country FROM countries ORDER BY country", nil, func(rows *sql.Rows) error {
		var name string
		if scanErr := rows.Scan(&name); scanErr != nil {
			return scanErr
		}
		overview.CountriesList = append(overview.CountriesList, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return overview, nil
}

// valueCounts counts rows per distinct value of column. table and column
// are package constants, never request input.
func (db *DB) valueCounts(ctx context.Context, table, column string) (map[string]int, error) {
	counts := make(map[string]int)
	query := fmt.Sprintf("SELECT %s, COUNT(*) FROM %s GROUP BY %s", column, table, column)
	err := db.queryAndScan(ctx, query, nil, func(rows *sql.Rows) error {
		var value string
		var n int
		if scanErr := rows.Scan(&value, &n); scanErr != nil {
			return scanErr
		}
		counts[value] = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count %s.%s: %w", table, column, err)
	}
	return counts, nil
}
