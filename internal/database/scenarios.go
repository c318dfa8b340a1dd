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

	"github.com/tomtom215/airdefence/internal/features"
	"github.com/tomtom215/airdefence/internal/models"
)

// defaultWinProbability is reported for countries that never won as
// attacker.
const defaultWinProbability = 0.5

// Scenarios returns every scenario in dataset order.
func (db *DB) Scenarios(ctx context.Context) (scenarios []models.Scenario, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", TableScenarios, time.Now(), &err)

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", scenariosTable.columnList(), TableScenarios)
	scenarios = make([]models.Scenario, 0, 512)
	err = db.queryAndScan(ctx, query, nil, func(rows *sql.Rows) error {
		sc, scanErr := scanScenario(rows)
		if scanErr != nil {
			return scanErr
		}
		scenarios = append(scenarios, sc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query scenarios: %w", err)
	}
	return scenarios, nil
}

// ScenarioStats counts the comparison view of a country's simulated
// conflicts. country must be the canonical name.
func (db *DB) ScenarioStats(ctx context.Context, country string) (stats models.ScenarioStats, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("aggregate", TableScenarios, time.Now(), &err)

	err = db.conn.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE attacker = $1 AND outcome = $2),
			COUNT(*) FILTER (WHERE defender = $1 AND outcome = $2),
			COUNT(*) FILTER (WHERE (attacker = $1 OR defender = $1) AND outcome = $3)
		FROM scenarios`,
		country, models.OutcomeAttackerWins, models.OutcomeStalemate,
	).Scan(&stats.WinsAsAttacker, &stats.LossesAsDefender, &stats.Stalemates)
	if err != nil {
		return models.ScenarioStats{}, fmt.Errorf("failed to aggregate scenario stats: %w", err)
	}
	return stats, nil
}

// ScenarioHistory computes the insights view of a country's simulated
// conflicts. A stalemate involves two countries, so half of them count
// toward the total.
func (db *DB) ScenarioHistory(ctx context.Context, country string) (history models.ScenarioHistory, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("aggregate", TableScenarios, time.Now(), &err)

	var avgAsAttacker sql.NullFloat64
	err = db.conn.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE attacker = $1 AND outcome = $2),
			COUNT(*) FILTER (WHERE defender = $1 AND outcome = $3),
			COUNT(*) FILTER (WHERE (attacker = $1 OR defender = $1) AND outcome = $4),
			AVG(attacker_win_probability) FILTER (WHERE attacker = $1)
		FROM scenarios`,
		country, models.OutcomeAttackerWins, models.OutcomeDefenderWins, models.OutcomeStalemate,
	).Scan(&history.WinsAsAttacker, &history.WinsAsDefender, &history.Stalemates, &avgAsAttacker)
	if err != nil {
		return models.ScenarioHistory{}, fmt.Errorf("failed to aggregate scenario history: %w", err)
	}

	history.TotalSimulated = history.WinsAsAttacker + history.WinsAsDefender + history.Stalemates/2
	history.AvgWinProbabilityWhenAttacking = defaultWinProbability
	if history.WinsAsAttacker > 0 && avgAsAttacker.Valid {
		history.AvgWinProbabilityWhenAttacking = features.Round(avgAsAttacker.Float64, 3)
	}
	return history, nil
}
