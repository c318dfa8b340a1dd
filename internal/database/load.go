// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tomtom215/airdefence/internal/logging"
	"github.com/tomtom215/airdefence/internal/metrics"
	"github.com/tomtom215/airdefence/internal/models"
)

// ReplaceCountries swaps the countries table for the given rows.
func (db *DB) ReplaceCountries(ctx context.Context, countries []models.Country) error {
	return db.replaceRows(ctx, countriesTable, len(countries), func(i int) []interface{} {
		return countryValues(&countries[i])
	})
}

// ReplaceSystems swaps the systems table for the given rows.
func (db *DB) ReplaceSystems(ctx context.Context, systems []models.System) error {
	return db.replaceRows(ctx, systemsTable, len(systems), func(i int) []interface{} {
		return systemValues(&systems[i])
	})
}

// ReplaceScenarios swaps the scenarios table for the given rows.
func (db *DB) ReplaceScenarios(ctx context.Context, scenarios []models.Scenario) error {
	return db.replaceRows(ctx, scenariosTable, len(scenarios), func(i int) []interface{} {
		return scenarioValues(&scenarios[i])
	})
}

// replaceRows deletes every row of t and inserts n new ones in a single
// transaction, preserving the given order.
func (db *DB) replaceRows(ctx context.Context, t table, n int, values func(int) []interface{}) (err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("replace", t.name, time.Now(), &err)

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM "+t.name); err != nil {
		return fmt.Errorf("clear %s: %w", t.name, err)
	}

	stmt, err := tx.PrepareContext(ctx, t.insertSQL())
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", t.name, err)
	}
	defer closeQuietly(stmt)

	for i := 0; i < n; i++ {
		if _, err = stmt.ExecContext(ctx, values(i)...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", t.name, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", t.name, err)
	}
	metrics.DatasetRows.WithLabelValues(t.name).Set(float64(n))
	return nil
}

// LoadCSV replaces all three tables with the CSV files in dir. Either every
// table is replaced or none is. A missing file yields ErrDatasetMissing.
func (db *DB) LoadCSV(ctx context.Context, dir string) (err error) {
	for _, t := range allTables {
		path := filepath.Join(dir, t.file)
		if _, statErr := os.Stat(path); statErr != nil {
			if errors.Is(statErr, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrDatasetMissing, path)
			}
			return fmt.Errorf("stat %s: %w", path, statErr)
		}
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("load_csv", "all", time.Now(), &err)

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, t := range allTables {
		if err = loadTableCSV(ctx, tx, t, filepath.Join(dir, t.file)); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit csv load: %w", err)
	}

	counts, err := db.RowCounts(ctx)
	if err != nil {
		return err
	}
	logging.Info().
		Str("dir", dir).
		Int("countries", counts[TableCountries]).
		Int("systems", counts[TableSystems]).
		Int("scenarios", counts[TableScenarios]).
		Msg("Reference tables loaded from CSV")
	return nil
}

func loadTableCSV(ctx context.Context, tx *sql.Tx, t table, path string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+t.name); err != nil {
		return fmt.Errorf("clear %s: %w", t.name, err)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT %s FROM read_csv(%s, header = true, columns = %s)",
		t.name, t.columnList(), t.csvSelectList(), sqlString(path), t.csvColumns(),
	)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("load %s from %s: %w", t.name, path, err)
	}
	return nil
}

// ExportCSV writes all three tables to dir in insertion order.
func (db *DB) ExportCSV(ctx context.Context, dir string) (err error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("export_csv", "all", time.Now(), &err)

	for _, t := range allTables {
		path := filepath.Join(dir, t.file)
		query := fmt.Sprintf(
			"COPY (SELECT %s FROM %s ORDER BY rowid) TO %s (FORMAT CSV, HEADER)",
			t.columnList(), t.name, sqlString(path),
		)
		if _, err = db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("export %s: %w", t.name, err)
		}
	}
	return nil
}

// RowCounts returns the number of rows per table and publishes them as
// dataset_rows.
func (db *DB) RowCounts(ctx context.Context) (map[string]int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	counts := make(map[string]int, len(allTables))
	for _, t := range allTables {
		var n int
		if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.name).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", t.name, err)
		}
		counts[t.name] = n
		metrics.DatasetRows.WithLabelValues(t.name).Set(float64(n))
	}
	return counts, nil
}
