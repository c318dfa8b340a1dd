// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/airdefence/internal/models"
)

// buildSystemConditions turns a filter into a WHERE clause and its args.
func buildSystemConditions(f *models.SystemFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Country != "" {
		conditions = append(conditions, "lower(country) = lower(?)")
		args = append(args, f.Country)
	}
	if f.NameContains != "" {
		conditions = append(conditions, "contains(lower(system_name), lower(?))")
		args = append(args, f.NameContains)
	}
	if f.SystemType != "" {
		conditions = append(conditions, "lower(system_type) = lower(?)")
		args = append(args, f.SystemType)
	}
	if f.Classification != "" {
		conditions = append(conditions, "lower(classification) = lower(?)")
		args = append(args, f.Classification)
	}
	if f.MinThreat != nil {
		conditions = append(conditions, "threat_level >= ?")
		args = append(args, *f.MinThreat)
	}
	if f.MaxThreat != nil {
		conditions = append(conditions, "threat_level <= ?")
		args = append(args, *f.MaxThreat)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// Systems returns the systems matching every set predicate of filter, in
// dataset order.
func (db *DB) Systems(ctx context.Context, filter models.SystemFilter) ([]models.System, error) {
	where, args := buildSystemConditions(&filter)
	return db.querySystems(ctx, where+" ORDER BY rowid", args)
}

// SystemsByCountry returns one country's systems in dataset order. The
// name must be the canonical country name.
func (db *DB) SystemsByCountry(ctx context.Context, country string) ([]models.System, error) {
	return db.querySystems(ctx, "WHERE country = ? ORDER BY rowid", []interface{}{country})
}

// TopThreatSystems returns the n highest threat systems. Ties keep dataset
// order.
func (db *DB) TopThreatSystems(ctx context.Context, n int) ([]models.System, error) {
	return db.querySystems(ctx, "ORDER BY threat_level DESC, rowid LIMIT ?", []interface{}{n})
}

func (db *DB) querySystems(ctx context.Context, tail string, args []interface{}) (systems []models.System, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", TableSystems, time.Now(), &err)

	query := fmt.Sprintf("SELECT %s FROM %s %s", systemsTable.columnList(), TableSystems, tail)
	systems = make([]models.System, 0, 32)
	err = db.queryAndScan(ctx, query, args, func(rows *sql.Rows) error {
		s, scanErr := scanSystem(rows)
		if scanErr != nil {
			return scanErr
		}
		systems = append(systems, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query systems: %w", err)
	}
	return systems, nil
}

// SystemNames returns the autocomplete projection sorted by system name.
// country matches exactly (case-insensitive); q is a name substring.
func (db *DB) SystemNames(ctx context.Context, country, q string, limit int) (names []models.SystemName, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select_names", TableSystems, time.Now(), &err)

	where, args := buildSystemConditions(&models.SystemFilter{Country: country, NameContains: q})
	query := fmt.Sprintf(`SELECT system_id, system_name, country, system_type, classification, threat_level
		FROM systems %s ORDER BY system_name, rowid LIMIT ?`, where)
	args = append(args, limit)

	names = make([]models.SystemName, 0, 32)
	err = db.queryAndScan(ctx, query, args, func(rows *sql.Rows) error {
		var n models.SystemName
		if scanErr := rows.Scan(&n.SystemID, &n.SystemName, &n.Country, &n.SystemType, &n.Classification, &n.ThreatLevel); scanErr != nil {
			return scanErr
		}
		names = append(names, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query system names: %w", err)
	}
	return names, nil
}

// SystemByName resolves a system name. An exact (case-insensitive) match
// wins; otherwise the name must be a substring of exactly one system. No
// match yields a NotFoundError; several yield an *AmbiguousError.
func (db *DB) SystemByName(ctx context.Context, name string) (*models.System, error) {
	exact, err := db.querySystems(ctx, "WHERE lower(system_name) = lower(?) ORDER BY rowid", []interface{}{name})
	if err != nil {
		return nil, err
	}
	if len(exact) > 0 {
		return &exact[0], nil
	}

	partial, err := db.Systems(ctx, models.SystemFilter{NameContains: name})
	if err != nil {
		return nil, err
	}
	switch len(partial) {
	case 0:
		return nil, &NotFoundError{Entity: "System", Name: name}
	case 1:
		return &partial[0], nil
	default:
		matches := make([]string, len(partial))
		for i := range partial {
			matches[i] = partial[i].SystemName
		}
		sort.Strings(matches)
		return nil, &AmbiguousError{Name: name, Matches: matches}
	}
}
