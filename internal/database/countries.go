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

// Countries returns every country in dataset order.
func (db *DB) Countries(ctx context.Context) ([]models.Country, error) {
	return db.queryCountries(ctx, "", nil)
}

// CountriesByZone returns the countries of one risk zone in dataset order.
func (db *DB) CountriesByZone(ctx context.Context, zone models.Zone) ([]models.Country, error) {
	return db.queryCountries(ctx, "WHERE lower(risk_zone) = lower(?)", []interface{}{string(zone)})
}

func (db *DB) queryCountries(ctx context.Context, where string, args []interface{}) (countries []models.Country, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", TableCountries, time.Now(), &err)

	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY rowid", countriesTable.columnList(), TableCountries, where)
	countries = make([]models.Country, 0, 16)
	err = db.queryAndScan(ctx, query, args, func(rows *sql.Rows) error {
		c, scanErr := scanCountry(rows)
		if scanErr != nil {
			return scanErr
		}
		countries = append(countries, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	return countries, nil
}

// CountryByName resolves a country case-insensitively.
func (db *DB) CountryByName(ctx context.Context, name string) (*models.Country, error) {
	countries, err := db.queryCountries(ctx, "WHERE lower(country) = lower(?)", []interface{}{name})
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, &NotFoundError{Entity: "Country", Name: name}
	}
	return &countries[0], nil
}

// CountryNames returns the autocomplete projection of countries whose name
// contains q, sorted by name. An empty q matches everything.
func (db *DB) CountryNames(ctx context.Context, q string, limit int) (names []models.CountryName, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select_names", TableCountries, time.Now(), &err)

	query := `SELECT country, iso_code, risk_zone, flag_url FROM countries`
	var args []interface{}
	if q != "" {
		query += ` WHERE contains(lower(country), lower(?))`
		args = append(args, q)
	}
	query += ` ORDER BY country LIMIT ?`
	args = append(args, limit)

	names = make([]models.CountryName, 0, 16)
	err = db.queryAndScan(ctx, query, args, func(rows *sql.Rows) error {
		var n models.CountryName
		var zone string
		if scanErr := rows.Scan(&n.Country, &n.ISOCode, &zone, &n.FlagURL); scanErr != nil {
			return scanErr
		}
		n.RiskZone = models.Zone(zone)
		names = append(names, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query country names: %w", err)
	}
	return names, nil
}
