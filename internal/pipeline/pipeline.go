// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/airdefence/internal/database"
	"github.com/tomtom215/airdefence/internal/dataset"
	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/ml/storage"
	"github.com/tomtom215/airdefence/internal/scenario"
	"github.com/tomtom215/airdefence/internal/training"
)

// Options controls dataset generation.
type Options struct {
	// DataDir receives the CSV files. Empty skips the export.
	DataDir string

	// Seed drives the derived system columns and scenario synthesis.
	Seed uint64

	// Scenarios is the number of synthesis iterations. Zero uses
	// scenario.DefaultIterations.
	Scenarios int
}

// Stats reports what a dataset step produced.
type Stats struct {
	Countries int
	Systems   int
	Scenarios int

	// Generated is true when the tables were built from the seed rather
	// than loaded from CSV.
	Generated bool

	StartTime time.Time
	EndTime   time.Time
}

// Duration returns how long the step took.
func (s *Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Generate builds every reference table from the embedded seed, stores it
// in db and, when opts.DataDir is set, exports the CSV files.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Generate(ctx context.Context, db *database.DB, opts Options, logger zerolog.Logger) (*Stats, error) {
	logger = logger.With().Str("component", "pipeline").Logger()
	stats := &Stats{StartTime: time.Now(), Generated: true}

	seed, err := dataset.LoadSeed()
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	systems := dataset.Enrich(seed.Systems, opts.Seed)

	if err := db.ReplaceCountries(ctx, seed.Countries); err != nil {
		return nil, fmt.Errorf("store countries: %w", err)
	}
	if err := db.ReplaceSystems(ctx, systems); err != nil {
		return nil, fmt.Errorf("store systems: %w", err)
	}

	iterations := opts.Scenarios
	if iterations <= 0 {
		iterations = scenario.DefaultIterations
	}
	synth := scenario.NewSynthesizer(seed.Countries, systems,
		scenario.WithIterations(iterations),
		scenario.WithSeed(opts.Seed),
	)
	scenarios, err := synth.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("synthesize scenarios: %w", err)
	}
	if err := db.ReplaceScenarios(ctx, scenarios); err != nil {
		return nil, fmt.Errorf("store scenarios: %w", err)
	}

	if opts.DataDir != "" {
		if err := db.ExportCSV(ctx, opts.DataDir); err != nil {
			return nil, fmt.Errorf("export dataset: %w", err)
		}
	}

	stats.Countries = len(seed.Countries)
	stats.Systems = len(systems)
	stats.Scenarios = len(scenarios)
	stats.EndTime = time.Now()

	logger.Info().
		Int("countries", stats.Countries).
		Int("systems", stats.Systems).
		Int("scenarios", stats.Scenarios).
		Int("iterations", iterations).
		Uint64("seed", opts.Seed).
		Str("data_dir", opts.DataDir).
		Dur("duration", stats.Duration()).
		Msg("Dataset generated")
	return stats, nil
}

// EnsureData loads the CSV files in opts.DataDir, generating them first when
// any is missing. Malformed files are an error, not a reason to regenerate.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func EnsureData(ctx context.Context, db *database.DB, opts Options, logger zerolog.Logger) (*Stats, error) {
	start := time.Now()

	err := db.LoadCSV(ctx, opts.DataDir)
	switch {
	case err == nil:
	case errors.Is(err, database.ErrDatasetMissing):
		logger.Warn().Err(err).Str("data_dir", opts.DataDir).Msg("Dataset not found, generating from seed")
		return Generate(ctx, db, opts, logger)
	default:
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	counts, err := db.RowCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Countries: counts[database.TableCountries],
		Systems:   counts[database.TableSystems],
		Scenarios: counts[database.TableScenarios],
		StartTime: start,
		EndTime:   time.Now(),
	}, nil
}

// Train fits and saves a new model bundle from the tables in db.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Train(ctx context.Context, db *database.DB, store storage.Store, cfg training.Config, logger zerolog.Logger) (*ml.Bundle, error) {
	trainer := training.NewTrainer(cfg, db, store, logger)
	bundle, err := trainer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("train models: %w", err)
	}
	return bundle, nil
}
