// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/airdefence/internal/database"
	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/ml/storage"
	"github.com/tomtom215/airdefence/internal/pipeline"
	"github.com/tomtom215/airdefence/internal/training"
)

type generateFlags struct {
	out       string
	seed      uint64
	scenarios int
}

type trainFlags struct {
	data    string
	models  string
	backend string
	workers int
	keep    int
	timeout time.Duration
}

func (f *generateFlags) register(cmd *cobra.Command, outName string) {
	cmd.Flags().StringVar(&f.out, outName, "", "Directory receiving the CSV files (default: DATA_DIR)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed (default: DATA_SEED)")
	cmd.Flags().IntVar(&f.scenarios, "scenarios", 0, "Scenario synthesis iterations (default: DATA_SCENARIOS)")
}

// options fills unset flags from the loaded configuration.
func (f *generateFlags) options(cmd *cobra.Command, outName string) pipeline.Options {
	opts := pipeline.Options{DataDir: cfg.Data.Dir, Seed: cfg.Data.Seed, Scenarios: cfg.Data.Scenarios}
	if cmd.Flags().Changed(outName) {
		opts.DataDir = f.out
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = f.seed
	}
	if cmd.Flags().Changed("scenarios") {
		opts.Scenarios = f.scenarios
	}
	return opts
}

func (f *trainFlags) register(cmd *cobra.Command, withData bool) {
	if withData {
		cmd.Flags().StringVar(&f.data, "data", "", "Directory holding the CSV files (default: DATA_DIR)")
	}
	cmd.Flags().StringVar(&f.models, "models", "", "Model store directory (default: MODELS_DIR)")
	cmd.Flags().StringVar(&f.backend, "backend", "", "Model store backend, file or badger (default: MODELS_BACKEND)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Parallel tree fitting workers (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&f.keep, "keep", 0, "Bundle versions to keep (default: MODELS_KEEP_VERSIONS)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Training time limit (0 = none)")
}

func (f *trainFlags) resolve(cmd *cobra.Command) (dataDir, backend string, tc training.Config) {
	dataDir, backend = cfg.Data.Dir, cfg.Models.Backend
	tc = training.Config{
		ModelsDir:    cfg.Models.Dir,
		Seed:         cfg.Data.Seed,
		Workers:      f.workers,
		KeepVersions: cfg.Models.KeepVersions,
		Timeout:      f.timeout,
	}
	if cmd.Flags().Changed("data") {
		dataDir = f.data
	}
	if cmd.Flags().Changed("models") {
		tc.ModelsDir = f.models
	}
	if cmd.Flags().Changed("backend") {
		backend = f.backend
	}
	if cmd.Flags().Changed("keep") {
		tc.KeepVersions = f.keep
	}
	if cmd.Flags().Changed("seed") {
		if seed, err := cmd.Flags().GetUint64("seed"); err == nil {
			tc.Seed = seed
		}
	}
	return dataDir, backend, tc
}

func newGenerateCmd() *cobra.Command {
	var gf generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the dataset CSVs from the embedded seed",
		Long: `Loads the seed, derives the system columns, synthesizes the conflict
scenarios and exports countries_profiles.csv, air_systems_enhanced.csv
and conflict_scenarios.csv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gf.options(cmd, "out")
			if opts.DataDir == "" {
				return errors.New("--out must not be empty")
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := pipeline.Generate(cmd.Context(), db, opts, logger)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), opts.DataDir, stats)
			return nil
		},
	}
	gf.register(cmd, "out")
	return cmd
}

func newTrainCmd() *cobra.Command {
	var tf trainFlags
	var seed uint64
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the model bundle from the dataset CSVs",
		Long: `Loads the CSVs into DuckDB, fits the classification, outcome and
duration models and saves a new bundle version plus model_metadata.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, backend, tc := tf.resolve(cmd)

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.LoadCSV(cmd.Context(), dataDir); err != nil {
				if errors.Is(err, database.ErrDatasetMissing) {
					return fmt.Errorf("%w (run 'pipeline generate --out %s' first)", err, dataDir)
				}
				return err
			}
			return train(cmd, db, backend, tc)
		},
	}
	tf.register(cmd, true)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Training seed (default: DATA_SEED)")
	return cmd
}

func newAllCmd() *cobra.Command {
	var gf generateFlags
	var tf trainFlags
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Generate the dataset, then train on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gf.options(cmd, "data")
			_, backend, tc := tf.resolve(cmd)

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := pipeline.Generate(cmd.Context(), db, opts, logger)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), opts.DataDir, stats)
			return train(cmd, db, backend, tc)
		},
	}
	gf.register(cmd, "data")
	tf.register(cmd, false)
	return cmd
}

func train(cmd *cobra.Command, db *database.DB, backend string, tc training.Config) error {
	store, err := storage.Open(backend, tc.ModelsDir)
	if err != nil {
		return err
	}
	defer store.Close()

	bundle, err := pipeline.Train(cmd.Context(), db, store, tc, logger)
	if err != nil {
		return err
	}
	printBundle(cmd.OutOrStdout(), tc.ModelsDir, bundle)
	return nil
}

func printStats(w io.Writer, dir string, stats *pipeline.Stats) {
	fmt.Fprintf(w, "Dataset written to %s\n", dir)
	fmt.Fprintf(w, "  countries: %d\n  systems:   %d\n  scenarios: %d\n", stats.Countries, stats.Systems, stats.Scenarios)
	fmt.Fprintf(w, "  took:      %s\n", stats.Duration().Round(time.Millisecond))
}

func printBundle(w io.Writer, dir string, bundle *ml.Bundle) {
	fmt.Fprintf(w, "Model bundle v%d saved to %s\n", bundle.Version, dir)
	m := bundle.Metadata
	fmt.Fprintf(w, "  system classifier accuracy: %.3f (%s)\n", m.Model1Accuracy, m.Model1.Algorithm)
	fmt.Fprintf(w, "  war outcome accuracy:       %.3f\n", m.Model2Accuracy)
	fmt.Fprintf(w, "  win probability R2:         %.3f\n", m.Model3R2)
}
