// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Command pipeline builds the AirDefence dataset and trains the model
// bundle the server loads.
//
//	pipeline generate --out data
//	pipeline train --data data --models models
//	pipeline all
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/airdefence/internal/config"
	"github.com/tomtom215/airdefence/internal/database"
	"github.com/tomtom215/airdefence/internal/logging"
)

var (
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger zerolog.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pipeline",
		Short: "AirDefence dataset and model pipeline",
		Long: `Builds the synthetic air defence dataset and trains the models served
by the API.

Defaults come from the same configuration as the server (config file and
environment). Flags override them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			cfg = loaded

			level := cfg.Logging.Level
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			format := cfg.Logging.Format
			if cmd.Flags().Changed("log-format") {
				format = logFormat
			}
			logging.Init(logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()})
			logger = logging.WithComponent("pipeline-cli")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (json or console)")

	root.AddCommand(newGenerateCmd(), newTrainCmd(), newAllCmd())
	return root
}

// openDB returns an in-process DuckDB. The pipeline never shares the
// server's database file.
func openDB() (*database.DB, error) {
	dbCfg := cfg.Database
	dbCfg.Path = ":memory:"
	return database.New(&dbCfg)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
