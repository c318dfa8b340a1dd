// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/airdefence/docs" // Import swagger docs
	"github.com/tomtom215/airdefence/internal/api"
	"github.com/tomtom215/airdefence/internal/config"
	"github.com/tomtom215/airdefence/internal/database"
	"github.com/tomtom215/airdefence/internal/events"
	"github.com/tomtom215/airdefence/internal/logging"
	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/ml/storage"
	"github.com/tomtom215/airdefence/internal/pipeline"
	"github.com/tomtom215/airdefence/internal/prediction"
	"github.com/tomtom215/airdefence/internal/supervisor"
	"github.com/tomtom215/airdefence/internal/supervisor/services"
	"github.com/tomtom215/airdefence/internal/training"
)

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting AirDefence with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === DATA ===

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	stats, err := pipeline.EnsureData(ctx, db, pipeline.Options{
		DataDir:   cfg.Data.Dir,
		Seed:      cfg.Data.Seed,
		Scenarios: cfg.Data.Scenarios,
	}, logger)
	if err != nil {
		logging.Fatal().Err(err).Str("data_dir", cfg.Data.Dir).Msg("Failed to load dataset")
	}
	logging.Info().
		Int("countries", stats.Countries).
		Int("systems", stats.Systems).
		Int("scenarios", stats.Scenarios).
		Bool("generated", stats.Generated).
		Dur("duration", stats.Duration()).
		Msg("Dataset loaded")

	// === MODELS ===

	store, err := storage.Open(cfg.Models.Backend, cfg.Models.Dir)
	if err != nil {
		logging.Fatal().Err(err).Str("backend", cfg.Models.Backend).Msg("Failed to open model store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing model store")
		}
	}()

	if cfg.Models.TrainOnStartup {
		if _, ok := store.LatestVersion(ml.BundleName); !ok {
			logging.Info().Msg("No model bundle found, training on startup (TRAIN_ON_STARTUP=true)")
			bundle, err := pipeline.Train(ctx, db, store, training.Config{
				ModelsDir:    cfg.Models.Dir,
				Seed:         cfg.Data.Seed,
				KeepVersions: cfg.Models.KeepVersions,
			}, logger)
			if err != nil {
				logging.Fatal().Err(err).Msg("Startup training failed")
			}
			logging.Info().Int("version", bundle.Version).Msg("Startup training complete")
		}
	}

	// === PREDICTIONS AND EVENTS ===

	bus := events.NewBus(events.DefaultBusConfig(), logging.NewWatermillLogger())
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()
	history := events.NewHistory(cfg.Events.HistorySize)
	predictor := prediction.NewService(bus, logger)

	// === HTTP ===

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS is configured with wildcard origin (CORS_ORIGINS=*). Set specific origins in production.")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(db, predictor, history, cfg)
	router := api.NewRouter(handler, cfg)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddModelService(services.NewModelReloadService(store, predictor, services.ReloadConfig{
		Interval: cfg.Models.ReloadInterval,
	}, logger))
	tree.AddMessagingService(services.NewEventConsumerService(events.NewConsumer(bus, history)))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
