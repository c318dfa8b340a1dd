// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/airdefence/internal/metrics"
	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/ml/storage"
)

// Reload results, used as the model_reloads_total label.
const (
	ReloadLoaded    = "loaded"
	ReloadUnchanged = "unchanged"
	ReloadMissing   = "missing"
	ReloadFailed    = "failed"
	ReloadRejected  = "rejected"
)

// BundleLoader swaps in a new model bundle. Satisfied by
// *prediction.Service.
type BundleLoader interface {
	Load(b *ml.Bundle) error
	Version() int
}

// ReloadConfig configures the reload service.
type ReloadConfig struct {
	// Interval between store polls. Zero loads once and then stops the
	// service for good.
	Interval time.Duration

	// BreakerFailures is the number of consecutive store failures that
	// opens the breaker. Default: 3
	BreakerFailures uint32

	// BreakerTimeout is how long the breaker stays open. Default: 1m
	BreakerTimeout time.Duration
}

// ModelReloadService keeps the served bundle at the newest stored version.
//
// Store reads go through a circuit breaker so a broken store (corrupt
// badger files, an unmounted volume) is not hammered every interval. The
// loaded bundle keeps serving while the breaker is open.
type ModelReloadService struct {
	store    storage.Store
	loader   BundleLoader
	interval time.Duration
	breaker  *gobreaker.CircuitBreaker[*ml.Bundle]
	logger   zerolog.Logger
	name     string
}

// NewModelReloadService creates a reload service for store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewModelReloadService(store storage.Store, loader BundleLoader, cfg ReloadConfig, logger zerolog.Logger) *ModelReloadService {
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = time.Minute
	}
	log := logger.With().Str("service", "model-reload").Logger()

	const breakerName = "model-store"
	breaker := gobreaker.NewCircuitBreaker[*ml.Bundle](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), int(to))
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Model store circuit breaker state changed")
		},
	})

	return &ModelReloadService{
		store:    store,
		loader:   loader,
		interval: cfg.Interval,
		breaker:  breaker,
		logger:   log,
		name:     "model-reload",
	}
}

// Serve implements suture.Service. It loads immediately, then polls every
// interval. Reload failures are logged and counted but never returned; the
// previous bundle keeps serving.
func (s *ModelReloadService) Serve(ctx context.Context) error {
	s.Reload(ctx)

	if s.interval <= 0 {
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Reload(ctx)
		}
	}
}

// Reload loads the newest stored bundle if it is newer than the one being
// served and returns the outcome.
func (s *ModelReloadService) Reload(ctx context.Context) string {
	result, err := s.reload(ctx)
	metrics.ModelReloads.WithLabelValues(result).Inc()

	switch result {
	case ReloadLoaded:
		s.logger.Info().Int("version", s.loader.Version()).Msg("Model bundle reloaded")
	case ReloadMissing:
		s.logger.Warn().Msg("No model bundle found. Run the training pipeline first.")
	case ReloadFailed, ReloadRejected:
		s.logger.Error().Err(err).Str("result", result).Msg("Model bundle reload failed")
	}
	return result
}

func (s *ModelReloadService) reload(ctx context.Context) (string, error) {
	latest, ok := s.store.LatestVersion(ml.BundleName)
	if !ok {
		return ReloadMissing, nil
	}
	if latest <= s.loader.Version() {
		return ReloadUnchanged, nil
	}

	bundle, err := s.breaker.Execute(func() (*ml.Bundle, error) {
		var b ml.Bundle
		if _, err := s.store.Load(ctx, ml.BundleName, latest, &b); err != nil {
			return nil, err
		}
		return &b, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return ReloadFailed, fmt.Errorf("model store unavailable: %w", err)
		}
		return ReloadFailed, fmt.Errorf("load bundle v%d: %w", latest, err)
	}

	if err := s.loader.Load(bundle); err != nil {
		return ReloadRejected, fmt.Errorf("bundle v%d rejected: %w", latest, err)
	}
	return ReloadLoaded, nil
}

// BreakerState reports the store breaker state.
func (s *ModelReloadService) BreakerState() gobreaker.State {
	return s.breaker.State()
}

// String implements fmt.Stringer.
func (s *ModelReloadService) String() string {
	return s.name
}
