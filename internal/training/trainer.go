// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package training

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/airdefence/internal/metrics"
	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/ml/storage"
	"github.com/tomtom215/airdefence/internal/models"
)

// MetadataFile is written next to the model store after each run.
const MetadataFile = "model_metadata.json"

// DefaultSeed matches the dataset generator's seed.
const DefaultSeed = 42

var (
	// ErrTrainingInProgress is returned when Run is called concurrently.
	ErrTrainingInProgress = errors.New("training already in progress")

	// ErrNoData is returned when a table needed for training is empty.
	ErrNoData = errors.New("no training data")
)

// DataProvider supplies the training tables.
type DataProvider interface {
	Countries(ctx context.Context) ([]models.Country, error)
	Systems(ctx context.Context, filter models.SystemFilter) ([]models.System, error)
	Scenarios(ctx context.Context) ([]models.Scenario, error)
}

// Config controls a training run.
type Config struct {
	// ModelsDir receives model_metadata.json.
	ModelsDir string

	// Seed drives every split and ensemble.
	Seed uint64

	// Workers bounds parallel tree fitting. Zero uses GOMAXPROCS.
	Workers int

	// KeepVersions prunes older bundles after a save. Zero keeps all.
	KeepVersions int

	// Timeout bounds the whole run. Zero means no limit.
	Timeout time.Duration
}

// Trainer fits and persists model bundles.
type Trainer struct {
	cfg    Config
	data   DataProvider
	store  storage.Store
	logger zerolog.Logger

	mu sync.Mutex
}

// NewTrainer creates a trainer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewTrainer(cfg Config, data DataProvider, store storage.Store, logger zerolog.Logger) *Trainer {
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	return &Trainer{
		cfg:    cfg,
		data:   data,
		store:  store,
		logger: logger.With().Str("component", "training").Logger(),
	}
}

// dataset is one snapshot of the training tables.
type dataset struct {
	countries []models.Country
	systems   []models.System
	scenarios []models.Scenario
}

// Run trains all three models, saves the bundle as the next version and
// writes its metadata. It returns the saved bundle.
func (t *Trainer) Run(ctx context.Context) (*ml.Bundle, error) {
	if !t.mu.TryLock() {
		return nil, ErrTrainingInProgress
	}
	defer t.mu.Unlock()

	if t.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	t.logger.Info().Msg("starting model training")

	data, err := t.load(ctx)
	if err != nil {
		return nil, err
	}

	bundle := &ml.Bundle{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return t.trainSystemModel(gctx, data.systems, bundle)
	})
	g.Go(func() error {
		return t.trainWarModels(gctx, data.scenarios, bundle)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	version := 1
	if latest, ok := t.store.LatestVersion(ml.BundleName); ok {
		version = latest + 1
	}
	elapsed := time.Since(start)

	bundle.Version = version
	bundle.Metadata.BundleVersion = version
	bundle.Metadata.TrainedAt = time.Now().UTC()
	bundle.Metadata.TrainingMS = elapsed.Milliseconds()
	bundle.Metadata.SystemTypes = bundle.SystemTypes.Classes
	bundle.Metadata.Dataset = ml.DatasetInfo{
		Countries: len(data.countries),
		Systems:   len(data.systems),
		Scenarios: len(data.scenarios),
	}

	if err := t.save(ctx, bundle); err != nil {
		return nil, err
	}

	metrics.TrainingDuration.Observe(elapsed.Seconds())
	metrics.ModelScore.WithLabelValues("model1", "accuracy").Set(bundle.Metadata.Model1Accuracy)
	metrics.ModelScore.WithLabelValues("model2", "accuracy").Set(bundle.Metadata.Model2Accuracy)
	metrics.ModelScore.WithLabelValues("model3", "r2").Set(bundle.Metadata.Model3R2)

	t.logger.Info().
		Int("version", version).
		Int64("duration_ms", elapsed.Milliseconds()).
		Float64("model1_accuracy", bundle.Metadata.Model1Accuracy).
		Float64("model2_accuracy", bundle.Metadata.Model2Accuracy).
		Float64("model3_r2", bundle.Metadata.Model3R2).
		Msg("model training complete")

	return bundle, nil
}

func (t *Trainer) load(ctx context.Context) (*dataset, error) {
	countries, err := t.data.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("get countries: %w", err)
	}
	systems, err := t.data.Systems(ctx, models.SystemFilter{})
	if err != nil {
		return nil, fmt.Errorf("get systems: %w", err)
	}
	scenarios, err := t.data.Scenarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("get scenarios: %w", err)
	}
	if len(systems) == 0 {
		return nil, fmt.Errorf("%w: systems", ErrNoData)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("%w: scenarios", ErrNoData)
	}

	t.logger.Info().
		Int("countries", len(countries)).
		Int("systems", len(systems)).
		Int("scenarios", len(scenarios)).
		Msg("loaded training data")

	return &dataset{countries: countries, systems: systems, scenarios: scenarios}, nil
}

func (t *Trainer) save(ctx context.Context, bundle *ml.Bundle) error {
	if err := bundle.Validate(); err != nil {
		return err
	}

	meta := storage.ModelMetadata{
		TrainedAt:          bundle.Metadata.TrainedAt,
		Samples:            bundle.Metadata.Dataset.Systems + bundle.Metadata.Dataset.Scenarios,
		TrainingDurationMS: bundle.Metadata.TrainingMS,
	}
	if err := t.store.Save(ctx, ml.BundleName, bundle.Version, bundle, meta); err != nil {
		return fmt.Errorf("save bundle: %w", err)
	}
	if t.cfg.KeepVersions > 0 {
		if err := t.store.Prune(ctx, ml.BundleName, t.cfg.KeepVersions); err != nil {
			t.logger.Warn().Err(err).Msg("failed to prune old bundles")
		}
	}

	if t.cfg.ModelsDir == "" {
		return nil
	}
	return WriteMetadata(filepath.Join(t.cfg.ModelsDir, MetadataFile), &bundle.Metadata)
}

// WriteMetadata writes meta as indented JSON.
func WriteMetadata(path string, meta *ml.Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil { //nolint:gosec // 0750 is acceptable for model storage
		return fmt.Errorf("create metadata directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o640); err != nil { //nolint:gosec // metadata is not sensitive
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

func (t *Trainer) modelOpts(opts ...ml.Option) []ml.Option {
	return append([]ml.Option{ml.WithSeed(t.cfg.Seed), ml.WithWorkers(t.cfg.Workers)}, opts...)
}
