// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package prediction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/airdefence/internal/features"
	"github.com/tomtom215/airdefence/internal/logging"
	"github.com/tomtom215/airdefence/internal/metrics"
	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/models"
)

var (
	// ErrModelsNotLoaded is returned before a bundle has been loaded.
	ErrModelsNotLoaded = errors.New("models not loaded")

	// ErrSameCountry is returned when attacker and defender are the same.
	ErrSameCountry = errors.New("attacker and defender must be different countries")
)

// Publisher receives every served prediction.
type Publisher interface {
	PublishPrediction(ctx context.Context, rec *models.PredictionRecord) error
}

// Service answers model-backed prediction requests.
type Service struct {
	bundle    atomic.Pointer[ml.Bundle]
	publisher Publisher
	logger    zerolog.Logger
}

// NewService creates a service with no bundle loaded. publisher may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(publisher Publisher, logger zerolog.Logger) *Service {
	return &Service{
		publisher: publisher,
		logger:    logger.With().Str("component", "prediction").Logger(),
	}
}

// Load validates b and makes it the current bundle.
func (s *Service) Load(b *ml.Bundle) error {
	if err := b.Validate(); err != nil {
		return err
	}
	prev := s.bundle.Swap(b)

	metrics.ModelBundleVersion.Set(float64(b.Version))
	event := s.logger.Info().Int("version", b.Version)
	if prev != nil {
		event = event.Int("previous_version", prev.Version)
	}
	event.Msg("model bundle loaded")
	return nil
}

// Loaded reports whether a bundle is available.
func (s *Service) Loaded() bool {
	return s.bundle.Load() != nil
}

// Version returns the loaded bundle version, or 0.
func (s *Service) Version() int {
	if b := s.bundle.Load(); b != nil {
		return b.Version
	}
	return 0
}

// Metadata returns the loaded bundle's metadata.
func (s *Service) Metadata() (*ml.Metadata, error) {
	b := s.bundle.Load()
	if b == nil {
		return nil, ErrModelsNotLoaded
	}
	meta := b.Metadata
	return &meta, nil
}

func (s *Service) current() (*ml.Bundle, error) {
	b := s.bundle.Load()
	if b == nil {
		return nil, ErrModelsNotLoaded
	}
	return b, nil
}

// ClassifySystem predicts Modern or Traditional for a dataset system.
func (s *Service) ClassifySystem(ctx context.Context, sys *models.System) (*models.ClassifyResult, error) {
	start := time.Now()
	b, err := s.current()
	if err != nil {
		return nil, err
	}

	code, err := b.SystemTypes.Transform(sys.SystemType)
	if err != nil {
		return nil, fmt.Errorf("encode system type: %w", err)
	}
	x, err := b.SystemScaler.TransformRow(features.SystemVector(sys, code))
	if err != nil {
		return nil, fmt.Errorf("scale system features: %w", err)
	}

	model := b.SystemModel.Model()
	proba, err := model.PredictProba(x)
	if err != nil {
		return nil, fmt.Errorf("classify system: %w", err)
	}
	class, probs, err := decode(&b.Classes, proba)
	if err != nil {
		return nil, err
	}

	result := &models.ClassifyResult{
		SelectedSystem: models.SelectedSystem{
			SystemID:   sys.SystemID,
			SystemName: sys.SystemName,
			Country:    sys.Country,
			SystemType: sys.SystemType,
			Specifications: models.SystemSpecifications{
				TechGeneration: sys.TechGeneration,
				YearInducted:   sys.YearInducted,
				StealthRating:  sys.StealthRating,
				EWCapability:   sys.EWCapability,
				MaxSpeedKmph:   sys.MaxSpeedKmph,
				RangeKm:        sys.RangeKm,
				MaxAltitudeM:   sys.MaxAltitudeM,
				Reliability:    sys.Reliability,
				CostMillionUSD: sys.CostMillionUSD,
				ThreatLevel:    sys.ThreatLevel,
				PayloadKg:      sys.PayloadKg,
			},
			DatasetClassification: sys.Classification,
		},
		Prediction: models.ClassPrediction{
			Classification: class,
			Confidence:     features.Round(maxOf(proba), 3),
			Probabilities:  probs,
		},
		Model:         b.Metadata.Model1.Algorithm,
		ModelAccuracy: b.Metadata.Model1.Accuracy,
	}

	s.record(ctx, models.PredictionKindClassify, sys.SystemName, class, result.Prediction.Confidence, start)
	return result, nil
}

// PredictWar predicts the outcome of attacker striking defender.
func (s *Service) PredictWar(ctx context.Context, att, dfn *models.Country, attFS, dfnFS *models.ForceSummary) (*models.WarResult, error) {
	start := time.Now()
	if strings.EqualFold(att.Country, dfn.Country) {
		return nil, ErrSameCountry
	}
	b, err := s.current()
	if err != nil {
		return nil, err
	}

	attSide, err := features.Side(attFS, att)
	if err != nil {
		return nil, fmt.Errorf("attacker features: %w", err)
	}
	dfnSide, err := features.Side(dfnFS, dfn)
	if err != nil {
		return nil, fmt.Errorf("defender features: %w", err)
	}
	ratios := features.ComputeRatios(attFS, dfnFS, att, dfn, features.ModeServing).Reported()

	x, err := b.WarScaler.TransformRow(features.WarVector(&attSide, &dfnSide, ratios))
	if err != nil {
		return nil, fmt.Errorf("scale war features: %w", err)
	}

	proba, err := b.OutcomeModel.PredictProba(x)
	if err != nil {
		return nil, fmt.Errorf("predict outcome: %w", err)
	}
	outcome, probs, err := decode(&b.Outcomes, proba)
	if err != nil {
		return nil, err
	}
	raw, err := b.WinProbability.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("predict win probability: %w", err)
	}
	win := features.Clip(raw, 0, 1)

	result := &models.WarResult{
		Attacker: side(att, attFS),
		Defender: side(dfn, dfnFS),
		Prediction: models.WarOutcome{
			Outcome:                  outcome,
			OutcomeDescription:       Describe(outcome, att.Country, dfn.Country),
			AttackerWinProbability:   features.Round(win, 3),
			OutcomeProbabilities:     probs,
			EstimatedAttackerLossPct: features.Round(features.Clip((1-win)*40, 5, 75), 1),
			EstimatedDefenderLossPct: features.Round(features.Clip(win*40, 5, 75), 1),
			EstimatedDurationDays:    DurationDays(win),
		},
		AdvantageFactors: models.AdvantageFactors{
			ThreatRatio:  ratios.Threat,
			TechRatio:    ratios.Tech,
			NumbersRatio: ratios.Number,
			BudgetRatio:  ratios.Budget,
		},
		Model:         b.Metadata.Model2.Algorithm,
		ModelAccuracy: b.Metadata.Model2.Accuracy,
	}

	s.record(ctx, models.PredictionKindWar, att.Country+" vs "+dfn.Country, outcome, result.Prediction.AttackerWinProbability, start)
	return result, nil
}

// DurationDays estimates conflict length: closer contests last longer.
func DurationDays(win float64) int {
	decisiveness := math.Max(math.Abs(win-0.5)*2, 0.05)
	return max(3, int(15/decisiveness))
}

// Describe renders the narrative for an outcome.
func Describe(outcome, attacker, defender string) string {
	switch outcome {
	case models.OutcomeAttackerWins:
		return fmt.Sprintf("%s forces achieve air superiority. Significant degradation of %s air defence network.", attacker, defender)
	case models.OutcomeDefenderWins:
		return fmt.Sprintf("%s successfully repels the air campaign. %s forces suffer heavy attrition.", defender, attacker)
	default:
		return "Neither side achieves decisive air superiority. Prolonged attritional air war with heavy losses on both sides."
	}
}

func side(c *models.Country, fs *models.ForceSummary) models.WarSide {
	return models.WarSide{
		Country:        c.Country,
		FlagURL:        c.FlagURL,
		RiskZone:       c.RiskZone,
		ZoneColor:      c.RiskZone.Color(),
		NuclearCapable: c.NuclearCapable,
		ForceSummary:   *fs,
	}
}

// decode maps a probability vector onto class names.
func decode(enc *ml.LabelEncoder, proba []float64) (string, map[string]float64, error) {
	probs := make(map[string]float64, len(proba))
	best := 0
	for i, p := range proba {
		name, err := enc.Inverse(i)
		if err != nil {
			return "", nil, fmt.Errorf("decode class %d: %w", i, err)
		}
		probs[name] = features.Round(p, 3)
		if p > proba[best] {
			best = i
		}
	}
	name, err := enc.Inverse(best)
	if err != nil {
		return "", nil, fmt.Errorf("decode class %d: %w", best, err)
	}
	return name, probs, nil
}

func maxOf(v []float64) float64 {
	m := math.Inf(-1)
	for _, x := range v {
		m = math.Max(m, x)
	}
	return m
}

func (s *Service) record(ctx context.Context, kind, subject, outcome string, probability float64, start time.Time) {
	metrics.PredictionsTotal.WithLabelValues(kind, outcome).Inc()
	metrics.PredictionDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if s.publisher == nil {
		return
	}
	rec := &models.PredictionRecord{
		ID:          uuid.New().String(),
		Kind:        kind,
		Subject:     subject,
		Outcome:     outcome,
		Probability: probability,
		RequestID:   logging.RequestIDFromContext(ctx),
		Timestamp:   time.Now().UTC(),
	}
	if err := s.publisher.PublishPrediction(ctx, rec); err != nil {
		logging.CtxWarn(ctx).Err(err).Str("kind", kind).Msg("failed to publish prediction event")
	}
}
