// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package scenario

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/tomtom215/airdefence/internal/features"
	"github.com/tomtom215/airdefence/internal/models"
)

// Defaults used by the pipeline.
const (
	DefaultIterations = 700
	DefaultSeed       = 42
)

const (
	attackerThreshold = 62.0
	defenderThreshold = 38.0
	noiseStdDev       = 8.0
)

// ErrTooFewCountries is returned when no pair of countries can be drawn.
var ErrTooFewCountries = errors.New("scenario synthesis needs at least two countries")

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithIterations sets the number of draws. Skipped draws still count.
func WithIterations(n int) Option {
	return func(s *Synthesizer) {
		s.iterations = n
	}
}

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) {
		s.seed = seed
	}
}

// Synthesizer generates scenarios from fixed country and system tables.
type Synthesizer struct {
	countries  []models.Country
	summaries  map[string]models.ForceSummary
	iterations int
	seed       uint64
}

// NewSynthesizer precomputes force summaries for every country.
func NewSynthesizer(countries []models.Country, systems []models.System, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		countries:  countries,
		summaries:  make(map[string]models.ForceSummary, len(countries)),
		iterations: DefaultIterations,
		seed:       DefaultSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range countries {
		name := countries[i].Country
		s.summaries[name] = features.Summarize(name, systems)
	}
	return s
}

// Generate runs all iterations and returns the emitted scenarios in order.
func (s *Synthesizer) Generate(ctx context.Context) ([]models.Scenario, error) {
	n := len(s.countries)
	if n < 2 {
		return nil, ErrTooFewCountries
	}

	rng := rand.New(rand.NewPCG(s.seed, s.seed))
	out := make([]models.Scenario, 0, s.iterations)

	for i := 0; i < s.iterations; i++ {
		if i%100 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		a := rng.IntN(n)
		d := rng.IntN(n - 1)
		if d >= a {
			d++
		}
		// Always consume the noise draw so a skipped pair does not shift
		// the stream for later iterations.
		noise := rng.NormFloat64() * noiseStdDev

		att, dfn := &s.countries[a], &s.countries[d]
		attFS, dfnFS := s.summaries[att.Country], s.summaries[dfn.Country]
		if attFS.Empty() || dfnFS.Empty() {
			continue
		}

		sc, err := build(i, att, dfn, &attFS, &dfnFS, noise)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func build(i int, att, dfn *models.Country, attFS, dfnFS *models.ForceSummary, noise float64) (models.Scenario, error) {
	attSide, err := features.Side(attFS, att)
	if err != nil {
		return models.Scenario{}, fmt.Errorf("attacker %s: %w", att.Country, err)
	}
	dfnSide, err := features.Side(dfnFS, dfn)
	if err != nil {
		return models.Scenario{}, fmt.Errorf("defender %s: %w", dfn.Country, err)
	}

	raw := features.ComputeRatios(attFS, dfnFS, att, dfn, features.ModeGeneration)
	noisy := features.Clip(Advantage(raw)+noise, 5, 95)
	outcome, win := Label(noisy)

	return models.Scenario{
		ScenarioID:             fmt.Sprintf("SCN_%04d", i+1),
		Attacker:               att.Country,
		Defender:               dfn.Country,
		Att:                    attSide,
		Dfn:                    dfnSide,
		Ratios:                 raw.Reported(),
		Outcome:                outcome,
		AttackerWinProbability: win,
	}, nil
}

// Advantage scores the attacker from raw ratios, bounded to [5, 95].
func Advantage(r features.RawRatios) float64 {
	return features.Clip(50+2*r.Sum(), 5, 95)
}

// Label buckets a noisy advantage into an outcome and a win probability.
func Label(noisy float64) (string, float64) {
	p := noisy / 100
	switch {
	case noisy > attackerThreshold:
		return models.OutcomeAttackerWins, features.Round(features.Clip(p, 0.55, 0.95), 2)
	case noisy < defenderThreshold:
		return models.OutcomeDefenderWins, features.Round(features.Clip(p, 0.05, 0.45), 2)
	default:
		return models.OutcomeStalemate, features.Round(features.Clip(p, 0.40, 0.60), 2)
	}
}
