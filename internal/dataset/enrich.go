// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package dataset

import (
	"fmt"
	"math/rand/v2"

	"github.com/tomtom215/airdefence/internal/features"
	"github.com/tomtom215/airdefence/internal/models"
)

// DefaultSeed is the generator seed used by the pipeline and the server.
const DefaultSeed = 42

// exportProbability is the chance a system is marked exportable.
const exportProbability = 0.55

// Enrich returns a copy of systems with system_id, fuel_efficiency and
// export_available filled in. Fuel efficiency is drawn for every row before
// any export flag, so adding a column never shifts earlier draws.
func Enrich(systems []models.System, seed uint64) []models.System {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]models.System, len(systems))
	copy(out, systems)

	for i := range out {
		var v float64
		if out[i].IsModern() {
			v = uniform(rng, 0.5, 2.0)
		} else {
			v = uniform(rng, 0.2, 0.8)
		}
		out[i].FuelEfficiency = features.Round(v, 3)
	}
	for i := range out {
		if rng.Float64() < exportProbability {
			out[i].ExportAvailable = "Yes"
		} else {
			out[i].ExportAvailable = "No"
		}
	}
	for i := range out {
		out[i].SystemID = SystemID(i)
	}
	return out
}

// SystemID formats the identifier for the i-th (0-based) system.
func SystemID(i int) string {
	return fmt.Sprintf("ADS_%03d", i+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
