// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package features

import (
	"math"

	"github.com/tomtom215/airdefence/internal/models"
)

// Mode selects the denominator floor used for ratios.
type Mode int

const (
	// ModeGeneration is used when synthesizing training scenarios.
	ModeGeneration Mode = iota
	// ModeServing is used when answering prediction requests.
	ModeServing
)

// budgetRatioCap bounds the reported budget ratio.
const budgetRatioCap = 100

// Floor returns the minimum denominator for threat, tech and budget ratios.
func (m Mode) Floor() float64 {
	if m == ModeServing {
		return 0.01
	}
	return 0.1
}

// RawRatios are the unrounded, uncapped attacker/defender ratios.
type RawRatios struct {
	Threat float64
	Tech   float64
	Number float64
	Budget float64
}

// Sum feeds the advantage score.
func (r RawRatios) Sum() float64 {
	return r.Threat + r.Tech + r.Number + r.Budget
}

// Reported rounds to three places, capping the budget ratio first.
func (r RawRatios) Reported() models.Ratios {
	return models.Ratios{
		Threat: Round(r.Threat, 3),
		Tech:   Round(r.Tech, 3),
		Number: Round(r.Number, 3),
		Budget: Round(math.Min(r.Budget, budgetRatioCap), 3),
	}
}

// ComputeRatios derives attacker-over-defender ratios from force summaries
// and country rows.
func ComputeRatios(att, dfn *models.ForceSummary, attC, dfnC *models.Country, mode Mode) RawRatios {
	floor := mode.Floor()
	return RawRatios{
		Threat: att.AvgThreatLevel / math.Max(dfn.AvgThreatLevel, floor),
		Tech:   att.AvgTechGen / math.Max(dfn.AvgTechGen, floor),
		Number: float64(attC.CombatAircraftCount) / math.Max(float64(dfnC.CombatAircraftCount), 1),
		Budget: attC.MilitaryBudgetBillionUSD / math.Max(dfnC.MilitaryBudgetBillionUSD, floor),
	}
}
