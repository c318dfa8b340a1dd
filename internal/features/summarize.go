// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package features

import "github.com/tomtom215/airdefence/internal/models"

// Summarize aggregates the systems whose country is exactly country.
// A country without systems yields the zero ForceSummary.
func Summarize(country string, systems []models.System) models.ForceSummary {
	var (
		fs                                   models.ForceSummary
		threat, stealth, ew, tech, rel, cost float64
		combatProven                         int
	)

	for i := range systems {
		s := &systems[i]
		if s.Country != country {
			continue
		}
		fs.TotalSystems++
		switch s.Classification {
		case models.ClassModern:
			fs.ModernCount++
		case models.ClassTraditional:
			fs.TraditionalCount++
		}
		threat += s.ThreatLevel
		stealth += s.StealthRating
		ew += s.EWCapability
		tech += s.TechGeneration
		rel += s.Reliability
		cost += s.CostMillionUSD
		if s.CombatProven {
			combatProven++
		}
		switch s.SystemType {
		case models.TypeFighterAircraft:
			fs.FighterCount++
		case models.TypeSAMSystem:
			fs.SAMCount++
		case models.TypeUAVDrone:
			fs.UAVCount++
		case models.TypeHelicopter:
			fs.HelicopterCount++
		case models.TypeRadarSystem:
			fs.RadarCount++
		case models.TypeInterceptorMissile:
			fs.MissileCount++
		}
	}

	if fs.TotalSystems == 0 {
		return models.ForceSummary{}
	}

	n := float64(fs.TotalSystems)
	fs.ModernPct = Round(float64(fs.ModernCount)/n*100, 1)
	fs.AvgThreatLevel = Round(threat/n, 2)
	fs.AvgStealth = Round(stealth/n, 2)
	fs.AvgEW = Round(ew/n, 2)
	fs.AvgTechGen = Round(tech/n, 2)
	fs.AvgReliability = Round(rel/n, 1)
	fs.AvgCostMUSD = Round(cost/n, 1)
	fs.CombatProvenPct = Round(float64(combatProven)/n*100, 1)
	return fs
}
