// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

// ForceSummary aggregates one country's air defence inventory.
// The zero value is the summary of a country with no systems.
type ForceSummary struct {
	TotalSystems     int     `json:"total_systems"`
	ModernCount      int     `json:"modern_count"`
	TraditionalCount int     `json:"traditional_count"`
	ModernPct        float64 `json:"modern_pct"`
	AvgThreatLevel   float64 `json:"avg_threat_level"`
	AvgStealth       float64 `json:"avg_stealth"`
	AvgEW            float64 `json:"avg_ew"`
	AvgTechGen       float64 `json:"avg_tech_gen"`
	AvgReliability   float64 `json:"avg_reliability"`
	AvgCostMUSD      float64 `json:"avg_cost_musd"`
	FighterCount     int     `json:"fighter_count"`
	SAMCount         int     `json:"sam_count"`
	UAVCount         int     `json:"uav_count"`
	HelicopterCount  int     `json:"helicopter_count"`
	RadarCount       int     `json:"radar_count"`
	MissileCount     int     `json:"missile_count"`
	CombatProvenPct  float64 `json:"combat_proven_pct"`
}

// Empty reports whether the summary describes no systems.
func (f *ForceSummary) Empty() bool {
	return f.TotalSystems == 0
}

// TypeCount returns the count for one of SystemTypes.
func (f *ForceSummary) TypeCount(systemType string) int {
	switch systemType {
	case TypeFighterAircraft:
		return f.FighterCount
	case TypeSAMSystem:
		return f.SAMCount
	case TypeUAVDrone:
		return f.UAVCount
	case TypeHelicopter:
		return f.HelicopterCount
	case TypeRadarSystem:
		return f.RadarCount
	case TypeInterceptorMissile:
		return f.MissileCount
	default:
		return 0
	}
}
