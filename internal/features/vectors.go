// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package features

import (
	"github.com/tomtom215/airdefence/internal/models"
)

// SystemFeatureNames are the model-1 columns in order.
var SystemFeatureNames = []string{
	"tech_generation", "year_inducted", "stealth_rating", "ew_capability",
	"max_speed_kmph", "range_km", "max_altitude_m", "reliability",
	"cost_million_usd", "threat_level", "payload_kg", "system_type_enc",
}

var sideFeatureNames = []string{
	"avg_threat", "avg_tech_gen", "modern_pct", "avg_stealth", "avg_ew",
	"fighter_count", "sam_count", "uav_count", "military_budget",
	"aircraft_count", "zone",
}

// WarFeatureNames are the model-2/model-3 columns in order.
var WarFeatureNames = func() []string {
	names := make([]string, 0, 26)
	for _, n := range sideFeatureNames {
		names = append(names, "att_"+n)
	}
	for _, n := range sideFeatureNames {
		names = append(names, "dfn_"+n)
	}
	return append(names, "threat_ratio", "tech_ratio", "number_ratio", "budget_ratio")
}()

// WarFeatureCount is the width of a war feature vector.
const WarFeatureCount = 26

// SystemFeatureCount is the width of a system feature vector.
const SystemFeatureCount = 12

// Side builds the per-side block for a country.
func Side(fs *models.ForceSummary, c *models.Country) (models.SideFeatures, error) {
	zone, err := ZoneCode(c.RiskZone)
	if err != nil {
		return models.SideFeatures{}, err
	}
	return models.SideFeatures{
		AvgThreat:      fs.AvgThreatLevel,
		AvgTechGen:     fs.AvgTechGen,
		ModernPct:      fs.ModernPct,
		AvgStealth:     fs.AvgStealth,
		AvgEW:          fs.AvgEW,
		FighterCount:   fs.FighterCount,
		SAMCount:       fs.SAMCount,
		UAVCount:       fs.UAVCount,
		MilitaryBudget: c.MilitaryBudgetBillionUSD,
		AircraftCount:  float64(c.CombatAircraftCount),
		Zone:           zone,
	}, nil
}

func appendSide(dst []float64, s *models.SideFeatures) []float64 {
	return append(dst,
		s.AvgThreat, s.AvgTechGen, s.ModernPct, s.AvgStealth, s.AvgEW,
		float64(s.FighterCount), float64(s.SAMCount), float64(s.UAVCount),
		s.MilitaryBudget, s.AircraftCount, float64(s.Zone),
	)
}

// WarVector lays out the 26 war features.
func WarVector(att, dfn *models.SideFeatures, r models.Ratios) []float64 {
	v := make([]float64, 0, WarFeatureCount)
	v = appendSide(v, att)
	v = appendSide(v, dfn)
	return append(v, r.Threat, r.Tech, r.Number, r.Budget)
}

// ScenarioVector is WarVector for a stored scenario row.
func ScenarioVector(sc *models.Scenario) []float64 {
	return WarVector(&sc.Att, &sc.Dfn, sc.Ratios)
}

// SystemVector lays out the 12 system features. typeEnc is the label
// encoding of the system type.
func SystemVector(s *models.System, typeEnc int) []float64 {
	return []float64{
		s.TechGeneration,
		float64(s.YearInducted),
		s.StealthRating,
		s.EWCapability,
		s.MaxSpeedKmph,
		s.RangeKm,
		s.MaxAltitudeM,
		s.Reliability,
		s.CostMillionUSD,
		s.ThreatLevel,
		s.PayloadKg,
		float64(typeEnc),
	}
}
