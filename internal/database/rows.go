// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package database

import (
	"database/sql"

	"github.com/tomtom215/airdefence/internal/models"
)

// Row mappers. Each pair lists fields in the column order of its table.

func countryValues(c *models.Country) []interface{} {
	return []interface{}{
		c.Country, c.ISOCode, string(c.RiskZone), c.RiskScore, c.FlagURL,
		c.GDPBillionUSD, c.MilitaryBudgetBillionUSD, c.ActivePersonnel,
		c.CombatAircraftCount, c.RelationWithIndia, c.KeyConflicts,
		c.GeopoliticalStance, c.NuclearCapable, c.Alliance,
	}
}

func scanCountry(rows *sql.Rows) (models.Country, error) {
	var c models.Country
	var zone string
	err := rows.Scan(
		&c.Country, &c.ISOCode, &zone, &c.RiskScore, &c.FlagURL,
		&c.GDPBillionUSD, &c.MilitaryBudgetBillionUSD, &c.ActivePersonnel,
		&c.CombatAircraftCount, &c.RelationWithIndia, &c.KeyConflicts,
		&c.GeopoliticalStance, &c.NuclearCapable, &c.Alliance,
	)
	c.RiskZone = models.Zone(zone)
	return c, err
}

func systemValues(s *models.System) []interface{} {
	return []interface{}{
		s.Country, s.SystemName, s.SystemType, s.Classification,
		s.YearInducted, s.TechGeneration, s.MaxSpeedKmph, s.RangeKm,
		s.MaxAltitudeM, s.StealthRating, s.EWCapability, s.PayloadKg,
		s.Reliability, s.CostMillionUSD, s.ThreatLevel, s.OperationalStatus,
		s.CombatProven, s.Description, s.ImageURL, s.WikipediaURL,
		s.FuelEfficiency, s.ExportAvailable, s.SystemID,
	}
}

func scanSystem(rows *sql.Rows) (models.System, error) {
	var s models.System
	err := rows.Scan(
		&s.Country, &s.SystemName, &s.SystemType, &s.Classification,
		&s.YearInducted, &s.TechGeneration, &s.MaxSpeedKmph, &s.RangeKm,
		&s.MaxAltitudeM, &s.StealthRating, &s.EWCapability, &s.PayloadKg,
		&s.Reliability, &s.CostMillionUSD, &s.ThreatLevel, &s.OperationalStatus,
		&s.CombatProven, &s.Description, &s.ImageURL, &s.WikipediaURL,
		&s.FuelEfficiency, &s.ExportAvailable, &s.SystemID,
	)
	return s, err
}

func sideValues(f *models.SideFeatures) []interface{} {
	return []interface{}{
		f.AvgThreat, f.AvgTechGen, f.ModernPct, f.AvgStealth, f.AvgEW,
		f.FighterCount, f.SAMCount, f.UAVCount, f.MilitaryBudget,
		f.AircraftCount, f.Zone,
	}
}

func sideDest(f *models.SideFeatures) []interface{} {
	return []interface{}{
		&f.AvgThreat, &f.AvgTechGen, &f.ModernPct, &f.AvgStealth, &f.AvgEW,
		&f.FighterCount, &f.SAMCount, &f.UAVCount, &f.MilitaryBudget,
		&f.AircraftCount, &f.Zone,
	}
}

func scenarioValues(sc *models.Scenario) []interface{} {
	v := make([]interface{}, 0, len(scenariosTable.columns))
	v = append(v, sc.ScenarioID, sc.Attacker, sc.Defender)
	v = append(v, sideValues(&sc.Att)...)
	v = append(v, sideValues(&sc.Dfn)...)
	return append(v,
		sc.Ratios.Threat, sc.Ratios.Tech, sc.Ratios.Number, sc.Ratios.Budget,
		sc.Outcome, sc.AttackerWinProbability,
	)
}

func scanScenario(rows *sql.Rows) (models.Scenario, error) {
	var sc models.Scenario
	dest := make([]interface{}, 0, len(scenariosTable.columns))
	dest = append(dest, &sc.ScenarioID, &sc.Attacker, &sc.Defender)
	dest = append(dest, sideDest(&sc.Att)...)
	dest = append(dest, sideDest(&sc.Dfn)...)
	dest = append(dest,
		&sc.Ratios.Threat, &sc.Ratios.Tech, &sc.Ratios.Number, &sc.Ratios.Budget,
		&sc.Outcome, &sc.AttackerWinProbability,
	)
	err := rows.Scan(dest...)
	return sc, err
}
