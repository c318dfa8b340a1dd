// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/airdefence/internal/features"
	"github.com/tomtom215/airdefence/internal/models"
)

// Radar chart metric names, in chart order.
const (
	MetricTechGeneration = "Tech Generation"
	MetricThreatLevel    = "Threat Level"
	MetricStealth        = "Stealth"
	MetricEWCapability   = "EW Capability"
	MetricReliability    = "Reliability"
	MetricModernity      = "Modernity"
)

// RadarMetrics lists the radar chart metrics in display order.
var RadarMetrics = []string{
	MetricTechGeneration,
	MetricThreatLevel,
	MetricStealth,
	MetricEWCapability,
	MetricReliability,
	MetricModernity,
}

const (
	maxTechGeneration = 6
	maxRating         = 10
	budgetCap         = 300
	topSystemsCount   = 3
)

// RadarChart normalizes a force summary onto the radar chart scale.
func RadarChart(fs *models.ForceSummary) map[string]float64 {
	return map[string]float64{
		MetricTechGeneration: features.Round(fs.AvgTechGen/maxTechGeneration*100, 1),
		MetricThreatLevel:    features.Round(fs.AvgThreatLevel/maxRating*100, 1),
		MetricStealth:        features.Round(fs.AvgStealth/maxRating*100, 1),
		MetricEWCapability:   features.Round(fs.AvgEW/maxRating*100, 1),
		MetricReliability:    fs.AvgReliability,
		MetricModernity:      fs.ModernPct,
	}
}

// StrengthScore rates a country on a 0-100 scale for the insights gauge.
func StrengthScore(fs *models.ForceSummary, budgetBillionUSD float64) float64 {
	score := fs.AvgThreatLevel/maxRating*35 +
		fs.ModernPct/100*25 +
		fs.AvgTechGen/maxTechGeneration*20 +
		math.Min(budgetBillionUSD, budgetCap)/budgetCap*20
	return features.Round(score, 1)
}

// CountryItem renders a country for the listing endpoint.
func CountryItem(c *models.Country) models.CountryListItem {
	coords := models.CoordinatesFor(c.Country)
	return models.CountryListItem{
		Country:                  c.Country,
		ISOCode:                  c.ISOCode,
		RiskZone:                 c.RiskZone,
		RiskScore:                c.RiskScore,
		ZoneColor:                c.RiskZone.Color(),
		FlagURL:                  c.FlagURL,
		Lat:                      coords.Lat,
		Lng:                      coords.Lng,
		GDPBillionUSD:            c.GDPBillionUSD,
		MilitaryBudgetBillionUSD: c.MilitaryBudgetBillionUSD,
		ActivePersonnel:          c.ActivePersonnel,
		CombatAircraftCount:      c.CombatAircraftCount,
		NuclearCapable:           c.NuclearCapable,
		RelationWithIndia:        c.RelationWithIndia,
	}
}

// CountryDetail renders the full profile of c. systems must belong to c.
func CountryDetail(c *models.Country, systems []models.System) models.CountryDetail {
	coords := models.CoordinatesFor(c.Country)
	summaries := make([]models.SystemSummary, len(systems))
	for i := range systems {
		summaries[i] = systems[i].Summary()
	}
	return models.CountryDetail{
		Country:      *c,
		Lat:          coords.Lat,
		Lng:          coords.Lng,
		ZoneColor:    c.RiskZone.Color(),
		ForceSummary: features.Summarize(c.Country, systems),
		Systems:      summaries,
	}
}

// Card renders a system for a comparison card.
func Card(s *models.System) models.SystemCard {
	return models.SystemCard{
		SystemID:          s.SystemID,
		SystemName:        s.SystemName,
		Classification:    s.Classification,
		YearInducted:      s.YearInducted,
		ThreatLevel:       s.ThreatLevel,
		StealthRating:     s.StealthRating,
		EWCapability:      s.EWCapability,
		MaxSpeedKmph:      s.MaxSpeedKmph,
		RangeKm:           s.RangeKm,
		Reliability:       s.Reliability,
		CostMillionUSD:    s.CostMillionUSD,
		ImageURL:          s.ImageURL,
		WikipediaURL:      s.WikipediaURL,
		Description:       s.Description,
		CombatProven:      s.CombatProven,
		OperationalStatus: s.OperationalStatus,
	}
}

// GroupByType groups systems into cards keyed by system type, keeping
// dataset order within each group.
func GroupByType(systems []models.System) map[string][]models.SystemCard {
	groups := make(map[string][]models.SystemCard)
	for i := range systems {
		t := systems[i].SystemType
		groups[t] = append(groups[t], Card(&systems[i]))
	}
	return groups
}

// CompareSide renders one side of a comparison.
func CompareSide(c *models.Country, systems []models.System, stats models.ScenarioStats) models.CompareSide {
	coords := models.CoordinatesFor(c.Country)
	fs := features.Summarize(c.Country, systems)
	return models.CompareSide{
		Country:                  c.Country,
		ISOCode:                  c.ISOCode,
		FlagURL:                  c.FlagURL,
		RiskZone:                 c.RiskZone,
		RiskScore:                c.RiskScore,
		ZoneColor:                c.RiskZone.Color(),
		Lat:                      coords.Lat,
		Lng:                      coords.Lng,
		GDPBillionUSD:            c.GDPBillionUSD,
		MilitaryBudgetBillionUSD: c.MilitaryBudgetBillionUSD,
		ActivePersonnel:          c.ActivePersonnel,
		CombatAircraftCount:      c.CombatAircraftCount,
		NuclearCapable:           c.NuclearCapable,
		Alliance:                 c.Alliance,
		KeyConflicts:             c.KeyConflicts,
		RelationWithIndia:        c.RelationWithIndia,
		ForceSummary:             fs,
		RadarChartData:           RadarChart(&fs),
		SystemsByType:            GroupByType(systems),
		ScenarioStats:            stats,
	}
}

// Compare assembles a comparison. name1 and name2 are the names as
// requested; they key the chart series.
func Compare(name1, name2 string, side1, side2 *models.CompareSide) models.CompareResult {
	comparison := make([]models.ChartRow, 0, len(RadarMetrics))
	for _, m := range RadarMetrics {
		comparison = append(comparison, models.ChartRow{
			"metric": m,
			name1:    side1.RadarChartData[m],
			name2:    side2.RadarChartData[m],
		})
	}

	types := make([]models.ChartRow, 0, len(models.SystemTypes))
	for _, t := range models.SystemTypes {
		types = append(types, models.ChartRow{
			"type": strings.ReplaceAll(t, "_", " "),
			name1:  side1.ForceSummary.TypeCount(t),
			name2:  side2.ForceSummary.TypeCount(t),
		})
	}

	return models.CompareResult{
		Country1:        *side1,
		Country2:        *side2,
		ComparisonChart: comparison,
		TypeCountChart:  types,
	}
}

// MapZones renders every country on the zone map. systems may hold the
// systems of all countries.
func MapZones(countries []models.Country, systems []models.System) models.MapZones {
	legend := make(map[models.Zone]string, len(models.Zones))
	counts := make(map[models.Zone]int, len(models.Zones))
	for _, z := range models.Zones {
		legend[z] = z.Legend()
		counts[z] = 0
	}

	rows := make([]models.MapCountry, 0, len(countries))
	for i := range countries {
		c := &countries[i]
		coords := models.CoordinatesFor(c.Country)
		fs := features.Summarize(c.Country, systems)
		if _, ok := counts[c.RiskZone]; ok {
			counts[c.RiskZone]++
		}
		rows = append(rows, models.MapCountry{
			Country:                  c.Country,
			ISOCode:                  c.ISOCode,
			RiskZone:                 c.RiskZone,
			RiskScore:                c.RiskScore,
			ZoneColor:                c.RiskZone.Color(),
			FlagURL:                  c.FlagURL,
			Lat:                      coords.Lat,
			Lng:                      coords.Lng,
			NuclearCapable:           c.NuclearCapable,
			MilitaryBudgetBillionUSD: c.MilitaryBudgetBillionUSD,
			CombatAircraftCount:      c.CombatAircraftCount,
			AvgThreatLevel:           fs.AvgThreatLevel,
			ModernPct:                fs.ModernPct,
			RelationWithIndia:        c.RelationWithIndia,
		})
	}

	return models.MapZones{
		ReferenceCountry: models.ReferenceCountry,
		ZoneLegend:       legend,
		ZoneCounts:       counts,
		Countries:        rows,
	}
}

// TopSystems returns the n highest-threat systems. Ties keep dataset order.
func TopSystems(systems []models.System, n int) []models.TopSystem {
	idx := make([]int, len(systems))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return systems[idx[a]].ThreatLevel > systems[idx[b]].ThreatLevel
	})
	if len(idx) > n {
		idx = idx[:n]
	}

	top := make([]models.TopSystem, len(idx))
	for i, j := range idx {
		s := &systems[j]
		top[i] = models.TopSystem{
			SystemName:     s.SystemName,
			SystemType:     s.SystemType,
			ThreatLevel:    s.ThreatLevel,
			Classification: s.Classification,
			ImageURL:       s.ImageURL,
			Description:    s.Description,
		}
	}
	return top
}

// Breakdown counts systems by classification and by type.
func Breakdown(systems []models.System) models.SystemsBreakdown {
	b := models.SystemsBreakdown{
		ByClassification: make(map[string]int),
		ByType:           make(map[string]int),
	}
	for i := range systems {
		b.ByClassification[systems[i].Classification]++
		b.ByType[systems[i].SystemType]++
	}
	return b
}

// Insights renders the map click-through view of c.
func Insights(c *models.Country, systems []models.System, history models.ScenarioHistory) models.CountryInsights {
	fs := features.Summarize(c.Country, systems)
	return models.CountryInsights{
		Country:                  c.Country,
		FlagURL:                  c.FlagURL,
		ISOCode:                  c.ISOCode,
		RiskZone:                 c.RiskZone,
		ZoneColor:                c.RiskZone.Color(),
		RiskScore:                c.RiskScore,
		RelationWithIndia:        c.RelationWithIndia,
		KeyConflicts:             c.KeyConflicts,
		GeopoliticalStance:       c.GeopoliticalStance,
		NuclearCapable:           c.NuclearCapable,
		Alliance:                 c.Alliance,
		MilitaryBudgetBillionUSD: c.MilitaryBudgetBillionUSD,
		ActivePersonnel:          c.ActivePersonnel,
		CombatAircraftCount:      c.CombatAircraftCount,
		ForceSummary:             fs,
		StrengthScore:            StrengthScore(&fs, c.MilitaryBudgetBillionUSD),
		Top3Systems:              TopSystems(systems, topSystemsCount),
		ScenarioHistory:          history,
		SystemsBreakdown:         Breakdown(systems),
	}
}
