// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package analytics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomtom215/airdefence/internal/models"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func testCountry(name string, zone models.Zone, budget float64) models.Country {
	return models.Country{
		Country:                  name,
		ISOCode:                  name[:2],
		RiskZone:                 zone,
		RiskScore:                5,
		FlagURL:                  "https://flags.example/" + name + ".png",
		MilitaryBudgetBillionUSD: budget,
		ActivePersonnel:          1_000_000,
		CombatAircraftCount:      600,
		RelationWithIndia:        "Self",
		KeyConflicts:             "None",
		GeopoliticalStance:       "Non-aligned",
		Alliance:                 "None",
	}
}

func testSystems() []models.System {
	return []models.System{
		{SystemID: "ADS_001", Country: "India", SystemName: "Alpha", SystemType: models.TypeFighterAircraft,
			Classification: models.ClassModern, ThreatLevel: 8, TechGeneration: 4.5, StealthRating: 4, EWCapability: 7, Reliability: 90},
		{SystemID: "ADS_002", Country: "India", SystemName: "Bravo", SystemType: models.TypeSAMSystem,
			Classification: models.ClassTraditional, ThreatLevel: 6, TechGeneration: 3.5, StealthRating: 2, EWCapability: 5, Reliability: 80},
		{SystemID: "ADS_003", Country: "India", SystemName: "Charlie", SystemType: models.TypeRadarSystem,
			Classification: models.ClassModern, ThreatLevel: 8, TechGeneration: 5, StealthRating: 3, EWCapability: 6, Reliability: 85},
		{SystemID: "ADS_004", Country: "Pakistan", SystemName: "Delta", SystemType: models.TypeFighterAircraft,
			Classification: models.ClassModern, ThreatLevel: 9, TechGeneration: 5, StealthRating: 5, EWCapability: 8, Reliability: 88},
	}
}

func indiaSystems() []models.System {
	return testSystems()[:3]
}

func TestRadarChart(t *testing.T) {
	t.Parallel()

	fs := models.ForceSummary{
		TotalSystems:   3,
		ModernPct:      66.7,
		AvgThreatLevel: 7.33,
		AvgStealth:     3,
		AvgEW:          6,
		AvgTechGen:     4.33,
		AvgReliability: 85,
	}
	want := map[string]float64{
		MetricTechGeneration: 72.2,
		MetricThreatLevel:    73.3,
		MetricStealth:        30,
		MetricEWCapability:   60,
		MetricReliability:    85,
		MetricModernity:      66.7,
	}
	if diff := cmp.Diff(want, RadarChart(&fs), approx); diff != "" {
		t.Errorf("RadarChart() mismatch (-want +got):\n%s", diff)
	}
	if len(RadarMetrics) != len(want) {
		t.Errorf("RadarMetrics has %d entries, want %d", len(RadarMetrics), len(want))
	}
}

func TestStrengthScore(t *testing.T) {
	t.Parallel()

	fs := models.ForceSummary{AvgThreatLevel: 7.33, ModernPct: 66.7, AvgTechGen: 4.33}
	tests := []struct {
		name   string
		budget float64
		want   float64
	}{
		{"under cap", 80, 62.1},
		{"budget capped at 300", 500, 76.8},
		{"zero budget", 0, 56.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StrengthScore(&fs, tt.budget); got != tt.want {
				t.Errorf("StrengthScore() = %v, want %v", got, tt.want)
			}
		})
	}

	var empty models.ForceSummary
	if got := StrengthScore(&empty, 0); got != 0 {
		t.Errorf("StrengthScore(empty) = %v, want 0", got)
	}
}

func TestTopSystems(t *testing.T) {
	t.Parallel()

	top := TopSystems(testSystems(), 3)
	var names []string
	for _, s := range top {
		names = append(names, s.SystemName)
	}
	// Alpha and Charlie tie on threat; dataset order wins.
	if diff := cmp.Diff([]string{"Delta", "Alpha", "Charlie"}, names); diff != "" {
		t.Errorf("TopSystems() order (-want +got):\n%s", diff)
	}

	if got := TopSystems(indiaSystems()[:1], 3); len(got) != 1 {
		t.Errorf("TopSystems() on one system returned %d", len(got))
	}
	if got := TopSystems(nil, 3); len(got) != 0 {
		t.Errorf("TopSystems(nil) returned %d", len(got))
	}
}

func TestBreakdown(t *testing.T) {
	t.Parallel()

	want := models.SystemsBreakdown{
		ByClassification: map[string]int{models.ClassModern: 2, models.ClassTraditional: 1},
		ByType: map[string]int{
			models.TypeFighterAircraft: 1,
			models.TypeSAMSystem:       1,
			models.TypeRadarSystem:     1,
		},
	}
	if diff := cmp.Diff(want, Breakdown(indiaSystems())); diff != "" {
		t.Errorf("Breakdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestCountryDetail(t *testing.T) {
	t.Parallel()

	india := testCountry("India", models.ZoneGreen, 80)
	detail := CountryDetail(&india, indiaSystems())

	if detail.ZoneColor != models.ZoneGreen.Color() {
		t.Errorf("ZoneColor = %q", detail.ZoneColor)
	}
	if detail.Lat == 0 || detail.Lng == 0 {
		t.Errorf("coordinates not filled: %v,%v", detail.Lat, detail.Lng)
	}
	if detail.ForceSummary.TotalSystems != 3 || len(detail.Systems) != 3 {
		t.Errorf("force summary %d systems, list %d", detail.ForceSummary.TotalSystems, len(detail.Systems))
	}
	if detail.Systems[1].SystemName != "Bravo" {
		t.Errorf("systems not in dataset order: %+v", detail.Systems)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	india := testCountry("India", models.ZoneGreen, 80)
	pakistan := testCountry("Pakistan", models.ZoneRed, 10)
	all := testSystems()

	s1 := CompareSide(&india, all[:3], models.ScenarioStats{WinsAsAttacker: 4, Stalemates: 1})
	s2 := CompareSide(&pakistan, all[3:], models.ScenarioStats{LossesAsDefender: 2})
	got := Compare("india", "PAKISTAN", &s1, &s2)

	if got.Country1.Country != "India" || got.Country2.ZoneColor != models.ZoneRed.Color() {
		t.Errorf("sides = %q / %q", got.Country1.Country, got.Country2.ZoneColor)
	}
	if got.Country1.ScenarioStats.WinsAsAttacker != 4 {
		t.Errorf("scenario stats not carried: %+v", got.Country1.ScenarioStats)
	}
	if n := len(got.Country1.SystemsByType[models.TypeFighterAircraft]); n != 1 {
		t.Errorf("India fighters = %d, want 1", n)
	}

	if len(got.ComparisonChart) != len(RadarMetrics) {
		t.Fatalf("comparison_chart has %d rows", len(got.ComparisonChart))
	}
	first := got.ComparisonChart[0]
	if first["metric"] != MetricTechGeneration {
		t.Errorf("first metric = %v", first["metric"])
	}
	if first["india"] != s1.RadarChartData[MetricTechGeneration] || first["PAKISTAN"] != s2.RadarChartData[MetricTechGeneration] {
		t.Errorf("comparison row keyed by requested names = %v", first)
	}

	wantTypes := []models.ChartRow{
		{"type": "Fighter Aircraft", "india": 1, "PAKISTAN": 1},
		{"type": "SAM System", "india": 1, "PAKISTAN": 0},
		{"type": "UAV Drone", "india": 0, "PAKISTAN": 0},
		{"type": "Helicopter", "india": 0, "PAKISTAN": 0},
		{"type": "Radar System", "india": 1, "PAKISTAN": 0},
		{"type": "Interceptor Missile", "india": 0, "PAKISTAN": 0},
	}
	if diff := cmp.Diff(wantTypes, got.TypeCountChart); diff != "" {
		t.Errorf("type_count_chart mismatch (-want +got):\n%s", diff)
	}
}

func TestMapZones(t *testing.T) {
	t.Parallel()

	countries := []models.Country{
		testCountry("India", models.ZoneGreen, 80),
		testCountry("Pakistan", models.ZoneRed, 10),
		testCountry("China", models.ZoneRed, 230),
	}
	got := MapZones(countries, testSystems())

	if got.ReferenceCountry != "India" {
		t.Errorf("ReferenceCountry = %q", got.ReferenceCountry)
	}
	wantCounts := map[models.Zone]int{models.ZoneRed: 2, models.ZoneYellow: 0, models.ZoneGreen: 1}
	if diff := cmp.Diff(wantCounts, got.ZoneCounts); diff != "" {
		t.Errorf("zone_counts mismatch (-want +got):\n%s", diff)
	}
	if got.ZoneLegend[models.ZoneYellow] != "Neutral / Moderate Risk" {
		t.Errorf("zone_legend = %v", got.ZoneLegend)
	}
	if len(got.Countries) != 3 {
		t.Fatalf("countries = %d", len(got.Countries))
	}
	if got.Countries[1].AvgThreatLevel != 9 || got.Countries[1].ModernPct != 100 {
		t.Errorf("Pakistan row = %+v", got.Countries[1])
	}
	if got.Countries[2].AvgThreatLevel != 0 {
		t.Errorf("country without systems should have zero averages: %+v", got.Countries[2])
	}
}

func TestInsights(t *testing.T) {
	t.Parallel()

	india := testCountry("India", models.ZoneGreen, 80)
	history := models.ScenarioHistory{WinsAsAttacker: 2, TotalSimulated: 3, AvgWinProbabilityWhenAttacking: 0.6}
	got := Insights(&india, indiaSystems(), history)

	if got.StrengthScore != 62.1 {
		t.Errorf("StrengthScore = %v, want 62.1", got.StrengthScore)
	}
	if len(got.Top3Systems) != 3 || got.Top3Systems[0].SystemName != "Alpha" {
		t.Errorf("Top3Systems = %+v", got.Top3Systems)
	}
	if got.ScenarioHistory != history {
		t.Errorf("ScenarioHistory = %+v", got.ScenarioHistory)
	}
	if got.SystemsBreakdown.ByType[models.TypeSAMSystem] != 1 {
		t.Errorf("SystemsBreakdown = %+v", got.SystemsBreakdown)
	}
}
