// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package features

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/airdefence/internal/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testSystems() []models.System {
	return []models.System{
		{Country: "Alpha", SystemType: models.TypeFighterAircraft, Classification: models.ClassModern,
			ThreatLevel: 8, StealthRating: 4, EWCapability: 7, TechGeneration: 5, Reliability: 90, CostMillionUSD: 100, CombatProven: true},
		{Country: "Alpha", SystemType: models.TypeSAMSystem, Classification: models.ClassTraditional,
			ThreatLevel: 5, StealthRating: 0, EWCapability: 4, TechGeneration: 3, Reliability: 70, CostMillionUSD: 20},
		{Country: "Alpha", SystemType: models.TypeUAVDrone, Classification: models.ClassModern,
			ThreatLevel: 6, StealthRating: 2, EWCapability: 5, TechGeneration: 4, Reliability: 80, CostMillionUSD: 15, CombatProven: true},
		{Country: "Beta", SystemType: models.TypeHelicopter, Classification: models.ClassTraditional,
			ThreatLevel: 4, StealthRating: 1, EWCapability: 3, TechGeneration: 3, Reliability: 60, CostMillionUSD: 30},
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize("Alpha", testSystems())
	want := models.ForceSummary{
		TotalSystems:     3,
		ModernCount:      2,
		TraditionalCount: 1,
		ModernPct:        66.7,
		AvgThreatLevel:   6.33,
		AvgStealth:       2,
		AvgEW:            5.33,
		AvgTechGen:       4,
		AvgReliability:   80,
		AvgCostMUSD:      45,
		FighterCount:     1,
		SAMCount:         1,
		UAVCount:         1,
		CombatProvenPct:  66.7,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_NoSystems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		country string
		systems []models.System
	}{
		{"unknown country", "Gamma", testSystems()},
		{"empty table", "Alpha", nil},
		{"case differs", "alpha", testSystems()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.country, tt.systems)
			if got != (models.ForceSummary{}) {
				t.Errorf("Summarize(%q) = %+v, want zero value", tt.country, got)
			}
		})
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{2.675, 2, 2.67},
		{0.125, 2, 0.12},
		{0.5, 0, 0},
		{1.5, 0, 2},
		{66.66666, 1, 66.7},
		{-1.25, 1, -1.2},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestZoneCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		zone    models.Zone
		want    int
		wantErr bool
	}{
		{models.ZoneRed, 3, false},
		{models.ZoneYellow, 2, false},
		{models.ZoneGreen, 1, false},
		{"Blue", 0, true},
		{"red", 0, true},
	}
	for _, tt := range tests {
		got, err := ZoneCode(tt.zone)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ZoneCode(%q) error = %v, wantErr %v", tt.zone, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnknownZone) {
			t.Errorf("ZoneCode(%q) error = %v, want ErrUnknownZone", tt.zone, err)
		}
		if got != tt.want {
			t.Errorf("ZoneCode(%q) = %d, want %d", tt.zone, got, tt.want)
		}
	}
}

func TestComputeRatios_Floors(t *testing.T) {
	t.Parallel()

	att := models.ForceSummary{AvgThreatLevel: 5, AvgTechGen: 4}
	dfn := models.ForceSummary{}
	attC := models.Country{CombatAircraftCount: 200, MilitaryBudgetBillionUSD: 50}
	dfnC := models.Country{CombatAircraftCount: 0, MilitaryBudgetBillionUSD: 0}

	gen := ComputeRatios(&att, &dfn, &attC, &dfnC, ModeGeneration)
	if !approx(gen.Threat, 50) || !approx(gen.Tech, 40) || gen.Number != 200 || !approx(gen.Budget, 500) {
		t.Errorf("generation ratios = %+v", gen)
	}

	srv := ComputeRatios(&att, &dfn, &attC, &dfnC, ModeServing)
	if !approx(srv.Threat, 500) || !approx(srv.Tech, 400) || !approx(srv.Budget, 5000) {
		t.Errorf("serving ratios = %+v", srv)
	}

	rep := srv.Reported()
	if rep.Budget != 100 {
		t.Errorf("reported budget ratio = %v, want capped 100", rep.Budget)
	}
	if srv.Sum() <= rep.Sum() {
		t.Errorf("raw sum %v should exceed capped sum %v", srv.Sum(), rep.Sum())
	}
}

func TestWarVector(t *testing.T) {
	t.Parallel()

	systems := testSystems()
	alpha := models.Country{Country: "Alpha", RiskZone: models.ZoneRed, MilitaryBudgetBillionUSD: 30, CombatAircraftCount: 300}
	beta := models.Country{Country: "Beta", RiskZone: models.ZoneGreen, MilitaryBudgetBillionUSD: 10, CombatAircraftCount: 100}

	afs := Summarize("Alpha", systems)
	bfs := Summarize("Beta", systems)
	as, err := Side(&afs, &alpha)
	if err != nil {
		t.Fatalf("Side() error = %v", err)
	}
	bs, err := Side(&bfs, &beta)
	if err != nil {
		t.Fatalf("Side() error = %v", err)
	}
	r := ComputeRatios(&afs, &bfs, &alpha, &beta, ModeServing).Reported()

	v := WarVector(&as, &bs, r)
	if len(v) != WarFeatureCount || len(WarFeatureNames) != WarFeatureCount {
		t.Fatalf("vector len = %d, names = %d, want %d", len(v), len(WarFeatureNames), WarFeatureCount)
	}
	if v[10] != 3 || v[21] != 1 {
		t.Errorf("zone codes = %v/%v, want 3/1", v[10], v[21])
	}
	if v[22] != r.Threat || v[25] != r.Budget {
		t.Errorf("ratio tail = %v, want %+v", v[22:], r)
	}
	if WarFeatureNames[0] != "att_avg_threat" || WarFeatureNames[11] != "dfn_avg_threat" || WarFeatureNames[25] != "budget_ratio" {
		t.Errorf("unexpected feature names: %v", WarFeatureNames)
	}
}

func TestSide_UnknownZone(t *testing.T) {
	t.Parallel()

	c := models.Country{RiskZone: "Orange"}
	if _, err := Side(&models.ForceSummary{}, &c); !errors.Is(err, ErrUnknownZone) {
		t.Errorf("Side() error = %v, want ErrUnknownZone", err)
	}
}

func TestSystemVector(t *testing.T) {
	t.Parallel()

	s := models.System{TechGeneration: 4.5, YearInducted: 2002, PayloadKg: 8000, ThreatLevel: 7.8}
	v := SystemVector(&s, 2)
	if len(v) != SystemFeatureCount || len(SystemFeatureNames) != SystemFeatureCount {
		t.Fatalf("len = %d, want %d", len(v), SystemFeatureCount)
	}
	if v[0] != 4.5 || v[1] != 2002 || v[9] != 7.8 || v[10] != 8000 || v[11] != 2 {
		t.Errorf("SystemVector() = %v", v)
	}
}
