// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

import "testing"

func TestParseZone(t *testing.T) {
	tests := []struct {
		in   string
		want Zone
		ok   bool
	}{
		{"Red", ZoneRed, true},
		{"yellow", ZoneYellow, true},
		{" GREEN ", ZoneGreen, true},
		{"Purple", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseZone(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseZone(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestZone_ColorAndLegend(t *testing.T) {
	for _, z := range Zones {
		if !z.Valid() || z.Color() == "" || z.Legend() == "" {
			t.Errorf("zone %q: valid=%v color=%q legend=%q", z, z.Valid(), z.Color(), z.Legend())
		}
	}
	if Zone("Blue").Valid() || Zone("Blue").Color() != "" {
		t.Error("unknown zone should be invalid with no colour")
	}
}

func TestForceSummary_TypeCount(t *testing.T) {
	var empty ForceSummary
	if !empty.Empty() {
		t.Error("zero summary should be empty")
	}

	fs := ForceSummary{TotalSystems: 6, FighterCount: 1, SAMCount: 2, UAVCount: 3}
	if fs.Empty() {
		t.Error("summary with systems reported empty")
	}
	want := map[string]int{TypeFighterAircraft: 1, TypeSAMSystem: 2, TypeUAVDrone: 3, TypeHelicopter: 0, "Balloon": 0}
	for typ, n := range want {
		if got := fs.TypeCount(typ); got != n {
			t.Errorf("TypeCount(%s) = %d, want %d", typ, got, n)
		}
	}
}

func TestSystem_Summary(t *testing.T) {
	sys := System{SystemID: "RUS_001", SystemName: "S-400 Triumf (Russia)", Classification: ClassModern, ThreatLevel: 9.5}
	if !sys.IsModern() {
		t.Error("IsModern() = false for a Modern system")
	}
	s := sys.Summary()
	if s.SystemID != sys.SystemID || s.SystemName != sys.SystemName || s.ThreatLevel != sys.ThreatLevel {
		t.Errorf("Summary() = %+v", s)
	}
}

func TestRatios_Sum(t *testing.T) {
	if got := (Ratios{Threat: 1, Tech: 0.5, Number: 2, Budget: 0.25}).Sum(); got != 3.75 {
		t.Errorf("Sum() = %v, want 3.75", got)
	}
	if (CoordinatesFor("Atlantis") != Coordinates{}) {
		t.Error("unknown country should map to the origin")
	}
}
