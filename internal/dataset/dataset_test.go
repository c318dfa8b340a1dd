// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/airdefence/internal/models"
)

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed()
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}

	if got := len(seed.Countries); got != 14 {
		t.Errorf("countries = %d, want 14", got)
	}
	if got := len(seed.Systems); got != 82 {
		t.Errorf("systems = %d, want 82", got)
	}
	if seed.Countries[0].Country != "China" {
		t.Errorf("first country = %q, want China", seed.Countries[0].Country)
	}

	byType := map[string]int{}
	for _, s := range seed.Systems {
		byType[s.SystemType]++
	}
	want := map[string]int{
		models.TypeFighterAircraft:    46,
		models.TypeSAMSystem:          20,
		models.TypeUAVDrone:           9,
		models.TypeHelicopter:         5,
		models.TypeRadarSystem:        1,
		models.TypeInterceptorMissile: 1,
	}
	if diff := cmp.Diff(want, byType); diff != "" {
		t.Errorf("system type counts mismatch (-want +got):\n%s", diff)
	}

	// Legacy systems follow the current ones.
	last := seed.Systems[len(seed.Systems)-1]
	if last.Classification != models.ClassTraditional {
		t.Errorf("last system classification = %q, want Traditional", last.Classification)
	}
}

func TestParseSeed_RejectsUnknownZone(t *testing.T) {
	countries := []byte("countries:\n- country: Atlantis\n  risk_zone: Purple\n")
	if _, err := ParseSeed(countries, []byte("systems: []\n")); err == nil {
		t.Fatal("ParseSeed() expected error for unknown zone")
	}
}

func TestParseSeed_Malformed(t *testing.T) {
	if _, err := ParseSeed([]byte("countries: [\n"), nil); err == nil {
		t.Fatal("ParseSeed() expected decode error")
	}
}

func TestEnrich(t *testing.T) {
	seed, err := LoadSeed()
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}

	a := Enrich(seed.Systems, DefaultSeed)
	b := Enrich(seed.Systems, DefaultSeed)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("Enrich() not deterministic (-a +b):\n%s", diff)
	}

	if seed.Systems[0].SystemID != "" {
		t.Error("Enrich() mutated its input")
	}

	for i, s := range a {
		if s.SystemID != SystemID(i) {
			t.Errorf("row %d system_id = %q, want %q", i, s.SystemID, SystemID(i))
		}
		lo, hi := 0.2, 0.8
		if s.IsModern() {
			lo, hi = 0.5, 2.0
		}
		if s.FuelEfficiency < lo || s.FuelEfficiency > hi {
			t.Errorf("%s fuel_efficiency = %v, want in [%v, %v]", s.SystemName, s.FuelEfficiency, lo, hi)
		}
		if s.ExportAvailable != "Yes" && s.ExportAvailable != "No" {
			t.Errorf("%s export_available = %q", s.SystemName, s.ExportAvailable)
		}
	}

	if a[0].SystemID != "ADS_001" || a[81].SystemID != "ADS_082" {
		t.Errorf("ids = %s..%s, want ADS_001..ADS_082", a[0].SystemID, a[81].SystemID)
	}
}

func TestEnrich_SeedChangesDraws(t *testing.T) {
	seed, err := LoadSeed()
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	a := Enrich(seed.Systems, 1)
	b := Enrich(seed.Systems, 2)
	same := true
	for i := range a {
		if a[i].FuelEfficiency != b[i].FuelEfficiency {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical fuel efficiency columns")
	}
}
