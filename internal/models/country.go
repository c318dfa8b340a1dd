// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

// ReferenceCountry is the nation risk zones are expressed relative to.
const ReferenceCountry = "India"

// Country is a country profile row from countries_profiles.csv.
type Country struct {
	Country                  string  `json:"country" yaml:"country"`
	ISOCode                  string  `json:"iso_code" yaml:"iso_code"`
	RiskZone                 Zone    `json:"risk_zone" yaml:"risk_zone"`
	RiskScore                int     `json:"risk_score" yaml:"risk_score"`
	FlagURL                  string  `json:"flag_url" yaml:"flag_url"`
	GDPBillionUSD            float64 `json:"gdp_billion_usd" yaml:"gdp_billion_usd"`
	MilitaryBudgetBillionUSD float64 `json:"military_budget_billion_usd" yaml:"military_budget_billion_usd"`
	ActivePersonnel          int64   `json:"active_personnel" yaml:"active_personnel"`
	CombatAircraftCount      int     `json:"combat_aircraft_count" yaml:"combat_aircraft_count"`
	RelationWithIndia        string  `json:"relation_with_india" yaml:"relation_with_india"`
	KeyConflicts             string  `json:"key_conflicts" yaml:"key_conflicts"`
	GeopoliticalStance       string  `json:"geopolitical_stance" yaml:"geopolitical_stance"`
	NuclearCapable           bool    `json:"nuclear_capable" yaml:"nuclear_capable"`
	Alliance                 string  `json:"alliance" yaml:"alliance"`
}

// Coordinates is a map anchor for a country.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// countryCoordinates anchors each seed country on the world map.
var countryCoordinates = map[string]Coordinates{
	"India":          {Lat: 20.59, Lng: 78.96},
	"USA":            {Lat: 37.09, Lng: -95.71},
	"Russia":         {Lat: 61.52, Lng: 105.31},
	"China":          {Lat: 35.86, Lng: 104.19},
	"Pakistan":       {Lat: 30.37, Lng: 69.34},
	"North Korea":    {Lat: 40.33, Lng: 127.51},
	"France":         {Lat: 46.22, Lng: 2.21},
	"United Kingdom": {Lat: 55.37, Lng: -3.43},
	"Israel":         {Lat: 31.04, Lng: 34.85},
	"Japan":          {Lat: 36.20, Lng: 138.25},
	"Australia":      {Lat: -25.27, Lng: 133.77},
	"Iran":           {Lat: 32.42, Lng: 53.68},
	"Turkey":         {Lat: 38.96, Lng: 35.24},
	"Saudi Arabia":   {Lat: 23.88, Lng: 45.07},
}

// CoordinatesFor returns the map anchor for a country, or the origin when
// the country has none.
func CoordinatesFor(country string) Coordinates {
	return countryCoordinates[country]
}
