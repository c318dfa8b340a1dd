// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

// Overview is the landing dashboard summary across all reference tables.
type Overview struct {
	TotalCountries     int               `json:"total_countries"`
	TotalSystems       int               `json:"total_systems"`
	ModernSystems      int               `json:"modern_systems"`
	TraditionalSystems int               `json:"traditional_systems"`
	TotalScenarios     int               `json:"total_scenarios"`
	RiskZoneCounts     map[string]int    `json:"risk_zone_counts"`
	SystemTypeCounts   map[string]int    `json:"system_type_counts"`
	TopThreatSystems   []TopThreatSystem `json:"top_threat_systems"`
	CountriesList      []string          `json:"countries_list"`
}

// TopThreatSystem is one entry of the dashboard threat leaderboard.
type TopThreatSystem struct {
	SystemName     string  `json:"system_name"`
	Country        string  `json:"country"`
	ThreatLevel    float64 `json:"threat_level"`
	Classification string  `json:"classification"`
	ImageURL       string  `json:"image_url"`
}

// CountryName is the lightweight country autocomplete projection.
type CountryName struct {
	Country  string `json:"country"`
	ISOCode  string `json:"iso_code"`
	RiskZone Zone   `json:"risk_zone"`
	FlagURL  string `json:"flag_url"`
}

// HealthStatus is the root endpoint body.
type HealthStatus struct {
	Status    string   `json:"status"`
	Project   string   `json:"project"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// ReadinessStatus reports the dependencies the API needs to serve traffic.
type ReadinessStatus struct {
	Ready         bool   `json:"ready"`
	Database      bool   `json:"database"`
	ModelsLoaded  bool   `json:"models_loaded"`
	BundleVersion int    `json:"bundle_version"`
	DatabaseError string `json:"database_error,omitempty"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}
