// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

// System types.
const (
	TypeFighterAircraft    = "Fighter_Aircraft"
	TypeSAMSystem          = "SAM_System"
	TypeUAVDrone           = "UAV_Drone"
	TypeHelicopter         = "Helicopter"
	TypeRadarSystem        = "Radar_System"
	TypeInterceptorMissile = "Interceptor_Missile"
)

// SystemTypes lists every system type in chart order.
var SystemTypes = []string{
	TypeFighterAircraft,
	TypeSAMSystem,
	TypeUAVDrone,
	TypeHelicopter,
	TypeRadarSystem,
	TypeInterceptorMissile,
}

// Classifications.
const (
	ClassModern      = "Modern"
	ClassTraditional = "Traditional"
)

// System is one air defence platform row from air_systems_enhanced.csv.
type System struct {
	SystemID          string  `json:"system_id" yaml:"system_id"`
	Country           string  `json:"country" yaml:"country"`
	SystemName        string  `json:"system_name" yaml:"system_name"`
	SystemType        string  `json:"system_type" yaml:"system_type"`
	Classification    string  `json:"classification" yaml:"classification"`
	YearInducted      int     `json:"year_inducted" yaml:"year_inducted"`
	TechGeneration    float64 `json:"tech_generation" yaml:"tech_generation"`
	MaxSpeedKmph      float64 `json:"max_speed_kmph" yaml:"max_speed_kmph"`
	RangeKm           float64 `json:"range_km" yaml:"range_km"`
	MaxAltitudeM      float64 `json:"max_altitude_m" yaml:"max_altitude_m"`
	StealthRating     float64 `json:"stealth_rating" yaml:"stealth_rating"`
	EWCapability      float64 `json:"ew_capability" yaml:"ew_capability"`
	PayloadKg         float64 `json:"payload_kg" yaml:"payload_kg"`
	Reliability       float64 `json:"reliability" yaml:"reliability"`
	CostMillionUSD    float64 `json:"cost_million_usd" yaml:"cost_million_usd"`
	ThreatLevel       float64 `json:"threat_level" yaml:"threat_level"`
	OperationalStatus string  `json:"operational_status" yaml:"operational_status"`
	CombatProven      bool    `json:"combat_proven" yaml:"combat_proven"`
	Description       string  `json:"description" yaml:"description"`
	ImageURL          string  `json:"image_url" yaml:"image_url"`
	WikipediaURL      string  `json:"wikipedia_url" yaml:"wikipedia_url"`
	FuelEfficiency    float64 `json:"fuel_efficiency" yaml:"fuel_efficiency"`
	ExportAvailable   string  `json:"export_available" yaml:"export_available"`
}

// IsModern reports whether the system is classified Modern.
func (s *System) IsModern() bool {
	return s.Classification == ClassModern
}

// SystemSummary is the subset of system fields embedded in country profiles.
type SystemSummary struct {
	SystemID          string  `json:"system_id"`
	SystemName        string  `json:"system_name"`
	SystemType        string  `json:"system_type"`
	Classification    string  `json:"classification"`
	YearInducted      int     `json:"year_inducted"`
	ThreatLevel       float64 `json:"threat_level"`
	ImageURL          string  `json:"image_url"`
	WikipediaURL      string  `json:"wikipedia_url"`
	OperationalStatus string  `json:"operational_status"`
	CombatProven      bool    `json:"combat_proven"`
}

// Summary projects the system onto the profile subset.
func (s *System) Summary() SystemSummary {
	return SystemSummary{
		SystemID:          s.SystemID,
		SystemName:        s.SystemName,
		SystemType:        s.SystemType,
		Classification:    s.Classification,
		YearInducted:      s.YearInducted,
		ThreatLevel:       s.ThreatLevel,
		ImageURL:          s.ImageURL,
		WikipediaURL:      s.WikipediaURL,
		OperationalStatus: s.OperationalStatus,
		CombatProven:      s.CombatProven,
	}
}

// SystemName is the lightweight autocomplete projection.
type SystemName struct {
	SystemID       string  `json:"system_id"`
	SystemName     string  `json:"system_name"`
	Country        string  `json:"country"`
	SystemType     string  `json:"system_type"`
	Classification string  `json:"classification"`
	ThreatLevel    float64 `json:"threat_level"`
}

// SystemFilter selects systems. Zero values disable a predicate.
type SystemFilter struct {
	Country        string   `validate:"omitempty,max=100"`
	NameContains   string   `validate:"omitempty,max=200"`
	SystemType     string   `validate:"omitempty,max=50"`
	Classification string   `validate:"omitempty,max=50"`
	MinThreat      *float64 `validate:"omitempty,gte=0,lte=10"`
	MaxThreat      *float64 `validate:"omitempty,gte=0,lte=10"`
}
