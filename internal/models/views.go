// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

// CountryListItem is one row of GET /api/countries.
type CountryListItem struct {
	Country                  string  `json:"country"`
	ISOCode                  string  `json:"iso_code"`
	RiskZone                 Zone    `json:"risk_zone"`
	RiskScore                int     `json:"risk_score"`
	ZoneColor                string  `json:"zone_color"`
	FlagURL                  string  `json:"flag_url"`
	Lat                      float64 `json:"lat"`
	Lng                      float64 `json:"lng"`
	GDPBillionUSD            float64 `json:"gdp_billion_usd"`
	MilitaryBudgetBillionUSD float64 `json:"military_budget_billion_usd"`
	ActivePersonnel          int64   `json:"active_personnel"`
	CombatAircraftCount      int     `json:"combat_aircraft_count"`
	NuclearCapable           bool    `json:"nuclear_capable"`
	RelationWithIndia        string  `json:"relation_with_india"`
}

// CountryList wraps the countries listing.
type CountryList struct {
	Count     int               `json:"count"`
	Countries []CountryListItem `json:"countries"`
}

// CountryNameList wraps the autocomplete listing.
type CountryNameList struct {
	Count     int           `json:"count"`
	Countries []CountryName `json:"countries"`
}

// CountryDetail is the full profile of one country.
type CountryDetail struct {
	Country
	Lat          float64         `json:"lat"`
	Lng          float64         `json:"lng"`
	ZoneColor    string          `json:"zone_color"`
	ForceSummary ForceSummary    `json:"force_summary"`
	Systems      []SystemSummary `json:"systems"`
}

// SystemList wraps the filtered systems listing.
type SystemList struct {
	Count   int      `json:"count"`
	Systems []System `json:"systems"`
}

// SystemNameList wraps the system autocomplete listing.
type SystemNameList struct {
	Count   int          `json:"count"`
	Systems []SystemName `json:"systems"`
}

// SystemCard is a system as shown on a comparison card.
type SystemCard struct {
	SystemID          string  `json:"system_id"`
	SystemName        string  `json:"system_name"`
	Classification    string  `json:"classification"`
	YearInducted      int     `json:"year_inducted"`
	ThreatLevel       float64 `json:"threat_level"`
	StealthRating     float64 `json:"stealth_rating"`
	EWCapability      float64 `json:"ew_capability"`
	MaxSpeedKmph      float64 `json:"max_speed_kmph"`
	RangeKm           float64 `json:"range_km"`
	Reliability       float64 `json:"reliability"`
	CostMillionUSD    float64 `json:"cost_million_usd"`
	ImageURL          string  `json:"image_url"`
	WikipediaURL      string  `json:"wikipedia_url"`
	Description       string  `json:"description"`
	CombatProven      bool    `json:"combat_proven"`
	OperationalStatus string  `json:"operational_status"`
}

// CompareSide is one country of a side-by-side comparison.
type CompareSide struct {
	Country                  string                  `json:"country"`
	ISOCode                  string                  `json:"iso_code"`
	FlagURL                  string                  `json:"flag_url"`
	RiskZone                 Zone                    `json:"risk_zone"`
	RiskScore                int                     `json:"risk_score"`
	ZoneColor                string                  `json:"zone_color"`
	Lat                      float64                 `json:"lat"`
	Lng                      float64                 `json:"lng"`
	GDPBillionUSD            float64                 `json:"gdp_billion_usd"`
	MilitaryBudgetBillionUSD float64                 `json:"military_budget_billion_usd"`
	ActivePersonnel          int64                   `json:"active_personnel"`
	CombatAircraftCount      int                     `json:"combat_aircraft_count"`
	NuclearCapable           bool                    `json:"nuclear_capable"`
	Alliance                 string                  `json:"alliance"`
	KeyConflicts             string                  `json:"key_conflicts"`
	RelationWithIndia        string                  `json:"relation_with_india"`
	ForceSummary             ForceSummary            `json:"force_summary"`
	RadarChartData           map[string]float64      `json:"radar_chart_data"`
	SystemsByType            map[string][]SystemCard `json:"systems_by_type"`
	ScenarioStats            ScenarioStats           `json:"scenario_stats"`
}

// ChartRow is one row of a two-series chart. Series are keyed by the
// requested country names, so the row is a free-form object.
type ChartRow map[string]interface{}

// CompareResult is the body of GET /api/compare.
type CompareResult struct {
	Country1        CompareSide `json:"country1"`
	Country2        CompareSide `json:"country2"`
	ComparisonChart []ChartRow  `json:"comparison_chart"`
	TypeCountChart  []ChartRow  `json:"type_count_chart"`
}

// MapCountry is one country painted on the zone map.
type MapCountry struct {
	Country                  string  `json:"country"`
	ISOCode                  string  `json:"iso_code"`
	RiskZone                 Zone    `json:"risk_zone"`
	RiskScore                int     `json:"risk_score"`
	ZoneColor                string  `json:"zone_color"`
	FlagURL                  string  `json:"flag_url"`
	Lat                      float64 `json:"lat"`
	Lng                      float64 `json:"lng"`
	NuclearCapable           bool    `json:"nuclear_capable"`
	MilitaryBudgetBillionUSD float64 `json:"military_budget_billion_usd"`
	CombatAircraftCount      int     `json:"combat_aircraft_count"`
	AvgThreatLevel           float64 `json:"avg_threat_level"`
	ModernPct                float64 `json:"modern_pct"`
	RelationWithIndia        string  `json:"relation_with_india"`
}

// MapZones is the body of GET /api/map/zones.
type MapZones struct {
	ReferenceCountry string          `json:"reference_country"`
	ZoneLegend       map[Zone]string `json:"zone_legend"`
	ZoneCounts       map[Zone]int    `json:"zone_counts"`
	Countries        []MapCountry    `json:"countries"`
}

// TopSystem is one of a country's most dangerous systems.
type TopSystem struct {
	SystemName     string  `json:"system_name"`
	SystemType     string  `json:"system_type"`
	ThreatLevel    float64 `json:"threat_level"`
	Classification string  `json:"classification"`
	ImageURL       string  `json:"image_url"`
	Description    string  `json:"description"`
}

// SystemsBreakdown counts a country's systems per category.
type SystemsBreakdown struct {
	ByClassification map[string]int `json:"by_classification"`
	ByType           map[string]int `json:"by_type"`
}

// CountryInsights is the body of GET /api/country/{name}/insights.
type CountryInsights struct {
	Country                  string           `json:"country"`
	FlagURL                  string           `json:"flag_url"`
	ISOCode                  string           `json:"iso_code"`
	RiskZone                 Zone             `json:"risk_zone"`
	ZoneColor                string           `json:"zone_color"`
	RiskScore                int              `json:"risk_score"`
	RelationWithIndia        string           `json:"relation_with_india"`
	KeyConflicts             string           `json:"key_conflicts"`
	GeopoliticalStance       string           `json:"geopolitical_stance"`
	NuclearCapable           bool             `json:"nuclear_capable"`
	Alliance                 string           `json:"alliance"`
	MilitaryBudgetBillionUSD float64          `json:"military_budget_billion_usd"`
	ActivePersonnel          int64            `json:"active_personnel"`
	CombatAircraftCount      int              `json:"combat_aircraft_count"`
	ForceSummary             ForceSummary     `json:"force_summary"`
	StrengthScore            float64          `json:"strength_score"`
	Top3Systems              []TopSystem      `json:"top_3_systems"`
	ScenarioHistory          ScenarioHistory  `json:"scenario_history"`
	SystemsBreakdown         SystemsBreakdown `json:"systems_breakdown"`
}

// PredictionHistory wraps the recent prediction events.
type PredictionHistory struct {
	Count       int                `json:"count"`
	Predictions []PredictionRecord `json:"predictions"`
}
