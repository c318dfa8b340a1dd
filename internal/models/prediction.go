// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

import "time"

// SystemSpecifications are the raw model-1 inputs echoed back to callers.
type SystemSpecifications struct {
	TechGeneration float64 `json:"tech_generation"`
	YearInducted   int     `json:"year_inducted"`
	StealthRating  float64 `json:"stealth_rating"`
	EWCapability   float64 `json:"ew_capability"`
	MaxSpeedKmph   float64 `json:"max_speed_kmph"`
	RangeKm        float64 `json:"range_km"`
	MaxAltitudeM   float64 `json:"max_altitude_m"`
	Reliability    float64 `json:"reliability"`
	CostMillionUSD float64 `json:"cost_million_usd"`
	ThreatLevel    float64 `json:"threat_level"`
	PayloadKg      float64 `json:"payload_kg"`
}

// SelectedSystem describes the system a classification ran against.
type SelectedSystem struct {
	SystemID              string               `json:"system_id"`
	SystemName            string               `json:"system_name"`
	Country               string               `json:"country"`
	SystemType            string               `json:"system_type"`
	Specifications        SystemSpecifications `json:"specifications"`
	DatasetClassification string               `json:"dataset_classification"`
}

// ClassPrediction is a single classifier decision.
type ClassPrediction struct {
	Classification string             `json:"classification"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities"`
}

// ClassifyResult is the model-1 response body.
type ClassifyResult struct {
	SelectedSystem SelectedSystem  `json:"selected_system"`
	Prediction     ClassPrediction `json:"prediction"`
	Model          string          `json:"model"`
	ModelAccuracy  float64         `json:"model_accuracy"`
}

// WarSide is one belligerent in a war prediction.
type WarSide struct {
	Country        string `json:"country"`
	FlagURL        string `json:"flag_url"`
	RiskZone       Zone   `json:"risk_zone"`
	ZoneColor      string `json:"zone_color"`
	NuclearCapable bool   `json:"nuclear_capable"`
	ForceSummary
}

// WarOutcome is the model-2/model-3 decision and its derived estimates.
type WarOutcome struct {
	Outcome                  string             `json:"outcome"`
	OutcomeDescription       string             `json:"outcome_description"`
	AttackerWinProbability   float64            `json:"attacker_win_probability"`
	OutcomeProbabilities     map[string]float64 `json:"outcome_probabilities"`
	EstimatedAttackerLossPct float64            `json:"estimated_attacker_loss_pct"`
	EstimatedDefenderLossPct float64            `json:"estimated_defender_loss_pct"`
	EstimatedDurationDays    int                `json:"estimated_duration_days"`
}

// AdvantageFactors are the rounded ratios reported with a war prediction.
type AdvantageFactors struct {
	ThreatRatio  float64 `json:"threat_ratio"`
	TechRatio    float64 `json:"tech_ratio"`
	NumbersRatio float64 `json:"numbers_ratio"`
	BudgetRatio  float64 `json:"budget_ratio"`
}

// WarResult is the war prediction response body.
type WarResult struct {
	Attacker         WarSide          `json:"attacker"`
	Defender         WarSide          `json:"defender"`
	Prediction       WarOutcome       `json:"prediction"`
	AdvantageFactors AdvantageFactors `json:"advantage_factors"`
	Model            string           `json:"model"`
	ModelAccuracy    float64          `json:"model_accuracy"`
}

// Prediction kinds.
const (
	PredictionKindClassify = "classify"
	PredictionKindWar      = "war"
)

// PredictionRecord is a served prediction as kept in the recent history.
type PredictionRecord struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Subject     string    `json:"subject"`
	Outcome     string    `json:"outcome"`
	Probability float64   `json:"probability"`
	RequestID   string    `json:"request_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
