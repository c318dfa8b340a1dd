// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

// Scenario outcomes.
const (
	OutcomeAttackerWins = "Attacker_Wins"
	OutcomeDefenderWins = "Defender_Wins"
	OutcomeStalemate    = "Stalemate"
)

// Outcomes lists the war outcome classes in label-encoded (sorted) order.
var Outcomes = []string{OutcomeAttackerWins, OutcomeDefenderWins, OutcomeStalemate}

// SideFeatures holds the eleven per-side war features in model order.
type SideFeatures struct {
	AvgThreat      float64 `json:"avg_threat"`
	AvgTechGen     float64 `json:"avg_tech_gen"`
	ModernPct      float64 `json:"modern_pct"`
	AvgStealth     float64 `json:"avg_stealth"`
	AvgEW          float64 `json:"avg_ew"`
	FighterCount   int     `json:"fighter_count"`
	SAMCount       int     `json:"sam_count"`
	UAVCount       int     `json:"uav_count"`
	MilitaryBudget float64 `json:"military_budget"`
	AircraftCount  float64 `json:"aircraft_count"`
	Zone           int     `json:"zone"`
}

// Ratios are the attacker-over-defender advantage factors.
type Ratios struct {
	Threat float64 `json:"threat_ratio"`
	Tech   float64 `json:"tech_ratio"`
	Number float64 `json:"number_ratio"`
	Budget float64 `json:"budget_ratio"`
}

// Sum returns the total of the four ratios.
func (r Ratios) Sum() float64 {
	return r.Threat + r.Tech + r.Number + r.Budget
}

// Scenario is one labelled row of conflict_scenarios.csv.
type Scenario struct {
	ScenarioID             string       `json:"scenario_id"`
	Attacker               string       `json:"attacker"`
	Defender               string       `json:"defender"`
	Att                    SideFeatures `json:"att"`
	Dfn                    SideFeatures `json:"dfn"`
	Ratios                 Ratios       `json:"ratios"`
	Outcome                string       `json:"outcome"`
	AttackerWinProbability float64      `json:"attacker_win_probability"`
}

// ScenarioStats counts a country's simulated conflict results.
type ScenarioStats struct {
	WinsAsAttacker   int `json:"wins_as_attacker"`
	LossesAsDefender int `json:"losses_as_defender"`
	Stalemates       int `json:"stalemates"`
}

// ScenarioHistory is the insights view of a country's simulated conflicts.
type ScenarioHistory struct {
	WinsAsAttacker                 int     `json:"wins_as_attacker"`
	WinsAsDefender                 int     `json:"wins_as_defender"`
	Stalemates                     int     `json:"stalemates"`
	TotalSimulated                 int     `json:"total_simulated"`
	AvgWinProbabilityWhenAttacking float64 `json:"avg_win_probability_when_attacking"`
}
