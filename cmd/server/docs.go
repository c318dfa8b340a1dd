// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package main provides the AirDefence HTTP server
//
// @title AirDefence API
// @version 1.0
// @description Air defence analytics and war scenario prediction over a synthetic dataset
// @description of countries and their air defence systems.
// @description
// @description ## Features
// @description
// @description - **Country profiles**: defence budgets, zone classification and fielded systems
// @description - **System catalog**: filter by country, type, classification and threat level
// @description - **Comparison**: side-by-side force summaries for two countries
// @description - **ML predictions**: Modern/Traditional classification and war outcome forecasts
// @description - **Prediction history**: the most recent predictions served
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address under /api.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Country 'Atlantis' not found",
// @description     "request_id": "..."
// @description   },
// @description   "meta": {"timestamp": "2026-01-01T00:00:00Z", "duration_ms": 0}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/airdefence/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Health
// @tag.description Service status and probes
//
// @tag.name Countries
// @tag.description Country defence profiles and zone filters
//
// @tag.name Systems
// @tag.description Air defence system catalog and search
//
// @tag.name Comparison
// @tag.description Side-by-side country comparison
//
// @tag.name War Prediction
// @tag.description Zone map and per-country insights
//
// @tag.name ML Predictions
// @tag.description Model-backed classification and war outcome prediction
//
// @tag.name Dashboard
// @tag.description Aggregate statistics and model metadata
package main
