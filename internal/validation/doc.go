// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by all handlers. Field names in
// errors come from the `query` or `json` struct tag so that messages name
// the parameter the client actually sent.
//
// # Custom Tags
//
//   - risk_zone: Red, Yellow or Green, case-insensitive
//   - system_type: one of the six known system types, case-insensitive
//
// # Usage
//
//	type namesQuery struct {
//	    Q     string `query:"q" validate:"max=200"`
//	    Limit int    `query:"limit" validate:"min=1,max=500"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation
