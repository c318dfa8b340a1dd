// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package models

import "strings"

// Zone is a country's risk classification relative to ReferenceCountry.
type Zone string

const (
	// ZoneRed marks hostile / high-risk countries.
	ZoneRed Zone = "Red"
	// ZoneYellow marks neutral / moderate-risk countries.
	ZoneYellow Zone = "Yellow"
	// ZoneGreen marks friendly / allied / low-risk countries.
	ZoneGreen Zone = "Green"
)

// Zones lists every zone from highest to lowest risk.
var Zones = []Zone{ZoneRed, ZoneYellow, ZoneGreen}

// Color returns the map colour used by the frontend for the zone.
func (z Zone) Color() string {
	switch z {
	case ZoneRed:
		return "#ef4444"
	case ZoneYellow:
		return "#eab308"
	case ZoneGreen:
		return "#22c55e"
	default:
		return ""
	}
}

// Legend returns the human-readable meaning of the zone.
func (z Zone) Legend() string {
	switch z {
	case ZoneRed:
		return "Hostile / High Risk"
	case ZoneYellow:
		return "Neutral / Moderate Risk"
	case ZoneGreen:
		return "Friendly / Allied / Low Risk"
	default:
		return ""
	}
}

// Valid reports whether z is one of the known zones.
func (z Zone) Valid() bool {
	return z == ZoneRed || z == ZoneYellow || z == ZoneGreen
}

// ParseZone matches a zone name case-insensitively.
func ParseZone(s string) (Zone, bool) {
	for _, z := range Zones {
		if strings.EqualFold(string(z), strings.TrimSpace(s)) {
			return z, true
		}
	}
	return "", false
}
