// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package features

import (
	"errors"
	"fmt"

	"github.com/tomtom215/airdefence/internal/models"
)

// ErrUnknownZone is returned when a risk zone has no numeric code.
var ErrUnknownZone = errors.New("unknown risk zone")

// ZoneCode encodes a risk zone for the war models.
func ZoneCode(z models.Zone) (int, error) {
	switch z {
	case models.ZoneRed:
		return 3, nil
	case models.ZoneYellow:
		return 2, nil
	case models.ZoneGreen:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownZone, z)
	}
}
