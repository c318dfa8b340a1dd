// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package logging

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
)

// NewWatermillLogger returns a Watermill logger writing through the global
// zerolog logger, tagged component=events.
func NewWatermillLogger() watermill.LoggerAdapter {
	return watermill.NewSlogLogger(slog.New(NewSlogHandlerWithLogger(WithComponent("events"))))
}
