// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package logging provides the process-wide zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("server starting")
//	logging.Error().Err(err).Msg("bundle reload failed")
//
//	// Request-scoped: adds request_id / correlation_id when present.
//	logging.Ctx(ctx).Warn().Msg("publish failed")
//
// # Adapters
//
// Libraries that expect other logger types are bridged onto the same
// zerolog output:
//
//   - NewSlogLogger returns a *slog.Logger, used by sutureslog for
//     supervisor events.
//   - NewWatermillLogger returns a watermill.LoggerAdapter for the
//     prediction event bus.
//
// # Configuration
//
// Level: trace, debug, info, warn, error, fatal, panic, disabled (default info).
// Format: json or console (default json). Caller adds file:line.
package logging
