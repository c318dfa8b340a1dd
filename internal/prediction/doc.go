// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package prediction serves the trained model bundle.
//
// A Service holds the current bundle behind an atomic pointer. Requests read
// it without locking; Load swaps a new bundle in as one unit, so a request
// never sees scalers from one version and models from another.
//
// Until the first Load, ClassifySystem and PredictWar return
// ErrModelsNotLoaded.
//
// Every served prediction is handed to the optional Publisher. Publish
// failures are logged and never fail the prediction.
package prediction
