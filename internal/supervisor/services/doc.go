// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package services provides suture.Service wrappers for the server's
long-running components.

Each wrapper implements suture's Serve(ctx) error and fmt.Stringer:

	HTTPServerService      *http.Server with graceful Shutdown on cancel
	ModelReloadService     polls the model store and swaps in newer bundles
	EventConsumerService   feeds prediction events into the history buffer

# Restart semantics

Returning an error lets the parent supervisor restart the service with
backoff. Returning suture.ErrDoNotRestart ends it for good; the reload
service does this when no reload interval is configured, and the consumer
when its subscription closes with the bus.

ModelReloadService never returns reload failures. A bad bundle is counted
in model_reloads_total{result="rejected"} and the previous bundle keeps
serving. Store reads sit behind a gobreaker circuit breaker whose state is
exported as circuit_breaker_state{name="model-store"}.
*/
package services
