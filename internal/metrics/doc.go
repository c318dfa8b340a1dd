// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Requests rejected by httprate (counter)

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Query errors (counter)
  - dataset_rows: Rows per reference table (gauge)
  - force_summary_computations_total: Force summaries computed (counter)

Prediction Metrics:
  - predictions_total: Served predictions (counter)
    Labels: kind (classify, war), outcome
  - prediction_duration_seconds: Inference latency (histogram)
  - prediction_events_consumed_total: Events recorded into history (counter)

Model Lifecycle Metrics:
  - model_bundle_version: Loaded bundle version (gauge)
  - model_reloads_total: Reload attempts by result (counter)
  - model_training_duration_seconds: Training run duration (histogram)
  - model_score: Latest held-out scores (gauge)
    Labels: model (model1, model2, model3), metric (accuracy, r2)

Cache and Resilience Metrics:
  - cache_hits_total / cache_misses_total: Response cache lookups (counter)
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_state_transitions_total: State changes (counter)

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "systems", time.Since(start), err)
*/
package metrics
