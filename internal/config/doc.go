// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package config provides centralized configuration management for AirDefence.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/airdefence/config.yaml
 3. Environment variables, mapped through an explicit table

# Sections

  - server: bind address, port, request timeout, environment
  - security: CORS origins and per-IP rate limiting
  - logging: zerolog level, format and caller reporting
  - database: DuckDB path, threads and memory limit
  - data: generated CSV directory, synthesizer seed and scenario count
  - models: model store directory and backend, reload interval, retention
  - cache: TTL for whole-dataset responses
  - events: size of the recent prediction history

# Environment Variables

Server:
  - HTTP_HOST (default: 0.0.0.0)
  - HTTP_PORT (default: 8000)
  - HTTP_TIMEOUT (default: 30s)
  - ENVIRONMENT (default: development)

Security:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS (default: 100)
  - RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER (default: false)

Database:
  - DUCKDB_PATH (default: :memory:)
  - DUCKDB_THREADS (default: 0, all cores)
  - DUCKDB_MAX_MEMORY (default: 1GB)

Data and models:
  - DATA_DIR (default: data)
  - DATA_SEED (default: 42)
  - DATA_SCENARIOS (default: 700)
  - MODELS_DIR (default: models)
  - MODELS_BACKEND: file or badger (default: file)
  - MODELS_RELOAD_INTERVAL (default: 1m, 0 disables polling)
  - TRAIN_ON_STARTUP (default: false)
  - MODELS_KEEP_VERSIONS (default: 3)

Cache and events:
  - CACHE_TTL (default: 10m)
  - EVENTS_HISTORY_SIZE (default: 100)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	addr := cfg.Server.Addr()

Validation runs as part of Load; callers building a Config by hand should
call Validate themselves.
*/
package config
