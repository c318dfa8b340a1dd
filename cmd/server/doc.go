// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package main is the entry point for the AirDefence API server.

The server answers read-only queries over the air defence dataset held in
DuckDB and serves model predictions from the newest trained bundle.

# Application Architecture

	RootSupervisor ("airdefence")
	├── ModelSupervisor ("model-layer")
	│   └── Model reload service (polls the model store)
	├── MessagingSupervisor ("messaging-layer")
	│   └── Prediction consumer (Watermill bus -> history)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 (defaults, config file, environment)
 2. Logging: zerolog with JSON/console output
 3. Database: DuckDB, loaded from the CSVs in DATA_DIR (generated from the
    embedded seed when missing)
 4. Model store: file or BadgerDB backend, optional training on first start
 5. Supervisor tree: Suture v4
 6. Signal handling: SIGINT/SIGTERM trigger a graceful shutdown

# Configuration

	HTTP_HOST=0.0.0.0
	HTTP_PORT=8000
	LOG_LEVEL=info
	LOG_FORMAT=json
	DATA_DIR=data
	MODELS_DIR=models
	MODELS_BACKEND=file          # file or badger
	MODELS_RELOAD_INTERVAL=1m    # 0 loads once
	TRAIN_ON_STARTUP=false
	CORS_ORIGINS=*

Models are produced by the pipeline command (cmd/pipeline). Until a bundle
exists the prediction endpoints answer 503 and /health/ready reports not
ready.
*/
package main
