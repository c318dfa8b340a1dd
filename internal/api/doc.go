// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

/*
Package api provides the HTTP interface of the air defence analytics service.

Every endpoint is read-only over the reference tables loaded at startup,
except the prediction endpoints, which additionally consult the loaded model
bundle and publish a prediction event.

Handler methods are split across files:

  - handlers.go: Handler struct and constructor
  - handlers_health.go: root, liveness and readiness
  - handlers_countries.go: country listing, autocomplete and profile
  - handlers_systems.go: system listing, autocomplete and lookup by name
  - handlers_analytics.go: comparison, zone map, insights and overview
  - handlers_predict.go: classification, war prediction, history, model info

Responses use a common envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Errors carry a machine-readable code:

	{
	  "success": false,
	  "error": {"code": "NOT_FOUND", "message": "Country 'Atlantis' not found"}
	}

Error mapping (see writeError):

  - database.ErrNotFound: 404 NOT_FOUND
  - database.ErrAmbiguous: 409 CONFLICT, matches listed in details
  - validation failures: 400 VALIDATION_ERROR
  - prediction.ErrSameCountry: 400 BAD_REQUEST
  - prediction.ErrModelsNotLoaded: 503 SERVICE_UNAVAILABLE
  - anything else: 500 INTERNAL_ERROR

Routing uses Chi (see router.go). The global middleware stack is request ID,
real IP, access log, panic recovery, CORS, per-IP rate limiting, security
headers, gzip compression and Prometheus metrics.

Example:

	handler := api.NewHandler(db, predictor, history, cfg)
	router := api.NewRouter(handler, cfg)
	http.ListenAndServe(cfg.Server.Addr(), router.Setup())
*/
package api
