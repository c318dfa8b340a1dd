// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/airdefence/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Database or models unavailable", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/countries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Countries"],
                "summary": "List countries",
                "parameters": [
                    {"type": "string", "description": "Red | Yellow | Green", "name": "risk_zone", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "No countries in that zone", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/countries/names": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Countries"],
                "summary": "Country names",
                "parameters": [
                    {"type": "string", "description": "Name substring, case-insensitive", "name": "q", "in": "query"},
                    {"type": "integer", "default": 100, "description": "Max results (1-500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/countries/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Countries"],
                "summary": "Country profile",
                "parameters": [
                    {"type": "string", "description": "Country name, case-insensitive", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/systems": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Systems"],
                "summary": "List systems",
                "parameters": [
                    {"type": "string", "description": "Exact country name", "name": "country", "in": "query"},
                    {"type": "string", "description": "Name substring", "name": "system_name", "in": "query"},
                    {"type": "string", "description": "System type", "name": "system_type", "in": "query"},
                    {"type": "string", "description": "Modern | Traditional", "name": "classification", "in": "query"},
                    {"type": "number", "description": "Minimum threat level", "name": "min_threat", "in": "query"},
                    {"type": "number", "description": "Maximum threat level", "name": "max_threat", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "No systems match", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/systems/names": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Systems"],
                "summary": "System names",
                "parameters": [
                    {"type": "string", "description": "Exact country name", "name": "country", "in": "query"},
                    {"type": "string", "description": "Name substring", "name": "q", "in": "query"},
                    {"type": "integer", "default": 100, "description": "Max results (1-500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/systems/by-name/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Systems"],
                "summary": "System by name",
                "parameters": [
                    {"type": "string", "description": "System name, full or partial", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "409": {"description": "Several systems match; details.matches lists them", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/compare": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Comparison"],
                "summary": "Compare two countries",
                "parameters": [
                    {"type": "string", "description": "First country", "name": "country1", "in": "query", "required": true},
                    {"type": "string", "description": "Second country", "name": "country2", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/map/zones": {
            "get": {
                "produces": ["application/json"],
                "tags": ["War Prediction"],
                "summary": "Zone map",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/api/country/{name}/insights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["War Prediction"],
                "summary": "Country insights",
                "parameters": [
                    {"type": "string", "description": "Country name, case-insensitive", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/predict/classify-system": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ML Predictions"],
                "summary": "Classify a system",
                "parameters": [
                    {"description": "System to classify", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.ClassifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Models not loaded", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/predict/war": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ML Predictions"],
                "summary": "Predict a war scenario",
                "parameters": [
                    {"type": "string", "description": "Attacker country", "name": "attacker_country", "in": "query", "required": true},
                    {"type": "string", "description": "Defender country", "name": "defender_country", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Missing or identical countries", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Models not loaded", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/predict/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ML Predictions"],
                "summary": "Recent predictions",
                "parameters": [
                    {"type": "integer", "default": 50, "description": "Max results (1-500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/api/stats/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard overview",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/api/models/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Model metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Models not loaded", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {},
                "request_id": {"type": "string"}
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"},
                "duration_ms": {"type": "integer"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "meta": {"$ref": "#/definitions/api.APIMeta"}
            }
        },
        "api.ClassifyRequest": {
            "type": "object",
            "required": ["system_name"],
            "properties": {
                "system_name": {"type": "string", "example": "S-400 Triumf (Russia)"}
            }
        }
    },
    "tags": [
        {"description": "Service status and probes", "name": "Health"},
        {"description": "Country defence profiles and zone filters", "name": "Countries"},
        {"description": "Air defence system catalog and search", "name": "Systems"},
        {"description": "Side-by-side country comparison", "name": "Comparison"},
        {"description": "Zone map and per-country insights", "name": "War Prediction"},
        {"description": "Model-backed classification and war outcome prediction", "name": "ML Predictions"},
        {"description": "Aggregate statistics and model metadata", "name": "Dashboard"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "AirDefence API",
	Description:      "Air defence analytics and war scenario prediction over a synthetic dataset of countries and their air defence systems.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
