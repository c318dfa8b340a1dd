// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package config

import (
	"fmt"
	"strings"
	"time"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
}

var validModelBackends = map[string]bool{
	"file":   true,
	"badger": true,
}

// Validate checks that the configuration is complete and within bounds.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
		c.validateDatabase,
		c.validateData,
		c.validateModels,
		c.validateCache,
		c.validateEvents,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting.
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must be * or an http(s) origin", origin)
		}
	}
	return c.validateRateLimits()
}

// validateRateLimits keeps rate limit values in a usable range.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		if c.IsProduction() {
			return fmt.Errorf("DISABLE_RATE_LIMIT=true is not allowed when ENVIRONMENT=production")
		}
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required (use :memory: for an in-process database)")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0")
	}
	return nil
}

func (c *Config) validateData() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Data.Scenarios < 1 {
		return fmt.Errorf("DATA_SCENARIOS must be positive, got %d", c.Data.Scenarios)
	}
	return nil
}

func (c *Config) validateModels() error {
	if c.Models.Dir == "" {
		return fmt.Errorf("MODELS_DIR is required")
	}
	if !validModelBackends[c.Models.Backend] {
		return fmt.Errorf("MODELS_BACKEND must be one of: file, badger")
	}
	if c.Models.ReloadInterval < 0 {
		return fmt.Errorf("MODELS_RELOAD_INTERVAL must be >= 0")
	}
	if c.Models.KeepVersions < 1 {
		return fmt.Errorf("MODELS_KEEP_VERSIONS must be at least 1")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

func (c *Config) validateEvents() error {
	if c.Events.HistorySize < 1 || c.Events.HistorySize > 10000 {
		return fmt.Errorf("EVENTS_HISTORY_SIZE must be between 1 and 10000")
	}
	return nil
}
