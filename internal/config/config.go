// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Fields use koanf struct tags for the Koanf v2 loader.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Database DatabaseConfig `koanf:"database"`
	Data     DataConfig     `koanf:"data"`
	Models   ModelsConfig   `koanf:"models"`
	Cache    CacheConfig    `koanf:"cache"`
	Events   EventsConfig   `koanf:"events"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`

	// Environment is "development" or "production". Production rejects
	// a disabled rate limiter.
	Environment string `koanf:"environment"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds CORS and rate limiting settings. The API is
// public and read-only, so there is no authentication section.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the DuckDB file, or ":memory:" for an in-process database.
	// Tables are rebuilt from the CSVs on every start either way.
	Path      string `koanf:"path"`
	Threads   int    `koanf:"threads"`
	MaxMemory string `koanf:"max_memory"`
}

// DataConfig locates the generated CSVs and parameterizes regeneration.
type DataConfig struct {
	Dir       string `koanf:"dir"`
	Seed      uint64 `koanf:"seed"`
	Scenarios int    `koanf:"scenarios"`
}

// ModelsConfig holds model store and reload settings.
type ModelsConfig struct {
	Dir     string `koanf:"dir"`
	Backend string `koanf:"backend"`

	// ReloadInterval is how often the reload service polls the store for a
	// newer bundle version. Zero loads once at startup.
	ReloadInterval time.Duration `koanf:"reload_interval"`
	TrainOnStartup bool          `koanf:"train_on_startup"`
	KeepVersions   int           `koanf:"keep_versions"`
}

// CacheConfig holds the response cache TTL.
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`
}

// EventsConfig sizes the prediction history.
type EventsConfig struct {
	HistorySize int `koanf:"history_size"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// HasWildcardCORS reports whether any CORS origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
