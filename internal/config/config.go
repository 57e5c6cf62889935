// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package config

import (
	"net"
	"strconv"
	"time"
)

// DefaultDatasetURL is the published bestseller sheet, exported as CSV.
const DefaultDatasetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSTa4mpDseg3bYEZ2jETc6onjpeARl-Hlt4Bsba8i3R8W4TvqmTp8jxfH3cnWLL-qOne4eFh0KRqnBM/pub?output=csv"

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults
//  2. Config File (config.yaml, or CONFIG_PATH)
//  3. Environment Variables
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Charts    ChartsConfig    `koanf:"charts"`
	Predictor PredictorConfig `koanf:"predictor"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig describes where the bestseller CSV comes from.
type DatasetConfig struct {
	URL          string        `koanf:"url"`
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	MaxBytes     int64         `koanf:"max_bytes"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds the HTTP hardening knobs.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// ChartsConfig sets the rendered SVG size.
type ChartsConfig struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

// PredictorConfig sets the initial predictor slider positions. They are
// clamped into the dataset's observed range at render time.
type PredictorConfig struct {
	DefaultPrice int `koanf:"default_price"`
	DefaultYear  int `koanf:"default_year"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Console is human-readable for development.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Load reads configuration from, in order of increasing priority:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
