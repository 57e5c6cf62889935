// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that the configuration is complete and within bounds.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateCharts(); err != nil {
		return err
	}

	if err := c.validatePredictor(); err != nil {
		return err
	}

	return c.validateLogging()
}

// Dataset limits
const (
	minFetchTimeout = time.Second
	maxFetchTimeout = 10 * time.Minute
	minMaxBytes     = 1 << 10 // 1 KiB
	maxMaxBytes     = 1 << 30 // 1 GiB
)

func (c *Config) validateDataset() error {
	if err := validateDatasetLocation(c.Dataset.URL, "DATASET_URL"); err != nil {
		return err
	}
	if c.Dataset.FetchTimeout < minFetchTimeout || c.Dataset.FetchTimeout > maxFetchTimeout {
		return fmt.Errorf("DATASET_FETCH_TIMEOUT must be between %v and %v", minFetchTimeout, maxFetchTimeout)
	}
	if c.Dataset.MaxBytes < minMaxBytes || c.Dataset.MaxBytes > maxMaxBytes {
		return fmt.Errorf("DATASET_MAX_BYTES must be between %d and %d", minMaxBytes, maxMaxBytes)
	}
	return nil
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[strings.ToLower(c.Server.Environment)] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, dev, staging, production, prod")
	}
	return nil
}

var validEnvironments = map[string]bool{
	"":            true,
	"development": true,
	"dev":         true,
	"staging":     true,
	"production":  true,
	"prod":        true,
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// HasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports a wildcard origin list in production, which is
// logged at startup.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.HasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// Chart size bounds in pixels
const (
	minChartSize = 100
	maxChartSize = 4000
)

func (c *Config) validateCharts() error {
	if c.Charts.Width < minChartSize || c.Charts.Width > maxChartSize {
		return fmt.Errorf("CHART_WIDTH must be between %d and %d", minChartSize, maxChartSize)
	}
	if c.Charts.Height < minChartSize || c.Charts.Height > maxChartSize {
		return fmt.Errorf("CHART_HEIGHT must be between %d and %d", minChartSize, maxChartSize)
	}
	return nil
}

func (c *Config) validatePredictor() error {
	if c.Predictor.DefaultPrice < 0 {
		return fmt.Errorf("PREDICTOR_DEFAULT_PRICE must not be negative")
	}
	if c.Predictor.DefaultYear < 1 || c.Predictor.DefaultYear > 9999 {
		return fmt.Errorf("PREDICTOR_DEFAULT_YEAR must be between 1 and 9999")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
