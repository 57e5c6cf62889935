// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package config provides layered configuration for the dashboard server.

# Configuration Sources

Values are resolved in this order, later layers winning:
  - Built-in defaults (defaultConfig)
  - Optional YAML file: CONFIG_PATH, then config.yaml / config.yml in the
    working directory, then /etc/bestseller-analytics/config.yaml
  - Environment variables (an explicit allow-list, see envTransformFunc)

The merged result is validated before it is returned.

# Environment Variables

Dataset:
  - DATASET_URL: CSV location, http(s) URL or local path (default: published bestseller sheet)
  - DATASET_FETCH_TIMEOUT: Download timeout (default: 30s)
  - DATASET_MAX_BYTES: Maximum accepted CSV size (default: 32 MiB)

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8501)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: Per-IP request budget (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off

Charts and predictor:
  - CHART_WIDTH / CHART_HEIGHT: SVG size in pixels (default: 800x400)
  - PREDICTOR_DEFAULT_PRICE / PREDICTOR_DEFAULT_YEAR: Initial slider positions (default: 20, 2015)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include file:line (default: false)

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

Config is immutable after Load and safe for concurrent reads.
*/
package config
