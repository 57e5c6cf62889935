// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package main is the entry point for the bestseller-analytics server.

The server loads a CSV of bestselling books from a remote source, caches it for
the lifetime of the process and serves an interactive dashboard with charts and
a rating predictor, plus a JSON API over the same data.

# Application Architecture

	RootSupervisor ("bestseller-analytics")
	├── DataSupervisor ("data-layer")
	│   └── Dataset warm-up (one-shot)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog configured from LOG_LEVEL, LOG_FORMAT and LOG_CALLER
 3. Dataset: source (HTTP or file) behind a circuit breaker, loader and cache
 4. HTTP: Chi router with the dashboard, charts, JSON API and /metrics
 5. Supervision: suture tree until SIGINT or SIGTERM

# Configuration

	DATASET_URL=https://example.com/books.csv   # or a local path / file:// URL
	HTTP_PORT=8501
	LOG_LEVEL=debug LOG_FORMAT=console

See the config package for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and waits up to ten seconds for in-flight requests.
*/
package main
