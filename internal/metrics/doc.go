// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8501/metrics

# Available Metrics

Dataset Metrics:
  - dataset_load_duration_seconds: Fetch, parse and normalization time (histogram)
  - dataset_loads_total: Loads by result (counter), labels: result
  - dataset_rows: Rows in the cached dataset (gauge)
  - dataset_duplicates_removed: Duplicate rows dropped at load (gauge)
  - dataset_last_load_timestamp_seconds: Last successful load (gauge)

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_invalidations_total
    Labels: cache

Predictor and Chart Metrics:
  - predictor_fits_total: Labels: outcome (ok, degenerate, insufficient_data)
  - chart_render_duration_seconds: Labels: chart

API Metrics:
  - api_requests_total: Labels: method, endpoint, status_code
  - api_request_duration_seconds: Labels: method, endpoint
  - api_active_requests
  - api_rate_limit_hits_total: Labels: endpoint

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Labels: name, result
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total: Labels: name, from_state, to_state

# Usage

	start := time.Now()
	ds, err := loader.Load(ctx)
	metrics.RecordDatasetLoad(time.Since(start), ds.Len(), ds.DuplicatesRemoved, err)
*/
package metrics
