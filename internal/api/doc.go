// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package api serves the dashboard page, its SVG charts and a JSON API over the
same cached dataset.

# Routes

HTML and images:
  - GET /                      dashboard page
  - GET /charts/{chart}.svg    one chart for the current filters

JSON (models.APIResponse envelope):
  - GET  /api/v1/dashboard                full page model
  - GET  /api/v1/books                    filtered rows (limit 1..100, default 20)
  - GET  /api/v1/genres                   filter universe
  - GET  /api/v1/dataset                  dataset info
  - POST /api/v1/dataset/refresh          drop the cache and reload
  - GET  /api/v1/analytics/summary        count, mean rating, mean price
  - GET  /api/v1/analytics/top-authors    most frequent authors
  - GET  /api/v1/analytics/genre-counts   books per genre
  - GET  /api/v1/analytics/genre-ratings  mean rating per genre
  - GET  /api/v1/analytics/trends         mean rating and price per year
  - GET  /api/v1/predict                  predicted rating for price and year
  - GET  /api/v1/health[/live|/ready]     probes
  - GET  /metrics                         Prometheus

# Query Parameters

  - genre: repeatable. Absent selects every genre; present with only empty
    values selects none.
  - year_min, year_max: inclusive publication year bounds, clamped to the
    dataset's observed range
  - price, year: predictor inputs, clamped to the slider range

# Errors

  - 400 VALIDATION_ERROR: malformed or out-of-range parameters
  - 404 NO_DATA: a chart was requested for an empty selection
  - 404 NOT_FOUND: unknown chart or route
  - 429 RATE_LIMIT_EXCEEDED
  - 503 SOURCE_UNAVAILABLE: the dataset could not be fetched or parsed
*/
package api
