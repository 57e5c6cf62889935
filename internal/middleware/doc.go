// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package middleware provides HTTP middleware shared by the dashboard and the
JSON API.

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    the matched chi route pattern so that path parameters do not explode
    label cardinality
  - Compression: gzip for clients that accept it; HTML pages, SVG charts and
    JSON all compress well

Both are written against http.HandlerFunc and adapted for chi's r.Use by the
api package.
*/
package middleware
