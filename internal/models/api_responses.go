// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all JSON endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "SOURCE_UNAVAILABLE",
//	    "message": "Dataset source is unavailable"
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// QueryTimeMS covers filtering, aggregation and model fitting for the request.
// Cached is true when the dataset was served from the in-memory cache without
// touching the source.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid query parameters
//   - SOURCE_UNAVAILABLE: The dataset could not be fetched or parsed
//   - NO_DATA: The selected filters produce no rows
//   - NOT_FOUND: Unknown chart or resource
//   - METHOD_NOT_ALLOWED: Wrong HTTP method
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	DatasetLoaded bool       `json:"dataset_loaded"`
	DatasetRows   int        `json:"dataset_rows"`
	Uptime        float64    `json:"uptime_seconds"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
}

// BookPage is a bounded slice of filtered books.
type BookPage struct {
	Total int    `json:"total"`
	Limit int    `json:"limit"`
	Books []Book `json:"books"`
}

// FilterUniverse lists the values the dashboard filters can take.
type FilterUniverse struct {
	Genres  []string `json:"genres"`
	YearMin int      `json:"year_min"`
	YearMax int      `json:"year_max"`
}
