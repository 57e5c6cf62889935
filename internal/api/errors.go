// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package api

// Error codes carried in models.APIError.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	CodeNoData            = "NO_DATA"
	CodeNotFound          = "NOT_FOUND"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeRateLimited       = "RATE_LIMIT_EXCEEDED"
	CodeChartFailed       = "CHART_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)
