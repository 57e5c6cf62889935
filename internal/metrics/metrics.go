// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the dashboard service:
// - Dataset loading and cache efficiency
// - Predictor fits
// - API endpoint latency and throughput
// - Circuit breaker around the dataset source

var (
	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of dataset fetch, parse and normalization in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset loads by result",
		},
		[]string{"result"}, // "success", "failure"
	)

	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of rows in the currently cached dataset",
		},
	)

	DatasetDuplicatesRemoved = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_duplicates_removed",
			Help: "Number of duplicate rows dropped from the currently cached dataset",
		},
	)

	DatasetLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_last_load_timestamp_seconds",
			Help: "Unix timestamp of the last successful dataset load",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_invalidations_total",
			Help: "Total number of explicit cache invalidations",
		},
		[]string{"cache"},
	)

	// Predictor Metrics
	PredictorFits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictor_fits_total",
			Help: "Total number of rating model fits by outcome",
		},
		[]string{"outcome"}, // "ok", "degenerate", "insufficient_data"
	)

	// Chart Metrics
	ChartRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_render_duration_seconds",
			Help:    "Chart rendering duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
		[]string{"chart"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDatasetLoad records the outcome of one dataset load.
// rows and duplicates are ignored on failure.
func RecordDatasetLoad(duration time.Duration, rows, duplicates int, err error) {
	DatasetLoadDuration.Observe(duration.Seconds())
	if err != nil {
		DatasetLoadsTotal.WithLabelValues("failure").Inc()
		return
	}
	DatasetLoadsTotal.WithLabelValues("success").Inc()
	DatasetRows.Set(float64(rows))
	DatasetDuplicatesRemoved.Set(float64(duplicates))
	DatasetLastLoad.Set(float64(time.Now().Unix()))
}

// RecordCacheLookup records a hit or miss for the named cache
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// RecordCacheInvalidation records an explicit invalidation of the named cache
func RecordCacheInvalidation(cache string) {
	CacheInvalidations.WithLabelValues(cache).Inc()
}

// RecordPredictorFit records a model fit outcome
func RecordPredictorFit(outcome string) {
	PredictorFits.WithLabelValues(outcome).Inc()
}

// RecordChartRender records the time spent rendering one chart
func RecordChartRender(chart string, duration time.Duration) {
	ChartRenderDuration.WithLabelValues(chart).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}
