// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// TestRecordDatasetLoad tests dataset load metric recording
func TestRecordDatasetLoad(t *testing.T) {
	successBefore := testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("success"))
	failureBefore := testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("failure"))

	RecordDatasetLoad(120*time.Millisecond, 550, 7, nil)

	if got := testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("success")); got != successBefore+1 {
		t.Errorf("success loads = %v, want %v", got, successBefore+1)
	}
	if got := testutil.ToFloat64(DatasetRows); got != 550 {
		t.Errorf("dataset rows = %v, want 550", got)
	}
	if got := testutil.ToFloat64(DatasetDuplicatesRemoved); got != 7 {
		t.Errorf("duplicates removed = %v, want 7", got)
	}
	if testutil.ToFloat64(DatasetLastLoad) == 0 {
		t.Error("last load timestamp not set")
	}

	RecordDatasetLoad(time.Second, 0, 0, errors.New("connection refused"))

	if got := testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("failure")); got != failureBefore+1 {
		t.Errorf("failure loads = %v, want %v", got, failureBefore+1)
	}
	// A failed load must not clobber the row gauge of the cached dataset
	if got := testutil.ToFloat64(DatasetRows); got != 550 {
		t.Errorf("dataset rows after failure = %v, want 550", got)
	}
}

// TestRecordCacheLookup tests hit/miss accounting per cache name
func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test-cache"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test-cache"))

	RecordCacheLookup("test-cache", true)
	RecordCacheLookup("test-cache", true)
	RecordCacheLookup("test-cache", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test-cache")); got != hits+2 {
		t.Errorf("hits = %v, want %v", got, hits+2)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test-cache")); got != misses+1 {
		t.Errorf("misses = %v, want %v", got, misses+1)
	}
}

func TestRecordCacheInvalidation(t *testing.T) {
	before := testutil.ToFloat64(CacheInvalidations.WithLabelValues("test-cache"))
	RecordCacheInvalidation("test-cache")
	if got := testutil.ToFloat64(CacheInvalidations.WithLabelValues("test-cache")); got != before+1 {
		t.Errorf("invalidations = %v, want %v", got, before+1)
	}
}

func TestRecordPredictorFit(t *testing.T) {
	for _, outcome := range []string{"ok", "degenerate", "insufficient_data"} {
		t.Run(outcome, func(t *testing.T) {
			before := testutil.ToFloat64(PredictorFits.WithLabelValues(outcome))
			RecordPredictorFit(outcome)
			if got := testutil.ToFloat64(PredictorFits.WithLabelValues(outcome)); got != before+1 {
				t.Errorf("fits{%s} = %v, want %v", outcome, got, before+1)
			}
		})
	}
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "dashboard page",
			method:     "GET",
			endpoint:   "/",
			statusCode: "200",
			duration:   40 * time.Millisecond,
		},
		{
			name:       "manual refresh",
			method:     "POST",
			endpoint:   "/api/v1/dataset/refresh",
			statusCode: "200",
			duration:   800 * time.Millisecond,
		},
		{
			name:       "invalid limit",
			method:     "GET",
			endpoint:   "/api/v1/books",
			statusCode: "400",
			duration:   time.Millisecond,
		},
		{
			name:       "source unavailable",
			method:     "GET",
			endpoint:   "/api/v1/analytics/summary",
			statusCode: "503",
			duration:   5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if got != before+1 {
				t.Errorf("requests = %v, want %v", got, before+1)
			}
		})
	}
}

// TestTrackActiveRequest tests the active request gauge returns to its start value
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}

func TestRecordChartRender(t *testing.T) {
	RecordChartRender("top-authors", 3*time.Millisecond)
	if n := testutil.CollectAndCount(ChartRenderDuration); n == 0 {
		t.Error("expected chart render histogram to have series")
	}
}

// TestConcurrentMetricRecording tests that recording from many goroutines is safe
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	numGoroutines := 50
	operationsPerGoroutine := 20

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordAPIRequest("GET", "/api/v1/test", "200", time.Duration(j)*time.Millisecond)
				RecordCacheLookup("concurrent", j%2 == 0)
				TrackActiveRequest(true)
				TrackActiveRequest(false)
			}
		}()
	}
	wg.Wait()
}

func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "dataset-source"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("state = %v, want 2", got)
	}
	CircuitBreakerState.WithLabelValues(cbName).Set(0)

	CircuitBreakerRequests.WithLabelValues(cbName, "success").Inc()
	CircuitBreakerRequests.WithLabelValues(cbName, "failure").Inc()
	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(3)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()
}

// TestMetricsRegistration tests that every collector can describe itself
func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		DatasetLoadDuration,
		DatasetLoadsTotal,
		DatasetRows,
		DatasetDuplicatesRemoved,
		DatasetLastLoad,
		CacheHits,
		CacheMisses,
		CacheInvalidations,
		PredictorFits,
		ChartRenderDuration,
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		CircuitBreakerState,
		CircuitBreakerRequests,
		CircuitBreakerConsecutiveFailures,
		CircuitBreakerTransitions,
		AppInfo,
		AppUptime,
	}

	for _, m := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		m.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("GET", "/api/v1/dashboard", "200", 25*time.Millisecond)
	}
}

func BenchmarkRecordCacheLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordCacheLookup("dataset", true)
	}
}

// histogramSamples reads the sample count and sum of one histogram series.
func histogramSamples(t *testing.T, vec *prometheus.HistogramVec, labels ...string) (uint64, float64) {
	t.Helper()
	metric, ok := vec.WithLabelValues(labels...).(prometheus.Metric)
	if !ok {
		t.Fatal("histogram observer does not implement prometheus.Metric")
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestRecordChartRender_Histogram(t *testing.T) {
	countBefore, sumBefore := histogramSamples(t, ChartRenderDuration, "histogram-test")

	RecordChartRender("histogram-test", 250*time.Millisecond)
	RecordChartRender("histogram-test", 750*time.Millisecond)

	count, sum := histogramSamples(t, ChartRenderDuration, "histogram-test")
	if count-countBefore != 2 {
		t.Errorf("sample count delta = %d, want 2", count-countBefore)
	}
	if d := sum - sumBefore; d < 0.999 || d > 1.001 {
		t.Errorf("sample sum delta = %v, want 1.0", d)
	}
}
