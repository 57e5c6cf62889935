// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakySource fails until healthy is set, counting every call.
type flakySource struct {
	calls   atomic.Int32
	healthy atomic.Bool
	err     error
}

func (s *flakySource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	s.calls.Add(1)
	if !s.healthy.Load() {
		return nil, s.err
	}
	return NewStringSource("Title\nA\n").Fetch(ctx)
}

func (s *flakySource) String() string { return "flaky" }

func TestBreakerSource_PassesThrough(t *testing.T) {
	src := NewBreakerSource("test-pass", NewStringSource(bestsellersCSV), DefaultBreakerSettings())

	rc, err := src.Fetch(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, bestsellersCSV, string(body))
	assert.Equal(t, gobreaker.StateClosed, src.State())
	assert.Equal(t, "memory", src.String())
}

func TestBreakerSource_OpensAfterConsecutiveFailures(t *testing.T) {
	flaky := &flakySource{err: errors.New("connection refused")}
	settings := DefaultBreakerSettings()
	settings.Timeout = time.Hour
	src := NewBreakerSource("test-open", flaky, settings)
	loader := NewLoader(src)

	for i := 0; i < int(settings.ConsecutiveFailures); i++ {
		_, err := loader.Load(context.Background())
		require.ErrorIs(t, err, ErrSourceUnavailable)
	}
	assert.Equal(t, gobreaker.StateOpen, src.State())

	// Open breaker rejects without touching the source
	_, err := loader.Load(context.Background())
	require.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(settings.ConsecutiveFailures), flaky.calls.Load())
}

func TestBreakerSource_RecoversAfterTimeout(t *testing.T) {
	flaky := &flakySource{err: errors.New("timeout")}
	settings := BreakerSettings{MaxRequests: 1, Interval: time.Minute, Timeout: 20 * time.Millisecond, ConsecutiveFailures: 1}
	src := NewBreakerSource("test-recover", flaky, settings)

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	require.Equal(t, gobreaker.StateOpen, src.State())

	flaky.healthy.Store(true)
	time.Sleep(40 * time.Millisecond)

	rc, err := src.Fetch(context.Background())
	require.NoError(t, err)
	_ = rc.Close()
	assert.Equal(t, gobreaker.StateClosed, src.State())
}

func TestBreakerSource_CanceledContextDoesNotTrip(t *testing.T) {
	flaky := &flakySource{err: context.Canceled}
	settings := DefaultBreakerSettings()
	src := NewBreakerSource("test-cancel", flaky, settings)

	for i := 0; i < 5; i++ {
		_, err := src.Fetch(context.Background())
		require.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, src.State())
}
