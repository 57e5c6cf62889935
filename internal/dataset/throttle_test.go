// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottledSource_BurstPassesThrough(t *testing.T) {
	src := NewThrottledSource(NewStringSource(bestsellersCSV), time.Hour, 2)

	for i := 0; i < 2; i++ {
		rc, err := src.Fetch(context.Background())
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, bestsellersCSV, string(body))
	}
	assert.Equal(t, NewStringSource(bestsellersCSV).String(), src.String())
}

func TestThrottledSource_WaitHonorsContext(t *testing.T) {
	src := NewThrottledSource(NewStringSource(bestsellersCSV), time.Hour, 1)

	rc, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = src.Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestThrottledSource_MinimumBurst(t *testing.T) {
	src := NewThrottledSource(NewStringSource(bestsellersCSV), time.Millisecond, 0)
	assert.Equal(t, 1, src.limiter.Burst())
}
