// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package services

import (
	"context"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/bestseller-analytics/internal/logging"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// DatasetGetter is satisfied by *dataset.Cache.
type DatasetGetter interface {
	Get(ctx context.Context) (*models.Dataset, error)
}

// DatasetWarmupService loads the dataset once at startup so the first page
// view does not pay for the fetch.
//
// It runs exactly once. A failed warm-up is logged and not retried; the next
// request that needs the dataset loads it instead.
type DatasetWarmupService struct {
	cache   DatasetGetter
	timeout time.Duration
}

// NewDatasetWarmupService creates the warm-up service. timeout bounds how long
// Serve waits; a non-positive value means one minute.
func NewDatasetWarmupService(cache DatasetGetter, timeout time.Duration) *DatasetWarmupService {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &DatasetWarmupService{cache: cache, timeout: timeout}
}

// Serve implements suture.Service. It always returns suture.ErrDoNotRestart.
func (s *DatasetWarmupService) Serve(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	ds, err := s.cache.Get(loadCtx)
	if err != nil {
		logging.Warn().Err(err).Msg("Dataset warm-up failed, will load on first request")
		return suture.ErrDoNotRestart
	}

	logging.Info().
		Int("rows", ds.Len()).
		Int("duplicates_removed", ds.DuplicatesRemoved).
		Str("source", ds.Source).
		Dur("duration", time.Since(start)).
		Msg("Dataset warmed up")
	return suture.ErrDoNotRestart
}

func (s *DatasetWarmupService) String() string {
	return "dataset-warmup"
}
