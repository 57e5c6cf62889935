// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/bestseller-analytics/internal/models"
)

type fakeCache struct {
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (f *fakeCache) Get(ctx context.Context) (*models.Dataset, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.Dataset{Source: "memory", Books: []models.Book{{Title: "one"}}}, nil
}

func TestDatasetWarmupService_Serve(t *testing.T) {
	tests := []struct {
		name  string
		cache *fakeCache
	}{
		{"success", &fakeCache{}},
		{"load failure", &fakeCache{err: errors.New("source unavailable")}},
		{"timeout", &fakeCache{delay: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDatasetWarmupService(tt.cache, 50*time.Millisecond)
			err := svc.Serve(context.Background())
			if !errors.Is(err, suture.ErrDoNotRestart) {
				t.Errorf("Serve() = %v, want ErrDoNotRestart", err)
			}
			if n := tt.cache.calls.Load(); n != 1 {
				t.Errorf("Get called %d times, want 1", n)
			}
		})
	}
}

func TestDatasetWarmupService_RunsOnceUnderSupervisor(t *testing.T) {
	cache := &fakeCache{err: errors.New("source unavailable")}
	sup := suture.New("test-sup", suture.Spec{FailureBackoff: 10 * time.Millisecond, Timeout: time.Second})
	sup.Add(NewDatasetWarmupService(cache, time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	<-sup.ServeBackground(ctx)

	if n := cache.calls.Load(); n != 1 {
		t.Errorf("Get called %d times, want 1", n)
	}
}

func TestNewDatasetWarmupService_DefaultTimeout(t *testing.T) {
	if got := NewDatasetWarmupService(&fakeCache{}, 0).timeout; got != time.Minute {
		t.Errorf("timeout = %v, want 1m", got)
	}
	if got := NewDatasetWarmupService(&fakeCache{}, 0).String(); got != "dataset-warmup" {
		t.Errorf("String() = %q", got)
	}
}
