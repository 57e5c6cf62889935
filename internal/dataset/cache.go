// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/bestseller-analytics/internal/logging"
	"github.com/tomtom215/bestseller-analytics/internal/metrics"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

const cacheName = "dataset"

// DatasetLoader produces a fresh dataset. *Loader implements it.
type DatasetLoader interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// Cache keeps one loaded dataset for the process lifetime.
//
// Get returns the same *models.Dataset on every call until Invalidate. There is
// no expiry. Concurrent misses share a single load and a failed load leaves the
// cache empty so the next Get tries again.
type Cache struct {
	loader  DatasetLoader
	current atomic.Pointer[models.Dataset]
	// generation changes on every Invalidate so that a load started before
	// the invalidation can neither be joined nor stored afterwards.
	generation atomic.Uint64
	group      singleflight.Group
	// mu orders stores against Invalidate
	mu sync.Mutex
}

// NewCache creates an empty cache backed by loader.
func NewCache(loader DatasetLoader) *Cache {
	return &Cache{loader: loader}
}

// Get returns the cached dataset, loading it on first use.
func (c *Cache) Get(ctx context.Context) (*models.Dataset, error) {
	if ds := c.current.Load(); ds != nil {
		metrics.RecordCacheLookup(cacheName, true)
		return ds, nil
	}
	metrics.RecordCacheLookup(cacheName, false)

	gen := c.generation.Load()
	ch := c.group.DoChan(strconv.FormatUint(gen, 10), func() (interface{}, error) {
		if ds := c.current.Load(); ds != nil {
			return ds, nil
		}
		// The shared load must not die with whichever caller started it
		loadCtx := context.WithoutCancel(ctx)
		ds, err := c.loader.Load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.store(gen, ds)
		return ds, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logging.Ctx(ctx).Debug().Msg("Joined in-flight dataset load")
		}
		return res.Val.(*models.Dataset), nil
	}
}

// store caches ds unless the cache was invalidated after gen was read.
func (c *Cache) store(gen uint64, ds *models.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation.Load() == gen {
		c.current.Store(ds)
	}
}

// Peek returns the cached dataset without loading, or nil.
func (c *Cache) Peek() *models.Dataset {
	return c.current.Load()
}

// Loaded reports whether a dataset is cached.
func (c *Cache) Loaded() bool {
	return c.current.Load() != nil
}

// Invalidate drops the cached dataset. The next Get reloads from the source.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.generation.Add(1)
	c.current.Store(nil)
	c.mu.Unlock()
	metrics.RecordCacheInvalidation(cacheName)
	logging.Info().Str("cache", cacheName).Msg("Cache invalidated")
}

// Refresh invalidates the cache and loads a fresh dataset.
func (c *Cache) Refresh(ctx context.Context) (*models.Dataset, error) {
	c.Invalidate()
	return c.Get(ctx)
}
