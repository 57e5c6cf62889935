// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"context"
	"io"
	"time"

	"golang.org/x/time/rate"
)

// ThrottledSource caps how often the upstream is fetched, across all callers.
// Repeated manual refreshes wait for a token instead of hammering the source.
type ThrottledSource struct {
	next    Source
	limiter *rate.Limiter
}

// NewThrottledSource allows one fetch per interval with the given burst.
func NewThrottledSource(next Source, interval time.Duration, burst int) *ThrottledSource {
	if burst < 1 {
		burst = 1
	}
	return &ThrottledSource{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), burst),
	}
}

// Fetch waits for a token, then fetches from the wrapped source. A context
// that ends while waiting is reported as ErrSourceUnavailable.
func (s *ThrottledSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, unavailable("throttle", err)
	}
	return s.next.Fetch(ctx)
}

func (s *ThrottledSource) String() string { return s.next.String() }
