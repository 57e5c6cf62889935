// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable reports that the dataset could not be fetched or parsed.
// Every error returned by Loader.Load and Cache.Get wraps it.
var ErrSourceUnavailable = errors.New("dataset source unavailable")

// ErrTooLarge is returned when the source body exceeds the configured size limit.
var ErrTooLarge = errors.New("dataset exceeds size limit")

// StatusError is returned by HTTPSource for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, op, err)
}
