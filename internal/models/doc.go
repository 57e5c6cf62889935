// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package models defines data structures shared across the dashboard.

Key Components:

  - Book: one normalized row of the bestseller dataset
  - Dataset: the immutable, deduplicated collection of books loaded from the source CSV
  - Summary, AuthorCount, GenreCount, GenreRating, YearTrend: aggregation results
  - APIResponse: standardized API response wrapper

Models carry JSON tags matching the API wire format. Column names of the source
file are exposed as constants (ColumnTitle, ColumnAuthor, ...) so the loader and
the preview table agree on the canonical header.
*/
package models
