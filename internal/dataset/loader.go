// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"context"
	"io"
	"time"

	"github.com/tomtom215/bestseller-analytics/internal/logging"
	"github.com/tomtom215/bestseller-analytics/internal/metrics"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// Loader fetches, parses and normalizes the dataset.
type Loader struct {
	source Source
	rules  []ColumnRule
	now    func() time.Time
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRules replaces DefaultRules.
func WithRules(rules []ColumnRule) LoaderOption {
	return func(l *Loader) { l.rules = rules }
}

// WithClock sets the clock used for Dataset.LoadedAt.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) { l.now = now }
}

// NewLoader creates a loader reading from source.
func NewLoader(source Source, opts ...LoaderOption) *Loader {
	l := &Loader{
		source: source,
		rules:  DefaultRules,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the underlying source.
func (l *Loader) Source() Source {
	return l.source
}

// Load builds a fresh Dataset from the source. Errors wrap ErrSourceUnavailable.
func (l *Loader) Load(ctx context.Context) (*models.Dataset, error) {
	start := time.Now()
	ds, err := l.load(ctx)
	metrics.RecordDatasetLoad(time.Since(start), ds.Len(), duplicatesOf(ds), err)

	logger := logging.Ctx(ctx)
	if err != nil {
		logger.Error().Err(err).Str("source", l.source.String()).Dur("duration", time.Since(start)).Msg("Dataset load failed")
		return nil, err
	}
	logger.Info().
		Str("source", l.source.String()).
		Int("rows", ds.Len()).
		Int("raw_rows", ds.RawRows).
		Int("duplicates_removed", ds.DuplicatesRemoved).
		Strs("extra_columns", ds.ExtraColumns).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")
	return ds, nil
}

func (l *Loader) load(ctx context.Context) (*models.Dataset, error) {
	rc, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, unavailable("fetch", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, unavailable("read", err)
	}

	tbl, err := parseCSV(raw)
	if err != nil {
		return nil, unavailable("parse", err)
	}

	return l.build(tbl), nil
}

// build deduplicates and normalizes a parsed table.
func (l *Loader) build(tbl table) *models.Dataset {
	rows := dedupeRows(tbl.rows)
	plan := planColumns(tbl.header, l.rules)

	books := make([]models.Book, len(rows))
	for i, row := range rows {
		books[i] = normalizeRow(row, plan)
	}

	columns := append(models.CanonicalColumns(), plan.extraNames...)
	return &models.Dataset{
		Source:            l.source.String(),
		LoadedAt:          l.now().UTC(),
		Columns:           columns,
		ExtraColumns:      plan.extraNames,
		RawRows:           len(tbl.rows),
		DuplicatesRemoved: len(tbl.rows) - len(rows),
		Books:             books,
	}
}

func duplicatesOf(ds *models.Dataset) int {
	if ds == nil {
		return 0
	}
	return ds.DuplicatesRemoved
}
