// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// maxAbsYear keeps float-to-int conversion defined.
const maxAbsYear = 1e6

// ParseAmount coerces a Price or Rating cell. Empty, malformed, NaN, infinite
// and negative values all become 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseYear coerces a Publication Year cell. Fractional values are truncated;
// anything unparseable becomes models.DefaultYear.
func ParseYear(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) >= maxAbsYear {
		return models.DefaultYear
	}
	return int(math.Trunc(v))
}

// ParseLabel coerces an Author or Genre cell, substituting fallback for blanks.
func ParseLabel(s, fallback string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return fallback
}

// normalizeRow builds a Book from one deduplicated raw row.
func normalizeRow(row []string, plan columnPlan) models.Book {
	b := models.Book{
		Title:  strings.TrimSpace(plan.cell(row, models.ColumnTitle)),
		Author: ParseLabel(plan.cell(row, models.ColumnAuthor), models.UnknownAuthor),
		Genre:  ParseLabel(plan.cell(row, models.ColumnGenre), models.UnknownGenre),
		Year:   ParseYear(plan.cell(row, models.ColumnYear)),
		Price:  ParseAmount(plan.cell(row, models.ColumnPrice)),
		Rating: ParseAmount(plan.cell(row, models.ColumnRating)),
	}
	if len(plan.extra) > 0 {
		b.Extra = make([]string, len(plan.extra))
		for i, idx := range plan.extra {
			if idx < len(row) {
				b.Extra[i] = row[idx]
			}
		}
	}
	return b
}
