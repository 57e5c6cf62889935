// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"strings"

	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// ColumnRule maps a source column onto a canonical column.
//
// When Alias is set, present in the header, and Canonical is absent, the alias
// column is renamed to Canonical. When Canonical is still absent afterwards and
// HasDefault is true, every row gets Default.
type ColumnRule struct {
	Canonical  string
	Alias      string
	Default    string
	HasDefault bool
}

// DefaultRules is the ordered rule list applied to every load. Renames run
// before defaults so that a renamed alias is never shadowed by a default.
var DefaultRules = []ColumnRule{
	{Canonical: models.ColumnTitle, Alias: "Name"},
	{Canonical: models.ColumnYear, Alias: "Year"},
	{Canonical: models.ColumnRating, Alias: "User Rating"},
	{Canonical: models.ColumnGenre, Default: models.UnknownGenre, HasDefault: true},
	{Canonical: models.ColumnYear, Default: "2000", HasDefault: true},
	{Canonical: models.ColumnPrice, Default: "0.0", HasDefault: true},
	{Canonical: models.ColumnRating, Default: "0.0", HasDefault: true},
	{Canonical: models.ColumnAuthor, Default: models.UnknownAuthor, HasDefault: true},
}

// columnPlan says where each canonical value comes from for one header.
type columnPlan struct {
	// index of the source column per canonical name, -1 when defaulted
	index map[string]int
	// defaults for canonical columns with no source column
	defaults map[string]string
	// source indexes and names of pass-through columns, header order
	extra      []int
	extraNames []string
	renamed    map[string]string
}

// planColumns applies rules to header.
func planColumns(header []string, rules []ColumnRule) columnPlan {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	find := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		return -1
	}

	plan := columnPlan{
		index:    make(map[string]int),
		defaults: make(map[string]string),
		renamed:  make(map[string]string),
	}

	for _, r := range rules {
		if r.Alias == "" {
			continue
		}
		if find(r.Canonical) >= 0 {
			continue
		}
		if i := find(r.Alias); i >= 0 {
			names[i] = r.Canonical
			plan.renamed[r.Alias] = r.Canonical
		}
	}

	for _, r := range rules {
		if _, done := plan.index[r.Canonical]; done {
			continue
		}
		if i := find(r.Canonical); i >= 0 {
			plan.index[r.Canonical] = i
			continue
		}
		if r.HasDefault {
			plan.index[r.Canonical] = -1
			plan.defaults[r.Canonical] = r.Default
		}
	}

	canonical := make(map[string]bool, len(plan.index))
	for name := range plan.index {
		canonical[name] = true
	}
	for i, n := range names {
		if canonical[n] && plan.index[n] == i {
			continue
		}
		plan.extra = append(plan.extra, i)
		plan.extraNames = append(plan.extraNames, n)
	}
	return plan
}

// cell returns the raw value of a canonical column in row.
func (p columnPlan) cell(row []string, canonical string) string {
	i, ok := p.index[canonical]
	if !ok {
		return ""
	}
	if i < 0 {
		return p.defaults[canonical]
	}
	if i >= len(row) {
		return ""
	}
	return row[i]
}
