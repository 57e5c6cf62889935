// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

// Package filter selects the rows of a dataset matching the dashboard's genre
// and publication-year controls.
package filter

import (
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// Criteria is the user's filter selection. A row matches when its genre is in
// Genres and YearMin <= year <= YearMax.
type Criteria struct {
	Genres  []string `json:"genres"`
	YearMin int      `json:"year_min"`
	YearMax int      `json:"year_max"`
}

// View is a non-owning selection of dataset rows. The zero value is empty.
type View struct {
	ds      *models.Dataset
	indices []int
}

// Apply returns the rows of ds matching c, in dataset order. An empty genre
// set or an inverted year range yields an empty view.
func Apply(ds *models.Dataset, c Criteria) View {
	v := View{ds: ds}
	if ds.Empty() || len(c.Genres) == 0 || c.YearMin > c.YearMax {
		return v
	}

	genres := make(map[string]struct{}, len(c.Genres))
	for _, g := range c.Genres {
		genres[g] = struct{}{}
	}

	for i := range ds.Books {
		b := &ds.Books[i]
		if _, ok := genres[b.Genre]; !ok {
			continue
		}
		if b.Year < c.YearMin || b.Year > c.YearMax {
			continue
		}
		v.indices = append(v.indices, i)
	}
	return v
}

// All returns a view over every row of ds.
func All(ds *models.Dataset) View {
	v := View{ds: ds, indices: make([]int, ds.Len())}
	for i := range v.indices {
		v.indices[i] = i
	}
	return v
}

// Len returns the number of rows in the view.
func (v View) Len() int { return len(v.indices) }

// Empty reports whether the view has no rows.
func (v View) Empty() bool { return len(v.indices) == 0 }

// Book returns the i-th row of the view.
func (v View) Book(i int) *models.Book {
	return &v.ds.Books[v.indices[i]]
}

// Books copies the rows of the view.
func (v View) Books() []models.Book {
	out := make([]models.Book, len(v.indices))
	for i, idx := range v.indices {
		out[i] = v.ds.Books[idx]
	}
	return out
}

// Head returns at most n leading rows.
func (v View) Head(n int) []models.Book {
	if n < 0 {
		n = 0
	}
	if n < len(v.indices) {
		return View{ds: v.ds, indices: v.indices[:n]}.Books()
	}
	return v.Books()
}

// Dataset returns the dataset the view selects from.
func (v View) Dataset() *models.Dataset { return v.ds }

// Genres returns the distinct genres of ds in first-seen order.
func Genres(ds *models.Dataset) []string {
	if ds.Empty() {
		return []string{}
	}
	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for i := range ds.Books {
		g := ds.Books[i].Genre
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// YearBounds returns the smallest and largest publication year in ds.
// ok is false for an empty dataset.
func YearBounds(ds *models.Dataset) (lo, hi int, ok bool) {
	if ds.Empty() {
		return 0, 0, false
	}
	lo, hi = ds.Books[0].Year, ds.Books[0].Year
	for i := range ds.Books[1:] {
		y := ds.Books[i+1].Year
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return lo, hi, true
}

// DefaultCriteria selects every genre over the full observed year range, so
// that Apply(ds, DefaultCriteria(ds)) equals All(ds).
func DefaultCriteria(ds *models.Dataset) Criteria {
	lo, hi, _ := YearBounds(ds)
	return Criteria{Genres: Genres(ds), YearMin: lo, YearMax: hi}
}
