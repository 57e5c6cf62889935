// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dashboard

import (
	"net/url"
	"strconv"

	"github.com/tomtom215/bestseller-analytics/internal/filter"
	"github.com/tomtom215/bestseller-analytics/internal/models"
	"github.com/tomtom215/bestseller-analytics/internal/predictor"
)

// Request holds the interactive state of one dashboard render. Nil fields
// mean "use the default", which is every genre, the full year range and the
// default predictor inputs.
type Request struct {
	// Genres is the selected genre set. GenresSet distinguishes an explicit
	// empty selection from no selection at all.
	Genres    []string
	GenresSet bool

	YearMin *int
	YearMax *int

	Price *int
	Year  *int
}

// Criteria resolves r against ds. Explicit year bounds are used as given, so
// a window outside the observed range selects nothing.
func (r Request) Criteria(ds *models.Dataset) filter.Criteria {
	c := filter.DefaultCriteria(ds)
	if r.GenresSet {
		c.Genres = r.Genres
	}
	if r.YearMin != nil {
		c.YearMin = *r.YearMin
	}
	if r.YearMax != nil {
		c.YearMax = *r.YearMax
	}
	return c
}

// Inputs resolves the predictor inputs against the slider range.
func (r Request) Inputs(rng predictor.Range) predictor.Inputs {
	in := predictor.DefaultInputs()
	if r.Price != nil {
		in.Price = *r.Price
	}
	if r.Year != nil {
		in.Year = *r.Year
	}
	return in.Clamp(rng)
}

// FilterQuery encodes the filter part of c so that chart and API links
// reproduce the same view.
func FilterQuery(c filter.Criteria) string {
	q := url.Values{}
	if len(c.Genres) == 0 {
		q.Set("genre", "")
	}
	for _, g := range c.Genres {
		q.Add("genre", g)
	}
	q.Set("year_min", strconv.Itoa(c.YearMin))
	q.Set("year_max", strconv.Itoa(c.YearMax))
	return q.Encode()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
