// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package predictor

import (
	"math"

	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// Default slider positions.
const (
	DefaultPrice = 20
	DefaultYear  = 2015
)

// Range is the slider range for the predictor inputs.
type Range struct {
	PriceMin int `json:"price_min"`
	PriceMax int `json:"price_max"`
	YearMin  int `json:"year_min"`
	YearMax  int `json:"year_max"`
}

// Inputs are the user's predictor selections.
type Inputs struct {
	Price int `json:"price"`
	Year  int `json:"year"`
}

// DefaultInputs returns the default slider positions.
func DefaultInputs() Inputs {
	return Inputs{Price: DefaultPrice, Year: DefaultYear}
}

// Bounds returns the slider range over the full dataset. Price bounds are the
// truncated minimum and maximum price. ok is false for an empty dataset.
func Bounds(ds *models.Dataset) (r Range, ok bool) {
	if ds.Empty() {
		return Range{}, false
	}
	first := ds.Books[0]
	minP, maxP := first.Price, first.Price
	r.YearMin, r.YearMax = first.Year, first.Year
	for _, b := range ds.Books[1:] {
		minP = math.Min(minP, b.Price)
		maxP = math.Max(maxP, b.Price)
		r.YearMin = min(r.YearMin, b.Year)
		r.YearMax = max(r.YearMax, b.Year)
	}
	r.PriceMin = int(minP)
	r.PriceMax = int(maxP)
	return r, true
}

// Clamp moves each input inside r.
func (in Inputs) Clamp(r Range) Inputs {
	return Inputs{
		Price: clamp(in.Price, r.PriceMin, r.PriceMax),
		Year:  clamp(in.Year, r.YearMin, r.YearMax),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
