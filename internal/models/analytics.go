// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package models

// Summary holds the headline metrics of a filtered view.
// Means are zero for an empty view.
type Summary struct {
	Count      int     `json:"count"`
	MeanRating float64 `json:"mean_rating"`
	MeanPrice  float64 `json:"mean_price"`
}

// AuthorCount is the number of bestseller entries for one author.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// GenreCount is the number of bestseller entries for one genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// GenreRating is the mean rating of the books in one genre.
type GenreRating struct {
	Genre      string  `json:"genre"`
	MeanRating float64 `json:"mean_rating"`
	Count      int     `json:"count"`
}

// YearTrend is the mean rating and price of the books published in one year.
type YearTrend struct {
	Year       int     `json:"year"`
	MeanRating float64 `json:"mean_rating"`
	MeanPrice  float64 `json:"mean_price"`
	Count      int     `json:"count"`
}

// Prediction is the predictor output for one set of inputs.
type Prediction struct {
	Enabled    bool    `json:"enabled"`
	Price      int     `json:"price"`
	Year       int     `json:"year"`
	Rating     float64 `json:"rating"`
	Degenerate bool    `json:"degenerate"`
	Notice     string  `json:"notice,omitempty"`
	Caption    string  `json:"caption,omitempty"`
}
