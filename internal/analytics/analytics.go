// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

// Package analytics computes the dashboard aggregations over a filtered view.
//
// Every function is pure and tolerates an empty view by returning a zero or
// empty result. Callers decide whether an empty result is worth rendering.
package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/bestseller-analytics/internal/filter"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// DefaultTopAuthors is the number of authors shown on the dashboard.
const DefaultTopAuthors = 10

// Summarize returns the row count and the mean rating and price of v.
func Summarize(v filter.View) models.Summary {
	if v.Empty() {
		return models.Summary{}
	}
	ratings, prices := columns(v)
	return models.Summary{
		Count:      v.Len(),
		MeanRating: stat.Mean(ratings, nil),
		MeanPrice:  stat.Mean(prices, nil),
	}
}

// TopAuthors returns the n authors with the most rows, most frequent first.
// Ties keep first-seen order. Fewer than n distinct authors yields fewer entries.
func TopAuthors(v filter.View, n int) []models.AuthorCount {
	groups := groupBy(v, func(b *models.Book) string { return b.Author })
	sort.SliceStable(groups, func(i, j int) bool { return len(groups[i].rows) > len(groups[j].rows) })

	if n < 0 {
		n = 0
	}
	if len(groups) > n {
		groups = groups[:n]
	}
	out := make([]models.AuthorCount, len(groups))
	for i, g := range groups {
		out[i] = models.AuthorCount{Author: g.key, Count: len(g.rows)}
	}
	return out
}

// GenreCounts returns the number of rows per genre, most frequent first.
func GenreCounts(v filter.View) []models.GenreCount {
	groups := groupBy(v, func(b *models.Book) string { return b.Genre })
	sort.SliceStable(groups, func(i, j int) bool { return len(groups[i].rows) > len(groups[j].rows) })

	out := make([]models.GenreCount, len(groups))
	for i, g := range groups {
		out[i] = models.GenreCount{Genre: g.key, Count: len(g.rows)}
	}
	return out
}

// AverageRatingByGenre returns the mean rating per genre sorted by genre name.
func AverageRatingByGenre(v filter.View) []models.GenreRating {
	groups := groupBy(v, func(b *models.Book) string { return b.Genre })
	sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })

	out := make([]models.GenreRating, len(groups))
	for i, g := range groups {
		ratings := pluck(v, g.rows, func(b *models.Book) float64 { return b.Rating })
		out[i] = models.GenreRating{
			Genre:      g.key,
			MeanRating: stat.Mean(ratings, nil),
			Count:      len(g.rows),
		}
	}
	return out
}

// TrendByYear returns the mean rating and price per publication year in
// ascending year order.
func TrendByYear(v filter.View) []models.YearTrend {
	byYear := make(map[int][]int)
	for i := 0; i < v.Len(); i++ {
		y := v.Book(i).Year
		byYear[y] = append(byYear[y], i)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]models.YearTrend, len(years))
	for i, y := range years {
		rows := byYear[y]
		out[i] = models.YearTrend{
			Year:       y,
			MeanRating: stat.Mean(pluck(v, rows, func(b *models.Book) float64 { return b.Rating }), nil),
			MeanPrice:  stat.Mean(pluck(v, rows, func(b *models.Book) float64 { return b.Price }), nil),
			Count:      len(rows),
		}
	}
	return out
}

type group struct {
	key  string
	rows []int
}

// groupBy buckets view positions by key in first-seen order.
func groupBy(v filter.View, key func(*models.Book) string) []group {
	pos := make(map[string]int)
	var groups []group
	for i := 0; i < v.Len(); i++ {
		k := key(v.Book(i))
		j, ok := pos[k]
		if !ok {
			j = len(groups)
			pos[k] = j
			groups = append(groups, group{key: k})
		}
		groups[j].rows = append(groups[j].rows, i)
	}
	return groups
}

func pluck(v filter.View, rows []int, field func(*models.Book) float64) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = field(v.Book(r))
	}
	return out
}

func columns(v filter.View) (ratings, prices []float64) {
	ratings = make([]float64, v.Len())
	prices = make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		b := v.Book(i)
		ratings[i] = b.Rating
		prices[i] = b.Price
	}
	return ratings, prices
}
