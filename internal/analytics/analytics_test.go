// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/bestseller-analytics/internal/filter"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

func threeBooks() *models.Dataset {
	return &models.Dataset{Books: []models.Book{
		{Title: "one", Author: "A", Genre: "Fiction", Year: 2010, Price: 10, Rating: 4.0},
		{Title: "two", Author: "B", Genre: "Fiction", Year: 2012, Price: 20, Rating: 4.5},
		{Title: "three", Author: "A", Genre: "Drama", Year: 2010, Price: 15, Rating: 3.0},
	}}
}

func emptyView() filter.View {
	return filter.Apply(threeBooks(), filter.Criteria{})
}

func TestScenario_FilteredGenreRating(t *testing.T) {
	ds := threeBooks()
	v := filter.Apply(ds, filter.Criteria{Genres: []string{"Fiction"}, YearMin: 2010, YearMax: 2012})
	require.Equal(t, 2, v.Len())

	got := AverageRatingByGenre(v)
	require.Len(t, got, 1)
	assert.Equal(t, "Fiction", got[0].Genre)
	assert.InDelta(t, 4.25, got[0].MeanRating, 1e-9)
	assert.Equal(t, 2, got[0].Count)

	all := filter.All(ds)
	assert.NotPanics(t, func() {
		TopAuthors(all, DefaultTopAuthors)
		TrendByYear(all)
	})
}

func TestSummarize(t *testing.T) {
	s := Summarize(filter.All(threeBooks()))
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 11.5/3, s.MeanRating, 1e-9)
	assert.InDelta(t, 15.0, s.MeanPrice, 1e-9)

	assert.Equal(t, models.Summary{}, Summarize(emptyView()))
}

func TestTopAuthors(t *testing.T) {
	got := TopAuthors(filter.All(threeBooks()), DefaultTopAuthors)
	assert.Equal(t, []models.AuthorCount{{Author: "A", Count: 2}, {Author: "B", Count: 1}}, got)
}

func TestTopAuthors_TruncatesAndBreaksTiesByFirstSeen(t *testing.T) {
	ds := &models.Dataset{}
	for i := 0; i < 12; i++ {
		ds.Books = append(ds.Books, models.Book{Author: fmt.Sprintf("author-%02d", i), Genre: "G"})
	}
	ds.Books = append(ds.Books, models.Book{Author: "author-11", Genre: "G"})

	got := TopAuthors(filter.All(ds), 10)
	require.Len(t, got, 10)
	assert.Equal(t, models.AuthorCount{Author: "author-11", Count: 2}, got[0])
	assert.Equal(t, "author-00", got[1].Author)
	assert.Equal(t, "author-08", got[9].Author)
}

func TestTopAuthors_Edges(t *testing.T) {
	assert.Empty(t, TopAuthors(emptyView(), 10))
	assert.Empty(t, TopAuthors(filter.All(threeBooks()), 0))
	assert.Empty(t, TopAuthors(filter.All(threeBooks()), -3))
}

func TestGenreCounts(t *testing.T) {
	got := GenreCounts(filter.All(threeBooks()))
	assert.Equal(t, []models.GenreCount{{Genre: "Fiction", Count: 2}, {Genre: "Drama", Count: 1}}, got)
	assert.Empty(t, GenreCounts(emptyView()))
}

func TestAverageRatingByGenre_SortedByName(t *testing.T) {
	got := AverageRatingByGenre(filter.All(threeBooks()))
	require.Len(t, got, 2)
	assert.Equal(t, "Drama", got[0].Genre)
	assert.InDelta(t, 3.0, got[0].MeanRating, 1e-9)
	assert.Equal(t, "Fiction", got[1].Genre)
	assert.InDelta(t, 4.25, got[1].MeanRating, 1e-9)
}

func TestAverageRatingByGenre_Empty(t *testing.T) {
	got := AverageRatingByGenre(emptyView())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTrendByYear(t *testing.T) {
	got := TrendByYear(filter.All(threeBooks()))
	require.Len(t, got, 2)

	assert.Equal(t, 2010, got[0].Year)
	assert.InDelta(t, 3.5, got[0].MeanRating, 1e-9)
	assert.InDelta(t, 12.5, got[0].MeanPrice, 1e-9)
	assert.Equal(t, 2, got[0].Count)

	assert.Equal(t, 2012, got[1].Year)
	assert.InDelta(t, 4.5, got[1].MeanRating, 1e-9)
	assert.InDelta(t, 20.0, got[1].MeanPrice, 1e-9)

	assert.Empty(t, TrendByYear(emptyView()))
}
