// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dashboard

import (
	"errors"
	"math"

	"github.com/tomtom215/bestseller-analytics/internal/analytics"
	"github.com/tomtom215/bestseller-analytics/internal/charts"
	"github.com/tomtom215/bestseller-analytics/internal/filter"
	"github.com/tomtom215/bestseller-analytics/internal/models"
	"github.com/tomtom215/bestseller-analytics/internal/predictor"
)

// User-facing messages.
const (
	PageTitle           = "Bestselling Books Dashboard"
	NoDataMessage       = "No data available for selected filters."
	EmptyDatasetMessage = "Dataset is empty, cannot train predictor."
	DegenerateMessage   = "The data cannot support a linear fit; showing the average rating instead."
)

// PreviewRows is the number of filtered rows shown in the dataset preview.
const PreviewRows = 20

// Page is everything the dashboard renders for one request.
type Page struct {
	Title   string             `json:"title"`
	Dataset models.DatasetInfo `json:"dataset"`
	Filters Filters            `json:"filters"`

	Summary models.Summary `json:"summary"`
	// Empty is true when the filters select no rows.
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`

	TopAuthors   []models.AuthorCount `json:"top_authors"`
	GenreRatings []models.GenreRating `json:"genre_ratings"`
	GenreCounts  []models.GenreCount  `json:"genre_counts"`
	Trends       []models.YearTrend   `json:"trends"`
	Charts       []ChartRef           `json:"charts"`

	Predictor Predictor `json:"predictor"`
	Preview   Preview   `json:"preview"`
}

// Filters describes the filter controls and their current state.
type Filters struct {
	Genres   []GenreOption `json:"genres"`
	YearLow  int           `json:"year_low"`
	YearHigh int           `json:"year_high"`
	YearMin  int           `json:"year_min"`
	YearMax  int           `json:"year_max"`
	Query    string        `json:"query"`
}

// GenreOption is one checkbox of the genre selector.
type GenreOption struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// ChartRef links to a rendered chart.
type ChartRef struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Predictor is the predictor section.
type Predictor struct {
	models.Prediction
	Range   predictor.Range `json:"range"`
	Message string          `json:"message,omitempty"`
}

// Preview is the dataset preview table.
type Preview struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
}

// Build assembles the page for ds and req. The predictor is fit on the whole
// dataset regardless of the filters.
func Build(ds *models.Dataset, req Request) Page {
	criteria := req.Criteria(ds)
	view := filter.Apply(ds, criteria)
	query := FilterQuery(criteria)

	p := Page{
		Title:   PageTitle,
		Dataset: ds.Info(),
		Filters: buildFilters(ds, criteria, query),
		Empty:   view.Empty(),
	}

	s := analytics.Summarize(view)
	p.Summary = models.Summary{Count: s.Count, MeanRating: Round2(s.MeanRating), MeanPrice: Round2(s.MeanPrice)}

	p.TopAuthors = analytics.TopAuthors(view, analytics.DefaultTopAuthors)
	p.GenreRatings = analytics.AverageRatingByGenre(view)
	p.GenreCounts = analytics.GenreCounts(view)
	p.Trends = analytics.TrendByYear(view)

	if view.Empty() {
		p.Message = NoDataMessage
		p.Charts = []ChartRef{}
	} else {
		p.Charts = make([]ChartRef, 0, len(charts.Names))
		for _, name := range charts.Names {
			p.Charts = append(p.Charts, ChartRef{
				Name:  name,
				Title: charts.Title(name),
				URL:   "/charts/" + name + ".svg?" + query,
			})
		}
	}

	p.Predictor = buildPredictor(ds, req)
	p.Preview = buildPreview(ds, view)
	return p
}

// Predict runs the predictor section on its own, for the predict endpoint.
func Predict(ds *models.Dataset, req Request) Predictor {
	return buildPredictor(ds, req)
}

func buildFilters(ds *models.Dataset, c filter.Criteria, query string) Filters {
	selected := make(map[string]bool, len(c.Genres))
	for _, g := range c.Genres {
		selected[g] = true
	}
	universe := filter.Genres(ds)
	opts := make([]GenreOption, len(universe))
	for i, g := range universe {
		opts[i] = GenreOption{Name: g, Selected: selected[g]}
	}
	// The form can only show years inside the observed range
	lo, hi, ok := filter.YearBounds(ds)
	yearMin, yearMax := c.YearMin, c.YearMax
	if ok {
		yearMin, yearMax = clampInt(yearMin, lo, hi), clampInt(yearMax, lo, hi)
	}
	return Filters{
		Genres:   opts,
		YearLow:  lo,
		YearHigh: hi,
		YearMin:  yearMin,
		YearMax:  yearMax,
		Query:    query,
	}
}

func buildPredictor(ds *models.Dataset, req Request) Predictor {
	rng, ok := predictor.Bounds(ds)
	if !ok {
		return Predictor{Message: EmptyDatasetMessage}
	}

	in := req.Inputs(rng)
	out := Predictor{
		Prediction: models.Prediction{Price: in.Price, Year: in.Year},
		Range:      rng,
	}

	model, err := predictor.Fit(ds)
	if err != nil {
		if errors.Is(err, predictor.ErrInsufficientData) {
			out.Message = EmptyDatasetMessage
		} else {
			out.Message = err.Error()
		}
		return out
	}

	out.Enabled = true
	out.Rating = Round2(model.Predict(float64(in.Price), float64(in.Year)))
	out.Caption = predictor.Caption
	if model.Degenerate() {
		out.Degenerate = true
		out.Notice = DegenerateMessage
	}
	return out
}

func buildPreview(ds *models.Dataset, view filter.View) Preview {
	cols := models.CanonicalColumns()
	if ds != nil && len(ds.Columns) > 0 {
		cols = ds.Columns
	}
	head := view.Head(PreviewRows)
	rows := make([][]string, len(head))
	for i, b := range head {
		rows[i] = b.Cells()
	}
	return Preview{Columns: cols, Rows: rows, Total: view.Len()}
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
