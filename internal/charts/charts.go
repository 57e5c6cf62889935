// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

// Package charts renders the dashboard charts as SVG with go-chart.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tomtom215/bestseller-analytics/internal/analytics"
	"github.com/tomtom215/bestseller-analytics/internal/filter"
	"github.com/tomtom215/bestseller-analytics/internal/metrics"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// Chart names, used in URLs.
const (
	TopAuthors   = "top-authors"
	GenreRatings = "genre-ratings"
	GenreCounts  = "genre-counts"
	RatingTrend  = "rating-trend"
	PriceTrend   = "price-trend"
)

// Names lists every chart in page order.
var Names = []string{TopAuthors, GenreRatings, GenreCounts, RatingTrend, PriceTrend}

var (
	// ErrNoData is returned when there is nothing to plot.
	ErrNoData = errors.New("no data to chart")
	// ErrUnknownChart is returned by Render for an unrecognized name.
	ErrUnknownChart = errors.New("unknown chart")
)

// ContentType is the MIME type of rendered charts.
const ContentType = "image/svg+xml"

// maxLabel bounds bar labels so long author names do not overlap.
const maxLabel = 18

var (
	barColor  = drawing.ColorFromHex("4c78a8")
	lineColor = drawing.ColorFromHex("f58518")
)

// Options control the rendered image size.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions returns the default image size.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 400}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	return o
}

// Known reports whether name is a chart this package can render.
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Title returns the heading shown above a chart.
func Title(name string) string {
	switch name {
	case TopAuthors:
		return "Top 10 Authors by Number of Bestsellers"
	case GenreRatings:
		return "Average Rating by Genre"
	case GenreCounts:
		return "Number of Books by Genre"
	case RatingTrend:
		return "Average Rating Over Years"
	case PriceTrend:
		return "Average Price Over Years"
	default:
		return name
	}
}

// Render aggregates v for the named chart and writes it as SVG.
func Render(w io.Writer, name string, v filter.View, opts Options) error {
	start := time.Now()
	var err error
	switch name {
	case TopAuthors:
		err = RenderTopAuthors(w, analytics.TopAuthors(v, analytics.DefaultTopAuthors), opts)
	case GenreRatings:
		err = RenderGenreRatings(w, analytics.AverageRatingByGenre(v), opts)
	case GenreCounts:
		err = RenderGenreCounts(w, analytics.GenreCounts(v), opts)
	case RatingTrend:
		err = RenderRatingTrend(w, analytics.TrendByYear(v), opts)
	case PriceTrend:
		err = RenderPriceTrend(w, analytics.TrendByYear(v), opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	if err == nil {
		metrics.RecordChartRender(name, time.Since(start))
	}
	return err
}

// RenderTopAuthors draws a bar chart of bestseller counts per author.
func RenderTopAuthors(w io.Writer, data []models.AuthorCount, opts Options) error {
	bars := make([]chart.Value, len(data))
	for i, d := range data {
		bars[i] = chart.Value{Label: shorten(d.Author), Value: float64(d.Count)}
	}
	return renderBars(w, Title(TopAuthors), "Count", bars, nil, opts)
}

// RenderGenreRatings draws a bar chart of mean rating per genre on a 0-5 scale.
func RenderGenreRatings(w io.Writer, data []models.GenreRating, opts Options) error {
	bars := make([]chart.Value, len(data))
	for i, d := range data {
		bars[i] = chart.Value{Label: shorten(d.Genre), Value: d.MeanRating}
	}
	top := 5.0
	for _, b := range bars {
		top = math.Max(top, b.Value)
	}
	return renderBars(w, Title(GenreRatings), "Rating", bars, &chart.ContinuousRange{Min: 0, Max: top}, opts)
}

// RenderGenreCounts draws a bar chart of rows per genre.
func RenderGenreCounts(w io.Writer, data []models.GenreCount, opts Options) error {
	bars := make([]chart.Value, len(data))
	for i, d := range data {
		bars[i] = chart.Value{Label: shorten(d.Genre), Value: float64(d.Count)}
	}
	return renderBars(w, Title(GenreCounts), "Count", bars, nil, opts)
}

// RenderRatingTrend draws mean rating per year as a line.
func RenderRatingTrend(w io.Writer, data []models.YearTrend, opts Options) error {
	return renderTrend(w, Title(RatingTrend), "Rating", data, func(t models.YearTrend) float64 { return t.MeanRating }, opts)
}

// RenderPriceTrend draws mean price per year as a line.
func RenderPriceTrend(w io.Writer, data []models.YearTrend, opts Options) error {
	return renderTrend(w, Title(PriceTrend), "Price", data, func(t models.YearTrend) float64 { return t.MeanPrice }, opts)
}

func renderBars(w io.Writer, title, yName string, bars []chart.Value, yRange *chart.ContinuousRange, opts Options) error {
	if len(bars) == 0 {
		return ErrNoData
	}
	opts = opts.normalized()

	if yRange == nil {
		top := 0.0
		for _, b := range bars {
			top = math.Max(top, b.Value)
		}
		yRange = &chart.ContinuousRange{Min: 0, Max: niceCeil(top)}
	}
	for i := range bars {
		bars[i].Style = chart.Style{FillColor: barColor, StrokeColor: barColor, StrokeWidth: 1}
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		BarWidth:   barWidth(opts.Width, len(bars)),
		XAxis:      chart.Style{FontSize: 8},
		YAxis: chart.YAxis{
			Name:  yName,
			Range: yRange,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(f, 'f', -1, 64)
				}
				return ""
			},
		},
		Bars: bars,
	}
	if err := bc.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render %s: %w", title, err)
	}
	return nil
}

func renderTrend(w io.Writer, title, yName string, data []models.YearTrend, value func(models.YearTrend) float64, opts Options) error {
	if len(data) == 0 {
		return ErrNoData
	}
	opts = opts.normalized()

	xs := make([]float64, len(data))
	ys := make([]float64, len(data))
	for i, d := range data {
		xs[i] = float64(d.Year)
		ys[i] = value(d)
	}

	// go-chart cannot draw a line through a single point
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	ticks := make([]chart.Tick, 0, len(data))
	for _, d := range data {
		ticks = append(ticks, chart.Tick{Value: float64(d.Year), Label: strconv.Itoa(d.Year)})
	}

	lo, hi := padRange(ys)
	ch := chart.Chart{
		Title:      title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Publication Year",
			Range: &chart.ContinuousRange{Min: xs[0] - 0.5, Max: xs[len(xs)-1] + 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(f, 'f', 2, 64)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yName,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    3,
				},
			},
		},
	}
	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render %s: %w", title, err)
	}
	return nil
}

// padRange returns a y range around values that is never zero-height.
func padRange(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span < 1e-9 {
		return lo - 0.5, hi + 0.5
	}
	return lo - span*0.1, hi + span*0.1
}

// niceCeil rounds up to a value that leaves headroom above the tallest bar.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return math.Ceil(v * 1.1)
}

func barWidth(width, bars int) int {
	w := width / (bars * 2)
	if w > 60 {
		return 60
	}
	if w < 4 {
		return 4
	}
	return w
}

func shorten(s string) string {
	r := []rune(s)
	if len(r) <= maxLabel {
		return s
	}
	return string(r[:maxLabel-1]) + "…"
}
