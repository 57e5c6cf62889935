// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/bestseller-analytics/internal/analytics"
	"github.com/tomtom215/bestseller-analytics/internal/dashboard"
	"github.com/tomtom215/bestseller-analytics/internal/filter"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// filteredView parses the filter query and applies it to the cached dataset.
// It writes the error response itself and returns ok=false on failure.
func (h *Handler) filteredView(w http.ResponseWriter, r *http.Request) (view filter.View, cached, ok bool) {
	req, apiErr := parseFilterOnly(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return filter.View{}, false, false
	}
	ds, cached, ok := h.dataset(w, r)
	if !ok {
		return filter.View{}, false, false
	}
	return filter.Apply(ds, req.toDashboard().Criteria(ds)), cached, true
}

// AnalyticsSummary returns count, mean rating and mean price of the view,
// rounded to two decimals.
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	view, cached, ok := h.filteredView(w, r)
	if !ok {
		return
	}
	s := analytics.Summarize(view)
	respondData(w, models.Summary{
		Count:      s.Count,
		MeanRating: dashboard.Round2(s.MeanRating),
		MeanPrice:  dashboard.Round2(s.MeanPrice),
	}, start, cached)
}

// AnalyticsTopAuthors returns the most frequent authors (limit, default 10).
func (h *Handler) AnalyticsTopAuthors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, limit, apiErr := parseLimited(r, analytics.DefaultTopAuthors)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}
	ds, cached, ok := h.dataset(w, r)
	if !ok {
		return
	}
	view := filter.Apply(ds, req.toDashboard().Criteria(ds))
	respondData(w, analytics.TopAuthors(view, limit), start, cached)
}

// AnalyticsGenreCounts returns the number of books per genre.
func (h *Handler) AnalyticsGenreCounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	view, cached, ok := h.filteredView(w, r)
	if !ok {
		return
	}
	respondData(w, analytics.GenreCounts(view), start, cached)
}

// AnalyticsGenreRatings returns the mean rating per genre.
func (h *Handler) AnalyticsGenreRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	view, cached, ok := h.filteredView(w, r)
	if !ok {
		return
	}
	respondData(w, analytics.AverageRatingByGenre(view), start, cached)
}

// AnalyticsTrends returns mean rating and price per publication year.
func (h *Handler) AnalyticsTrends(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	view, cached, ok := h.filteredView(w, r)
	if !ok {
		return
	}
	respondData(w, analytics.TrendByYear(view), start, cached)
}

// Predict returns the predicted rating for price and year. The model is fit
// on the whole dataset; filter parameters are ignored.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, apiErr := parsePredictOnly(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}
	ds, cached, ok := h.dataset(w, r)
	if !ok {
		return
	}
	full := DashboardRequest{PredictRequest: req}
	respondData(w, dashboard.Predict(ds, full.toDashboard(h.config)), start, cached)
}
