// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/bestseller-analytics/internal/filter"
	"github.com/tomtom215/bestseller-analytics/internal/logging"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// Books returns the first rows of the filtered view.
func (h *Handler) Books(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, limit, apiErr := parseLimited(r, defaultBookLimit)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	ds, cached, ok := h.dataset(w, r)
	if !ok {
		return
	}

	view := filter.Apply(ds, req.toDashboard().Criteria(ds))
	respondData(w, models.BookPage{
		Total: view.Len(),
		Limit: limit,
		Books: view.Head(limit),
	}, start, cached)
}

// Genres returns the values the filters can take.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ds, cached, ok := h.dataset(w, r)
	if !ok {
		return
	}

	lo, hi, _ := filter.YearBounds(ds)
	respondData(w, models.FilterUniverse{
		Genres:  filter.Genres(ds),
		YearMin: lo,
		YearMax: hi,
	}, start, cached)
}

// DatasetInfo describes the cached dataset.
func (h *Handler) DatasetInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ds, cached, ok := h.dataset(w, r)
	if !ok {
		return
	}
	respondData(w, ds.Info(), start, cached)
}

// RefreshDataset drops the cached dataset and loads it again. With
// ?redirect=1 (the dashboard's reload button) it answers with a redirect to
// the page instead of JSON.
func (h *Handler) RefreshDataset(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	redirect := r.URL.Query().Get("redirect") == "1"
	log := logging.Ctx(r.Context())

	h.svgCache.Clear()
	ds, err := h.store.Refresh(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("Dataset refresh failed")
		status, code, message := classifyLoadError(err)
		if redirect {
			h.renderError(w, r, status, message, err.Error())
			return
		}
		respondErrorDetails(w, status, code, message, map[string]interface{}{"error": err.Error()}, nil)
		return
	}

	log.Info().
		Int("rows", ds.Len()).
		Int("duplicates_removed", ds.DuplicatesRemoved).
		Dur("duration", time.Since(start)).
		Msg("Dataset refreshed")

	if redirect {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	respondData(w, ds.Info(), start, false)
}
