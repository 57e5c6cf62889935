// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/bestseller-analytics/internal/charts"
	"github.com/tomtom215/bestseller-analytics/internal/dashboard"
	"github.com/tomtom215/bestseller-analytics/internal/filter"
	"github.com/tomtom215/bestseller-analytics/internal/logging"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// Index renders the dashboard page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseDashboardRequest(r)
	if apiErr != nil {
		h.renderError(w, r, http.StatusBadRequest, "Invalid dashboard parameters", apiErr.Message)
		return
	}

	ds, err := h.store.Get(r.Context())
	if err != nil {
		status, _, message := classifyLoadError(err)
		logging.Ctx(r.Context()).Error().Err(err).Msg("Dashboard could not load dataset")
		h.renderError(w, r, status, message, err.Error())
		return
	}

	page := dashboard.Build(ds, req.toDashboard(h.config))

	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, page); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render dashboard")
		h.renderError(w, r, http.StatusInternalServerError, "Failed to render dashboard", "")
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

// Chart renders one chart as SVG for the filters in the query string.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "chart")
	if !charts.Known(name) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Unknown chart: "+sanitizeLogValue(name), nil)
		return
	}

	req, apiErr := parseFilterOnly(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	ds, _, ok := h.dataset(w, r)
	if !ok {
		return
	}

	criteria := req.toDashboard().Criteria(ds)
	key := chartKey(ds, name, criteria)
	if svg, ok := h.svgCache.Get(key); ok {
		writeSVG(w, svg)
		return
	}

	view := filter.Apply(ds, criteria)
	if view.Empty() {
		respondError(w, http.StatusNotFound, CodeNoData, dashboard.NoDataMessage, nil)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, name, view, h.chartOpts); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			respondError(w, http.StatusNotFound, CodeNoData, dashboard.NoDataMessage, nil)
			return
		}
		respondError(w, http.StatusInternalServerError, CodeChartFailed, "Failed to render chart", err)
		return
	}

	h.svgCache.Add(key, buf.Bytes())
	writeSVG(w, buf.Bytes())
}

// chartKey identifies one rendered chart. The load time ties it to a single
// dataset generation.
func chartKey(ds *models.Dataset, name string, c filter.Criteria) string {
	return strconv.FormatInt(ds.LoadedAt.UnixNano(), 10) + "|" + name + "|" + dashboard.FilterQuery(c)
}

func writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", charts.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// Dashboard returns the page model as JSON.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, apiErr := parseDashboardRequest(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	ds, cached, ok := h.dataset(w, r)
	if !ok {
		return
	}
	respondData(w, dashboard.Build(ds, req.toDashboard(h.config)), start, cached)
}
