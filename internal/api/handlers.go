// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/bestseller-analytics/internal/cache"
	"github.com/tomtom215/bestseller-analytics/internal/charts"
	"github.com/tomtom215/bestseller-analytics/internal/config"
	"github.com/tomtom215/bestseller-analytics/internal/dashboard"
	"github.com/tomtom215/bestseller-analytics/internal/dataset"
	"github.com/tomtom215/bestseller-analytics/internal/logging"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// chartCacheSize bounds the number of rendered SVGs kept in memory.
const chartCacheSize = 256

// DatasetStore is the dataset cache as seen by the handlers. *dataset.Cache
// implements it.
type DatasetStore interface {
	Get(ctx context.Context) (*models.Dataset, error)
	Peek() *models.Dataset
	Refresh(ctx context.Context) (*models.Dataset, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, dataset access
//   - handlers_dashboard.go: HTML page, SVG charts and the page model
//   - handlers_data.go: books, genres, dataset info and refresh
//   - handlers_analytics.go: aggregations and the predictor
//   - handlers_health.go: health probes
type Handler struct {
	store     DatasetStore
	config    *config.Config
	renderer  *dashboard.Renderer
	chartOpts charts.Options
	svgCache  *cache.LRU[[]byte]
	version   string
	startTime time.Time
}

// NewHandler creates the handler set. cfg may be nil, in which case chart and
// predictor defaults apply.
func NewHandler(store DatasetStore, cfg *config.Config, version string) (*Handler, error) {
	renderer, err := dashboard.NewRenderer()
	if err != nil {
		return nil, err
	}

	opts := charts.DefaultOptions()
	if cfg != nil {
		opts = charts.Options{Width: cfg.Charts.Width, Height: cfg.Charts.Height}
	}

	return &Handler{
		store:     store,
		config:    cfg,
		renderer:  renderer,
		chartOpts: opts,
		svgCache:  cache.NewLRU[[]byte]("charts", chartCacheSize),
		version:   version,
		startTime: time.Now(),
	}, nil
}

// dataset returns the cached dataset for a JSON endpoint. On failure it writes
// the error response and returns ok=false.
func (h *Handler) dataset(w http.ResponseWriter, r *http.Request) (ds *models.Dataset, cached, ok bool) {
	cached = h.store.Peek() != nil
	ds, err := h.store.Get(r.Context())
	if err != nil {
		status, code, message := classifyLoadError(err)
		respondErrorDetails(w, status, code, message, map[string]interface{}{"error": err.Error()}, err)
		return nil, false, false
	}
	return ds, cached, true
}

// classifyLoadError maps a dataset load failure to an HTTP response.
func classifyLoadError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, dataset.ErrSourceUnavailable):
		return http.StatusServiceUnavailable, CodeSourceUnavailable, "Dataset source is unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, CodeSourceUnavailable, "Dataset load did not finish"
	default:
		return http.StatusInternalServerError, CodeInternal, "Failed to load dataset"
	}
}

// renderError writes the HTML error page.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message, detail string) {
	var buf bytes.Buffer
	err := h.renderer.RenderError(&buf, dashboard.ErrorPage{Status: status, Message: message, Detail: detail})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render error page")
		http.Error(w, message, status)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, CodeNotFound, "Resource not found", nil)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
}
