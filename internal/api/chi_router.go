// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/bestseller-analytics/internal/config"
	"github.com/tomtom215/bestseller-analytics/internal/middleware"
)

// Router wires the handlers into a Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler using the security settings in cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddlewareFromConfig(cfg),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(RequestIDWithLogging())
	r.Use(AccessLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	// ========================
	// Dashboard
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("dashboard"))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/", router.handler.Index)
		r.Get("/charts/{chart}.svg", router.handler.Chart)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("api"))
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/dashboard", router.handler.Dashboard)
		r.Get("/books", router.handler.Books)
		r.Get("/genres", router.handler.Genres)
		r.Get("/dataset", router.handler.DatasetInfo)
		r.With(router.chiMiddleware.RateLimitRefresh()).Post("/dataset/refresh", router.handler.RefreshDataset)
		r.Get("/predict", router.handler.Predict)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", router.handler.AnalyticsSummary)
			r.Get("/top-authors", router.handler.AnalyticsTopAuthors)
			r.Get("/genre-counts", router.handler.AnalyticsGenreCounts)
			r.Get("/genre-ratings", router.handler.AnalyticsGenreRatings)
			r.Get("/trends", router.handler.AnalyticsTrends)
		})
	})

	// ========================
	// Prometheus
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
