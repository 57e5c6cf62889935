// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/bestseller-analytics/internal/config"
	"github.com/tomtom215/bestseller-analytics/internal/dashboard"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

// defaultBookLimit matches the dashboard preview size.
const defaultBookLimit = dashboard.PreviewRows

// FilterRequest is the validated filter part of a query string.
//
// Genres are the non-empty "genre" values. GenresSet records whether the
// parameter appeared at all, so "?genre=" (select nothing) differs from no
// parameter (select everything).
type FilterRequest struct {
	Genres    []string `query:"genre" validate:"max=200,dive,genre"`
	GenresSet bool     `query:"-"`
	YearMin   *int     `query:"year_min" validate:"omitempty,min=0,max=9999"`
	YearMax   *int     `query:"year_max" validate:"omitempty,min=0,max=9999"`
}

// PredictRequest holds the predictor inputs.
type PredictRequest struct {
	Price *int `query:"price" validate:"omitempty,min=0,max=100000"`
	Year  *int `query:"year" validate:"omitempty,min=0,max=9999"`
}

// DashboardRequest is the full interactive state of the page.
type DashboardRequest struct {
	FilterRequest
	PredictRequest
}

// BooksRequest represents the validated query parameters for /books and
// /analytics/top-authors.
type BooksRequest struct {
	FilterRequest
	Limit int `query:"limit" validate:"min=1,max=100"`
}

func parseFilterRequest(q url.Values) (FilterRequest, *models.APIError) {
	var req FilterRequest
	if values, ok := q["genre"]; ok {
		req.GenresSet = true
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				req.Genres = append(req.Genres, v)
			}
		}
	}

	var apiErr *models.APIError
	if req.YearMin, apiErr = intParam(q, "year_min"); apiErr != nil {
		return req, apiErr
	}
	if req.YearMax, apiErr = intParam(q, "year_max"); apiErr != nil {
		return req, apiErr
	}
	return req, nil
}

func parsePredictRequest(q url.Values) (PredictRequest, *models.APIError) {
	var req PredictRequest
	var apiErr *models.APIError
	if req.Price, apiErr = intParam(q, "price"); apiErr != nil {
		return req, apiErr
	}
	if req.Year, apiErr = intParam(q, "year"); apiErr != nil {
		return req, apiErr
	}
	return req, nil
}

// parseDashboardRequest parses and validates the page state from r.
func parseDashboardRequest(r *http.Request) (DashboardRequest, *models.APIError) {
	q := r.URL.Query()
	var req DashboardRequest
	var apiErr *models.APIError
	if req.FilterRequest, apiErr = parseFilterRequest(q); apiErr != nil {
		return req, apiErr
	}
	if req.PredictRequest, apiErr = parsePredictRequest(q); apiErr != nil {
		return req, apiErr
	}
	return req, validateRequest(&req)
}

func parseFilterOnly(r *http.Request) (FilterRequest, *models.APIError) {
	req, apiErr := parseFilterRequest(r.URL.Query())
	if apiErr != nil {
		return req, apiErr
	}
	return req, validateRequest(&req)
}

func parsePredictOnly(r *http.Request) (PredictRequest, *models.APIError) {
	req, apiErr := parsePredictRequest(r.URL.Query())
	if apiErr != nil {
		return req, apiErr
	}
	return req, validateRequest(&req)
}

// parseLimited parses a filter plus a "limit" parameter.
func parseLimited(r *http.Request, defaultLimit int) (FilterRequest, int, *models.APIError) {
	q := r.URL.Query()
	filter, apiErr := parseFilterRequest(q)
	if apiErr != nil {
		return filter, 0, apiErr
	}
	limit := defaultLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return filter, 0, paramError("limit", v, "an integer")
		}
		limit = n
	}
	req := BooksRequest{FilterRequest: filter, Limit: limit}
	return filter, limit, validateRequest(&req)
}

// intParam returns nil when key is absent or empty.
func intParam(q url.Values, key string) (*int, *models.APIError) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, paramError(key, v, "an integer")
	}
	return &n, nil
}

// toDashboard converts the request into page state. Missing predictor inputs
// fall back to the configured slider defaults.
func (req DashboardRequest) toDashboard(cfg *config.Config) dashboard.Request {
	out := req.FilterRequest.toDashboard()
	out.Price, out.Year = req.Price, req.Year
	if cfg != nil {
		if out.Price == nil {
			out.Price = intPtr(cfg.Predictor.DefaultPrice)
		}
		if out.Year == nil {
			out.Year = intPtr(cfg.Predictor.DefaultYear)
		}
	}
	return out
}

func (req FilterRequest) toDashboard() dashboard.Request {
	return dashboard.Request{
		Genres:    req.Genres,
		GenresSet: req.GenresSet,
		YearMin:   req.YearMin,
		YearMax:   req.YearMax,
	}
}

func intPtr(v int) *int { return &v }
