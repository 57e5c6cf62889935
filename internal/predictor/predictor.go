// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

// Package predictor fits an ordinary least squares model of rating on price
// and publication year.
//
// The model is always fit on the full dataset, never on a filtered view, and
// is rebuilt on every request. When the fit is degenerate the model predicts
// the mean rating and carries ErrDegenerateFit as a soft warning.
package predictor

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/bestseller-analytics/internal/logging"
	"github.com/tomtom215/bestseller-analytics/internal/metrics"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

var (
	// ErrInsufficientData is returned by Fit for a dataset without rows.
	ErrInsufficientData = errors.New("dataset is empty, cannot train predictor")

	// ErrDegenerateFit marks a model that falls back to the mean rating
	// because the least squares solve has no usable answer.
	// It is never returned as an error from Fit; see Model.Warning.
	ErrDegenerateFit = errors.New("degenerate fit: the data cannot support a linear fit, predicting mean rating")
)

// Caption describes the model on the dashboard.
const Caption = "Based on Linear Regression model trained on bestseller dataset."

// numParams is intercept, price and year.
const numParams = 3

// varianceEpsilon treats near-constant features as constant.
const varianceEpsilon = 1e-12

// collinearEpsilon treats |corr(price, year)| within this of 1 as collinear.
const collinearEpsilon = 1e-9

// Model holds fitted coefficients in centered form:
//
//	rating = MeanRating + PriceCoef*(price-meanPrice) + YearCoef*(year-meanYear)
type Model struct {
	Intercept  float64 `json:"intercept"`
	PriceCoef  float64 `json:"price_coef"`
	YearCoef   float64 `json:"year_coef"`
	MeanRating float64 `json:"mean_rating"`
	Samples    int     `json:"samples"`
	// Warning is ErrDegenerateFit when the model predicts the mean rating.
	Warning error `json:"-"`

	meanPrice float64
	meanYear  float64
}

// Fit estimates the model from every row of ds.
func Fit(ds *models.Dataset) (*Model, error) {
	n := ds.Len()
	if n == 0 {
		metrics.RecordPredictorFit("insufficient_data")
		return nil, ErrInsufficientData
	}

	prices := make([]float64, n)
	years := make([]float64, n)
	ratings := make([]float64, n)
	for i := range ds.Books {
		prices[i] = ds.Books[i].Price
		years[i] = float64(ds.Books[i].Year)
		ratings[i] = ds.Books[i].Rating
	}

	m := &Model{
		MeanRating: stat.Mean(ratings, nil),
		Samples:    n,
		meanPrice:  stat.Mean(prices, nil),
		meanYear:   stat.Mean(years, nil),
	}

	if n < numParams || stat.Variance(prices, nil) < varianceEpsilon || stat.Variance(years, nil) < varianceEpsilon {
		return m.degenerate("too few rows or constant feature"), nil
	}
	if math.Abs(stat.Correlation(prices, years, nil)) > 1-collinearEpsilon {
		return m.degenerate("price and year are collinear"), nil
	}

	// Centering keeps the year column (~2000) from swamping the solve
	x := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, prices[i]-m.meanPrice)
		x.Set(i, 1, years[i]-m.meanYear)
		y.SetVec(i, ratings[i]-m.MeanRating)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, y); err != nil {
		return m.degenerate(err.Error()), nil
	}

	b1, b2 := beta.AtVec(0), beta.AtVec(1)
	if !finite(b1) || !finite(b2) {
		return m.degenerate("non-finite coefficients"), nil
	}

	m.PriceCoef = b1
	m.YearCoef = b2
	m.Intercept = m.MeanRating - b1*m.meanPrice - b2*m.meanYear
	metrics.RecordPredictorFit("ok")
	return m, nil
}

func (m *Model) degenerate(reason string) *Model {
	m.PriceCoef, m.YearCoef = 0, 0
	m.Intercept = m.MeanRating
	m.Warning = ErrDegenerateFit
	metrics.RecordPredictorFit("degenerate")
	logging.Debug().Str("reason", reason).Int("samples", m.Samples).Msg("Predictor fell back to mean rating")
	return m
}

// Degenerate reports whether the model predicts the mean rating.
func (m *Model) Degenerate() bool {
	return m.Warning != nil
}

// Predict evaluates the model. Identical inputs always give identical output.
func (m *Model) Predict(price, year float64) float64 {
	if m.Degenerate() {
		return m.MeanRating
	}
	return m.MeanRating + m.PriceCoef*(price-m.meanPrice) + m.YearCoef*(year-m.meanYear)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
