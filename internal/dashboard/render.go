// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer writes dashboard HTML.
type Renderer struct {
	tmpl *template.Template
}

// ErrorPage is the data of the error template.
type ErrorPage struct {
	Title   string
	Status  int
	Message string
	Detail  string
}

var funcs = template.FuncMap{
	"fixed2": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"add":    func(a, b int) int { return a + b },
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("dashboard").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNewRenderer is NewRenderer that panics on a broken template.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// RenderPage writes the dashboard. Output is buffered so a template failure
// never leaves a half-written page.
func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	return r.execute(w, "dashboard-page", p)
}

// RenderError writes the error page.
func (r *Renderer) RenderError(w io.Writer, e ErrorPage) error {
	if e.Title == "" {
		e.Title = PageTitle
	}
	return r.execute(w, "error-page", e)
}

func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
