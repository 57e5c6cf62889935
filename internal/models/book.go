// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package models

import (
	"strconv"
	"time"
)

// Canonical column names guaranteed on every loaded dataset.
const (
	ColumnTitle   = "Title"
	ColumnAuthor  = "Author"
	ColumnGenre   = "Genre"
	ColumnYear    = "Publication Year"
	ColumnPrice   = "Price"
	ColumnRating  = "Rating"
	UnknownAuthor = "Unknown"
	UnknownGenre  = "Unknown"
	DefaultYear   = 2000
)

// Book is one normalized row of the bestseller dataset.
//
// Author and Genre are never empty after load, Price and Rating are finite and
// non-negative. Extra holds the values of unrecognized source columns in the
// order given by Dataset.ExtraColumns.
type Book struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Genre  string   `json:"genre"`
	Year   int      `json:"publication_year"`
	Price  float64  `json:"price"`
	Rating float64  `json:"rating"`
	Extra  []string `json:"extra,omitempty"`
}

// Dataset is the deduplicated collection of books loaded from the source.
//
// A Dataset is never mutated after load. A reload builds a new value and the
// cache swaps it in wholesale.
type Dataset struct {
	Source            string    `json:"source"`
	LoadedAt          time.Time `json:"loaded_at"`
	Columns           []string  `json:"columns"`
	ExtraColumns      []string  `json:"extra_columns,omitempty"`
	RawRows           int       `json:"raw_rows"`
	DuplicatesRemoved int       `json:"duplicates_removed"`
	Books             []Book    `json:"-"`
}

// Len returns the number of books, treating a nil dataset as empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Books)
}

// Empty reports whether the dataset holds no rows.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Info returns a summary of the dataset suitable for the API.
func (d *Dataset) Info() DatasetInfo {
	if d == nil {
		return DatasetInfo{}
	}
	return DatasetInfo{
		Source:            d.Source,
		LoadedAt:          d.LoadedAt,
		Columns:           d.Columns,
		Rows:              len(d.Books),
		RawRows:           d.RawRows,
		DuplicatesRemoved: d.DuplicatesRemoved,
	}
}

// DatasetInfo describes a loaded dataset without its rows.
type DatasetInfo struct {
	Source            string    `json:"source"`
	LoadedAt          time.Time `json:"loaded_at"`
	Columns           []string  `json:"columns"`
	Rows              int       `json:"rows"`
	RawRows           int       `json:"raw_rows"`
	DuplicatesRemoved int       `json:"duplicates_removed"`
}

// Cells returns the book as display strings in canonical column order followed
// by any pass-through values. Used by the dataset preview table.
func (b Book) Cells() []string {
	cells := make([]string, 0, 6+len(b.Extra))
	cells = append(cells,
		b.Title,
		b.Author,
		b.Genre,
		strconv.Itoa(b.Year),
		strconv.FormatFloat(b.Price, 'f', -1, 64),
		strconv.FormatFloat(b.Rating, 'f', -1, 64),
	)
	return append(cells, b.Extra...)
}

// CanonicalColumns lists the canonical columns in preview order.
func CanonicalColumns() []string {
	return []string{ColumnTitle, ColumnAuthor, ColumnGenre, ColumnYear, ColumnPrice, ColumnRating}
}
