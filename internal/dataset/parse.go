// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// errNoHeader is returned for input without even a header line.
var errNoHeader = errors.New("csv has no header row")

// table is a parsed CSV: a header plus string rows of the same width.
type table struct {
	header []string
	rows   [][]string
}

// parseCSV parses raw CSV bytes into a table. Every column is read as a
// string; typing happens later in normalization so that malformed cells can be
// defaulted per cell instead of failing the whole column.
//
// The header comes straight from the CSV reader. gota renames duplicate and
// blank column names, so only its data rows are used.
func parseCSV(raw []byte) (table, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return table{}, errNoHeader
	}

	header, more, err := readHeader(raw)
	if err != nil {
		return table{}, fmt.Errorf("parse csv header: %w", err)
	}
	if !more {
		// A header with no data rows is a valid, empty dataset
		return table{header: header}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return table{}, fmt.Errorf("parse csv: %w", df.Err)
	}

	records := df.Records()
	if len(records) == 0 {
		return table{}, errNoHeader
	}
	return table{header: header, rows: records[1:]}, nil
}

// readHeader returns the first CSV record of raw as written, and whether any
// record follows it.
func readHeader(raw []byte) (header []string, more bool, err error) {
	r := csv.NewReader(bytes.NewReader(raw))
	header, err = r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, false, errNoHeader
		}
		return nil, false, err
	}
	_, err = r.Read()
	if errors.Is(err, io.EOF) {
		return header, false, nil
	}
	// A malformed second record is left for the full parse to report
	return header, true, nil
}
