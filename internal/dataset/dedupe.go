// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// fieldSep separates cells inside a row fingerprint. Rows that only differ in
// where a separator byte falls collide and are told apart by full comparison.
const fieldSep = "\x1f"

// missingValues are the spellings of a missing cell. Rows that differ only in
// which of these they use are duplicates.
var missingValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// dedupeKey is the form of a cell used for duplicate detection.
func dedupeKey(cell string) string {
	if _, ok := missingValues[cell]; ok {
		return ""
	}
	return cell
}

// rowFingerprint hashes every cell of row in order.
func rowFingerprint(row []string) uint64 {
	d := xxhash.New()
	for _, cell := range row {
		_, _ = d.WriteString(dedupeKey(cell))
		_, _ = d.WriteString(fieldSep)
	}
	return d.Sum64()
}

// sameRow compares two rows cell by cell under dedupeKey.
func sameRow(a, b []string) bool {
	return slices.EqualFunc(a, b, func(x, y string) bool {
		return dedupeKey(x) == dedupeKey(y)
	})
}

// dedupeRows returns rows with duplicates removed, keeping the first
// occurrence of each as written and preserving order.
func dedupeRows(rows [][]string) [][]string {
	seen := make(map[uint64][]int, len(rows))
	out := make([][]string, 0, len(rows))

	for _, row := range rows {
		h := rowFingerprint(row)
		dup := false
		for _, j := range seen[h] {
			if sameRow(out[j], row) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[h] = append(seen[h], len(out))
		out = append(out, row)
	}
	return out
}
