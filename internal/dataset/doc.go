// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package dataset loads the bestseller CSV and keeps it in a process-wide cache.

A load runs these steps:

 1. Fetch the raw bytes from a Source (HTTP behind a circuit breaker, a local file,
    or an in-memory reader in tests).
 2. Parse the CSV into a gota dataframe with every column typed as string.
 3. Drop exact-duplicate rows, keeping the first occurrence.
 4. Apply the ordered column rules: rename known aliases, then fill absent
    canonical columns with their defaults.
 5. Coerce Price and Rating to non-negative floats and Publication Year to an
    integer. Malformed cells never fail a load; they become defaults.

Any failure to fetch or parse is reported as ErrSourceUnavailable.

Cache holds the resulting *models.Dataset until Invalidate is called. Concurrent
first loads share one fetch, and failures are never cached.
*/
package dataset
