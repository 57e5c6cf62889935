// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

// Package cache provides a bounded least-recently-used cache used to keep
// rendered chart images for repeated filter selections.
package cache
