// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

// Package services adapts the application's components to suture.Service.
//
//   - HTTPServerService: runs an *http.Server with graceful shutdown
//   - DatasetWarmupService: loads the dataset cache once at startup
package services
