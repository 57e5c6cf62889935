// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateDatasetLocation accepts an http(s) URL with a host, a file:// URL,
// or a bare filesystem path. Unlike service base URLs, dataset URLs may carry
// a path and query (published sheets use ?output=csv).
func validateDatasetLocation(raw, fieldName string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if !strings.Contains(raw, "://") {
		return nil
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	switch parsedURL.Scheme {
	case "http", "https":
		if parsedURL.Host == "" {
			return fmt.Errorf("%s host is required", fieldName)
		}
	case "file":
		if parsedURL.Path == "" {
			return fmt.Errorf("%s file path is required", fieldName)
		}
	default:
		return fmt.Errorf("%s scheme must be http, https or file, got: %s", fieldName, parsedURL.Scheme)
	}
	return nil
}
