// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package validation validates HTTP request parameters with go-playground/validator v10.

A single validator instance is built once and shared; it caches struct
metadata, so request structs are cheap to validate on every call.

Field names in messages come from the struct's query tag, so errors read the
same way the client wrote the request:

	type BooksRequest struct {
	    Limit int `query:"limit" validate:"min=1,max=100"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    // apiErr.Code == "VALIDATION_ERROR", apiErr.Message == "limit must be at most 100"
	}

# Custom Tags

  - genre: a non-blank genre label without control characters, at most 200 bytes
*/
package validation
