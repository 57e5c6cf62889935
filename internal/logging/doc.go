// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

// Package logging provides centralized zerolog-based structured logging.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("url", url).Msg("Loading dataset")
//	logging.Error().Err(err).Msg("Dataset load failed")
//
//	// Request-scoped logging picks up request_id and correlation_id
//	logging.Ctx(ctx).Info().Int("rows", n).Msg("Dashboard rendered")
//
// # Configuration
//
// Environment variables (through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file and line (default: false)
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for the supervisor tree, which logs
// through sutureslog.
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
