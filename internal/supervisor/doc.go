// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

/*
Package supervisor runs the application's long-lived services under a
suture supervisor tree.

The tree has two layers:
  - data: the dataset warm-up service
  - api: the HTTP server

A failing warm-up never takes the HTTP server down with it. Supervisor events
are logged through sutureslog into the zerolog pipeline (see
logging.NewSlogLogger).

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewDatasetWarmupService(cache))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
