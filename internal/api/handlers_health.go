// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/bestseller-analytics/internal/metrics"
	"github.com/tomtom215/bestseller-analytics/internal/models"
)

func (h *Handler) healthStatus() models.HealthStatus {
	health := models.HealthStatus{
		Status:  "degraded",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	metrics.AppUptime.Set(health.Uptime)
	if ds := h.store.Peek(); ds != nil {
		health.Status = "healthy"
		health.DatasetLoaded = true
		health.DatasetRows = ds.Len()
		loadedAt := ds.LoadedAt
		health.LastLoad = &loadedAt
	}
	return health
}

// Health reports whether a dataset is cached. It never triggers a load and
// always answers 200; "degraded" means no dataset is cached yet.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     h.healthStatus(),
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only once a dataset is cached.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus()

	statusCode := http.StatusOK
	status := "ready"
	if !health.DatasetLoaded {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"dataset_loaded": health.DatasetLoaded,
			"dataset_rows":   health.DatasetRows,
			"ready_to_serve": health.DatasetLoaded,
			"uptime":         health.Uptime,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
