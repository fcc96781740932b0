// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	metrics  *metrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates a Handler registering its metrics in registry. A nil
// registry gets a private one.
func NewHandler(services *service.Services, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  newMetrics(registry),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
