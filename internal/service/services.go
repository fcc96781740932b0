// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/store"
	"github.com/MKhiriev/go-autosave/models"
)

// Services groups the server-side services of the reference endpoint.
type Services struct {
	FormService    FormService
	CSRFService    CSRFService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	if storages == nil || storages.FormRepository == nil {
		return nil, errors.New("nil form repository")
	}

	forms := NewFormValidationWrapper(logger).Wrap(NewFormService(storages.FormRepository, logger))

	return &Services{
		FormService:    forms,
		CSRFService:    NewCSRFService(cfg.App, logger),
		AppInfoService: NewAppInfoService(cfg.App, build, logger),
	}, nil
}
