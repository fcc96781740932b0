// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/models"
)

// devVersion is reported by unstamped binaries run without APP_VERSION.
const devVersion = "dev"

// appInfoService answers GET /api/version/. The APP_VERSION setting wins
// over the linker stamp so that a deployment can pin what it reports.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, build models.BuildInfo, logger *logger.Logger) AppInfoService {
	version, source := strings.TrimSpace(cfg.Version), "config"
	if version == "" {
		version, source = strings.TrimSpace(build.Version), "build"
	}
	if version == "" {
		version, source = devVersion, "default"
	}

	logger.Debug().Str("version", version).Str("source", source).Msg("resolved server version")
	return &appInfoService{version: version}
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
