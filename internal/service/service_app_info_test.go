// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/models"
	"github.com/stretchr/testify/assert"
)

func TestNewAppInfoService_VersionSource(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.App
		build models.BuildInfo
		want  string
	}{
		{
			name:  "config wins over build stamp",
			cfg:   config.App{Version: "2.0.0"},
			build: models.BuildInfo{Version: "v1.9.3"},
			want:  "2.0.0",
		},
		{
			name:  "build stamp when config is blank",
			cfg:   config.App{Version: "   "},
			build: models.BuildInfo{Version: "v1.9.3", Commit: "9f1c2ab"},
			want:  "v1.9.3",
		},
		{
			name:  "unstamped dev build",
			build: models.BuildInfo{Commit: "9f1c2ab"},
			want:  devVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}
