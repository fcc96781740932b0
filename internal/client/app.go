// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-autosave/internal/adapter"
	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/internal/workers"
	"github.com/MKhiriev/go-autosave/models"
)

var ErrNilDependency = errors.New("nil client dependency")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp assembles the client runtime. When cfg.Adapter.CSRFToken is empty
// the token is fetched from tokenSource by a background refresher.
func NewApp(
	services *service.ClientServices,
	ui UI,
	tokenSource workers.TokenSource,
	cfg config.ClientConfig,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || services.Synchronizer == nil || ui == nil {
		return nil, ErrNilDependency
	}

	var refresher workers.Worker
	if cfg.Adapter.CSRFToken == "" {
		if tokenSource == nil {
			return nil, fmt.Errorf("%w: token source is required without a static csrf token", ErrNilDependency)
		}
		refresher = workers.NewCSRFRefresher(tokenSource, cfg.Workers.CSRFRefreshInterval, logger)
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(refresher),
		logger:   logger.WithComponent("client"),
	}, nil
}

// Run starts the background workers and blocks in the UI. On exit it sends
// whatever is still buffered, waits for the write and stops the workers.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	uiErr := a.ui.Run(ctx)

	if pending := a.services.Synchronizer.State().PendingFields; len(pending) > 0 {
		a.logger.Info().Strs("fields", pending.Names()).Msg("flushing pending edits before exit")
		a.services.Synchronizer.Flush()
	}
	a.services.Synchronizer.Stop()

	if uiErr != nil {
		return fmt.Errorf("ui error: %w", uiErr)
	}
	return nil
}

// LoadInitial fetches the stored values of endpoint. Failures are logged and
// yield an empty form.
func LoadInitial(ctx context.Context, endpointAdapter adapter.EndpointAdapter, endpoint string, logger *logger.Logger) models.Fields {
	fields, err := endpointAdapter.Load(ctx, endpoint)
	if err != nil {
		logger.Warn().Err(err).Str("endpoint", endpoint).Msg("could not load stored fields, starting empty")
		return models.Fields{}
	}
	return fields
}
