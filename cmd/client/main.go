// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-autosave/internal/adapter"
	"github.com/MKhiriev/go-autosave/internal/client"
	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/internal/tui"
	"github.com/MKhiriev/go-autosave/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	_ = buildInfo.Print(os.Stdout)

	log := logger.NewClientLogger("go-autosave-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	endpointAdapter, err := adapter.NewHTTPEndpointAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create endpoint adapter")
	}

	notifier := tui.NewNotifier()
	services, err := service.NewClientServices(endpointAdapter, *cfg, notifier.OnSuccess, notifier.OnError, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, notifier, tui.Options{
		Title:     "АВТОСОХРАНЕНИЕ: " + cfg.Autosave.FormID,
		Initial:   client.LoadInitial(ctx, endpointAdapter, cfg.Adapter.Endpoint, log),
		BuildInfo: buildInfo,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, endpointAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
