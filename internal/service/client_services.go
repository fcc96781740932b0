// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-autosave/internal/adapter"
	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/models"
)

// ClientServices groups the synchronizer of the client and the form bound
// to it.
type ClientServices struct {
	Synchronizer Synchronizer
	Form         *Form
}

// NewClientServices builds a synchronizer for cfg.Adapter.Endpoint and a form
// registering cfg.Autosave.Fields. onSuccess and onError may be nil.
func NewClientServices(
	endpointAdapter adapter.EndpointAdapter,
	cfg config.ClientConfig,
	onSuccess func(models.Fields),
	onError func(error),
	logger *logger.Logger,
) (*ClientServices, error) {
	sync, err := NewSynchronizer(endpointAdapter, SynchronizerConfig{
		Endpoint:  cfg.Adapter.Endpoint,
		OnSuccess: onSuccess,
		OnError:   onError,
		Delays: Delays{
			Change:  cfg.Autosave.ChangeDelay,
			Blur:    cfg.Autosave.BlurDelay,
			Default: cfg.Autosave.DefaultDelay,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating synchronizer: %w", err)
	}

	return &ClientServices{
		Synchronizer: sync,
		Form:         NewForm(sync, cfg.Autosave.Fields...),
	}, nil
}
