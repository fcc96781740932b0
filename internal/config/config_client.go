// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the autosave server.
	HTTPAddress string
	// Endpoint is the save URL, absolute or relative to HTTPAddress.
	Endpoint string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Encoding is the request body encoding ("form" or "json").
	Encoding string
	// CSRFToken is an optional host-supplied anti-forgery token.
	CSRFToken string
}

// ClientAutosave holds the debounce delays and the form definition.
type ClientAutosave struct {
	FormID       string
	Fields       []string
	ChangeDelay  time.Duration
	BlurDelay    time.Duration
	DefaultDelay time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// CSRFRefreshInterval defines how often the CSRF token is refreshed.
	CSRFRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Autosave contains synchronizer and form settings.
	Autosave ClientAutosave
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant part of cfg without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	endpoint := cfg.Adapter.Endpoint
	if endpoint == "" && cfg.Autosave.FormID != "" {
		endpoint = "/api/forms/" + cfg.Autosave.FormID
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Endpoint:       endpoint,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Encoding:       cfg.Adapter.Encoding,
			CSRFToken:      cfg.Adapter.CSRFToken,
		},
		Autosave: ClientAutosave{
			FormID:       cfg.Autosave.FormID,
			Fields:       cfg.Autosave.Fields,
			ChangeDelay:  cfg.Autosave.ChangeDelay,
			BlurDelay:    cfg.Autosave.BlurDelay,
			DefaultDelay: cfg.Autosave.DefaultDelay,
		},
		Workers: ClientWorkers{CSRFRefreshInterval: cfg.Workers.CSRFRefreshInterval},
	}
}
