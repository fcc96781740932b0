// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-autosave/models"
)

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Binary-specific requirements are checked by the views
// ([ClientConfig], [ServerConfig]).
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.Encoding != "" && cfg.Adapter.Encoding != EncodingForm && cfg.Adapter.Encoding != EncodingJSON {
		return fmt.Errorf("%w: unknown encoding %q", ErrInvalidAdapterConfigs, cfg.Adapter.Encoding)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if (cfg.Adapter.HTTPAddress == "" && cfg.Adapter.Endpoint == "") || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Encoding != EncodingForm && cfg.Adapter.Encoding != EncodingJSON {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Endpoint == "" || len(cfg.Autosave.Fields) == 0 {
		return ErrInvalidAutosaveConfigs
	}

	for _, name := range cfg.Autosave.Fields {
		if models.IsEnvelopeKey(name) {
			return fmt.Errorf("%w: field %q is reserved by the response envelope", ErrInvalidAutosaveConfigs, name)
		}
	}

	if cfg.Autosave.ChangeDelay <= 0 || cfg.Autosave.BlurDelay <= 0 || cfg.Autosave.DefaultDelay <= 0 {
		return ErrInvalidAutosaveConfigs
	}

	if cfg.Adapter.CSRFToken == "" && cfg.Workers.CSRFRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
