// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON configuration
// files. Durations may be written either as strings ("2.5s") or as integer
// nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		Endpoint       string   `json:"endpoint"`
		RequestTimeout Duration `json:"request_timeout"`
		Encoding       string   `json:"encoding"`
		CSRFToken      string   `json:"csrf_token"`
	} `json:"adapter,omitempty"`

	Autosave struct {
		FormID       string   `json:"form"`
		Fields       []string `json:"fields"`
		ChangeDelay  Duration `json:"change_delay"`
		BlurDelay    Duration `json:"blur_delay"`
		DefaultDelay Duration `json:"default_delay"`
	} `json:"autosave,omitempty"`

	Workers struct {
		CSRFRefreshInterval Duration `json:"csrf_refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			Endpoint:       jsonCfg.Adapter.Endpoint,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Encoding:       jsonCfg.Adapter.Encoding,
			CSRFToken:      jsonCfg.Adapter.CSRFToken,
		},
		Autosave: Autosave{
			FormID:       jsonCfg.Autosave.FormID,
			Fields:       jsonCfg.Autosave.Fields,
			ChangeDelay:  time.Duration(jsonCfg.Autosave.ChangeDelay),
			BlurDelay:    time.Duration(jsonCfg.Autosave.BlurDelay),
			DefaultDelay: time.Duration(jsonCfg.Autosave.DefaultDelay),
		},
		Workers: Workers{
			CSRFRefreshInterval: time.Duration(jsonCfg.Workers.CSRFRefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
