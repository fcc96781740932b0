// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultChangeDelay  = 2500 * time.Millisecond
	DefaultBlurDelay    = 1000 * time.Millisecond
	DefaultDefaultDelay = 1000 * time.Millisecond

	DefaultEncoding = EncodingForm
)

// Supported request body encodings.
const (
	EncodingForm = "form"
	EncodingJSON = "json"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-autosave",
			TokenDuration: 12 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
			Encoding:       DefaultEncoding,
		},
		Autosave: Autosave{
			FormID:       "profile",
			Fields:       []string{"name", "email", "bio"},
			ChangeDelay:  DefaultChangeDelay,
			BlurDelay:    DefaultBlurDelay,
			DefaultDelay: DefaultDefaultDelay,
		},
		Workers: Workers{
			CSRFRefreshInterval: 10 * time.Minute,
		},
	}
}
