// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-autosave binaries. It aggregates all sub-configurations and is populated
// by merging built-in defaults, environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: CSRF token signing parameters
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the reference endpoint's field store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the reference
	// autosave endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side transport settings used to reach the
	// autosave endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Autosave holds debounce delays and the set of fields the client form
	// registers.
	Autosave Autosave `envPrefix:"AUTOSAVE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify CSRF tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued CSRF token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a CSRF token remains valid after
	// issuance (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects and configures the backend. A postgres:// or
	// postgresql:// URL opens PostgreSQL through pgx, anything else is
	// treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress is the base address of the autosave server
	// (e.g. "localhost:8080" or "https://example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Endpoint is the URL the synchronizer POSTs to. It may be absolute or
	// relative to HTTPAddress. When empty, /api/forms/{form} is used.
	// Env: ADAPTER_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout is the maximum duration of a single save request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Encoding is the request body encoding: "form" or "json".
	// Env: ADAPTER_ENCODING
	Encoding string `env:"ENCODING"`

	// CSRFToken is a token supplied by the host. When empty the client
	// fetches one from the server.
	// Env: ADAPTER_CSRF_TOKEN
	CSRFToken string `env:"CSRF_TOKEN"`
}

// Autosave holds the synchronizer and form settings of the client.
type Autosave struct {
	// FormID identifies the form on the server.
	// Env: AUTOSAVE_FORM
	FormID string `env:"FORM"`

	// Fields lists the field names the client form registers.
	// Env: AUTOSAVE_FIELDS (comma separated)
	Fields []string `env:"FIELDS" envSeparator:","`

	// ChangeDelay is the debounce delay after a change event.
	// Env: AUTOSAVE_CHANGE_DELAY
	ChangeDelay time.Duration `env:"CHANGE_DELAY"`

	// BlurDelay is the debounce delay after a blur event.
	// Env: AUTOSAVE_BLUR_DELAY
	BlurDelay time.Duration `env:"BLUR_DELAY"`

	// DefaultDelay is the debounce delay for any other cause.
	// Env: AUTOSAVE_DEFAULT_DELAY
	DefaultDelay time.Duration `env:"DEFAULT_DELAY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CSRFRefreshInterval defines how often the client refreshes its CSRF
	// token from the server.
	// Env: WORKERS_CSRF_REFRESH_INTERVAL
	CSRFRefreshInterval time.Duration `env:"CSRF_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
