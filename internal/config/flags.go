// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key csrf token signing key
//	-token-issuer csrf token issuer name
//	-token-duration csrf token duration (e.g., "12h")
//	-request-timeout server request timeout (e.g., "30s")
//	-server autosave server base address
//	-endpoint autosave endpoint URL
//	-client-timeout client request timeout
//	-encoding request body encoding: form or json
//	-csrf-token csrf token supplied by the host
//	-form form identifier
//	-fields comma separated field names
//	-change-delay debounce delay after a change
//	-blur-delay debounce delay after a blur
//	-default-delay debounce delay for other causes
//	-csrf-refresh-interval csrf token refresh interval
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-autosave", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var adapterAddress string
	var endpoint string
	var clientTimeout time.Duration
	var encoding string
	var csrfToken string
	var formID string
	var fields string
	var changeDelay, blurDelay, defaultDelay time.Duration
	var csrfRefreshInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "CSRF token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "CSRF token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "CSRF token duration (e.g., 12h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Autosave server base address")
	fs.StringVar(&endpoint, "endpoint", "", "Autosave endpoint URL")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.StringVar(&encoding, "encoding", "", "Request body encoding: form or json")
	fs.StringVar(&csrfToken, "csrf-token", "", "CSRF token supplied by the host")
	fs.StringVar(&formID, "form", "", "Form identifier")
	fs.StringVar(&fields, "fields", "", "Comma separated field names")
	fs.DurationVar(&changeDelay, "change-delay", 0, "Debounce delay after a change")
	fs.DurationVar(&blurDelay, "blur-delay", 0, "Debounce delay after a blur")
	fs.DurationVar(&defaultDelay, "default-delay", 0, "Debounce delay for other causes")
	fs.DurationVar(&csrfRefreshInterval, "csrf-refresh-interval", 0, "CSRF token refresh interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			Endpoint:       endpoint,
			RequestTimeout: clientTimeout,
			Encoding:       encoding,
			CSRFToken:      csrfToken,
		},
		Autosave: Autosave{
			FormID:       formID,
			Fields:       splitFields(fields),
			ChangeDelay:  changeDelay,
			BlurDelay:    blurDelay,
			DefaultDelay: defaultDelay,
		},
		Workers: Workers{
			CSRFRefreshInterval: csrfRefreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitFields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
