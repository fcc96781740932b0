// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// an autosave endpoint.
//
// The primary abstraction is [EndpointAdapter], which decouples the
// synchronizer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPEndpointAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for a rejected CSRF token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-autosave/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/endpoint_adapter_mock.go -package=mock

// EndpointAdapter defines transport-agnostic communication with an autosave
// endpoint. Implementations are responsible for serialisation, attaching the
// anti-forgery credential to state-changing requests, and mapping transport
// errors to the sentinel values defined in this package.
type EndpointAdapter interface {
	// Save sends one write of fields to endpoint and returns the decoded
	// response envelope. endpoint may be absolute or relative to the
	// adapter's base address. fields must not be modified by the
	// implementation.
	//
	// A non-2xx status, an undecodable body ([ErrMalformedResponse]) and an
	// envelope with success=false ([ErrSaveRejected]) are all returned as
	// errors.
	Save(ctx context.Context, endpoint string, fields models.Fields) (models.SaveResponse, error)

	// Load reads the fields currently stored at endpoint. It is used to
	// prefill a form before editing starts.
	Load(ctx context.Context, endpoint string) (models.Fields, error)

	// FetchCSRFToken requests a fresh anti-forgery token from the server and
	// stores it via SetCSRFToken.
	FetchCSRFToken(ctx context.Context) (models.CSRFToken, error)

	// SetCSRFToken stores the token attached to every subsequent
	// state-changing request. An empty token disables the header.
	SetCSRFToken(token string)

	// CSRFToken returns the token currently stored in the adapter, or an
	// empty string if none has been set yet.
	CSRFToken() string
}
