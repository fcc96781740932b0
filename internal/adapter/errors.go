// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from HTTP status codes.
var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrBadGateway           = errors.New("bad gateway")
	ErrInternalServerError  = errors.New("internal server error")

	// ErrUnexpectedStatus is returned for a non-2xx status without a
	// dedicated sentinel.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

var (
	// ErrMalformedResponse is returned when a 2xx response body is not a JSON
	// object the synchronizer can reconcile against.
	ErrMalformedResponse = errors.New("malformed save response")

	// ErrSaveRejected is returned when the envelope reports success=false.
	ErrSaveRejected = errors.New("save rejected by server")

	// ErrEmptyAddress is returned when neither a base address nor an absolute
	// endpoint is configured.
	ErrEmptyAddress = errors.New("empty address")
)
