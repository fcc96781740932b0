// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests. Callers can match against
// them with [errors.Is].
var (
	// ErrUnsupportedContentType is returned when a save request is neither
	// form-encoded nor JSON.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMalformedBody is returned when the body cannot be parsed according
	// to its content type.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is returned when the body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
