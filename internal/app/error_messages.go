// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-autosave reference endpoint handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "errors" member of the failure envelope. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgCSRFVerificationFailed is returned when the anti-forgery header or
	// cookie is missing or the two do not match.
	MsgCSRFVerificationFailed = "CSRF verification failed"

	// MsgTokenIsExpiredOrInvalid is returned when the anti-forgery token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "CSRF token is expired or invalid"
)
