// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Names of the anti-forgery header/cookie pair. They match what Django-style
// backends expect.
const (
	CSRFHeaderName = "X-CSRFToken"
	CSRFCookieName = "csrftoken"
)

// CSRFToken is the anti-forgery token handed out by the autosave endpoint.
//
// The token is opaque to the client: it is echoed back in the X-CSRFToken
// header and in the csrftoken cookie of every state-changing request. On the
// server side it is a signed JWT whose "jti" claim is stored in ID.
type CSRFToken struct {
	// ID is the unique token identifier. Server side only.
	ID string `json:"-"`

	// SignedString is the compact serialized token.
	SignedString string `json:"csrf_token"`

	// ExpiresAt is the moment the token stops being accepted. The zero
	// value means the token does not expire.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// String returns the compact serialized token.
// It implements the [fmt.Stringer] interface.
func (t CSRFToken) String() string {
	return t.SignedString
}

// ExpiresWithin reports whether the token expires within d from now.
// Tokens without an expiry never do.
func (t CSRFToken) ExpiresWithin(d time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return time.Until(t.ExpiresAt) <= d
}
