// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrNoHTTPAddress means the server config enables no transport.
var ErrNoHTTPAddress = errors.New("handler: http address is not configured")
