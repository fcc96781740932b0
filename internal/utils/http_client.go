// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies autosave requests in server logs.
const UserAgent = "go-autosave"

// HTTPClient is the resty client the autosave adapter talks through.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty's
// defaults.
type HTTPClientOptions struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPClient returns a client that asks for JSON and marks its requests as
// XHR, the way a browser form posting in the background would. It never
// retries: a failed save is reported once and left to the next edit.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json").
		SetHeader("X-Requested-With", "XMLHttpRequest")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &HTTPClient{Client: client}
}
