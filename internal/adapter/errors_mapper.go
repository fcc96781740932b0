// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors holds the sentinel for every status the reference endpoint
// answers with.
var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusUnsupportedMediaType:  ErrUnsupportedMediaType,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
}

// mapHTTPError returns nil for a 2xx response. Otherwise the error wraps the
// sentinel of the status, or [ErrUnexpectedStatus], followed by the message
// of the error envelope when the body carries one.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(status)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, status, detail)
}

// errorDetail reads {"errors": {"error": "..."}} and falls back to the raw
// body.
func errorDetail(body []byte) string {
	var envelope struct {
		Errors struct {
			Error string `json:"error"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Errors.Error != "" {
		return envelope.Errors.Error
	}
	return strings.TrimSpace(string(body))
}
