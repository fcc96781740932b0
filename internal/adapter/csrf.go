// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"

	"github.com/MKhiriev/go-autosave/models"
	"github.com/go-resty/resty/v2"
)

const (
	CSRFHeaderName = models.CSRFHeaderName
	CSRFCookieName = models.CSRFCookieName
)

// csrfSafeMethod reports whether method does not require CSRF protection.
func csrfSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}

// attachCSRF is a resty request middleware adding the header/cookie pair to
// every state-changing request while a token is known.
func (h *httpEndpointAdapter) attachCSRF(_ *resty.Client, r *resty.Request) error {
	if csrfSafeMethod(r.Method) {
		return nil
	}

	token := h.CSRFToken()
	if token == "" {
		return nil
	}

	r.SetHeader(CSRFHeaderName, token)
	r.SetCookie(&http.Cookie{Name: CSRFCookieName, Value: token})
	return nil
}
