// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/models"
)

// csrf is an HTTP middleware enforcing the double-submit CSRF check.
//
// The token from the X-CSRFToken header must equal the csrftoken cookie and
// be a valid token issued by [service.CSRFService]. Failing requests are
// answered with HTTP 403 Forbidden and the failure envelope.
func (h *Handler) csrf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		headerToken := r.Header.Get(models.CSRFHeaderName)

		var cookieToken string
		if cookie, err := r.Cookie(models.CSRFCookieName); err == nil {
			cookieToken = cookie.Value
		}

		if err := h.services.CSRFService.VerifyPair(r.Context(), headerToken, cookieToken); err != nil {
			log.Err(err).Str("func", "*Handler.csrf").Msg("csrf check failed")
			h.metrics.observeCSRFFailure(csrfFailureReason(err))
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func csrfFailureReason(err error) string {
	switch {
	case errors.Is(err, service.ErrCSRFTokenMissing):
		return "missing"
	case errors.Is(err, service.ErrCSRFTokenMismatch):
		return "mismatch"
	default:
		return "invalid"
	}
}
