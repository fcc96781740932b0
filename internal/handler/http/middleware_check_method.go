// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-autosave/internal/app"
	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/internal/utils"
	"github.com/MKhiriev/go-autosave/models"
)

// notFound is registered via [chi.Mux.NotFound] so that unknown routes answer
// with the same JSON envelope as the autosave endpoint.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. Chi has
// already set the Allow header by the time it runs.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrMethodNotAllowed)
}

// writeError writes the failure envelope with the status mapped from err.
// Server-side failures carry no detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if _, werr := utils.WriteJSON(w, models.NewErrorResponse(errorMessage(err, status)), status); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("error writing error response")
	}
}

func errorMessage(err error, status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	case errors.Is(err, service.ErrInvalidCSRFToken):
		return app.MsgTokenIsExpiredOrInvalid
	case errors.Is(err, service.ErrCSRFTokenMissing), errors.Is(err, service.ErrCSRFTokenMismatch):
		return app.MsgCSRFVerificationFailed + ": " + err.Error()
	default:
		return err.Error()
	}
}
