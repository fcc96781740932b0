// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/utils"
	"github.com/MKhiriev/go-autosave/models"
)

// issueCSRFToken hands out a fresh token both as the csrftoken cookie and in
// the JSON body. The cookie is readable by scripts so that browser clients
// can copy it into the X-CSRFToken header.
func (h *Handler) issueCSRFToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := h.services.CSRFService.IssueToken(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.issueCSRFToken").Msg("error issuing csrf token")
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.CSRFCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Cache-Control", "no-store")

	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.issueCSRFToken").Msg("error writing response")
	}
}
