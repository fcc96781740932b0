// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/utils"
	"github.com/MKhiriev/go-autosave/models"
	"github.com/go-chi/chi/v5"
)

const (
	// maxBodyBytes bounds the size of a save request body.
	maxBodyBytes = 1 << 20

	formIDParam = "formID"
)

// saveForm persists the fields of the posted form and echoes the stored
// values in the success envelope, e.g.
//
//	{"success": true, "status": "okay", "name": "Alice"}
func (h *Handler) saveForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	start := time.Now()
	formID := chi.URLParam(r, formIDParam)

	fields, err := parseFields(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveForm").Msg("error parsing save request")
		h.metrics.observeSave(outcomeRejected, 0, time.Since(start))
		h.writeError(w, r, err)
		return
	}

	persisted, err := h.services.FormService.SaveFields(r.Context(), formID, fields)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveForm").Str("form_id", formID).Msg("error saving form fields")
		outcome := outcomeRejected
		if statusFromError(err) >= http.StatusInternalServerError {
			outcome = outcomeFailed
		}
		h.metrics.observeSave(outcome, 0, time.Since(start))
		h.writeError(w, r, err)
		return
	}

	h.metrics.observeSave(outcomeSaved, len(persisted), time.Since(start))
	log.Debug().Str("form_id", formID).Strs("fields", persisted.Names()).Msg("form fields saved")

	if _, err = utils.WriteJSON(w, models.NewOkayResponse(persisted), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.saveForm").Msg("error writing response")
	}
}

// getForm returns every stored field of the form.
func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	formID := chi.URLParam(r, formIDParam)

	fields, err := h.services.FormService.GetFields(r.Context(), formID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getForm").Str("form_id", formID).Msg("error loading form fields")
		h.writeError(w, r, err)
		return
	}

	snapshot := models.FormSnapshot{FormID: formID, Fields: fields}
	if _, err = utils.WriteJSON(w, snapshot, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getForm").Msg("error writing response")
	}
}

// parseFields decodes the body of a save request. Form-encoded, multipart and
// JSON bodies are accepted; a missing Content-Type is treated as
// form-encoded.
func parseFields(w http.ResponseWriter, r *http.Request) (models.Fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := "application/x-www-form-urlencoded"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		var err error
		if mediaType, _, err = mime.ParseMediaType(ct); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
	}

	switch mediaType {
	case "application/json":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, bodyError(err)
		}
		fields, err := models.FieldsFromJSON(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return fields, nil

	case "application/x-www-form-urlencoded":
		// ParseForm skips the body when Content-Type is absent
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, bodyError(err)
		}
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return models.FieldsFromURLValues(values), nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, bodyError(err)
		}
		return models.FieldsFromURLValues(r.PostForm), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}
