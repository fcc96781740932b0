// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/internal/store"
)

var errorStatusMap = map[error]int{
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
	ErrMalformedBody:          http.StatusBadRequest,
	ErrBodyTooLarge:           http.StatusRequestEntityTooLarge,
	ErrRouteNotFound:          http.StatusNotFound,
	ErrMethodNotAllowed:       http.StatusMethodNotAllowed,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrValidationNoFormID:  http.StatusBadRequest,
	service.ErrValidationNoFields:  http.StatusBadRequest,
	service.ErrCSRFTokenMissing:    http.StatusForbidden,
	service.ErrCSRFTokenMismatch:   http.StatusForbidden,
	service.ErrInvalidCSRFToken:    http.StatusForbidden,

	store.ErrFieldsNotSaved:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
