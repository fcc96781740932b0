// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists autosaved form fields for the reference endpoint.
//
// A single relational table (form_fields) keyed by (form_id, name) is kept in
// either PostgreSQL (through the pgx stdlib driver) or SQLite (go-sqlite3),
// selected by the DSN. Queries are built with squirrel so that the same
// repository code runs against both placeholder styles.
package store

import (
	"context"

	"github.com/MKhiriev/go-autosave/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FormRepository reads and writes the fields of autosaved forms.
type FormRepository interface {
	// SaveFields upserts every field of fields under formID and returns the
	// rows as stored.
	SaveFields(ctx context.Context, formID string, fields models.Fields) ([]models.StoredField, error)

	// GetFields returns every stored field of formID ordered by name. An
	// unknown form yields an empty slice.
	GetFields(ctx context.Context, formID string) ([]models.StoredField, error)
}

// ErrorClassification says whether a failed database operation may succeed
// when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the zero value and the answer for unknown errors.
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
