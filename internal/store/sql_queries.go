// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-autosave/models"
	"github.com/Masterminds/squirrel"
)

const formFieldsTable = "form_fields"

var formFieldColumns = []string{"form_id", "name", "value", "updated_at"}

// upsertSuffix works on both PostgreSQL and SQLite >= 3.35.
const upsertSuffix = `ON CONFLICT (form_id, name) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
		RETURNING form_id, name, value, updated_at`

// buildUpsertFieldsQuery builds one multi-row upsert for fields. Rows are
// emitted in field name order so the statement is deterministic.
func buildUpsertFieldsQuery(dialect Dialect, formID string, fields models.Fields, now time.Time) (string, []any, error) {
	q := squirrel.Insert(formFieldsTable).
		Columns(formFieldColumns...).
		PlaceholderFormat(dialect.placeholders())

	for _, name := range fields.Names() {
		q = q.Values(formID, name, fields[name], now)
	}

	return q.Suffix(upsertSuffix).ToSql()
}

func buildSelectFieldsQuery(dialect Dialect, formID string) (string, []any, error) {
	return squirrel.Select(formFieldColumns...).
		From(formFieldsTable).
		Where(squirrel.Eq{"form_id": formID}).
		OrderBy("name").
		PlaceholderFormat(dialect.placeholders()).
		ToSql()
}
