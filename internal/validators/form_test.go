// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-autosave/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSnapshot() models.FormSnapshot {
	return models.FormSnapshot{
		FormID: "profile",
		Fields: models.Fields{"name": "Alice", "bio": ""},
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewFormValidator()
	require.NotNil(t, v)

	snapshot := validSnapshot()
	field := models.StoredField{FormID: "profile", Name: "name", Value: "Alice"}

	assert.NoError(t, v.Validate(context.Background(), snapshot))
	assert.NoError(t, v.Validate(context.Background(), &snapshot))
	assert.NoError(t, v.Validate(context.Background(), field))
	assert.NoError(t, v.Validate(context.Background(), &field))
	assert.ErrorIs(t, v.Validate(context.Background(), "nope"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidateSnapshot
// ---------------------------------------------------------------------------

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.FormSnapshot)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.FormSnapshot) {}},
		{name: "empty form id", mutate: func(s *models.FormSnapshot) { s.FormID = " " }, wantErr: ErrEmptyFormID},
		{name: "form id too long", mutate: func(s *models.FormSnapshot) { s.FormID = strings.Repeat("f", MaxNameLength+1) }, wantErr: ErrFormIDTooLong},
		{name: "no fields", mutate: func(s *models.FormSnapshot) { s.Fields = nil }, wantErr: ErrNoFields},
		{name: "blank name", mutate: func(s *models.FormSnapshot) { s.Fields[" "] = "x" }, wantErr: ErrInvalidFieldName},
		{name: "name too long", mutate: func(s *models.FormSnapshot) { s.Fields[strings.Repeat("n", MaxNameLength+1)] = "x" }, wantErr: ErrInvalidFieldName},
		{name: "invalid utf8 name", mutate: func(s *models.FormSnapshot) { s.Fields["\xff"] = "x" }, wantErr: ErrInvalidFieldName},
		{name: "envelope key as name", mutate: func(s *models.FormSnapshot) { s.Fields["status"] = "draft" }, wantErr: ErrReservedFieldName},
		{name: "value too long", mutate: func(s *models.FormSnapshot) { s.Fields["bio"] = strings.Repeat("v", MaxValueLength+1) }, wantErr: ErrFieldValueTooLong},
		{
			name:   "scoped to form id skips fields",
			mutate: func(s *models.FormSnapshot) { s.Fields = nil },
			fields: []string{FieldFormID},
		},
		{name: "unknown scope", mutate: func(*models.FormSnapshot) {}, fields: []string{"bogus"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSnapshot()
			tt.mutate(&s)

			err := NewFormValidator().Validate(context.Background(), s, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateStoredField
// ---------------------------------------------------------------------------

func TestValidateStoredField(t *testing.T) {
	v := NewFormValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.StoredField{Name: "a"}), ErrEmptyFormID)
	assert.ErrorIs(t, v.Validate(context.Background(), models.StoredField{FormID: "f"}), ErrInvalidFieldName)
	assert.ErrorIs(t, v.Validate(context.Background(),
		models.StoredField{FormID: "f", Name: "a", Value: strings.Repeat("v", MaxValueLength+1)}), ErrFieldValueTooLong)
	assert.NoError(t, v.Validate(context.Background(), models.StoredField{FormID: "f"}, FieldFormID))
}
