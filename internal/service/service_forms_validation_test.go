// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFormService считает вызовы и возвращает поля без изменений
type fakeFormService struct {
	saveCalls int
	getCalls  int
}

func (f *fakeFormService) SaveFields(_ context.Context, _ string, fields models.Fields) (models.Fields, error) {
	f.saveCalls++
	return fields, nil
}

func (f *fakeFormService) GetFields(_ context.Context, _ string) (models.Fields, error) {
	f.getCalls++
	return models.Fields{}, nil
}

func wrapWithValidation(inner FormService) FormService {
	return NewFormValidationWrapper(logger.Nop()).Wrap(inner)
}

func TestFormValidation_SaveFields(t *testing.T) {
	tests := []struct {
		name    string
		formID  string
		fields  models.Fields
		wantErr error
	}{
		{name: "valid", formID: "profile", fields: models.Fields{"name": "Alice"}},
		{name: "empty value is allowed", formID: "profile", fields: models.Fields{"name": ""}},
		{name: "empty form id", formID: "  ", fields: models.Fields{"name": "Alice"}, wantErr: ErrValidationNoFormID},
		{name: "form id too long", formID: strings.Repeat("f", MaxFieldNameLength+1), fields: models.Fields{"a": "1"}, wantErr: ErrInvalidDataProvided},
		{name: "no fields", formID: "profile", fields: models.Fields{}, wantErr: ErrValidationNoFields},
		{name: "blank field name", formID: "profile", fields: models.Fields{" ": "x"}, wantErr: ErrInvalidDataProvided},
		{name: "field name too long", formID: "profile", fields: models.Fields{strings.Repeat("n", MaxFieldNameLength+1): "x"}, wantErr: ErrInvalidDataProvided},
		{name: "envelope key as field", formID: "profile", fields: models.Fields{"errors": "none"}, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &fakeFormService{}
			svc := wrapWithValidation(inner)

			got, err := svc.SaveFields(context.Background(), tt.formID, tt.fields)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, inner.saveCalls, "invalid request must not reach the wrapped service")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fields, got)
			assert.Equal(t, 1, inner.saveCalls)
		})
	}
}

func TestFormValidation_GetFields(t *testing.T) {
	inner := &fakeFormService{}
	svc := wrapWithValidation(inner)

	_, err := svc.GetFields(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidationNoFormID)
	assert.Zero(t, inner.getCalls)

	_, err = svc.GetFields(context.Background(), "profile")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.getCalls)
}
