// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-autosave/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldFormID targets the form identifier.
	FieldFormID = "form_id"

	// FieldFields targets the presence of at least one field in a snapshot.
	FieldFields = "fields"

	// FieldNames targets the names of every field in a snapshot.
	FieldNames = "names"

	// FieldValues targets the values of every field in a snapshot.
	FieldValues = "values"

	// FieldName targets the name of a single stored field.
	FieldName = "name"

	// FieldValue targets the value of a single stored field.
	FieldValue = "value"
)

const (
	// MaxNameLength matches the width of the form_id and name columns.
	MaxNameLength = 255

	// MaxValueLength bounds a single field value in bytes.
	MaxValueLength = 64 << 10
)

// FormValidator implements [Validator] for models.FormSnapshot and
// models.StoredField, in value and pointer form.
type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted every rule of the type is
// checked. Returns ErrUnsupportedType for any other type.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FormSnapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.FormSnapshot:
		return v.validateSnapshot(ctx, *value, fields...)

	case models.StoredField:
		return v.validateStoredField(ctx, value, fields...)
	case *models.StoredField:
		return v.validateStoredField(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSnapshot checks a whole save request.
//
// Default validated fields: FormID, Fields, Names, Values.
func (v *FormValidator) validateSnapshot(_ context.Context, snapshot models.FormSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormID, FieldFields, FieldNames, FieldValues}
	}

	for _, f := range fields {
		switch f {
		case FieldFormID:
			if err := validateFormID(snapshot.FormID); err != nil {
				return err
			}
		case FieldFields:
			if len(snapshot.Fields) == 0 {
				return ErrNoFields
			}
		case FieldNames:
			for _, name := range snapshot.Fields.Names() {
				if err := validateName(name); err != nil {
					return err
				}
			}
		case FieldValues:
			for _, name := range snapshot.Fields.Names() {
				if len(snapshot.Fields[name]) > MaxValueLength {
					return fmt.Errorf("%w: %q", ErrFieldValueTooLong, name)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStoredField checks one persisted row.
//
// Default validated fields: FormID, Name, Value.
func (v *FormValidator) validateStoredField(_ context.Context, field models.StoredField, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormID, FieldName, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldFormID:
			if err := validateFormID(field.FormID); err != nil {
				return err
			}
		case FieldName:
			if err := validateName(field.Name); err != nil {
				return err
			}
		case FieldValue:
			if len(field.Value) > MaxValueLength {
				return fmt.Errorf("%w: %q", ErrFieldValueTooLong, field.Name)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateFormID(formID string) error {
	if strings.TrimSpace(formID) == "" {
		return ErrEmptyFormID
	}
	if len(formID) > MaxNameLength {
		return ErrFormIDTooLong
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" || len(name) > MaxNameLength || !utf8.ValidString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFieldName, name)
	}
	if models.IsEnvelopeKey(name) {
		return fmt.Errorf("%w: %q", ErrReservedFieldName, name)
	}
	return nil
}
