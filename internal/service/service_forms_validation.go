// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/validators"
	"github.com/MKhiriev/go-autosave/models"
)

// MaxFieldNameLength matches the width of the name column.
const MaxFieldNameLength = validators.MaxNameLength

type formValidationService struct {
	inner     FormService
	validator validators.Validator
	logger    *logger.Logger
}

// NewFormValidationWrapper returns a FormServiceWrapper rejecting requests
// with an empty form ID, no fields, or malformed field names before they
// reach the wrapped service.
func NewFormValidationWrapper(logger *logger.Logger) FormServiceWrapper {
	return &formValidationService{validator: validators.NewFormValidator(), logger: logger}
}

func (v *formValidationService) Wrap(inner FormService) FormService {
	return &formValidationService{inner: inner, validator: v.validator, logger: v.logger}
}

func (v *formValidationService) SaveFields(ctx context.Context, formID string, fields models.Fields) (models.Fields, error) {
	snapshot := models.FormSnapshot{FormID: formID, Fields: fields}
	if err := v.validator.Validate(ctx, snapshot); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("form_id", formID).Msg("invalid save request")
		return nil, validationError(err)
	}

	return v.inner.SaveFields(ctx, formID, fields)
}

func (v *formValidationService) GetFields(ctx context.Context, formID string) (models.Fields, error) {
	snapshot := models.FormSnapshot{FormID: formID}
	if err := v.validator.Validate(ctx, snapshot, validators.FieldFormID); err != nil {
		return nil, validationError(err)
	}

	return v.inner.GetFields(ctx, formID)
}

// validationError translates validator errors into service errors.
func validationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyFormID):
		return ErrValidationNoFormID
	case errors.Is(err, validators.ErrNoFields):
		return ErrValidationNoFields
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
