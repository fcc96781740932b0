// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/store"
	"github.com/MKhiriev/go-autosave/models"
)

type formService struct {
	formRepository store.FormRepository

	logger *logger.Logger
}

func NewFormService(formRepository store.FormRepository, logger *logger.Logger) FormService {
	return &formService{
		formRepository: formRepository,
		logger:         logger,
	}
}

// SaveFields persists fields and returns the stored values, which the
// endpoint echoes back for reconciliation.
func (f *formService) SaveFields(ctx context.Context, formID string, fields models.Fields) (models.Fields, error) {
	stored, err := f.formRepository.SaveFields(ctx, formID, fields)
	if err != nil {
		return nil, fmt.Errorf("error saving fields of form %q: %w", formID, err)
	}

	return storedToFields(stored), nil
}

func (f *formService) GetFields(ctx context.Context, formID string) (models.Fields, error) {
	stored, err := f.formRepository.GetFields(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("error loading fields of form %q: %w", formID, err)
	}

	return storedToFields(stored), nil
}

func storedToFields(stored []models.StoredField) models.Fields {
	out := make(models.Fields, len(stored))
	for _, s := range stored {
		out[s.Name] = s.Value
	}
	return out
}
