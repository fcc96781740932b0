// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-autosave/models"
)

// Form binds a fixed set of field names to a Synchronizer. UI code calls
// OnChange and OnBlur from its own event handlers instead of the synchronizer
// discovering fields on its own.
type Form struct {
	sync   Synchronizer
	fields []string
}

// NewForm registers fields with sync. Duplicate and empty names are dropped,
// as are envelope keys, which the server could never confirm.
func NewForm(sync Synchronizer, fields ...string) *Form {
	registered := make([]string, 0, len(fields))
	for _, name := range fields {
		if name == "" || models.IsEnvelopeKey(name) || slices.Contains(registered, name) {
			continue
		}
		registered = append(registered, name)
	}

	return &Form{sync: sync, fields: registered}
}

// Fields returns the registered field names in registration order.
func (f *Form) Fields() []string {
	return slices.Clone(f.fields)
}

// OnChange records a change of name to value.
func (f *Form) OnChange(name, value string) error {
	return f.record(name, value, models.CauseChange)
}

// OnBlur records that name lost focus holding value.
func (f *Form) OnBlur(name, value string) error {
	return f.record(name, value, models.CauseBlur)
}

func (f *Form) record(name, value string, cause models.Cause) error {
	if !slices.Contains(f.fields, name) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	f.sync.RecordEdit(models.Fields{name: value}, cause)
	return nil
}
