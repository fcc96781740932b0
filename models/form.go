// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredField is a single persisted form field as kept by the reference
// autosave endpoint.
type StoredField struct {
	FormID    string    `json:"form_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormSnapshot is the full set of persisted fields of one form.
type FormSnapshot struct {
	FormID string `json:"form_id"`
	Fields Fields `json:"fields"`
}
