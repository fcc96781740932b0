// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncState is a point-in-time snapshot of an autosave synchronizer.
type SyncState struct {
	// IsSaving reports whether a write is currently in flight.
	IsSaving bool `json:"is_saving"`

	// HasSaved reports whether at least one write has completed, whatever
	// its outcome.
	HasSaved bool `json:"has_saved"`

	// Scheduled reports whether a debounced save is armed and has not fired yet.
	Scheduled bool `json:"scheduled"`

	// Disabled reports whether saving is disabled. A save timer that fires
	// while disabled aborts without sending anything.
	Disabled bool `json:"disabled"`

	// LastSaveSucceeded holds the outcome of the most recently completed
	// write, or nil if no write has completed yet.
	LastSaveSucceeded *bool `json:"last_save_succeeded,omitempty"`

	// PendingFields is a copy of the edits that have not been confirmed by
	// the server yet.
	PendingFields Fields `json:"pending_fields"`
}

// Phase returns a short human readable label for the state: "saving",
// "scheduled" or "idle".
func (s SyncState) Phase() string {
	switch {
	case s.IsSaving:
		return "saving"
	case s.Scheduled:
		return "scheduled"
	default:
		return "idle"
	}
}
