// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Cause names the UI event that produced an edit. It selects the debounce
// delay applied before the edit is written to the server.
type Cause string

const (
	// CauseChange is emitted on every value change (typically a keystroke).
	CauseChange Cause = "change"

	// CauseBlur is emitted when a field loses focus.
	CauseBlur Cause = "blur"
)
