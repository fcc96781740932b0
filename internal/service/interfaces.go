// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-autosave/models"
)

// Synchronizer buffers field edits, debounces them into single writes to one
// endpoint and reconciles server-confirmed values back into the buffer.
//
// All methods are safe for concurrent use and none of them blocks on the
// network except Flush and Stop.
type Synchronizer interface {
	// RecordEdit merges fields into the pending buffer (last writer wins per
	// key) and re-arms the save timer with the delay selected by cause.
	RecordEdit(fields models.Fields, cause models.Cause)

	// CancelPendingSave stops an armed save timer and drops a save that was
	// deferred behind an in-flight write. The buffer is left untouched.
	CancelPendingSave()

	// Flush stops an armed timer and saves the buffer right away, returning
	// once the write has completed. If a write is already in flight, Flush
	// waits for it and then for the follow-up write carrying the buffer.
	Flush()

	// Disable makes every subsequent save attempt abort without sending.
	Disable()

	// Enable clears the flag set by Disable.
	Enable()

	// State returns a snapshot of the synchronizer.
	State() models.SyncState

	// Stop stops the timer, waits for an in-flight write to finish and sends
	// a save that was deferred behind it. Edits recorded afterwards are
	// buffered but never sent. Stop may be called from OnSuccess or OnError.
	Stop()
}

// FormService persists autosaved fields on the server side.
type FormService interface {
	// SaveFields stores fields for formID and returns the values actually
	// persisted.
	SaveFields(ctx context.Context, formID string, fields models.Fields) (models.Fields, error)

	// GetFields returns every stored field of formID.
	GetFields(ctx context.Context, formID string) (models.Fields, error)
}

// CSRFService issues and verifies anti-forgery tokens.
type CSRFService interface {
	// IssueToken creates a new signed token.
	IssueToken(ctx context.Context) (models.CSRFToken, error)

	// VerifyPair checks that the header and cookie tokens are present, equal
	// and validly signed.
	VerifyPair(ctx context.Context, headerToken, cookieToken string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FormServiceWrapper defines middleware composition for FormService.
// Implementations wrap an existing FormService to add behavior such as
// validation or metrics.
type FormServiceWrapper interface {
	Wrap(FormService) FormService
}
