// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-autosave/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutine and returns immediately. The worker
// runs until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is a no-op for a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ ... }
//
//	func (w *MyWorker) Start(ctx context.Context) { go w.loop(ctx) }
//	func (w *MyWorker) Stop()                    { w.cancel(); w.wg.Wait() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// TokenSource fetches a fresh anti-forgery token and keeps it for later
// requests. adapter.EndpointAdapter satisfies it.
type TokenSource interface {
	FetchCSRFToken(ctx context.Context) (models.CSRFToken, error)
}
