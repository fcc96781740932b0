// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the autosave server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled,
	// a termination signal arrives or the listener fails. A clean shutdown
	// returns nil.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
