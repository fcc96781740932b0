// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks form snapshots and stored fields before they reach
// the store. Callers may scope a check to some of the Field* targets.
package validators

import "context"

// Validator checks input, limited to the named targets when any are given.
type Validator interface {
	Validate(ctx context.Context, input any, targets ...string) error
}
