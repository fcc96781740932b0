// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-autosave/models"
)

// saveResultMsg carries the outcome of one completed write.
type saveResultMsg struct {
	persisted models.Fields
	err       error
}

type flushDoneMsg struct{}

type refreshMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
