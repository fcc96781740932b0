// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the autosaved form in the terminal. Keystrokes are
// reported to the synchronizer as change events and focus moves as blur
// events.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-autosave/internal/logger"
	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the form screen.
type Options struct {
	// Title is shown above the fields.
	Title string
	// Initial prefills the inputs without recording edits.
	Initial models.Fields
	// BuildInfo is shown on the f1 screen.
	BuildInfo models.BuildInfo
}

type TUI struct {
	services *service.ClientServices
	notifier *Notifier
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, notifier *Notifier, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Form == nil || services.Synchronizer == nil {
		return nil, errors.New("nil client services")
	}
	if len(services.Form.Fields()) == 0 {
		return nil, ErrNoFields
	}
	if notifier == nil {
		notifier = NewNotifier()
	}
	if opts.Title == "" {
		opts.Title = "АВТОСОХРАНЕНИЕ"
	}

	return &TUI{
		services: services,
		notifier: notifier,
		opts:     opts,
		logger:   logger.WithComponent("tui"),
	}, nil
}

// Run shows the form until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newFormModel(ctx, t.opts.Title, t.services, t.notifier, t.opts.Initial, t.opts.BuildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running tui: %w", err)
	}

	t.logger.Debug().Msg("tui closed")
	return nil
}
