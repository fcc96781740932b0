// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-autosave/models"
	tea "github.com/charmbracelet/bubbletea"
)

const notifierBuffer = 16

// Notifier forwards save outcomes reported by the synchronizer callbacks to
// the running program. OnSuccess and OnError never block: results arriving
// while the buffer is full are dropped.
type Notifier struct {
	events chan saveResultMsg
}

func NewNotifier() *Notifier {
	return &Notifier{events: make(chan saveResultMsg, notifierBuffer)}
}

// OnSuccess matches the synchronizer success callback.
func (n *Notifier) OnSuccess(persisted models.Fields) {
	n.push(saveResultMsg{persisted: persisted.Clone()})
}

// OnError matches the synchronizer error callback.
func (n *Notifier) OnError(err error) {
	n.push(saveResultMsg{err: err})
}

func (n *Notifier) push(msg saveResultMsg) {
	select {
	case n.events <- msg:
	default:
	}
}

// wait returns a command delivering the next save result. It yields nil once
// ctx is done.
func (n *Notifier) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-n.events:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}
