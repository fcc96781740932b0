// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-autosave/internal/service"
	"github.com/MKhiriev/go-autosave/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusRefreshInterval = 150 * time.Millisecond
	statusTTL             = 2 * time.Second
	inputWidth            = 40
)

type formModel struct {
	ctx      context.Context
	title    string
	form     *service.Form
	sync     service.Synchronizer
	notifier *Notifier
	copyFn   func(string) error

	buildInfo     models.BuildInfo
	showBuildInfo bool

	names  []string
	inputs []textinput.Model
	focus  int

	state      models.SyncState
	lastResult string
	status     string
	errMsg     string
	flushing   bool
	quitting   bool
}

func newFormModel(
	ctx context.Context,
	title string,
	services *service.ClientServices,
	notifier *Notifier,
	initial models.Fields,
	buildInfo models.BuildInfo,
) formModel {
	names := services.Form.Fields()
	width := labelWidth(names)

	inputs := make([]textinput.Model, len(names))
	for i, name := range names {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%-*s ", width+1, name+":")
		ti.CharLimit = 512
		ti.Width = inputWidth
		ti.SetValue(initial[name])
		inputs[i] = ti
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return formModel{
		ctx:       ctx,
		title:     title,
		form:      services.Form,
		sync:      services.Synchronizer,
		notifier:  notifier,
		copyFn:    clipboard.WriteAll,
		buildInfo: buildInfo,
		names:     names,
		inputs:    inputs,
		state:     services.Synchronizer.State(),
	}
}

func (m formModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.notifier.wait(m.ctx), refreshTick())
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case saveResultMsg:
		if msg.err != nil {
			m.lastResult = "Ошибка сохранения: " + humanizeSaveError(msg.err)
		} else {
			m.lastResult = fmt.Sprintf("Сохранено полей: %d (%s)", len(msg.persisted), time.Now().Format(time.TimeOnly))
		}
		m.state = m.sync.State()
		return m, m.notifier.wait(m.ctx)

	case refreshMsg:
		m.state = m.sync.State()
		return m, refreshTick()

	case flushDoneMsg:
		m.flushing = false
		m.state = m.sync.State()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Несохранённые поля скопированы"
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.errMsg != "" {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab, keys.down):
		return m.moveFocus(1)
	case key.Matches(msg, keys.backtab, keys.up):
		return m.moveFocus(-1)
	case key.Matches(msg, keys.flush):
		if m.flushing {
			return m, nil
		}
		m.flushing = true
		return m, m.flushCmd()
	case key.Matches(msg, keys.toggle):
		if m.sync.State().Disabled {
			m.sync.Enable()
			m.status = "Автосохранение включено"
		} else {
			m.sync.Disable()
			m.status = "Автосохранение выключено"
		}
		m.state = m.sync.State()
		return m, clearStatusAfter()
	case key.Matches(msg, keys.cancel):
		m.sync.CancelPendingSave()
		m.state = m.sync.State()
		m.status = "Отложенное сохранение отменено"
		return m, clearStatusAfter()
	case key.Matches(msg, keys.copy):
		return m, m.copyPendingCmd()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and records a change when
// its value differs afterwards.
func (m formModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		if err := m.form.OnChange(m.names[m.focus], after); err != nil {
			m.errMsg = err.Error()
		}
		m.state = m.sync.State()
	}
	return m, cmd
}

// moveFocus blurs the focused input, recording its value, and focuses the
// input delta positions away.
func (m formModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	n := len(m.inputs)
	if n == 0 {
		return m, nil
	}

	current := m.inputs[m.focus]
	if err := m.form.OnBlur(m.names[m.focus], current.Value()); err != nil {
		m.errMsg = err.Error()
	}
	m.inputs[m.focus].Blur()

	m.focus = ((m.focus+delta)%n + n) % n
	cmd := m.inputs[m.focus].Focus()
	m.state = m.sync.State()
	return m, cmd
}

func (m formModel) flushCmd() tea.Cmd {
	sync := m.sync
	return func() tea.Msg {
		sync.Flush()
		return flushDoneMsg{}
	}
}

func (m formModel) copyPendingCmd() tea.Cmd {
	pending := m.sync.State().PendingFields
	copyFn := m.copyFn
	return func() tea.Msg {
		if pending == nil {
			pending = models.Fields{}
		}
		data, err := json.Marshal(pending)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: copyFn(string(data))}
	}
}

func refreshTick() tea.Cmd {
	return tea.Tick(statusRefreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m formModel) View() string {
	if m.quitting {
		return ""
	}
	if m.errMsg != "" {
		return appStyle.Render(renderErrorOverlay(m.errMsg))
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	for i, input := range m.inputs {
		if i == m.focus {
			b.WriteString(focusedStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderSyncState(m.state))
	if m.lastResult != "" {
		b.WriteString("\n")
		b.WriteString(m.lastResult)
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
	}

	hotKeys := "tab/↑↓: поле  ctrl+s: сохранить  ctrl+d: вкл/выкл  ctrl+x: отменить  ctrl+y: копировать  f1: о программе"
	return appStyle.Render(renderPage(m.title, b.String(), hotKeys))
}

func renderSyncState(state models.SyncState) string {
	var phase string
	switch state.Phase() {
	case "saving":
		phase = savingStyle.Render("сохранение...")
	case "scheduled":
		phase = scheduledStyle.Render("запланировано")
	default:
		phase = idleStyle.Render("ожидание")
	}
	if state.Disabled {
		phase += " " + disabledStyle.Render("(выключено)")
	}

	last := "-"
	if state.LastSaveSucceeded != nil {
		if *state.LastSaveSucceeded {
			last = "успешно"
		} else {
			last = "ошибка"
		}
	}

	pending := "-"
	if names := state.PendingFields.Names(); len(names) > 0 {
		pending = fitText(strings.Join(names, ", "), inputWidth)
	}

	return fmt.Sprintf("Состояние: %s\nПоследнее сохранение: %s\nНе сохранено: %s", phase, last, pending)
}
