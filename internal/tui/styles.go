// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	focusedStyle    = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	savingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	scheduledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	disabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
