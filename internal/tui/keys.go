// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	tab     key.Binding
	backtab key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	flush   key.Binding
	toggle  key.Binding
	cancel  key.Binding
	copy    key.Binding
	info    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	flush:   key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:  key.NewBinding(key.WithKeys("ctrl+d")),
	cancel:  key.NewBinding(key.WithKeys("ctrl+x")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	info:    key.NewBinding(key.WithKeys("f1")),
}
