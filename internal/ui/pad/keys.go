// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pad

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings handled by the pad itself. Every
// other key goes to the focused note panel. Bindings use ctrl/function keys
// so they never collide with typing.
type KeyMap struct {
	NewNote       key.Binding
	CloseNote     key.Binding
	NextNote      key.Binding
	PrevNote      key.Binding
	ToggleField   key.Binding
	TogglePreview key.Binding
	Export        key.Binding
	Save          key.Binding
	Copy          key.Binding
	Menu          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewNote: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "new note"),
		),
		CloseNote: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close note"),
		),
		NextNote: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next note"),
		),
		PrevNote: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous note"),
		),
		ToggleField: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "edit title/body"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "markdown preview"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "export"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy note"),
		),
		Menu: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("C-q", "save & quit"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewNote, k.CloseNote, k.Export, k.Menu, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Notes
		{k.NewNote, k.CloseNote, k.NextNote, k.PrevNote},
		// Editing
		{k.ToggleField, k.TogglePreview, k.Copy},
		// Application
		{k.Export, k.Save, k.Menu, k.Help, k.Quit},
	}
}
