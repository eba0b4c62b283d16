// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pad is the Bubble Tea application hosting the note collection.
//
// The pad shows one panel per open note, tiled to the terminal width, with
// a status bar underneath. It owns the collection: panels report edits,
// the pad applies them, and every update starts by sweeping notes that were
// closed during the previous one.
//
// # Key Types
//
//   - Model: the Bubble Tea model
//   - Options: collaborators (store, exporter, session, theme, logger)
//   - KeyMap: pad-level bindings shown in the help
//
// # Usage
//
//	m := pad.New(pad.Options{Notes: notes, Store: store, Exporter: exporter})
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	final, err := p.Run()
//
// Export (ctrl+e or the F2 menu) runs synchronously inside Update, so the
// UI does not move on until every file is written.
package pad
