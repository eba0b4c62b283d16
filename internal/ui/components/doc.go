// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the interactive UI pieces of scratchpad.

Each component is built on Bubble Tea, Bubbles and Lip Gloss and styled
through a shared *styles.Theme.

# Core Components

NotePanel (notepanel.go) - Title field and body editor for one note, with a
Markdown preview rendered by Glamour. Panels never mutate notes; Update
returns the user's changes as model.Edit values for the owner to apply.

Menu (menu.go) - Application menu overlay with Export, Import and
Delete All Notes.

StatusBar (statusbar.go) - Note count, save state, transient notices and
key help from bubbles/help.

# Usage

	panel := components.NewNotePanel(note, theme)
	cmd := panel.Focus()
	edits, cmd := panel.Update(msg)
	notes.Apply(edits...)
*/
package components
