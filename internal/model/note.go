// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for notes and the note collection.
package model

// DefaultNoteName is the title given to every newly created note.
const DefaultNoteName = "New Note"

// TitleMaxRunes is the number of characters of a note name shown in its
// panel title before the name is cut off.
const TitleMaxRunes = 9

// titleEllipsis is appended to names longer than TitleMaxRunes.
const titleEllipsis = "..."

// =============================================================================
// NOTE TYPE
// =============================================================================

// NoteID identifies a note for as long as it lives in a Collection.
// The zero value is never assigned to a live note.
type NoteID uint64

// Note is one user-authored text document.
type Note struct {
	// ID correlates the note with its panel. Assigned once by the collection.
	ID NoteID `json:"id"`

	// Name is the display title and, verbatim, the export filename.
	Name string `json:"name"`

	// Open is true while the note's panel is visible.
	Open bool `json:"open"`

	// Content is the freeform body.
	Content string `json:"content"`
}

// Title returns the panel title for this note.
func (n Note) Title() string {
	return Title(n.Name)
}

// Title truncates a note name for display. Names of at most TitleMaxRunes
// characters are returned unchanged; longer names keep their first
// TitleMaxRunes characters followed by "...".
func Title(name string) string {
	runes := []rune(name)
	if len(runes) <= TitleMaxRunes {
		return name
	}
	return string(runes[:TitleMaxRunes]) + titleEllipsis
}
