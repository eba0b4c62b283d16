// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// =============================================================================
// EDIT EVENTS
// =============================================================================

// Field names the part of a note an Edit changes.
type Field int

const (
	FieldName    Field = iota // Rename the note
	FieldContent              // Replace the body
	FieldOpen                 // Open/close the panel
)

// String returns a human-readable field name.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldContent:
		return "content"
	case FieldOpen:
		return "open"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Edit is a change requested by the UI for a single note.
// Panels produce edits while handling input; the collection applies them.
type Edit struct {
	NoteID NoteID
	Field  Field

	// Value is the new name or content for FieldName and FieldContent.
	Value string

	// Open is the new open flag for FieldOpen.
	Open bool
}

// Rename returns an edit that sets a note's name.
func Rename(id NoteID, name string) Edit {
	return Edit{NoteID: id, Field: FieldName, Value: name}
}

// SetContent returns an edit that replaces a note's body.
func SetContent(id NoteID, content string) Edit {
	return Edit{NoteID: id, Field: FieldContent, Value: content}
}

// Close returns an edit that marks a note's panel as dismissed.
// The note stays in the collection until the next sweep.
func Close(id NoteID) Edit {
	return Edit{NoteID: id, Field: FieldOpen, Open: false}
}

// apply writes the edit into n.
func (e Edit) apply(n *Note) bool {
	switch e.Field {
	case FieldName:
		n.Name = e.Value
	case FieldContent:
		n.Content = e.Value
	case FieldOpen:
		n.Open = e.Open
	default:
		return false
	}
	return true
}
