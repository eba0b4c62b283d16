// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for notes and the note collection.
//
// # Key Types
//
//   - Note: A titled text document shown in its own panel
//   - Collection: The ordered list of notes owned by the update loop
//   - Edit: A requested change to one note, produced by the UI
//
// # Lifecycle
//
// Notes are created open with the name "New Note". Closing a panel only
// clears the note's Open flag; the note is removed by the next SweepClosed,
// which the update loop runs before anything is drawn.
//
// # Usage
//
//	notes := model.NewCollection()
//	n := notes.Create()
//	notes.Apply(model.Rename(n.ID, "groceries"), model.SetContent(n.ID, "milk"))
//	notes.Apply(model.Close(n.ID))
//	notes.SweepClosed() // n is gone
package model
