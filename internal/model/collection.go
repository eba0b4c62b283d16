// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// COLLECTION TYPE
// =============================================================================

// Collection is the ordered, in-memory list of notes.
// Order is insertion order. A Collection is not safe for concurrent use;
// it has exactly one owner, the application update loop.
type Collection struct {
	notes  []*Note
	lastID NoteID
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		notes: make([]*Note, 0),
	}
}

// Restore rebuilds a collection from previously saved notes, preserving order.
// Persisted ids are kept when they are non-zero and unique; any other note
// gets a fresh id. The id counter continues past the largest id in use.
func Restore(notes []Note) *Collection {
	c := NewCollection()

	seen := make(map[NoteID]bool, len(notes))
	for _, n := range notes {
		if n.ID != 0 && !seen[n.ID] {
			seen[n.ID] = true
			if n.ID > c.lastID {
				c.lastID = n.ID
			}
		}
	}

	kept := make(map[NoteID]bool, len(notes))
	for _, n := range notes {
		note := n
		if note.ID == 0 || kept[note.ID] {
			note.ID = c.nextID()
		}
		kept[note.ID] = true
		c.notes = append(c.notes, &note)
	}

	return c
}

// nextID returns a fresh identifier.
func (c *Collection) nextID() NoteID {
	c.lastID++
	return c.lastID
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Create appends a new open, empty note named DefaultNoteName and returns it.
func (c *Collection) Create() *Note {
	note := &Note{
		ID:   c.nextID(),
		Name: DefaultNoteName,
		Open: true,
	}
	c.notes = append(c.notes, note)
	return note
}

// SweepClosed removes every note whose panel has been closed and returns
// how many were removed. Walks from the end so removal stays index-safe.
func (c *Collection) SweepClosed() int {
	removed := 0
	for i := len(c.notes) - 1; i >= 0; i-- {
		if !c.notes[i].Open {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			removed++
		}
	}
	return removed
}

// Apply applies edits in order and returns how many matched a note.
// Edits for unknown ids are ignored.
func (c *Collection) Apply(edits ...Edit) int {
	applied := 0
	for _, e := range edits {
		note := c.find(e.NoteID)
		if note == nil {
			continue
		}
		if e.apply(note) {
			applied++
		}
	}
	return applied
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Len returns the number of notes, including closed notes not yet swept.
func (c *Collection) Len() int {
	return len(c.notes)
}

// Get returns a copy of the note with the given id.
func (c *Collection) Get(id NoteID) (Note, bool) {
	note := c.find(id)
	if note == nil {
		return Note{}, false
	}
	return *note, true
}

// Notes returns copies of all notes in collection order.
func (c *Collection) Notes() []Note {
	out := make([]Note, len(c.notes))
	for i, n := range c.notes {
		out[i] = *n
	}
	return out
}

// OpenNotes returns copies of the notes whose panels are visible.
func (c *Collection) OpenNotes() []Note {
	out := make([]Note, 0, len(c.notes))
	for _, n := range c.notes {
		if n.Open {
			out = append(out, *n)
		}
	}
	return out
}

// find returns the live note with the given id, or nil.
func (c *Collection) find(id NoteID) *Note {
	for _, n := range c.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
