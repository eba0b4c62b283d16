// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

// =============================================================================
// CREATE TESTS
// =============================================================================

func TestCollection_CreateDefaults(t *testing.T) {
	c := NewCollection()
	n := c.Create()

	if n.ID == 0 {
		t.Error("Create should assign a non-zero id")
	}
	if n.Name != DefaultNoteName {
		t.Errorf("Name = %q, want %q", n.Name, DefaultNoteName)
	}
	if !n.Open {
		t.Error("new note should be open")
	}
	if n.Content != "" {
		t.Errorf("Content = %q, want empty", n.Content)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCollection_CreateDistinctIDs(t *testing.T) {
	c := NewCollection()
	seen := make(map[NoteID]bool)

	for i := 0; i < 500; i++ {
		n := c.Create()
		if seen[n.ID] {
			t.Fatalf("duplicate id %d after %d creates", n.ID, i)
		}
		seen[n.ID] = true
	}
}

func TestCollection_IDsNotReusedAfterSweep(t *testing.T) {
	c := NewCollection()
	first := c.Create()
	c.Apply(Close(first.ID))
	c.SweepClosed()

	second := c.Create()
	if second.ID == first.ID {
		t.Errorf("id %d reused after sweep", first.ID)
	}
}

// =============================================================================
// SWEEP TESTS
// =============================================================================

func TestCollection_SweepKeepsOpenInOrder(t *testing.T) {
	tests := []struct {
		name  string
		open  []bool
		names []string
	}{
		{"none closed", []bool{true, true, true}, []string{"a", "b", "c"}},
		{"all closed", []bool{false, false, false}, []string{}},
		{"first closed", []bool{false, true, true}, []string{"b", "c"}},
		{"last closed", []bool{true, true, false}, []string{"a", "b"}},
		{"alternating", []bool{false, true, false, true, false}, []string{"b", "d"}},
		{"adjacent closed", []bool{true, false, false, true}, []string{"a", "d"}},
		{"empty", []bool{}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCollection()
			for i, open := range tc.open {
				n := c.Create()
				c.Apply(Rename(n.ID, string(rune('a'+i))))
				if !open {
					c.Apply(Close(n.ID))
				}
			}

			wantRemoved := len(tc.open) - len(tc.names)
			if removed := c.SweepClosed(); removed != wantRemoved {
				t.Errorf("SweepClosed() = %d, want %d", removed, wantRemoved)
			}

			got := c.Notes()
			if len(got) != len(tc.names) {
				t.Fatalf("got %d notes, want %d", len(got), len(tc.names))
			}
			for i, n := range got {
				if n.Name != tc.names[i] {
					t.Errorf("note %d = %q, want %q", i, n.Name, tc.names[i])
				}
				if !n.Open {
					t.Errorf("note %q survived sweep while closed", n.Name)
				}
			}
		})
	}
}

func TestCollection_CloseIsTwoStep(t *testing.T) {
	c := NewCollection()
	n := c.Create()

	c.Apply(Close(n.ID))
	if c.Len() != 1 {
		t.Fatal("closed note should remain until sweep")
	}
	if len(c.OpenNotes()) != 0 {
		t.Error("closed note should not be listed as open")
	}

	c.SweepClosed()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after sweep, want 0", c.Len())
	}
}

// =============================================================================
// APPLY TESTS
// =============================================================================

func TestCollection_ApplyEdits(t *testing.T) {
	c := NewCollection()
	a := c.Create()
	b := c.Create()

	applied := c.Apply(
		Rename(a.ID, "shopping"),
		SetContent(b.ID, "line one\nline two"),
	)
	if applied != 2 {
		t.Errorf("Apply() = %d, want 2", applied)
	}

	got, ok := c.Get(a.ID)
	if !ok || got.Name != "shopping" {
		t.Errorf("Get(a) = %+v, %v", got, ok)
	}
	got, ok = c.Get(b.ID)
	if !ok || got.Content != "line one\nline two" {
		t.Errorf("Get(b) = %+v, %v", got, ok)
	}
	if got.Name != DefaultNoteName {
		t.Errorf("content edit changed name to %q", got.Name)
	}
}

func TestCollection_ApplyUnknownIDIgnored(t *testing.T) {
	c := NewCollection()
	n := c.Create()

	if applied := c.Apply(Rename(n.ID+100, "ghost")); applied != 0 {
		t.Errorf("Apply() = %d, want 0", applied)
	}
	got, _ := c.Get(n.ID)
	if got.Name != DefaultNoteName {
		t.Errorf("unrelated note renamed to %q", got.Name)
	}
}

func TestCollection_NotesReturnsCopies(t *testing.T) {
	c := NewCollection()
	n := c.Create()

	notes := c.Notes()
	notes[0].Name = "mutated"

	got, _ := c.Get(n.ID)
	if got.Name != DefaultNoteName {
		t.Error("Notes() should return copies, not live references")
	}
}

// =============================================================================
// RESTORE TESTS
// =============================================================================

func TestRestore_KeepsUniqueIDs(t *testing.T) {
	c := Restore([]Note{
		{ID: 7, Name: "a", Open: true},
		{ID: 3, Name: "b", Open: true},
	})

	notes := c.Notes()
	if notes[0].ID != 7 || notes[1].ID != 3 {
		t.Errorf("ids = %d,%d, want 7,3", notes[0].ID, notes[1].ID)
	}

	n := c.Create()
	if n.ID <= 7 {
		t.Errorf("new id %d should be past restored ids", n.ID)
	}
}

func TestRestore_RepairsDuplicateAndZeroIDs(t *testing.T) {
	c := Restore([]Note{
		{ID: 5, Name: "a", Open: true},
		{ID: 5, Name: "b", Open: true},
		{ID: 0, Name: "c", Open: false},
	})

	seen := make(map[NoteID]bool)
	for _, n := range c.Notes() {
		if n.ID == 0 {
			t.Errorf("note %q restored with zero id", n.Name)
		}
		if seen[n.ID] {
			t.Errorf("duplicate id %d after restore", n.ID)
		}
		seen[n.ID] = true
	}

	notes := c.Notes()
	if notes[0].Name != "a" || notes[1].Name != "b" || notes[2].Name != "c" {
		t.Error("restore should preserve order")
	}
	if notes[2].Open {
		t.Error("restore should preserve the open flag")
	}
}

// =============================================================================
// TITLE TESTS
// =============================================================================

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", ""},
		{"short", "short"},
		{"ninechars", "ninechars"},
		{"tencharsxx", "tencharsx..."},
		{"New Note", "New Note"},
		{"a much longer title", "a much lo..."},
		{"日本語のノートのタイトル", "日本語のノートのタ..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Title(tc.name); got != tc.want {
				t.Errorf("Title(%q) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestTitle_Property(t *testing.T) {
	for length := 0; length <= 30; length++ {
		name := strings.Repeat("x", length)
		got := Title(name)
		if length <= TitleMaxRunes {
			if got != name {
				t.Errorf("len %d: Title changed short name to %q", length, got)
			}
			continue
		}
		if got != name[:TitleMaxRunes]+"..." {
			t.Errorf("len %d: Title = %q", length, got)
		}
	}
}

func TestField_String(t *testing.T) {
	if FieldName.String() != "name" || FieldContent.String() != "content" || FieldOpen.String() != "open" {
		t.Error("unexpected field names")
	}
	if Field(42).String() != "field(42)" {
		t.Errorf("Field(42).String() = %q", Field(42).String())
	}
}
