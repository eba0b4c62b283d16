// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pad

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/scratchpad/internal/model"
	"github.com/jeranaias/scratchpad/internal/session"
	"github.com/jeranaias/scratchpad/internal/storage"
	"github.com/jeranaias/scratchpad/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Notes closed during the previous update leave the collection first.
	if removed := m.notes.SweepClosed(); removed > 0 {
		m.logger.Debug("swept closed notes", zap.Int("count", removed))
		m.syncPanels()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case session.TickMsg:
		m.refreshStatus()
		return m, m.session.HandleTick()

	case session.AutoSaveMsg:
		m.save("auto-save")
		return m, nil
	}

	return m.forwardToPanel(msg)
}

// handleKey routes a key to the menu, a pad action or the focused panel.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.IsOpen() {
		if item, chosen := m.menu.Update(msg); chosen {
			return m.handleMenuChoice(item)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.NewNote):
		return m.newNote()

	case key.Matches(msg, m.keys.CloseNote):
		return m.closeNote()

	case key.Matches(msg, m.keys.NextNote):
		return m, m.cycleFocus(1)

	case key.Matches(msg, m.keys.PrevNote):
		return m, m.cycleFocus(-1)

	case key.Matches(msg, m.keys.ToggleField):
		if p := m.focusedPanel(); p != nil {
			return m, p.ToggleField()
		}
		return m, nil

	case key.Matches(msg, m.keys.TogglePreview):
		if p := m.focusedPanel(); p != nil {
			p.TogglePreview()
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m.handleExport()

	case key.Matches(msg, m.keys.Save):
		m.save("manual")
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyFocusedNote()

	case key.Matches(msg, m.keys.Menu):
		m.menu.Open()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.status.ToggleHelp()
		m.layout()
		return m, nil
	}

	return m.forwardToPanel(msg)
}

// forwardToPanel hands msg to the focused panel and applies its edits.
func (m Model) forwardToPanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	p := m.focusedPanel()
	if p == nil {
		return m, nil
	}

	if _, ok := msg.(tea.KeyMsg); ok && p.Locked() {
		m.status.SetNotice(components.NoticeWarning, lockedNotice)
		return m, nil
	}

	edits, cmd := p.Update(msg)
	if len(edits) > 0 && m.notes.Apply(edits...) > 0 {
		m.session.MarkDirty()
		m.refreshStatus()
	}
	return m, cmd
}

// =============================================================================
// NOTE ACTIONS
// =============================================================================

// newNote appends a note, opens its panel and focuses it.
func (m Model) newNote() (tea.Model, tea.Cmd) {
	note := m.notes.Create()
	m.syncPanels()
	m.session.MarkDirty()
	m.layout()
	m.refreshStatus()
	m.logger.Debug("note created", zap.Uint64("note_id", uint64(note.ID)))
	return m, m.focusPanel(note.ID)
}

// closeNote closes the focused note. The note stays in the collection
// until the next update sweeps it.
func (m Model) closeNote() (tea.Model, tea.Cmd) {
	p := m.focusedPanel()
	if p == nil {
		return m, nil
	}

	// Pick the neighbor to focus before the panel disappears.
	visible := m.visiblePanels()
	var next model.NoteID
	for i, v := range visible {
		if v.ID() == p.ID() {
			switch {
			case i+1 < len(visible):
				next = visible[i+1].ID()
			case i > 0:
				next = visible[i-1].ID()
			}
			break
		}
	}

	p.Blur()
	m.notes.Apply(p.CloseEdit())
	m.session.MarkDirty()
	m.focusID = 0
	m.layout()
	m.logger.Debug("note closed", zap.Uint64("note_id", uint64(p.ID())))

	if next == 0 {
		m.refreshStatus()
		return m, nil
	}
	cmd := m.focusPanel(next)
	m.refreshStatus()
	return m, cmd
}

// copyFocusedNote copies the focused note's body to the clipboard.
func (m Model) copyFocusedNote() (tea.Model, tea.Cmd) {
	p := m.focusedPanel()
	if p == nil {
		m.status.SetNotice(components.NoticeInfo, "No note to copy")
		return m, nil
	}

	if err := m.copy(p.Content()); err != nil {
		m.logger.Warn("clipboard copy failed", zap.Error(err))
		m.status.SetNotice(components.NoticeError, "Failed to copy to clipboard: "+err.Error())
		return m, nil
	}
	m.status.SetNotice(components.NoticeSuccess, "Copied note to clipboard")
	return m, nil
}

// =============================================================================
// MENU
// =============================================================================

// handleMenuChoice runs the chosen menu action.
func (m Model) handleMenuChoice(item components.MenuItem) (tea.Model, tea.Cmd) {
	if !item.Available {
		m.status.SetNotice(components.NoticeInfo, item.Action.String()+" is not available yet")
		return m, nil
	}

	switch item.Action {
	case components.ActionExport:
		return m.handleExport()
	}
	return m, nil
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// save writes the collection to the store and marks the session clean.
func (m *Model) save(reason string) bool {
	if m.store == nil {
		return true
	}

	if err := storage.SaveCollection(m.store, m.notes); err != nil {
		m.lastErr = err
		m.logger.Error("save failed", zap.String("reason", reason), zap.Error(err))
		m.status.SetNotice(components.NoticeError, "Save failed: "+err.Error())
		return false
	}

	m.session.MarkClean()
	m.refreshStatus()
	m.logger.Info("notes saved", zap.String("reason", reason), zap.Int("notes", m.notes.Len()))
	if reason == "manual" {
		m.status.SetNotice(components.NoticeSuccess, "Saved")
	}
	return true
}

// quit saves the collection and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.notes.SweepClosed()
	m.save("quit")
	m.quitting = true
	return m, tea.Quit
}

// refreshStatus copies live state into the status bar.
func (m *Model) refreshStatus() {
	m.status.NoteCount = len(m.visiblePanels())
	m.status.Session = m.session.GetStatus()
}
