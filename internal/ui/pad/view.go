// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pad

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// minPanelRowHeight keeps panels tall enough to type in.
const minPanelRowHeight = 8

// =============================================================================
// LAYOUT
// =============================================================================

// layout sizes the status bar and every visible panel for the window.
func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)
	m.status.SetWidth(m.width)

	visible := m.visiblePanels()
	if len(visible) == 0 {
		return
	}

	cols := m.columns(len(visible))
	width := m.width / cols
	height := m.panelHeight(len(visible), cols)
	for _, p := range visible {
		p.SetSize(width, height)
	}
}

// columns returns the panels per row for n visible panels.
func (m Model) columns(n int) int {
	cols := m.theme.Columns()
	if n < cols {
		cols = n
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// panelHeight splits the space above the status bar between rows.
func (m Model) panelHeight(n, cols int) int {
	rows := (n + cols - 1) / cols
	avail := m.bodyHeight()
	height := avail / rows
	if height < minPanelRowHeight {
		height = minPanelRowHeight
	}
	if height > avail && avail >= minPanelRowHeight {
		height = avail
	}
	return height
}

// bodyHeight is the height left for panels.
func (m Model) bodyHeight() int {
	h := m.height - lipgloss.Height(m.status.View())
	if h < 1 {
		return 1
	}
	return h
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the pad.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.panelsView()
	if m.menu.IsOpen() {
		body = m.menu.Overlay(body, m.width, m.bodyHeight())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.status.View())
}

// panelsView tiles the visible panels in rows, scrolled so the focused
// panel's row is on screen.
func (m Model) panelsView() string {
	visible := m.visiblePanels()
	avail := m.bodyHeight()

	if len(visible) == 0 {
		empty := m.theme.EmptyState.Render(
			"No notes yet.\n\nPress " + m.theme.ShortcutKey.Render("ctrl+n") + " to create one.")
		return lipgloss.Place(m.width, avail, lipgloss.Center, lipgloss.Center, empty)
	}

	cols := m.columns(len(visible))
	var rows []string
	focusRow := 0
	for start := 0; start < len(visible); start += cols {
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}
		views := make([]string, 0, cols)
		for _, p := range visible[start:end] {
			if p.ID() == m.focusID {
				focusRow = len(rows)
			}
			views = append(views, p.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}

	return clipRows(rows, focusRow, avail)
}

// clipRows joins rows and keeps at most height lines, starting early
// enough that row focus is fully visible.
func clipRows(rows []string, focus, height int) string {
	lines := make([]string, 0, height)
	offsets := make([]int, len(rows))
	for i, row := range rows {
		offsets[i] = len(lines)
		lines = append(lines, strings.Split(row, "\n")...)
	}
	if len(lines) <= height {
		return strings.Join(lines, "\n")
	}

	start := 0
	focusEnd := len(lines)
	if focus+1 < len(rows) {
		focusEnd = offsets[focus+1]
	}
	if focusEnd > height {
		start = focusEnd - height
	}
	if start > offsets[focus] {
		start = offsets[focus]
	}
	return strings.Join(lines[start:start+height], "\n")
}
