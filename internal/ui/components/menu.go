// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/scratchpad/internal/ui/styles"
)

// =============================================================================
// MENU COMPONENT - Application menu overlay
// =============================================================================

// MenuAction identifies a menu entry.
type MenuAction int

const (
	ActionNone MenuAction = iota
	ActionExport
	ActionImport
	ActionDeleteAll
)

// String returns the menu label for the action.
func (a MenuAction) String() string {
	switch a {
	case ActionExport:
		return "Export"
	case ActionImport:
		return "Import"
	case ActionDeleteAll:
		return "Delete All Notes"
	default:
		return ""
	}
}

// MenuItem is one entry of the menu.
type MenuItem struct {
	Action MenuAction
	// Hint is the shortcut shown next to the label.
	Hint string
	// Available is false for entries that only show a notice when chosen.
	Available bool
}

// DefaultMenuItems returns the application menu.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Action: ActionExport, Hint: "ctrl+e", Available: true},
		{Action: ActionImport},
		{Action: ActionDeleteAll},
	}
}

// menuKeys are the bindings active while the menu is open.
var menuKeys = struct {
	Up, Down, Choose, Close key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "tab")),
	Choose: key.NewBinding(key.WithKeys("enter", " ")),
	Close:  key.NewBinding(key.WithKeys("esc", "f2")),
}

// Menu is a small vertical list of application actions.
type Menu struct {
	items  []MenuItem
	cursor int
	open   bool
	theme  *styles.Theme
}

// NewMenu creates a closed menu with the default items.
func NewMenu(theme *styles.Theme) *Menu {
	return &Menu{
		items: DefaultMenuItems(),
		theme: theme,
	}
}

// Open shows the menu with the cursor on the first item.
func (m *Menu) Open() {
	m.open = true
	m.cursor = 0
}

// Close hides the menu.
func (m *Menu) Close() {
	m.open = false
}

// IsOpen returns whether the menu is visible.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Items returns the menu entries.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Selected returns the item under the cursor.
func (m *Menu) Selected() MenuItem {
	return m.items[m.cursor]
}

// Update handles a key while the menu is open. It returns the chosen item
// and true when the user picked one; the menu closes on choice or escape.
func (m *Menu) Update(msg tea.KeyMsg) (MenuItem, bool) {
	if !m.open {
		return MenuItem{}, false
	}

	switch {
	case key.Matches(msg, menuKeys.Up):
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case key.Matches(msg, menuKeys.Down):
		m.cursor = (m.cursor + 1) % len(m.items)
	case key.Matches(msg, menuKeys.Choose):
		m.open = false
		return m.items[m.cursor], true
	case key.Matches(msg, menuKeys.Close):
		m.open = false
	}
	return MenuItem{}, false
}

// View renders the menu box.
func (m *Menu) View() string {
	if !m.open {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Brand.Render("Menu"))
	b.WriteString("\n")

	for i, item := range m.items {
		label := item.Action.String()
		if item.Hint != "" {
			label += "  " + item.Hint
		}

		style := m.theme.MenuItem
		switch {
		case i == m.cursor:
			style = m.theme.MenuItemSelected
		case !item.Available:
			style = m.theme.MenuItemDisabled
		}
		b.WriteString(style.Width(24).Render(label))
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}

	return m.theme.MenuBox.Render(b.String())
}

// Overlay places the menu over background, centered.
func (m *Menu) Overlay(background string, width, height int) string {
	if !m.open {
		return background
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.View(),
		lipgloss.WithWhitespaceChars(" "))
}
