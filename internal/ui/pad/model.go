// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pad is the Bubble Tea application hosting the note collection.
package pad

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/scratchpad/internal/export"
	"github.com/jeranaias/scratchpad/internal/logging"
	"github.com/jeranaias/scratchpad/internal/model"
	"github.com/jeranaias/scratchpad/internal/session"
	"github.com/jeranaias/scratchpad/internal/storage"
	"github.com/jeranaias/scratchpad/internal/ui/components"
	"github.com/jeranaias/scratchpad/internal/ui/styles"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options wires the pad to its collaborators. Only Notes is required.
type Options struct {
	// Notes is the collection the pad edits. Default: empty collection
	Notes *model.Collection

	// Store persists the collection on save, auto-save and quit.
	// Nil disables persistence.
	Store storage.Store

	// Exporter writes exports. Default: export.NewManager(nil)
	Exporter *export.Manager

	// OpenAfterExport opens the export directory in the file browser.
	OpenAfterExport bool

	// Session tracks unsaved changes. Default: 30 second auto-save
	Session *session.Manager

	// Theme styles the UI. Default: auto-detected
	Theme *styles.Theme

	// Logger receives application events. Default: no-op
	Logger *zap.Logger

	// Clipboard copies text. Default: atotto/clipboard
	Clipboard func(string) error
}

// =============================================================================
// PAD MODEL
// =============================================================================

// Model is the Bubble Tea model for the scratchpad.
//
// The collection is owned here and mutated only inside Update. Panels
// report edits; Update applies them by note id. Every Update begins by
// sweeping notes closed during the previous one.
type Model struct {
	// Notes
	notes   *model.Collection
	panels  []*components.NotePanel
	focusID model.NoteID // 0 when nothing is focused

	// UI Components
	menu   *components.Menu
	status *components.StatusBar
	keys   KeyMap
	theme  *styles.Theme

	// Dimensions
	width  int
	height int

	// Collaborators
	store           storage.Store
	exporter        *export.Manager
	openAfterExport bool
	session         *session.Manager
	logger          *zap.Logger
	copy            func(string) error

	// Results
	lastExport *export.Result
	lastErr    error
	quitting   bool
}

// New creates the pad model with one panel per note in opts.Notes.
func New(opts Options) Model {
	notes := opts.Notes
	if notes == nil {
		notes = model.NewCollection()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.ModeAuto)
	}
	exporter := opts.Exporter
	if exporter == nil {
		exporter = export.NewManager(nil)
	}
	sess := opts.Session
	if sess == nil {
		sess = session.NewManager(session.DefaultConfig())
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	keys := DefaultKeyMap()
	m := Model{
		notes:           notes,
		menu:            components.NewMenu(theme),
		status:          components.NewStatusBar(theme, keys),
		keys:            keys,
		theme:           theme,
		width:           80,
		height:          24,
		store:           opts.Store,
		exporter:        exporter,
		openAfterExport: opts.OpenAfterExport,
		session:         sess,
		logger:          logging.OrNop(opts.Logger),
		copy:            copyFn,
	}

	m.syncPanels()
	if visible := m.visiblePanels(); len(visible) > 0 {
		m.focusPanel(visible[0].ID())
	}
	m.layout()
	m.refreshStatus()
	return m
}

// Init focuses the first panel and starts the session ticker.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{session.TickCmd()}
	if p := m.focusedPanel(); p != nil {
		cmds = append(cmds, p.Focus())
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Notes returns the collection being edited.
func (m Model) Notes() *model.Collection {
	return m.notes
}

// FocusedID returns the id of the focused note, or 0.
func (m Model) FocusedID() model.NoteID {
	return m.focusID
}

// LastExport returns the result of the most recent successful export call.
func (m Model) LastExport() *export.Result {
	return m.lastExport
}

// Err returns the most recent save or export error, if any.
func (m Model) Err() error {
	return m.lastErr
}

// Quitting reports whether the pad has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// =============================================================================
// PANEL BOOKKEEPING
// =============================================================================

// lockedNotice explains why a restored note ignores typing.
const lockedNotice = "Note has characters the editor would change; shown read-only"

// syncPanels drops panels whose note has been swept and adds panels for
// notes that have none, keeping collection order.
func (m *Model) syncPanels() {
	existing := make(map[model.NoteID]*components.NotePanel, len(m.panels))
	for _, p := range m.panels {
		existing[p.ID()] = p
	}

	notes := m.notes.Notes()
	panels := make([]*components.NotePanel, 0, len(notes))
	locked := 0
	for _, n := range notes {
		if p, ok := existing[n.ID]; ok {
			panels = append(panels, p)
			continue
		}
		panel := components.NewNotePanel(n, m.theme)
		if panel.HasLockedField() {
			locked++
			m.logger.Warn("note opened read-only", zap.Uint64("note_id", uint64(n.ID)))
		}
		panels = append(panels, panel)
	}
	m.panels = panels

	if locked > 0 {
		m.status.SetNotice(components.NoticeWarning, lockedNotice)
	}

	if _, ok := m.notes.Get(m.focusID); !ok {
		m.focusID = 0
	}
}

// visiblePanels returns the panels whose note is open.
func (m Model) visiblePanels() []*components.NotePanel {
	out := make([]*components.NotePanel, 0, len(m.panels))
	for _, p := range m.panels {
		if n, ok := m.notes.Get(p.ID()); ok && n.Open {
			out = append(out, p)
		}
	}
	return out
}

// focusedPanel returns the focused panel, or nil.
func (m Model) focusedPanel() *components.NotePanel {
	if m.focusID == 0 {
		return nil
	}
	for _, p := range m.visiblePanels() {
		if p.ID() == m.focusID {
			return p
		}
	}
	return nil
}

// focusPanel moves keyboard focus to the panel for id.
func (m *Model) focusPanel(id model.NoteID) tea.Cmd {
	if old := m.focusedPanel(); old != nil && old.ID() != id {
		old.Blur()
	}
	m.focusID = id
	if p := m.focusedPanel(); p != nil {
		return p.Focus()
	}
	m.focusID = 0
	return nil
}

// cycleFocus moves focus forward (delta 1) or backward (delta -1) through
// the visible panels.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	visible := m.visiblePanels()
	if len(visible) == 0 {
		return nil
	}

	idx := -1
	for i, p := range visible {
		if p.ID() == m.focusID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m.focusPanel(visible[0].ID())
	}
	next := (idx + delta + len(visible)) % len(visible)
	return m.focusPanel(visible[next].ID())
}
