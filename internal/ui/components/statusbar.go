// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/scratchpad/internal/session"
	"github.com/jeranaias/scratchpad/internal/ui/styles"
	"github.com/jeranaias/scratchpad/internal/util"
)

// =============================================================================
// NOTICES
// =============================================================================

// NoticeKind is the severity of a status bar notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// noticeTTL is how long a notice stays visible.
const noticeTTL = 6 * time.Second

// Notice is a transient message shown in the status bar.
type Notice struct {
	Kind      NoticeKind
	Text      string
	ExpiresAt time.Time
}

// Render returns the notice with its accessibility indicator.
func (n Notice) Render() string {
	switch n.Kind {
	case NoticeSuccess:
		return styles.RenderSuccess(n.Text)
	case NoticeWarning:
		return styles.RenderWarning(n.Text)
	case NoticeError:
		return styles.RenderError(n.Text)
	default:
		return styles.RenderInfo(n.Text)
	}
}

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar shows the note count, save state, the latest notice and key help.
type StatusBar struct {
	Width     int
	NoteCount int
	Session   session.Status

	notice *Notice
	help   help.Model
	keys   help.KeyMap
	theme  *styles.Theme
	now    func() time.Time
}

// NewStatusBar creates a status bar showing help for keys.
func NewStatusBar(theme *styles.Theme, keys help.KeyMap) *StatusBar {
	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.FullDesc = theme.ShortcutDesc

	return &StatusBar{
		Width: 80,
		help:  h,
		keys:  keys,
		theme: theme,
		now:   time.Now,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
	s.help.Width = width
}

// ToggleHelp switches between short and full key help.
func (s *StatusBar) ToggleHelp() {
	s.help.ShowAll = !s.help.ShowAll
}

// ShowingFullHelp reports whether full key help is visible.
func (s *StatusBar) ShowingFullHelp() bool {
	return s.help.ShowAll
}

// SetNotice shows text until it expires or is replaced.
func (s *StatusBar) SetNotice(kind NoticeKind, text string) {
	s.notice = &Notice{Kind: kind, Text: text, ExpiresAt: s.now().Add(noticeTTL)}
}

// Notice returns the active notice, if any.
func (s *StatusBar) Notice() (Notice, bool) {
	if s.notice == nil || s.now().After(s.notice.ExpiresAt) {
		return Notice{}, false
	}
	return *s.notice, true
}

// ClearNotice removes the active notice.
func (s *StatusBar) ClearNotice() {
	s.notice = nil
}

// View renders the status line and the key help below it.
func (s *StatusBar) View() string {
	left := s.theme.Brand.Render("scratchpad") + "  " + s.countText()

	right := s.saveState()
	if n, ok := s.Notice(); ok {
		state := right
		avail := s.Width - lipgloss.Width(left) - lipgloss.Width(state) - 6
		if avail > 8 && util.StringWidth(n.Text) > avail-5 {
			n.Text = util.TruncateWidth(n.Text, avail-5)
		}
		right = n.Render()
		if state != "" {
			right = right + "  " + state
		}
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := s.theme.StatusBar.Width(s.Width).Render(left + spaces(gap) + right)

	return lipgloss.JoinVertical(lipgloss.Left, line, s.help.View(s.keys))
}

// saveState describes unsaved changes or the time since the last save.
func (s *StatusBar) saveState() string {
	switch {
	case s.Session.IsDirty && !s.Session.AutoSaveEnabled:
		return s.theme.Dirty.Render("● unsaved (auto-save off)")
	case s.Session.IsDirty:
		next := session.FormatDuration(s.Session.NextSaveIn.Truncate(time.Second))
		return s.theme.Dirty.Render("● unsaved, auto-save in " + next)
	case s.Session.SaveCount > 0:
		ago := session.FormatDuration(s.Session.SinceSave.Truncate(time.Second))
		return s.theme.Clean.Render("✓ saved " + ago + " ago")
	}
	return ""
}

func (s *StatusBar) countText() string {
	switch s.NoteCount {
	case 0:
		return "no notes"
	case 1:
		return "1 note"
	default:
		return fmt.Sprintf("%d notes", s.NoteCount)
	}
}

func spaces(n int) string {
	return util.PadRight("", n)
}
