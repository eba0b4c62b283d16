// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/scratchpad/internal/model"
	"github.com/jeranaias/scratchpad/internal/ui/styles"
	"github.com/jeranaias/scratchpad/internal/util"
)

// =============================================================================
// NOTE PANEL COMPONENT - Title field and body editor for one note
// =============================================================================

// PanelField selects which editor inside a panel receives keystrokes.
type PanelField int

const (
	PanelBody PanelField = iota
	PanelTitle
)

// Minimum usable panel dimensions.
const (
	minPanelWidth  = 16
	minPanelHeight = 6
)

// NotePanel is the on-screen editor for one note. It never mutates the note
// itself: Update reports what the user changed as model edits, and the owner
// applies them to the collection.
type NotePanel struct {
	id      model.NoteID
	title   textinput.Model
	body    textarea.Model
	field   PanelField
	focused bool
	preview bool

	// Fields whose stored text the editors would rewrite on load. They show
	// the stored text and accept no edits.
	titleLocked bool
	bodyLocked  bool
	name        string
	content     string

	width  int
	height int
	theme  *styles.Theme

	renderer      *glamour.TermRenderer
	rendererWidth int
}

// NewNotePanel creates a panel showing note.
func NewNotePanel(note model.Note, theme *styles.Theme) *NotePanel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = model.DefaultNoteName
	ti.CharLimit = 0
	ti.SetValue(note.Name)
	ti.CursorEnd()

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Cyan)

	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.SetValue(note.Content)

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Text = theme.PanelBody
	ta.BlurredStyle.Text = lipgloss.NewStyle().Foreground(styles.TextSecondary)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)
	ta.BlurredStyle.Placeholder = ta.FocusedStyle.Placeholder

	p := &NotePanel{
		id:      note.ID,
		title:   ti,
		body:    ta,
		field:   PanelBody,
		theme:   theme,
		name:    note.Name,
		content: note.Content,
	}
	// The editors replace tabs and carriage returns and drop control
	// characters. Editing such text would write the altered value back.
	p.titleLocked = ti.Value() != note.Name
	if ta.Value() != note.Content {
		p.bodyLocked = true
		p.preview = true
	}
	p.SetSize(40, 12)
	return p
}

// ID returns the id of the note shown in this panel.
func (p *NotePanel) ID() model.NoteID {
	return p.id
}

// Name returns the title currently typed into the panel.
func (p *NotePanel) Name() string {
	if p.titleLocked {
		return p.name
	}
	return p.title.Value()
}

// Content returns the body currently typed into the panel.
func (p *NotePanel) Content() string {
	if p.bodyLocked {
		return p.content
	}
	return p.body.Value()
}

// Locked reports whether the active field holds text the editor cannot
// represent and therefore ignores keystrokes.
func (p *NotePanel) Locked() bool {
	if p.field == PanelTitle {
		return p.titleLocked
	}
	return p.bodyLocked
}

// HasLockedField reports whether the title or the body is locked.
func (p *NotePanel) HasLockedField() bool {
	return p.titleLocked || p.bodyLocked
}

// Field returns the editor that receives keystrokes.
func (p *NotePanel) Field() PanelField {
	return p.field
}

// =============================================================================
// FOCUS
// =============================================================================

// Focus gives keyboard focus to the panel's active field.
func (p *NotePanel) Focus() tea.Cmd {
	p.focused = true
	return p.focusField()
}

// Blur removes keyboard focus from the panel.
func (p *NotePanel) Blur() {
	p.focused = false
	p.title.Blur()
	p.body.Blur()
}

// Focused returns whether the panel has keyboard focus.
func (p *NotePanel) Focused() bool {
	return p.focused
}

// ToggleField moves focus between the title and the body.
func (p *NotePanel) ToggleField() tea.Cmd {
	if p.field == PanelBody {
		p.field = PanelTitle
	} else {
		p.field = PanelBody
	}
	if !p.focused {
		return nil
	}
	return p.focusField()
}

func (p *NotePanel) focusField() tea.Cmd {
	if p.field == PanelTitle {
		p.body.Blur()
		return p.title.Focus()
	}
	p.title.Blur()
	return p.body.Focus()
}

// TogglePreview switches the body between the editor and rendered Markdown.
// A locked body stays in preview.
func (p *NotePanel) TogglePreview() {
	if p.bodyLocked {
		return
	}
	p.preview = !p.preview
}

// Previewing returns whether the body shows rendered Markdown.
func (p *NotePanel) Previewing() bool {
	return p.preview
}

// =============================================================================
// SIZE
// =============================================================================

// SetSize sets the outer panel dimensions including the border.
func (p *NotePanel) SetSize(width, height int) {
	if width < minPanelWidth {
		width = minPanelWidth
	}
	if height < minPanelHeight {
		height = minPanelHeight
	}
	p.width = width
	p.height = height

	// Border (2) + horizontal padding (2)
	inner := width - 4
	p.title.Width = inner - 1
	p.body.SetWidth(inner)
	// Border (2) + title line + separator line
	p.body.SetHeight(height - 4)
}

// Size returns the outer panel dimensions.
func (p *NotePanel) Size() (int, int) {
	return p.width, p.height
}

// =============================================================================
// UPDATE
// =============================================================================

// Update forwards msg to the active field and reports the resulting changes
// as edits against this panel's note.
func (p *NotePanel) Update(msg tea.Msg) ([]model.Edit, tea.Cmd) {
	if !p.focused {
		return nil, nil
	}

	var (
		edits []model.Edit
		cmd   tea.Cmd
	)

	if p.Locked() {
		return nil, nil
	}

	switch p.field {
	case PanelTitle:
		before := p.title.Value()
		p.title, cmd = p.title.Update(msg)
		if after := p.title.Value(); after != before {
			edits = append(edits, model.Rename(p.id, after))
		}
	default:
		if p.preview {
			// Read-only while previewing
			return nil, nil
		}
		before := p.body.Value()
		p.body, cmd = p.body.Update(msg)
		if after := p.body.Value(); after != before {
			edits = append(edits, model.SetContent(p.id, after))
		}
	}

	return edits, cmd
}

// CloseEdit returns the edit that closes this panel's note.
func (p *NotePanel) CloseEdit() model.Edit {
	return model.Close(p.id)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the panel.
func (p *NotePanel) View() string {
	frame := p.theme.Panel
	if p.focused {
		frame = p.theme.PanelFocused
	}
	inner := p.width - 4

	header := p.headerView(inner)
	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(strings.Repeat("─", inner))

	var body string
	if p.preview {
		body = p.previewView(inner, p.height-4)
	} else {
		body = p.body.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, sep, body)
	return frame.
		Width(p.width - 2).
		Height(p.height - 2).
		Render(content)
}

// headerView shows the truncated title, or the title editor while editing it.
func (p *NotePanel) headerView(width int) string {
	if p.focused && p.field == PanelTitle && !p.titleLocked {
		return p.title.View()
	}

	title := model.Title(p.Name())
	if title == "" {
		return p.theme.Placeholder.Render(util.TruncateWidth("(untitled)", width))
	}
	return p.theme.PanelTitle.Render(util.TruncateWidth(title, width))
}

// previewView renders the body as Markdown, falling back to plain text.
func (p *NotePanel) previewView(width, height int) string {
	content := p.Content()
	if strings.TrimSpace(content) == "" {
		return p.theme.Placeholder.Render("Nothing to preview")
	}

	rendered, err := p.renderMarkdown(content, width)
	if err != nil {
		return strings.Join(util.ClipLines(content, width, height), "\n")
	}
	// Glamour already wrapped to width; styled lines are only cut by count.
	lines := strings.Split(strings.Trim(rendered, "\n"), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (p *NotePanel) renderMarkdown(content string, width int) (string, error) {
	if p.renderer == nil || p.rendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(p.theme.GlamourStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		p.renderer = r
		p.rendererWidth = width
	}
	return p.renderer.Render(content)
}
