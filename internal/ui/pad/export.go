// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pad

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/scratchpad/internal/export"
	"github.com/jeranaias/scratchpad/internal/ui/components"
)

// =============================================================================
// EXPORT HANDLERS
// =============================================================================

// handleExport exports every note synchronously and reports the outcome in
// the status bar. The UI does not advance until all files are written.
func (m Model) handleExport() (tea.Model, tea.Cmd) {
	notes := m.notes.Notes()

	result, err := m.exporter.Export(notes)
	if err != nil {
		m.lastErr = err
		m.status.SetNotice(components.NoticeError, exportErrorText(err))
		return m, nil
	}

	m.lastExport = result
	dir := filepath.Base(result.Dir)

	switch {
	case !result.OK():
		m.lastErr = result.Err()
		m.status.SetNotice(components.NoticeWarning, fmt.Sprintf(
			"Exported %d of %d notes to %s (%d failed)",
			len(result.Files), len(notes), dir, len(result.Failures)))
	case len(notes) == 0:
		m.status.SetNotice(components.NoticeInfo, "Nothing to export, created "+dir)
	default:
		m.status.SetNotice(components.NoticeSuccess, fmt.Sprintf(
			"Exported %d notes to %s", len(result.Files), dir))
	}

	if m.openAfterExport {
		if err := export.OpenDir(result.Dir); err != nil {
			m.logger.Warn("could not open export directory", zap.String("dir", result.Dir), zap.Error(err))
		}
	}
	return m, nil
}

// exportErrorText turns an export error into a status line.
func exportErrorText(err error) string {
	switch {
	case errors.Is(err, export.ErrNoHomeDirectory):
		return "Export failed: could not find your home directory"
	case errors.Is(err, export.ErrDirectoryCreate):
		var exportErr *export.Error
		if errors.As(err, &exportErr) && exportErr.Path != "" {
			return "Export failed: could not create " + exportErr.Path
		}
		return "Export failed: could not create the export directory"
	default:
		return "Export failed: " + err.Error()
	}
}
