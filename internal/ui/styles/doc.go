// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for scratchpad.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

## Accent Colors

  - Purple - Focused panel border and menu selection
  - Cyan - Brand color, panel titles and key hints
  - Emerald - Saved indicator and successful exports
  - Amber - Unsaved indicator and warnings
  - Rose - Errors

## Surface and Text Colors

	Surface       - Main background
	SurfaceDim    - Status bar background
	Overlay       - Unfocused panel borders
	TextPrimary   - Note content
	TextSecondary - Labels
	TextMuted     - Placeholders and hints

# Theme System (theme.go)

NewTheme resolves the configured mode ("auto", "dark", "light") against the
terminal using termenv and builds every Lip Gloss style once:

	theme := styles.NewTheme(cfg.UI.Theme)
	theme.SetSize(msg.Width, msg.Height)
	cols := theme.Columns()

# Accessibility

Status messages always carry an ASCII shape next to their color:

	styles.RenderSuccess("Exported 3 notes")  // [OK] Exported 3 notes
	styles.RenderError("Export failed")       // [X] Export failed
*/
package styles
