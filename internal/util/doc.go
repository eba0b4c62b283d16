// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across the scratchpad packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//   - ExpandHome: Resolve a leading "~" in configured paths
//
// String Utilities (terminal column aware):
//   - TruncateWidth: Cut to a display width with ellipsis
//   - PadRight: Pad or cut to an exact display width
//   - ClipLines: Bound a multi-line body to a panel
//
// # Usage
//
//	// Persist a snapshot without risking a half-written file
//	err := util.AtomicWriteFile(path, data, 0600)
//
//	// Fit a line into a 30 column panel
//	line := util.PadRight(text, 30)
package util
