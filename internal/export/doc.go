// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a snapshot of the note collection to disk.
//
// Every call creates a new directory
//
//	<home>/scratchpad/exports/export_<RFC3339 UTC timestamp>/
//
// and writes one plain-text file per note, named after the note verbatim.
// Notes sharing a name get "(1)", "(2)", ... appended. Existing files are
// never overwritten.
//
// # Key Types
//
//   - Manager: Runs exports; stateless between calls
//   - Options: Export root, home directory and clock sources
//   - Result: Directory, written files and per-note failures
//   - Error: Typed failure (NoHomeDirectory, DirectoryCreateError, FileWriteError)
//
// # Usage
//
//	mgr := export.NewManager(export.DefaultOptions())
//	res, err := mgr.Export(notes.Notes())
//	switch {
//	case errors.Is(err, export.ErrNoHomeDirectory), errors.Is(err, export.ErrDirectoryCreate):
//	    // nothing was written
//	case !res.OK():
//	    // some notes failed; res.Failures lists them
//	}
package export
