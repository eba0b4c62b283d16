// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks unsaved changes and schedules auto-save checkpoints.
//
// The note collection is always saved on exit. While the application runs,
// the session manager watches for unsaved edits and asks the UI to write a
// checkpoint once the configured interval has passed, so a crash loses at
// most one interval of typing.
//
// # Key Types
//
//   - Manager: dirty tracking and checkpoint scheduling
//   - TickMsg: Bubble Tea message sent once a second
//   - AutoSaveMsg: Bubble Tea message requesting a checkpoint
//
// # Usage
//
// Create a manager and start ticking from Init:
//
//	mgr := session.NewManager(session.ConfigFromSeconds(cfg.UI.AutoSaveSecs))
//	return session.TickCmd()
//
// Mark edits and react to ticks in Update:
//
//	mgr.MarkDirty()
//	case session.TickMsg:
//	    return m, mgr.HandleTick()
//	case session.AutoSaveMsg:
//	    save(); mgr.MarkClean()
package session
