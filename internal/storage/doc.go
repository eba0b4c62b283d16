// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the note collection between sessions.
//
// A Store is a small key/value interface with two backends: FileStore keeps
// one JSON file per key, SQLiteStore keeps rows in a single database. The
// whole collection is saved under the fixed key AppKey as a versioned JSON
// snapshot.
//
// # Key Types
//
//   - Store: key/value persistence backend
//   - FileStore: one file per key, written atomically
//   - SQLiteStore: kv table in a modernc.org/sqlite database
//   - Snapshot: the serialized collection
//
// # Usage
//
// Open the configured backend and restore the last session:
//
//	store, err := storage.Open(cfg)
//	defer store.Close()
//	notes, err := storage.LoadCollection(store)
//
// Persist the collection on exit:
//
//	err := storage.SaveCollection(store, notes)
//
// # Storage Location
//
// Both backends live in the configured data directory (~/.scratchpad by
// default): scratchpad.json for the file backend, scratchpad.db for sqlite.
package storage
