// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeranaias/scratchpad/internal/model"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// BackupKey holds the last snapshot that could not be decoded, so a fresh
// save under AppKey does not destroy it.
const BackupKey = AppKey + ".corrupt"

// SnapshotError reports a stored snapshot that could not be decoded.
type SnapshotError struct {
	Reason string
	Err    error
}

func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return "invalid snapshot: " + e.Reason + ": " + e.Err.Error()
	}
	return "invalid snapshot: " + e.Reason
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// =============================================================================
// SNAPSHOT TYPE
// =============================================================================

// Snapshot is the persisted form of a collection.
type Snapshot struct {
	Version int          `json:"version"`
	SavedAt time.Time    `json:"saved_at"`
	Notes   []model.Note `json:"notes"`
}

// Encode serializes the collection as an indented JSON snapshot.
func Encode(c *model.Collection) ([]byte, error) {
	snap := Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Now().UTC(),
		Notes:   c.Notes(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot and rebuilds the collection from it.
func Decode(data []byte) (*model.Collection, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &SnapshotError{Reason: "malformed JSON", Err: err}
	}
	if snap.Version > SnapshotVersion {
		return nil, &SnapshotError{
			Reason: fmt.Sprintf("version %d is newer than supported version %d", snap.Version, SnapshotVersion),
		}
	}
	return model.Restore(snap.Notes), nil
}

// =============================================================================
// COLLECTION PERSISTENCE
// =============================================================================

// SaveCollection writes the collection under AppKey.
func SaveCollection(store Store, c *model.Collection) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := store.Put(AppKey, data); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

// LoadCollection reads the collection stored under AppKey.
//
// It always returns a usable collection. A missing snapshot gives an empty
// collection and a nil error. An unreadable or corrupt snapshot gives an
// empty collection and the error, which callers report but need not act on.
func LoadCollection(store Store) (*model.Collection, error) {
	data, err := store.Get(AppKey)
	if errors.Is(err, ErrNotFound) {
		return model.NewCollection(), nil
	}
	if err != nil {
		return model.NewCollection(), fmt.Errorf("failed to load notes: %w", err)
	}

	c, err := Decode(data)
	if err != nil {
		return model.NewCollection(), err
	}
	return c, nil
}

// PreserveCorrupt copies the snapshot stored under AppKey to BackupKey.
// Call it after LoadCollection returns a *SnapshotError and before saving.
func PreserveCorrupt(store Store) error {
	data, err := store.Get(AppKey)
	if err != nil {
		return err
	}
	if err := store.Put(BackupKey, data); err != nil {
		return fmt.Errorf("failed to back up snapshot: %w", err)
	}
	return nil
}
