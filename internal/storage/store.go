// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"

	"github.com/jeranaias/scratchpad/internal/config"
	"github.com/jeranaias/scratchpad/internal/util"
)

// AppKey is the single key the collection snapshot is stored under.
const AppKey = "scratchpad"

// Store is a minimal key/value persistence backend.
type Store interface {
	// Get returns the bytes stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Put replaces the bytes stored under key.
	Put(key string, data []byte) error

	// Close releases the backend.
	Close() error
}

// Open creates the backend selected in cfg inside its data directory.
func Open(cfg config.StorageConfig) (Store, error) {
	dir, err := util.ExpandHome(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(dir)
	case config.BackendSQLite:
		return NewSQLiteStore(SQLitePath(dir))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrNotFound is returned when nothing is stored under a key.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &StoreError{Message: "key not found"}

// ErrInvalidKey is returned for keys that cannot name a file.
var ErrInvalidKey = &StoreError{Message: "invalid key"}

// StoreError represents a storage-related error.
// It implements the error interface and can be compared using errors.Is.
type StoreError struct {
	Message string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing store errors.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
