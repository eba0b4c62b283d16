// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/scratchpad/internal/util"
)

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore keeps each key in its own <key>.json file.
type FileStore struct {
	// BaseDir is the directory holding the files.
	// Default: ~/.scratchpad/
	BaseDir string
}

// NewFileStore creates a file store rooted at baseDir, creating it if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{BaseDir: baseDir}, nil
}

// Get reads the file for key.
func (s *FileStore) Get(key string) ([]byte, error) {
	path, err := s.filePath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Put replaces the file for key. The write is atomic so a crash mid-save
// leaves the previous snapshot intact.
func (s *FileStore) Put(key string, data []byte) error {
	path, err := s.filePath(key)
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(path, data, 0600)
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

// filePath returns the file for key. Keys must be plain names.
func (s *FileStore) filePath(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.BaseDir, key+".json"), nil
}
