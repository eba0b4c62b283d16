// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERRORS
// =============================================================================

// Kind classifies an export failure.
type Kind int

const (
	// KindNoHomeDirectory: the home directory could not be resolved.
	KindNoHomeDirectory Kind = iota + 1
	// KindDirectoryCreate: the export directory could not be created.
	KindDirectoryCreate
	// KindFileWrite: a single note could not be written.
	KindFileWrite
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNoHomeDirectory:
		return "NoHomeDirectory"
	case KindDirectoryCreate:
		return "DirectoryCreateError"
	case KindFileWrite:
		return "FileWriteError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is an export failure. Use errors.Is with the sentinel values below
// to check the kind, and errors.Unwrap to reach the underlying OS error.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Sentinels for errors.Is.
var (
	ErrNoHomeDirectory = &Error{Kind: KindNoHomeDirectory}
	ErrDirectoryCreate = &Error{Kind: KindDirectoryCreate}
	ErrFileWrite       = &Error{Kind: KindFileWrite}
)

// ErrInvalidName is wrapped in a FileWriteError for note names that contain
// a path separator.
var ErrInvalidName = errors.New("note name contains a path separator")

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "export failed: " + e.Kind.String()
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
