// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a snapshot of the note collection to disk.
// Each export gets a fresh timestamped directory holding one file per note.
package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/scratchpad/internal/logging"
	"github.com/jeranaias/scratchpad/internal/model"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// DirPrefix starts every export directory name.
const DirPrefix = "export_"

// TimestampLayout is RFC3339 with a fixed nanosecond fraction, so names from
// the same second still differ and sort lexically.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// maxDirAttempts bounds retries when the clock has not advanced between two
// exports and the directory name is already taken.
const maxDirAttempts = 5

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures the export manager.
type Options struct {
	// Subdir is the export root relative to the home directory.
	// Default: scratchpad/exports
	Subdir string

	// HomeDir resolves the user's home directory. Default: os.UserHomeDir
	HomeDir func() (string, error)

	// Now returns the export timestamp. Default: time.Now
	Now func() time.Time

	// Logger receives export progress. Default: no-op
	Logger *zap.Logger
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		Subdir:  filepath.Join("scratchpad", "exports"),
		HomeDir: os.UserHomeDir,
		Now:     time.Now,
	}
}

// =============================================================================
// RESULT
// =============================================================================

// Failure records a note that could not be written.
type Failure struct {
	NoteID model.NoteID
	Name   string
	Err    error
}

// Result describes a completed export.
type Result struct {
	// Dir is the export directory that was created.
	Dir string

	// Files are the paths written, in collection order.
	Files []string

	// Failures are the notes that could not be written.
	Failures []Failure
}

// OK reports whether every note was written.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Err joins all per-note failures into one error, or returns nil.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// =============================================================================
// EXPORT MANAGER
// =============================================================================

// Manager exports note collections. It keeps no state between calls.
type Manager struct {
	subdir  string
	homeDir func() (string, error)
	now     func() time.Time
	logger  *zap.Logger
}

// NewManager creates an export manager. Nil options or zero fields fall back
// to DefaultOptions.
func NewManager(opts *Options) *Manager {
	defaults := DefaultOptions()
	if opts == nil {
		opts = defaults
	}

	m := &Manager{
		subdir:  opts.Subdir,
		homeDir: opts.HomeDir,
		now:     opts.Now,
		logger:  logging.OrNop(opts.Logger),
	}
	if m.subdir == "" {
		m.subdir = defaults.Subdir
	}
	if m.homeDir == nil {
		m.homeDir = defaults.HomeDir
	}
	if m.now == nil {
		m.now = defaults.Now
	}
	return m
}

// Export writes every note, in order, into a new directory
// <home>/<subdir>/export_<timestamp>. It blocks until all files are written.
//
// Errors returned directly mean nothing was written: ErrNoHomeDirectory or
// ErrDirectoryCreate. Notes that fail individually are reported in
// Result.Failures and do not stop the remaining notes.
func (m *Manager) Export(notes []model.Note) (*Result, error) {
	home, err := m.homeDir()
	if err == nil && home == "" {
		err = errors.New("home directory is empty")
	}
	if err != nil {
		m.logger.Warn("export skipped: no home directory", zap.Error(err))
		return nil, newError(KindNoHomeDirectory, "", err)
	}

	dir, err := m.createDir(filepath.Join(home, m.subdir))
	if err != nil {
		m.logger.Warn("export skipped: directory not created", zap.Error(err))
		return nil, err
	}

	result := &Result{Dir: dir, Files: make([]string, 0, len(notes))}
	for _, note := range notes {
		path, err := writeNote(dir, note)
		if err != nil {
			m.logger.Error("note export failed",
				zap.Uint64("note_id", uint64(note.ID)),
				zap.String("name", note.Name),
				zap.Error(err))
			result.Failures = append(result.Failures, Failure{
				NoteID: note.ID,
				Name:   note.Name,
				Err:    err,
			})
			continue
		}
		result.Files = append(result.Files, path)
	}

	m.logger.Info("export finished",
		zap.String("dir", dir),
		zap.Int("files", len(result.Files)),
		zap.Int("failures", len(result.Failures)))

	return result, nil
}

// createDir creates root recursively and then a fresh, uniquely named
// export directory inside it.
func (m *Manager) createDir(root string) (string, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", newError(KindDirectoryCreate, root, err)
	}

	var lastErr error
	for attempt := 0; attempt < maxDirAttempts; attempt++ {
		dir := filepath.Join(root, DirName(m.now()))
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", newError(KindDirectoryCreate, dir, err)
		}
		// A non-directory in the way is a hard failure; an existing export
		// directory only means the clock has not moved yet.
		info, statErr := os.Lstat(dir)
		if statErr != nil || !info.IsDir() {
			return "", newError(KindDirectoryCreate, dir, err)
		}
		lastErr = err
	}
	return "", newError(KindDirectoryCreate, root, lastErr)
}

// DirName returns the export directory name for time t.
func DirName(t time.Time) string {
	return DirPrefix + t.UTC().Format(TimestampLayout)
}

// =============================================================================
// FILE WRITING
// =============================================================================

// writeNote writes one note into dir under a collision-free name and returns
// the path written.
func writeNote(dir string, note model.Note) (string, error) {
	// Another writer could take the resolved name between the existence
	// check and the exclusive create; resolve again in that case.
	for attempt := 0; attempt < maxDirAttempts; attempt++ {
		path, err := ResolveFilename(dir, note.Name)
		if err != nil {
			return "", err
		}

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", newError(KindFileWrite, path, err)
		}

		if _, err := f.WriteString(note.Content); err != nil {
			f.Close()
			os.Remove(path)
			return "", newError(KindFileWrite, path, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", newError(KindFileWrite, path, err)
		}
		return path, nil
	}
	return "", newError(KindFileWrite, filepath.Join(dir, note.Name), fs.ErrExist)
}

// ResolveFilename returns the first path in dir that does not exist yet,
// trying name, then name(1), name(2), ... The filesystem is checked for
// every candidate. Names containing a path separator are rejected so a
// note can never write outside dir.
func ResolveFilename(dir, name string) (string, error) {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return "", newError(KindFileWrite, filepath.Join(dir, name), ErrInvalidName)
	}

	candidate := name
	for counter := 1; ; counter++ {
		path := filepath.Join(dir, candidate)
		_, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", newError(KindFileWrite, path, err)
		}
		candidate = fmt.Sprintf("%s(%d)", name, counter)
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// OpenDir opens a directory in the platform file browser.
func OpenDir(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// Empty quoted title so start treats path as the target
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
