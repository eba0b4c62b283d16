// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/scratchpad/internal/model"
)

// fixedHome returns a HomeDir func that always resolves to dir.
func fixedHome(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

// stepClock returns a clock that advances by one millisecond per call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Millisecond)
		return t
	}
}

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	home := t.TempDir()
	mgr := NewManager(&Options{
		HomeDir: fixedHome(home),
		Now:     stepClock(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)),
	})
	return mgr, home
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// SUCCESS PATHS
// =============================================================================

func TestExport_EmptyCollection(t *testing.T) {
	mgr, home := newTestManager(t)

	res, err := mgr.Export(nil)
	require.NoError(t, err)
	require.True(t, res.OK())
	require.Empty(t, res.Files)

	info, err := os.Stat(res.Dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Empty(t, listDir(t, res.Dir))

	require.Equal(t, filepath.Join(home, "scratchpad", "exports"), filepath.Dir(res.Dir))
	require.True(t, strings.HasPrefix(filepath.Base(res.Dir), DirPrefix))
}

func TestExport_DuplicateNamesGetCounter(t *testing.T) {
	mgr, _ := newTestManager(t)

	notes := []model.Note{
		{ID: 1, Name: "Untitled", Open: true, Content: "first body"},
		{ID: 2, Name: "Untitled", Open: true, Content: "second body"},
	}

	res, err := mgr.Export(notes)
	require.NoError(t, err)
	require.True(t, res.OK())
	require.Equal(t, []string{"Untitled", "Untitled(1)"}, listDir(t, res.Dir))

	first, err := os.ReadFile(filepath.Join(res.Dir, "Untitled"))
	require.NoError(t, err)
	require.Equal(t, "first body", string(first))

	second, err := os.ReadFile(filepath.Join(res.Dir, "Untitled(1)"))
	require.NoError(t, err)
	require.Equal(t, "second body", string(second))
}

func TestExport_FilesInCollectionOrder(t *testing.T) {
	mgr, _ := newTestManager(t)

	notes := []model.Note{
		{ID: 1, Name: "b"},
		{ID: 2, Name: "a"},
		{ID: 3, Name: "b"},
		{ID: 4, Name: "b"},
	}

	res, err := mgr.Export(notes)
	require.NoError(t, err)

	var got []string
	for _, f := range res.Files {
		got = append(got, filepath.Base(f))
	}
	require.Equal(t, []string{"b", "a", "b(1)", "b(2)"}, got)
}

func TestExport_ContentVerbatim(t *testing.T) {
	mgr, _ := newTestManager(t)

	contents := []string{
		"",
		"no trailing newline",
		"trailing newline\n",
		"windows\r\nline endings\r\n",
		"unicode: 日本語 ✓ émoji 🎉",
	}

	notes := make([]model.Note, len(contents))
	for i, c := range contents {
		notes[i] = model.Note{ID: model.NoteID(i + 1), Name: "n", Content: c}
	}

	res, err := mgr.Export(notes)
	require.NoError(t, err)
	require.Len(t, res.Files, len(contents))

	for i, path := range res.Files {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, contents[i], string(data), "file %s", path)
	}
}

func TestExport_TwiceGivesIndependentDirectories(t *testing.T) {
	mgr, _ := newTestManager(t)
	notes := []model.Note{
		{ID: 1, Name: "Untitled", Content: "x"},
		{ID: 2, Name: "Untitled", Content: "y"},
	}

	first, err := mgr.Export(notes)
	require.NoError(t, err)
	second, err := mgr.Export(notes)
	require.NoError(t, err)

	require.NotEqual(t, first.Dir, second.Dir)
	require.Equal(t, []string{"Untitled", "Untitled(1)"}, listDir(t, first.Dir))
	require.Equal(t, []string{"Untitled", "Untitled(1)"}, listDir(t, second.Dir))
}

func TestExport_SameClockTickRetries(t *testing.T) {
	home := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	// First two readings are identical, then the clock moves.
	clock := func() time.Time {
		calls++
		if calls <= 2 {
			return base
		}
		return base.Add(time.Nanosecond)
	}

	mgr := NewManager(&Options{HomeDir: fixedHome(home), Now: clock})

	first, err := mgr.Export(nil)
	require.NoError(t, err)
	second, err := mgr.Export(nil)
	require.NoError(t, err)
	require.NotEqual(t, first.Dir, second.Dir)
}

func TestExport_FrozenClockFails(t *testing.T) {
	home := t.TempDir()
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mgr := NewManager(&Options{
		HomeDir: fixedHome(home),
		Now:     func() time.Time { return frozen },
	})

	_, err := mgr.Export(nil)
	require.NoError(t, err)

	_, err = mgr.Export([]model.Note{{ID: 1, Name: "a"}})
	require.ErrorIs(t, err, ErrDirectoryCreate)
}

func TestExport_CustomSubdir(t *testing.T) {
	home := t.TempDir()
	mgr := NewManager(&Options{
		Subdir:  filepath.Join("notes", "out"),
		HomeDir: fixedHome(home),
	})

	res, err := mgr.Export(nil)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "notes", "out"), filepath.Dir(res.Dir))
}

// =============================================================================
// FAILURE PATHS
// =============================================================================

func TestExport_NoHomeDirectory(t *testing.T) {
	mgr := NewManager(&Options{
		HomeDir: func() (string, error) { return "", errors.New("$HOME is not defined") },
	})

	res, err := mgr.Export([]model.Note{{ID: 1, Name: "a"}})
	require.Nil(t, res)
	require.ErrorIs(t, err, ErrNoHomeDirectory)
	require.NotErrorIs(t, err, ErrDirectoryCreate)
	require.Contains(t, err.Error(), "$HOME is not defined")
}

func TestExport_EmptyHomeDirectory(t *testing.T) {
	mgr := NewManager(&Options{
		HomeDir: func() (string, error) { return "", nil },
	})

	_, err := mgr.Export(nil)
	require.ErrorIs(t, err, ErrNoHomeDirectory)
}

func TestExport_RootBlockedByFile(t *testing.T) {
	home := t.TempDir()
	// "scratchpad" exists as a regular file, so the export root cannot be made.
	require.NoError(t, os.WriteFile(filepath.Join(home, "scratchpad"), []byte("in the way"), 0644))

	mgr := NewManager(&Options{HomeDir: fixedHome(home)})
	res, err := mgr.Export([]model.Note{{ID: 1, Name: "a", Content: "x"}})
	require.Nil(t, res)
	require.ErrorIs(t, err, ErrDirectoryCreate)

	var exportErr *Error
	require.True(t, errors.As(err, &exportErr))
	require.Equal(t, KindDirectoryCreate, exportErr.Kind)
	require.NotNil(t, errors.Unwrap(err))
}

func TestExport_LeafBlockedByFile(t *testing.T) {
	home := t.TempDir()
	at := time.Date(2026, 3, 4, 5, 6, 7, 8, time.UTC)
	root := filepath.Join(home, "scratchpad", "exports")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, DirName(at)), nil, 0644))

	mgr := NewManager(&Options{
		HomeDir: fixedHome(home),
		Now:     func() time.Time { return at },
	})
	_, err := mgr.Export(nil)
	require.ErrorIs(t, err, ErrDirectoryCreate)
}

func TestExport_SeparatorInNameIsPerNoteFailure(t *testing.T) {
	mgr, _ := newTestManager(t)

	notes := []model.Note{
		{ID: 1, Name: "good", Content: "ok"},
		{ID: 2, Name: "../escape", Content: "bad"},
		{ID: 3, Name: "also good", Content: "ok"},
	}

	res, err := mgr.Export(notes)
	require.NoError(t, err)
	require.False(t, res.OK())
	require.Len(t, res.Failures, 1)
	require.Equal(t, model.NoteID(2), res.Failures[0].NoteID)
	require.ErrorIs(t, res.Failures[0].Err, ErrFileWrite)
	require.ErrorIs(t, res.Failures[0].Err, ErrInvalidName)
	require.ErrorIs(t, res.Err(), ErrFileWrite)

	require.Equal(t, []string{"also good", "good"}, listDir(t, res.Dir))
	_, statErr := os.Stat(filepath.Join(filepath.Dir(res.Dir), "escape"))
	require.True(t, os.IsNotExist(statErr), "note escaped the export directory")
}

// =============================================================================
// FILENAME RESOLUTION
// =============================================================================

func TestResolveFilename(t *testing.T) {
	dir := t.TempDir()

	path, err := ResolveFilename(dir, "todo")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "todo"), path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo(1)"), nil, 0644))

	path, err = ResolveFilename(dir, "todo")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "todo(2)"), path)
}

func TestResolveFilename_DirectoryCountsAsExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "notes"), 0755))

	path, err := ResolveFilename(dir, "notes")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "notes(1)"), path)
}

func TestResolveFilename_EmptyName(t *testing.T) {
	dir := t.TempDir()

	// The empty name resolves to dir itself, which exists.
	path, err := ResolveFilename(dir, "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "(1)"), path)
}

func TestExport_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "keep")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0644))

	path, err := writeNote(dir, model.Note{ID: 1, Name: "keep", Content: "new"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "keep(1)"), path)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	require.Equal(t, "original", string(data))
}

// =============================================================================
// NAMING AND ERRORS
// =============================================================================

func TestDirName_IsRFC3339UTC(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2026, 10, 17, 11, 0, 0, 123456789, local)

	name := DirName(at)
	require.Equal(t, "export_2026-10-17T09:00:00.123456789Z", name)

	parsed, err := time.Parse(time.RFC3339Nano, strings.TrimPrefix(name, DirPrefix))
	require.NoError(t, err)
	require.True(t, parsed.Equal(at))
}

func TestError_IsAndKind(t *testing.T) {
	cause := errors.New("disk full")
	err := newError(KindDirectoryCreate, "/tmp/x", cause)

	require.ErrorIs(t, err, ErrDirectoryCreate)
	require.NotErrorIs(t, err, ErrFileWrite)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "DirectoryCreateError")
	require.Contains(t, err.Error(), "/tmp/x")
	require.Equal(t, "Kind(9)", Kind(9).String())
}

func TestResult_ErrNilWhenOK(t *testing.T) {
	res := &Result{}
	require.True(t, res.OK())
	require.NoError(t, res.Err())
}

func TestNewManager_Defaults(t *testing.T) {
	mgr := NewManager(nil)
	require.Equal(t, filepath.Join("scratchpad", "exports"), mgr.subdir)
	require.NotNil(t, mgr.homeDir)
	require.NotNil(t, mgr.now)
	require.NotNil(t, mgr.logger)
}
