// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestManager(interval time.Duration) (*Manager, *fakeClock) {
	clock := newFakeClock()
	return NewManager(Config{AutoSaveInterval: interval, Now: clock.Now}), clock
}

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AutoSaveInterval != 30*time.Second {
		t.Errorf("Default AutoSaveInterval = %v, want 30s", cfg.AutoSaveInterval)
	}
}

func TestConfigFromSeconds(t *testing.T) {
	tests := []struct {
		secs int
		want time.Duration
	}{
		{30, 30 * time.Second},
		{1, time.Second},
		{0, 0},
		{-5, 0},
	}
	for _, tc := range tests {
		if got := ConfigFromSeconds(tc.secs).AutoSaveInterval; got != tc.want {
			t.Errorf("ConfigFromSeconds(%d) = %v, want %v", tc.secs, got, tc.want)
		}
	}
}

// =============================================================================
// MANAGER CREATION TESTS
// =============================================================================

func TestNewManager(t *testing.T) {
	m := NewManager(DefaultConfig())
	if m == nil {
		t.Fatal("NewManager returned nil")
	}

	if _, err := uuid.Parse(m.SessionID()); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", m.SessionID(), err)
	}
	if m.SessionID() != m.SessionID() {
		t.Error("SessionID should be consistent")
	}
	if m.IsDirty() {
		t.Error("new session should be clean")
	}
}

func TestNewManager_DistinctIDs(t *testing.T) {
	a := NewManager(DefaultConfig())
	b := NewManager(DefaultConfig())
	if a.SessionID() == b.SessionID() {
		t.Error("two sessions share an id")
	}
}

func TestManager_Duration(t *testing.T) {
	m, clock := newTestManager(time.Second)
	clock.Advance(90 * time.Second)
	if got := m.Duration(); got != 90*time.Second {
		t.Errorf("Duration = %v, want 90s", got)
	}
}

// =============================================================================
// AUTO-SAVE TESTS
// =============================================================================

func TestManager_DirtyState(t *testing.T) {
	m, _ := newTestManager(time.Second)

	m.MarkDirty()
	if !m.IsDirty() {
		t.Error("should be dirty after MarkDirty")
	}
	m.MarkClean()
	if m.IsDirty() {
		t.Error("should be clean after MarkClean")
	}
}

func TestManager_ShouldAutoSave(t *testing.T) {
	m, clock := newTestManager(30 * time.Second)

	clock.Advance(time.Minute)
	if m.ShouldAutoSave() {
		t.Error("clean session should never auto-save")
	}

	m.MarkDirty()
	if !m.ShouldAutoSave() {
		t.Error("dirty session past the interval should auto-save")
	}

	m.MarkClean()
	m.MarkDirty()
	clock.Advance(29 * time.Second)
	if m.ShouldAutoSave() {
		t.Error("should wait for the full interval after a save")
	}
	clock.Advance(time.Second)
	if !m.ShouldAutoSave() {
		t.Error("should auto-save once the interval has elapsed")
	}
}

func TestManager_AutoSaveDisabled(t *testing.T) {
	m, clock := newTestManager(0)
	m.MarkDirty()
	clock.Advance(time.Hour)

	if m.ShouldAutoSave() {
		t.Error("disabled auto-save should never trigger")
	}
	status := m.GetStatus()
	if status.AutoSaveEnabled || status.NextSaveIn != 0 {
		t.Errorf("status with auto-save off: %+v", status)
	}

	m = NewManager(ConfigFromSeconds(-1))
	if m.GetStatus().AutoSaveEnabled {
		t.Error("negative interval should disable auto-save")
	}
}

// =============================================================================
// BUBBLE TEA TESTS
// =============================================================================

func TestManager_HandleTick_RequestsSave(t *testing.T) {
	m, clock := newTestManager(time.Second)
	m.MarkDirty()
	clock.Advance(2 * time.Second)

	cmd := m.HandleTick()
	if cmd == nil {
		t.Fatal("HandleTick returned nil")
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch with the save request and the next tick")
	}
	if len(batch) != 2 {
		t.Fatalf("batch has %d commands, want 2", len(batch))
	}

	msg, ok := batch[0]().(AutoSaveMsg)
	if !ok {
		t.Fatalf("first command should produce AutoSaveMsg")
	}
	if msg.SessionID != m.SessionID() {
		t.Errorf("AutoSaveMsg.SessionID = %q, want %q", msg.SessionID, m.SessionID())
	}
}

func TestManager_HandleTick_KeepsTicking(t *testing.T) {
	m, _ := newTestManager(time.Second)
	if cmd := m.HandleTick(); cmd == nil {
		t.Error("HandleTick should always schedule the next tick")
	}
}

// =============================================================================
// STATUS TESTS
// =============================================================================

func TestManager_GetStatus(t *testing.T) {
	m, clock := newTestManager(30 * time.Second)
	clock.Advance(10 * time.Second)
	m.MarkDirty()

	status := m.GetStatus()
	if status.SessionID != m.SessionID() {
		t.Errorf("Status.SessionID = %q", status.SessionID)
	}
	if !status.IsDirty || !status.AutoSaveEnabled {
		t.Errorf("unexpected status: %+v", status)
	}
	if status.NextSaveIn != 20*time.Second {
		t.Errorf("NextSaveIn = %v, want 20s", status.NextSaveIn)
	}

	m.MarkClean()
	status = m.GetStatus()
	if status.SaveCount != 1 || status.NextSaveIn != 0 || status.SinceSave != 0 {
		t.Errorf("status after save: %+v", status)
	}
}

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m 30s"},
		{5 * time.Minute, "5m"},
		{5*time.Minute + 30*time.Second, "5m 30s"},
	}

	for _, tc := range tests {
		got := FormatDuration(tc.input)
		if got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// =============================================================================
// CONCURRENCY TESTS
// =============================================================================

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = m.SessionID()
				_ = m.Duration()
				_ = m.IsDirty()
				_ = m.ShouldAutoSave()
				_ = m.GetStatus()
				m.MarkDirty()
				m.MarkClean()
			}
		}()
	}
	wg.Wait()
}
