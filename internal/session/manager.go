// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks unsaved changes and schedules auto-save checkpoints.
package session

import (
	"strconv"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager tracks the editing session: its id, whether the collection has
// changes not yet persisted, and when the next checkpoint is due.
type Manager struct {
	mu sync.Mutex

	// Session tracking
	sessionID string
	startTime time.Time

	// Auto-save configuration
	autoSaveInterval time.Duration // 0 disables auto-save
	lastSave         time.Time
	isDirty          bool
	saveCount        int

	now func() time.Time
}

// Config holds configuration for the session manager.
type Config struct {
	// AutoSaveInterval is how long dirty changes may wait before a
	// checkpoint (default: 30 seconds). Zero disables auto-save.
	AutoSaveInterval time.Duration

	// Now is the clock. Default: time.Now
	Now func() time.Time
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		AutoSaveInterval: 30 * time.Second,
	}
}

// ConfigFromSeconds returns a Config with the interval given in seconds, as
// stored in the [ui] config section.
func ConfigFromSeconds(secs int) Config {
	cfg := DefaultConfig()
	cfg.AutoSaveInterval = time.Duration(secs) * time.Second
	if secs < 0 {
		cfg.AutoSaveInterval = 0
	}
	return cfg
}

// NewManager creates a new session manager.
func NewManager(cfg Config) *Manager {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	start := now()
	return &Manager{
		sessionID:        uuid.NewString(),
		startTime:        start,
		autoSaveInterval: cfg.AutoSaveInterval,
		lastSave:         start,
		now:              now,
	}
}

// =============================================================================
// SESSION STATE
// =============================================================================

// SessionID returns the current session ID.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// Duration returns how long the session has been active.
func (m *Manager) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now().Sub(m.startTime)
}

// =============================================================================
// DIRTY TRACKING
// =============================================================================

// MarkDirty indicates the collection has unsaved changes.
func (m *Manager) MarkDirty() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isDirty = true
}

// MarkClean indicates the collection has been saved.
func (m *Manager) MarkClean() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isDirty = false
	m.lastSave = m.now()
	m.saveCount++
}

// IsDirty returns whether the collection has unsaved changes.
func (m *Manager) IsDirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isDirty
}

// ShouldAutoSave returns true if a checkpoint is due.
func (m *Manager) ShouldAutoSave() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shouldAutoSaveLocked()
}

func (m *Manager) shouldAutoSaveLocked() bool {
	if m.autoSaveInterval <= 0 || !m.isDirty {
		return false
	}
	return m.now().Sub(m.lastSave) >= m.autoSaveInterval
}

// =============================================================================
// BUBBLE TEA INTEGRATION
// =============================================================================

// TickMsg is sent periodically to check session state.
type TickMsg struct {
	Time time.Time
}

// AutoSaveMsg indicates a checkpoint should be written now.
type AutoSaveMsg struct {
	SessionID string
}

// TickCmd returns a command that ticks once a second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// HandleTick processes a tick. It requests a checkpoint when one is due and
// always schedules the next tick.
func (m *Manager) HandleTick() tea.Cmd {
	m.mu.Lock()
	due := m.shouldAutoSaveLocked()
	id := m.sessionID
	m.mu.Unlock()

	if !due {
		return TickCmd()
	}
	return tea.Batch(
		func() tea.Msg { return AutoSaveMsg{SessionID: id} },
		TickCmd(),
	)
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status represents the current session status.
type Status struct {
	SessionID       string
	SinceSave       time.Duration
	NextSaveIn      time.Duration // zero when clean or disabled
	IsDirty         bool
	AutoSaveEnabled bool
	SaveCount       int
}

// GetStatus returns the current session status.
func (m *Manager) GetStatus() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	sinceSave := now.Sub(m.lastSave)

	var next time.Duration
	if m.isDirty && m.autoSaveInterval > 0 {
		next = m.autoSaveInterval - sinceSave
		if next < 0 {
			next = 0
		}
	}

	return Status{
		SessionID:       m.sessionID,
		SinceSave:       sinceSave,
		NextSaveIn:      next,
		IsDirty:         m.isDirty,
		AutoSaveEnabled: m.autoSaveInterval > 0,
		SaveCount:       m.saveCount,
	}
}

// FormatDuration renders d in whole seconds, for example "2m 5s".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		secs := int(d.Seconds())
		return strconv.Itoa(secs) + "s"
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return strconv.Itoa(mins) + "m"
	}
	return strconv.Itoa(mins) + "m " + strconv.Itoa(secs) + "s"
}
