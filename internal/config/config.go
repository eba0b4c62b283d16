// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for scratchpad.
//
// Configuration file location:
//   - ~/.scratchpad/config.toml
//   - Built-in defaults when the file is absent
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/scratchpad/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete scratchpad configuration.
type Config struct {
	Version string `toml:"version"`

	// Session snapshot persistence
	Storage StorageConfig `toml:"storage"`

	// Export destination and behavior
	Export ExportConfig `toml:"export"`

	// Terminal UI settings
	UI UIConfig `toml:"ui"`

	// Log file settings
	Log LogConfig `toml:"log"`
}

// StorageConfig selects where the session snapshot lives.
type StorageConfig struct {
	// Backend is "file" (one JSON file per key) or "sqlite".
	Backend string `toml:"backend"`
	// DataDir holds the snapshot, the sqlite database and logs. "~" is expanded.
	DataDir string `toml:"data_dir"`
}

// ExportConfig controls note export.
type ExportConfig struct {
	// Subdir is the export root relative to the home directory.
	Subdir string `toml:"subdir"`
	// OpenAfterExport opens the export directory in the file browser.
	OpenAfterExport bool `toml:"open_after_export"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "dark", "light" or "auto" (detect from the terminal).
	Theme string `toml:"theme"`
	// AutoSaveSecs is the checkpoint interval while notes are dirty. 0 disables it.
	AutoSaveSecs int `toml:"autosave_secs"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"` // empty = <data_dir>/logs/scratchpad.log
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1",

		Storage: StorageConfig{
			Backend: BackendFile,
			DataDir: "~/.scratchpad",
		},

		Export: ExportConfig{
			Subdir:          filepath.Join("scratchpad", "exports"),
			OpenAfterExport: false,
		},

		UI: UIConfig{
			Theme:        "auto",
			AutoSaveSecs: 30,
		},

		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the scratchpad configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".scratchpad"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir returns the storage data directory with "~" expanded.
func (c *Config) DataDir() (string, error) {
	return util.ExpandHome(c.Storage.DataDir)
}

// LogFile returns the log file path, defaulting to <data_dir>/logs/scratchpad.log.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return util.ExpandHome(c.Log.File)
	}
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "scratchpad.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from ~/.scratchpad/config.toml.
// A missing file yields defaults. A file that cannot be decoded also yields
// defaults, together with the decode error for informational purposes.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, err
	}
	return LoadFrom(path)
}

// LoadFrom behaves like Load for an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	var loadErr error

	if _, statErr := os.Stat(path); statErr == nil {
		if err := LoadTOML(cfg, path); err != nil {
			loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			cfg = Default()
		}
	}

	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		if loadErr != nil {
			return nil, errors.Join(loadErr, fmt.Errorf("invalid config: %w", err))
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, loadErr
}

// LoadTOML decodes a TOML file over cfg. Keys absent from the file keep
// whatever value cfg already had.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// fillDefaults fills in empty strings and non-positive sizes with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Storage
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaults.Storage.DataDir
	}

	// Export
	if cfg.Export.Subdir == "" {
		cfg.Export.Subdir = defaults.Export.Subdir
	}

	// UI
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.MaxSizeMB <= 0 {
		cfg.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# scratchpad configuration file\n")
	buf.WriteString("# Generated by scratchpad - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config encode error: %v>", err)
	}
	return buf.String()
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		errs = append(errs, ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: file, sqlite", c.Storage.Backend),
		})
	}

	// Exports always live under the home directory.
	subdir := filepath.Clean(c.Export.Subdir)
	if filepath.IsAbs(subdir) || subdir == ".." || strings.HasPrefix(subdir, ".."+string(filepath.Separator)) {
		errs = append(errs, ValidationError{
			Field:   "export.subdir",
			Message: fmt.Sprintf("'%s' must be a relative path inside the home directory", c.Export.Subdir),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.UI.AutoSaveSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.autosave_secs",
			Message: "cannot be negative (use 0 to disable auto-save)",
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, ValidationError{Field: "log.max_backups", Message: "cannot be negative"})
	}
	if c.Log.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{Field: "log.max_age_days", Message: "cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - SCRATCHPAD_STORE: overrides storage.backend
//   - SCRATCHPAD_DATA_DIR: overrides storage.data_dir
//   - SCRATCHPAD_EXPORT_DIR: overrides export.subdir
//   - SCRATCHPAD_THEME: overrides ui.theme
//   - SCRATCHPAD_AUTOSAVE_SECS: overrides ui.autosave_secs
//   - SCRATCHPAD_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if store := os.Getenv("SCRATCHPAD_STORE"); store != "" {
		c.Storage.Backend = strings.ToLower(store)
	}

	if dir := os.Getenv("SCRATCHPAD_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}

	if dir := os.Getenv("SCRATCHPAD_EXPORT_DIR"); dir != "" {
		c.Export.Subdir = dir
	}

	if theme := os.Getenv("SCRATCHPAD_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if secs := os.Getenv("SCRATCHPAD_AUTOSAVE_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil {
			c.UI.AutoSaveSecs = n
		}
	}

	if level := os.Getenv("SCRATCHPAD_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}
