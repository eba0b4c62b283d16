// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for scratchpad.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - StorageConfig: Snapshot backend and data directory
//   - ExportConfig: Export root and post-export behavior
//   - UIConfig: Theme and auto-save interval
//   - LogConfig: Rotating log file settings
//
// # Configuration Precedence
//
//   - Environment variables (SCRATCHPAD_*)
//   - ~/.scratchpad/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if cfg == nil {
//	    return err // invalid configuration
//	}
//	// err != nil here only reports a config file that could not be read
package config
