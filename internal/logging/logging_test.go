// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/scratchpad/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scratchpad.log")

	logger, err := New(Options{Path: path, Level: "debug", MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info("export finished", zap.Int("files", 2))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	require.True(t, strings.Contains(line, `"msg":"export finished"`), line)
	require.True(t, strings.Contains(line, `"files":2`), line)
	require.True(t, strings.Contains(line, `"timestamp"`), line)
}

func TestNew_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pad.log")

	logger, err := New(Options{Path: path, Level: "error", MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Error("shown")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}

func TestNew_BadLevelReturnsNop(t *testing.T) {
	logger, err := New(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"})
	require.Error(t, err)
	require.NotNil(t, logger)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"info":  zapcore.InfoLevel,
		"DEBUG": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.DataDir = "/data/pad"
	cfg.Log.Level = "warn"

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/data/pad", "logs", "scratchpad.log"), opts.Path)
	require.Equal(t, "warn", opts.Level)
	require.Equal(t, cfg.Log.MaxSizeMB, opts.MaxSizeMB)
}

func TestOrNop(t *testing.T) {
	require.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	require.Same(t, l, OrNop(l))
}
