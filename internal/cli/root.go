// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/scratchpad/internal/config"
	"github.com/jeranaias/scratchpad/internal/export"
	"github.com/jeranaias/scratchpad/internal/logging"
	"github.com/jeranaias/scratchpad/internal/model"
	"github.com/jeranaias/scratchpad/internal/session"
	"github.com/jeranaias/scratchpad/internal/storage"
	"github.com/jeranaias/scratchpad/internal/ui/pad"
	"github.com/jeranaias/scratchpad/internal/ui/styles"
)

// =============================================================================
// APPLICATION STATE
// =============================================================================

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	store      string
	dataDir    string
	logLevel   string
}

// app carries what commands need between flag parsing and execution.
type app struct {
	flags globalFlags

	// interactive reports whether the TUI can take over the terminal.
	interactive func() bool

	// runProgram runs the TUI model to completion.
	runProgram func(tea.Model) (tea.Model, error)

	// homeDir resolves the export root's parent.
	homeDir func() (string, error)
}

func newApp() *app {
	return &app{
		interactive: IsInteractive,
		runProgram: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen()).Run()
		},
		homeDir: os.UserHomeDir,
	}
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCmd builds the scratchpad command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "scratchpad",
		Short: "A terminal scratchpad for quick notes",
		Long: `Scratchpad keeps a set of quick notes side by side in your terminal.

Notes are saved automatically and restored on the next start. Export
writes every note to its own file under ~/scratchpad/exports.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureColors()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.configPath, "config", "", "config file (default ~/.scratchpad/config.toml)")
	flags.StringVar(&a.flags.store, "store", "", "storage backend: file or sqlite")
	flags.StringVar(&a.flags.dataDir, "data-dir", "", "directory holding saved notes and logs")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newExportCmd(a),
		newListCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	jsonMode := false
	if cmd, _, findErr := root.Find(os.Args[1:]); findErr == nil {
		if f := cmd.Flags().Lookup("json"); f != nil && f.Value.String() == "true" {
			jsonMode = true
		}
	}
	if jsonMode {
		DisplayError(os.Stdout, err, true)
	} else {
		DisplayError(os.Stderr, err, false)
	}
	return GetExitCode(err)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// loadConfig reads the config file and applies flag overrides. A config
// file that cannot be decoded is reported on w and defaults are used.
func (a *app) loadConfig(w io.Writer) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.flags.configPath != "" {
		cfg, err = config.LoadFrom(a.flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if cfg == nil {
		return nil, err
	}
	if err != nil {
		fmt.Fprintln(w, WarningStyle.Render("warning: "+err.Error()+"; using defaults"))
	}

	if a.flags.store != "" {
		backend := strings.ToLower(a.flags.store)
		if backend != config.BackendFile && backend != config.BackendSQLite {
			return nil, &UsageError{Flag: "store", Value: a.flags.store, Reason: "must be file or sqlite"}
		}
		cfg.Storage.Backend = backend
	}
	if a.flags.dataDir != "" {
		cfg.Storage.DataDir = a.flags.dataDir
	}
	if a.flags.logLevel != "" {
		if _, err := logging.ParseLevel(a.flags.logLevel); err != nil {
			return nil, &UsageError{Flag: "log-level", Value: a.flags.logLevel, Reason: "must be debug, info, warn or error"}
		}
		cfg.Log.Level = a.flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger opens the rotating log file. Failure is reported on w and a
// no-op logger is returned.
func newLogger(cfg *config.Config, w io.Writer) *zap.Logger {
	opts, err := logging.OptionsFromConfig(cfg)
	if err != nil {
		fmt.Fprintln(w, WarningStyle.Render("warning: logging disabled: "+err.Error()))
		return zap.NewNop()
	}
	logger, err := logging.New(opts)
	if err != nil {
		fmt.Fprintln(w, WarningStyle.Render("warning: logging disabled: "+err.Error()))
	}
	return logger
}

// backupError reports an unreadable snapshot that could not be copied to
// storage.BackupKey. The next save overwrites it.
type backupError struct {
	snapshot *storage.SnapshotError
	err      error
}

func (e *backupError) Error() string {
	return e.snapshot.Error() + "; backup failed: " + e.err.Error()
}

func (e *backupError) Unwrap() []error {
	return []error{e.snapshot, e.err}
}

// loadNotes opens the configured store and reads the saved collection.
//
// A snapshot that cannot be decoded is copied to storage.BackupKey and an
// empty collection is returned along with the *storage.SnapshotError, or a
// *backupError when the copy fails.
func loadNotes(cfg *config.Config, logger *zap.Logger) (storage.Store, *model.Collection, error) {
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, nil, NewCommandError("storage", "open", cfg.Storage.Backend+" backend", err)
	}

	notes, err := storage.LoadCollection(store)
	if err == nil {
		logger.Info("notes loaded",
			zap.String("backend", cfg.Storage.Backend),
			zap.Int("notes", notes.Len()))
		return store, notes, nil
	}

	var snapErr *storage.SnapshotError
	if errors.As(err, &snapErr) {
		if backupErr := storage.PreserveCorrupt(store); backupErr != nil {
			logger.Error("could not back up unreadable snapshot", zap.Error(backupErr))
			return store, notes, &backupError{snapshot: snapErr, err: backupErr}
		}
		logger.Warn("unreadable snapshot backed up", zap.String("key", storage.BackupKey))
		return store, notes, err
	}

	store.Close()
	return nil, nil, err
}

// exporter builds the export manager for cfg.
func (a *app) exporter(cfg *config.Config, logger *zap.Logger) *export.Manager {
	return export.NewManager(&export.Options{
		Subdir:  cfg.Export.Subdir,
		HomeDir: a.homeDir,
		Logger:  logger,
	})
}

// =============================================================================
// TUI
// =============================================================================

// runTUI loads the saved notes, runs the pad and saves on exit.
func (a *app) runTUI(cmd *cobra.Command) error {
	if !a.interactive() {
		return &TTYRequiredError{Operation: "start the interactive scratchpad"}
	}

	errOut := cmd.ErrOrStderr()
	cfg, err := a.loadConfig(errOut)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, errOut)
	defer logger.Sync()

	store, notes, err := loadNotes(cfg, logger)
	var (
		backupErr *backupError
		snapErr   *storage.SnapshotError
	)
	switch {
	case errors.As(err, &backupErr):
		fmt.Fprintln(errOut, ErrorStyle.Render(
			"warning: saved notes could not be read and could not be backed up ("+backupErr.err.Error()+
				"); starting empty, and the next save will replace them"))
	case errors.As(err, &snapErr):
		fmt.Fprintln(errOut, WarningStyle.Render(
			"warning: saved notes could not be read and were backed up as "+storage.BackupKey+"; starting empty"))
	case err != nil:
		return err
	}
	defer store.Close()

	sess := session.NewManager(session.ConfigFromSeconds(cfg.UI.AutoSaveSecs))
	logger.Info("session started",
		zap.String("session_id", sess.SessionID()),
		zap.Int("notes", notes.Len()))

	m := pad.New(pad.Options{
		Notes:           notes,
		Store:           store,
		Exporter:        a.exporter(cfg, logger),
		OpenAfterExport: cfg.Export.OpenAfterExport,
		Session:         sess,
		Theme:           styles.NewTheme(cfg.UI.Theme),
		Logger:          logger,
	})

	final, err := a.runProgram(m)
	if err != nil {
		logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("scratchpad: %w", err)
	}

	// The pad saves on quit; a failure there has to reach the user now
	// that the alternate screen is gone.
	if fm, ok := final.(pad.Model); ok && fm.Err() != nil {
		fmt.Fprintln(errOut, WarningStyle.Render("last error: "+fm.Err().Error()))
	}
	logger.Info("session ended",
		zap.String("session_id", sess.SessionID()),
		zap.Duration("duration", sess.Duration()))
	return nil
}
