// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes shared by all scratchpad commands.
//
// Commands always return errors; Execute decides how to display them and
// which exit code to use.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/scratchpad/internal/config"
	"github.com/jeranaias/scratchpad/internal/export"
	"github.com/jeranaias/scratchpad/internal/storage"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitStorageError indicates the saved notes could not be read or written
	ExitStorageError = 4
	// ExitExportError indicates an export did not happen or was incomplete
	ExitExportError = 5
	// ExitTTYError indicates an interactive terminal was required
	ExitTTYError = 6
)

// =============================================================================
// ERROR TYPES FOR STRUCTURED ERROR HANDLING
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "export", "config")
	Action  string // Action being performed (e.g., "init", "load")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a CommandError.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// UsageError reports a bad flag value or argument.
type UsageError struct {
	Flag   string
	Value  string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: %s", e.Value, e.Flag, e.Reason)
}

// ExportIncompleteError reports an export that created its directory but
// could not write every note.
type ExportIncompleteError struct {
	Dir    string
	Failed int
	Total  int
	Err    error
}

func (e *ExportIncompleteError) Error() string {
	return fmt.Sprintf("%d of %d notes failed to export to %s", e.Failed, e.Total, e.Dir)
}

func (e *ExportIncompleteError) Unwrap() error {
	return e.Err
}

// TTYRequiredError is returned when an operation requires a TTY but none is available.
type TTYRequiredError struct {
	Operation string
}

func (e *TTYRequiredError) Error() string {
	if e.Operation != "" {
		return "not a terminal; cannot " + e.Operation + " (try 'scratchpad list' or 'scratchpad export')"
	}
	return "not a terminal; interactive mode not available"
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError writes err to w, as JSON when jsonMode is set.
func DisplayError(w io.Writer, err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		resp := NewJSONErrorResponse("", err)
		resp.Data = errorDetails(err)
		_ = resp.Write(w)
		return
	}

	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// errorDetails returns structured fields for the known error types.
func errorDetails(err error) map[string]interface{} {
	details := map[string]interface{}{
		"exit_code": GetExitCode(err),
	}

	var cmdErr *CommandError
	var usageErr *UsageError
	var incomplete *ExportIncompleteError

	switch {
	case errors.As(err, &incomplete):
		details["error_type"] = "export_incomplete"
		details["dir"] = incomplete.Dir
		details["failed"] = incomplete.Failed
		details["total"] = incomplete.Total
	case errors.As(err, &usageErr):
		details["error_type"] = "usage_error"
		details["flag"] = usageErr.Flag
		details["value"] = usageErr.Value
	case errors.As(err, &cmdErr):
		details["error_type"] = "command_error"
		details["command"] = cmdErr.Command
		details["action"] = cmdErr.Action
	default:
		details["error_type"] = "generic_error"
	}
	return details
}

// GetExitCode determines the appropriate exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var ttyErr *TTYRequiredError
	if errors.As(err, &ttyErr) {
		return ExitTTYError
	}

	var validateErrs config.ValidateErrors
	if errors.As(err, &validateErrs) {
		return ExitConfigError
	}

	var incomplete *ExportIncompleteError
	var exportErr *export.Error
	if errors.As(err, &incomplete) || errors.As(err, &exportErr) {
		return ExitExportError
	}

	var storeErr *storage.StoreError
	var snapshotErr *storage.SnapshotError
	if errors.As(err, &storeErr) || errors.As(err, &snapshotErr) {
		return ExitStorageError
	}

	return ExitGeneralError
}
