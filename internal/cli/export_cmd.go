// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jeranaias/scratchpad/internal/export"
	"github.com/jeranaias/scratchpad/internal/model"
)

// exportFailure is the JSON form of a note that could not be written.
type exportFailure struct {
	ID    model.NoteID `json:"id"`
	Name  string       `json:"name"`
	Error string       `json:"error"`
}

// exportData is the JSON payload of the export command.
type exportData struct {
	Dir      string          `json:"dir"`
	Files    []string        `json:"files"`
	Failures []exportFailure `json:"failures"`
}

func newExportCmd(a *app) *cobra.Command {
	var (
		jsonOut bool
		open    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved notes to ~/scratchpad/exports",
		Long: `Export writes every saved note to its own file in a new directory
named export_<timestamp>. Notes with the same name get (1), (2), ...
suffixes. The command fails if any note could not be written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd.OutOrStdout(), cmd.ErrOrStderr(), jsonOut, open)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&open, "open", false, "open the export directory afterwards")
	return cmd
}

func (a *app) runExport(out, errOut io.Writer, jsonOut, open bool) error {
	cfg, err := a.loadConfig(errOut)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, errOut)
	defer logger.Sync()

	store, notes, err := loadNotes(cfg, logger)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}
	defer store.Close()

	all := notes.Notes()
	result, err := a.exporter(cfg, logger).Export(all)
	if err != nil {
		return err
	}

	if open || cfg.Export.OpenAfterExport {
		if openErr := export.OpenDir(result.Dir); openErr != nil {
			fmt.Fprintln(errOut, WarningStyle.Render("warning: could not open "+result.Dir+": "+openErr.Error()))
		}
	}

	var exportErr error
	if !result.OK() {
		exportErr = &ExportIncompleteError{
			Dir:    result.Dir,
			Failed: len(result.Failures),
			Total:  len(all),
			Err:    result.Err(),
		}
	}

	if jsonOut {
		data := exportData{
			Dir:      result.Dir,
			Files:    result.Files,
			Failures: make([]exportFailure, 0, len(result.Failures)),
		}
		for _, f := range result.Failures {
			data.Failures = append(data.Failures, exportFailure{ID: f.NoteID, Name: f.Name, Error: f.Err.Error()})
		}
		resp := NewJSONResponse("export", data)
		if exportErr != nil {
			resp.Success = false
			msg := exportErr.Error()
			resp.Error = &msg
		}
		if err := resp.Write(out); err != nil {
			return err
		}
		return exportErr
	}

	switch len(all) {
	case 0:
		fmt.Fprintf(out, "%s %s\n", DimStyle.Render("No notes to export; created"), result.Dir)
	default:
		fmt.Fprintf(out, "%s %d of %d notes to %s\n",
			SuccessStyle.Render("Exported"), len(result.Files), len(all), result.Dir)
	}
	for _, path := range result.Files {
		fmt.Fprintf(out, "  %s\n", path)
	}
	for _, f := range result.Failures {
		fmt.Fprintf(errOut, "  %s %s: %v\n", ErrorStyle.Render("[X]"), f.Name, f.Err)
	}
	return exportErr
}
