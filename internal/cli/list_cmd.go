// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jeranaias/scratchpad/internal/model"
)

// listedNote is the JSON form of a saved note.
type listedNote struct {
	ID    model.NoteID `json:"id"`
	Name  string       `json:"name"`
	Title string       `json:"title"`
	Open  bool         `json:"open"`
	Bytes int          `json:"bytes"`
}

func newListCmd(a *app) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved notes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd.OutOrStdout(), cmd.ErrOrStderr(), jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	return cmd
}

func (a *app) runList(out, errOut io.Writer, jsonOut bool) error {
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

	listed := make([]listedNote, 0, notes.Len())
	for _, n := range notes.Notes() {
		listed = append(listed, listedNote{
			ID:    n.ID,
			Name:  n.Name,
			Title: n.Title(),
			Open:  n.Open,
			Bytes: len(n.Content),
		})
	}

	if jsonOut {
		return NewJSONResponse("list", listed).Write(out)
	}

	if len(listed) == 0 {
		fmt.Fprintln(out, DimStyle.Render("No saved notes. Run scratchpad to start writing."))
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(DimStyle).
		Headers("ID", "TITLE", "STATE", "SIZE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.Padding(0, 1)
			}
			return ValueStyle.Padding(0, 1)
		})
	for _, n := range listed {
		state := "open"
		if !n.Open {
			state = "closed"
		}
		t.Row(strconv.FormatUint(uint64(n.ID), 10), n.Title, state, strconv.Itoa(n.Bytes)+" B")
	}

	fmt.Fprintln(out, t.String())
	fmt.Fprintln(out, DimStyle.Render(fmt.Sprintf("%d notes, %s backend", len(listed), cfg.Storage.Backend)))
	return nil
}
