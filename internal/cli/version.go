// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", TitleStyle.Render("scratchpad"), Version)
			fmt.Fprintln(out, RenderLabel("commit", GitCommit))
			fmt.Fprintln(out, RenderLabel("built", BuildDate))
			fmt.Fprintln(out, RenderLabel("go", runtime.Version()))
			fmt.Fprintln(out, RenderLabel("platform", runtime.GOOS+"/"+runtime.GOARCH))
		},
	}
}
