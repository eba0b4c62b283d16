// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the scratchpad command line.
//
// Running scratchpad with no arguments starts the interactive pad. The
// subcommands work on the saved notes without a terminal, which makes them
// usable from scripts.
//
// # Commands
//
//   - (none): interactive pad, requires a terminal
//   - export: write every saved note to ~/scratchpad/exports/export_<timestamp>
//   - list: show saved notes
//   - config: show the effective configuration (path, init)
//   - version: build information
//
// # Usage
//
//	func main() {
//	    os.Exit(cli.Execute())
//	}
//
// Commands return errors instead of exiting; Execute prints them and maps
// them to exit codes (see GetExitCode). export and list accept --json.
package cli
