// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals. The
// pad refuses to start otherwise.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// outputProfile picks the color profile for headless command output.
// NO_COLOR (https://no-color.org/) beats FORCE_COLOR, and both beat
// terminal detection.
func outputProfile() termenv.Profile {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return termenv.Ascii
	case os.Getenv("FORCE_COLOR") != "":
		// termenv reports Ascii whenever stdout is not a terminal.
		if p := termenv.ColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI256
	case !isTerminal(os.Stdout):
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
