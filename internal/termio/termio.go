// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package termio provides terminal detection and control helpers:
// TTY detection, screen clearing, and window titles.
//
// These keep behavior sane across environments:
//   - interactive terminals (colors, animation, prompts)
//   - piped output (no escapes, no animation)
//   - CI (respects NO_COLOR via termenv's profile detection)
package termio

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY returns true if f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ClearScreen erases the display and homes the cursor.
func ClearScreen(w io.Writer) {
	out := termenv.NewOutput(w)
	out.ClearScreen()
	out.MoveCursor(1, 1)
}

// SetWindowTitle sets the terminal window title. Callers should gate
// on IsTTY; the escape is written unconditionally.
func SetWindowTitle(w io.Writer, title string) {
	termenv.NewOutput(w).SetWindowTitle(title)
}
