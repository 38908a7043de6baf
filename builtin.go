// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// builtin.go - The predefined commands every session starts with.

package wizcli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// builtinCommands returns the registration set for a fresh registry.
// Each one can be disabled individually with SetBuiltin before the
// session accepts input.
func builtinCommands() []Command {
	clearAlias := "clear"
	if runtime.GOOS == "windows" {
		clearAlias = "cls"
	}
	return []Command{
		{
			Name:    "help",
			Doc:     "Displays info about terminal commands.",
			Aliases: []string{"?"},
			Params:  []Decl{{Name: "long", Default: true}},
			Handler: handleHelp,
		},
		{
			Name:    "clear-screen",
			Doc:     "Reset the display of the terminal.",
			Aliases: []string{clearAlias},
			Handler: handleClearScreen,
		},
		{
			Name:    "quit",
			Doc:     "Close the terminal.",
			Aliases: []string{"exit"},
			Handler: handleQuit,
		},
		{
			Name:    "change-directory",
			Doc:     "Change the working path of the session.",
			Aliases: []string{"cd"},
			Params:  []Decl{{Name: "path"}},
			Handler: handleChangeDirectory,
		},
	}
}

// handleHelp prints the command table: terse "name doc" rows by
// default, the compact alias -> usage form with -long.
func handleHelp(ctx *Context, args Args) error {
	ctx.Echo(buildHelpTable(ctx.Registry().Records(), args.Bool("long")))
	return nil
}

func handleClearScreen(ctx *Context, _ Args) error {
	ctx.ClearScreen()
	return nil
}

func handleQuit(_ *Context, _ Args) error {
	return ErrQuit
}

// handleChangeDirectory moves the session working path. The positional
// is optional; when absent the session returns to its home path.
func handleChangeDirectory(ctx *Context, args Args) error {
	target := args.StringOr("path", ctx.Home())
	if !filepath.IsAbs(target) {
		target = filepath.Join(ctx.Path(), target)
	}
	target = filepath.Clean(target)

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("the path is invalid: %s", args.StringOr("path", ctx.Home()))
	}
	ctx.SetPath(target)
	return nil
}
