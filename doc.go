// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package wizcli turns a set of registered command handlers into an
// interactive command-line shell.
//
// Each command declares a parameter manifest. From the manifest the
// engine derives a grammar (required positionals, boolean flags, named
// parameters with defaults), builds usage and help text once at
// registration time, and later reconstructs arguments from free-form
// input lines: quote-aware tokenizing, alias resolution, unknown-option
// and excess-argument detection, and per-parameter type decoding.
//
// # Key Types
//
//   - CLI: one interactive shell session owning its own Registry
//   - Registry: canonical command records plus alias redirects
//   - Command: a registration request (name, doc, aliases, manifest, handler)
//   - Decl / Param: declared parameter manifest and its classified form
//   - TypeRef: untyped, concrete, or one-of type references for decoding
//   - Args: the keyword-style argument set handed to handlers
//
// # Built-in Commands
//
//   - help: terse or compact command table (alias "?")
//   - clear-screen: reset the terminal display
//   - quit: end the session (alias "exit")
//   - change-directory: move the session working path (alias "cd")
//
// # Usage
//
// Build a shell, register a command, run the loop:
//
//	cli := wizcli.New(wizcli.WithUser("demo"))
//	cli.Command(wizcli.Command{
//	    Name: "greet",
//	    Doc:  "Print a greeting.",
//	    Params: []wizcli.Decl{
//	        {Name: "name"},
//	        {Name: "times", Type: wizcli.Int, Default: 1},
//	        {Name: "shout", Default: true},
//	    },
//	    Handler: func(ctx *wizcli.Context, args wizcli.Args) error {
//	        ctx.Printf("hello %s\n", args.String("name"))
//	        return nil
//	    },
//	})
//	cli.Run(context.Background())
package wizcli
