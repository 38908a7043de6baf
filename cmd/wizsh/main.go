// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// wizsh - A demonstration shell built on the wizcli engine.
//
// It loads an optional TOML configuration, registers a few example
// commands next to the builtins, and runs the interactive loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/wizcli"
	"github.com/jeranaias/wizcli/clilog"
	"github.com/jeranaias/wizcli/config"
	"github.com/jeranaias/wizcli/textfx"
)

func main() {
	configPath := flag.String("config", "wizsh.toml", "path to the shell configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := cfg.Options()
	if cfg.LogFile != "" {
		logger := clilog.New(cfg.LogFile)
		defer logger.Close()
		opts = append(opts, wizcli.WithLogger(logger))
	}

	cli := wizcli.New(opts...)
	for _, name := range cfg.DisabledBuiltins {
		cli.SetBuiltin(name, false)
	}

	if err := register(cli); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cli.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// register adds the demonstration commands.
func register(cli *wizcli.CLI) error {
	commands := []wizcli.Command{
		{
			Name:    "greet",
			Doc:     "Print a greeting.",
			Aliases: []string{"hi"},
			Params: []wizcli.Decl{
				{Name: "name"},
				{Name: "times", Type: wizcli.Int, Default: 1},
				{Name: "shout", Default: true},
			},
			Handler: handleGreet,
		},
		{
			Name: "rainbow",
			Doc:  "Print text with a color gradient.",
			Params: []wizcli.Decl{
				{Name: "text"},
				{Name: "from", Default: "FF0000"},
				{Name: "to", Default: "0000FF"},
			},
			Handler: handleRainbow,
		},
		{
			Name: "progress",
			Doc:  "Render a progress bar.",
			Params: []wizcli.Decl{
				{Name: "value", Type: wizcli.Float},
				{Name: "total", Type: wizcli.Float},
				{Name: "width", Type: wizcli.Int, Default: 20},
			},
			Handler: handleProgress,
		},
	}
	for _, cmd := range commands {
		if err := cli.Command(cmd); err != nil {
			return err
		}
	}
	return nil
}

func handleGreet(ctx *wizcli.Context, args wizcli.Args) error {
	greeting := fmt.Sprintf("Hello, %s!", args.StringOr("name", "stranger"))
	if args.Bool("shout") {
		greeting = strings.ToUpper(greeting)
	}
	for i := 0; i < args.IntOr("times", 1); i++ {
		ctx.Echo(greeting)
	}
	return nil
}

func handleRainbow(ctx *wizcli.Context, args wizcli.Args) error {
	from, err := textfx.Hex(args.StringOr("from", "FF0000"))
	if err != nil {
		return err
	}
	to, err := textfx.Hex(args.StringOr("to", "0000FF"))
	if err != nil {
		return err
	}
	ctx.Printf("%s\n", textfx.Gradient(args.String("text"), from, to, ""))
	return nil
}

func handleProgress(ctx *wizcli.Context, args wizcli.Args) error {
	total := args.Float("total")
	if total <= 0 {
		return fmt.Errorf("total must be positive")
	}
	ctx.Printf("[%s]\n", textfx.Bar(args.Float("value"), total, args.IntOr("width", 20), '█'))
	return nil
}
