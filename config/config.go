// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads shell configuration for wizcli hosts.
//
// Configuration is TOML with sensible defaults; a missing file is not
// an error, the defaults simply apply:
//
//	user = "demo"
//	prompt = "[%s]@[%s]$ "
//	animation = true
//	cool_ms = 100
//	color = "#00d7af"
//	log_file = "wizsh.log"
//	disabled_builtins = ["change-directory"]
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/wizcli"
	"github.com/jeranaias/wizcli/textfx"
)

// Config mirrors the TOML shell configuration file.
type Config struct {
	// User is the name shown in the prompt.
	User string `toml:"user"`

	// Prompt is the prompt format; it must contain two %s verbs for
	// the user name and the working path.
	Prompt string `toml:"prompt"`

	// Title is the terminal window title. Empty leaves it alone.
	Title string `toml:"title"`

	// Home is the initial working path. Empty means the OS home dir.
	Home string `toml:"home"`

	// Color is the output foreground as "RRGGBB" or "#RRGGBB". Empty
	// keeps the terminal default.
	Color string `toml:"color"`

	// Animation enables typewriter output.
	Animation bool `toml:"animation"`

	// CoolMS is the time one output line takes to appear, in
	// milliseconds. Only meaningful with Animation.
	CoolMS int `toml:"cool_ms"`

	// LogFile enables session logging to the given path.
	LogFile string `toml:"log_file"`

	// DisabledBuiltins switches off built-in commands by canonical
	// name before the session starts.
	DisabledBuiltins []string `toml:"disabled_builtins"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		User:   "wizcli",
		Prompt: wizcli.DefaultPrompt,
		CoolMS: 100,
	}
}

// Load reads path over the defaults. A missing file returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values without touching the filesystem.
func (c Config) Validate() error {
	if c.CoolMS < 0 {
		return fmt.Errorf("cool_ms must not be negative, got %d", c.CoolMS)
	}
	if c.Color != "" {
		if _, err := textfx.Hex(c.Color); err != nil {
			return err
		}
	}
	return nil
}

// Options translates the configuration into wizcli options. Logging is
// not included; the host owns the logger lifecycle.
func (c Config) Options() []wizcli.Option {
	opts := []wizcli.Option{
		wizcli.WithUser(c.User),
		wizcli.WithPrompt(c.Prompt),
	}
	if c.Home != "" {
		opts = append(opts, wizcli.WithHome(c.Home))
	}
	if c.Title != "" {
		opts = append(opts, wizcli.WithTitle(c.Title))
	}
	if c.Animation {
		opts = append(opts, wizcli.WithAnimation(time.Duration(c.CoolMS)*time.Millisecond))
	}
	if c.Color != "" {
		// Validate() vouched for the value already.
		if col, err := textfx.Hex(c.Color); err == nil {
			opts = append(opts, wizcli.WithColor(col))
		}
	}
	return opts
}
