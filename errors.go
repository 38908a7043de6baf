// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Structured error types for registration, resolution and
// argument parsing.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never print at the point of occurrence)
//   - The REPL boundary renders each error as exactly one diagnostic line
//   - Use structured error types so callers can match on failure kind

package wizcli

import (
	"errors"
	"fmt"
)

// ErrQuit is returned by a handler to end the session. The REPL treats
// it as a clean stop, not a diagnostic.
var ErrQuit = errors.New("quit")

// AliasConflictError reports a registration whose alias is already
// bound to a different canonical command. The registration that
// triggered it is rejected wholesale; prior state is untouched.
type AliasConflictError struct {
	Alias    string // the conflicting key
	Existing string // canonical name the key is already bound to
	Proposed string // canonical name of the rejected registration
}

func (e *AliasConflictError) Error() string {
	return fmt.Sprintf("alias %q already bound to %q, cannot register %q", e.Alias, e.Existing, e.Proposed)
}

// NotFoundError reports a token that resolved to no registered command.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s doesn't exist", e.Name)
}

// UnknownParameterError reports a --token with no matching named
// parameter on the command.
type UnknownParameterError struct {
	Command string
	Token   string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s: unknown parameter %s", e.Command, e.Token)
}

// UnknownOptionError reports a -token that matches no declared flag.
type UnknownOptionError struct {
	Command string
	Token   string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("%s: unknown option %s", e.Command, e.Token)
}

// TooManyArgumentsError reports a positional token arriving after every
// positional slot was already filled.
type TooManyArgumentsError struct {
	Command string
	Token   string
	Limit   int // number of positional slots the command declares
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("%s: too many arguments provided (at most %d, got %q)", e.Command, e.Limit, e.Token)
}
