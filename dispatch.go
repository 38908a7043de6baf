// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// dispatch.go - Token-to-argument reconstruction against a command's
// classified parameter grammar.
//
// The walk over tokens[1:] is left to right, exactly once:
//
//   - "--name" consumes the following token as the raw value of the
//     matching named parameter; with no following token the parameter
//     is recorded as unset rather than failing
//   - "-name" sets the matching flag; "-?" aborts the parse and asks
//     for the command's help text instead of an invocation
//   - anything else fills the next positional slot in declaration order
//
// Exactly one of three things comes out of a dispatch: one handler
// invocation, one help emission, or one parse error. Never more.

package wizcli

import "strings"

// parseArgs assembles the argument set for rec from the full token
// sequence (tokens[0] is the command name or alias as typed). The
// second result reports that help was requested with -?; when it is
// true the parse stops immediately and no arguments are returned.
func parseArgs(rec *CommandRecord, tokens []string) (Args, bool, error) {
	var positionals []Param
	named := make(map[string]Param)
	flags := make(map[string]Param)
	for _, p := range rec.Params {
		switch p.Kind {
		case Positional:
			positionals = append(positionals, p)
		case Named:
			named["--"+p.Name] = p
		case Flag:
			flags[p.Name] = p
		}
	}

	args := make(Args, len(rec.Params))
	for name := range flags {
		args[name] = false
	}

	posIdx := 0
	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case strings.HasPrefix(tok, "--"):
			p, ok := named[tok]
			if !ok {
				return nil, false, &UnknownParameterError{Command: rec.Name, Token: tok}
			}
			if i+1 >= len(tokens) {
				// Value token missing at end of input: the parameter
				// stays explicitly unset.
				args[p.Name] = nil
			} else {
				args[p.Name] = decodeValue(p.Type, tokens[i+1])
				i++
			}

		case strings.HasPrefix(tok, "-"):
			if p, ok := flags[tok[1:]]; ok {
				args[p.Name] = true
				continue
			}
			if tok == "-?" {
				return nil, true, nil
			}
			return nil, false, &UnknownOptionError{Command: rec.Name, Token: tok}

		default:
			if posIdx >= len(positionals) {
				return nil, false, &TooManyArgumentsError{Command: rec.Name, Token: tok, Limit: len(positionals)}
			}
			args[positionals[posIdx].Name] = decodeValue(positionals[posIdx].Type, tok)
			posIdx++
		}
	}

	return args, false, nil
}
