// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tokenize.go - Shell-style word splitting for raw input lines.

package wizcli

import (
	"strings"
	"unicode"
)

// Tokenize splits a raw input line into shell-style tokens: words are
// separated by whitespace, single- or double-quoted spans stay one
// token with the quotes stripped, and backslash escapes are honored.
// Inside single quotes every character is literal; inside double quotes
// a backslash escapes '"' and '\'; outside quotes a backslash escapes
// the next character. An empty or all-whitespace line yields no tokens.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	var inSingle, inDouble bool

	// Quoting can produce an empty token ("" is a real argument), so
	// track whether the current word saw any quotes.
	quoted := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true

		case ch == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true

		case ch == '\\' && inSingle:
			// Single quotes keep backslashes literal.
			current.WriteRune(ch)

		case ch == '\\' && inDouble && i+1 < len(runes):
			next := runes[i+1]
			if next == '"' || next == '\\' {
				current.WriteRune(next)
				i++
			} else {
				current.WriteRune(ch)
			}

		case ch == '\\' && !inDouble && i+1 < len(runes):
			current.WriteRune(runes[i+1])
			i++

		case unicode.IsSpace(ch) && !inSingle && !inDouble:
			if current.Len() > 0 || quoted {
				tokens = append(tokens, current.String())
				current.Reset()
				quoted = false
			}

		default:
			current.WriteRune(ch)
		}
	}

	if current.Len() > 0 || quoted {
		tokens = append(tokens, current.String())
	}

	return tokens
}
