// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - The keyword-style argument set handed to handlers.
//
// The dispatcher fills an Args value from the parsed tokens: decoded
// positional values, decoded named values, and flag booleans. Flags are
// always present (false when absent from the input). Positional and
// named parameters the user did not supply are simply missing from the
// set; the Or accessors are the handler-side default mechanism for that
// case. A named parameter whose value token was missing at end of input
// is present but nil.

package wizcli

import "fmt"

// Args maps parameter names to their decoded values.
type Args map[string]any

// Has reports whether the parameter was mentioned at all (including a
// named parameter left without a value).
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Value returns the raw decoded value, or nil when absent or unset.
func (a Args) Value(name string) any {
	return a[name]
}

// String returns the value rendered as a string, or "" when absent.
func (a Args) String(name string) string {
	v, ok := a[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// StringOr returns the value as a string, or fallback when absent or
// unset.
func (a Args) StringOr(name, fallback string) string {
	if v, ok := a[name]; !ok || v == nil {
		return fallback
	}
	return a.String(name)
}

// Int returns the value as an int, or 0 when absent or not an int.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// IntOr returns the value as an int, or fallback when absent or not an
// int.
func (a Args) IntOr(name string, fallback int) int {
	if v, ok := a[name].(int); ok {
		return v
	}
	return fallback
}

// Float returns the value as a float64, or 0 when absent or not a
// float.
func (a Args) Float(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

// Bool returns the value as a bool; flags decode to exactly this.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}
