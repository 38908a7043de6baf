// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// types.go - Type references for argument decoding.
//
// A TypeRef is one of three tagged variants: Untyped (pass the raw
// token through), a concrete type (string, int, float, bool, duration),
// or OneOf (try candidates in declared order until one succeeds).
// Decoding is total: when every candidate fails the raw string is
// passed through unchanged, so a decode never aborts a dispatch.

package wizcli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TypeRef describes how a raw token is converted into a typed value
// and how the type is displayed in help text. The variant set is
// closed: Untyped, the concrete refs below, and OneOf.
type TypeRef interface {
	// String returns the display name used in usage/help text.
	String() string

	// decode attempts the conversion. Failure is reported so OneOf can
	// try the next candidate; callers outside a union go through
	// decodeValue, which falls back to the raw string.
	decode(raw string) (any, error)
}

// decodeValue converts raw through t. A nil or failing TypeRef yields
// the raw string itself.
func decodeValue(t TypeRef, raw string) any {
	if t == nil {
		return raw
	}
	v, err := t.decode(raw)
	if err != nil {
		return raw
	}
	return v
}

// =============================================================================
// UNTYPED
// =============================================================================

type untypedRef struct{}

// Untyped passes the raw token through unchanged.
var Untyped TypeRef = untypedRef{}

func (untypedRef) String() string { return "" }

func (untypedRef) decode(raw string) (any, error) { return raw, nil }

// =============================================================================
// CONCRETE TYPES
// =============================================================================

type concreteRef struct {
	name  string
	parse func(string) (any, error)
}

func (r concreteRef) String() string { return r.name }

func (r concreteRef) decode(raw string) (any, error) { return r.parse(raw) }

// Concrete type references usable in a Decl manifest.
var (
	// String accepts any token as-is.
	String TypeRef = concreteRef{"string", func(s string) (any, error) { return s, nil }}

	// Int decodes a base-10 integer.
	Int TypeRef = concreteRef{"int", func(s string) (any, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}}

	// Float decodes a 64-bit float.
	Float TypeRef = concreteRef{"float", func(s string) (any, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	}}

	// Bool accepts true/false, yes/no, y/n, 1/0, on/off (case-insensitive).
	Bool TypeRef = concreteRef{"bool", func(s string) (any, error) {
		v, err := ParseBoolString(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}}

	// Duration decodes a Go duration string such as "1h30m".
	Duration TypeRef = concreteRef{"duration", func(s string) (any, error) {
		v, err := time.ParseDuration(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}}
)

// ParseBoolString parses a boolean from various string representations.
// Accepts: true/false, yes/no, y/n, 1/0, on/off (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}

// =============================================================================
// UNIONS
// =============================================================================

type oneOfRef struct {
	members []TypeRef
}

// OneOf returns a TypeRef that tries each member in declared order and
// keeps the first successful conversion.
func OneOf(members ...TypeRef) TypeRef {
	return oneOfRef{members: members}
}

func (r oneOfRef) String() string {
	names := make([]string, 0, len(r.members))
	for _, m := range r.members {
		if n := m.String(); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

func (r oneOfRef) decode(raw string) (any, error) {
	for _, m := range r.members {
		if v, err := m.decode(raw); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no member type matched %q", raw)
}
