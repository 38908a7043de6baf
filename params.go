// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// params.go - Parameter manifest and classification.
//
// Commands declare their parameters as an ordered manifest of Decl
// values. Classification turns each Decl into one of three parameter
// kinds, applied in declaration order:
//
//   - no default        -> Positional (required, filled by position)
//   - default true      -> Flag (boolean switch, absent means false)
//   - any other default -> Named (optional, supplied as --name value)
//
// A default of true always produces a Flag even when the declared type
// is not Bool; the rule is static, not inferred from the type.

package wizcli

// ParamKind tags the three classified parameter variants.
type ParamKind int

const (
	// Positional parameters are required and consumed in declaration order.
	Positional ParamKind = iota

	// Flag parameters are boolean switches, false unless present.
	Flag

	// Named parameters are optional and identified by a --name token.
	Named
)

func (k ParamKind) String() string {
	switch k {
	case Positional:
		return "positional"
	case Flag:
		return "flag"
	case Named:
		return "named"
	default:
		return "unknown"
	}
}

// Decl is one entry of a command's declared parameter manifest.
type Decl struct {
	// Name of the parameter, without any dash prefix.
	Name string

	// Type governs decoding of the raw token. Nil means untyped
	// pass-through.
	Type TypeRef

	// Default selects the parameter kind: nil for a required
	// positional, true for a flag, anything else for a named
	// parameter with that default value.
	Default any
}

// Param is a classified parameter specification.
type Param struct {
	Name    string
	Kind    ParamKind
	Type    TypeRef
	Default any // named parameters only
}

// classify applies the classification rule to a manifest, preserving
// declaration order. Positional order here is the order in which raw
// positional tokens are consumed at dispatch time.
func classify(decls []Decl) []Param {
	params := make([]Param, 0, len(decls))
	for _, d := range decls {
		switch {
		case d.Default == nil:
			params = append(params, Param{Name: d.Name, Kind: Positional, Type: d.Type})
		case d.Default == true:
			params = append(params, Param{Name: d.Name, Kind: Flag})
		default:
			params = append(params, Param{Name: d.Name, Kind: Named, Type: d.Type, Default: d.Default})
		}
	}
	return params
}
