// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// registry.go - Command registration, storage and name resolution.

package wizcli

import (
	"sort"
	"strings"
)

// Handler executes a dispatched command with the assembled argument
// set. Returning ErrQuit ends the session; any other error is rendered
// as a single diagnostic line by the REPL.
type Handler func(ctx *Context, args Args) error

// Command is a registration request. Name and Doc may be empty when a
// caller-side identifier and documentation make no sense; Aliases and
// Params may be nil.
type Command struct {
	// Name becomes the canonical name after normalization (lowercase,
	// spaces replaced by underscores).
	Name string

	// Doc is the one-line documentation shown by help.
	Doc string

	// Aliases are alternate tokens resolving to this command. Each must
	// be unused across the whole registry.
	Aliases []string

	// Params is the ordered parameter manifest, classified at
	// registration.
	Params []Decl

	// Handler runs on a successful parse.
	Handler Handler
}

// CommandRecord is the stored, resolved form of a registered command.
// Usage and Help are derived once at registration and never recomputed
// during interactive use.
type CommandRecord struct {
	Name    string
	Doc     string
	Aliases []string
	Params  []Param
	Handler Handler
	Usage   string
	Help    string
}

// entry is the tagged value of one registry key: either a canonical
// record or a single-step alias redirect, never both.
type entry struct {
	record  *CommandRecord
	aliasOf string
}

// Registry stores canonical command records and the alias index in one
// keyed map. It is owned by a CLI session and is not safe for
// concurrent use; the engine never accesses it from more than one
// goroutine (the REPL is strictly sequential).
type Registry struct {
	entries map[string]entry

	// dispatched flips on the first resolution and freezes the builtin
	// toggles from then on.
	dispatched bool
}

// NewRegistry creates a registry pre-populated with the built-in
// commands (help, clear-screen, quit, change-directory). Each builtin
// can be switched off with SetBuiltin before the session starts
// accepting input.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}
	for _, cmd := range builtinCommands() {
		// Builtin names cannot collide in an empty registry.
		_ = r.Register(cmd)
	}
	return r
}

// CanonicalName normalizes a command name: lowercase, spaces replaced
// by underscores.
func CanonicalName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// Register classifies the manifest, derives usage/help text, and
// inserts the record plus all alias redirects.
//
// Re-registering an existing canonical name overwrites its record and
// rebuilds the derived text. Registering under a key that is already an
// alias of another command, or an alias already bound elsewhere, fails
// with AliasConflictError and leaves the registry untouched.
func (r *Registry) Register(cmd Command) error {
	name := CanonicalName(cmd.Name)

	aliases := make([]string, 0, len(cmd.Aliases))
	for _, a := range cmd.Aliases {
		aliases = append(aliases, strings.ToLower(a))
	}

	// Validate every key before mutating anything, so a conflict leaves
	// the prior registration intact.
	if ent, ok := r.entries[name]; ok && ent.record == nil && ent.aliasOf != name {
		return &AliasConflictError{Alias: name, Existing: ent.aliasOf, Proposed: name}
	}
	for _, a := range aliases {
		ent, ok := r.entries[a]
		if !ok {
			continue
		}
		if ent.record != nil && ent.record.Name != name {
			return &AliasConflictError{Alias: a, Existing: ent.record.Name, Proposed: name}
		}
		if ent.record == nil && ent.aliasOf != name {
			return &AliasConflictError{Alias: a, Existing: ent.aliasOf, Proposed: name}
		}
	}

	params := classify(cmd.Params)
	rec := &CommandRecord{
		Name:    name,
		Doc:     cmd.Doc,
		Aliases: aliases,
		Params:  params,
		Handler: cmd.Handler,
		Usage:   buildUsage(name, params),
	}
	rec.Help = buildHelp(name, cmd.Doc, params, aliases)

	r.entries[name] = entry{record: rec}
	for _, a := range aliases {
		if a == name {
			continue
		}
		r.entries[a] = entry{aliasOf: name}
	}
	return nil
}

// Resolve lowercases the token, looks it up, and follows at most one
// alias indirection to the canonical record. The first resolution also
// marks the registry as dispatched.
func (r *Registry) Resolve(token string) (*CommandRecord, error) {
	r.dispatched = true

	ent, ok := r.entries[strings.ToLower(token)]
	if !ok {
		return nil, &NotFoundError{Name: token}
	}
	if ent.record == nil {
		ent, ok = r.entries[ent.aliasOf]
		if !ok || ent.record == nil {
			return nil, &NotFoundError{Name: token}
		}
	}
	return ent.record, nil
}

// Records returns every canonical record, sorted by name.
func (r *Registry) Records() []*CommandRecord {
	records := make([]*CommandRecord, 0, len(r.entries))
	for _, ent := range r.entries {
		if ent.record != nil {
			records = append(records, ent.record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records
}

// SetBuiltin enables or disables one of the predefined built-in
// commands. It only has an effect before the first resolution; once the
// session has dispatched, the call is a no-op.
func (r *Registry) SetBuiltin(name string, enabled bool) {
	if r.dispatched {
		return
	}
	name = CanonicalName(name)
	for _, cmd := range builtinCommands() {
		if CanonicalName(cmd.Name) != name {
			continue
		}
		if enabled {
			_ = r.Register(cmd)
			return
		}
		delete(r.entries, name)
		for _, a := range cmd.Aliases {
			delete(r.entries, strings.ToLower(a))
		}
		return
	}
}
