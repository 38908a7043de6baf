// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// format.go - Usage and help text construction.
//
// Both strings are pure functions of the command record and are built
// exactly once, at registration time. Dispatch only ever prints the
// cached result.

package wizcli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// buildUsage renders the one-line usage string: the canonical name,
// positional placeholders, named parameter tokens, then flag tokens,
// each group in declaration order.
//
//	greet [name] --times -shout
func buildUsage(name string, params []Param) string {
	var b strings.Builder
	b.WriteString(name)
	for _, p := range params {
		if p.Kind == Positional {
			fmt.Fprintf(&b, " [%s]", p.Name)
		}
	}
	for _, p := range params {
		if p.Kind == Named {
			fmt.Fprintf(&b, " --%s", p.Name)
		}
	}
	for _, p := range params {
		if p.Kind == Flag {
			fmt.Fprintf(&b, " -%s", p.Name)
		}
	}
	return b.String()
}

// buildHelp renders the multi-line help text: documentation, one line
// per positional, named and flag parameter, the alias list, and the
// usage line last.
func buildHelp(name, doc string, params []Param, aliases []string) string {
	var b strings.Builder

	if doc != "" {
		fmt.Fprintf(&b, "Documentation: %s\n", doc)
	}

	var positionals, named, flags []Param
	for _, p := range params {
		switch p.Kind {
		case Positional:
			positionals = append(positionals, p)
		case Named:
			named = append(named, p)
		case Flag:
			flags = append(flags, p)
		}
	}

	if len(positionals) > 0 {
		b.WriteString("Argument(s):\n")
		for _, p := range positionals {
			fmt.Fprintf(&b, "    %s%s\n", p.Name, typeSuffix(p.Type))
		}
	}
	if len(named) > 0 {
		b.WriteString("Parameter(s):\n")
		for _, p := range named {
			fmt.Fprintf(&b, "    --%s%s = %v\n", p.Name, typeSuffix(p.Type), p.Default)
		}
	}
	if len(flags) > 0 {
		b.WriteString("Option(s):\n")
		for _, p := range flags {
			fmt.Fprintf(&b, "    -%s\n", p.Name)
		}
	}
	if len(aliases) > 0 {
		fmt.Fprintf(&b, "Alias: %s\n", strings.Join(aliases, ", "))
	}

	fmt.Fprintf(&b, "Usage: %s", buildUsage(name, params))
	return b.String()
}

// typeSuffix renders ": type" for display, or nothing for untyped
// parameters.
func typeSuffix(t TypeRef) string {
	if t == nil {
		return ""
	}
	n := t.String()
	if n == "" {
		return ""
	}
	return ": " + n
}

// =============================================================================
// HELP TABLES
// =============================================================================

// buildHelpTable renders the output of the help command over all
// canonical records, sorted by name and column-aligned with runewidth.
//
// The terse form is one "name  doc" row per command. The long form
// shows aliases and the full usage line:
//
//	Alias  cd -> change_directory [path]  Change the session working path.
func buildHelpTable(records []*CommandRecord, long bool) string {
	sorted := make([]*CommandRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	if !long {
		width := 0
		for _, rec := range sorted {
			if w := runewidth.StringWidth(rec.Name); w > width {
				width = w
			}
		}
		lines := make([]string, 0, len(sorted))
		for _, rec := range sorted {
			lines = append(lines, strings.TrimRight(fmt.Sprintf("%s %s",
				runewidth.FillRight(rec.Name, width), rec.Doc), " "))
		}
		return strings.Join(lines, "\n")
	}

	aliasWidth, usageWidth := 0, 0
	for _, rec := range sorted {
		if w := runewidth.StringWidth(strings.Join(rec.Aliases, ", ")); w > aliasWidth {
			aliasWidth = w
		}
		if w := runewidth.StringWidth(rec.Usage); w > usageWidth {
			usageWidth = w
		}
	}
	lines := make([]string, 0, len(sorted))
	for _, rec := range sorted {
		lines = append(lines, strings.TrimRight(fmt.Sprintf("Alias  %s -> %s %s",
			runewidth.FillRight(strings.Join(rec.Aliases, ", "), aliasWidth),
			runewidth.FillRight(rec.Usage, usageWidth),
			rec.Doc), " "))
	}
	return strings.Join(lines, "\n")
}
