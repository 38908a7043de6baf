// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package wizcli

import (
	"strings"
	"testing"
)

func TestBuildUsage(t *testing.T) {
	params := classify([]Decl{
		{Name: "src"},
		{Name: "dst"},
		{Name: "mode", Type: String, Default: "fast"},
		{Name: "force", Default: true},
	})

	got := buildUsage("copy", params)
	want := "copy [src] [dst] --mode -force"
	if got != want {
		t.Errorf("buildUsage = %q, want %q", got, want)
	}
}

func TestBuildUsage_NoParams(t *testing.T) {
	if got := buildUsage("quit", nil); got != "quit" {
		t.Errorf("buildUsage = %q, want %q", got, "quit")
	}
}

func TestBuildHelp_RoundTrip(t *testing.T) {
	// The registration-time help for doc "D", positional n, named
	// --k=1 must contain all four literals.
	params := classify([]Decl{
		{Name: "n"},
		{Name: "k", Type: Int, Default: 1},
	})
	help := buildHelp("cmd", "D", params, nil)

	for _, want := range []string{"D", "n", "--k", "1"} {
		if !strings.Contains(help, want) {
			t.Errorf("help text missing %q:\n%s", want, help)
		}
	}
}

func TestBuildHelp_Layout(t *testing.T) {
	params := classify([]Decl{
		{Name: "path"},
		{Name: "depth", Type: Int, Default: 2},
		{Name: "verbose", Default: true},
	})
	help := buildHelp("scan", "Scan a directory.", params, []string{"s", "sc"})

	wantLines := []string{
		"Documentation: Scan a directory.",
		"Argument(s):",
		"    path",
		"Parameter(s):",
		"    --depth: int = 2",
		"Option(s):",
		"    -verbose",
		"Alias: s, sc",
		"Usage: scan [path] --depth -verbose",
	}
	lines := strings.Split(help, "\n")
	if len(lines) != len(wantLines) {
		t.Fatalf("help has %d lines, want %d:\n%s", len(lines), len(wantLines), help)
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestBuildHelp_EmptyDocOmitted(t *testing.T) {
	help := buildHelp("x", "", nil, nil)
	if strings.Contains(help, "Documentation") {
		t.Errorf("empty doc should not render a documentation line:\n%s", help)
	}
	if !strings.HasSuffix(help, "Usage: x") {
		t.Errorf("usage line must come last:\n%s", help)
	}
}

func TestBuildHelpTable_Terse(t *testing.T) {
	records := []*CommandRecord{
		{Name: "longname", Doc: "second"},
		{Name: "ab", Doc: "first"},
	}

	got := buildHelpTable(records, false)
	want := "ab       first\nlongname second"
	if got != want {
		t.Errorf("terse table = %q, want %q", got, want)
	}
}

func TestBuildHelpTable_Long(t *testing.T) {
	records := []*CommandRecord{
		{Name: "b", Doc: "bee", Usage: "b [x]", Aliases: []string{"bb", "bee"}},
		{Name: "a", Doc: "ay", Usage: "a", Aliases: []string{"aa"}},
	}

	got := buildHelpTable(records, true)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("long table has %d lines, want 2:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "Alias  aa") || !strings.Contains(lines[0], "-> a") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "bb, bee") || !strings.Contains(lines[1], "b [x]") {
		t.Errorf("line 1 = %q", lines[1])
	}
	// Column alignment: the arrows line up.
	if strings.Index(lines[0], "->") != strings.Index(lines[1], "->") {
		t.Errorf("alias columns not aligned:\n%s", got)
	}
}
