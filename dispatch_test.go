// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package wizcli

import (
	"errors"
	"testing"
)

// record builds a CommandRecord the way Register would, without going
// through a registry.
func record(t *testing.T, cmd Command) *CommandRecord {
	t.Helper()
	r := &Registry{entries: make(map[string]entry)}
	if err := r.Register(cmd); err != nil {
		t.Fatalf("Register: %v", err)
	}
	rec, err := r.Resolve(cmd.Name)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return rec
}

func TestParseArgs_Mixed(t *testing.T) {
	rec := record(t, Command{
		Name: "cmd",
		Params: []Decl{
			{Name: "x", Type: Int, Default: 0},
			{Name: "flag", Default: true},
			{Name: "p"},
		},
	})

	args, help, err := parseArgs(rec, []string{"cmd", "--x", "5", "-flag", "pos1"})
	if err != nil || help {
		t.Fatalf("parseArgs = help %v, err %v; want clean parse", help, err)
	}
	if got := args.Int("x"); got != 5 {
		t.Errorf("x = %v, want int 5", args.Value("x"))
	}
	if !args.Bool("flag") {
		t.Error("flag = false, want true")
	}
	if got := args.String("p"); got != "pos1" {
		t.Errorf("p = %q, want %q", got, "pos1")
	}
}

func TestParseArgs_FlagsDefaultFalse(t *testing.T) {
	rec := record(t, Command{
		Name:   "cmd",
		Params: []Decl{{Name: "a", Default: true}, {Name: "b", Default: true}},
	})

	args, _, err := parseArgs(rec, []string{"cmd", "-b"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if args.Bool("a") {
		t.Error("a should stay false when absent")
	}
	if !args.Bool("b") {
		t.Error("b should be true")
	}
}

func TestParseArgs_TooManyArguments(t *testing.T) {
	rec := record(t, Command{Name: "cmd", Params: []Decl{{Name: "only"}}})

	_, _, err := parseArgs(rec, []string{"cmd", "a", "b", "c"})
	var tooMany *TooManyArgumentsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("err = %v, want TooManyArgumentsError", err)
	}
	if tooMany.Limit != 1 || tooMany.Token != "b" {
		t.Errorf("error = %+v, want limit 1 tripped by %q", tooMany, "b")
	}
}

func TestParseArgs_UnknownParameter(t *testing.T) {
	rec := record(t, Command{Name: "cmd", Params: []Decl{{Name: "x", Default: 1}}})

	_, _, err := parseArgs(rec, []string{"cmd", "--y", "5"})
	var unknown *UnknownParameterError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownParameterError", err)
	}
	if unknown.Token != "--y" {
		t.Errorf("Token = %q, want --y", unknown.Token)
	}
}

func TestParseArgs_UnknownOption(t *testing.T) {
	rec := record(t, Command{Name: "cmd", Params: []Decl{{Name: "v", Default: true}}})

	_, _, err := parseArgs(rec, []string{"cmd", "-w"})
	var unknown *UnknownOptionError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownOptionError", err)
	}
}

func TestParseArgs_HelpRequest(t *testing.T) {
	rec := record(t, Command{Name: "cmd", Params: []Decl{{Name: "p"}}})

	args, help, err := parseArgs(rec, []string{"cmd", "-?"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !help {
		t.Error("-? should request help")
	}
	if args != nil {
		t.Error("help request should not produce arguments")
	}
}

func TestParseArgs_MissingNamedValueLeavesUnset(t *testing.T) {
	rec := record(t, Command{Name: "cmd", Params: []Decl{{Name: "k", Type: Int, Default: 1}}})

	args, _, err := parseArgs(rec, []string{"cmd", "--k"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !args.Has("k") {
		t.Fatal("k should be present (explicitly unset)")
	}
	if args.Value("k") != nil {
		t.Errorf("k = %v, want nil", args.Value("k"))
	}
	if got := args.IntOr("k", 7); got != 7 {
		t.Errorf("IntOr fallback = %d, want 7", got)
	}
}

func TestParseArgs_UnfilledPositionalAbsent(t *testing.T) {
	rec := record(t, Command{Name: "cmd", Params: []Decl{{Name: "a"}, {Name: "b"}}})

	args, _, err := parseArgs(rec, []string{"cmd", "only"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if args.String("a") != "only" {
		t.Errorf("a = %q, want %q", args.String("a"), "only")
	}
	if args.Has("b") {
		t.Error("b should be absent; handler defaults govern that case")
	}
	if got := args.StringOr("b", "fallback"); got != "fallback" {
		t.Errorf("StringOr = %q, want fallback", got)
	}
}

func TestParseArgs_DecodeFailurePassesRawThrough(t *testing.T) {
	rec := record(t, Command{Name: "cmd", Params: []Decl{{Name: "n", Type: Int}}})

	args, _, err := parseArgs(rec, []string{"cmd", "notanint"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if got := args.Value("n"); got != "notanint" {
		t.Errorf("n = %v, want the raw string", got)
	}
}
