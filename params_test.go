// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package wizcli

import "testing"

func TestClassify(t *testing.T) {
	decls := []Decl{
		{Name: "a"},
		{Name: "b", Default: true},
		{Name: "c", Default: "x"},
	}

	params := classify(decls)
	if len(params) != 3 {
		t.Fatalf("classify() returned %d params, want 3", len(params))
	}

	if params[0].Kind != Positional || params[0].Name != "a" {
		t.Errorf("params[0] = %v %q, want positional a", params[0].Kind, params[0].Name)
	}
	if params[1].Kind != Flag || params[1].Name != "b" {
		t.Errorf("params[1] = %v %q, want flag b", params[1].Kind, params[1].Name)
	}
	if params[2].Kind != Named || params[2].Name != "c" {
		t.Errorf("params[2] = %v %q, want named c", params[2].Kind, params[2].Name)
	}
	if params[2].Default != "x" {
		t.Errorf("params[2].Default = %v, want \"x\"", params[2].Default)
	}
}

func TestClassify_TrueDefaultIsAlwaysFlag(t *testing.T) {
	// A default of true wins over any declared type; the rule is
	// static, not inferred.
	params := classify([]Decl{{Name: "verbose", Type: Int, Default: true}})
	if params[0].Kind != Flag {
		t.Errorf("Kind = %v, want flag", params[0].Kind)
	}
}

func TestClassify_OrderPreserved(t *testing.T) {
	decls := []Decl{
		{Name: "first"},
		{Name: "second"},
		{Name: "opt", Default: 3},
		{Name: "third"},
	}

	params := classify(decls)
	want := []string{"first", "second", "opt", "third"}
	for i, p := range params {
		if p.Name != want[i] {
			t.Errorf("params[%d].Name = %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestParamKindString(t *testing.T) {
	tests := []struct {
		kind ParamKind
		want string
	}{
		{Positional, "positional"},
		{Flag, "flag"},
		{Named, "named"},
		{ParamKind(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}
