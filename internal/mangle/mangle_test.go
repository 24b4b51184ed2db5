package mangle_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kindgen/internal/diag"
	"kindgen/internal/mangle"
)

type pair struct {
	Ident string
	Flag  string
}

func pairs(names []mangle.Name) []pair {
	out := make([]pair, len(names))
	for i, n := range names {
		out[i] = pair{n.Ident, n.Flag}
	}
	return out
}

func TestMangleCollisionOrder(t *testing.T) {
	names, err := mangle.Mangle([]mangle.Input{
		{Text: "foo", Named: true},
		{Text: "bar", Named: true},
		{Text: "foo", Named: true},
	}, mangle.Options{})
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	want := []pair{{"Foo", "foo"}, {"Bar", "bar"}, {"Foo2", "foo2"}}
	if diff := cmp.Diff(want, pairs(names)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if names[0].Occurrence != 1 || names[2].Occurrence != 2 {
		t.Fatalf("occurrences = %d, %d", names[0].Occurrence, names[2].Occurrence)
	}
}

func TestMangleNamedAndUnnamedDiffer(t *testing.T) {
	names, err := mangle.Mangle([]mangle.Input{
		{Text: "true", Named: true},
		{Text: "true", Named: false},
	}, mangle.Options{})
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	want := []pair{{"True", "true"}, {"TrueToken", "true_token"}}
	if diff := cmp.Diff(want, pairs(names)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if names[1].Ident != names[0].Ident+mangle.TokenMarker {
		t.Fatalf("identifiers must differ only by the token marker: %q vs %q", names[0].Ident, names[1].Ident)
	}
}

func TestMangleRepeatedPairs(t *testing.T) {
	names, err := mangle.Mangle([]mangle.Input{
		{Text: "if", Named: true},
		{Text: "if", Named: false},
		{Text: "if", Named: false},
		{Text: "if", Named: true},
	}, mangle.Options{})
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	want := []pair{
		{"If", "if"},
		{"IfToken", "if_token"},
		{"IfToken2", "if2_token"},
		{"If2", "if2"},
	}
	if diff := cmp.Diff(want, pairs(names)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestManglePunctuation(t *testing.T) {
	names, err := mangle.Mangle([]mangle.Input{
		{Text: "..=", Named: false},
		{Text: ".", Named: false},
		{Text: ".", Named: false},
		{Text: "macro_rules!", Named: false},
	}, mangle.Options{})
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	want := []pair{
		{"DotDotEqToken", "dot_dot_eq_token"},
		{"DotToken", "dot_token"},
		{"DotToken2", "dot2_token"},
		{"MacroRulesBangToken", "macro_rules_bang_token"},
	}
	if diff := cmp.Diff(want, pairs(names)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestMangleIdentClash(t *testing.T) {
	_, err := mangle.Mangle([]mangle.Input{
		{Text: "foo2", Named: true},
		{Text: "foo", Named: true},
		{Text: "foo", Named: true},
	}, mangle.Options{})
	if diag.CodeOf(err) != diag.IdentCollision {
		t.Fatalf("err = %v, want IdentCollision", err)
	}
	if !errors.Is(err, diag.ErrNameCollision) {
		t.Fatalf("%v must be a name collision", err)
	}
}

func TestMangleFlagClash(t *testing.T) {
	_, err := mangle.Mangle([]mangle.Input{
		{Text: "foo2_token", Named: true},
		{Text: "foo", Named: false},
		{Text: "foo", Named: false},
	}, mangle.Options{})
	if diag.CodeOf(err) != diag.NameCollision {
		t.Fatalf("err = %v, want NameCollision", err)
	}
}

func TestMangleTokenMarkerLiftedBeforeCounter(t *testing.T) {
	_, err := mangle.Mangle([]mangle.Input{
		{Text: "a", Named: false},
		{Text: "a", Named: false},
		{Text: "a2", Named: false},
	}, mangle.Options{})
	if diag.CodeOf(err) != diag.NameCollision {
		t.Fatalf("err = %v, want NameCollision", err)
	}
	if !strings.Contains(err.Error(), `"a2_token"`) {
		t.Fatalf("error does not name the shared flag: %v", err)
	}
}

func TestMangleSharesOccurrencesAcrossForms(t *testing.T) {
	names, err := mangle.Mangle([]mangle.Input{
		{Text: "foo_token", Named: true},
		{Text: "foo", Named: false},
	}, mangle.Options{})
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	want := []pair{{"FooToken", "foo_token"}, {"FooToken2", "foo2_token"}}
	if diff := cmp.Diff(want, pairs(names)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestMangleReservedFlag(t *testing.T) {
	_, err := mangle.Mangle([]mangle.Input{
		{Text: "node_full", Named: true},
	}, mangle.Options{Reserved: []string{"node_full", ""}})
	if diag.CodeOf(err) != diag.NameReservedFlag {
		t.Fatalf("err = %v, want NameReservedFlag", err)
	}
}

func TestMangleIsDeterministic(t *testing.T) {
	in := []mangle.Input{
		{Text: "{", Named: false},
		{Text: "block", Named: true},
		{Text: "Self", Named: true},
		{Text: "self", Named: true},
		{Text: "self", Named: false},
	}
	a, err := mangle.Mangle(in, mangle.Options{})
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	b, err := mangle.Mangle(in, mangle.Options{})
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("second run differs (-first +second):\n%s", diff)
	}
	want := []pair{
		{"LBraceToken", "l_brace_token"},
		{"Block", "block"},
		{"Self", "self"},
		{"Self2", "self2"},
		{"SelfToken", "self_token"},
	}
	if diff := cmp.Diff(want, pairs(a)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestFlagName(t *testing.T) {
	cases := []struct {
		ident string
		named bool
		want  string
	}{
		{"FunctionItem", true, "function_item"},
		{"Self2", true, "self2"},
		{"N2d", true, "n2d"},
		{"DotDotToken", false, "dot_dot_token"},
		{"DotToken2", false, "dot2_token"},
		{"U8Token", false, "u8_token"},
		{"MacroRulesBangToken", false, "macro_rules_bang_token"},
	}
	for _, tc := range cases {
		if got := mangle.FlagName(tc.ident, tc.named); got != tc.want {
			t.Fatalf("FlagName(%q, %v) = %q, want %q", tc.ident, tc.named, got, tc.want)
		}
	}
}

func TestSortedFlags(t *testing.T) {
	names, err := mangle.Mangle([]mangle.Input{
		{Text: "pair", Named: true},
		{Text: ":", Named: false},
		{Text: "array", Named: true},
	}, mangle.Options{})
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	flags, err := mangle.SortedFlags(names)
	if err != nil {
		t.Fatalf("SortedFlags: %v", err)
	}
	if diff := cmp.Diff([]string{"array", "colon_token", "pair"}, flags); diff != "" {
		t.Fatalf("flags mismatch (-want +got):\n%s", diff)
	}

	dup := []mangle.Name{{Flag: "a"}, {Flag: "b"}, {Flag: "a"}}
	if _, err := mangle.SortedFlags(dup); diag.CodeOf(err) != diag.NameCollision {
		t.Fatalf("err = %v, want NameCollision", err)
	}
}
