package nodekind_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kindgen/nodekind"
)

var entries = []nodekind.Entry{
	{Literal: "document", Flag: "document", Named: true},
	{Literal: "true", Flag: "true", Named: true},
	{Literal: "true", Flag: "true_token", Named: false},
	{Literal: `"`, Flag: "double_quote_token", Named: false},
	{Literal: "pair", Flag: "pair", Named: true},
}

func TestParseFeatures(t *testing.T) {
	fs := nodekind.ParseFeatures(" pair,true_token\tdocument,, ")
	if diff := cmp.Diff([]string{"document", "pair", "true_token"}, fs.Sorted()); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
	if fs.String() != "document,pair,true_token" {
		t.Fatalf("String() = %q", fs.String())
	}
	if len(nodekind.ParseFeatures("")) != 0 {
		t.Fatalf("empty string must parse to an empty set")
	}
}

func TestTableGating(t *testing.T) {
	tab := nodekind.NewTable("NodeType", "document,true_token", "node_full", entries)

	wantEnabled := map[int]bool{1: true, 2: false, 3: true, 4: false, 5: false}
	for k, want := range wantEnabled {
		if got := tab.Enabled(k); got != want {
			t.Fatalf("Enabled(%d) = %v, want %v", k, got, want)
		}
	}
	if diff := cmp.Diff([]int{1, 3}, tab.EnabledKinds()); diff != "" {
		t.Fatalf("EnabledKinds mismatch (-want +got):\n%s", diff)
	}

	if got := tab.Format(2); got != "NodeType(2)" {
		t.Fatalf("disabled kind formats as %q", got)
	}
	if _, ok := tab.Literal(2); ok {
		t.Fatalf("disabled kind must have no literal")
	}
}

func TestTableCatchAll(t *testing.T) {
	tab := nodekind.NewTable("NodeType", "node_full", "node_full", entries)
	for k := 1; k <= tab.Len(); k++ {
		if !tab.Enabled(k) {
			t.Fatalf("kind %d disabled under catch-all", k)
		}
	}

	none := nodekind.NewTable("NodeType", "node_full", "", entries)
	if len(none.EnabledKinds()) != 0 {
		t.Fatalf("empty catch-all name must not enable anything")
	}
}

func TestTableLiterals(t *testing.T) {
	tab := nodekind.NewTable("NodeType", "node_full", "node_full", entries)
	for k := 1; k <= tab.Len(); k++ {
		lit, ok := tab.Literal(k)
		if !ok {
			t.Fatalf("Literal(%d) failed under catch-all", k)
		}
		if tab.Format(k) != lit {
			t.Fatalf("Format(%d) = %q, want %q", k, tab.Format(k), lit)
		}
	}
	if tab.Format(2) != tab.Format(3) {
		t.Fatalf("named and unnamed true must share their literal")
	}
	if !tab.Named(2) || tab.Named(3) || tab.Named(4) {
		t.Fatalf("named bits wrong")
	}
	if got := tab.Format(4); got != `"` {
		t.Fatalf("Format(4) = %q", got)
	}
}

func TestTableUnknown(t *testing.T) {
	tab := nodekind.NewTable("NodeType", "node_full", "node_full", entries)
	err := tab.Unknown("not_a_real_node_type")
	if !errors.Is(err, nodekind.ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	var pe *nodekind.ParseError
	if !errors.As(err, &pe) || pe.Input != "not_a_real_node_type" || pe.Type != "NodeType" {
		t.Fatalf("err = %#v", err)
	}
	if err.Error() != `unknown NodeType: "not_a_real_node_type"` {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestTableOutOfRange(t *testing.T) {
	tab := nodekind.NewTable("NodeType", "node_full", "node_full", entries)
	for _, k := range []int{0, -1, tab.Len() + 1} {
		if tab.Enabled(k) || tab.Named(k) || tab.Flag(k) != "" {
			t.Fatalf("kind %d must be invalid", k)
		}
		if _, ok := tab.Literal(k); ok {
			t.Fatalf("Literal(%d) must fail", k)
		}
	}
	if got := tab.Format(0); got != "NodeType(0)" {
		t.Fatalf("Format(0) = %q", got)
	}
	if tab.Flag(3) != "true_token" {
		t.Fatalf("Flag(3) = %q", tab.Flag(3))
	}
}
