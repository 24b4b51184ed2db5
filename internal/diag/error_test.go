package diag

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		SchemaMalformed: "SCH1002",
		NameCollision:   "NAM2001",
		OutputIO:        "EMT3004",
		ManifestMarkers: "MAN4002",
		ConfigInvalid:   "PRJ5002",
		UnknownCode:     "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Fatalf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}

func TestTitleFallsBackToUnknown(t *testing.T) {
	if got := Code(9999).Title(); got != "Unknown error" {
		t.Fatalf("Title() = %q", got)
	}
}

func TestErrorCategories(t *testing.T) {
	cases := []struct {
		err  *Error
		want error
		not  []error
	}{
		{Errorf(SchemaMalformed, "bad"), ErrSchema, []error{ErrIO, ErrNameCollision}},
		{Errorf(NameCollision, "dup"), ErrNameCollision, []error{ErrSchema}},
		{Wrap(ManifestIO, "kindgen.toml", fs.ErrPermission), ErrIO, []error{ErrEmit}},
		{Wrap(OutputIO, "out.go", fs.ErrPermission), ErrIO, []error{ErrEmit}},
		{Errorf(ConfigMissing, "none"), ErrConfig, []error{ErrIO}},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.want) {
			t.Fatalf("%v should match %v", tc.err, tc.want)
		}
		for _, n := range tc.not {
			if errors.Is(tc.err, n) {
				t.Fatalf("%v must NOT match %v", tc.err, n)
			}
		}
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	err := Wrap(ManifestIO, "kindgen.toml", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("wrapped cause lost: %v", err)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "kindgen.toml: MAN4001: ") {
		t.Fatalf("unexpected message %q", msg)
	}

	outer := fmt.Errorf("sync: %w", err)
	if got := CodeOf(outer); got != ManifestIO {
		t.Fatalf("CodeOf = %v, want %v", got, ManifestIO)
	}
	if got := CodeOf(errors.New("plain")); got != UnknownCode {
		t.Fatalf("CodeOf(plain) = %v", got)
	}
}

func TestAtDoesNotMutate(t *testing.T) {
	base := Errorf(NameCollision, "dup")
	moved := base.At("node-types.json")
	if base.Path != "" || moved.Path != "node-types.json" {
		t.Fatalf("At mutated receiver: base=%q moved=%q", base.Path, moved.Path)
	}
}
