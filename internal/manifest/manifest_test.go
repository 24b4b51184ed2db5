package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kindgen/internal/diag"
	"kindgen/internal/manifest"
)

func copyFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "kindgen.toml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRender(t *testing.T) {
	flags := []string{"array", "l_brace_token"}
	if got, want := manifest.Render(flags, ""), "array = []\nl_brace_token = []"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	if got, want := manifest.Render(flags[:1], "node"), `array = ["node"]`; got != want {
		t.Fatalf("Render with placeholder = %q, want %q", got, want)
	}
	if got := manifest.Render(nil, ""); got != "" {
		t.Fatalf("Render(nil) = %q", got)
	}
	if got, want := manifest.Render([]string{"a.b"}, ""), `"a.b" = []`; got != want {
		t.Fatalf("Render quoted key = %q, want %q", got, want)
	}
}

func TestRegion(t *testing.T) {
	content := "a = 1\n" + manifest.StartMarker + "\nx = []\n" + manifest.EndMarker + "\nb = 2\n"
	sp, err := manifest.Region(content)
	if err != nil {
		t.Fatalf("Region: %v", err)
	}
	if sp.Prefix != "a = 1\n"+manifest.StartMarker {
		t.Fatalf("prefix = %q", sp.Prefix)
	}
	if sp.Region != "\nx = []\n" {
		t.Fatalf("region = %q", sp.Region)
	}
	if sp.Suffix != manifest.EndMarker+"\nb = 2\n" {
		t.Fatalf("suffix = %q", sp.Suffix)
	}
	if sp.Prefix+sp.Region+sp.Suffix != content {
		t.Fatalf("split does not reassemble")
	}
}

func TestRegionMarkerErrors(t *testing.T) {
	cases := map[string]string{
		"none":      "[features]\n",
		"no end":    manifest.StartMarker + "\n",
		"no start":  manifest.EndMarker + "\n",
		"reversed":  manifest.EndMarker + "\n" + manifest.StartMarker + "\n",
		"same line": manifest.StartMarker + manifest.EndMarker + "\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := manifest.Region(content)
			if diag.CodeOf(err) != diag.ManifestMarkers {
				t.Fatalf("err = %v, want ManifestMarkers", err)
			}
		})
	}
}

func TestRegionIndentedMarkers(t *testing.T) {
	content := "  " + manifest.StartMarker + "\n\t" + manifest.EndMarker + "  \n"
	sp, err := manifest.Region(content)
	if err != nil {
		t.Fatalf("Region: %v", err)
	}
	if sp.Region != "\n" {
		t.Fatalf("region = %q", sp.Region)
	}
}

func TestSyncRewritesRegionOnly(t *testing.T) {
	path := copyFixture(t, "kindgen.toml")
	before := readFile(t, path)
	flags := []string{"array", "document", "l_brace_token"}

	res, err := manifest.Sync(flags, path, manifest.Options{})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !res.Changed || res.Flags != 3 {
		t.Fatalf("result = %+v", res)
	}
	after := readFile(t, path)

	oldSplit, _ := manifest.Region(before)
	newSplit, err := manifest.Region(after)
	if err != nil {
		t.Fatalf("Region: %v", err)
	}
	if oldSplit.Prefix != newSplit.Prefix || oldSplit.Suffix != newSplit.Suffix {
		t.Fatalf("text outside the markers changed:\n%s", after)
	}
	if want := "\narray = []\ndocument = []\nl_brace_token = []\n"; newSplit.Region != want {
		t.Fatalf("region = %q, want %q", newSplit.Region, want)
	}
	if strings.Contains(after, "stale_token") {
		t.Fatalf("stale flag survived")
	}
}

func TestSyncIdempotent(t *testing.T) {
	path := copyFixture(t, "kindgen.toml")
	flags := []string{"array", "document"}
	if _, err := manifest.Sync(flags, path, manifest.Options{Placeholder: "node"}); err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	first := readFile(t, path)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	res, err := manifest.Sync(flags, path, manifest.Options{Placeholder: "node"})
	if err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if res.Changed {
		t.Fatalf("second sync reported a change")
	}
	if second := readFile(t, path); second != first {
		t.Fatalf("file changed on second sync")
	}
	info2, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(info2.ModTime()) {
		t.Fatalf("file was rewritten")
	}
}

func TestSyncToleratesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kindgen.toml")
	content := "[features]\n" + manifest.StartMarker + "\n\n   a = []\nb = []\n\n" + manifest.EndMarker + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := manifest.Sync([]string{"a", "b"}, path, manifest.Options{})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Changed {
		t.Fatalf("surrounding whitespace should not force a rewrite")
	}
}

func TestSyncEmptyFlagList(t *testing.T) {
	path := copyFixture(t, "kindgen.toml")
	if _, err := manifest.Sync(nil, path, manifest.Options{}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	sp, err := manifest.Region(readFile(t, path))
	if err != nil {
		t.Fatalf("Region: %v", err)
	}
	if sp.Region != "\n" {
		t.Fatalf("region = %q", sp.Region)
	}
}

func TestSyncPreservesMode(t *testing.T) {
	path := copyFixture(t, "kindgen.toml")
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatal(err)
	}
	if _, err := manifest.Sync([]string{"array"}, path, manifest.Options{}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("mode = %v", info.Mode().Perm())
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %v", entries)
	}
}

func TestSyncErrors(t *testing.T) {
	_, err := manifest.Sync([]string{"a"}, filepath.Join(t.TempDir(), "missing.toml"), manifest.Options{})
	if diag.CodeOf(err) != diag.ManifestIO || !errors.Is(err, diag.ErrIO) {
		t.Fatalf("missing file: err = %v", err)
	}

	path := copyFixture(t, "no-end.toml")
	before := readFile(t, path)
	_, err = manifest.Sync([]string{"a"}, path, manifest.Options{})
	if diag.CodeOf(err) != diag.ManifestMarkers {
		t.Fatalf("no end marker: err = %v", err)
	}
	if !strings.HasPrefix(err.Error(), path+": ") {
		t.Fatalf("error does not name the file: %v", err)
	}
	if readFile(t, path) != before {
		t.Fatalf("file modified despite missing marker")
	}

	path = copyFixture(t, "outside.toml")
	before = readFile(t, path)
	_, err = manifest.Sync([]string{"document"}, path, manifest.Options{})
	if diag.CodeOf(err) != diag.ManifestInvalid {
		t.Fatalf("markers outside [features]: err = %v", err)
	}
	if readFile(t, path) != before {
		t.Fatalf("invalid manifest was written")
	}
}
