package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kindgen/internal/diag"
	"kindgen/internal/manifest"
	"kindgen/internal/project"
	"kindgen/internal/schema"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	path, ok, err := project.FindManifest(filepath.Join("testdata", "nested", "deeper"))
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(filepath.Join("testdata", project.ManifestName))
	if path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
}

func TestFindManifestMissing(t *testing.T) {
	_, ok, err := project.FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	// The temporary directory may live below a stray kindgen.toml; only
	// assert when none exists above it.
	if ok {
		t.Skip("kindgen.toml found above the temporary directory")
	}
	_, err = project.Discover(t.TempDir())
	if diag.CodeOf(err) != diag.ConfigMissing || !errors.Is(err, diag.ErrConfig) {
		t.Fatalf("Discover err = %v", err)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := project.Load(filepath.Join("testdata", project.ManifestName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g := cfg.Generator
	if g.Package != "demo" || g.Type != "Kind" || g.Output != project.DefaultOutput || g.CatchAll != "node_full" {
		t.Fatalf("generator = %+v", g)
	}
	if diff := cmp.Diff([]string{"node_full", "node"}, cfg.Reserved()); diff != "" {
		t.Fatalf("reserved mismatch (-want +got):\n%s", diff)
	}
	if want := filepath.Join("testdata", "grammar", "node-types.yaml"); cfg.SchemaPath() != want {
		t.Fatalf("schema path = %s, want %s", cfg.SchemaPath(), want)
	}
	if cfg.Format != schema.FormatAuto {
		t.Fatalf("format = %v", cfg.Format)
	}
	if len(cfg.Docs) != 1 || cfg.Docs[0].URL != "https://example.com/demo" {
		t.Fatalf("docs = %+v", cfg.Docs)
	}

	opts := cfg.EmitOptions()
	if opts.Package != "demo" || opts.TypeName != "Kind" || opts.Source != "grammar/node-types.yaml" {
		t.Fatalf("emit options = %+v", opts)
	}
	if diff := cmp.Diff([]string{"document"}, opts.DefaultFeatures); diff != "" {
		t.Fatalf("default features mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":        "[generator\n",
		"no generator":  "[features]\nnode_full = []\n",
		"no schema":     "[generator]\npackage = \"p\"\n",
		"blank package": "[generator]\nschema = \"s.json\"\npackage = \"  \"\n",
		"unknown key":   "[generator]\nschema = \"s.json\"\npackage = \"p\"\nshema = \"x\"\n",
		"bad format":    "[generator]\nschema = \"s.json\"\npackage = \"p\"\nschema-format = \"xml\"\n",
		"placeholder":   "[generator]\nschema = \"s.json\"\npackage = \"p\"\nplaceholder = \"node_full\"\n",
		"unknown docs":  "[generator]\nschema = \"s.json\"\npackage = \"p\"\n[[docs]]\nhref = \"x\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeManifest(t, content)
			_, err := project.Load(path)
			if diag.CodeOf(err) != diag.ConfigInvalid {
				t.Fatalf("err = %v, want ConfigInvalid", err)
			}
			if !strings.HasPrefix(err.Error(), path+": ") {
				t.Fatalf("error does not name the manifest: %v", err)
			}
		})
	}
	if _, err := project.Load(filepath.Join("testdata", "bad", project.ManifestName)); diag.CodeOf(err) != diag.ConfigInvalid {
		t.Fatalf("bad fixture: err = %v", err)
	}
}

func TestLoadIgnoresFeatureTable(t *testing.T) {
	path := writeManifest(t, "[generator]\nschema = \"s.json\"\npackage = \"p\"\n[features]\nanything = [\"goes\"]\n")
	if _, err := project.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestStarterIsValid(t *testing.T) {
	content := project.Starter("jsonkinds")
	path := writeManifest(t, content)
	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load(starter): %v", err)
	}
	if cfg.Generator.Package != "jsonkinds" {
		t.Fatalf("package = %q", cfg.Generator.Package)
	}
	sp, err := manifest.Region(content)
	if err != nil {
		t.Fatalf("Region(starter): %v", err)
	}
	if strings.TrimSpace(sp.Region) != "" {
		t.Fatalf("starter region not empty: %q", sp.Region)
	}
}

func TestImportPath(t *testing.T) {
	got, err := project.ImportPath(filepath.Join("testdata", "mod", "gen"))
	if err != nil {
		t.Fatalf("ImportPath: %v", err)
	}
	if got != "example.com/demo/gen" {
		t.Fatalf("ImportPath = %q", got)
	}
	got, err = project.ImportPath(filepath.Join("testdata", "mod"))
	if err != nil || got != "example.com/demo" {
		t.Fatalf("ImportPath(root) = %q, %v", got, err)
	}
	got, err = project.ImportPath(".")
	if err != nil || got != "kindgen/internal/project" {
		t.Fatalf("ImportPath(.) = %q, %v", got, err)
	}
}
