// Package project locates and decodes kindgen.toml, the file that both
// configures a generation run and carries its feature manifest.
package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"kindgen/internal/diag"
	"kindgen/internal/emit"
	"kindgen/internal/schema"
)

// DefaultOutput is the generated file name used when [generator].output is
// not set.
const DefaultOutput = "zz_generated.node_type.go"

// Generator mirrors the [generator] table.
type Generator struct {
	Schema          string   `toml:"schema"`
	SchemaFormat    string   `toml:"schema-format"`
	Output          string   `toml:"output"`
	Package         string   `toml:"package"`
	Grammar         string   `toml:"grammar"`
	Type            string   `toml:"type"`
	Prefix          string   `toml:"prefix"`
	CatchAll        string   `toml:"catch-all"`
	Placeholder     string   `toml:"placeholder"`
	DefaultFeatures []string `toml:"default-features"`
	RuntimeImport   string   `toml:"runtime-import"`
}

type fileConfig struct {
	Generator Generator      `toml:"generator"`
	Docs      []emit.DocLink `toml:"docs"`
}

// Config is a decoded kindgen.toml.
type Config struct {
	Path      string // manifest path
	Root      string // directory holding the manifest
	Generator Generator
	Docs      []emit.DocLink
	Format    schema.Format
}

// Discover finds kindgen.toml from startDir upwards and loads it.
func Discover(startDir string) (*Config, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, &diag.Error{Code: diag.ConfigMissing, Err: err}
	}
	if !ok {
		return nil, diag.Errorf(diag.ConfigMissing,
			"no %s found in %s or its parents; run `kindgen init`", ManifestName, startDir)
	}
	return Load(path)
}

// Load decodes the manifest at path and validates the [generator] table.
func Load(path string) (*Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, diag.Wrap(diag.ConfigInvalid, path, fmt.Errorf("failed to parse TOML: %w", err))
	}
	if !meta.IsDefined("generator") {
		return nil, diag.Errorf(diag.ConfigInvalid, "missing [generator]").At(path)
	}
	g := &fc.Generator
	trimAll(&g.Schema, &g.SchemaFormat, &g.Output, &g.Package, &g.Grammar,
		&g.Type, &g.Prefix, &g.CatchAll, &g.Placeholder, &g.RuntimeImport)
	if !meta.IsDefined("generator", "schema") || g.Schema == "" {
		return nil, diag.Errorf(diag.ConfigInvalid, "missing [generator].schema").At(path)
	}
	if !meta.IsDefined("generator", "package") || g.Package == "" {
		return nil, diag.Errorf(diag.ConfigInvalid, "missing [generator].package").At(path)
	}
	if unknown := undecodedKeys(meta); len(unknown) > 0 {
		return nil, diag.Errorf(diag.ConfigInvalid, "unknown keys %s", strings.Join(unknown, ", ")).At(path)
	}
	format, err := schema.ParseFormat(g.SchemaFormat)
	if err != nil {
		return nil, diag.Errorf(diag.ConfigInvalid, "[generator].schema-format: %v", err).At(path)
	}
	if g.Output == "" {
		g.Output = DefaultOutput
	}
	if g.CatchAll == "" {
		g.CatchAll = emit.DefaultCatchAll
	}
	if g.Placeholder != "" && g.Placeholder == g.CatchAll {
		return nil, diag.Errorf(diag.ConfigInvalid,
			"[generator].placeholder must differ from the catch-all %q", g.CatchAll).At(path)
	}
	return &Config{
		Path:      path,
		Root:      filepath.Dir(path),
		Generator: fc.Generator,
		Docs:      fc.Docs,
		Format:    format,
	}, nil
}

// undecodedKeys reports keys of [generator] and [[docs]] that no field
// consumed. The [features] table is free-form.
func undecodedKeys(meta toml.MetaData) []string {
	var out []string
	for _, k := range meta.Undecoded() {
		if len(k) == 0 || k[0] == "features" {
			continue
		}
		out = append(out, k.String())
	}
	sort.Strings(out)
	return out
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, filepath.FromSlash(p))
}

// SchemaPath is the absolute path of the schema file.
func (c *Config) SchemaPath() string { return c.resolve(c.Generator.Schema) }

// OutputPath is the absolute path of the generated file.
func (c *Config) OutputPath() string { return c.resolve(c.Generator.Output) }

// Reserved lists the flags the manifest declares by hand, which no node
// type may derive.
func (c *Config) Reserved() []string {
	out := []string{c.Generator.CatchAll}
	if c.Generator.Placeholder != "" {
		out = append(out, c.Generator.Placeholder)
	}
	return out
}

// EmitOptions translates the configuration for the code emitter. The import
// path is best effort and only feeds documentation.
func (c *Config) EmitOptions() emit.Options {
	g := c.Generator
	importPath, err := ImportPath(filepath.Dir(c.OutputPath()))
	if err != nil {
		importPath = ""
	}
	return emit.Options{
		Package:         g.Package,
		ImportPath:      importPath,
		TypeName:        g.Type,
		Prefix:          g.Prefix,
		Grammar:         g.Grammar,
		Source:          filepath.ToSlash(g.Schema),
		CatchAll:        g.CatchAll,
		DefaultFeatures: g.DefaultFeatures,
		RuntimeImport:   g.RuntimeImport,
		Docs:            c.Docs,
	}
}
