// Package driver runs the generation pipeline: load the schema, derive
// names, emit the source file and, on request, synchronise the manifest.
package driver

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"kindgen/internal/diag"
	"kindgen/internal/emit"
	"kindgen/internal/fileio"
	"kindgen/internal/mangle"
	"kindgen/internal/manifest"
	"kindgen/internal/observ"
	"kindgen/internal/project"
	"kindgen/internal/schema"
	"kindgen/internal/trace"
)

// RewriteEnv enables manifest synchronisation when set to any non-empty
// value.
const RewriteEnv = "REWRITE_FEATURES"

// Options tunes one run.
type Options struct {
	// RewriteFeatures syncs the manifest even without RewriteEnv.
	RewriteFeatures bool
	// Output overrides [generator].output.
	Output string
	// Timer, when non-nil, records each phase.
	Timer *observ.Timer
}

// RewriteRequested reports whether the run should patch the manifest.
func (o Options) RewriteRequested() bool {
	return o.RewriteFeatures || os.Getenv(RewriteEnv) != ""
}

// Naming is the outcome of loading and mangling a schema.
type Naming struct {
	Nodes []schema.NodeDescriptor
	Names []mangle.Name
	Flags []string // sorted, deduplicated
}

// Result summarises a Generate run.
type Result struct {
	Naming
	Output   string
	Changed  bool             // false when the file already had this content
	Manifest *manifest.Result // nil unless the manifest was synchronised
}

// Names loads the schema of cfg and derives every identifier and flag.
// Nothing is written.
func Names(ctx context.Context, cfg *project.Config, timer *observ.Timer) (*Naming, error) {
	tr := trace.FromContext(ctx)
	parent := runSpan(ctx)

	idx := timer.Begin("load")
	span := trace.Begin(tr, trace.ScopePhase, "load", parent)
	nodes, err := schema.Load(cfg.SchemaPath(), cfg.Format)
	if err != nil {
		span.End("failed")
		timer.End(idx, "failed")
		return nil, err
	}
	named, unnamed := schema.Count(nodes)
	note := fmt.Sprintf("%d named, %d unnamed", named, unnamed)
	span.WithExtra("nodes", strconv.Itoa(len(nodes))).End(note)
	timer.End(idx, note)

	idx = timer.Begin("mangle")
	span = trace.Begin(tr, trace.ScopePhase, "mangle", parent)
	in := make([]mangle.Input, len(nodes))
	for i, n := range nodes {
		in[i] = mangle.Input{Text: n.Type, Named: n.Named}
	}
	names, err := mangle.Mangle(in, mangle.Options{Reserved: cfg.Reserved()})
	var flags []string
	if err == nil {
		for _, n := range names {
			if n.Occurrence > 1 {
				trace.Point(tr, trace.ScopeItem, "rename", n.Text+" -> "+n.Ident, span.ID())
			}
		}
		flags, err = mangle.SortedFlags(names)
	}
	if err != nil {
		span.End("failed")
		timer.End(idx, "failed")
		return nil, withPath(err, cfg.SchemaPath())
	}
	span.WithExtra("flags", strconv.Itoa(len(flags))).End("")
	timer.End(idx, fmt.Sprintf("%d flags", len(flags)))

	return &Naming{Nodes: nodes, Names: names, Flags: flags}, nil
}

// Generate runs the whole pipeline for cfg. The output file is replaced as
// a whole, and only after rendering succeeded. A manifest failure leaves the
// freshly written source in place and is returned with the partial Result.
func Generate(ctx context.Context, cfg *project.Config, opts Options) (*Result, error) {
	tr := trace.FromContext(ctx)
	run := trace.Begin(tr, trace.ScopeRun, "generate", 0)
	ctx = withRunSpan(ctx, run.ID())

	naming, err := Names(ctx, cfg, opts.Timer)
	if err != nil {
		run.End("failed")
		return nil, err
	}
	res := &Result{Naming: *naming, Output: cfg.OutputPath()}
	if opts.Output != "" {
		res.Output = opts.Output
	}

	idx := opts.Timer.Begin("emit")
	span := trace.Begin(tr, trace.ScopePhase, "emit", run.ID())
	src, err := emit.Render(cfg.EmitOptions(), emit.Kinds(naming.Names))
	if err != nil {
		span.End("failed")
		opts.Timer.End(idx, "failed")
		run.End("failed")
		return nil, err
	}
	span.WithExtra("bytes", strconv.Itoa(len(src))).End("")
	opts.Timer.End(idx, "")

	idx = opts.Timer.Begin("write")
	span = trace.Begin(tr, trace.ScopePhase, "write", run.ID())
	res.Changed, err = writeOutput(res.Output, src)
	span.End(res.Output)
	opts.Timer.End(idx, changedNote(res.Changed))
	if err != nil {
		run.End("failed")
		return nil, err
	}

	if opts.RewriteRequested() {
		idx = opts.Timer.Begin("sync")
		span = trace.Begin(tr, trace.ScopePhase, "sync", run.ID())
		mres, err := manifest.Sync(naming.Flags, cfg.Path, manifest.Options{Placeholder: cfg.Generator.Placeholder})
		span.End(cfg.Path)
		opts.Timer.End(idx, changedNote(mres.Changed))
		if err != nil {
			run.End("failed")
			return res, err
		}
		res.Manifest = &mres
	}
	run.End("ok")
	return res, nil
}

// SyncFeatures brings the manifest of cfg in line with its schema without
// touching the generated source. With check set nothing is written and
// drift is reported as a ManifestDrift error.
func SyncFeatures(ctx context.Context, cfg *project.Config, check bool, timer *observ.Timer) (manifest.Result, error) {
	tr := trace.FromContext(ctx)
	run := trace.Begin(tr, trace.ScopeRun, "sync-features", 0)
	ctx = withRunSpan(ctx, run.ID())

	naming, err := Names(ctx, cfg, timer)
	if err != nil {
		run.End("failed")
		return manifest.Result{Path: cfg.Path}, err
	}
	opts := manifest.Options{Placeholder: cfg.Generator.Placeholder}

	idx := timer.Begin("sync")
	if !check {
		res, err := manifest.Sync(naming.Flags, cfg.Path, opts)
		timer.End(idx, changedNote(res.Changed))
		run.End(changedNote(res.Changed))
		return res, err
	}
	defer timer.End(idx, "check")

	res := manifest.Result{Path: cfg.Path, Flags: len(naming.Flags)}
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		run.End("failed")
		return res, diag.Wrap(diag.ManifestIO, cfg.Path, err)
	}
	content := string(data)
	_, changed, err := manifest.Patch(content, naming.Flags, opts)
	if err != nil {
		run.End("failed")
		return res, withPath(err, cfg.Path)
	}
	res.Changed = changed
	run.End(changedNote(changed))
	if changed {
		sp, _ := manifest.Region(content)
		return res, diag.Errorf(diag.ManifestDrift,
			"feature list is out of date (%d flags listed, %d expected); run `kindgen sync-features`",
			countLines(sp.Region), len(naming.Flags)).At(cfg.Path)
	}
	return res, nil
}

func writeOutput(path string, src []byte) (bool, error) {
	same, err := fileio.Same(path, src)
	if err != nil {
		return false, diag.Wrap(diag.OutputIO, path, err)
	}
	if same {
		return false, nil
	}
	if err := fileio.WriteAtomic(path, src, 0o644); err != nil {
		return false, diag.Wrap(diag.OutputIO, path, err)
	}
	return true, nil
}
