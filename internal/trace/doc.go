// Package trace records the phases of a kindgen run.
//
// Enable it from the command line:
//
//	kindgen generate --trace=- --trace-level=phase
//
// A run opens one ScopeRun span; each pipeline step (load, mangle, emit,
// write, sync) is a ScopePhase span below it, and per-item events such as
// individual name collisions use ScopeItem.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "load", 0)
//	defer span.End("")
package trace
