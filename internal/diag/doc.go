// Package diag defines the error model shared by every generation step.
//
// Each failure carries a compact numeric Code with a stable string form
// (SCH1001, NAM2001, ...) so the CLI and tests can match on the category
// without parsing messages. Codes are grouped by step:
//
//   - 1000..1999 schema loading
//   - 2000..2999 name derivation
//   - 3000..3999 emission and output
//   - 4000..4999 manifest synchronisation
//   - 5000..5999 project configuration
//
// Generation-time errors are never recovered inside a run. Errors raised by
// generated code at runtime live in package nodekind instead.
package diag
