// Package nodekind is the runtime half of kindgen's generated code.
//
// Generated packages declare one constant per node type and hand a Table of
// entries to NewTable during package initialisation. The table decides once,
// from the package's Features string, which node types are enabled: a node
// type is enabled when its own feature flag or the catch-all flag is listed.
// Disabled node types keep their constant but cannot be parsed and do not
// format to their literal.
//
// Kind values are numbered from 1; 0 is the invalid zero value of every
// generated enumeration.
package nodekind
