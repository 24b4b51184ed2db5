// Package fuzztests houses Go fuzz harnesses for the generation pipeline:
// schema decoding, name derivation, source emission and the manifest patch.
// They guard against panics and check the naming and idempotence
// invariants on arbitrary input.
//
// Run one with:
//
//	go test ./internal/fuzz -run=^$ -fuzz=FuzzMangle
package fuzztests
