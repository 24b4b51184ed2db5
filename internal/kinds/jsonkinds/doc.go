// Package jsonkinds enumerates the node types of the tree-sitter JSON
// grammar. The enumeration lives in zz_generated.node_type.go; refresh it
// and the feature list in kindgen.toml with
//
//	REWRITE_FEATURES=1 go generate ./internal/kinds/jsonkinds
package jsonkinds

//go:generate go run kindgen/cmd/kindgen generate --config kindgen.toml
