// Package schema decodes a tree-sitter node-type schema (node-types.json)
// into an ordered list of node descriptors.
//
// Only Type and Named drive generation. The nested metadata (fields,
// children, subtypes) is decoded so that a schema round-trips through
// tooling, but nothing downstream interprets it.
package schema

// NodeDescriptor is one record of the schema.
type NodeDescriptor struct {
	Type     string               `json:"type" yaml:"type"`
	Named    bool                 `json:"named" yaml:"named"`
	Root     bool                 `json:"root,omitempty" yaml:"root,omitempty"`
	Extra    bool                 `json:"extra,omitempty" yaml:"extra,omitempty"`
	Fields   map[string]FieldInfo `json:"fields,omitempty" yaml:"fields,omitempty"`
	Children *FieldInfo           `json:"children,omitempty" yaml:"children,omitempty"`
	Subtypes []TypeRef            `json:"subtypes,omitempty" yaml:"subtypes,omitempty"`
}

// FieldInfo describes a field or the anonymous children of a node.
type FieldInfo struct {
	Multiple bool      `json:"multiple" yaml:"multiple"`
	Required bool      `json:"required" yaml:"required"`
	Types    []TypeRef `json:"types" yaml:"types"`
}

// TypeRef references another node type.
type TypeRef struct {
	Type  string `json:"type" yaml:"type"`
	Named bool   `json:"named" yaml:"named"`
}

// Kind returns "named" or "unnamed".
func (d NodeDescriptor) Kind() string {
	if d.Named {
		return "named"
	}
	return "unnamed"
}

// rawDescriptor mirrors NodeDescriptor with the two required keys as
// pointers so a missing key can be told apart from a zero value.
type rawDescriptor struct {
	Type     *string              `json:"type" yaml:"type"`
	Named    *bool                `json:"named" yaml:"named"`
	Root     bool                 `json:"root" yaml:"root"`
	Extra    bool                 `json:"extra" yaml:"extra"`
	Fields   map[string]FieldInfo `json:"fields" yaml:"fields"`
	Children *FieldInfo           `json:"children" yaml:"children"`
	Subtypes []TypeRef            `json:"subtypes" yaml:"subtypes"`
}
