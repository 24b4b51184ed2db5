package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kindgen/internal/diag"
)

// Format selects the schema decoder.
type Format uint8

const (
	FormatAuto Format = iota // pick by file extension, JSON otherwise
	FormatJSON
	FormatYAML
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, diag.Errorf(diag.SchemaFormat, "unknown schema format %q (expected: auto|json|yaml)", s)
	}
}

// FormatFor resolves FormatAuto from the path's extension.
func FormatFor(path string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the schema file at path.
func Load(path string, f Format) ([]NodeDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Wrap(diag.SchemaRead, path, err)
	}
	nodes, err := Parse(data, FormatFor(path, f))
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) && de.Path == "" {
			return nil, de.At(path)
		}
		return nil, err
	}
	return nodes, nil
}

// Parse decodes a schema document. The result preserves document order.
func Parse(data []byte, f Format) ([]NodeDescriptor, error) {
	var raw []rawDescriptor
	switch f {
	case FormatAuto, FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, &diag.Error{Code: diag.SchemaMalformed, Msg: "invalid JSON", Err: err}
		}
		if dec.More() {
			return nil, diag.Errorf(diag.SchemaMalformed, "trailing data after schema array")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &diag.Error{Code: diag.SchemaMalformed, Msg: "invalid YAML", Err: err}
		}
	default:
		return nil, diag.Errorf(diag.SchemaFormat, "unsupported schema format %s", f)
	}

	if len(raw) == 0 {
		return nil, diag.Errorf(diag.SchemaEmpty, "schema declares no node types")
	}

	nodes := make([]NodeDescriptor, 0, len(raw))
	for i, r := range raw {
		if r.Type == nil {
			return nil, diag.Errorf(diag.SchemaMalformed, "entry %d: missing \"type\"", i)
		}
		if r.Named == nil {
			return nil, diag.Errorf(diag.SchemaMalformed, "entry %d (%q): missing \"named\"", i, *r.Type)
		}
		nodes = append(nodes, NodeDescriptor{
			Type:     *r.Type,
			Named:    *r.Named,
			Root:     r.Root,
			Extra:    r.Extra,
			Fields:   r.Fields,
			Children: r.Children,
			Subtypes: r.Subtypes,
		})
	}
	return nodes, nil
}

// Count reports how many descriptors are named rules and how many raw tokens.
func Count(nodes []NodeDescriptor) (named, unnamed int) {
	for _, n := range nodes {
		if n.Named {
			named++
		} else {
			unnamed++
		}
	}
	return named, unnamed
}

// String summarises a descriptor for traces and error messages.
func (d NodeDescriptor) String() string {
	return fmt.Sprintf("%q (%s)", d.Type, d.Kind())
}
