package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Schema
	SchemaRead      Code = 1001
	SchemaMalformed Code = 1002
	SchemaEmpty     Code = 1003
	SchemaFormat    Code = 1004

	// Naming
	NameCollision     Code = 2001
	IdentCollision    Code = 2002
	NameReservedFlag  Code = 2003
	NameInvalidPrefix Code = 2004

	// Emission
	EmitTooManyKinds Code = 3001
	EmitTemplate     Code = 3002
	EmitFormat       Code = 3003
	OutputIO         Code = 3004

	// Manifest
	ManifestIO      Code = 4001
	ManifestMarkers Code = 4002
	ManifestInvalid Code = 4003
	ManifestDrift   Code = 4004

	// Project
	ConfigMissing Code = 5001
	ConfigInvalid Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	SchemaRead:        "Cannot read node-type schema",
	SchemaMalformed:   "Malformed node-type schema",
	SchemaEmpty:       "Node-type schema declares no node types",
	SchemaFormat:      "Unsupported schema format",
	NameCollision:     "Two node types derive the same feature flag",
	IdentCollision:    "Two node types derive the same identifier",
	NameReservedFlag:  "Node type derives a reserved feature flag",
	NameInvalidPrefix: "Identifier prefix is not a valid Go identifier",
	EmitTooManyKinds:  "Too many node types for the enumeration",
	EmitTemplate:      "Cannot render generated source",
	EmitFormat:        "Generated source does not gofmt",
	OutputIO:          "Cannot write generated source",
	ManifestIO:        "Cannot read or write manifest",
	ManifestMarkers:   "Manifest markers missing or misplaced",
	ManifestInvalid:   "Manifest features out of sync after rewrite",
	ManifestDrift:     "Manifest features differ from generated flags",
	ConfigMissing:     "No kindgen.toml found",
	ConfigInvalid:     "Invalid kindgen.toml",
}

// ID returns the stable identifier of the code, e.g. "NAM2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCH%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EMT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("MAN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return fmt.Sprintf("E%04d", int(c))
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
