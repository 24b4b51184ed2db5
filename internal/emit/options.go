package emit

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"kindgen/internal/diag"
	"kindgen/internal/mangle"
)

const (
	DefaultTypeName      = "NodeType"
	DefaultCatchAll      = "node_full"
	DefaultRuntimeImport = "kindgen/nodekind"
)

// Options controls the shape of the generated file.
type Options struct {
	Package         string // Go package name, required
	ImportPath      string // import path of the generated package, used in docs only
	TypeName        string // enumeration type, default NodeType
	Prefix          string // constant prefix, default TypeName
	Grammar         string // grammar name used in the type's doc comment
	Source          string // schema path recorded in the header
	CatchAll        string // flag enabling every kind, default node_full
	DefaultFeatures []string
	RuntimeImport   string
	Docs            []DocLink
}

func (o Options) withDefaults() Options {
	if o.TypeName == "" {
		o.TypeName = DefaultTypeName
	}
	if o.Prefix == "" {
		o.Prefix = o.TypeName
	}
	if o.CatchAll == "" {
		o.CatchAll = DefaultCatchAll
	}
	if o.RuntimeImport == "" {
		o.RuntimeImport = DefaultRuntimeImport
	}
	return o
}

func (o Options) validate() error {
	if !token.IsIdentifier(o.Package) {
		return diag.Errorf(diag.NameInvalidPrefix, "package name %q is not a Go identifier", o.Package)
	}
	if !token.IsIdentifier(o.TypeName) || !token.IsExported(o.TypeName) {
		return diag.Errorf(diag.NameInvalidPrefix, "type name %q is not an exported Go identifier", o.TypeName)
	}
	if !token.IsIdentifier(o.Prefix) || !token.IsExported(o.Prefix) {
		return diag.Errorf(diag.NameInvalidPrefix, "constant prefix %q is not an exported Go identifier", o.Prefix)
	}
	return nil
}

// Kind is one enumeration member.
type Kind struct {
	Text  string
	Ident string
	Flag  string
	Named bool
}

// Kinds adapts the mangler's output.
func Kinds(names []mangle.Name) []Kind {
	out := make([]Kind, len(names))
	for i, n := range names {
		out[i] = Kind{Text: n.Text, Ident: n.Ident, Flag: n.Flag, Named: n.Named}
	}
	return out
}

// generatedNames lists the package-level identifiers the file declares
// besides the constants, so constants cannot shadow them.
func (o Options) generatedNames() map[string]bool {
	names := map[string]bool{"Features": true}
	for _, n := range []string{
		o.TypeName,
		"Parse" + o.TypeName,
		o.TypeName + "Count",
		"Enabled" + o.TypeName + "s",
		tableVar(o.TypeName),
	} {
		names[n] = true
	}
	return names
}

func tableVar(typeName string) string {
	r, size := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r)) + typeName[size:] + "Table"
}

func kindWord(named bool) string {
	if named {
		return "named"
	}
	return "unnamed"
}

// commentLiteral renders a literal for a doc comment: in back quotes when
// that is safe, Go-quoted otherwise.
func commentLiteral(s string) string {
	if s == "" || strings.ContainsRune(s, '`') || !utf8.ValidString(s) {
		return quote(s)
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return quote(s)
		}
	}
	return "`" + s + "`"
}
