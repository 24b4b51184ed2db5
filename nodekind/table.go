package nodekind

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownKind matches every *ParseError.
var ErrUnknownKind = errors.New("unknown node type")

// ParseError is returned by generated parse functions for text that is not
// the literal of an enabled named node type.
type ParseError struct {
	Type  string // enumeration name, e.g. "NodeType"
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Type, e.Input)
}

// Is reports whether target is ErrUnknownKind.
func (e *ParseError) Is(target error) bool { return target == ErrUnknownKind }

// Entry describes one generated node type.
type Entry struct {
	Literal string
	Flag    string
	Named   bool
}

// Table holds the entries of one enumeration and the enabled set resolved
// when it was built.
type Table struct {
	typeName string
	catchAll string
	entries  []Entry
	enabled  []bool
}

// NewTable resolves features against entries. Entry i describes kind i+1.
func NewTable(typeName, features, catchAll string, entries []Entry) *Table {
	fs := ParseFeatures(features)
	all := catchAll != "" && fs.Has(catchAll)

	t := &Table{
		typeName: typeName,
		catchAll: catchAll,
		entries:  entries,
		enabled:  make([]bool, len(entries)),
	}
	for i, e := range entries {
		t.enabled[i] = all || fs.Has(e.Flag)
	}
	return t
}

// Len returns the number of kinds, enabled or not.
func (t *Table) Len() int { return len(t.entries) }

func (t *Table) entry(k int) (Entry, bool) {
	if k < 1 || k > len(t.entries) {
		return Entry{}, false
	}
	return t.entries[k-1], true
}

// Enabled reports whether kind k is enabled.
func (t *Table) Enabled(k int) bool {
	if _, ok := t.entry(k); !ok {
		return false
	}
	return t.enabled[k-1]
}

// Named reports whether kind k is a named rule rather than a raw token.
func (t *Table) Named(k int) bool {
	e, ok := t.entry(k)
	return ok && e.Named
}

// Flag returns the feature flag gating kind k, or "" if k is out of range.
func (t *Table) Flag(k int) string {
	e, _ := t.entry(k)
	return e.Flag
}

// Literal returns the literal text of an enabled kind.
func (t *Table) Literal(k int) (string, bool) {
	if !t.Enabled(k) {
		return "", false
	}
	return t.entries[k-1].Literal, true
}

// Format returns the literal text of an enabled kind and "Type(k)" for
// anything else.
func (t *Table) Format(k int) string {
	if s, ok := t.Literal(k); ok {
		return s
	}
	return t.typeName + "(" + strconv.Itoa(k) + ")"
}

// Unknown builds the error generated parse functions return for s.
func (t *Table) Unknown(s string) error {
	return &ParseError{Type: t.typeName, Input: s}
}

// EnabledKinds lists the enabled kinds in declaration order.
func (t *Table) EnabledKinds() []int {
	var out []int
	for i, on := range t.enabled {
		if on {
			out = append(out, i+1)
		}
	}
	return out
}
