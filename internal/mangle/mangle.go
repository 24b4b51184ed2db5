// Package mangle derives the Go identifier and the feature flag of every
// node type in a schema.
//
// Derivation runs in two stages. A literal is first transliterated into a
// base name, unnamed tokens get the Token marker, and repeated base names
// are numbered in encounter order (Foo, Bar, Foo2). The flag is then
// re-derived from that final identifier rather than from the raw literal,
// so even pure punctuation ends up with a usable flag ("..=" gives
// DotDotEqToken and dot_dot_eq_token).
//
// Identifiers and flags must both be unique; Mangle fails with a
// diag.NameCollision or diag.IdentCollision error otherwise and the
// caller must not emit anything.
package mangle

import (
	"sort"
	"strconv"
	"strings"

	"kindgen/internal/diag"
)

const (
	// TokenMarker is appended to the base name of unnamed node types.
	TokenMarker = "Token"
	// TokenSuffix is appended to the flag of unnamed node types.
	TokenSuffix = "_token"
)

// Input is one node type as seen by the mangler.
type Input struct {
	Text  string
	Named bool
}

// Name is the derived naming of one node type.
type Name struct {
	Text       string
	Named      bool
	Base       string // transliterated literal, without marker or counter
	Ident      string // unique identifier
	Flag       string // unique feature flag
	Occurrence int    // 1 for the first node type sharing Base and marker
}

// Options tunes Mangle.
type Options struct {
	// Reserved lists flags no node type may derive, e.g. the catch-all.
	Reserved []string
}

// Mangle names every input in order. The occurrence counts live only for
// the duration of the call.
func Mangle(in []Input, opts Options) ([]Name, error) {
	seen := make(map[string]int, len(in))
	idents := make(map[string]int, len(in))
	flags := make(map[string]int, len(in))

	reserved := make(map[string]bool, len(opts.Reserved))
	for _, r := range opts.Reserved {
		if r = strings.TrimSpace(r); r != "" {
			reserved[strings.ToLower(r)] = true
		}
	}

	out := make([]Name, 0, len(in))
	for i, d := range in {
		base := BaseName(d.Text)
		key := base
		if !d.Named {
			key += TokenMarker
		}

		seen[key]++
		occ := seen[key]
		ident := key
		if occ > 1 {
			ident += strconv.Itoa(occ)
		}

		if j, dup := idents[ident]; dup {
			return nil, diag.Errorf(diag.IdentCollision,
				"%s and %s both derive identifier %s",
				describe(in[j]), describe(d), ident)
		}
		idents[ident] = i

		flag := FlagName(ident, d.Named)
		folded := strings.ToLower(flag)
		if reserved[folded] {
			return nil, diag.Errorf(diag.NameReservedFlag,
				"%s derives reserved feature %q", describe(d), flag)
		}
		if j, dup := flags[folded]; dup {
			return nil, diag.Errorf(diag.NameCollision,
				"%s and %s both derive feature %q",
				describe(in[j]), describe(d), flag)
		}
		flags[folded] = i

		out = append(out, Name{
			Text:       d.Text,
			Named:      d.Named,
			Base:       base,
			Ident:      ident,
			Flag:       flag,
			Occurrence: occ,
		})
	}
	return out, nil
}

// FlagName derives the feature flag from a final identifier. For unnamed
// node types the Token marker is lifted out of the identifier (keeping any
// occurrence counter) and TokenSuffix is appended instead:
//
//	FunctionItem -> function_item
//	DotDotToken  -> dot_dot_token
//	DotToken2    -> dot2_token
func FlagName(ident string, named bool) string {
	if named {
		return snake(ident)
	}
	stem, counter := splitCounter(ident)
	stem = strings.TrimSuffix(stem, TokenMarker)
	return snake(stem+counter) + TokenSuffix
}

// SortedFlags returns the flags of names sorted and de-duplicated. A
// shrinking list means two node types share a flag, which is reported as
// a collision.
func SortedFlags(names []Name) ([]string, error) {
	flags := make([]string, len(names))
	for i, n := range names {
		flags[i] = n.Flag
	}
	sort.Strings(flags)

	total := len(flags)
	flags = dedup(flags)
	if len(flags) != total {
		return nil, diag.Errorf(diag.NameCollision,
			"duplicate feature names detected (%d flags, %d unique)", total, len(flags))
	}
	return flags, nil
}

// snake inserts '_' before every upper-case letter but the first and
// lower-cases the result.
func snake(ident string) string {
	var sb strings.Builder
	sb.Grow(len(ident) + 4)
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if isUpper(c) {
			if i != 0 {
				sb.WriteByte('_')
			}
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func splitCounter(ident string) (stem, counter string) {
	i := len(ident)
	for i > 0 && ident[i-1] >= '0' && ident[i-1] <= '9' {
		i--
	}
	return ident[:i], ident[i:]
}

func dedup(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

func describe(in Input) string {
	if in.Named {
		return strconv.Quote(in.Text) + " (named)"
	}
	return strconv.Quote(in.Text) + " (unnamed)"
}
