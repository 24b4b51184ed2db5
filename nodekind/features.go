package nodekind

import (
	"sort"
	"strings"
	"unicode"
)

// FeatureSet is a set of feature flags.
type FeatureSet map[string]struct{}

// ParseFeatures splits s on commas and white space. Empty items are ignored.
func ParseFeatures(s string) FeatureSet {
	fs := make(FeatureSet)
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}) {
		fs[f] = struct{}{}
	}
	return fs
}

// Has reports whether flag is in the set.
func (fs FeatureSet) Has(flag string) bool {
	_, ok := fs[flag]
	return ok
}

// Sorted returns the flags in lexical order.
func (fs FeatureSet) Sorted() []string {
	out := make([]string, 0, len(fs))
	for f := range fs {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// String joins the sorted flags with commas, the form ParseFeatures accepts.
func (fs FeatureSet) String() string {
	return strings.Join(fs.Sorted(), ",")
}
