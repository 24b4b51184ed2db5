// Package manifest keeps the generated feature list of a kindgen.toml in
// step with the generator. Only the lines between the start and end markers
// are ever rewritten, and only when their content actually changes.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"kindgen/internal/diag"
	"kindgen/internal/fileio"
)

const (
	StartMarker = "# <!-- generated-features-start -->"
	EndMarker   = "# <!-- generated-features-end -->"
)

// Options tunes the rendered feature lines.
type Options struct {
	// Placeholder, when set, is listed as the single dependent of every
	// generated flag.
	Placeholder string
}

// Result describes what Sync did.
type Result struct {
	Path    string
	Changed bool
	Flags   int
}

// Split is a manifest cut at its markers. Prefix ends with the start marker
// line and Suffix begins with the end marker line; Region is everything in
// between, newlines included.
type Split struct {
	Prefix string
	Region string
	Suffix string
}

// Region locates the managed region of content.
func Region(content string) (Split, error) {
	start, startEnd, ok := findLine(content, 0, StartMarker)
	if !ok {
		return Split{}, diag.Errorf(diag.ManifestMarkers, "start marker %q not found", StartMarker)
	}
	end, _, ok := findLine(content, startEnd, EndMarker)
	if !ok {
		if _, _, before := findLine(content[:start], 0, EndMarker); before {
			return Split{}, diag.Errorf(diag.ManifestMarkers, "end marker precedes start marker")
		}
		return Split{}, diag.Errorf(diag.ManifestMarkers, "end marker %q not found", EndMarker)
	}
	return Split{
		Prefix: content[:startEnd],
		Region: content[startEnd:end],
		Suffix: content[end:],
	}, nil
}

// findLine returns the bounds of the first line at or after from whose
// trimmed text equals marker. The end excludes the line break.
func findLine(content string, from int, marker string) (start, end int, ok bool) {
	for i := from; i < len(content); {
		j := strings.IndexByte(content[i:], '\n')
		lineEnd := len(content)
		if j >= 0 {
			lineEnd = i + j
		}
		if strings.TrimSpace(content[i:lineEnd]) == marker {
			return i, lineEnd, true
		}
		if j < 0 {
			break
		}
		i = lineEnd + 1
	}
	return 0, 0, false
}

var bareKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func tomlKey(s string) string {
	if bareKey.MatchString(s) {
		return s
	}
	return fmt.Sprintf("%q", s)
}

// Render returns the canonical region body for flags, one line per flag in
// the given order, without a trailing newline.
func Render(flags []string, placeholder string) string {
	value := "[]"
	if placeholder != "" {
		value = fmt.Sprintf("[%q]", placeholder)
	}
	lines := make([]string, len(flags))
	for i, f := range flags {
		lines[i] = tomlKey(f) + " = " + value
	}
	return strings.Join(lines, "\n")
}

// Patch returns content with its region replaced by the rendering of flags.
// When the trimmed region already matches, content is returned unchanged and
// changed is false.
func Patch(content string, flags []string, opts Options) (out string, changed bool, err error) {
	sp, err := Region(content)
	if err != nil {
		return "", false, err
	}
	body := Render(flags, opts.Placeholder)
	if strings.TrimSpace(body) == strings.TrimSpace(sp.Region) {
		return content, false, nil
	}
	if body == "" {
		return sp.Prefix + "\n" + sp.Suffix, true, nil
	}
	return sp.Prefix + "\n" + body + "\n" + sp.Suffix, true, nil
}

// Sync rewrites the managed region of the manifest at path so that it lists
// flags. The file is left untouched when nothing changed; otherwise it is
// replaced as a whole.
func Sync(flags []string, path string, opts Options) (Result, error) {
	res := Result{Path: path, Flags: len(flags)}
	data, err := os.ReadFile(path)
	if err != nil {
		return res, diag.Wrap(diag.ManifestIO, path, err)
	}
	out, changed, err := Patch(string(data), flags, opts)
	if err != nil {
		return res, withPath(err, path)
	}
	if !changed {
		return res, nil
	}
	if err := Verify(out, flags); err != nil {
		return res, withPath(err, path)
	}
	if err := fileio.WriteAtomic(path, []byte(out), 0o644); err != nil {
		return res, diag.Wrap(diag.ManifestIO, path, err)
	}
	res.Changed = true
	return res, nil
}

type featureTable struct {
	Features map[string]any `toml:"features"`
}

// Verify decodes content as TOML and checks that its [features] table
// declares every flag.
func Verify(content string, flags []string) error {
	var ft featureTable
	meta, err := toml.Decode(content, &ft)
	if err != nil {
		return &diag.Error{Code: diag.ManifestInvalid, Err: err}
	}
	if !meta.IsDefined("features") {
		return diag.Errorf(diag.ManifestInvalid, "no [features] table")
	}
	var missing []string
	for _, f := range flags {
		if _, ok := ft.Features[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return diag.Errorf(diag.ManifestInvalid,
			"[features] does not declare %s; are the markers inside the table?", strings.Join(missing, ", "))
	}
	return nil
}

func withPath(err error, path string) error {
	var de *diag.Error
	if errors.As(err, &de) && de.Path == "" {
		return de.At(path)
	}
	return err
}
