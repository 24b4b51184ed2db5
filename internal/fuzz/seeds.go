package fuzztests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const maxSeedBytes = 64 << 10

// addSchemaSeeds feeds every schema fixture of the repository to f.
func addSchemaSeeds(f *testing.F) {
	root := filepath.Join("..", "schema", "testdata")
	entries, err := os.ReadDir(root)
	if err == nil {
		for _, e := range entries {
			ext := filepath.Ext(e.Name())
			if e.IsDir() || (ext != ".json" && ext != ".yaml") {
				continue
			}
			src, err := os.ReadFile(filepath.Join(root, e.Name()))
			if err != nil {
				continue
			}
			f.Add(clampSeed(src))
		}
	}
	f.Add([]byte{})
	f.Add([]byte(`[{"type":"true","named":true},{"type":"true","named":false}]`))
}

// literalSeeds are joined with NUL to form one Mangle input.
var literalSeeds = [][]string{
	{"foo", "bar", "foo"},
	{"true", "true"},
	{"if", "if", "if", "if"},
	{"foo2", "foo", "foo"},
	{"->", "=>", "..=", "...", "_", "__"},
	{"café", "cafe", "日本", ""},
	{"count", "Count", "COUNT"},
}

func addLiteralSeeds(f *testing.F) {
	for i, lits := range literalSeeds {
		f.Add(strings.Join(lits, "\x00"), uint64(i)*0x5555)
	}
}

func addManifestSeeds(f *testing.F) {
	data, err := os.ReadFile(filepath.Join("..", "manifest", "testdata", "kindgen.toml"))
	if err == nil {
		f.Add(string(clampSeed(data)))
	}
	f.Add("")
	f.Add("# <!-- generated-features-start -->\n# <!-- generated-features-end -->\n")
	f.Add("[features]\n# <!-- generated-features-start -->\na = []\n\n# <!-- generated-features-end -->")
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
