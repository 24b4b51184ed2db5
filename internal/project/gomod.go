package project

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ImportPath returns the Go import path of dir, derived from the nearest
// go.mod at or above it.
func ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	goMod, ok, err := findUp(abs, "go.mod")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s: no go.mod found", dir)
	}
	data, err := os.ReadFile(goMod)
	if err != nil {
		return "", err
	}
	module := modfile.ModulePath(data)
	if module == "" {
		return "", fmt.Errorf("%s: no module directive", goMod)
	}
	rel, err := filepath.Rel(filepath.Dir(goMod), abs)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return module, nil
	}
	return module + "/" + filepath.ToSlash(rel), nil
}
