package driver

import (
	"context"
	"errors"
	"strings"

	"kindgen/internal/diag"
)

type runSpanKey struct{}

func withRunSpan(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, runSpanKey{}, id)
}

func runSpan(ctx context.Context) uint64 {
	id, _ := ctx.Value(runSpanKey{}).(uint64)
	return id
}

func withPath(err error, path string) error {
	var de *diag.Error
	if errors.As(err, &de) && de.Path == "" {
		return de.At(path)
	}
	return err
}

func changedNote(changed bool) string {
	if changed {
		return "changed"
	}
	return "unchanged"
}

// countLines counts the non-blank lines of a manifest region.
func countLines(s string) int {
	n := 0
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
