// Package sink provides output destinations for generated crates.
package sink

import (
	"context"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
)

// OutputSink receives generated file content.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	// WriteFile writes content to a slash-separated path relative to the
	// sink's root.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// ValidatePath checks that name is usable as an output path: relative,
// slash separated, clean and inside the root.
func ValidatePath(name string) error {
	if name == "" {
		return errors.New("path is empty")
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return errors.New("absolute or backslash paths not allowed")
	}
	if len(name) >= 2 && name[1] == ':' && isLetter(name[0]) {
		return errors.New("absolute paths not allowed")
	}
	for _, elem := range strings.Split(name, "/") {
		if elem == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := path.Clean(name); cleaned != name {
		return errors.Newf("path is not clean (expected %q, got %q)", cleaned, name)
	}
	return nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func checkWrite(ctx context.Context, name string) error {
	if err := ValidatePath(name); err != nil {
		return errors.Wrapf(err, "invalid path %q", name)
	}
	return ctx.Err()
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
