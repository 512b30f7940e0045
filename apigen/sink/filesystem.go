package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Temp files are created next to their target with this pattern, so an
// interrupted run leaves an easily recognized file behind.
const tempPattern = ".google-apis-gen-*.tmp"

// FilesystemSink writes to a directory on the local filesystem.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite replaces existing files. When false, writing a path that
	// already exists fails.
	Overwrite bool
}

// NewFilesystemSink returns a sink writing below root that overwrites existing files.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644, Overwrite: true}
}

// WriteFile atomically writes content to path within the root, creating
// parent directories as needed.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := checkWrite(ctx, path); err != nil {
		return err
	}
	target, err := s.resolve(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create directories")
	}

	tmp, err := s.writeTemp(dir, content)
	if err != nil {
		return err
	}
	// Best effort; after a successful rename the temp file no longer exists.
	defer os.Remove(tmp)

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Overwrite {
		return errors.Wrap(os.Rename(tmp, target), "rename temp file")
	}
	// Link fails if the target exists, without a stat/rename race.
	if err := os.Link(tmp, target); err != nil {
		if errors.Is(err, os.ErrExist) {
			return errors.Newf("file already exists: %q", path)
		}
		return errors.Wrap(err, "create file")
	}
	return nil
}

// resolve maps path to a location inside Root.
func (s *FilesystemSink) resolve(path string) (string, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", errors.Wrap(err, "resolve root directory")
	}
	target := filepath.Join(root, filepath.FromSlash(path))
	if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
		return "", errors.Newf("path escapes root directory: %q", path)
	}
	return target, nil
}

func (s *FilesystemSink) writeTemp(dir string, content []byte) (string, error) {
	f, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return "", errors.Wrap(err, "create temp file")
	}
	name := f.Name()
	_, werr := f.Write(content)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		mode := s.Mode
		if mode == 0 {
			mode = 0644
		}
		werr = os.Chmod(name, mode)
	}
	if werr != nil {
		_ = os.Remove(name)
		return "", errors.Wrap(werr, "write temp file")
	}
	return name, nil
}
