// Package watch reruns a function when files change.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a set of files. Directories are watched rather than the
// files themselves, so editors that save by renaming over the file are seen.
type Watcher struct {
	// Debounce is the quiet period before the callback runs.
	Debounce time.Duration

	Logger *slog.Logger

	files   map[string]bool
	watcher *fsnotify.Watcher
}

// New returns a watcher for paths. Close must be called to release it.
func New(paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	w := &Watcher{
		Debounce: DefaultDebounce,
		Logger:   slog.New(slog.DiscardHandler),
		files:    make(map[string]bool, len(paths)),
		watcher:  fw,
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "resolve %s", p)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "watch %s", dir)
		}
		dirs[dir] = true
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run calls fn after each burst of changes to the watched files until ctx
// is cancelled. Errors from fn are logged and do not stop the watcher.
// Calls to fn never overlap.
func (w *Watcher) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		changed string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.Logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			changed = event.Name
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.Logger.Info("regenerating", "file", changed)
			if err := fn(ctx); err != nil {
				w.Logger.Warn("regeneration failed", "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
