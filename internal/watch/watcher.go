// Package watch reports debounced file system changes in a set of
// directories.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when Options.Debounce is zero.
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Debounce is how long the watcher waits for events to settle before
	// reporting a batch.
	Debounce time.Duration

	// Recursive also watches subdirectories, including ones created later.
	Recursive bool

	// Ignore reports whether a path should not trigger a change. Nil uses
	// IgnoreHidden.
	Ignore func(path string) bool

	Logger *slog.Logger
}

// Watcher batches file system events for a set of directories.
type Watcher struct {
	watcher   *fsnotify.Watcher
	debounce  time.Duration
	recursive bool
	ignore    func(string) bool
	logger    *slog.Logger
}

// New creates a watcher for paths. Each path must be an existing directory.
func New(paths []string, opts Options) (*Watcher, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:   fw,
		debounce:  opts.Debounce,
		recursive: opts.Recursive,
		ignore:    opts.Ignore,
		logger:    opts.Logger,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.ignore == nil {
		w.ignore = IgnoreHidden
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}

	for _, path := range paths {
		if err := w.add(path); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Paths returns the directories currently being watched.
func (w *Watcher) Paths() []string {
	paths := w.watcher.WatchList()
	slices.Sort(paths)
	return paths
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run delivers batches of changed paths to onChange until ctx is done. Events
// that arrive while onChange runs are collected into the next batch.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context, paths []string)) error {
	defer w.watcher.Close()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			if w.recursive && event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.add(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for path := range pending {
				batch = append(batch, path)
			}
			slices.Sort(batch)
			clear(pending)

			onChange(ctx, batch)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return !w.ignore(event.Name)
}

func (w *Watcher) add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("failed to watch %s: not a directory", root)
	}

	if !w.recursive {
		if err := w.watcher.Add(root); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
		return nil
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.ignore(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// IgnoreHidden skips dotfiles and editor backup files.
func IgnoreHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~")
}
