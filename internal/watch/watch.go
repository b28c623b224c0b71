// Package watch reruns a callback when Org files under a path change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-org2typst/internal/fileutil"
)

// DefaultDebounce is the quiet period after the last event before the
// callback runs.
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc is called with the absolute path of each changed Org file.
type ChangeFunc func(path string)

// Options tunes Watch. Zero values select defaults.
type Options struct {
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watch observes root until ctx is cancelled. root may be a single Org file
// or a directory; directories are watched recursively and new
// subdirectories are picked up as they appear. Bursts of events for the
// same file within the debounce window produce one call.
func Watch(ctx context.Context, root string, opts Options, onChange ChangeFunc) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors often replace a file by rename, which drops a watch on the
	// file itself, so single files are watched through their directory.
	var single string
	if fileutil.IsDir(root) {
		if err := addDirsRecursive(w, root); err != nil {
			return err
		}
	} else {
		single = root
		if err := w.Add(filepath.Dir(root)); err != nil {
			return err
		}
	}

	logger.Info("watch: started", slog.String("root", root))

	pending := make(map[string]struct{})
	timer := time.NewTimer(opts.Debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("watch: stopped")
			return nil

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			sort.Strings(paths)
			for _, p := range paths {
				onChange(p)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if single == "" && ev.Op&fsnotify.Create != 0 && fileutil.IsDir(ev.Name) {
				if err := addDirsRecursive(w, ev.Name); err != nil {
					logger.Warn("watch: add new dir failed",
						slog.String("path", ev.Name),
						slog.String("error", err.Error()))
				}
				continue
			}

			if !relevant(ev, single) {
				continue
			}

			logger.Debug("watch: event", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			pending[ev.Name] = struct{}{}
			timer.Reset(opts.Debounce)

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch: error", slog.String("error", watchErr.Error()))
		}
	}
}

// relevant reports whether ev is a write to a file we convert.
func relevant(ev fsnotify.Event, single string) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}
	if single != "" {
		return ev.Name == single
	}
	return fileutil.IsOrgFile(ev.Name) && !strings.HasPrefix(filepath.Base(ev.Name), ".")
}

// addDirsRecursive adds root and its non-hidden subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
