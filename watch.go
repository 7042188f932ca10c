// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Watcher reloads a layered set of configuration files whenever one of
// them changes.
//
// To create a new Watcher, call [NewWatcher].
type Watcher struct {
	paths   []string
	opts    []Option
	logger  *slog.Logger
	watched atomic.Bool
}

// NewWatcher creates a Watcher over the given files with the given
// Option(s). The options also configure the Stores built on reload.
//
// It panics if paths is empty.
func NewWatcher(paths []string, opts ...Option) *Watcher {
	if len(paths) == 0 {
		panic("cannot create Watcher with no paths")
	}

	return &Watcher{
		paths:  slices.Clone(paths),
		opts:   opts,
		logger: New(opts...).logger,
	}
}

// Watch watches the files and calls onChange with a freshly merged Store
// whenever one of them is created, written or removed. Later files
// override earlier ones, like [Store.Merge]. When none of the files
// exist, onChange receives nil. It blocks until ctx is done, or watching
// a file returns an error.
//
// It only can be called once. Call after first has no effects.
// It panics if ctx or onChange is nil.
func (w *Watcher) Watch(ctx context.Context, onChange func(*Store)) error {
	if ctx == nil {
		panic("cannot watch files with nil context")
	}
	if onChange == nil {
		panic("cannot watch files with nil onChange")
	}
	if w.watched.Swap(true) {
		w.logger.Warn("Watcher has been started, call Watch again has no effects.")

		return nil
	}

	var mutex sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	for _, path := range w.paths {
		path := path
		group.Go(func() error {
			return w.watchFile(ctx, path, func() {
				mutex.Lock()
				defer mutex.Unlock()

				onChange(w.reload())
			})
		})
	}

	return group.Wait()
}

// reload re-reads all existing watched files and merges them in order.
// It returns nil when none of them exist.
func (w *Watcher) reload() *Store {
	var merged *Store
	for _, path := range w.paths {
		layer := New(w.opts...)
		if err := layer.ReadFile(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				w.logger.Warn("Skipped unreadable config file.", "file", path, "error", err)
			}

			continue
		}
		if merged == nil {
			merged = New(w.opts...)
		}
		merged.Merge(layer)
	}

	return merged
}

//nolint:cyclop
func (w *Watcher) watchFile(ctx context.Context, path string, changed func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher for %s: %w", path, err)
	}
	defer func() {
		if e := watcher.Close(); e != nil {
			w.logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when closing file watcher.",
				slog.String("file", path),
				slog.Any("error", e),
			)
		}
	}()

	// Although only a single file is being watched, fsnotify has to watch
	// the whole parent directory to pick up all events such as symlink changes.
	dir, _ := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if e := watcher.Add(dir); e != nil {
		return fmt.Errorf("watch dir %s: %w", dir, e)
	}

	// Resolve symlinks and save the original path so that changes to symlinks
	// can be detected. The file itself may not exist yet for an upper layer.
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		realPath = path
	}
	realPath = filepath.Clean(realPath)

	var (
		lastEvent     string
		lastEventTime time.Time
	)
	for {
		select {
		case event := <-watcher.Events:
			// Use a simple timer to buffer events as certain events fire
			// multiple times on some platforms.
			if event.String() == lastEvent && time.Since(lastEventTime) < 5*time.Millisecond {
				continue
			}
			lastEvent = event.String()
			lastEventTime = time.Now()

			// Since the event is triggered on a directory, is this
			// one on the file being watched?
			evFile := filepath.Clean(event.Name)
			if evFile != realPath && evFile != filepath.Clean(path) {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove):
				w.logger.LogAttrs(
					ctx, slog.LevelWarn,
					"Config file has been removed.",
					slog.String("file", path),
				)
				changed()
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				changed()
			}

		case err := <-watcher.Errors:
			w.logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when watching file.",
				slog.String("file", path),
				slog.Any("error", err),
			)

		case <-ctx.Done():
			return nil
		}
	}
}
