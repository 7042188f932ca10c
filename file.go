// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// ReadFile reads and parses the file at path, appending its entries to
// the Store. The Store is unchanged if the file cannot be read.
func (s *Store) ReadFile(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	s.parse(string(text))

	return nil
}

// ReadFS reads and parses the file at path from fsys, appending its
// entries to the Store. It serves embedded and test file systems the
// same way [Store.ReadFile] serves the OS.
func (s *Store) ReadFS(fsys fs.FS, path string) error {
	text, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	s.parse(string(text))

	return nil
}

// WriteFile serializes the Store to the file at path, replacing it. A
// failed write may leave a partially written file behind.
func (s *Store) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(s.serialize()), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// Load reads the default configuration stack for the given program name:
// the system file, then the user file, then `.<name>conf` in the working
// directory, with later layers overriding earlier ones. Missing or
// unreadable layers are skipped.
//
// On most systems the stack is `/etc/<name>/<name>.conf`, then
// `$XDG_CONFIG_HOME/<name>/<name>.conf` or `$HOME/.<name>conf`. All
// environment reads go through the lookup configured with [WithLookup].
//
// It panics if name is empty.
func Load(name string, opts ...Option) *Store {
	if name == "" {
		panic("cannot load configuration with empty name")
	}

	store := New(opts...)
	for _, path := range defaultPaths(name, store.lookup) {
		layer := New(opts...)
		if err := layer.ReadFile(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				store.logger.Debug("Skipped missing config layer.", "file", path)
			} else {
				store.logger.Warn("Skipped unreadable config layer.", "file", path, "error", err)
			}

			continue
		}
		store.Merge(layer)
	}

	return store
}

func defaultPaths(name string, lookup func(string) string) []string {
	paths := make([]string, 0, 3)
	switch runtime.GOOS {
	case "windows":
		paths = append(paths, filepath.Join("C:/ProgramData", name, name+".conf"))
		if dir := lookup("APPDATA"); dir != "" {
			paths = append(paths, filepath.Join(dir, name+".conf"))
		} else if dir := lookup("USERPROFILE"); dir != "" {
			paths = append(paths, filepath.Join(dir, ".config", name+".conf"))
		}
	case "darwin":
		paths = append(paths, filepath.Join("/etc", name, name+".conf"))
		if dir := lookup("HOME"); dir != "" {
			paths = append(paths, filepath.Join(dir, "."+name+"conf"))
		}
	default:
		paths = append(paths, filepath.Join("/etc", name, name+".conf"))
		if dir := lookup("XDG_CONFIG_HOME"); dir != "" {
			paths = append(paths, filepath.Join(dir, name, name+".conf"))
		} else if dir := lookup("HOME"); dir != "" {
			paths = append(paths, filepath.Join(dir, "."+name+"conf"))
		}
	}

	return append(paths, "."+name+"conf")
}
