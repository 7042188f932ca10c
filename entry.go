// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import (
	"log/slog"
	"os"
)

// Entry is a single line of configuration: either a key/value pair or a
// section marker left by a `[name]` header.
//
// Key is the flat dotted key composed from the enclosing section and the
// name on the line; it is empty for section markers. Parent is the key
// truncated at the configured dot depth and groups related entries when
// writing. Comment holds the comment lines attached to the entry,
// newline-separated.
type Entry struct {
	Key     string
	Value   string
	Comment string
	Parent  string
}

// IsSection reports whether the entry marks a section header rather than
// a key/value pair.
func (e *Entry) IsSection() bool {
	return e.Key == ""
}

// Store holds configuration entries in the order they were read or added.
//
// To create a new Store, call [New]. Lookups return the first entry with a
// matching key; duplicate keys read from a file are kept and written back
// unchanged. A Store is not safe for concurrent mutation.
type Store struct {
	entries []*Entry

	// Options.
	style    Style
	comments bool
	keepVars bool
	depth    int
	lookup   func(string) string
	logger   *slog.Logger
}

// New creates a Store with the given Option(s).
func New(opts ...Option) *Store {
	option := &options{
		Store: &Store{
			depth:  defaultDotDepth,
			lookup: os.Getenv,
		},
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("conf")

	return option.Store
}

// Entries returns the entries in order. The slice shares the Store's
// entries, so mutating them mutates the Store.
func (s *Store) Entries() []*Entry {
	return s.entries
}

// Len returns the number of entries, section markers included.
func (s *Store) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.entries = nil
}

func (s *Store) find(key string) *Entry {
	for _, e := range s.entries {
		if !e.IsSection() && e.Key == key {
			return e
		}
	}

	return nil
}
