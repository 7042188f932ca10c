// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrKeyNotFound is returned when an operation targets a key the Store
// does not have.
var ErrKeyNotFound = errors.New("key not found")

// GetString returns the value of the first entry with the given key, or
// def if there is none.
func (s *Store) GetString(key, def string) string {
	if entry := s.find(key); entry != nil {
		return entry.Value
	}

	return def
}

// GetInt returns the value of the first entry with the given key as an
// integer. It returns def if there is no entry, and 0 if the value does
// not parse as an integer.
func (s *Store) GetInt(key string, def int) int {
	entry := s.find(key)
	if entry == nil {
		return def
	}

	value, err := strconv.Atoi(entry.Value)
	if err != nil {
		return 0
	}

	return value
}

// GetFloat returns the value of the first entry with the given key as a
// float. It returns def if there is no entry, and 0 if the value does not
// parse as a number.
func (s *Store) GetFloat(key string, def float64) float64 {
	entry := s.find(key)
	if entry == nil {
		return def
	}

	value, err := strconv.ParseFloat(entry.Value, 64)
	if err != nil {
		return 0
	}

	return value
}

// GetList splits the value of the first entry with the given key on
// commas, trimming each item and dropping empty ones. It returns nil if
// there is no entry.
func (s *Store) GetList(key string) []string {
	entry := s.find(key)
	if entry == nil {
		return nil
	}

	var items []string
	for _, item := range strings.Split(entry.Value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// Has reports whether the Store has a key/value entry with the given key.
func (s *Store) Has(key string) bool {
	return s.find(key) != nil
}

// IsValue reports whether the Store has an entry with the given key whose
// value equals want. A missing key never matches.
func (s *Store) IsValue(key, want string) bool {
	entry := s.find(key)

	return entry != nil && entry.Value == want
}

// SetString sets the value of the first entry with the given key,
// appending a new entry if there is none. The parent of an appended entry
// follows the configured dot depth.
//
// It panics if the key is empty.
func (s *Store) SetString(key, value string) {
	if key == "" {
		panic("cannot set entry with empty key")
	}

	if entry := s.find(key); entry != nil {
		entry.Value = value

		return
	}
	s.entries = append(s.entries, &Entry{
		Key:    key,
		Value:  value,
		Parent: parentKey(key, s.depth),
	})
}

// SetInt sets the value of the entry with the given key to the decimal
// form of value.
func (s *Store) SetInt(key string, value int) {
	s.SetString(key, strconv.Itoa(value))
}

// SetFloat sets the value of the entry with the given key to value
// formatted with 6 significant digits.
func (s *Store) SetFloat(key string, value float64) {
	s.SetString(key, strconv.FormatFloat(value, 'g', 6, 64))
}

// SetList sets the value of the entry with the given key to the items
// joined with ", ".
func (s *Store) SetList(key string, items []string) {
	s.SetString(key, strings.Join(items, ", "))
}

// Remove deletes the first entry with the given key and reports whether
// one was found. Section markers are not removable by key.
func (s *Store) Remove(key string) bool {
	index := slices.IndexFunc(s.entries, func(entry *Entry) bool {
		return !entry.IsSection() && entry.Key == key
	})
	if index < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, index, index+1)

	return true
}

// SetComment replaces the comment of the first entry with the given key.
// It returns ErrKeyNotFound if there is none.
func (s *Store) SetComment(key, comment string) error {
	entry := s.find(key)
	if entry == nil {
		return fmt.Errorf("set comment for %s: %w", key, ErrKeyNotFound)
	}
	entry.Comment = comment

	return nil
}

// Sections returns the distinct non-empty parents of all entries in
// first-seen order.
func (s *Store) Sections() []string {
	var sections []string
	for _, entry := range s.entries {
		if entry.Parent == "" {
			continue
		}
		if !slices.Contains(sections, entry.Parent) {
			sections = append(sections, entry.Parent)
		}
	}

	return sections
}

// Subkeys returns the key suffixes of all key/value entries under the
// given section, in order and with duplicates kept. It returns nil if
// section is empty.
func (s *Store) Subkeys(section string) []string {
	if section == "" {
		return nil
	}

	var keys []string
	prefix := section + "."
	for _, entry := range s.entries {
		if entry.IsSection() {
			continue
		}
		if strings.HasPrefix(entry.Key, prefix) {
			keys = append(keys, entry.Key[len(prefix):])
		}
	}

	return keys
}
