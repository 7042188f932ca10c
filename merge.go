// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

// Merge applies overlay on top of the Store. A key/value entry overrides
// the value of the first base entry with the same key; a section marker
// matches the first base marker with the same parent. Entries without a
// match are appended in overlay order, keeping their parent as-is.
//
// With comments retained, an overlay comment replaces the matched entry's
// comment, except that two commented markers for the same section combine
// as `base | overlay`. Re-merging the same overlay keeps appending to
// combined marker comments; that accumulation is part of the contract.
func (s *Store) Merge(overlay *Store) {
	if overlay == nil {
		return
	}
	for _, entry := range overlay.entries {
		base := s.findMatch(entry)
		if base == nil {
			s.entries = append(s.entries, &Entry{
				Key:     entry.Key,
				Value:   entry.Value,
				Comment: entry.Comment,
				Parent:  entry.Parent,
			})

			continue
		}

		base.Value = entry.Value
		if s.comments && entry.Comment != "" {
			if entry.IsSection() && base.Comment != "" {
				base.Comment += " | " + entry.Comment
			} else {
				base.Comment = entry.Comment
			}
		}
	}
}

func (s *Store) findMatch(entry *Entry) *Entry {
	if entry.IsSection() {
		for _, e := range s.entries {
			if e.IsSection() && e.Parent == entry.Parent {
				return e
			}
		}

		return nil
	}

	return s.find(entry.Key)
}
