// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import (
	"fmt"
	"io"
	"strings"
)

// Write serializes the entries to w in the configured style. Consecutive
// entries sharing a section are grouped under one header, with a blank
// line between groups. Reading the output back yields an equivalent
// Store, and writing that Store reproduces the bytes.
//
// Keys at top level only serialize faithfully before the first section:
// the format has no way to close a section, so a later top-level key
// would be re-read as part of the preceding section.
func (s *Store) Write(writer io.Writer) error {
	if _, err := io.WriteString(writer, s.serialize()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (s *Store) serialize() string {
	var out strings.Builder
	previous := ""
	for i, entry := range s.entries {
		section, child := s.split(entry)
		grouped := i > 0 && section == previous
		if !grouped && i > 0 {
			out.WriteByte('\n')
		}

		if entry.IsSection() {
			// The comment goes above the header so it re-attaches to
			// the marker when the file is read back.
			s.writeComment(&out, entry.Comment)
			if !grouped {
				s.writeHeader(&out, section)
			}
		} else {
			if !grouped {
				s.writeHeader(&out, section)
			}
			s.writeComment(&out, entry.Comment)
			if s.style == StyleGit {
				out.WriteByte('\t')
			}
			out.WriteString(child)
			out.WriteString(" = ")
			out.WriteString(entry.Value)
			out.WriteByte('\n')
		}
		previous = section
	}

	return out.String()
}

// split returns the section an entry is grouped under and the child name
// written on its line.
func (s *Store) split(entry *Entry) (section, child string) {
	if entry.IsSection() {
		return entry.Parent, ""
	}
	if s.style == StyleSub && entry.Parent != "" && strings.HasPrefix(entry.Key, entry.Parent+".") {
		return entry.Parent, entry.Key[len(entry.Parent)+1:]
	}

	return leafSplit(entry.Key, s.depth)
}

func (s *Store) writeHeader(out *strings.Builder, section string) {
	if section == "" {
		return
	}
	if s.style == StyleGit && strings.ContainsRune(section, ' ') {
		fmt.Fprintf(out, "[%s \"%s\"]\n", section, section)

		return
	}
	out.WriteByte('[')
	out.WriteString(section)
	out.WriteString("]\n")
}

func (s *Store) writeComment(out *strings.Builder, comment string) {
	if !s.comments || comment == "" {
		return
	}
	for _, part := range strings.Split(comment, "\n") {
		out.WriteString("; ")
		out.WriteString(part)
		out.WriteByte('\n')
	}
}
