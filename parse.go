// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import (
	"fmt"
	"io"
	"strings"
)

// Read parses configuration from r and appends the entries to the Store.
// Parsing never fails: malformed lines are skipped.
func (s *Store) Read(reader io.Reader) error {
	text, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	s.parse(string(text))

	return nil
}

// parse walks the input line by line. A line is classified in order as
// blank, comment, section header or key/value; anything else is skipped.
// Comment lines accumulate and attach to the next entry; a blank line
// discards them.
func (s *Store) parse(text string) {
	var (
		section string
		pending []string
	)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			pending = pending[:0]

		case line[0] == ';' || line[0] == '#':
			if s.comments {
				pending = append(pending, strings.TrimSpace(line[1:]))
			}

		case line[0] == '[':
			name, ok := parseHeader(line)
			if !ok {
				continue
			}
			section = name
			s.entries = append(s.entries, &Entry{
				Comment: strings.Join(pending, "\n"),
				Parent:  section,
			})
			pending = pending[:0]

		default:
			entry, ok := s.parseKeyValue(line, section, &pending)
			if !ok {
				continue
			}
			s.entries = append(s.entries, entry)
			pending = pending[:0]
		}
	}
}

// parseHeader extracts the section name between `[` and the first `]`.
// A header without `]` is malformed and changes nothing.
func parseHeader(line string) (string, bool) {
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return "", false
	}

	return unquoteHeader(strings.TrimSpace(line[1:end])), true
}

// unquoteHeader collapses a doubled git-style header name like
// `web site "web site"` back to `web site`. Any other quoted header is
// kept verbatim, so `remote "origin"` stays a literal section name.
func unquoteHeader(name string) string {
	quote := strings.IndexByte(name, '"')
	if quote < 0 || !strings.HasSuffix(name, `"`) || len(name) < quote+2 {
		return name
	}
	if quoted := name[quote+1 : len(name)-1]; strings.TrimSpace(name[:quote]) == quoted {
		return quoted
	}

	return name
}

// parseKeyValue splits a `name = value` line into an Entry. A line
// without `=` or with an empty name is skipped, leaving any pending
// comment for the next entry. A matching pair of double quotes around the
// value is stripped before the value is scanned for a trailing comment,
// so quoting does not protect `;` or `#`.
func (s *Store) parseKeyValue(line, section string, pending *[]string) (*Entry, bool) {
	name, value, found := strings.Cut(line, "=")
	if !found {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	value = strings.TrimSpace(value)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	if s.comments {
		marker := strings.IndexByte(value, ';')
		if marker < 0 {
			marker = strings.IndexByte(value, '#')
		}
		if marker >= 0 {
			*pending = append(*pending, strings.TrimSpace(value[marker+1:]))
			value = strings.TrimSpace(value[:marker])
		}
	}

	key := composeKey(section, name)
	if !s.keepVars {
		value = expand(value, s.lookup)
	}

	return &Entry{
		Key:     key,
		Value:   value,
		Comment: strings.Join(*pending, "\n"),
		Parent:  parentKey(key, s.depth),
	}, true
}
