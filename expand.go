// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import "strings"

// maxExpandLen bounds the output of variable expansion. Once the bound is
// reached the remainder of the value is dropped at the boundary.
const maxExpandLen = 8192

// expand replaces `${NAME}` references in s with lookup(NAME). Values
// without references pass through unchanged and unbounded. An
// unterminated `${` ends the output at the text already emitted.
func expand(s string, lookup func(string) string) string {
	if !strings.Contains(s, "${") {
		return s
	}

	var out strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			appendBounded(&out, s)

			break
		}
		if !appendBounded(&out, s[:start]) {
			break
		}

		end := strings.IndexByte(s[start+2:], '}')
		if end < 0 {
			break
		}
		if !appendBounded(&out, lookup(s[start+2:start+2+end])) {
			break
		}
		s = s[start+2+end+1:]
	}

	return out.String()
}

// appendBounded appends as much of chunk as fits under maxExpandLen and
// reports whether all of it fit.
func appendBounded(out *strings.Builder, chunk string) bool {
	room := maxExpandLen - out.Len()
	if room <= 0 {
		return false
	}
	if len(chunk) > room {
		out.WriteString(chunk[:room])

		return false
	}
	out.WriteString(chunk)

	return true
}
