// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import "strings"

// maxKeyLen bounds a key composed from a section and a name. Longer keys
// are truncated at the boundary.
const maxKeyLen = 1024

// nthDot returns the byte index of the n-th dot of key, or -1 if key has
// fewer dots. The scan starts at the second byte, so a leading dot is
// never counted.
func nthDot(key string, n int) int {
	if n <= 0 {
		return -1
	}

	pos := 0
	for ; n > 0; n-- {
		if pos+1 >= len(key) {
			return -1
		}
		next := strings.IndexByte(key[pos+1:], '.')
		if next < 0 {
			return -1
		}
		pos += 1 + next
	}

	return pos
}

// parentKey truncates key at the depth-th dot. Keys with fewer dots are
// their own parent.
func parentKey(key string, depth int) string {
	if i := nthDot(key, depth); i >= 0 {
		return key[:i]
	}

	return key
}

// leafSplit splits key into the section name emitted when writing and the
// child name written on the key's own line. The child starts after the
// (depth-1)-th dot, so re-reading the written line composes the original
// key. Keys with fewer dots stay at top level.
func leafSplit(key string, depth int) (section, child string) {
	if i := nthDot(key, depth-1); i >= 0 {
		return key[:i], key[i+1:]
	}

	return "", key
}

// composeKey joins a section and a name into a flat key, truncated at
// maxKeyLen.
func composeKey(section, name string) string {
	key := name
	if section != "" {
		key = section + "." + name
	}
	if len(key) > maxKeyLen {
		key = key[:maxKeyLen]
	}

	return key
}
