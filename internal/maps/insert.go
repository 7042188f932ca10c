// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Insert inserts the value into the nested dst maps at the given path,
// creating intermediate maps as needed. A scalar in the way of the path
// is replaced by a map.
func Insert(dst map[string]any, path []string, value any) {
	if len(path) == 0 {
		return
	}

	next := dst
	for _, key := range path[:len(path)-1] {
		sub, ok := next[key].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			next[key] = sub
		}
		next = sub
	}
	next[path[len(path)-1]] = value
}
