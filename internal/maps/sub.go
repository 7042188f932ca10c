// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Sub returns the value of the nested maps at the given path. Empty path
// elements are skipped, so the path split from an empty string returns
// values itself. It returns nil if the path leads nowhere.
func Sub(values map[string]any, path []string) any {
	var value any = values
	for _, key := range path {
		if key == "" {
			continue
		}

		sub, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		if value, ok = sub[key]; !ok {
			return nil
		}
	}

	return value
}
