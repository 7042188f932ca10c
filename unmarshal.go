// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/confkit/conf/internal/maps"
)

// Map returns the key/value entries as nested maps, splitting keys on
// dots. Section markers are not part of the view, and for duplicate keys
// the first entry wins, matching lookups.
func (s *Store) Map() map[string]any {
	values := make(map[string]any)
	seen := make(map[string]struct{}, len(s.entries))
	for _, entry := range s.entries {
		if entry.IsSection() {
			continue
		}
		if _, ok := seen[entry.Key]; ok {
			continue
		}
		seen[entry.Key] = struct{}{}
		maps.Insert(values, strings.Split(entry.Key, "."), entry.Value)
	}

	return values
}

// Unmarshal decodes the entries under the given path into the object
// pointed to by target. An empty path decodes the whole Store. Struct
// fields can steer decoding with the `conf` tag.
func (s *Store) Unmarshal(path string, target any) error {
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       defaultDecodeHook,
			TagName:          "conf",
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(maps.Sub(s.Map(), strings.Split(path, "."))); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

var defaultDecodeHook = mapstructure.ComposeDecodeHookFunc( //nolint:gochecknoglobals
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
