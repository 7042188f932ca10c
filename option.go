// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf

import "log/slog"

// Style selects the dialect used when parsing and writing files.
type Style int

const (
	// StyleINI writes classic INI files: `[section]` headers with
	// unindented `key = value` lines.
	StyleINI Style = iota
	// StyleGit writes git-config files: section names containing a space
	// are quoted as `[name "name"]`, and key lines are tab-indented.
	StyleGit
	// StyleSub writes headers carrying the full parent path when a key
	// extends past its parent, so `[a.b]` groups the key `a.b.c`.
	StyleSub
)

const defaultDotDepth = 2

// WithStyle provides the dialect used when parsing and writing files.
//
// The default style is StyleINI.
func WithStyle(style Style) Option {
	return func(options *options) {
		options.style = style
	}
}

// WithComments retains comments while parsing, writing and merging.
//
// Without it, comment lines are discarded on parse and nothing is written
// back, while a `;` or `#` inside a value stays part of the value.
func WithComments() Option {
	return func(options *options) {
		options.comments = true
	}
}

// WithKeepVars keeps `${NAME}` references literal instead of expanding
// them while parsing.
func WithKeepVars() Option {
	return func(options *options) {
		options.keepVars = true
	}
}

// WithDotDepth provides the number of dots at which a key is truncated to
// form its parent, which also sets where keys are split into section and
// leaf when writing.
//
// The default depth is 2, which groups `web.host` and `web.port` under
// `[web]`. It panics if depth is less than 1.
func WithDotDepth(depth int) Option {
	if depth < 1 {
		panic("cannot split keys with dot depth less than 1")
	}

	return func(options *options) {
		options.depth = depth
	}
}

// WithLookup provides the function used to resolve `${NAME}` references
// in values.
//
// The default function is os.Getenv.
func WithLookup(lookup func(name string) string) Option {
	return func(options *options) {
		options.lookup = lookup
	}
}

// WithLogger provides the slog.Logger used for skipped files and watch
// events.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// Option configures a Store with specific options.
type Option func(*options)

type options struct {
	*Store
}
