// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Command confctl reads, edits and rewrites INI-style configuration
// files from the command line.
package main

func main() {
	Execute()
}
