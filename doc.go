// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package conf reads, edits and writes INI-style configuration files while
preserving their order and comments.

It defines a type, [Store], which holds the entries of a configuration file
in the order they appear. A Store is created with [New], filled from a file
with [Store.Read] or [Store.ReadFile], queried and edited with typed
accessors such as [Store.GetString] and [Store.SetInt], and written back
with [Store.Write] or [Store.WriteFile].

Section headers split keys into dotted paths, so `port = 8080` under `[web]`
becomes the key `web.port`. Values may reference environment variables with
`${NAME}`, which are expanded while parsing unless [WithKeepVars] is given.
Layered configurations are combined with [Store.Merge] or read from the
conventional system, user and working-directory locations with [Load].

For watching files and reloading on change, see [Watcher].
*/
package conf
