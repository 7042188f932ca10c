// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a key",
		Long:  `Remove the first entry with the given dotted key and rewrite the file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(true)
			if err != nil {
				return err
			}

			if !store.Remove(args[0]) {
				return fmt.Errorf("key %q not found in %s", args[0], flagFile)
			}

			return store.WriteFile(flagFile)
		},
	}
}
