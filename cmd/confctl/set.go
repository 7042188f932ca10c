// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set the value of a key",
		Long: `Set the value of the first entry with the given dotted key, appending
a new entry if there is none. The file is created when missing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(false)
			if err != nil {
				return err
			}

			store.SetString(args[0], args[1])
			if cmd.Flags().Changed("comment") {
				if err := store.SetComment(args[0], comment); err != nil {
					return err
				}
			}

			return store.WriteFile(flagFile)
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "comment to attach to the entry")

	return cmd
}
