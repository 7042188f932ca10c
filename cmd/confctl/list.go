// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [section]",
		Short: "List parent groups or the keys of a section",
		Long: `Without arguments, list the distinct parent groups of the file in order
of appearance; keys outside a section group under their own name. With
a section, list the key suffixes under it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(true)
			if err != nil {
				return err
			}

			names := store.Sections()
			if len(args) == 1 {
				names = store.Subkeys(args[0])
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}
