// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the configuration file in canonical form",
		Long: `Parse the file and write it back, normalizing whitespace, grouping
keys under their sections and separating groups with blank lines.
Pass --comments to keep comment lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(true)
			if err != nil {
				return err
			}

			return store.WriteFile(flagFile)
		},
	}
}
