// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a key",
		Long: `Print the value of the first entry with the given dotted key.

Without --default, a missing key is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(true)
			if err != nil {
				return err
			}

			key := args[0]
			if !store.Has(key) && !cmd.Flags().Changed("default") {
				return fmt.Errorf("key %q not found in %s", key, flagFile)
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.GetString(key, defaultValue))

			return nil
		},
	}
	cmd.Flags().StringVar(&defaultValue, "default", "", "value to print when the key is missing")

	return cmd
}
