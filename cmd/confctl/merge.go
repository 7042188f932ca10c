// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/confkit/conf"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <overlay>...",
		Short: "Merge overlay files into the configuration file",
		Long: `Merge one or more overlay files into the file given with --file and
rewrite it. Overlays apply in order: matching keys are overridden,
new keys are appended.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(true)
			if err != nil {
				return err
			}

			opts, err := storeOptions()
			if err != nil {
				return err
			}
			for _, path := range args {
				overlay := conf.New(opts...)
				if err := overlay.ReadFile(path); err != nil {
					return err
				}
				store.Merge(overlay)
			}

			return store.WriteFile(flagFile)
		},
	}
}
