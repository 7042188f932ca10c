// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the configuration as JSON or YAML",
		Long: `Render the key/value entries as nested maps, splitting keys on dots,
and print them as JSON or YAML. Section markers and comments are not
part of the output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(true)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "json":
				if out, err = json.MarshalIndent(store.Map(), "", "  "); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				out = append(out, '\n')
			case "yaml":
				if out, err = yaml.Marshal(store.Map()); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (expected json or yaml)", format)
			}
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")

	return cmd
}
