// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/confkit/conf"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagFile     string
	flagStyle    string
	flagComments bool
	flagKeepVars bool
	flagDepth    int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "confctl",
	Short: "Read and edit INI-style configuration files",
	Long: `confctl reads, edits and rewrites INI-style and git-style configuration
files while preserving their order and comments.

Keys are dotted paths composed from section headers, so 'port = 8080'
under '[web]' is addressed as web.port.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. missing keys, unreadable files)
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{printf "confctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "configuration file to operate on")
	rootCmd.PersistentFlags().StringVar(&flagStyle, "style", "ini", "dialect to parse and write: ini, git or sub")
	rootCmd.PersistentFlags().BoolVar(&flagComments, "comments", false, "retain comments")
	rootCmd.PersistentFlags().BoolVar(&flagKeepVars, "keep-vars", false, "keep ${NAME} references literal")
	rootCmd.PersistentFlags().IntVar(&flagDepth, "depth", 2, "dot depth for section splitting")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newUnsetCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// storeOptions translates the persistent flags into Store options.
func storeOptions() ([]conf.Option, error) {
	opts := make([]conf.Option, 0, 4)
	switch flagStyle {
	case "ini":
		opts = append(opts, conf.WithStyle(conf.StyleINI))
	case "git":
		opts = append(opts, conf.WithStyle(conf.StyleGit))
	case "sub":
		opts = append(opts, conf.WithStyle(conf.StyleSub))
	default:
		return nil, fmt.Errorf("unknown style %q (expected ini, git or sub)", flagStyle)
	}
	if flagComments {
		opts = append(opts, conf.WithComments())
	}
	if flagKeepVars {
		opts = append(opts, conf.WithKeepVars())
	}
	if flagDepth < 1 {
		return nil, fmt.Errorf("invalid depth %d (must be at least 1)", flagDepth)
	}
	if flagDepth != 2 {
		opts = append(opts, conf.WithDotDepth(flagDepth))
	}

	return opts, nil
}

// openStore reads the file given with --file into a new Store. With
// mustExist false, a missing file yields an empty Store so commands like
// set can create it.
func openStore(mustExist bool) (*conf.Store, error) {
	if flagFile == "" {
		return nil, errors.New("no configuration file given (use --file)")
	}

	opts, err := storeOptions()
	if err != nil {
		return nil, err
	}

	store := conf.New(opts...)
	if err := store.ReadFile(flagFile); err != nil {
		if !mustExist && errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}

		return nil, err
	}

	return store, nil
}
