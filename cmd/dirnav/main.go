// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for dirnav, a directory bookmark
// manager. Bookmarks are addressed by index; "cd $(dirnav --nav 2)" jumps
// to one.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doctools/internal/config"
	"github.com/pdiddy/doctools/internal/dirstore"
	"github.com/pdiddy/doctools/internal/homedir"
	"github.com/pdiddy/doctools/internal/term"
)

// version is set at build time via ldflags.
var version = "dev"

var actionFlags = []string{"add", "list", "rm", "nav", "search"}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirnav",
		Short: "Bookmark directories and jump back to them by index",
		Long: `dirnav keeps an ordered list of up to 100 directory bookmarks. Each
bookmark is addressed by its position in the list; positions shift down
after a removal.

The list lives in ~/.dircli_store.json unless DIRCLI_STORE names another
file. Use it from a shell with:

  cd "$(dirnav --nav 0)"`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE:    runRoot,
	}

	cmd.Flags().String("add", "", "add a directory path")
	cmd.Flags().Bool("list", false, "list stored paths")
	cmd.Flags().Int("rm", 0, "remove the path at `index`")
	cmd.Flags().Int("nav", 0, "print the path at `index` (use with cd)")
	cmd.Flags().String("search", "", "list paths containing `keyword`, ignoring case")
	cmd.Flags().String("config", "", "config file (default: ./doctools.yaml or ~/.config/doctools/doctools.yaml)")
	cmd.MarkFlagsMutuallyExclusive(actionFlags...)
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !anyChanged(cmd, actionFlags) {
		return cmd.Help()
	}
	cmd.SilenceUsage = true

	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	path, err := config.StorePath(cfg.Store, homedir.Resolve)
	if err != nil {
		return err
	}
	store, err := dirstore.Open(path, dirstore.WithWarnings(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	p := term.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	flags := cmd.Flags()
	switch {
	case flags.Changed("add"):
		v, _ := flags.GetString("add")
		return addPath(store, v, p)
	case flags.Changed("list"):
		listPaths(store, p)
		return nil
	case flags.Changed("rm"):
		i, _ := flags.GetInt("rm")
		return removePath(store, i, p)
	case flags.Changed("nav"):
		i, _ := flags.GetInt("nav")
		return navigate(store, i, cmd.OutOrStdout())
	default:
		v, _ := flags.GetString("search")
		searchPaths(store, v, p)
		return nil
	}
}

func anyChanged(cmd *cobra.Command, names []string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
