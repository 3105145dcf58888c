// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for mergepdf, which merges the PDFs in
// each directory of a tree into one "<dir>_merged.pdf" per directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/doctools/internal/command"
	"github.com/pdiddy/doctools/internal/config"
	"github.com/pdiddy/doctools/internal/pdfmerge"
	"github.com/pdiddy/doctools/internal/term"
)

// version is set at build time via ldflags.
var version = "dev"

// Tests replace these.
var (
	executor   = command.Default
	filesystem = afero.NewOsFs()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mergepdf <dir>",
		Short: "Merge the PDFs of each directory into one file",
		Long: `mergepdf walks dir recursively, groups the PDFs it finds by parent
directory and merges every group of two or more files into
<dir>/<dirname>_merged.pdf, in filename order. Existing merge outputs are
never overwritten or merged again.

qpdf is used when available; if it is missing mergepdf tries to install it
and otherwise falls back to Ghostscript.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runMerge,
	}

	cmd.Flags().BoolP("no-install", "n", false, "do not try to install qpdf when it is missing")
	cmd.Flags().BoolP("gs", "g", false, "use Ghostscript even if qpdf is available")
	cmd.Flags().Bool("dry-run", false, "print the merge plan as YAML and exit")
	cmd.Flags().Bool("list-tools", false, "report which PDF tools are installed and exit")
	cmd.Flags().String("config", "", "config file (default: ./doctools.yaml or ~/.config/doctools/doctools.yaml)")
	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	listTools, _ := cmd.Flags().GetBool("list-tools")
	if !listTools && len(args) == 0 {
		return fmt.Errorf("requires a directory argument")
	}
	cmd.SilenceUsage = true

	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	p := term.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if listTools {
		printTools(pdfmerge.ListTools(executor, cfg.Merge), p)
		return nil
	}

	root := args[0]
	if err := pdfmerge.CheckRoot(filesystem, root); err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		// stdout carries only the YAML plan.
		p = term.New(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	}
	opts := pdfmerge.SelectOptions{NoInstall: dryRun}
	opts.ForceGhostscript, _ = cmd.Flags().GetBool("gs")
	if noInstall, _ := cmd.Flags().GetBool("no-install"); noInstall {
		opts.NoInstall = true
	}

	backend, err := pdfmerge.SelectBackend(executor, cfg.Merge, opts, p)
	if err != nil {
		return err
	}
	p.Plain("Using %s for PDF merging", backend.Name())

	pdfs, err := pdfmerge.Discover(filesystem, root, p)
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		p.Plain("No PDF files found.")
	} else {
		p.Plain("Found %d PDF file(s)", len(pdfs))
	}

	groups := pdfmerge.GroupByDir(pdfs)
	if dryRun {
		return pdfmerge.WritePlan(cmd.OutOrStdout(), pdfmerge.BuildPlan(backend, filesystem, root, groups))
	}
	if len(groups) > 0 {
		pdfmerge.MergeAll(backend, filesystem, groups, p)
	}
	return nil
}

func printTools(tools []pdfmerge.Tool, p *term.Printer) {
	for _, t := range tools {
		switch {
		case t.Available:
			p.Done("available", "%s (%s)", t.Name, t.Bin)
		case t.Hint != "":
			p.Skip("missing", "%s (install with: %s)", t.Name, t.Hint)
		default:
			p.Skip("missing", "%s", t.Name)
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
