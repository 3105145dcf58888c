// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for md2pdf, which converts Markdown files
// to PDF with the typst compiler.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doctools/internal/command"
	"github.com/pdiddy/doctools/internal/config"
	"github.com/pdiddy/doctools/internal/mdconvert"
	"github.com/pdiddy/doctools/internal/term"
)

// version is set at build time via ldflags.
var version = "dev"

// executor runs the compiler; tests replace it.
var executor = command.Default

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "md2pdf <path>",
		Short: "Convert Markdown files to PDF with typst",
		Long: `md2pdf converts Markdown to PDF by running "typst compile <in> <out>" for
each file. The path may be a single file, a directory (its .md files, not
recursive), or a glob pattern such as "notes/**/*.md".

Each PDF is written next to its source, or into --output. Existing PDFs
are skipped unless --force is given.`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE:    runConvert,
	}

	cmd.Flags().StringP("output", "o", "", "write PDFs into `dir` (created if missing)")
	cmd.Flags().BoolP("force", "f", false, "overwrite existing PDFs")
	cmd.Flags().Bool("dry-run", false, "print the conversion plan as YAML and exit")
	cmd.Flags().String("config", "", "config file (default: ./doctools.yaml or ~/.config/doctools/doctools.yaml)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts := mdconvert.Options{OutputDir: cfg.Convert.OutputDir}
	if cmd.Flags().Changed("output") {
		opts.OutputDir, _ = cmd.Flags().GetString("output")
	}
	opts.Force, _ = cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	p := term.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	res, err := mdconvert.Resolve(args[0], p)
	if err != nil {
		return err
	}
	compiler := mdconvert.NewTypstCompiler(cfg.Convert.Compiler, executor)

	if dryRun {
		return mdconvert.WritePlan(cmd.OutOrStdout(), mdconvert.BuildPlan(compiler, res, opts))
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", opts.OutputDir, err)
		}
	}

	if res.Kind == mdconvert.KindFile {
		if _, err := mdconvert.ConvertFile(compiler, res.Files[0], opts, p); err != nil {
			return fmt.Errorf("converting %s: %w", res.Files[0], err)
		}
		return nil
	}

	mdconvert.ConvertBatch(compiler, res, opts, p)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
