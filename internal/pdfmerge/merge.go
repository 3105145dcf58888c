// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfmerge merges the PDFs found under a directory tree into one
// file per directory, using qpdf or Ghostscript as the backend.
package pdfmerge

import (
	"errors"
	"os"

	"github.com/spf13/afero"

	"github.com/pdiddy/doctools/internal/term"
)

// Summary holds the outcome of a merge run.
type Summary struct {
	Merged  int
	Skipped int
	Failed  int
}

// MergeGroup merges one directory group. Groups with fewer than two files
// and groups whose output already exists are skipped; an existing output
// is never overwritten.
func MergeGroup(b Backend, fs afero.Fs, g Group, p *term.Printer) (merged bool, err error) {
	switch len(g.Files) {
	case 0:
		return false, nil
	case 1:
		p.Skip("skipped", "%s (only 1 PDF)", g.Dir)
		return false, nil
	}

	out := OutputPath(g.Dir)
	if outputExists(fs, out) {
		p.Skip("skipped", "output already exists: %s", out)
		return false, nil
	}

	p.Info("processing", "merging %d PDF(s) in %s", len(g.Files), g.Dir)
	if err := b.Merge(g.Files, out); err != nil {
		p.Fail("failed", "merging PDFs in %s: %v", g.Dir, err)
		return false, err
	}
	p.Done("merged", "%s", out)
	return true, nil
}

// MergeAll merges every group in order. A failing group is reported and
// the remaining groups still run.
func MergeAll(b Backend, fs afero.Fs, groups []Group, p *term.Printer) Summary {
	var s Summary
	for _, g := range groups {
		merged, err := MergeGroup(b, fs, g, p)
		switch {
		case err != nil:
			s.Failed++
		case merged:
			s.Merged++
		case len(g.Files) > 0:
			s.Skipped++
		}
	}

	switch {
	case s.Merged > 0:
		p.Plain("\nSuccessfully created %d merged PDF file(s)", s.Merged)
	case s.Failed > 0:
		p.Plain("\nNo merged PDFs created")
	default:
		p.Plain("\nNo directories with multiple PDFs found to merge.")
	}
	if s.Failed > 0 {
		p.Plain("%d group(s) failed to merge", s.Failed)
	}
	return s
}

// outputExists reports whether path exists. A stat error other than
// not-exist counts as existing, so an output is never overwritten blindly.
func outputExists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}
