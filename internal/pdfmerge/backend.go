// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfmerge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/doctools/internal/apperr"
	"github.com/pdiddy/doctools/internal/command"
	"github.com/pdiddy/doctools/internal/term"
	"github.com/pdiddy/doctools/pkg/types"
)

// Backend merges a list of PDFs into one file with an external tool.
type Backend interface {
	// Name returns the backend name ("qpdf" or "ghostscript").
	Name() types.MergeBackend

	// Available reports whether the backend binary is on PATH.
	Available() bool

	// Command returns the invocation Merge would run.
	Command(inputs []string, output string) command.Invocation

	// Merge writes the pages of inputs, in order, to output.
	Merge(inputs []string, output string) error
}

// backend implements Backend for one binary. qpdf and Ghostscript share
// everything except the name and how arguments are laid out.
type backend struct {
	name types.MergeBackend
	bin  string
	args func(inputs []string, output string) []string
	exec command.Executor
}

func (b *backend) Name() types.MergeBackend { return b.name }

func (b *backend) Available() bool {
	return command.Available(b.exec, b.bin)
}

func (b *backend) Command(inputs []string, output string) command.Invocation {
	return command.Invocation{Name: b.bin, Args: b.args(inputs, output)}
}

func (b *backend) Merge(inputs []string, output string) error {
	if len(inputs) == 0 {
		return errors.New("no input PDFs provided")
	}
	inv := b.Command(inputs, output)
	if err := command.Captured(b.exec, inv.Name, inv.Args...); err != nil {
		return fmt.Errorf("%s failed: %w", b.name, err)
	}
	return nil
}

// qpdfArgs concatenates every page of every input:
// --empty --pages <in1> 1-z <in2> 1-z ... -- <output>
func qpdfArgs(inputs []string, output string) []string {
	args := make([]string, 0, 2*len(inputs)+4)
	args = append(args, "--empty", "--pages")
	for _, in := range inputs {
		args = append(args, in, "1-z")
	}
	return append(args, "--", output)
}

// ghostscriptArgs rewrites the inputs through the pdfwrite device.
func ghostscriptArgs(inputs []string, output string) []string {
	args := []string{"-dBATCH", "-dNOPAUSE", "-q", "-sDEVICE=pdfwrite", "-sOutputFile=" + output}
	return append(args, inputs...)
}

// NewQpdf returns the primary backend.
func NewQpdf(bin string, exec command.Executor) Backend {
	return &backend{name: types.BackendQpdf, bin: bin, args: qpdfArgs, exec: exec}
}

// NewGhostscript returns the alternate backend.
func NewGhostscript(bin string, exec command.Executor) Backend {
	return &backend{name: types.BackendGhostscript, bin: bin, args: ghostscriptArgs, exec: exec}
}

// SelectOptions mirror the mergepdf flags.
type SelectOptions struct {
	// ForceGhostscript skips qpdf entirely (-g).
	ForceGhostscript bool
	// NoInstall skips the qpdf install attempt (-n).
	NoInstall bool
}

// SelectBackend picks the merge backend. With ForceGhostscript, gs must be
// present. Otherwise qpdf is preferred; when it is missing the installer
// is tried (unless NoInstall or no installer is configured) and qpdf is
// checked again; then gs is the fallback. No backend at all is an
// apperr.ErrToolUnavailable error.
func SelectBackend(exec command.Executor, cfg types.MergeConfig, opts SelectOptions, p *term.Printer) (Backend, error) {
	qpdf := NewQpdf(cfg.Qpdf, exec)
	gs := NewGhostscript(cfg.Ghostscript, exec)

	if opts.ForceGhostscript {
		if gs.Available() {
			return gs, nil
		}
		return nil, fmt.Errorf("ghostscript (%s) not found, install it with: sudo dnf install ghostscript: %w",
			cfg.Ghostscript, apperr.ErrToolUnavailable)
	}

	if qpdf.Available() {
		return qpdf, nil
	}

	if !opts.NoInstall && len(cfg.Installer) > 0 {
		p.Info("note", "%s not found, attempting to install: %s", cfg.Qpdf, strings.Join(cfg.Installer, " "))
		if err := command.Passthrough(exec, cfg.Installer[0], cfg.Installer[1:]...); err != nil {
			p.Warn("installing qpdf failed: %v", err)
		}
		if qpdf.Available() {
			return qpdf, nil
		}
	}

	if gs.Available() {
		p.Info("note", "%s unavailable, using ghostscript (%s) instead", cfg.Qpdf, cfg.Ghostscript)
		return gs, nil
	}

	return nil, fmt.Errorf("neither %s nor %s is installed: %w", cfg.Qpdf, cfg.Ghostscript, apperr.ErrToolUnavailable)
}

// Tool is one row of the tool availability report.
type Tool struct {
	Name      string `yaml:"name"`
	Bin       string `yaml:"bin"`
	Available bool   `yaml:"available"`
	Hint      string `yaml:"hint,omitempty"`
}

// ListTools reports which PDF merge tools are installed. pdftk is listed
// for reference; it is not a backend.
func ListTools(exec command.Executor, cfg types.MergeConfig) []Tool {
	tools := []Tool{
		{Name: "qpdf", Bin: cfg.Qpdf, Hint: "sudo dnf install qpdf"},
		{Name: "pdftk", Bin: "pdftk"},
		{Name: "ghostscript", Bin: cfg.Ghostscript, Hint: "sudo dnf install ghostscript"},
	}
	for i := range tools {
		tools[i].Available = command.Available(exec, tools[i].Bin)
	}
	return tools
}
