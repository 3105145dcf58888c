// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mdconvert converts Markdown files to PDF by invoking an external
// typesetting compiler once per file. Inputs are a single file, a
// directory (non-recursive) or a glob pattern; see Resolve.
package mdconvert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doctools/internal/command"
	"github.com/pdiddy/doctools/internal/term"
)

// compileVerb is the compiler subcommand placed before input and output.
const compileVerb = "compile"

// Compiler turns one Markdown file into a PDF.
type Compiler interface {
	// Command returns the invocation Compile would run.
	Command(input, output string) command.Invocation

	// Compile produces output from input.
	Compile(input, output string) error
}

// TypstCompiler runs "<bin> compile <input> <output>".
type TypstCompiler struct {
	bin  string
	exec command.Executor
}

// NewTypstCompiler returns a compiler that runs bin through exec.
func NewTypstCompiler(bin string, exec command.Executor) *TypstCompiler {
	return &TypstCompiler{bin: bin, exec: exec}
}

func (c *TypstCompiler) Command(input, output string) command.Invocation {
	return command.Invocation{Name: c.bin, Args: []string{compileVerb, input, output}}
}

func (c *TypstCompiler) Compile(input, output string) error {
	inv := c.Command(input, output)
	if err := command.Passthrough(c.exec, inv.Name, inv.Args...); err != nil {
		return fmt.Errorf("compiling %s: %w", input, err)
	}
	return nil
}

// Options control a conversion run.
type Options struct {
	// OutputDir, when set, receives every PDF instead of the input's directory.
	OutputDir string
	// Force overwrites PDFs that already exist.
	Force bool
}

// Status is the outcome of one file.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// BatchResult holds the outcome of a conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	// Errors maps each failed input to its error.
	Errors map[string]error
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// OutputPath returns "<stem>.pdf" inside outputDir, or next to input when
// outputDir is empty.
func OutputPath(input, outputDir string) string {
	name := filepath.Base(input)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = "output"
	}
	pdf := stem + ".pdf"
	if outputDir != "" {
		return filepath.Join(outputDir, pdf)
	}
	return filepath.Join(filepath.Dir(input), pdf)
}

// exists reports whether path exists; errors other than not-exist count
// as existing so nothing is overwritten blindly.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// ConvertFile converts one file unless its PDF exists and opts.Force is
// false. The outcome is reported on p.
func ConvertFile(c Compiler, input string, opts Options, p *term.Printer) (Status, error) {
	output := OutputPath(input, opts.OutputDir)

	if exists(output) && !opts.Force {
		p.Skip("skipped", "%s (use -f to overwrite)", output)
		return StatusSkipped, nil
	}

	if err := c.Compile(input, output); err != nil {
		p.Fail("failed", "%s: %v", input, err)
		return StatusFailed, err
	}

	p.Done("converted", "%s -> %s", input, output)
	return StatusConverted, nil
}

// ConvertBatch converts every resolved file. A failing file is counted
// and the batch continues. The summary, followed by each failed file and
// its error, is printed on p.
func ConvertBatch(c Compiler, res Resolution, opts Options, p *term.Printer) BatchResult {
	result := BatchResult{Errors: make(map[string]error)}

	if len(res.Files) == 0 {
		p.Info("info", "%s", noFilesMessage(res))
		return result
	}

	for _, f := range res.Files {
		status, err := ConvertFile(c, f, opts, p)
		switch status {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
			result.Errors[f] = err
		}
	}

	p.Plain("\nBatch summary: %d converted, %d skipped, %d failed (total: %d)",
		result.Converted, result.Skipped, result.Failed, result.Total())
	if len(result.Errors) > 0 {
		p.Plain("Failed files:")
		for _, f := range res.Files {
			if err, ok := result.Errors[f]; ok {
				p.Plain("  %s: %v", f, err)
			}
		}
	}
	return result
}

func noFilesMessage(res Resolution) string {
	if res.Kind == KindGlob {
		return fmt.Sprintf("no matching markdown files found for pattern '%s'", res.Input)
	}
	return fmt.Sprintf("no markdown files found in %s", res.Input)
}
