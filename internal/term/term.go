// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package term prints per-item status lines with a coloured label.
// Colour follows fatih/color's detection: it is off when the output is not
// a terminal or NO_COLOR is set.
package term

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
)

// Printer writes status lines to Out and warnings to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Printer. A nil err writer sends warnings to out.
func New(out, err io.Writer) *Printer {
	if err == nil {
		err = out
	}
	return &Printer{Out: out, Err: err}
}

// Done reports a completed item, e.g. "converted: a.md -> a.pdf".
func (p *Printer) Done(label, format string, args ...any) {
	p.line(p.Out, green, label, format, args...)
}

// Skip reports an item left alone.
func (p *Printer) Skip(label, format string, args ...any) {
	p.line(p.Out, yellow, label, format, args...)
}

// Fail reports an item that failed without aborting the run.
func (p *Printer) Fail(label, format string, args ...any) {
	p.line(p.Out, red, label, format, args...)
}

// Info reports progress that is neither success nor failure.
func (p *Printer) Info(label, format string, args ...any) {
	p.line(p.Out, cyan, label, format, args...)
}

// Warn writes a non-fatal warning to Err.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.Err, yellow, "warning", format, args...)
}

// Plain writes an uncoloured line to Out.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) line(w io.Writer, c *color.Color, label, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", c.Sprint(label+":"), fmt.Sprintf(format, args...))
}
