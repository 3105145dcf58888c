// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package term

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestPrinter(t *testing.T) {
	disableColor(t)

	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Done("converted", "%s -> %s", "a.md", "a.pdf")
	p.Skip("skipped", "%s (exists)", "b.pdf")
	p.Fail("failed", "%s", "c.md")
	p.Info("processing", "%d file(s)", 2)
	p.Plain("[%d] %s", 0, "/tmp")
	p.Warn("path does not exist: %s", "/nope")

	want := "converted: a.md -> a.pdf\n" +
		"skipped: b.pdf (exists)\n" +
		"failed: c.md\n" +
		"processing: 2 file(s)\n" +
		"[0] /tmp\n"
	if got := out.String(); got != want {
		t.Errorf("out = %q, want %q", got, want)
	}
	if got := errOut.String(); got != "warning: path does not exist: /nope\n" {
		t.Errorf("err = %q", got)
	}
}

func TestNewDefaultsErrToOut(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	New(&out, nil).Warn("x")
	if got := out.String(); got != "warning: x\n" {
		t.Errorf("out = %q, want %q", got, "warning: x\n")
	}
}
