// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doctools/internal/apperr"
	"github.com/pdiddy/doctools/internal/command/commandtest"
)

// setup isolates config lookup, installs a recording executor and returns
// a canonical working directory.
func setup(t *testing.T) (string, *commandtest.Recorder) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	t.Setenv("HOME", t.TempDir())
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Chdir(dir)

	rec := commandtest.New("typst")
	prev := executor
	executor = rec
	t.Cleanup(func() { executor = prev })
	return dir, rec
}

func write(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("# title\n"), 0o644))
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertDirectory(t *testing.T) {
	dir, rec := setup(t)
	write(t, dir, "a.md", "b.md", "b.pdf", ".hidden.md", "notes.txt")

	out, _, err := execute(t, dir)
	require.NoError(t, err)

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, []string{"compile", filepath.Join(dir, "a.md"), filepath.Join(dir, "a.pdf")}, rec.Calls[0].Args)
	assert.Contains(t, out, "Batch summary: 1 converted, 1 skipped, 0 failed (total: 2)")
}

func TestConvertForce(t *testing.T) {
	dir, rec := setup(t)
	write(t, dir, "a.md", "a.pdf")

	_, _, err := execute(t, "a.md")
	require.NoError(t, err)
	assert.Empty(t, rec.Calls)

	_, _, err = execute(t, "-f", "a.md")
	require.NoError(t, err)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, []string{"compile", filepath.Join(dir, "a.md"), filepath.Join(dir, "a.pdf")}, rec.Calls[0].Args)
}

func TestConvertOutputDirCreated(t *testing.T) {
	dir, rec := setup(t)
	write(t, dir, "a.md")
	outDir := filepath.Join(dir, "build", "pdf")

	_, _, err := execute(t, "--output", outDir, "a.md")
	require.NoError(t, err)
	assert.DirExists(t, outDir)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, filepath.Join(outDir, "a.pdf"), rec.Calls[0].Args[2])
}

func TestConvertGlob(t *testing.T) {
	dir, rec := setup(t)
	write(t, dir, "a.md", "b.md", "c.txt")

	out, _, err := execute(t, "*.md")
	require.NoError(t, err)
	assert.Len(t, rec.Calls, 2)
	assert.Contains(t, out, "2 converted")

	out, _, err = execute(t, "*.rst")
	require.NoError(t, err)
	assert.Contains(t, out, "no matching markdown files found for pattern '*.rst'")
}

func TestBatchFailureStillSucceeds(t *testing.T) {
	dir, rec := setup(t)
	write(t, dir, "a.md", "b.md")
	rec.Failures["typst compile "+filepath.Join(dir, "a.md")+" "+filepath.Join(dir, "a.pdf")] = errors.New("exit status 1")

	out, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Len(t, rec.Calls, 2)
	assert.Contains(t, out, "1 converted, 0 skipped, 1 failed")
}

func TestSingleFileFailureIsFatal(t *testing.T) {
	dir, rec := setup(t)
	write(t, dir, "a.md")
	rec.Failures["typst"] = errors.New("exit status 1")

	_, errOut, err := execute(t, "a.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrSubprocess)
	assert.Contains(t, errOut, "Error:")
}

func TestMissingPath(t *testing.T) {
	_, _ = setup(t)

	_, _, err := execute(t, "missing.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDryRun(t *testing.T) {
	dir, rec := setup(t)
	write(t, dir, "a.md", "b.md", "b.pdf")

	out, _, err := execute(t, "--dry-run", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: directory")
	assert.Contains(t, out, "action: converted")
	assert.Contains(t, out, "action: skipped")

	_, _, err = execute(t, "--dry-run", "--output", "out", dir)
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
	assert.Empty(t, rec.Calls)
}

func TestRequiresOnePath(t *testing.T) {
	_, _ = setup(t)

	_, errOut, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, errOut, "accepts 1 arg(s)")
}
