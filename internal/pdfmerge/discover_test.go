// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfmerge

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doctools/internal/apperr"
)

func memFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("%PDF-1.7"), 0o644))
	}
	return fs
}

func TestCheckRoot(t *testing.T) {
	fs := memFs(t, "/scans/a.pdf")

	assert.NoError(t, CheckRoot(fs, "/scans"))
	assert.ErrorIs(t, CheckRoot(fs, "/missing"), apperr.ErrNotFound)

	err := CheckRoot(fs, "/scans/a.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestIsMergeOutput(t *testing.T) {
	tests := map[string]bool{
		"dirA_merged.pdf":  true,
		"dirA__merged.pdf": true,
		"X_MERGED.PDF":     true,
		"merged.pdf":       false,
		"report.pdf":       false,
		"_merged.pdf.bak":  false,
	}
	for name, want := range tests {
		assert.Equal(t, want, IsMergeOutput(name), name)
	}
}

func TestDiscover(t *testing.T) {
	fs := memFs(t,
		"/root/dirB/3.pdf",
		"/root/dirA/2.pdf",
		"/root/dirA/1.pdf",
		"/root/dirB/3_merged.pdf",
		"/root/dirC/old__merged.pdf",
		"/root/dirC/UPPER.PDF",
		"/root/dirC/notes.txt",
		"/root/dirC/deep/x.pdf",
		"/root/top.pdf",
	)
	p, _ := quietPrinter()

	got, err := Discover(fs, "/root", p)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/root/dirA/1.pdf",
		"/root/dirA/2.pdf",
		"/root/dirB/3.pdf",
		"/root/dirC/UPPER.PDF",
		"/root/dirC/deep/x.pdf",
		"/root/top.pdf",
	}, got)
}

func TestDiscoverEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))
	p, _ := quietPrinter()

	got, err := Discover(fs, "/empty", p)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGroupByDir(t *testing.T) {
	groups := GroupByDir([]string{
		"/root/dirA/1.pdf",
		"/root/dirA/2.pdf",
		"/root/dirB/3.pdf",
		"/root/top.pdf",
	})

	assert.Equal(t, []Group{
		{Dir: "/root", Files: []string{"/root/top.pdf"}},
		{Dir: "/root/dirA", Files: []string{"/root/dirA/1.pdf", "/root/dirA/2.pdf"}},
		{Dir: "/root/dirB", Files: []string{"/root/dirB/3.pdf"}},
	}, groups)

	assert.Empty(t, GroupByDir(nil))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "/root/dirA/dirA_merged.pdf", OutputPath("/root/dirA"))
	assert.Equal(t, "/merged_merged.pdf", OutputPath("/"))
	assert.Equal(t, "merged_merged.pdf", OutputPath("."))
}
