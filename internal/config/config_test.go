// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doctools/pkg/types"
)

// isolate points HOME at an empty directory and clears the overrides so a
// developer's own config cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(StoreEnv, "")
	t.Setenv("DOCTOOLS_STORE_PATH", "")
	return home
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doctools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Store.Path)
	assert.Equal(t, "typst", cfg.Convert.Compiler)
	assert.Equal(t, "qpdf", cfg.Merge.Qpdf)
	assert.Equal(t, "gs", cfg.Merge.Ghostscript)
	assert.Equal(t, []string{"sudo", "dnf", "install", "-y", "qpdf"}, cfg.Merge.Installer)
}

func TestLoadStoreEnv(t *testing.T) {
	isolate(t)
	t.Setenv(StoreEnv, "/tmp/bookmarks.json")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bookmarks.json", cfg.Store.Path)
}

func TestLoadPrefixedEnv(t *testing.T) {
	isolate(t)
	t.Setenv("DOCTOOLS_CONVERT_COMPILER", "/opt/typst/bin/typst")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "/opt/typst/bin/typst", cfg.Convert.Compiler)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
store:
  path: /data/dirs.json
convert:
  output_dir: /data/pdf
merge:
  ghostscript: gswin64c
  installer: [apt-get, install, -y, qpdf]
`)

	var stderr bytes.Buffer
	cfg, err := Load(path, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "/data/dirs.json", cfg.Store.Path)
	assert.Equal(t, "/data/pdf", cfg.Convert.OutputDir)
	assert.Equal(t, "typst", cfg.Convert.Compiler)
	assert.Equal(t, "gswin64c", cfg.Merge.Ghostscript)
	assert.Equal(t, []string{"apt-get", "install", "-y", "qpdf"}, cfg.Merge.Installer)
	assert.Contains(t, stderr.String(), "Using config file:")
}

func TestLoadEnvBeatsConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "store:\n  path: /from/file.json\n")
	t.Setenv(StoreEnv, "/from/env.json")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.json", cfg.Store.Path)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		file    string
		errMsg  string
	}{
		{
			name:    "blank compiler",
			content: "convert:\n  compiler: \"\"\n",
			errMsg:  "invalid config",
		},
		{
			name:    "blank qpdf",
			content: "merge:\n  qpdf: \"\"\n",
			errMsg:  "invalid config",
		},
		{
			name:   "explicit file missing",
			file:   filepath.Join(os.TempDir(), "doctools-missing-5b1e.yaml"),
			errMsg: "reading config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := tt.file
			if path == "" {
				path = writeConfig(t, tt.content)
			}
			_, err := Load(path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestStorePath(t *testing.T) {
	home := func() (string, error) { return "/home/ada", nil }

	got, err := StorePath(types.StoreConfig{}, home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/ada", ".dircli_store.json"), got)

	got, err = StorePath(types.StoreConfig{Path: "/custom/store.json"}, home)
	require.NoError(t, err)
	assert.Equal(t, "/custom/store.json", got)

	_, err = StorePath(types.StoreConfig{}, func() (string, error) { return "", errors.New("no home") })
	assert.Error(t, err)
}
