// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfmerge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/doctools/internal/apperr"
	"github.com/pdiddy/doctools/internal/term"
)

// mergedSuffix marks files written by a previous run ("x_merged.pdf" and
// "x__merged.pdf" both end with it).
const mergedSuffix = "_merged.pdf"

// Group is the set of PDFs sharing one parent directory.
type Group struct {
	Dir   string   `yaml:"dir"`
	Files []string `yaml:"files"`
}

// CheckRoot verifies root exists and is a directory.
func CheckRoot(fs afero.Fs, root string) error {
	info, err := fs.Stat(root)
	if err != nil {
		return fmt.Errorf("directory %s does not exist: %w", root, apperr.ErrNotFound)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory: %w", root, apperr.ErrNotFound)
	}
	return nil
}

// IsMergeOutput reports whether name looks like a previous merge output.
func IsMergeOutput(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), mergedSuffix)
}

// Discover walks root and returns every regular .pdf file (extension
// matched case-insensitively) that is not a merge output, sorted
// lexicographically. Entries that cannot be read are warned about and
// skipped.
func Discover(fs afero.Fs, root string, p *term.Printer) ([]string, error) {
	var pdfs []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			p.Warn("skipping %s: %v", path, err)
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		name := info.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") || IsMergeOutput(name) {
			return nil
		}
		pdfs = append(pdfs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(pdfs)
	return pdfs, nil
}

// GroupByDir partitions sorted paths by parent directory. Groups are
// ordered by directory and keep the input order of their files.
func GroupByDir(paths []string) []Group {
	byDir := make(map[string][]string)
	for _, p := range paths {
		dir := filepath.Dir(p)
		byDir[dir] = append(byDir[dir], p)
	}

	groups := make([]Group, 0, len(byDir))
	for dir, files := range byDir {
		groups = append(groups, Group{Dir: dir, Files: files})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Dir < groups[j].Dir })
	return groups
}

// OutputPath returns "<dir>/<base of dir>_merged.pdf".
func OutputPath(dir string) string {
	base := filepath.Base(dir)
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "merged"
	}
	return filepath.Join(dir, base+mergedSuffix)
}
