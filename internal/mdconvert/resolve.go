// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdconvert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pdiddy/doctools/internal/apperr"
	"github.com/pdiddy/doctools/internal/term"
)

// Kind records how an input string was interpreted.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
	KindGlob      Kind = "glob"
)

// Resolution is the set of candidate files an input expands to.
type Resolution struct {
	Input string   `yaml:"input"`
	Kind  Kind     `yaml:"kind"`
	Files []string `yaml:"files"`
}

// IsGlob reports whether input contains a glob metacharacter.
func IsGlob(input string) bool {
	return strings.ContainsAny(input, "*?[")
}

// Resolve expands input into candidate Markdown files.
//
// A glob is expanded and filtered. Anything else is canonicalized: a
// regular file is the only candidate whatever its extension, and a
// directory contributes its immediate children that pass the filter. The
// filter keeps regular files ending in ".md" whose name neither starts
// with "." nor contains "~". Entries that cannot be inspected are warned
// about on p and skipped.
func Resolve(input string, p *term.Printer) (Resolution, error) {
	if IsGlob(input) {
		files, err := resolveGlob(input, p)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Input: input, Kind: KindGlob, Files: files}, nil
	}

	path, err := canonicalize(input)
	if err != nil {
		return Resolution{}, fmt.Errorf("finding %s: %w: %v", input, apperr.ErrNotFound, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Resolution{}, fmt.Errorf("path %s: %w: %v", path, apperr.ErrNotFound, err)
	}

	switch {
	case info.Mode().IsRegular():
		return Resolution{Input: input, Kind: KindFile, Files: []string{path}}, nil
	case info.IsDir():
		files, err := resolveDir(path, p)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Input: input, Kind: KindDirectory, Files: files}, nil
	default:
		return Resolution{}, fmt.Errorf("path %s is not accessible: %w", path, apperr.ErrNotFound)
	}
}

func canonicalize(input string) (string, error) {
	abs, err := filepath.Abs(input)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func resolveGlob(pattern string, p *term.Printer) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		p.Warn("glob %q: %v", pattern, err)
	}

	var files []string
	for _, m := range matches {
		if keep(m, p) {
			files = append(files, m)
		}
	}
	return files, nil
}

func resolveDir(dir string, p *term.Printer) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if keep(path, p) {
			files = append(files, path)
		}
	}
	return files, nil
}

// keep applies the candidate filter to a glob match or directory entry.
func keep(path string, p *term.Printer) bool {
	name := filepath.Base(path)
	if filepath.Ext(name) != ".md" {
		return false
	}
	if !utf8.ValidString(name) {
		p.Warn("skipping file with non-UTF-8 name: %q", path)
		return false
	}
	if !IsCandidateName(name) {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		p.Warn("skipping %s: %v", path, err)
		return false
	}
	return info.Mode().IsRegular()
}

// IsCandidateName reports whether a file name passes the hidden and
// editor-temp exclusions.
func IsCandidateName(name string) bool {
	return !strings.HasPrefix(name, ".") && !strings.Contains(name, "~")
}
