// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dirstore persists an ordered list of directory bookmarks to a
// JSON file. Entries are addressed only by their zero-based position, and
// positions shift down after a removal. Every mutation rewrites the whole
// file.
package dirstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/doctools/internal/apperr"
)

// MaxPaths is the store's capacity.
const MaxPaths = 100

// file is the on-disk layout: {"paths": [...]}.
type file struct {
	Paths []string `json:"paths"`
}

// Match is one search hit.
type Match struct {
	Index int    `json:"index" yaml:"index"`
	Path  string `json:"path" yaml:"path"`
}

// Store is the in-memory bookmark list bound to its backing file.
type Store struct {
	fs    afero.Fs
	path  string
	paths []string
	warn  io.Writer
}

// Option configures a Store.
type Option func(*Store)

// WithFs replaces the OS filesystem, for tests.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) { s.fs = fs }
}

// WithWarnings sets where non-fatal warnings go (default os.Stderr).
func WithWarnings(w io.Writer) Option {
	return func(s *Store) { s.warn = w }
}

// Open loads the store at path. A missing file yields an empty store; a
// file that does not decode is an apperr.ErrSerialization error.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		fs:   afero.NewOsFs(),
		path: path,
		warn: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of stored paths.
func (s *Store) Len() int { return len(s.paths) }

// Paths returns a copy of the stored paths in insertion order.
func (s *Store) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

func (s *Store) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.paths = make([]string, 0, MaxPaths)
			return nil
		}
		return fmt.Errorf("reading store file %s: %w", s.path, err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing store file %s: %w: %v", s.path, apperr.ErrSerialization, err)
	}
	s.paths = f.Paths
	if s.paths == nil {
		s.paths = make([]string, 0, MaxPaths)
	}
	return nil
}

// Save writes the full store, pretty-printed, creating the parent
// directory if needed. The content goes to a temp file that is renamed
// over the backing file.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(file{Paths: s.paths}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, ".dircli-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("writing store file %s: %w", s.path, err)
	}
	success = true
	return nil
}

// Add normalizes path, appends it and saves. A path that does not exist
// is still stored; a warning is written instead. It returns the stored
// value.
func (s *Store) Add(path string) (string, error) {
	if len(s.paths) >= MaxPaths {
		return "", fmt.Errorf("adding %s: %w (%d paths)", path, apperr.ErrStoreFull, MaxPaths)
	}

	path = Normalize(path)
	if ok, _ := afero.Exists(s.fs, path); !ok {
		fmt.Fprintf(s.warn, "warning: path does not exist: %s\n", path)
	}

	s.paths = append(s.paths, path)
	if err := s.Save(); err != nil {
		s.paths = s.paths[:len(s.paths)-1]
		return "", err
	}
	return path, nil
}

// Remove deletes the entry at index and saves. Later entries move down
// one position. It returns the removed value.
func (s *Store) Remove(index int) (string, error) {
	if err := s.checkIndex(index); err != nil {
		return "", err
	}

	prev := s.Paths()
	removed := s.paths[index]
	s.paths = append(s.paths[:index], s.paths[index+1:]...)
	if err := s.Save(); err != nil {
		s.paths = prev
		return "", err
	}
	return removed, nil
}

// Get returns the raw stored string at index, without normalizing or
// checking that it exists.
func (s *Store) Get(index int) (string, error) {
	if err := s.checkIndex(index); err != nil {
		return "", err
	}
	return s.paths[index], nil
}

// Search returns the entries containing keyword, ignoring case.
func (s *Store) Search(keyword string) []Match {
	keyword = strings.ToLower(keyword)
	var matches []Match
	for i, p := range s.paths {
		if strings.Contains(strings.ToLower(p), keyword) {
			matches = append(matches, Match{Index: i, Path: p})
		}
	}
	return matches
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.paths) {
		return fmt.Errorf("index %d: %w (store has %d paths)", index, apperr.ErrInvalidIndex, len(s.paths))
	}
	return nil
}
