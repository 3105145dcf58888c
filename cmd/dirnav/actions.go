// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/pdiddy/doctools/internal/dirstore"
	"github.com/pdiddy/doctools/internal/term"
)

func addPath(s *dirstore.Store, path string, p *term.Printer) error {
	stored, err := s.Add(path)
	if err != nil {
		return err
	}
	p.Done("added", "%s", stored)
	return nil
}

func listPaths(s *dirstore.Store, p *term.Printer) {
	if s.Len() == 0 {
		p.Plain("No paths stored yet.")
		return
	}
	p.Plain("Stored paths:")
	for i, path := range s.Paths() {
		p.Plain("[%d] %s", i, path)
	}
}

func removePath(s *dirstore.Store, index int, p *term.Printer) error {
	removed, err := s.Remove(index)
	if err != nil {
		return err
	}
	p.Done("removed", "%s", removed)
	return nil
}

// navigate writes the raw stored path and nothing else, so the output can
// be captured by a shell.
func navigate(s *dirstore.Store, index int, w io.Writer) error {
	path, err := s.Get(index)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, path)
	return err
}

func searchPaths(s *dirstore.Store, keyword string, p *term.Printer) {
	matches := s.Search(keyword)
	if len(matches) == 0 {
		p.Plain("No match found for '%s'", keyword)
		return
	}
	for _, m := range matches {
		p.Plain("[%d] %s", m.Index, m.Path)
	}
}
