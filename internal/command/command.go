// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package command runs the external tools the converters depend on
// (typst, qpdf, gs, the package installer). Every invocation goes through
// an Executor so tests can record argument shapes without the binaries
// installed.
package command

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pdiddy/doctools/internal/apperr"
)

// Executor abstracts process execution.
type Executor interface {
	// LookPath resolves file against PATH.
	LookPath(file string) (string, error)

	// Run starts name with args, wires the given writers to the child's
	// stdout and stderr, and blocks until it exits. A nil writer discards
	// that stream.
	Run(name string, args []string, stdout, stderr io.Writer) error
}

// Invocation is one recorded or planned call of an external tool.
type Invocation struct {
	Name string   `json:"name" yaml:"name"`
	Args []string `json:"args" yaml:"args"`
}

// String renders the invocation the way a shell user would type it.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Name
	}
	return i.Name + " " + strings.Join(i.Args, " ")
}

// OSExecutor is the production executor backed by os/exec.
type OSExecutor struct{}

func (OSExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (OSExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Default is the executor the CLIs use.
var Default Executor = OSExecutor{}

// ExitError describes a tool that exited non-zero or never started.
// It matches apperr.ErrSubprocess under errors.Is.
type ExitError struct {
	Invocation Invocation
	// Code is the exit status, or -1 when the process could not be started.
	Code   int
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	var b strings.Builder
	if e.Code < 0 {
		fmt.Fprintf(&b, "running %s: %v", e.Invocation.Name, e.Err)
	} else {
		fmt.Fprintf(&b, "%s exited with status %d", e.Invocation.Name, e.Code)
	}
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		fmt.Fprintf(&b, ": %s", msg)
	}
	return b.String()
}

func (e *ExitError) Unwrap() []error {
	return []error{apperr.ErrSubprocess, e.Err}
}

// Available reports whether bin can be found on PATH.
func Available(e Executor, bin string) bool {
	_, err := e.LookPath(bin)
	return err == nil
}

// Passthrough runs name with the caller's stdout and stderr attached, the
// way an interactive tool (typst, sudo dnf) expects.
func Passthrough(e Executor, name string, args ...string) error {
	if err := e.Run(name, args, os.Stdout, os.Stderr); err != nil {
		return newExitError(name, args, err, "")
	}
	return nil
}

// Captured runs name discarding stdout and collecting stderr; on failure
// the collected stderr is part of the returned *ExitError.
func Captured(e Executor, name string, args ...string) error {
	var stderr bytes.Buffer
	if err := e.Run(name, args, io.Discard, &stderr); err != nil {
		return newExitError(name, args, err, stderr.String())
	}
	return nil
}

func newExitError(name string, args []string, err error, stderr string) *ExitError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ExitError{
		Invocation: Invocation{Name: name, Args: args},
		Code:       code,
		Stderr:     stderr,
		Err:        err,
	}
}
