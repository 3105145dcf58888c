// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package commandtest provides a recording command.Executor for tests.
package commandtest

import (
	"errors"
	"io"
	"strings"

	"github.com/pdiddy/doctools/internal/command"
)

// Recorder implements command.Executor. It records every Run call and
// answers LookPath from a fixed set of installed binaries.
type Recorder struct {
	// Installed lists the binaries LookPath finds.
	Installed map[string]bool

	// Failures maps a binary name, or a full "name arg1 arg2" line, to the
	// error Run returns for it.
	Failures map[string]error

	// Stderr is written to the child's stderr writer on a failing Run.
	Stderr string

	// OnRun, when set, is called for every Run before the failure lookup.
	OnRun func(name string, args []string)

	Calls []command.Invocation
}

// New returns a Recorder with the given binaries installed.
func New(installed ...string) *Recorder {
	r := &Recorder{
		Installed: make(map[string]bool),
		Failures:  make(map[string]error),
	}
	for _, bin := range installed {
		r.Installed[bin] = true
	}
	return r
}

func (r *Recorder) LookPath(file string) (string, error) {
	if r.Installed[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH: " + file)
}

func (r *Recorder) Run(name string, args []string, stdout, stderr io.Writer) error {
	r.Calls = append(r.Calls, command.Invocation{Name: name, Args: append([]string(nil), args...)})
	if r.OnRun != nil {
		r.OnRun(name, args)
	}

	err, ok := r.Failures[name+" "+strings.Join(args, " ")]
	if !ok {
		err, ok = r.Failures[name]
	}
	if !ok {
		return nil
	}
	if stderr != nil && r.Stderr != "" {
		_, _ = io.WriteString(stderr, r.Stderr)
	}
	return err
}

// CallsTo returns the recorded invocations of name.
func (r *Recorder) CallsTo(name string) []command.Invocation {
	var out []command.Invocation
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
