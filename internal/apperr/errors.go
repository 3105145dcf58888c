// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apperr defines the error kinds shared by the dirnav, md2pdf and
// mergepdf tools. Callers wrap these sentinels with fmt.Errorf("...: %w")
// and match them with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound reports an input path or pattern that matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidIndex reports a bookmark index outside the stored range.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrStoreFull reports an add against a store already at capacity.
	ErrStoreFull = errors.New("store is full")

	// ErrSerialization reports a malformed bookmark file.
	ErrSerialization = errors.New("malformed store file")

	// ErrSubprocess reports an external tool that exited non-zero or
	// could not be launched.
	ErrSubprocess = errors.New("subprocess failed")

	// ErrToolUnavailable reports that no merge backend is installed.
	ErrToolUnavailable = errors.New("tool unavailable")
)
