// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dirstore

import (
	"os"
	"strings"
)

// Normalize rewrites directory separators to the host convention:
// backslashes become slashes on Unix, slashes become backslashes on
// Windows. Nothing else about the path changes.
func Normalize(path string) string {
	return normalizeFor(path, os.PathSeparator)
}

func normalizeFor(path string, sep rune) string {
	if sep == '\\' {
		return strings.ReplaceAll(path, "/", `\`)
	}
	return strings.ReplaceAll(path, `\`, "/")
}
