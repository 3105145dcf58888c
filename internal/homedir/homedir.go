// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package homedir resolves the current user's home directory. The OS query
// differs per platform (profile folder on Windows, passwd/$HOME elsewhere);
// the implementation is picked at build time.
package homedir

import "fmt"

// Resolve returns the user's home directory.
func Resolve() (string, error) {
	dir, err := resolve()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return dir, nil
}

// fromEnv is the fallback used when the Windows profile query fails:
// USERPROFILE, then HOMEDRIVE+HOMEPATH, then the system drive root.
func fromEnv(getenv func(string) string) string {
	if p := getenv("USERPROFILE"); p != "" {
		return p
	}
	if drive := getenv("HOMEDRIVE"); drive != "" {
		if p := getenv("HOMEPATH"); p != "" {
			return drive + p
		}
	}
	return `C:\`
}
