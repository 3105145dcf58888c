// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package homedir

import gohomedir "github.com/mitchellh/go-homedir"

func init() {
	// $HOME can change between calls in tests.
	gohomedir.DisableCache = true
}

func resolve() (string, error) {
	return gohomedir.Dir()
}
