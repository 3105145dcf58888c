// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package homedir

import (
	"os"

	"golang.org/x/sys/windows"
)

func resolve() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_Profile, 0)
	if err != nil || dir == "" {
		return fromEnv(os.Getenv), nil
	}
	return dir, nil
}
