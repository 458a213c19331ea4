// Package config resolves the base tries directory.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultBaseDir is where tries live when nothing else is configured.
const DefaultBaseDir = "~/src/tries"

// BasePath resolves the base directory, in precedence order: the --path
// flag, the TRY_PATH environment variable, then the default. A leading
// "~/" is expanded against the user's home directory.
func BasePath(flagPath string) string {
	return basePathFrom(flagPath, os.Getenv, os.UserHomeDir)
}

func basePathFrom(flagPath string, getenv func(string) string, home func() (string, error)) string {
	p := flagPath
	if p == "" {
		p = getenv("TRY_PATH")
	}
	if p == "" {
		p = DefaultBaseDir
	}
	return expandHome(p, home)
}

// ExpandHome replaces a leading "~/" with the user's home directory. The
// path is returned unchanged when it has no tilde or the home directory
// is unknown.
func ExpandHome(p string) string {
	return expandHome(p, os.UserHomeDir)
}

func expandHome(p string, home func() (string, error)) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	h, err := home()
	if err != nil || h == "" {
		return p
	}
	return filepath.Join(h, p[2:])
}
