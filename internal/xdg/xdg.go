// Package xdg resolves XDG Base Directory paths for inventa, falling back
// to the conventional dot-directories under $HOME when the XDG environment
// variables are unset.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "inventa"

// ConfigDir returns the per-user configuration directory, creating it with
// private permissions if missing.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the per-user state directory, used for keyring files and
// other data that should survive between runs but is not configuration.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", ".local", "state")
}

func ensure(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // tokens live here
		return "", err
	}
	return dir, nil
}
