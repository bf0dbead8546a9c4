// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session token goes to the OS
// keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"inventa/cli/internal/xdg"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is used when neither the config file nor the
// environment provides a base URL.
const DefaultAPIBaseURL = "https://api.inventa.app"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL string `json:"api_base_url"`
	LogLevel   string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults. A .env file in
// the working directory is honored, and the INVENTA_API_URL / INVENTA_LOG
// environment variables override whatever the file says.
func Load() (Config, error) {
	_ = godotenv.Load()

	c := Config{APIBaseURL: DefaultAPIBaseURL, LogLevel: "info"}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}

	if v := os.Getenv("INVENTA_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("INVENTA_LOG"); v != "" {
		c.LogLevel = v
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
