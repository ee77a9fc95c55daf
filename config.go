package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/webabiq/webabiq/validate"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// SkipSplash jumps straight to the login screen
	SkipSplash bool `toml:"skip_splash"`
	// SplashDurationMS is how long the splash screen stays up, in milliseconds
	SplashDurationMS int `toml:"splash_duration_ms"`
	// AssetsDir is where the splash animation and logo are looked up
	AssetsDir string `toml:"assets_dir"`
	// CredentialsFile points at a TOML username/password table
	CredentialsFile string `toml:"credentials_file"`
	// Demo seeds the ledger with sample transactions on startup
	Demo bool `toml:"demo"`
	// Colors overrides the theme palette
	Colors Colors `toml:"colors"`
}

// Colors holds optional theme color overrides.
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Success       string `toml:"success"`
	Muted         string `toml:"muted"`
	Income        string `toml:"income"`
	Expense       string `toml:"expense"`
	Border        string `toml:"border"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// getConfigFilePaths returns the list of possible configuration file paths
// in order of precedence (first found wins).
func getConfigFilePaths() []string {
	var paths []string

	// Current directory (highest precedence)
	paths = append(paths, "webabiq.toml")

	// User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "webabiq", "config.toml"))
	}

	// User home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".webabiq.toml"))
		paths = append(paths, filepath.Join(homeDir, ".config", "webabiq", "config.toml"))
	}

	// System-wide config directory (lowest precedence)
	paths = append(paths, "/etc/webabiq/config.toml")

	return paths
}

// findConfigFile searches for a configuration file in the standard locations.
// Returns the path to the first existing config file, or empty string if none found.
func findConfigFile() string {
	for _, path := range getConfigFilePaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadCredentials reads a TOML username/password table. An empty path keeps
// the built-in table. A configured path that cannot be read or parsed is an
// error; credentials are the one asset that never silently degrades.
func loadCredentials(path string) (validate.Credentials, error) {
	if path == "" {
		return validate.DefaultCredentials(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	var table map[string]string
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("credentials file %s contains no entries", path)
	}

	return validate.Credentials(table), nil
}
