package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/commitcheck/config.yml
// - macOS: ~/Library/Application Support/commitcheck/config.yml
// - Windows: %APPDATA%\commitcheck\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "commitcheck", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .commitcheck/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".commitcheck", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".commitcheck"
}

// LegacyProjectConfigPath returns the path to the legacy project-level JSON
// config file: .commitcheck/config.json
func LegacyProjectConfigPath() string {
	return filepath.Join(".commitcheck", "config.json")
}
