// Package config provides hierarchical configuration management for
// commitcheck using koanf. Configuration is loaded with priority:
// environment variables > project config (.commitcheck/config.yml) >
// user config (~/.config/commitcheck/config.yml) > defaults. Legacy JSON
// project configs are still read, with a migration warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the commitcheck settings consumed by the check
// engine and the rule registry.
type Configuration struct {
	// Rule selects the registered rule that defines what a valid commit
	// message looks like. Default: "conventional".
	Rule string `koanf:"rule" validate:"required"`

	// AllowAbort treats an empty commit message as valid. Covers aborted
	// commits where the editor was closed without writing a message.
	AllowAbort bool `koanf:"allow_abort"`

	// AllowedPrefixes lists literal message prefixes that are exempt from
	// pattern and length checks, e.g. machine-generated merge commits.
	AllowedPrefixes []string `koanf:"allowed_prefixes"`

	// Encoding is the text encoding used when reading commit message files.
	Encoding string `koanf:"encoding" validate:"required"`

	// Customize configures the "customize" rule. Only consulted when Rule
	// selects it.
	Customize CustomizeConfig `koanf:"customize"`
}

// CustomizeConfig holds the user-defined grammar for the customize rule.
type CustomizeConfig struct {
	// SchemaPattern is the regular expression a message must match, anchored
	// at the start. Empty means no structural enforcement beyond non-empty.
	SchemaPattern string `koanf:"schema_pattern"`
	// Schema is a one-line description of the message shape.
	Schema string `koanf:"schema"`
	// Example is a conforming example message.
	Example string `koanf:"example"`
	// Info is long-form documentation shown by `commitcheck info`.
	Info string `koanf:"info"`
}

// IsZero reports whether no customize settings were provided at all.
func (c CustomizeConfig) IsZero() bool {
	return c.SchemaPattern == "" && c.Schema == "" && c.Example == "" && c.Info == ""
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default:
	// .commitcheck/config.yml).
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr.
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	userPath, err := UserConfigPath()
	if err != nil || !fileExists(userPath) {
		return nil
	}
	return loadYAMLConfig(k, userPath, "user")
}

// loadProjectConfig loads the project-level config (YAML preferred, legacy
// JSON supported with a migration warning). A custom path overrides the
// default location, mainly for tests.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	projectYAMLPath := ProjectConfigPath()
	if customPath != "" {
		projectYAMLPath = customPath
	}
	legacyProjectPath := LegacyProjectConfigPath()

	if fileExists(projectYAMLPath) {
		if err := loadYAMLConfig(k, projectYAMLPath, "project"); err != nil {
			return err
		}
		if fileExists(legacyProjectPath) && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n", legacyProjectPath, projectYAMLPath)
		}
		return nil
	}

	if fileExists(legacyProjectPath) {
		if err := k.Load(file.Provider(legacyProjectPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy project config %s: %w", legacyProjectPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyProjectPath)
			fmt.Fprintf(warningWriter, "  Move the settings to %s (YAML).\n\n", projectYAMLPath)
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
// Example: COMMITCHECK_ALLOW_ABORT=true -> allow_abort.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("COMMITCHECK_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: COMMITCHECK_ALLOW_ABORT -> allow_abort.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "COMMITCHECK_"))
}
