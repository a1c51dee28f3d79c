// Package config tests hierarchical configuration loading and validation.
// Related: internal/config/config.go, internal/config/validate.go
// Tags: config, koanf, yaml, env, layering
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points the user config dir at an empty directory and clears
// the env overrides so tests only see what they set up themselves.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"COMMITCHECK_RULE", "COMMITCHECK_ALLOW_ABORT", "COMMITCHECK_ENCODING"} {
		os.Unsetenv(key)
	}
}

func writeProjectConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(t.TempDir(), "missing.yml"),
		SkipWarnings:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "conventional", cfg.Rule)
	assert.False(t, cfg.AllowAbort)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, []string{"Merge", "Revert", "Pull request", "fixup!", "squash!", "amend!"}, cfg.AllowedPrefixes)
	assert.True(t, cfg.Customize.IsZero())
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	isolateEnv(t)

	path := writeProjectConfig(t, `
rule: customize
allow_abort: true
allowed_prefixes:
  - WIP
customize:
  schema_pattern: "(feature|bugfix):(\\s.*)"
  example: "feature: add dark mode"
`)

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)

	assert.Equal(t, "customize", cfg.Rule)
	assert.True(t, cfg.AllowAbort)
	assert.Equal(t, []string{"WIP"}, cfg.AllowedPrefixes)
	assert.Equal(t, "utf-8", cfg.Encoding, "unset keys keep their defaults")
	assert.Equal(t, `(feature|bugfix):(\s.*)`, cfg.Customize.SchemaPattern)
	assert.Equal(t, "feature: add dark mode", cfg.Customize.Example)
}

func TestLoad_EnvironmentOverridesProject(t *testing.T) {
	isolateEnv(t)
	t.Setenv("COMMITCHECK_RULE", "customize")
	t.Setenv("COMMITCHECK_ALLOW_ABORT", "true")

	path := writeProjectConfig(t, "rule: conventional\n")

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)
	assert.Equal(t, "customize", cfg.Rule)
	assert.True(t, cfg.AllowAbort)
}

func TestLoad_LegacyJSONConfig(t *testing.T) {
	isolateEnv(t)
	t.Chdir(t.TempDir())

	require.NoError(t, os.MkdirAll(ProjectConfigDir(), 0o755))
	require.NoError(t, os.WriteFile(LegacyProjectConfigPath(), []byte(`{"allow_abort": true}`), 0o644))

	var warnings bytes.Buffer
	cfg, err := LoadWithOptions(LoadOptions{WarningWriter: &warnings})
	require.NoError(t, err)

	assert.True(t, cfg.AllowAbort)
	assert.Contains(t, warnings.String(), "deprecated JSON config")
	assert.Contains(t, warnings.String(), ProjectConfigPath())
}

func TestLoad_YAMLPreferredOverLegacy(t *testing.T) {
	isolateEnv(t)
	t.Chdir(t.TempDir())

	require.NoError(t, os.MkdirAll(ProjectConfigDir(), 0o755))
	require.NoError(t, os.WriteFile(ProjectConfigPath(), []byte("allow_abort: true\n"), 0o644))
	require.NoError(t, os.WriteFile(LegacyProjectConfigPath(), []byte(`{"allow_abort": false}`), 0o644))

	var warnings bytes.Buffer
	cfg, err := LoadWithOptions(LoadOptions{WarningWriter: &warnings})
	require.NoError(t, err)

	assert.True(t, cfg.AllowAbort, "YAML wins when both exist")
	assert.Contains(t, warnings.String(), "Legacy JSON config found")
}

func TestLoad_InvalidYAMLSyntax(t *testing.T) {
	isolateEnv(t)

	path := writeProjectConfig(t, "rule: [unclosed\n")

	_, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating YAML syntax")
}

func TestLoad_InvalidCustomizePattern(t *testing.T) {
	isolateEnv(t)

	path := writeProjectConfig(t, `
customize:
  schema_pattern: "(unclosed"
`)

	_, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customize.schema_pattern")
	assert.Contains(t, err.Error(), "invalid regular expression")
}

func TestGetDefaultConfigTemplate_IsValidConfig(t *testing.T) {
	isolateEnv(t)

	path := writeProjectConfig(t, GetDefaultConfigTemplate())

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)
	assert.Equal(t, "conventional", cfg.Rule)
	assert.Equal(t, GetDefaults()["allowed_prefixes"], cfg.AllowedPrefixes)
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  ValidationError
		want string
	}{
		"with position": {
			ValidationError{FilePath: "c.yml", Line: 5, Column: 3, Message: "bad indent"},
			"c.yml:5:3: bad indent",
		},
		"with field": {
			ValidationError{FilePath: "c.yml", Field: "encoding", Message: "is required"},
			"c.yml: field 'encoding': is required",
		},
		"message only": {
			ValidationError{FilePath: "c.yml", Message: "unreadable"},
			"c.yml: unreadable",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}
