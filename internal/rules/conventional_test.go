// Package rules tests the conventional commits rule and the registry.
// Related: internal/rules/conventional.go, internal/rules/registry.go
// Tags: rules, conventional, registry
package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitcheck/commitcheck/internal/config"
	"github.com/commitcheck/commitcheck/internal/errors"
)

func TestConventionalPattern(t *testing.T) {
	t.Parallel()

	rule := &Conventional{}
	pattern, err := CompilePattern(rule.SchemaPattern())
	require.NoError(t, err)

	tests := map[string]struct {
		message string
		want    bool
	}{
		"plain type":                      {"feat: add dark mode", true},
		"type with scope":                 {"fix(parser): handle empty arrays", true},
		"breaking change marker":          {"feat!: drop v1 endpoints", true},
		"scoped breaking change":          {"refactor(api)!: rename fields", true},
		"body after blank line":           {"chore: bump deps\n\nroutine maintenance", true},
		"multi paragraph body":            {"fix: races\n\nfirst paragraph\n\nsecond paragraph", true},
		"all known types accepted":        {"revert: feat: add dark mode", true},
		"missing space after colon":       {"feat:no space", false},
		"unknown type":                    {"feature: add dark mode", false},
		"capitalized type":                {"Feat: add dark mode", false},
		"no colon":                        {"feat add dark mode", false},
		"body without separating blank":   {"feat: subject\nbody on next line", false},
		"empty subject":                   {"feat: ", false},
		"scope with whitespace forbidden": {"feat(two words): subject", false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			outcome := rule.ValidateCommitMessage(tc.message, pattern, false, nil, 0)
			assert.Equal(t, tc.want, outcome.Passed, "message: %q", tc.message)
		})
	}
}

func TestConventionalCapabilities(t *testing.T) {
	t.Parallel()

	rule := &Conventional{}
	assert.Equal(t, "conventional", rule.Name())

	// The rule documents itself for the example, schema and info commands.
	var (
		_ Exampler        = rule
		_ SchemaDescriber = rule
		_ Informer        = rule
	)
	assert.NotEmpty(t, rule.Example())
	assert.NotEmpty(t, rule.Schema())
	assert.Contains(t, rule.Info(), "BREAKING CHANGE")

	report := rule.FormatFailureReport(nil)
	assert.True(t, strings.HasPrefix(report, "commit validation: failed!"))
	assert.Contains(t, report, "conventional commits format")
}

func TestResolve(t *testing.T) {
	t.Parallel()

	rule, err := Resolve(&config.Configuration{Rule: "conventional"})
	require.NoError(t, err)
	assert.Equal(t, "conventional", rule.Name())

	_, err = Resolve(&config.Configuration{Rule: "nonexistent"})
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Configuration, cliErr.Category)
	assert.Contains(t, cliErr.Message, `unknown rule "nonexistent"`)
	assert.Contains(t, cliErr.Message, "conventional")
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.Contains(t, names, "conventional")
	assert.Contains(t, names, "customize")
	assert.IsIncreasing(t, names)
}
