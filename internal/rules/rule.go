// Package rules defines the pluggable commit-message convention contract.
// A Rule encapsulates one convention's grammar: the pattern that recognizes
// a conforming message, the per-message validator, and the failure report
// formatter. Concrete rules are registered by name and selected through
// configuration.
package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/commitcheck/commitcheck/internal/git"
)

// Rule is one commit-message convention. Implementations are resolved once
// per run from the registry; the check engine depends only on this interface.
type Rule interface {
	// Name returns the registry name of the rule.
	Name() string

	// SchemaPattern returns the regular expression source recognizing a
	// conforming message, or "" meaning no structural enforcement beyond
	// the non-empty check. The engine compiles it once per run with
	// CompilePattern.
	SchemaPattern() string

	// ValidateCommitMessage validates a single message. pattern is the
	// compiled SchemaPattern, or nil when the rule declares none.
	ValidateCommitMessage(message string, pattern *regexp.Regexp, allowAbort bool, allowedPrefixes []string, maxMessageLength int) Outcome

	// FormatFailureReport renders a human-readable summary of every failed
	// commit, including its revision id and raw message text.
	FormatFailureReport(failures []Failure) string
}

// Optional capabilities. A rule may document itself for the example, schema,
// and info commands; rules without a capability are reported as such.
type (
	// Exampler provides a conforming example message.
	Exampler interface {
		Example() string
	}
	// SchemaDescriber provides a one-line description of the message shape.
	SchemaDescriber interface {
		Schema() string
	}
	// Informer provides long-form documentation of the convention.
	Informer interface {
		Info() string
	}
)

// Outcome is the result of validating one commit message.
type Outcome struct {
	// Passed reports whether the message conforms.
	Passed bool
	// Reasons optionally details why validation failed. The built-in rules
	// leave it empty; custom rules may enrich it and the report formatter
	// includes it when present.
	Reasons []string
}

// Failure pairs a rejected commit with the validator's reasons.
type Failure struct {
	Commit  git.Commit
	Reasons []string
}

// CompilePattern compiles a schema pattern source, anchoring it at the start
// of the message. The match is a prefix match: the pattern does not have to
// consume the whole message.
func CompilePattern(src string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + src + ")")
	if err != nil {
		return nil, fmt.Errorf("compiling schema pattern: %w", err)
	}
	return re, nil
}

// Validate is the canonical validation algorithm shared by the built-in
// rules. The check order is load-bearing:
//
//  1. an empty message is valid exactly when allowAbort is set, and never
//     reaches the later checks;
//  2. a nil pattern accepts everything;
//  3. an allowed prefix exempts the message unconditionally, winning over
//     both the length limit and the pattern;
//  4. a first-line length violation fails before (and suppresses) the
//     pattern check;
//  5. otherwise the anchored pattern decides.
func Validate(message string, pattern *regexp.Regexp, allowAbort bool, allowedPrefixes []string, maxMessageLength int) Outcome {
	if message == "" {
		return Outcome{Passed: allowAbort}
	}

	if pattern == nil {
		return Outcome{Passed: true}
	}

	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(message, prefix) {
			return Outcome{Passed: true}
		}
	}

	if maxMessageLength > 0 {
		firstLine, _, _ := strings.Cut(message, "\n")
		if utf8.RuneCountInString(strings.TrimSpace(firstLine)) > maxMessageLength {
			return Outcome{Passed: false}
		}
	}

	return Outcome{Passed: pattern.MatchString(message)}
}

// FormatReport renders the shared failure report layout: a header, one line
// per offending commit quoting revision and raw message, each reason
// indented beneath its commit, and the schema pattern at the end.
func FormatReport(failures []Failure, format, patternSrc string) string {
	var sb strings.Builder
	sb.WriteString("commit validation: failed!\n")
	fmt.Fprintf(&sb, "please enter a commit message in the %s format.\n", format)
	for _, f := range failures {
		fmt.Fprintf(&sb, "commit %q: %q\n", f.Commit.Rev, f.Commit.Message())
		for _, reason := range f.Reasons {
			fmt.Fprintf(&sb, "  - %s\n", reason)
		}
	}
	fmt.Fprintf(&sb, "pattern: %s", patternSrc)
	return sb.String()
}
