package rules

import (
	"regexp"

	"github.com/commitcheck/commitcheck/internal/config"
)

// conventionalPattern recognizes a Conventional Commits message:
// a known type, an optional (scope), an optional breaking-change !, a
// colon-space separated subject, and an optional blank-line separated body.
// (?s) lets the body part span newlines.
const conventionalPattern = `(?s)` +
	`(build|ci|docs|feat|fix|perf|refactor|style|test|chore|revert|bump)` +
	`(\(\S+\))?!?:` +
	`( [^\n\r]+)` +
	`((\n\n.*)|(\s*))?$`

func init() {
	Register("conventional", func(*config.Configuration) (Rule, error) {
		return &Conventional{}, nil
	})
}

// Conventional is the default rule, implementing the Conventional Commits
// specification (https://www.conventionalcommits.org).
type Conventional struct{}

// Name implements Rule.
func (c *Conventional) Name() string { return "conventional" }

// SchemaPattern implements Rule.
func (c *Conventional) SchemaPattern() string { return conventionalPattern }

// ValidateCommitMessage implements Rule with the canonical algorithm.
func (c *Conventional) ValidateCommitMessage(message string, pattern *regexp.Regexp, allowAbort bool, allowedPrefixes []string, maxMessageLength int) Outcome {
	return Validate(message, pattern, allowAbort, allowedPrefixes, maxMessageLength)
}

// FormatFailureReport implements Rule.
func (c *Conventional) FormatFailureReport(failures []Failure) string {
	return FormatReport(failures, "conventional commits", c.SchemaPattern())
}

// Example implements Exampler.
func (c *Conventional) Example() string {
	return "fix: correct minor typos in code\n" +
		"\n" +
		"see the issue for details on the typos fixed\n" +
		"\n" +
		"closes issue #12"
}

// Schema implements SchemaDescriber.
func (c *Conventional) Schema() string {
	return "<type>(<scope>): <subject>\n<BLANK LINE>\n<body>\n<BLANK LINE>\n(BREAKING CHANGE: )<footer>"
}

// Info implements Informer.
func (c *Conventional) Info() string {
	return `The commit contains the following structural elements, to communicate
intent to the consumers of your library:

fix: a commit of the type fix patches a bug in your codebase.
feat: a commit of the type feat introduces a new feature to the codebase.
BREAKING CHANGE: a commit that has the text BREAKING CHANGE: at the
beginning of its optional body or footer section, or appends ! after the
type/scope, introduces a breaking API change.

Others: commit types other than fix: and feat: are allowed, for example
build:, ci:, docs:, style:, refactor:, perf:, test:, chore:, revert: and
bump:.

A scope may be provided to a commit's type, to provide additional
contextual information, and is contained within parenthesis,
e.g. feat(parser): add ability to parse arrays.`
}
