package errors

import "fmt"

// Common error messages for the commitcheck CLI.
// These templates ensure consistent, actionable error messages.

// ConflictingSelectionFlags creates an error for passing more than one (or,
// interactively, none) of the mutually exclusive commit selection flags.
func ConflictingSelectionFlags() *CLIError {
	return NewArgumentErrorWithUsage(
		"only one of --rev-range, --message, and --commit-msg-file is permitted",
		"commitcheck check [--message <msg> | --commit-msg-file <path> | --rev-range <range>]",
		"Pass exactly one selection flag",
		"Or pipe the message on stdin: git log -1 --pretty=%B | commitcheck check",
	)
}

// NoCommitsInRange creates an error for a revision range that resolved to
// zero commits.
func NoCommitsInRange(revRange string) *CLIError {
	return NewNoCommitsError(
		fmt.Sprintf("no commits found with range: %q", revRange),
		"Check the range with: git log "+revRange,
		"Ranges use git revision syntax, e.g. origin/main..HEAD",
	)
}

// UnknownRule creates an error for a configured rule name that is not in the
// registry.
func UnknownRule(name string, available []string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("unknown rule %q; available: %v", name, available),
		"Set 'rule' in .commitcheck/config.yml to a registered rule name",
	)
}

// UnreadableMessageFile creates an error for a commit message file that could
// not be read.
func UnreadableMessageFile(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("reading commit message file %s", path),
		"Check that the file exists and is readable",
	)
}

// RuleCapabilityMissing creates an error for a rule that does not implement
// an optional capability (example, schema, info).
func RuleCapabilityMissing(rule, capability string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("rule %q does not provide %s", rule, capability),
		"Switch to the 'conventional' rule, or extend the custom rule's config section",
	)
}
