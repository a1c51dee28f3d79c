// Package errors provides structured error handling for the commitcheck CLI.
// Each error carries a category that the process boundary maps to a distinct
// exit code, plus optional remediation guidance for the user.
package errors

import "fmt"

// ErrorCategory represents the kind of failure that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by an invalid combination of command flags,
	// e.g. passing both --message and --rev-range to check.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid or missing configuration,
	// including selecting an unregistered rule.
	Configuration
	// NoCommits means the resolved commit selection was empty; this is
	// distinct from "checked and failed".
	NoCommits
	// Validation means one or more commit messages failed validation. The
	// message carries the full aggregate report, not just the first failure.
	Validation
	// Runtime errors occur during execution (unreadable files, git failures).
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case NoCommits:
		return "No Commits Found"
	case Validation:
		return "Validation Failed"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the kind of failure (Argument, Validation, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong. For
	// Validation errors this is the rule's full failure report.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates a new argument error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates an argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewNoCommitsError creates an error for an empty commit selection.
func NewNoCommitsError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    NoCommits,
		Message:     message,
		Remediation: remediation,
	}
}

// NewValidationError creates an error carrying the aggregate failure report
// produced by the active rule.
func NewValidationError(report string) *CLIError {
	return &CLIError{
		Category: Validation,
		Message:  report,
	}
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// IsCLIError checks if an error is a CLIError.
func IsCLIError(err error) bool {
	_, ok := err.(*CLIError)
	return ok
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
