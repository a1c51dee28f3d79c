package cli

import "github.com/commitcheck/commitcheck/internal/errors"

// Exit codes for the commitcheck CLI.
// Each failure kind maps to a distinct code so hooks and CI pipelines can
// tell "invalid message" apart from "nothing to check" or a broken setup.
const (
	// ExitSuccess indicates every checked commit passed.
	ExitSuccess = 0

	// ExitValidationFailed indicates one or more commit messages failed.
	ExitValidationFailed = 1

	// ExitNoCommitsFound indicates the commit selection was empty.
	ExitNoCommitsFound = 2

	// ExitInvalidArguments indicates an invalid flag combination.
	ExitInvalidArguments = 3

	// ExitConfigurationError indicates invalid or missing configuration.
	ExitConfigurationError = 4

	// ExitRuntimeError indicates an execution failure (I/O, git).
	ExitRuntimeError = 5
)

// exitCodeFor maps an error to its process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		return ExitRuntimeError
	}
	switch cliErr.Category {
	case errors.Validation:
		return ExitValidationFailed
	case errors.NoCommits:
		return ExitNoCommitsFound
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigurationError
	default:
		return ExitRuntimeError
	}
}
