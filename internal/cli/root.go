// Package cli wires the commitcheck command tree. Commands construct the
// check engine from configuration and flags; error-to-exit-code mapping
// happens once, in Execute.
package cli

import (
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/config"
	"github.com/commitcheck/commitcheck/internal/errors"
	"github.com/commitcheck/commitcheck/internal/git"
	"github.com/commitcheck/commitcheck/internal/rules"
)

var (
	configPathFlag string
	debugFlag      bool
	noColorFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "commitcheck",
	Short: "Validate commit messages against a convention",
	Long: `commitcheck validates commit messages against a configurable
convention (conventional commits by default).

It checks a single message, a message file (commit-msg hook), a git
revision range, or text piped on stdin, and reports every offending
commit in one pass.`,
	Example: `  # As a commit-msg hook
  commitcheck check --commit-msg-file "$1"

  # Validate a branch before merging
  commitcheck check --rev-range origin/main..HEAD

  # Validate an ad-hoc message
  commitcheck check -m "feat(parser): add array support"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(log.Printf)
		}
		if noColorFlag {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to project config file (default .commitcheck/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// Execute runs the root command and returns the process exit code.
// All domain errors surface here; nothing below this point prints them.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		errors.PrintError(errors.Wrap(err, errors.Runtime))
	}
	return exitCodeFor(err)
}

// loadRule loads the configuration and resolves the configured rule.
// Shared by check, example, schema, info and rules.
func loadRule() (*config.Configuration, rules.Rule, error) {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.Configuration)
	}
	rule, err := rules.Resolve(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rule, nil
}
