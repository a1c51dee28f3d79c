package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/commitcheck/commitcheck/internal/check"
	"github.com/commitcheck/commitcheck/internal/config"
	"github.com/commitcheck/commitcheck/internal/errors"
	"github.com/commitcheck/commitcheck/internal/git"
	"github.com/commitcheck/commitcheck/internal/output"
	"github.com/commitcheck/commitcheck/internal/progress"
	"github.com/commitcheck/commitcheck/internal/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate commit messages against the configured rule",
	Long: `Validate one or many commit messages against the configured rule.

Exactly one selection source may be given: an inline message, a message
file, or a revision range. With none, the message is read from stdin when
stdin is not a terminal. Every offending commit is reported, not just the
first.

Exit codes: 0 all passed, 1 validation failed, 2 no commits found,
3 invalid arguments, 4 configuration error, 5 runtime error.`,
	Example: `  # Validate the message git is about to record (commit-msg hook)
  commitcheck check --commit-msg-file .git/COMMIT_EDITMSG

  # Validate every commit on the branch
  commitcheck check --rev-range origin/main..HEAD

  # Validate an inline message with a subject length limit
  commitcheck check -m "feat: add dark mode" -l 72

  # Keep re-validating the file while editing it
  commitcheck check --commit-msg-file .git/COMMIT_EDITMSG --watch`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("commit-msg-file", "", "Path to a file containing the commit message to validate")
	checkCmd.Flags().StringP("message", "m", "", "Commit message to validate")
	checkCmd.Flags().String("rev-range", "", "Git revision range whose commits are validated (e.g. origin/main..HEAD)")
	checkCmd.Flags().Bool("allow-abort", false, "Treat an empty message (aborted commit) as valid")
	checkCmd.Flags().IntP("message-length-limit", "l", 0, "Maximum length of the message's first line (0 = unlimited)")
	checkCmd.Flags().StringSlice("allowed-prefixes", nil, "Prefixes exempt from validation (pass an empty value for no exemptions)")
	checkCmd.Flags().Bool("watch", false, "Re-validate the commit message file whenever it changes")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, rule, err := loadRule()
	if err != nil {
		return err
	}

	opts := optionsFromFlags(cmd.Flags())
	deps := check.Deps{
		Commits:  spinnerCommitReader{out: cmd.ErrOrStderr()},
		Reporter: output.NewConsole(cmd.OutOrStdout()),
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return runWatch(cmd, cfg, opts, rule, deps)
	}

	c, err := check.New(cfg, opts, rule, deps)
	if err != nil {
		return err
	}
	return c.Run()
}

// runWatch re-validates the message file on every write until interrupted.
// Failures are printed but do not end the watch; the final exit code is
// always success because the user is still editing.
func runWatch(cmd *cobra.Command, cfg *config.Configuration, opts check.Options, rule rules.Rule, deps check.Deps) error {
	if opts.CommitMsgFile == nil {
		return errors.NewArgumentErrorWithUsage(
			"--watch requires --commit-msg-file",
			"commitcheck check --commit-msg-file <path> --watch",
			"Watch mode re-reads a message file; inline and range selections have nothing to watch",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func() {
		c, err := check.New(cfg, opts, rule, deps)
		if err == nil {
			err = c.Run()
		}
		if err == nil {
			return
		}
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.FprintError(cmd.ErrOrStderr(), cliErr)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}

	return check.WatchFile(ctx, *opts.CommitMsgFile, runOnce)
}

// optionsFromFlags builds engine options, preserving the distinction
// between "flag not provided" (nil) and "provided, possibly empty".
func optionsFromFlags(flags *pflag.FlagSet) check.Options {
	var opts check.Options

	if flags.Changed("commit-msg-file") {
		v, _ := flags.GetString("commit-msg-file")
		opts.CommitMsgFile = &v
	}
	if flags.Changed("message") {
		v, _ := flags.GetString("message")
		opts.Message = &v
	}
	if flags.Changed("rev-range") {
		v, _ := flags.GetString("rev-range")
		opts.RevRange = &v
	}
	if flags.Changed("allow-abort") {
		v, _ := flags.GetBool("allow-abort")
		opts.AllowAbort = &v
	}
	if flags.Changed("allowed-prefixes") {
		v, _ := flags.GetStringSlice("allowed-prefixes")
		if v == nil {
			v = []string{}
		}
		opts.AllowedPrefixes = v
	}
	opts.MaxMessageLength, _ = flags.GetInt("message-length-limit")

	return opts
}

// spinnerCommitReader decorates the go-git commit reader with a progress
// spinner while a revision range is scanned. No-op when stderr is not a
// terminal.
type spinnerCommitReader struct {
	out io.Writer
}

func (s spinnerCommitReader) GetCommits(end string) ([]git.Commit, error) {
	caps := progress.DetectTerminalCapabilities()
	if sp := progress.NewScanSpinner(caps, s.out); sp != nil {
		sp.Start()
		defer sp.Stop()
	}
	return git.GetCommits(end)
}
