// Package check implements the commit-message check engine. It resolves
// which commits to validate (inline message, message file, revision range,
// or piped stdin), runs the configured rule over each one, and aggregates
// failures into a single report. The whole check is one synchronous pass;
// validation of one commit never affects another.
package check

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/commitcheck/commitcheck/internal/config"
	cerrors "github.com/commitcheck/commitcheck/internal/errors"
	"github.com/commitcheck/commitcheck/internal/git"
	"github.com/commitcheck/commitcheck/internal/output"
	"github.com/commitcheck/commitcheck/internal/rules"
)

// CommitReader lists the commits selected by a revision range. The default
// implementation walks the repository with go-git; tests and decorators
// (like the CLI's spinner) substitute their own.
type CommitReader interface {
	GetCommits(end string) ([]git.Commit, error)
}

// CommitReaderFunc adapts a function to the CommitReader interface.
type CommitReaderFunc func(end string) ([]git.Commit, error)

// GetCommits implements CommitReader.
func (f CommitReaderFunc) GetCommits(end string) ([]git.Commit, error) {
	return f(end)
}

// Options selects what to check and under which policy. The three selection
// fields are mutually exclusive; a nil pointer means "not provided", which
// is distinct from a pointer to an empty string.
type Options struct {
	// CommitMsgFile reads the message from a file (e.g. a commit-msg hook's
	// $1). Filtered for editor comments before validation.
	CommitMsgFile *string
	// Message validates the given text directly. Filtered like a file.
	Message *string
	// RevRange validates every commit in a git revision range. Messages
	// from history are not comment-filtered; git already stripped them.
	RevRange *string

	// AllowAbort overrides the configured empty-message tolerance when
	// non-nil.
	AllowAbort *bool
	// MaxMessageLength limits the trimmed first line of the message, in
	// runes. 0 means unlimited.
	MaxMessageLength int
	// AllowedPrefixes overrides the configured exemption prefixes. nil
	// means "use the configured default"; an empty slice means "no
	// exemptions".
	AllowedPrefixes []string
	// Encoding overrides the configured text encoding for file reads.
	Encoding string
}

// Deps are the engine's external collaborators. Zero values are filled with
// production defaults by New.
type Deps struct {
	// Commits lists commits for RevRange mode.
	Commits CommitReader
	// Stdin is read in full when no selection flag is given and the input
	// stream is not interactive.
	Stdin io.Reader
	// StdinIsTerminal reports whether the input stream is an interactive
	// terminal. Injected so tests can exercise the fallback.
	StdinIsTerminal func() bool
	// Reporter receives the success notification.
	Reporter output.Reporter
}

// Check validates one or many commit messages against a rule.
type Check struct {
	opts Options
	rule rules.Rule
	deps Deps

	allowAbort      bool
	allowedPrefixes []string
	encoding        string
}

// New builds a check, filling default collaborators and validating the
// selection arguments. Exactly one selection source must be provided; with
// none, the engine falls back to reading stdin when it is not an
// interactive terminal, and fails with an argument error otherwise.
func New(cfg *config.Configuration, opts Options, rule rules.Rule, deps Deps) (*Check, error) {
	if deps.Commits == nil {
		deps.Commits = CommitReaderFunc(git.GetCommits)
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.StdinIsTerminal == nil {
		deps.StdinIsTerminal = func() bool {
			return output.IsInteractive(os.Stdin.Fd())
		}
	}
	if deps.Reporter == nil {
		deps.Reporter = output.NewConsole(nil)
	}

	provided := 0
	for _, arg := range []*string{opts.CommitMsgFile, opts.Message, opts.RevRange} {
		if arg != nil {
			provided++
		}
	}
	if provided == 0 && !deps.StdinIsTerminal() {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return nil, cerrors.WrapWithMessage(err, cerrors.Runtime, "reading standard input")
		}
		msg := string(data)
		opts.Message = &msg
	} else if provided != 1 {
		return nil, cerrors.ConflictingSelectionFlags()
	}

	c := &Check{
		opts:            opts,
		rule:            rule,
		deps:            deps,
		allowAbort:      cfg.AllowAbort,
		allowedPrefixes: cfg.AllowedPrefixes,
		encoding:        cfg.Encoding,
	}
	if opts.AllowAbort != nil {
		c.allowAbort = *opts.AllowAbort
	}
	if opts.AllowedPrefixes != nil {
		c.allowedPrefixes = opts.AllowedPrefixes
	}
	if opts.Encoding != "" {
		c.encoding = opts.Encoding
	}
	return c, nil
}

// Run validates every selected commit in source order and aggregates the
// failures. It returns a NoCommits error for an empty selection, a
// Validation error carrying the rule's full report when any commit fails,
// and notifies the Reporter on success.
func (c *Check) Run() error {
	commits, err := c.resolveCommits()
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		return cerrors.NoCommitsInRange(stringOr(c.opts.RevRange, ""))
	}

	var pattern *regexp.Regexp
	if src := c.rule.SchemaPattern(); src != "" {
		pattern, err = rules.CompilePattern(src)
		if err != nil {
			return cerrors.WrapWithMessage(err, cerrors.Configuration, fmt.Sprintf("rule %q", c.rule.Name()))
		}
	}

	var failures []rules.Failure
	for _, commit := range commits {
		outcome := c.rule.ValidateCommitMessage(
			commit.Message(),
			pattern,
			c.allowAbort,
			c.allowedPrefixes,
			c.opts.MaxMessageLength,
		)
		if !outcome.Passed {
			failures = append(failures, rules.Failure{Commit: commit, Reasons: outcome.Reasons})
		}
	}

	if len(failures) > 0 {
		return cerrors.NewValidationError(c.rule.FormatFailureReport(failures))
	}

	c.deps.Reporter.Success("commit validation: successful!")
	return nil
}

// resolveCommits produces the ordered commit sequence for the selected
// mode. File and inline text become a single synthetic commit with the
// comment noise stripped; revision ranges come from the CommitReader
// untouched.
func (c *Check) resolveCommits() ([]git.Commit, error) {
	var msg *string
	switch {
	case c.opts.CommitMsgFile != nil:
		raw, err := readMessageFile(*c.opts.CommitMsgFile, c.encoding)
		if err != nil {
			return nil, cerrors.UnreadableMessageFile(*c.opts.CommitMsgFile, err)
		}
		msg = &raw
	case c.opts.Message != nil:
		msg = c.opts.Message
	}
	if msg != nil {
		// Synthetic record: empty revision and title, the filtered text as
		// the body, so Message() yields it verbatim (trimmed).
		return []git.Commit{{Body: strings.TrimSpace(FilterComments(*msg))}}, nil
	}

	return c.deps.Commits.GetCommits(stringOr(c.opts.RevRange, ""))
}

// stringOr dereferences p, or returns fallback when p is nil.
func stringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
