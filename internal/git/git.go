// Package git provides read-only git history access for commitcheck.
// It uses the go-git library so listing commits in a revision range works
// without a git CLI installation. History is never mutated.
package git

import (
	"fmt"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Commit is one commit message to validate. Rev is empty for synthetic
// commits wrapping inline or file-provided text.
type Commit struct {
	Rev   string
	Title string
	Body  string
}

// NewCommit builds a Commit from a revision id and a full message,
// splitting the message into title (first line) and body (the rest).
func NewCommit(rev, message string) Commit {
	title, body, _ := strings.Cut(message, "\n")
	return Commit{
		Rev:   strings.TrimSpace(rev),
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
	}
}

// Message returns the full commit message, title and body rejoined.
// A synthetic commit with an empty title yields just the trimmed body.
func (c Commit) Message() string {
	return strings.TrimSpace(c.Title + "\n\n" + c.Body)
}

// openRepo opens the git repository at the given path or, when path is
// empty, the current working directory. DetectDotGit walks up the directory
// tree to find the repository root.
func openRepo(path string) (*gogit.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsGitRepository checks if the current directory is within a git repository.
func IsGitRepository() bool {
	_, err := openRepo("")
	result := err == nil
	logDebug("[git] IsGitRepository: %v", result)
	return result
}

// GetCommits lists the commits selected by end, newest first, as the
// history walk produces them. end may be:
//   - "": everything reachable from HEAD
//   - a single revision ("HEAD", "v1.2.0", a sha): everything reachable
//     from it
//   - a two-dot range "a..b": commits reachable from b but not from a
//
// Resolution or walk failures propagate; they are never swallowed.
func GetCommits(end string) ([]Commit, error) {
	return GetCommitsIn("", end)
}

// GetCommitsIn is GetCommits against the repository at path.
func GetCommitsIn(path, end string) ([]Commit, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	start, end := splitRange(end)

	endHash, err := resolve(repo, end)
	if err != nil {
		return nil, err
	}

	exclude := map[plumbing.Hash]bool{}
	if start != "" {
		startHash, err := resolve(repo, start)
		if err != nil {
			return nil, err
		}
		if exclude, err = reachableFrom(repo, startHash); err != nil {
			return nil, err
		}
	}

	iter, err := repo.Log(&gogit.LogOptions{From: endHash})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", end, err)
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if exclude[c.Hash] {
			return nil
		}
		commits = append(commits, NewCommit(c.Hash.String(), c.Message))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating commits: %w", err)
	}

	logDebug("[git] GetCommits(%q): %d commits", end, len(commits))
	return commits, nil
}

// splitRange splits a git revision range into its bounds. A bare revision
// has no lower bound. Both two-dot and three-dot separators are accepted;
// the symmetric-difference semantics of "..." are approximated as "..".
func splitRange(rng string) (start, end string) {
	if rng == "" {
		return "", "HEAD"
	}
	idx := strings.Index(rng, "..")
	if idx < 0 {
		return "", rng
	}
	start = rng[:idx]
	end = strings.TrimLeft(rng[idx+2:], ".")
	if end == "" {
		end = "HEAD"
	}
	if start == "" {
		start = "HEAD"
	}
	return start, end
}

// resolve turns a revision expression into a commit hash.
func resolve(repo *gogit.Repository, rev string) (plumbing.Hash, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving revision %q: %w", rev, err)
	}
	return *hash, nil
}

// reachableFrom collects every commit hash reachable from the given commit.
// Used to subtract the lower bound of a range from the walk.
func reachableFrom(repo *gogit.Repository, from plumbing.Hash) (map[plumbing.Hash]bool, error) {
	commit, err := repo.CommitObject(from)
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", from, err)
	}

	seen := map[plumbing.Hash]bool{}
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return nil, fmt.Errorf("collecting ancestors of %s: %w", from, err)
	}
	return seen, nil
}
