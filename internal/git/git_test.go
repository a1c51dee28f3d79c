// Package git tests commit construction, range parsing, and the go-git
// backed history walk.
// Related: internal/git/git.go
// Tags: git, go-git, history, range
package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rev     string
		message string
		want    Commit
	}{
		"title only": {
			rev:     "abc",
			message: "feat: add parser",
			want:    Commit{Rev: "abc", Title: "feat: add parser"},
		},
		"title and body": {
			rev:     "abc",
			message: "feat: add parser\n\nsupports arrays\n",
			want:    Commit{Rev: "abc", Title: "feat: add parser", Body: "supports arrays"},
		},
		"whitespace trimmed": {
			rev:     " abc ",
			message: "  feat: x  \n body ",
			want:    Commit{Rev: "abc", Title: "feat: x", Body: "body"},
		},
		"empty message": {
			rev:     "abc",
			message: "",
			want:    Commit{Rev: "abc"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NewCommit(tc.rev, tc.message))
		})
	}
}

func TestCommitMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "feat: x\n\nbody", Commit{Rev: "a", Title: "feat: x", Body: "body"}.Message())
	assert.Equal(t, "feat: x", Commit{Title: "feat: x"}.Message())

	// Synthetic commits carry the whole text in the body so multi-line
	// messages survive verbatim.
	assert.Equal(t, "feat: x\nsecond line", Commit{Body: "feat: x\nsecond line"}.Message())
	assert.Equal(t, "", Commit{}.Message())
}

func TestSplitRange(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rng       string
		wantStart string
		wantEnd   string
	}{
		"empty defaults to HEAD":   {"", "", "HEAD"},
		"bare revision":            {"v1.2.0", "", "v1.2.0"},
		"two dot range":            {"main..feature", "main", "feature"},
		"three dot range":          {"main...feature", "main", "feature"},
		"open upper bound":         {"v1.0.0..", "v1.0.0", "HEAD"},
		"open lower bound":         {"..feature", "HEAD", "feature"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			start, end := splitRange(tc.rng)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

// initTestRepo creates a repository with the given commit messages, oldest
// first, and returns its path alongside the commit hashes in the same order.
func initTestRepo(t *testing.T, messages ...string) (string, []string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	var hashes []string
	for i, msg := range messages {
		name := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(name, []byte(msg), 0o644))
		_, err = wt.Add("file.txt")
		require.NoError(t, err)

		hash, err := wt.Commit(msg, &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "tester",
				Email: "tester@example.com",
				When:  time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
			},
		})
		require.NoError(t, err)
		hashes = append(hashes, hash.String())
	}
	return dir, hashes
}

func TestGetCommitsIn(t *testing.T) {
	t.Parallel()

	dir, hashes := initTestRepo(t,
		"feat: first",
		"bad message",
		"fix: third",
	)

	t.Run("whole history newest first", func(t *testing.T) {
		t.Parallel()
		commits, err := GetCommitsIn(dir, "")
		require.NoError(t, err)
		require.Len(t, commits, 3)
		assert.Equal(t, hashes[2], commits[0].Rev)
		assert.Equal(t, "fix: third", commits[0].Message())
		assert.Equal(t, hashes[0], commits[2].Rev)
	})

	t.Run("two dot range excludes ancestors", func(t *testing.T) {
		t.Parallel()
		commits, err := GetCommitsIn(dir, hashes[0]+"..HEAD")
		require.NoError(t, err)
		require.Len(t, commits, 2)
		assert.Equal(t, hashes[2], commits[0].Rev)
		assert.Equal(t, hashes[1], commits[1].Rev)
	})
}

func TestGetCommitsIn_SingleRevision(t *testing.T) {
	t.Parallel()

	dir, hashes := initTestRepo(t, "feat: first", "fix: second")

	commits, err := GetCommitsIn(dir, hashes[0])
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "feat: first", commits[0].Message())
}

func TestGetCommitsIn_UnknownRevision(t *testing.T) {
	t.Parallel()

	dir, _ := initTestRepo(t, "feat: first")

	_, err := GetCommitsIn(dir, "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `resolving revision "does-not-exist"`)
}

func TestGetCommitsIn_NotARepository(t *testing.T) {
	t.Parallel()

	_, err := GetCommitsIn(t.TempDir(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening repository")
}
