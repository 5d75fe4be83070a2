package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogaworks/eda/internal/exec"
)

// branchExec fakes the three listing subcommands: `branch -a` and the two
// for-each-ref enrichment passes.
func branchExec(branchOut, localOut, remoteOut string) *exec.ExecutorMock {
	return &exec.ExecutorMock{
		RunFunc: func(ctx context.Context, dir, name string, args ...string) (exec.Result, error) {
			switch {
			case args[0] == "branch":
				return exec.Result{Stdout: branchOut}, nil
			case args[len(args)-1] == "refs/heads":
				return exec.Result{Stdout: localOut}, nil
			default:
				return exec.Result{Stdout: remoteOut}, nil
			}
		},
	}
}

func TestBranches(t *testing.T) {
	t.Run("local and remote with enrichment", func(t *testing.T) {
		branchOut := "*|main|refs/heads/main\n" +
			" |feature|refs/heads/feature\n" +
			" |origin/main|refs/remotes/origin/main\n"
		localOut := "main|abc123|origin/main|[ahead 2, behind 1]|fix parser\n" +
			"feature|def456|||wip|with pipe\n"
		remoteOut := "origin/main|abc123|fix parser\n"

		c := NewClient(branchExec(branchOut, localOut, remoteOut))
		branches, err := c.Branches(context.Background(), "/repo")
		require.NoError(t, err)
		require.Len(t, branches, 3)

		main := branches[0]
		assert.Equal(t, "main", main.Name)
		assert.True(t, main.IsCurrent)
		assert.False(t, main.IsRemote)
		assert.Equal(t, "abc123", main.LastCommitHash)
		assert.Equal(t, "fix parser", main.LastCommitMessage)
		assert.Equal(t, "origin/main", main.Upstream)
		assert.Equal(t, 2, main.Ahead)
		assert.Equal(t, 1, main.Behind)

		feature := branches[1]
		assert.False(t, feature.IsCurrent)
		assert.Empty(t, feature.Upstream)
		// %(subject) is the last field, so '|' in the message survives.
		assert.Equal(t, "wip|with pipe", feature.LastCommitMessage)

		remote := branches[2]
		assert.Equal(t, "origin/main", remote.Name)
		assert.True(t, remote.IsRemote)
		assert.Equal(t, "origin", remote.Remote)
		assert.False(t, remote.IsCurrent)
	})

	t.Run("origin/HEAD is skipped", func(t *testing.T) {
		branchOut := "*|main|refs/heads/main\n" +
			" |origin/HEAD|refs/remotes/origin/HEAD\n" +
			" |origin/main|refs/remotes/origin/main\n"

		c := NewClient(branchExec(branchOut, "", ""))
		branches, err := c.Branches(context.Background(), "/repo")
		require.NoError(t, err)
		require.Len(t, branches, 2)
		assert.Equal(t, "main", branches[0].Name)
		assert.Equal(t, "origin/main", branches[1].Name)
	})

	t.Run("enrichment failure degrades instead of aborting", func(t *testing.T) {
		branchOut := "*|main|refs/heads/main\n"
		m := &exec.ExecutorMock{
			RunFunc: func(ctx context.Context, dir, name string, args ...string) (exec.Result, error) {
				if args[0] == "branch" {
					return exec.Result{Stdout: branchOut}, nil
				}
				return exec.Result{}, errors.New("ref store corrupt")
			},
		}

		c := NewClient(m)
		branches, err := c.Branches(context.Background(), "/repo")
		require.NoError(t, err)
		require.Len(t, branches, 1)
		assert.Equal(t, "main", branches[0].Name)
		assert.Empty(t, branches[0].LastCommitHash)
	})

	t.Run("empty branch output falls back to for-each-ref", func(t *testing.T) {
		fallbackOut := "*|refs/heads/main|abc123|origin/main|[behind 3]|initial\n" +
			"|refs/remotes/origin/main|abc123|||initial\n"
		m := &exec.ExecutorMock{
			RunFunc: func(ctx context.Context, dir, name string, args ...string) (exec.Result, error) {
				if args[0] == "branch" {
					return exec.Result{}, nil
				}
				return exec.Result{Stdout: fallbackOut}, nil
			},
		}

		c := NewClient(m)
		branches, err := c.Branches(context.Background(), "/repo")
		require.NoError(t, err)
		require.Len(t, branches, 2)

		assert.Equal(t, "main", branches[0].Name)
		assert.True(t, branches[0].IsCurrent)
		assert.Equal(t, "origin/main", branches[0].Upstream)
		assert.Equal(t, 3, branches[0].Behind)
		assert.True(t, branches[1].IsRemote)
		assert.Equal(t, "origin", branches[1].Remote)
	})

	t.Run("listing failure propagates", func(t *testing.T) {
		m := &exec.ExecutorMock{
			RunFunc: func(ctx context.Context, dir, name string, args ...string) (exec.Result, error) {
				return exec.Result{}, errors.New("not a git repository")
			},
		}
		c := NewClient(m)
		_, err := c.Branches(context.Background(), "/repo")
		assert.Error(t, err)
	})
}

func TestParseTrack(t *testing.T) {
	tests := []struct {
		track  string
		ahead  int
		behind int
	}{
		{"", 0, 0},
		{"[ahead 2]", 2, 0},
		{"[behind 5]", 0, 5},
		{"[ahead 2, behind 1]", 2, 1},
		{"[gone]", 0, 0},
	}
	for _, tt := range tests {
		ahead, behind := parseTrack(tt.track)
		assert.Equal(t, tt.ahead, ahead, tt.track)
		assert.Equal(t, tt.behind, behind, tt.track)
	}
}

func TestClassifyRef(t *testing.T) {
	t.Run("local branch", func(t *testing.T) {
		b, ok := classifyRef("main", "refs/heads/main")
		require.True(t, ok)
		assert.False(t, b.IsRemote)
	})

	t.Run("remote branch", func(t *testing.T) {
		b, ok := classifyRef("origin/feature", "refs/remotes/origin/feature")
		require.True(t, ok)
		assert.True(t, b.IsRemote)
		assert.Equal(t, "origin", b.Remote)
	})

	t.Run("rejects non-branches", func(t *testing.T) {
		for _, tt := range []struct{ name, ref string }{
			{"HEAD", "refs/heads/HEAD"},
			{"origin/HEAD", "refs/remotes/origin/HEAD"},
			{"origin", "refs/remotes/origin"},
			{"v1.0.0", "refs/tags/v1.0.0"},
		} {
			_, ok := classifyRef(tt.name, tt.ref)
			assert.False(t, ok, tt.name)
		}
	})
}
