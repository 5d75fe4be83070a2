package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogaworks/eda/internal/git"
)

func prepareClient() *git.ClientMock {
	return &git.ClientMock{
		CurrentBranchFunc: func(ctx context.Context, dir string) (string, error) {
			return "main", nil
		},
		ListWorktreesFunc: func(ctx context.Context, dir string) ([]git.Worktree, error) {
			return []git.Worktree{{Path: dir, Branch: "main", IsMain: true}}, nil
		},
		BranchExistsFunc: func(ctx context.Context, dir, name string) (bool, error) {
			return true, nil
		},
		AddWorktreeFunc: func(ctx context.Context, dir, path, branch string) error {
			return nil
		},
	}
}

func TestPrepareCmd(t *testing.T) {
	t.Run("prints the worktree path", func(t *testing.T) {
		repo := t.TempDir()
		m := prepareClient()
		app := appWithDeps(testDeps(m, repo))

		out, err := executeCommand(t, app, "prepare", "feature")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(repo, ".worktrees", "feature"), strings.TrimSpace(out))
		assert.Len(t, m.AddWorktreeCalls(), 1)
	})

	t.Run("current branch prints the repository root", func(t *testing.T) {
		repo := t.TempDir()
		app := appWithDeps(testDeps(prepareClient(), repo))

		out, err := executeCommand(t, app, "prepare", "main")
		require.NoError(t, err)
		assert.Equal(t, repo, strings.TrimSpace(out))
	})

	t.Run("central flag overrides configured placement", func(t *testing.T) {
		repo := t.TempDir()
		central := t.TempDir()
		d := testDeps(prepareClient(), repo)
		d.cfg.CentralDir = central
		app := appWithDeps(d)

		out, err := executeCommand(t, app, "prepare", "--central", "feature")
		require.NoError(t, err)
		path := strings.TrimSpace(out)
		assert.True(t, strings.HasPrefix(path, central+string(filepath.Separator)), path)
		assert.Equal(t, "feature", filepath.Base(path))
	})

	t.Run("invalid branch name is rejected", func(t *testing.T) {
		app := appWithDeps(testDeps(prepareClient(), t.TempDir()))

		_, err := executeCommand(t, app, "prepare", ".hidden")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid ref name")
	})
}
