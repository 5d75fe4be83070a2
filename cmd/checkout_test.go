package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogaworks/eda/internal/git"
)

func TestCheckoutCmd(t *testing.T) {
	t.Run("checks out an existing branch", func(t *testing.T) {
		m := &git.ClientMock{
			CheckoutFunc: func(ctx context.Context, dir, name string) error { return nil },
		}
		app := appWithDeps(testDeps(m, "/repo"))

		out, err := executeCommand(t, app, "checkout", "feature")
		require.NoError(t, err)
		assert.Contains(t, out, "Switched to branch feature")

		require.Len(t, m.CheckoutCalls(), 1)
		assert.Equal(t, "feature", m.CheckoutCalls()[0].Name)
		assert.Equal(t, "/repo", m.CheckoutCalls()[0].Dir)
	})

	t.Run("creates a branch with --create", func(t *testing.T) {
		m := &git.ClientMock{
			CreateBranchFunc: func(ctx context.Context, dir, name, start string) error { return nil },
		}
		app := appWithDeps(testDeps(m, "/repo"))

		_, err := executeCommand(t, app, "checkout", "-b", "feature", "origin/main")
		require.NoError(t, err)

		require.Len(t, m.CreateBranchCalls(), 1)
		assert.Equal(t, "feature", m.CreateBranchCalls()[0].Name)
		assert.Equal(t, "origin/main", m.CreateBranchCalls()[0].Start)
		assert.Empty(t, m.CheckoutCalls())
	})

	t.Run("start point without --create is rejected", func(t *testing.T) {
		app := appWithDeps(testDeps(&git.ClientMock{}, "/repo"))

		_, err := executeCommand(t, app, "checkout", "feature", "origin/main")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--create")
	})

	t.Run("invalid branch name fails before dependency resolution", func(t *testing.T) {
		app := appWithDepsError(errors.New("resolver must not run"))

		_, err := executeCommand(t, app, "checkout", "bad..name")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid ref name")
	})

	t.Run("checkout failure propagates", func(t *testing.T) {
		m := &git.ClientMock{
			CheckoutFunc: func(ctx context.Context, dir, name string) error {
				return errors.New("pathspec 'feature' did not match")
			},
		}
		app := appWithDeps(testDeps(m, "/repo"))

		_, err := executeCommand(t, app, "checkout", "feature")
		assert.Error(t, err)
	})
}
