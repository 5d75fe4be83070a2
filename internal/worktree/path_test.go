package worktree

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogaworks/eda/internal/git"
)

func TestPath(t *testing.T) {
	t.Run("project placement", func(t *testing.T) {
		s := NewService(&git.ClientMock{})

		path, err := s.Path("/home/me/repo", "feature/my-branch")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/me/repo", ".worktrees", "feature_my-branch"), path)
	})

	t.Run("central placement namespaces by repository", func(t *testing.T) {
		s := NewService(&git.ClientMock{}, WithParams(Params{
			CentralDir: "/home/me/.cache/eda",
			Location:   LocationCentral,
		}))

		pathA, err := s.Path("/home/me/repo-a", "main")
		require.NoError(t, err)
		pathB, err := s.Path("/home/me/repo-b", "main")
		require.NoError(t, err)

		assert.NotEqual(t, pathA, pathB)
		assert.True(t, strings.HasPrefix(pathA, "/home/me/.cache/eda/"))
		assert.Equal(t, "main", filepath.Base(pathA))
	})

	t.Run("deterministic", func(t *testing.T) {
		s := NewService(&git.ClientMock{})
		a, err := s.Path("/repo", "feature/x")
		require.NoError(t, err)
		b, err := s.Path("/repo", "feature/x")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestSanitizeBranch(t *testing.T) {
	t.Run("maps unsafe characters", func(t *testing.T) {
		tests := []struct {
			branch string
			want   string
		}{
			{"main", "main"},
			{"feature/my-branch", "feature_my-branch"},
			{"release-1.2", "release-1.2"},
			{"weird~name^with:chars", "weird_name_with_chars"},
			{"UP_low.mix-9", "UP_low.mix-9"},
			{"__trimmed__", "trimmed"},
			{"branch with spaces", "branch_with_spaces"},
		}
		for _, tt := range tests {
			got, err := sanitizeBranch(tt.branch)
			require.NoError(t, err, tt.branch)
			assert.Equal(t, tt.want, got, tt.branch)
		}
	})

	t.Run("rejects unusable names", func(t *testing.T) {
		for _, branch := range []string{
			"",
			".",
			"..",
			"a/../b",
			"a/..",
			"ctrl\x01char",
			"---",
			"...",
			strings.Repeat("a", 256),
		} {
			_, err := sanitizeBranch(branch)
			require.Error(t, err, branch)

			var unsafeErr *UnsafeBranchError
			assert.ErrorAs(t, err, &unsafeErr, branch)
		}
	})

	t.Run("boundary length", func(t *testing.T) {
		_, err := sanitizeBranch(strings.Repeat("a", 255))
		assert.NoError(t, err)
		_, err = sanitizeBranch(strings.Repeat("a", 256))
		assert.Error(t, err)
	})
}

func TestRepoKey(t *testing.T) {
	a := repoKey("/home/me/repo-a")
	b := repoKey("/home/me/repo-b")

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, repoKey("/home/me/repo-a"))
}
