package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogaworks/eda/internal/config"
	"github.com/ogaworks/eda/internal/git"
)

func TestInitCmd(t *testing.T) {
	t.Run("creates the config file", func(t *testing.T) {
		repo := t.TempDir()
		app := appWithDeps(testDeps(&git.ClientMock{}, repo))

		out, err := executeCommand(t, app, "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Created")

		content, err := os.ReadFile(filepath.Join(repo, ".eda.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "location:")
		assert.Contains(t, string(content), "command_timeout:")
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		repo := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(repo, ".eda.yaml"), []byte("location: central\n"), 0644))
		app := appWithDeps(testDeps(&git.ClientMock{}, repo))

		_, err := executeCommand(t, app, "init")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		content, err := os.ReadFile(filepath.Join(repo, ".eda.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "location: central\n", string(content))
	})

	t.Run("generated template parses as valid config", func(t *testing.T) {
		repo := t.TempDir()
		app := appWithDeps(testDeps(&git.ClientMock{}, repo))

		_, err := executeCommand(t, app, "init")
		require.NoError(t, err)

		cfg, err := config.Load(filepath.Join(repo, ".eda.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "project", cfg.Location)
	})
}
