package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionCmd(t *testing.T) {
	t.Run("generates scripts per shell", func(t *testing.T) {
		for _, shell := range []string{"bash", "zsh", "fish"} {
			out, err := executeCommand(t, NewApp(), "completion", shell)
			require.NoError(t, err, shell)
			assert.NotEmpty(t, out, shell)
		}
	})

	t.Run("requires a shell argument", func(t *testing.T) {
		_, err := executeCommand(t, NewApp(), "completion")
		assert.Error(t, err)
	})
}
