package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorDisabled(t *testing.T) {
	SetNoColor(true)

	assert.Equal(t, "ok", Green("ok"))
	assert.Equal(t, "warn", Yellow("warn"))
	assert.Equal(t, "bad", Red("bad"))
}

func TestColorEnabled(t *testing.T) {
	SetNoColor(false)
	t.Cleanup(func() { SetNoColor(true) })

	assert.Contains(t, Green("ok"), "ok")
	assert.NotEqual(t, "ok", Green("ok"))
}
