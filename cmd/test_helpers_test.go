package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/ogaworks/eda/internal/config"
	"github.com/ogaworks/eda/internal/git"
)

// testDeps wraps a git client in deps with a plain default configuration.
func testDeps(g git.Client, repoRoot string) *deps {
	return &deps{
		git:      g,
		repoRoot: repoRoot,
		cfg: &config.Config{
			Location:       "project",
			CommandTimeout: 30 * time.Second,
		},
	}
}

// appWithDeps creates an App that resolves to the given deps.
func appWithDeps(d *deps) *App {
	return &App{
		resolveDeps: func(ctx context.Context) (*deps, error) { return d, nil },
	}
}

// appWithDepsError creates an App whose resolveDeps returns an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps: func(ctx context.Context) (*deps, error) { return nil, err },
	}
}

// executeCommand runs the CLI command tree with the given args and returns the output.
func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
